package main

import (
	"fmt"

	"github.com/rpgo/day-counter/pkg/dateutil"
	"github.com/spf13/cobra"
)

// newTypeCmd shows how raw typed input is shaped into a date, the way the
// date fields behave while typing and on leaving the field.
func newTypeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "type RAW...",
		Short: "Show how raw keystrokes are shaped into DD/MM/YYYY",
		Example: `  daycounter type 14062025
  daycounter type 14`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, raw := range args {
				typed := dateutil.FormatKeystrokes(raw)
				completed := dateutil.CompleteDay(typed, a.clock.Now())
				d, err := a.engine.ParseDate(completed)
				if err != nil {
					fmt.Fprintf(out, "%s -> %s (%v)\n", raw, completed, err)
					continue
				}
				fmt.Fprintf(out, "%s -> %s = %s\n", raw, completed, dateutil.Format(d))
			}
			return nil
		},
	}
}
