package main

import (
	"github.com/rpgo/day-counter/internal/domain"
	"github.com/spf13/cobra"
)

func newCountCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "count START END",
		Aliases: []string{"between", "days"},
		Short:   "Count the days between two dates",
		Example: `  daycounter count 01/01/2024 31/01/2024
  daycounter count 28/02/2024 01/03/2024 --exclude-end`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			excludeEnd, _ := cmd.Flags().GetBool("exclude-end")
			name, _ := cmd.Flags().GetString("name")

			res, err := a.engine.Count(domain.CountRequest{Name: name, Start: args[0], End: args[1], ExcludeEnd: excludeEnd})
			if err != nil {
				return err
			}
			return a.render(cmd, &domain.BatchResults{GeneratedAt: a.clock.Now(), Counts: []domain.CountResult{*res}})
		},
	}
	cmd.Flags().Bool("exclude-end", false, "count up to the day after the end date instead of through it")
	cmd.Flags().String("name", "", "label for the result")
	return cmd
}
