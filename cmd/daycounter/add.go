package main

import (
	"github.com/rpgo/day-counter/internal/domain"
	"github.com/spf13/cobra"
)

func newAddCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "add BASE",
		Aliases: []string{"fine", "offset"},
		Short:   "Add years, months and days to a date",
		Example: `  daycounter add 15/06/2025 --days 30
  daycounter add 31/01/2024 --months 1 --exclude-base`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			req := domain.OffsetRequest{Base: args[0]}
			req.Name, _ = flags.GetString("name")
			req.Years, _ = flags.GetInt("years")
			req.Months, _ = flags.GetInt("months")
			req.Days, _ = flags.GetInt("days")
			req.ExcludeBase, _ = flags.GetBool("exclude-base")

			res, err := a.engine.Offset(req)
			if err != nil {
				return err
			}
			return a.render(cmd, &domain.BatchResults{GeneratedAt: a.clock.Now(), Offsets: []domain.OffsetResult{*res}})
		},
	}
	cmd.Flags().IntP("years", "y", 0, "years to add")
	cmd.Flags().IntP("months", "m", 0, "months to add")
	cmd.Flags().IntP("days", "d", 0, "days to add")
	cmd.Flags().Bool("exclude-base", false, "start counting the day after the base date")
	cmd.Flags().String("name", "", "label for the result")
	return cmd
}
