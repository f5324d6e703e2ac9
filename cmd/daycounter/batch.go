package main

import (
	"fmt"

	"github.com/rpgo/day-counter/internal/config"
	"github.com/rpgo/day-counter/internal/output"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newBatchCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batch FILE",
		Short: "Run every calculation listed in a YAML batch file",
		Long: `Run every calculation listed in a YAML batch file.

Results are printed in input order. A calculation that fails reports its
error in place; the command exits non-zero when any calculation failed.
Use --example to print a sample batch file. With --save the results are
written to a timestamped report file in the given directory instead of
stdout; --format all writes one file per format.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if example, _ := cmd.Flags().GetBool("example"); example {
				return cobra.NoArgs(cmd, args)
			}
			return cobra.ExactArgs(1)(cmd, args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			parser := config.NewInputParser()

			if example, _ := cmd.Flags().GetBool("example"); example {
				b, err := yaml.Marshal(parser.CreateExampleBatch())
				if err != nil {
					return err
				}
				_, err = cmd.OutOrStdout().Write(b)
				return err
			}

			batch, err := parser.LoadFromFile(args[0])
			if err != nil {
				return err
			}
			results, err := a.engine.RunBatch(cmd.Context(), batch)
			if err != nil {
				return err
			}
			if dir, _ := cmd.Flags().GetString("save"); dir != "" {
				files, err := output.GenerateReport(results, a.settings.Format, dir)
				if err != nil {
					return err
				}
				for _, f := range files {
					fmt.Fprintln(cmd.OutOrStdout(), "wrote", f)
				}
			} else if err := a.render(cmd, results); err != nil {
				return err
			}
			if failed := results.Failed(); failed > 0 {
				return fmt.Errorf("%d of %d calculations failed", failed, batch.Len())
			}
			return nil
		},
	}
	cmd.Flags().Bool("example", false, "print an example batch file and exit")
	cmd.Flags().String("save", "", "write report files to this directory instead of stdout")
	return cmd
}
