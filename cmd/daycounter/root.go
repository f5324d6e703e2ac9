package main

import (
	"fmt"
	"log/slog"

	"github.com/rpgo/day-counter/internal/calculation"
	"github.com/rpgo/day-counter/internal/config"
	"github.com/rpgo/day-counter/internal/domain"
	"github.com/rpgo/day-counter/internal/output"
	"github.com/rpgo/day-counter/pkg/dateutil"
	"github.com/spf13/cobra"
)

// app carries what every subcommand needs once flags and settings are resolved.
type app struct {
	clock    calculation.Clock
	settings *config.Settings
	engine   *calculation.CalculationEngine
}

func newRootCmd(clock calculation.Clock) *cobra.Command {
	a := &app{clock: clock}

	root := &cobra.Command{
		Use:   "daycounter",
		Short: "Count days between dates and add offsets to dates",
		Long: `daycounter - calendar date arithmetic on DD/MM/YYYY dates.

Counts the days between two dates (with a years/months/days breakdown) and
finds the date reached by adding years, months and days to a base date.
A bare two-digit day such as "14" means that day of the current month.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	root.PersistentFlags().String("config", "", "settings file (default $"+config.EnvConfigPath+")")
	root.PersistentFlags().StringP("format", "f", "", "output format: console, text, json, csv, yaml, html")
	root.PersistentFlags().Bool("strict", false, "reject days past the end of their month instead of rolling over")
	root.PersistentFlags().Bool("debug", false, "enable debug logging to stderr")

	root.AddCommand(
		newCountCmd(a),
		newAddCmd(a),
		newBatchCmd(a),
		newTypeCmd(a),
		newFormatsCmd(),
		newEnvCmd(),
		newVersionCmd(),
	)
	return root
}

// setup loads settings, applies flag overrides and builds the engine.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	flags := cmd.Flags()
	configPath, _ := flags.GetString("config")

	settings, err := config.LoadSettings(configPath)
	if err != nil {
		return err
	}
	if flags.Changed("format") {
		settings.Format, _ = flags.GetString("format")
	}
	if flags.Changed("strict") {
		settings.StrictDays, _ = flags.GetBool("strict")
	}
	if debug, _ := flags.GetBool("debug"); debug {
		settings.LogLevel = "debug"
	}
	if settings.Format != "all" && output.GetFormatterByName(settings.Format) == nil {
		return fmt.Errorf("%w: %q", output.ErrUnsupportedFormat, settings.Format)
	}
	level, err := settings.Level()
	if err != nil {
		return err
	}

	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	engine := calculation.NewCalculationEngineWithOptions(dateutil.ParseOptions{Strict: settings.StrictDays})
	engine.SetLogger(calculation.NewSlogLogger(logger))
	engine.SetClock(a.clock)

	a.settings = settings
	a.engine = engine
	logger.Debug("settings loaded", "format", settings.Format, "strict_days", settings.StrictDays)
	return nil
}

// render writes results in the configured format.
func (a *app) render(cmd *cobra.Command, results *domain.BatchResults) error {
	return output.Render(cmd.OutOrStdout(), results, a.settings.Format)
}
