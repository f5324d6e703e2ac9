package main

import (
	"fmt"
	"strings"

	"github.com/rpgo/day-counter/internal/config"
	"github.com/rpgo/day-counter/internal/output"
	"github.com/spf13/cobra"
)

func newFormatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "formats",
		Short: "List output formats and their aliases",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "Formats: %s\nAliases: %s\n",
				strings.Join(output.AvailableFormatterNames(), ", "),
				strings.Join(output.AvailableFormatAliases(), ", "))
			return nil
		},
	}
}

func newEnvCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "env",
		Short: "Describe the environment variables read as settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			help, err := config.SettingsHelp()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), help)
			return nil
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "daycounter %s\n", Version)
		},
	}
}
