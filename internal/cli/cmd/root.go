// Package cmd provides Cobra CLI commands for vibeterm.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/vibeterm/internal/cli"
	"github.com/bnema/vibeterm/internal/domain/build"
)

var (
	app       *cli.App
	buildInfo build.Info
	rootCmd   = &cobra.Command{
		Use:   "vibeterm [file...]",
		Short: "A split pane terminal with tabs",
		Long: `vibeterm - shells in a binary split layout, driven by keyboard and mouse.

Features:
  - Horizontal and vertical splits, resized by dragging dividers
  - Panes rearranged by dragging them onto the edge of another pane
  - Tabs, with panes movable between tabs
  - Directory sidebar following each shell's working directory
  - Live reload of the TOML configuration

Running vibeterm without a subcommand starts the terminal, like 'vibeterm run'.
Files given as arguments open in read-only viewer tabs.`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runTerminal,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip initialization for commands that don't need app context
			switch cmd.Name() {
			case "help", "completion":
				return nil
			}

			var err error
			app, err = cli.NewApp(cli.Options{LogToFile: launchesTerminal(cmd)})
			if err != nil {
				return fmt.Errorf("initialize app: %w", err)
			}
			// Set build info from main.go
			app.BuildInfo = buildInfo
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if app != nil {
				_ = app.Close()
			}
		},
	}
)

// launchesTerminal reports whether cmd takes over the terminal.
func launchesTerminal(cmd *cobra.Command) bool {
	return !cmd.HasParent() || cmd.Name() == "run"
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// GetApp returns the initialized app (for use by subcommands).
func GetApp() *cli.App {
	return app
}

// SetBuildInfo sets the build information (called from main.go before Execute).
func SetBuildInfo(info build.Info) {
	buildInfo = info
}
