package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/vibeterm/internal/cli/styles"
)

var versionCmd = &cobra.Command{
	Use:     "version",
	Aliases: []string{"about"},
	Short:   "Show version and build information",
	Long:    `Display version, build info, repository URL, and contributors.`,
	RunE:    runVersion,
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

func runVersion(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	renderer := styles.NewAboutRenderer(app.Theme)
	_, err := fmt.Fprintln(cmd.OutOrStdout(), renderer.Render(app.BuildInfo))
	return err
}
