// Package cmd provides Cobra CLI commands for tabshell.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/tabshell/internal/cli"
	"github.com/bnema/tabshell/internal/domain/build"
)

var (
	app       *cli.App
	buildInfo build.Info
	configDir string
	rootCmd   = &cobra.Command{
		Use:   "tabshell",
		Short: "A multi-tab shell around a web application",
		Long: `tabshell hosts a web application in a native multi-tab window.

Page network calls under the configured API prefix are routed through the
host bridge. Tabs can be reordered by dragging, torn off into new windows,
switched with swipes and zoomed together.

Use 'tabshell browse' to open a window, or explore the subcommands to
inspect configuration and diagnose the environment.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			switch cmd.Name() {
			case "help", "completion", "version":
				return nil
			}

			var err error
			app, err = cli.NewApp(configDir)
			if err != nil {
				return fmt.Errorf("initialize app: %w", err)
			}
			app.BuildInfo = buildInfo
			return nil
		},
	}
)

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Root returns the root command.
func Root() *cobra.Command {
	return rootCmd
}

// GetApp returns the initialized app (for use by subcommands).
func GetApp() *cli.App {
	return app
}

// browseCmd is a placeholder for help; main handles browse before cobra runs.
var browseCmd = &cobra.Command{
	Use:   "browse [url]",
	Short: "Open a shell window",
	Long: `Open a shell window.

If a URL is provided, the first tab loads it. Otherwise the configured
start URL is used.

Examples:
  tabshell browse
  tabshell browse app.example.com`,
	Run: func(_ *cobra.Command, _ []string) {},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "directory holding config.toml (default: XDG config dir)")
	rootCmd.AddCommand(browseCmd)
}

// SetBuildInfo sets the build information (called from main.go before Execute).
func SetBuildInfo(info build.Info) {
	buildInfo = info
}
