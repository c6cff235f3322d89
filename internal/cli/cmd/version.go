package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/tabshell/internal/cli/styles"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version and build information",
	RunE: func(cmd *cobra.Command, _ []string) error {
		r := styles.NewInfoRenderer(styles.NewTheme())
		fmt.Fprintln(cmd.OutOrStdout(), r.RenderBuild(buildInfo))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
