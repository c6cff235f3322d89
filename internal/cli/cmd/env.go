package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/bnema/tabshell/internal/application/usecase"
	"github.com/bnema/tabshell/internal/bootstrap"
	"github.com/bnema/tabshell/internal/cli/styles"
	"github.com/bnema/tabshell/internal/infrastructure/bridge"
	"github.com/bnema/tabshell/internal/infrastructure/env"
)

var envTimeout time.Duration

var envCmd = &cobra.Command{
	Use:   "env",
	Short: "Show the environment the shell reports in window titles",
	Long: `Resolve the environment name the way a shell window does.

A configured app.env_name wins. Otherwise the bridge's env info path is
queried and the name parsed from its answer.`,
	RunE: runEnv,
}

func init() {
	envCmd.Flags().DurationVar(&envTimeout, "timeout", 5*time.Second, "how long to wait for the bridge")
	rootCmd.AddCommand(envCmd)
}

func runEnv(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	cfg := app.Config
	r := styles.NewInfoRenderer(app.Theme)

	ctx, cancel := context.WithTimeout(app.Ctx(), envTimeout)
	defer cancel()

	provider := env.NewProvider(cfg.App.EnvName, cfg.App.EnvKey, bridge.NewHTTPBridge(bootstrap.BridgeConfig(cfg)))
	info, err := provider.EnvInfo(ctx)
	if err != nil {
		fmt.Fprintln(cmd.OutOrStdout(), r.RenderError(err))
		info = ""
	}

	name := usecase.DefaultEnvName
	if info != "" {
		name = usecase.ParseEnvName(info)
	}
	fmt.Fprintln(cmd.OutOrStdout(), r.Render([]styles.Field{
		{Icon: styles.IconServer, Key: "Environment", Value: name},
		{Icon: styles.IconCode, Key: "Info", Value: info},
		{Icon: styles.IconGlobe, Key: "Bridge", Value: cfg.Bridge.BaseURL},
		{Icon: styles.IconGlobe, Key: "Title", Value: usecase.FormatWindowTitle("Example", name)},
	}))
	return nil
}
