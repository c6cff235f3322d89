package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/bnema/tabshell/internal/bootstrap"
	"github.com/bnema/tabshell/internal/cli"
	"github.com/bnema/tabshell/internal/cli/styles"
	"github.com/bnema/tabshell/internal/infrastructure/bridge"
	"github.com/bnema/tabshell/internal/infrastructure/webkit/messaging"
	"github.com/bnema/tabshell/internal/infrastructure/webkit/shim"
)

var doctorOnline bool

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check configuration and diagnose issues",
	Long: `Doctor checks what a shell window depends on:
- the configuration file
- the signing key, when one is configured
- the page shim, run in an isolated JavaScript runtime

With --online the bridge is also asked for its environment info.

Examples:
  tabshell doctor
  tabshell doctor --online`,
	RunE: runDoctor,
}

func init() {
	rootCmd.AddCommand(doctorCmd)
	doctorCmd.Flags().BoolVar(&doctorOnline, "online", false, "also contact the bridge")
}

func runDoctor(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	report := styles.DoctorReport{Sections: []styles.DoctorSection{
		configSection(app),
		interceptionSection(app),
	}}
	if doctorOnline {
		report.Sections = append(report.Sections, bridgeSection(app.Ctx(), app))
	}

	fmt.Fprintln(cmd.OutOrStdout(), styles.NewDoctorRenderer(app.Theme).Render(report))
	if !report.OK() {
		return fmt.Errorf("doctor found problems")
	}
	return nil
}

func configSection(app *cli.App) styles.DoctorSection {
	s := styles.DoctorSection{Title: "Config"}
	cfg := app.Config

	if app.LoadErr != nil {
		s.Checks = append(s.Checks, styles.DoctorCheck{Name: "config.toml", Status: styles.DoctorFail, Detail: app.LoadErr.Error()})
	} else {
		s.Checks = append(s.Checks, styles.DoctorCheck{Name: "config.toml", Detail: app.Manager.ConfigFilePath()})
	}

	if cfg.Bridge.BaseURL == "" {
		s.Checks = append(s.Checks, styles.DoctorCheck{Name: "bridge.base_url", Status: styles.DoctorWarn, Detail: "not set, bridged calls go to the page URL"})
	} else {
		s.Checks = append(s.Checks, styles.DoctorCheck{Name: "bridge.base_url", Detail: cfg.Bridge.BaseURL})
	}

	if path := cfg.Bridge.SigningKeyPath; path != "" {
		if _, err := bridge.LoadPublicKey(path); err != nil {
			s.Checks = append(s.Checks, styles.DoctorCheck{Name: "signing key", Status: styles.DoctorFail, Detail: err.Error()})
		} else {
			s.Checks = append(s.Checks, styles.DoctorCheck{Name: "signing key", Detail: path})
		}
	}
	return s
}

func interceptionSection(app *cli.App) styles.DoctorSection {
	cfg := app.Config
	err := shim.Verify(shim.Config{
		Handler:         messaging.HandlerName,
		APIPrefix:       cfg.Interception.APIPrefix,
		InternalSchemes: cfg.Interception.InternalSchemes,
		Origin:          cfg.App.Origin,
	})

	check := styles.DoctorCheck{Name: "page shim", Detail: "prefix " + cfg.Interception.APIPrefix}
	if err != nil {
		check.Status = styles.DoctorFail
		check.Detail = err.Error()
	}
	return styles.DoctorSection{Title: "Interception", Checks: []styles.DoctorCheck{check}}
}

func bridgeSection(ctx context.Context, app *cli.App) styles.DoctorSection {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	check := styles.DoctorCheck{Name: "env info"}
	info, err := bridge.NewHTTPBridge(bootstrap.BridgeConfig(app.Config)).EnvInfo(ctx)
	if err != nil {
		check.Status = styles.DoctorFail
		check.Detail = err.Error()
	} else {
		check.Detail = info
	}
	return styles.DoctorSection{Title: "Bridge", Checks: []styles.DoctorCheck{check}}
}
