package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/tabshell/internal/cli/styles"
	"github.com/bnema/tabshell/internal/infrastructure/bridge"
	"github.com/bnema/tabshell/internal/infrastructure/config"
)

var fingerprintReset bool

var fingerprintCmd = &cobra.Command{
	Use:   "fingerprint",
	Short: "Show the device fingerprint sent with signed requests",
	Long: `Show the device fingerprint, creating it on first use.

With --reset a new device id is generated.`,
	RunE: runFingerprint,
}

func init() {
	fingerprintCmd.Flags().BoolVar(&fingerprintReset, "reset", false, "discard the stored fingerprint and create a new one")
	rootCmd.AddCommand(fingerprintCmd)
}

func runFingerprint(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	path, err := config.GetFingerprintFile()
	if err != nil {
		return err
	}
	if fingerprintReset {
		if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("remove fingerprint: %w", err)
		}
	}

	fp, err := bridge.LoadOrCreateFingerprint(path)
	if err != nil {
		return err
	}

	r := styles.NewInfoRenderer(app.Theme)
	fmt.Fprintln(cmd.OutOrStdout(), r.Render([]styles.Field{
		{Icon: styles.IconKey, Key: "Device", Value: fp.DeviceID},
		{Icon: styles.IconKey, Key: "Hardware", Value: fp.HardwareHash},
		{Icon: styles.IconCalendar, Key: "Created", Value: fp.CreatedAt},
		{Icon: styles.IconFolder, Key: "File", Value: path},
	}))
	return nil
}
