package cmd

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/bnema/tabshell/internal/cli/styles"
	"github.com/bnema/tabshell/internal/infrastructure/config"
)

var configSchemaWrite bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect configuration",
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file path",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app := GetApp()
		if app == nil {
			return fmt.Errorf("app not initialized")
		}
		fmt.Fprintln(cmd.OutOrStdout(), app.Manager.ConfigFilePath())
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration as JSON",
	Long: `Print the configuration after defaults, config.toml and TABSHELL_*
environment overrides have been merged.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app := GetApp()
		if app == nil {
			return fmt.Errorf("app not initialized")
		}
		data, err := json.MarshalIndent(app.Config, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	},
}

var configValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check config.toml",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app := GetApp()
		if app == nil {
			return fmt.Errorf("app not initialized")
		}
		r := styles.NewInfoRenderer(app.Theme)
		if app.LoadErr != nil {
			fmt.Fprintln(cmd.OutOrStdout(), r.RenderError(app.LoadErr))
			return fmt.Errorf("invalid configuration")
		}
		fmt.Fprintln(cmd.OutOrStdout(), r.RenderSuccess(app.Manager.ConfigFilePath()+" is valid"))
		return nil
	},
}

var configSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON schema of config.toml",
	Long: `Print the JSON schema of config.toml.

With --write the schema is saved as config.schema.json next to config.toml,
for editors that offer completion from a schema.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app := GetApp()
		if app == nil {
			return fmt.Errorf("app not initialized")
		}
		if configSchemaWrite {
			path, err := config.GenerateSchemaFile(filepath.Dir(app.Manager.ConfigFilePath()))
			if err != nil {
				return err
			}
			r := styles.NewInfoRenderer(app.Theme)
			fmt.Fprintln(cmd.OutOrStdout(), r.RenderSuccess("wrote "+path))
			return nil
		}
		data, err := config.Schema()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	},
}

func init() {
	configSchemaCmd.Flags().BoolVar(&configSchemaWrite, "write", false, "write config.schema.json next to config.toml")
	configCmd.AddCommand(configPathCmd, configShowCmd, configValidateCmd, configSchemaCmd)
	rootCmd.AddCommand(configCmd)
}
