package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/babylonlabs-io/cw20-adapter/x/cw20adapter/types"
)

// AppConfig is the template data for the adapter section of app.toml.
type AppConfig struct {
	Cw20Adapter types.Config
}

func defaultNodeHome() string {
	userHomeDir, err := os.UserHomeDir()
	if err != nil {
		return ".babylond"
	}
	return filepath.Join(userHomeDir, ".babylond")
}

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "print the effective adapter configuration of a node",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			home, err := cmd.Flags().GetString(flagHome)
			if err != nil {
				return err
			}

			cfg, err := LoadConfig(home)
			if err != nil {
				return err
			}

			bz, err := json.MarshalIndent(cfg, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(bz))
			return nil
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "template",
		Short: "print the app.toml section of the adapter with default values",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := RenderConfigTemplate(types.DefaultConfig())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), out)
			return nil
		},
	})

	return cmd
}

// LoadConfig reads the adapter section of home/config/app.toml. A missing
// file yields the default configuration.
func LoadConfig(home string) (types.Config, error) {
	v := viper.New()
	v.SetConfigFile(filepath.Join(home, "config", "app.toml"))

	if err := v.ReadInConfig(); err != nil {
		var pathErr *os.PathError
		if !errors.As(err, &pathErr) {
			return types.Config{}, fmt.Errorf("failed to read app.toml: %w", err)
		}
	}

	return types.ConfigFromAppOptions(v)
}

// RenderConfigTemplate fills the app.toml section of the adapter with cfg.
func RenderConfigTemplate(cfg types.Config) (string, error) {
	tmpl, err := template.New("cw20adapter").Parse(types.DefaultConfigTemplate)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	if err := tmpl.Execute(&sb, AppConfig{Cw20Adapter: cfg}); err != nil {
		return "", err
	}
	return sb.String(), nil
}
