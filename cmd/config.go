package cmd

import (
	"fmt"
	"strings"

	"agioctl/pkg/config"
	"agioctl/pkg/tui"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage agio configuration",
	Long: `View or edit your local configuration settings.

With --set, one key is changed non-interactively:

  agio config --set group_prompt=uniqname
  agio config --set timeout=1m

With --show, the effective configuration is printed. Otherwise the
interactive settings menu opens.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, _ := cmd.Flags().GetString("config")

		if assignment, _ := cmd.Flags().GetString("set"); assignment != "" {
			key, value, ok := strings.Cut(assignment, "=")
			if !ok {
				return fmt.Errorf("expected key=value, got %q (valid keys: %s)", assignment, strings.Join(config.Keys(), ", "))
			}
			if err := appCfg.Set(strings.TrimSpace(key), value); err != nil {
				return err
			}
			if err := config.Save(appCfg, path); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "✅ %s saved\n", strings.TrimSpace(key))
			return nil
		}

		if show, _ := cmd.Flags().GetBool("show"); show {
			data, err := yaml.Marshal(appCfg)
			if err != nil {
				return fmt.Errorf("failed to serialize config: %w", err)
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		}

		// If no flags are given, launch the interactive TUI flow
		return tui.RunConfigTUI(path)
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.Flags().StringP("set", "s", "", "Set one value, e.g. accent_color=#00274C")
	configCmd.Flags().Bool("show", false, "Print the effective configuration")
}
