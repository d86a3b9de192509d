package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nudge-cli/nudge/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the effective configuration",
	Long: `Print the effective configuration after merging defaults, the global
config file, the local config file, and NUDGE_* environment variables.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		localPath, _ := cmd.Flags().GetString("config")
		fmt.Printf("global config: %s\n", config.GlobalConfigPath())
		fmt.Printf("local config:  %s\n", localPath)
		fmt.Printf("backend:       %s\n\n", cfg.ResolveBackend())

		if cfg.PushToken != "" {
			cfg.PushToken = "(redacted)"
		}
		out, err := json.MarshalIndent(cfg, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to render config: %w", err)
		}
		fmt.Println(string(out))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
}
