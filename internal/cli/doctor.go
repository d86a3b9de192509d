package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nudge-cli/nudge/internal/health"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check whether this machine can deliver notifications",
	Long: `Run health checks against the configured delivery backend.

This command checks for:
  - Platform notification tools (osascript, notify-send, powershell)
  - A display environment on Linux
  - Backend readiness: capability present and permission granted

Each check displays a ✓ if passed or ✗ with a reason if failed. Nothing
is displayed on screen; the backend probe never publishes a notification.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		strategy := buildStrategy(cfg)
		fmt.Printf("backend: %s\n", strategy.Name())

		report := health.RunHealthChecks(cmd.Context(), strategy)
		fmt.Print(health.FormatReport(report))

		if !report.Passed {
			os.Exit(1)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}
