// Package cli provides the Cobra-based command tree for nudge.
// It defines the user-facing commands for sending and scheduling
// notifications (send, schedule), plus configuration and diagnostics
// commands (config, doctor, version).
package cli

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "nudge",
	Short: "best-effort desktop and push notifications",
	Long: `nudge sends user-facing notifications through whichever notification
subsystem the current machine offers: the OS notification center on a
desktop, or an ntfy-compatible push endpoint for headless setups.

Delivery is best-effort by design. A notification that cannot be shown
is logged as a warning and never fails the calling workflow.`,
	Example: `  # Show a notification right away
  nudge send "Build finished" "all tests passed"

  # Show a notification in 25 minutes
  nudge schedule "Stand up" "stretch your legs" --after 25m

  # Verify the machine can actually deliver
  nudge doctor`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringP("config", "c", ".nudge/config.json", "Path to local config file")
}
