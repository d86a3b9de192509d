package cli

import (
	"github.com/spf13/cobra"
)

var sendCmd = &cobra.Command{
	Use:   "send <title> <body>",
	Short: "Display a notification right away",
	Long: `Display a notification with the given title and body through the
configured backend. Delivery is best-effort: failures are logged as
warnings and the command still exits 0.`,
	Example: `  nudge send "Build finished" "all tests passed"
  nudge send "Backup" "nightly backup completed" --config ~/.nudge/config.json`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		dispatcher := buildDispatcher(cfg)
		dispatcher.SendLocalNotification(cmd.Context(), args[0], args[1])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(sendCmd)
}
