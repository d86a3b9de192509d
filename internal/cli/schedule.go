package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var scheduleCmd = &cobra.Command{
	Use:   "schedule <title> <body>",
	Short: "Display a notification after a delay",
	Long: `Arm a notification that fires once after the given delay. The timer
lives inside this process, so the command stays in the foreground until
the notification has been delivered. An armed timer cannot be revoked.`,
	Example: `  nudge schedule "Stand up" "stretch your legs" --after 25m
  nudge schedule "Tea" "kettle is done" --after 3m --quiet`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		after, err := cmd.Flags().GetDuration("after")
		if err != nil {
			return err
		}
		if after < 0 {
			return fmt.Errorf("--after must not be negative")
		}
		quiet, _ := cmd.Flags().GetBool("quiet")

		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		dispatcher := buildDispatcher(cfg)
		dispatcher.ScheduleNotification(cmd.Context(), args[0], args[1], after)

		// The timer dies with the process; keep it alive until delivery,
		// plus a grace period for the platform call itself.
		waitForDelivery(after, quiet)
		return nil
	},
}

// waitForDelivery blocks until the armed timer has had a chance to fire,
// showing a countdown spinner on interactive terminals.
func waitForDelivery(after time.Duration, quiet bool) {
	const grace = 2 * time.Second

	if quiet || !term.IsTerminal(int(os.Stdout.Fd())) {
		time.Sleep(after + grace)
		return
	}

	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	s.Suffix = fmt.Sprintf(" notifying in %s", after.Round(time.Second))
	s.Start()

	fireAt := time.Now().Add(after)
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()
	for time.Now().Before(fireAt) {
		<-ticker.C
		remaining := time.Until(fireAt).Round(time.Second)
		if remaining < 0 {
			remaining = 0
		}
		s.Suffix = fmt.Sprintf(" notifying in %s", remaining)
	}
	s.Stop()
	time.Sleep(grace)
}

func init() {
	scheduleCmd.Flags().Duration("after", 5*time.Minute, "Delay before the notification fires (e.g. 30s, 10m)")
	scheduleCmd.Flags().Bool("quiet", false, "Suppress the countdown spinner")
	rootCmd.AddCommand(scheduleCmd)
}
