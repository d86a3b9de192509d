package cli

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/nudge-cli/nudge/internal/config"
	"github.com/nudge-cli/nudge/internal/notify"
)

// loadConfig loads the effective configuration honoring the --config flag
func loadConfig(cmd *cobra.Command) (*config.Configuration, error) {
	path, _ := cmd.Flags().GetString("config")
	return config.Load(path)
}

// buildStrategy selects the delivery strategy from the resolved backend.
// Selection happens once per invocation; the strategy is then injected
// into the dispatcher.
func buildStrategy(cfg *config.Configuration) notify.Strategy {
	switch cfg.ResolveBackend() {
	case "push":
		return notify.NewPushStrategy(cfg.PushEndpoint,
			notify.WithPushToken(cfg.PushToken),
			notify.WithPushTimeout(time.Duration(cfg.PushTimeout)*time.Second),
		)
	default:
		return notify.NewDesktopStrategy(handlerConfig(cfg),
			notify.WithSoundFile(cfg.SoundFile),
			notify.WithQuietInCI(cfg.QuietInCI),
		)
	}
}

// handlerConfig maps configuration onto the one-time presentation options
func handlerConfig(cfg *config.Configuration) notify.HandlerConfig {
	return notify.HandlerConfig{
		PlaySound:  cfg.PlaySound,
		SetBadge:   cfg.SetBadge,
		ShowBanner: cfg.ShowBanner,
		ShowInList: cfg.ShowInList,
	}
}

// buildDispatcher wires the configured strategy into a dispatcher
func buildDispatcher(cfg *config.Configuration) *notify.Dispatcher {
	return notify.NewDispatcher(buildStrategy(cfg), notify.WithEnabled(cfg.Enabled))
}
