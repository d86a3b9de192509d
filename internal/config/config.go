// Package config loads and validates the nudge configuration from the
// config hierarchy: environment variables > local config > global config
// > built-in defaults.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Configuration represents the nudge notification tool configuration
type Configuration struct {
	// Enabled is the master switch; disabled means every call is a silent no-op
	Enabled bool `koanf:"enabled" json:"enabled"`

	// Backend selects the delivery strategy: auto, desktop, or push.
	// auto picks push when a push endpoint is configured, desktop otherwise.
	Backend string `koanf:"backend" json:"backend" validate:"required,oneof=auto desktop push"`

	// PushEndpoint is an ntfy-compatible topic URL for the push backend
	PushEndpoint string `koanf:"push_endpoint" json:"push_endpoint" validate:"omitempty,url"`

	// PushToken is the bearer token sent with every push request
	PushToken string `koanf:"push_token" json:"push_token"`

	// PushTimeout bounds each push HTTP call, in seconds
	PushTimeout int `koanf:"push_timeout" json:"push_timeout" validate:"omitempty,min=1,max=300"`

	// Foreground presentation options registered once per process
	PlaySound  bool `koanf:"play_sound" json:"play_sound"`
	SetBadge   bool `koanf:"set_badge" json:"set_badge"`
	ShowBanner bool `koanf:"show_banner" json:"show_banner"`
	ShowInList bool `koanf:"show_in_list" json:"show_in_list"`

	// SoundFile is an optional custom sound file path
	SoundFile string `koanf:"sound_file" json:"sound_file"`

	// QuietInCI suppresses desktop notifications in CI and non-TTY sessions
	QuietInCI bool `koanf:"quiet_in_ci" json:"quiet_in_ci"`
}

// Load loads configuration from global, local, and environment sources
// Priority: Environment variables > Local config > Global config > Defaults
func Load(localConfigPath string) (*Configuration, error) {
	k := koanf.New(".")

	// Apply defaults first
	defaults := GetDefaults()
	for key, value := range defaults {
		k.Set(key, value)
	}

	// Load global config if it exists
	homeDir, err := os.UserHomeDir()
	if err == nil {
		globalPath := filepath.Join(homeDir, ".nudge", "config.json")
		if _, err := os.Stat(globalPath); err == nil {
			if err := k.Load(file.Provider(globalPath), json.Parser()); err != nil {
				return nil, fmt.Errorf("failed to load global config: %w", err)
			}
		}
	}

	// Load local config if it exists
	if localConfigPath != "" {
		if _, err := os.Stat(localConfigPath); err == nil {
			if err := k.Load(file.Provider(localConfigPath), json.Parser()); err != nil {
				return nil, fmt.Errorf("failed to load local config: %w", err)
			}
		}
	}

	// Override with environment variables (highest priority)
	k.Load(env.Provider("NUDGE_", ".", envTransform), nil)

	var cfg Configuration
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	cfg.SoundFile = expandHomePath(cfg.SoundFile)

	return &cfg, nil
}

// Validate checks field constraints and cross-field consistency
func (c *Configuration) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	if c.Backend == "push" && strings.TrimSpace(c.PushEndpoint) == "" {
		return fmt.Errorf("backend 'push' requires push_endpoint to be set")
	}

	return nil
}

// ResolveBackend returns the effective backend name. The auto backend picks
// push when an endpoint is configured and desktop otherwise.
func (c *Configuration) ResolveBackend() string {
	if c.Backend != "auto" {
		return c.Backend
	}
	if strings.TrimSpace(c.PushEndpoint) != "" {
		return "push"
	}
	return "desktop"
}

// GlobalConfigPath returns the path of the global config file
func GlobalConfigPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".nudge", "config.json")
}

// envTransform converts environment variable names to config keys
// Example: NUDGE_PUSH_ENDPOINT -> push_endpoint
func envTransform(s string) string {
	return strings.ToLower(strings.TrimPrefix(s, "NUDGE_"))
}

// expandHomePath expands ~ to the user's home directory
func expandHomePath(path string) string {
	if strings.HasPrefix(path, "~/") {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			return filepath.Join(homeDir, path[2:])
		}
	}
	return path
}
