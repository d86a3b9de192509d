package config

// GetDefaults returns the default configuration values
func GetDefaults() map[string]interface{} {
	return map[string]interface{}{
		"enabled":       true,
		"backend":       "auto",
		"push_endpoint": "",
		"push_token":    "",
		"push_timeout":  10,
		"play_sound":    true,
		"set_badge":     false,
		"show_banner":   true,
		"show_in_list":  true,
		"sound_file":    "",
		"quiet_in_ci":   true,
	}
}
