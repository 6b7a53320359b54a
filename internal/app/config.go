package app

import (
	"toolbox/internal/config"
)

// Config holds the application configuration
type Config struct {
	// Debug settings
	Debug bool

	// ConfigPath loads exactly this file instead of the layered lookup.
	ConfigPath string

	// Toolbox is the loaded configuration, nil until NewApplication runs.
	Toolbox *config.ToolboxConfig
}

// NewConfig creates a new application configuration
func NewConfig(debug bool, configPath string) *Config {
	return &Config{
		Debug:      debug,
		ConfigPath: configPath,
	}
}
