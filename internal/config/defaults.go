package config

import "time"

const (
	// DefaultBaseURL is where a locally started tool service listens.
	DefaultBaseURL  = "http://localhost:8001"
	DefaultBasePath = "/api"
	DefaultTimeout  = 30 * time.Second
)

// GetDefaultConfig returns the built-in configuration.
func GetDefaultConfig() ToolboxConfig {
	discard := false
	return ToolboxConfig{
		Service: ServiceConfig{
			BaseURL:  DefaultBaseURL,
			BasePath: DefaultBasePath,
			Timeout:  DefaultTimeout,
			Headers:  map[string]string{},
		},
		Dispatch: DispatchConfig{
			DiscardStaleResponses: &discard,
		},
		UI: UIConfig{
			DownloadDir: ".",
		},
	}
}
