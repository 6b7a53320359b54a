package config

import (
	"time"
)

// ToolboxConfig is the top-level configuration structure for toolbox.
type ToolboxConfig struct {
	Service  ServiceConfig  `yaml:"service"`
	Dispatch DispatchConfig `yaml:"dispatch"`
	UI       UIConfig       `yaml:"ui"`
}

// ServiceConfig locates the remote tool service.
type ServiceConfig struct {
	BaseURL  string            `yaml:"baseURL,omitempty"`  // e.g. "http://localhost:8001"
	BasePath string            `yaml:"basePath,omitempty"` // prefix of every endpoint, default "/api"
	Timeout  time.Duration     `yaml:"timeout,omitempty"`  // per-call timeout, e.g. "30s"
	Headers  map[string]string `yaml:"headers,omitempty"`  // extra headers, e.g. an API key
}

// DispatchConfig tunes the request lifecycle.
type DispatchConfig struct {
	// DiscardStaleResponses drops results of superseded triggers instead of
	// letting the last arrival win. A pointer so that an explicit false in an
	// overlay can override a true below it.
	DiscardStaleResponses *bool `yaml:"discardStaleResponses,omitempty"`
}

// DiscardStale reports the effective setting.
func (d DispatchConfig) DiscardStale() bool {
	return d.DiscardStaleResponses != nil && *d.DiscardStaleResponses
}

// UIConfig holds dashboard preferences.
type UIConfig struct {
	DownloadDir string `yaml:"downloadDir,omitempty"` // where generated images are saved
}
