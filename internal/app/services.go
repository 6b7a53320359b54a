package app

import (
	"sort"

	"toolbox/internal/lifecycle"
	"toolbox/internal/toolsvc"
)

// Services holds the shared clients every mode runs against.
type Services struct {
	Client      *toolsvc.Client
	Policy      lifecycle.Policy
	DownloadDir string
}

// InitializeServices builds the tool service client and dispatch policy
// from the loaded configuration.
func InitializeServices(cfg *Config) (*Services, error) {
	tc := cfg.Toolbox
	opts := []toolsvc.Option{
		toolsvc.WithTimeout(tc.Service.Timeout),
		toolsvc.WithBasePath(tc.Service.BasePath),
	}

	keys := make([]string, 0, len(tc.Service.Headers))
	for k := range tc.Service.Headers {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		opts = append(opts, toolsvc.WithHeader(k, tc.Service.Headers[k]))
	}

	policy := lifecycle.LastWriteWins
	if tc.Dispatch.DiscardStale() {
		policy = lifecycle.DiscardStale
	}

	return &Services{
		Client:      toolsvc.New(tc.Service.BaseURL, opts...),
		Policy:      policy,
		DownloadDir: tc.UI.DownloadDir,
	}, nil
}
