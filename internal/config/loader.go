package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// For mocking in tests
var osUserHomeDir = os.UserHomeDir
var osGetwd = os.Getwd
var osGetenv = os.Getenv

const (
	userConfigDir    = ".config/toolbox"
	projectConfigDir = ".toolbox"
	configFileName   = "config.yaml"

	// BackendURLEnv overrides service.baseURL after all files are merged.
	BackendURLEnv = "TOOLBOX_BACKEND_URL"
)

// LoadConfig loads the toolbox configuration by layering default, user, and
// project settings, then applying environment overrides.
func LoadConfig() (ToolboxConfig, error) {
	config := GetDefaultConfig()

	userConfigPath, err := getUserConfigPath()
	if err != nil {
		// User config is optional.
		fmt.Fprintf(os.Stderr, "Warning: Could not determine user config path: %v\n", err)
	} else if config, err = overlayFile(config, userConfigPath); err != nil {
		return ToolboxConfig{}, fmt.Errorf("error loading user config from %s: %w", userConfigPath, err)
	}

	projectConfigPath, err := getProjectConfigPath()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Could not determine project config path: %v\n", err)
	} else if config, err = overlayFile(config, projectConfigPath); err != nil {
		return ToolboxConfig{}, fmt.Errorf("error loading project config from %s: %w", projectConfigPath, err)
	}

	return finish(config)
}

// LoadConfigFromPath loads defaults overlaid with exactly one file. The file
// must exist.
func LoadConfigFromPath(path string) (ToolboxConfig, error) {
	overlay, err := loadConfigFromFile(path)
	if err != nil {
		return ToolboxConfig{}, fmt.Errorf("error loading config from %s: %w", path, err)
	}
	return finish(mergeConfigs(GetDefaultConfig(), overlay))
}

func overlayFile(base ToolboxConfig, path string) (ToolboxConfig, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return base, nil
	}
	overlay, err := loadConfigFromFile(path)
	if err != nil {
		return base, err
	}
	return mergeConfigs(base, overlay), nil
}

func finish(config ToolboxConfig) (ToolboxConfig, error) {
	if v := strings.TrimSpace(osGetenv(BackendURLEnv)); v != "" {
		config.Service.BaseURL = v
	}
	if err := Validate(config); err != nil {
		return ToolboxConfig{}, err
	}
	return config, nil
}

var getUserConfigPath = func() (string, error) {
	homeDir, err := osUserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, userConfigDir, configFileName), nil
}

var getProjectConfigPath = func() (string, error) {
	wd, err := osGetwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(wd, projectConfigDir, configFileName), nil
}

// loadConfigFromFile loads a ToolboxConfig from a YAML file.
func loadConfigFromFile(filePath string) (ToolboxConfig, error) {
	var config ToolboxConfig
	data, err := os.ReadFile(filePath)
	if err != nil {
		return ToolboxConfig{}, err
	}
	if err := yaml.Unmarshal(data, &config); err != nil {
		return ToolboxConfig{}, err
	}
	return config, nil
}

// mergeConfigs merges 'overlay' config into 'base' config. Set fields of the
// overlay win; headers are merged key by key.
func mergeConfigs(base, overlay ToolboxConfig) ToolboxConfig {
	merged := base

	if overlay.Service.BaseURL != "" {
		merged.Service.BaseURL = overlay.Service.BaseURL
	}
	if overlay.Service.BasePath != "" {
		merged.Service.BasePath = overlay.Service.BasePath
	}
	if overlay.Service.Timeout != 0 {
		merged.Service.Timeout = overlay.Service.Timeout
	}
	if len(overlay.Service.Headers) > 0 {
		headers := make(map[string]string, len(base.Service.Headers)+len(overlay.Service.Headers))
		for k, v := range base.Service.Headers {
			headers[k] = v
		}
		for k, v := range overlay.Service.Headers {
			headers[k] = v
		}
		merged.Service.Headers = headers
	}

	if overlay.Dispatch.DiscardStaleResponses != nil {
		v := *overlay.Dispatch.DiscardStaleResponses
		merged.Dispatch.DiscardStaleResponses = &v
	}

	if overlay.UI.DownloadDir != "" {
		merged.UI.DownloadDir = overlay.UI.DownloadDir
	}

	return merged
}

// Validate checks settings that would otherwise fail on first use.
func Validate(config ToolboxConfig) error {
	u, err := url.Parse(config.Service.BaseURL)
	if err != nil {
		return fmt.Errorf("invalid service.baseURL %q: %w", config.Service.BaseURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("invalid service.baseURL %q: scheme must be http or https", config.Service.BaseURL)
	}
	if u.Host == "" {
		return fmt.Errorf("invalid service.baseURL %q: missing host", config.Service.BaseURL)
	}
	if config.Service.Timeout < 0 {
		return fmt.Errorf("invalid service.timeout %s: must not be negative", config.Service.Timeout)
	}
	return nil
}

// GetUserConfigDir returns the user configuration directory path
func GetUserConfigDir() (string, error) {
	homeDir, err := osUserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, userConfigDir), nil
}
