package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeConfig writes raw YAML to dir/name, creating dir.
func writeConfig(t *testing.T, dir, name, content string) string {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, 0755))
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// withPaths points the layered loader at user and project files under dir
// and clears the environment override.
func withPaths(t *testing.T, userPath, projectPath string) {
	t.Helper()
	origUser, origProject, origEnv := getUserConfigPath, getProjectConfigPath, osGetenv
	t.Cleanup(func() {
		getUserConfigPath, getProjectConfigPath, osGetenv = origUser, origProject, origEnv
	})
	getUserConfigPath = func() (string, error) { return userPath, nil }
	getProjectConfigPath = func() (string, error) { return projectPath, nil }
	osGetenv = func(string) string { return "" }
}

func TestLoadConfig_DefaultOnly(t *testing.T) {
	tempDir := t.TempDir()
	withPaths(t, filepath.Join(tempDir, "missing-user.yaml"), filepath.Join(tempDir, "missing-project.yaml"))

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, DefaultBaseURL, cfg.Service.BaseURL)
	assert.Equal(t, DefaultBasePath, cfg.Service.BasePath)
	assert.Equal(t, DefaultTimeout, cfg.Service.Timeout)
	assert.False(t, cfg.Dispatch.DiscardStale())
	assert.Equal(t, ".", cfg.UI.DownloadDir)
}

func TestLoadConfig_Layering(t *testing.T) {
	tempDir := t.TempDir()
	userPath := writeConfig(t, filepath.Join(tempDir, "home", userConfigDir), configFileName, `
service:
  baseURL: "https://user.example.com"
  timeout: 5s
  headers:
    X-Api-Key: "user-key"
    X-Team: "tools"
dispatch:
  discardStaleResponses: true
`)
	projectPath := writeConfig(t, filepath.Join(tempDir, "work", projectConfigDir), configFileName, `
service:
  baseURL: "https://project.example.com"
  headers:
    X-Api-Key: "project-key"
dispatch:
  discardStaleResponses: false
ui:
  downloadDir: "out"
`)
	withPaths(t, userPath, projectPath)

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "https://project.example.com", cfg.Service.BaseURL)
	assert.Equal(t, 5*time.Second, cfg.Service.Timeout, "user timeout survives the project layer")
	assert.Equal(t, map[string]string{"X-Api-Key": "project-key", "X-Team": "tools"}, cfg.Service.Headers)
	assert.False(t, cfg.Dispatch.DiscardStale(), "explicit false overrides the user layer")
	assert.Equal(t, "out", cfg.UI.DownloadDir)
}

func TestLoadConfig_EnvOverride(t *testing.T) {
	tempDir := t.TempDir()
	withPaths(t, filepath.Join(tempDir, "none.yaml"), filepath.Join(tempDir, "none2.yaml"))
	osGetenv = func(k string) string {
		if k == BackendURLEnv {
			return "http://127.0.0.1:9000"
		}
		return ""
	}

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "http://127.0.0.1:9000", cfg.Service.BaseURL)
}

func TestLoadConfig_InvalidYAML(t *testing.T) {
	tempDir := t.TempDir()
	projectPath := writeConfig(t, tempDir, configFileName, "service: [unclosed")
	withPaths(t, filepath.Join(tempDir, "none.yaml"), projectPath)

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "project config")
}

func TestLoadConfigFromPath(t *testing.T) {
	tempDir := t.TempDir()
	withPaths(t, "", "")
	path := writeConfig(t, tempDir, "custom.yaml", "ui:\n  downloadDir: images\n")

	cfg, err := LoadConfigFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, "images", cfg.UI.DownloadDir)
	assert.Equal(t, DefaultBaseURL, cfg.Service.BaseURL)

	_, err = LoadConfigFromPath(filepath.Join(tempDir, "missing.yaml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		baseURL string
		timeout time.Duration
		wantErr bool
	}{
		{"http", "http://localhost:8001", time.Second, false},
		{"https", "https://tools.example.com", 0, false},
		{"no scheme", "localhost:8001", time.Second, true},
		{"ftp", "ftp://example.com", time.Second, true},
		{"negative timeout", "http://localhost", -time.Second, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := GetDefaultConfig()
			cfg.Service.BaseURL = tt.baseURL
			cfg.Service.Timeout = tt.timeout
			err := Validate(cfg)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
