package app

import (
	"context"
	"fmt"
	"io"
	"os"

	"toolbox/internal/config"
	"toolbox/pkg/logging"
)

// Application is the main application structure that bootstraps and runs toolbox
type Application struct {
	config   *Config
	services *Services
}

// NewApplication creates and initializes a new application instance.
// Logs go to stderr so that stdout stays clean for command output and the
// MCP stdio transport.
func NewApplication(cfg *Config) (*Application, error) {
	appLogLevel := logging.LevelInfo
	if cfg.Debug {
		appLogLevel = logging.LevelDebug
	}
	logging.InitForCLI(appLogLevel, os.Stderr)

	var toolboxCfg config.ToolboxConfig
	var err error

	if cfg.ConfigPath != "" {
		toolboxCfg, err = config.LoadConfigFromPath(cfg.ConfigPath)
		if err != nil {
			logging.Error("Bootstrap", err, "Failed to load toolbox configuration from path: %s", cfg.ConfigPath)
			return nil, fmt.Errorf("failed to load toolbox configuration from path %s: %w", cfg.ConfigPath, err)
		}
		logging.Debug("Bootstrap", "Loaded configuration from custom path: %s", cfg.ConfigPath)
	} else {
		toolboxCfg, err = config.LoadConfig()
		if err != nil {
			logging.Error("Bootstrap", err, "Failed to load toolbox configuration")
			return nil, fmt.Errorf("failed to load toolbox configuration: %w", err)
		}
		logging.Debug("Bootstrap", "Loaded configuration using layered approach")
	}

	cfg.Toolbox = &toolboxCfg

	services, err := InitializeServices(cfg)
	if err != nil {
		logging.Error("Bootstrap", err, "Failed to initialize services")
		return nil, fmt.Errorf("failed to initialize services: %w", err)
	}
	logging.Debug("Bootstrap", "Tool service at %s (%s)", services.Client.BaseURL(), services.Policy)

	return &Application{
		config:   cfg,
		services: services,
	}, nil
}

// Services returns the initialized services.
func (a *Application) Services() *Services {
	return a.services
}

// RunDashboard runs the interactive dashboard until the user quits.
func (a *Application) RunDashboard(ctx context.Context) error {
	return runTUIMode(ctx, a.config, a.services)
}

// RunMCP serves the catalogue as MCP tools over transport ("stdio" or
// "sse"). addr is the listen address for sse.
func (a *Application) RunMCP(ctx context.Context, transport, addr, version string) error {
	return runMCPMode(ctx, a.services, transport, addr, version)
}

// RunTool performs one request for toolID and writes the result to w.
func (a *Application) RunTool(ctx context.Context, w io.Writer, toolID string, sets []string, saveDir string) error {
	return runToolMode(ctx, w, a.services, toolID, sets, saveDir)
}
