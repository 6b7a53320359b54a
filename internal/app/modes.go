package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"toolbox/internal/catalog"
	"toolbox/internal/lifecycle"
	"toolbox/internal/mcpserver"
	"toolbox/internal/operation"
	"toolbox/internal/present"
	"toolbox/internal/schema"
	"toolbox/internal/tui/controller"
	"toolbox/internal/tui/design"
	"toolbox/internal/tui/model"
	"toolbox/pkg/logging"
)

// Transports accepted by RunMCP.
const (
	TransportStdio = "stdio"
	TransportSSE   = "sse"
)

// runTUIMode executes the interactive terminal UI mode
func runTUIMode(ctx context.Context, config *Config, services *Services) error {
	logging.Info("CLI", "Starting TUI mode...")

	design.Initialize(true)

	// Switch logging to channel-based system for TUI integration
	logLevel := logging.LevelInfo
	if config.Debug {
		logLevel = logging.LevelDebug
	}
	logChan := logging.InitForTUI(logLevel)
	defer logging.CloseTUIChannel()

	p, err := controller.NewProgram(model.TUIConfig{
		DebugMode:   config.Debug,
		Service:     services.Client,
		Policy:      services.Policy,
		DownloadDir: services.DownloadDir,
		Fetcher:     services.Client,
	}, logChan)
	if err != nil {
		logging.Error("TUI-Lifecycle", err, "Error creating TUI program")
		return err
	}

	if _, err := p.Run(); err != nil {
		logging.Error("TUI-Lifecycle", err, "Error running TUI program")
		return err
	}
	logging.Info("TUI-Lifecycle", "TUI exited.")

	return nil
}

// runMCPMode serves every catalogue tool over MCP until ctx ends or the
// client disconnects.
func runMCPMode(ctx context.Context, services *Services, transport, addr, version string) error {
	srv := mcpserver.New(services.Client, version)
	logging.Info("MCP", "Serving %d tools over %s", len(srv.Tools()), transport)

	switch transport {
	case "", TransportStdio:
		return srv.ServeStdio()
	case TransportSSE:
		return srv.ServeSSE(ctx, addr)
	default:
		return fmt.Errorf("unknown transport %q (want %s or %s)", transport, TransportStdio, TransportSSE)
	}
}

// runToolMode performs a single request outside the dashboard. Image
// results are saved into saveDir when it is set.
func runToolMode(ctx context.Context, w io.Writer, services *Services, toolID string, sets []string, saveDir string) error {
	tool, err := catalog.Find(toolID)
	if err != nil {
		return err
	}

	desc := operation.ResolveTool(tool)
	values, err := parseSets(desc.Fields, sets)
	if err != nil {
		return err
	}

	ctl := lifecycle.New(desc, services.Client, lifecycle.WithPolicy(services.Policy))
	call := ctl.Trigger(values)
	ctl.Apply(call.Run(ctx))

	v := present.Render(ctl.State())
	if v.IsError {
		return errors.New(strings.TrimPrefix(v.Text, lifecycle.ErrorPrefix))
	}

	if v.HasImage() {
		if saveDir == "" {
			fmt.Fprintln(w, present.Summary(v))
			return nil
		}
		path, err := present.SaveImage(ctx, v.Image, saveDir, services.Client)
		if err != nil {
			return fmt.Errorf("failed to save image: %w", err)
		}
		fmt.Fprintf(w, "Saved %s\n", path)
		return nil
	}

	fmt.Fprintln(w, v.Text)
	return nil
}

// parseSets seeds every field with its default, then applies name=value
// assignments in order.
func parseSets(fields []schema.Field, sets []string) (schema.Values, error) {
	values := schema.NewValues(fields)
	for _, s := range sets {
		name, value, ok := strings.Cut(s, "=")
		if !ok {
			return values, fmt.Errorf("invalid --set %q: expected name=value", s)
		}
		if err := values.Set(strings.TrimSpace(name), value); err != nil {
			return values, fmt.Errorf("invalid --set %q: %w", s, err)
		}
	}
	return values, nil
}
