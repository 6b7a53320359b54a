package cmd

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"toolbox/internal/app"
)

var (
	mcpTransport string
	mcpAddr      string
)

func newMCPCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "Serve the tool catalogue over the Model Context Protocol",
		Long: `Exposes every catalogue tool as an MCP tool so AI assistants can call
them. Tool inputs become JSON schema properties; image results are
returned as image content.

Transports:
  stdio (default)  speak MCP on stdin/stdout, for assistants that spawn toolbox
  sse              listen on --addr and serve http://<addr>/sse`,
		Args: cobra.NoArgs,
		RunE: runMCP,
	}
	cmd.Flags().StringVar(&mcpTransport, "transport", app.TransportStdio, "MCP transport (stdio, sse)")
	cmd.Flags().StringVar(&mcpAddr, "addr", "localhost:8090", "Listen address for the sse transport")
	return cmd
}

func runMCP(cmd *cobra.Command, args []string) error {
	application, err := app.NewApplication(app.NewConfig(debug, configPath))
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return application.RunMCP(ctx, mcpTransport, mcpAddr, rootCmd.Version)
}
