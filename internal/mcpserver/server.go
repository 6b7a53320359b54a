package mcpserver

import (
	"context"
	"encoding/base64"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"toolbox/internal/catalog"
	"toolbox/internal/lifecycle"
	"toolbox/internal/operation"
	"toolbox/internal/present"
	"toolbox/pkg/logging"
)

const (
	subsystem  = "MCPServer"
	serverName = "toolbox"
)

// Server serves every catalogue tool over MCP.
type Server struct {
	svc   lifecycle.Service
	mcp   *server.MCPServer
	tools []server.ServerTool
}

// New registers one MCP tool per catalogue tool, each backed by svc.
func New(svc lifecycle.Service, version string) *Server {
	s := &Server{svc: svc}
	s.mcp = server.NewMCPServer(
		serverName,
		version,
		server.WithToolCapabilities(true),
	)

	for _, t := range catalog.Tools(catalog.AllCategories) {
		s.tools = append(s.tools, server.ServerTool{
			Tool:    ToolFor(t),
			Handler: s.handlerFor(t),
		})
	}
	s.mcp.AddTools(s.tools...)
	logging.Debug(subsystem, "Registered %d tools", len(s.tools))
	return s
}

// Tools returns the registered tool definitions in catalogue order.
func (s *Server) Tools() []mcp.Tool {
	out := make([]mcp.Tool, 0, len(s.tools))
	for _, st := range s.tools {
		out = append(out, st.Tool)
	}
	return out
}

// MCPServer returns the underlying protocol server.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcp
}

// ServeStdio serves on stdin and stdout until the input closes or the
// process is signalled.
func (s *Server) ServeStdio() error {
	logging.Info(subsystem, "Serving %d tools on stdio", len(s.tools))
	return server.ServeStdio(s.mcp)
}

// ServeSSE serves on addr (host:port) until ctx is cancelled.
func (s *Server) ServeSSE(ctx context.Context, addr string) error {
	sse := server.NewSSEServer(
		s.mcp,
		server.WithBaseURL("http://"+addr),
		server.WithSSEEndpoint("/sse"),
		server.WithMessageEndpoint("/message"),
		server.WithKeepAlive(true),
		server.WithKeepAliveInterval(30*time.Second),
	)

	errCh := make(chan error, 1)
	go func() {
		logging.Info(subsystem, "Serving %d tools on http://%s/sse", len(s.tools), addr)
		errCh <- sse.Start(addr)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		logging.Info(subsystem, "Shutting down SSE server")
		return sse.Shutdown(shutdownCtx)
	}
}

func (s *Server) handlerFor(t catalog.Tool) server.ToolHandlerFunc {
	desc := operation.ResolveTool(t)
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		values, err := valuesFor(desc.Fields, request.GetArguments())
		if err != nil {
			return mcp.NewToolResultError(lifecycle.ErrorPrefix + err.Error()), nil
		}

		ctrl := lifecycle.New(desc, s.svc)
		outcome := ctrl.Trigger(values).Run(ctx)
		ctrl.Apply(outcome)
		logging.Debug(subsystem, "%s finished in %s (phase %s)", t.ID, outcome.Elapsed, ctrl.State().Phase)
		return resultFor(ctrl.State()), nil
	}
}

// resultFor converts a settled panel state into an MCP result.
func resultFor(st lifecycle.State) *mcp.CallToolResult {
	if st.IsError {
		return mcp.NewToolResultError(st.Text)
	}
	v := present.Render(st)
	if !v.HasImage() {
		return mcp.NewToolResultText(v.Text)
	}
	if !strings.HasPrefix(v.Image, "data:") {
		return mcp.NewToolResultText(strings.TrimSpace(st.Text + "\n" + v.Image))
	}
	data, mimeType, err := present.DecodeDataURI(v.Image)
	if err != nil {
		return mcp.NewToolResultError(lifecycle.ErrorPrefix + err.Error())
	}
	if mimeType == "" {
		mimeType = "image/png"
	}
	return mcp.NewToolResultImage(st.Text, base64.StdEncoding.EncodeToString(data), mimeType)
}
