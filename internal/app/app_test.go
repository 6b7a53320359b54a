package app

import (
	"bytes"
	"context"
	"net/http"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"toolbox/internal/config"
	"toolbox/internal/lifecycle"
	"toolbox/internal/toolsvc/toolsvctest"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func newTestApp(t *testing.T, srv *toolsvctest.Server, extra string) *Application {
	t.Helper()
	path := writeConfig(t, "service:\n  baseURL: "+srv.URL+"\n"+extra)
	a, err := NewApplication(NewConfig(false, path))
	require.NoError(t, err)
	return a
}

func TestNewConfig(t *testing.T) {
	cfg := NewConfig(true, "/tmp/x.yaml")
	assert.True(t, cfg.Debug)
	assert.Equal(t, "/tmp/x.yaml", cfg.ConfigPath)
	assert.Nil(t, cfg.Toolbox, "Toolbox should be nil before loading")
}

func TestNewApplication_BadConfig(t *testing.T) {
	path := writeConfig(t, "service:\n  baseURL: ftp://nowhere\n")
	_, err := NewApplication(NewConfig(false, path))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load toolbox configuration")
}

func TestInitializeServices(t *testing.T) {
	discard := true
	tc := config.GetDefaultConfig()
	tc.Service.BaseURL = "http://example.test:9000"
	tc.Service.Timeout = 5 * time.Second
	tc.Dispatch.DiscardStaleResponses = &discard
	tc.UI.DownloadDir = "out"

	s, err := InitializeServices(&Config{Toolbox: &tc})
	require.NoError(t, err)
	assert.Equal(t, "http://example.test:9000", s.Client.BaseURL())
	assert.Equal(t, lifecycle.DiscardStale, s.Policy)
	assert.Equal(t, "out", s.DownloadDir)

	tc.Dispatch.DiscardStaleResponses = nil
	s, err = InitializeServices(&Config{Toolbox: &tc})
	require.NoError(t, err)
	assert.Equal(t, lifecycle.LastWriteWins, s.Policy)
}

func TestRunTool_Text(t *testing.T) {
	srv := toolsvctest.New()
	defer srv.Close()
	a := newTestApp(t, srv, "  headers:\n    X-Api-Key: secret\n")

	var out bytes.Buffer
	err := a.RunTool(context.Background(), &out, "case-converter", []string{"text=hello world", "case_type=upper"}, "")
	require.NoError(t, err)
	assert.Equal(t, "HELLO WORLD\n", out.String())

	last, ok := srv.LastCall()
	require.True(t, ok)
	assert.Equal(t, "secret", last.Header.Get("X-Api-Key"))
}

func TestRunTool_RemoteError(t *testing.T) {
	srv := toolsvctest.New()
	defer srv.Close()
	srv.Fail(http.MethodPost, "/api/tools/math/calculate", http.StatusBadRequest, "Invalid expression")
	a := newTestApp(t, srv, "")

	var out bytes.Buffer
	err := a.RunTool(context.Background(), &out, "calculator", []string{"expression=2+"}, "")
	require.Error(t, err)
	assert.Equal(t, "Invalid expression", err.Error())
	assert.Empty(t, out.String())
}

func TestRunTool_LocalOperation(t *testing.T) {
	srv := toolsvctest.New()
	defer srv.Close()
	a := newTestApp(t, srv, "")

	var out bytes.Buffer
	err := a.RunTool(context.Background(), &out, "json-formatter", []string{`json={"b":1,"a":[true]}`}, "")
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"b\": 1,\n  \"a\": [\n    true\n  ]\n}\n", out.String())
	assert.Zero(t, srv.CallCount())
}

func TestRunTool_SavesImage(t *testing.T) {
	srv := toolsvctest.New()
	defer srv.Close()
	a := newTestApp(t, srv, "")
	dir := t.TempDir()

	var out bytes.Buffer
	err := a.RunTool(context.Background(), &out, "qr-generator", []string{"text=https://go.dev"}, dir)
	require.NoError(t, err)

	path := filepath.Join(dir, "generated.png")
	assert.Equal(t, "Saved "+path+"\n", out.String())
	_, err = os.Stat(path)
	assert.NoError(t, err)
}

func TestRunTool_BadInput(t *testing.T) {
	srv := toolsvctest.New()
	defer srv.Close()
	a := newTestApp(t, srv, "")
	var out bytes.Buffer

	err := a.RunTool(context.Background(), &out, "no-such-tool", nil, "")
	assert.Error(t, err)

	err = a.RunTool(context.Background(), &out, "case-converter", []string{"text"}, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected name=value")

	err = a.RunTool(context.Background(), &out, "case-converter", []string{"nope=1"}, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown field "nope"`)
	assert.Zero(t, srv.CallCount())
}

func TestRunMCP_UnknownTransport(t *testing.T) {
	srv := toolsvctest.New()
	defer srv.Close()
	a := newTestApp(t, srv, "")

	err := a.RunMCP(context.Background(), "carrier-pigeon", "", "test")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown transport")
}
