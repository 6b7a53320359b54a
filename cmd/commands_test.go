package cmd

import (
	"bytes"
	"encoding/json"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"toolbox/internal/catalog"
	"toolbox/internal/config"
	"toolbox/internal/toolsvc/toolsvctest"
)

// execute runs rootCmd with args after restoring every flag variable to its
// default, returning stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	debug, configPath = false, ""
	listSearch, listOutputFormat = "", string(OutputFormatTable)
	schemaOutputFormat = string(OutputFormatYAML)
	runSets, runSaveDir = nil, ""

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
	})
	err := rootCmd.Execute()
	return out.String(), err
}

func configFor(t *testing.T, srv *toolsvctest.Server) string {
	t.Helper()
	t.Setenv(config.BackendURLEnv, "")
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("service:\n  baseURL: "+srv.URL+"\n"), 0o644))
	return path
}

func TestListCommand_Table(t *testing.T) {
	out, err := execute(t, "list", "text")
	require.NoError(t, err)
	assert.Contains(t, out, "ID")
	assert.Contains(t, out, "case-converter")
	assert.NotContains(t, out, "calculator")
	assert.Contains(t, out, "tools in Text Tools")
}

func TestListCommand_SearchJSON(t *testing.T) {
	out, err := execute(t, "list", "--search", "UUID", "-o", "json")
	require.NoError(t, err)

	var tools []catalog.Tool
	require.NoError(t, json.Unmarshal([]byte(out), &tools))
	require.Len(t, tools, 1)
	assert.Equal(t, "uuid-generator", tools[0].ID)
}

func TestListCommand_YAMLAll(t *testing.T) {
	out, err := execute(t, "list", "-o", "yaml")
	require.NoError(t, err)

	var tools []catalog.Tool
	require.NoError(t, yaml.Unmarshal([]byte(out), &tools))
	assert.Equal(t, catalog.Tools(catalog.AllCategories), tools)
}

func TestListCommand_NoMatches(t *testing.T) {
	out, err := execute(t, "list", "--search", "zzz-nothing")
	require.NoError(t, err)
	assert.Equal(t, "No tools found\n", out)
}

func TestListCommand_Errors(t *testing.T) {
	_, err := execute(t, "list", "nope")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown category "nope"`)

	_, err = execute(t, "list", "-o", "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported output format: xml")
}

func TestSchemaCommand(t *testing.T) {
	out, err := execute(t, "schema", "case-converter")
	require.NoError(t, err)

	var fields []map[string]interface{}
	require.NoError(t, yaml.Unmarshal([]byte(out), &fields))
	require.Len(t, fields, 2)
	assert.Equal(t, "text", fields[0]["name"])
	assert.Equal(t, "multiline-text", fields[0]["kind"])
	assert.Equal(t, "case_type", fields[1]["name"])
	assert.Equal(t, "single-select", fields[1]["kind"])
	assert.Equal(t, "upper", fields[1]["default"])
}

func TestSchemaCommand_Table(t *testing.T) {
	out, err := execute(t, "schema", "case-converter", "-o", "table")
	require.NoError(t, err)
	assert.Contains(t, out, "KIND")
	assert.Contains(t, out, "case_type")
	assert.Contains(t, out, "upper, lower")

	out, err = execute(t, "schema", "uuid-generator", "-o", "table")
	require.NoError(t, err)
	assert.Equal(t, "uuid-generator takes no input\n", out)
}

func TestSchemaCommand_UnknownTool(t *testing.T) {
	_, err := execute(t, "schema", "no-such-tool")
	require.Error(t, err)
	assert.ErrorIs(t, err, catalog.ErrToolNotFound)
}

func TestRunCommand(t *testing.T) {
	srv := toolsvctest.New()
	defer srv.Close()

	out, err := execute(t, "--config", configFor(t, srv), "run", "case-converter", "--set", "text=hello", "--set", "case_type=upper")
	require.NoError(t, err)
	assert.Equal(t, "HELLO\n", out)
	assert.Equal(t, 1, srv.CallCount())
}

func TestRunCommand_RemoteError(t *testing.T) {
	srv := toolsvctest.New()
	defer srv.Close()
	srv.Fail(http.MethodPost, "/api/tools/math/calculate", http.StatusBadRequest, "Invalid expression")

	_, err := execute(t, "--config", configFor(t, srv), "run", "calculator", "--set", "expression=1+")
	require.Error(t, err)
	assert.Equal(t, "Invalid expression", err.Error())
}

func TestVersionCommand(t *testing.T) {
	SetVersion("1.2.3")
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "toolbox version 1.2.3\n", out)
}
