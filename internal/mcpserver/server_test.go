package mcpserver

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"toolbox/internal/catalog"
	"toolbox/internal/toolsvc"
	"toolbox/internal/toolsvc/toolsvctest"
)

func toolByName(t *testing.T, s *Server, name string) server.ServerTool {
	t.Helper()
	for _, st := range s.tools {
		if st.Tool.Name == name {
			return st
		}
	}
	t.Fatalf("tool %s not registered", name)
	return server.ServerTool{}
}

func call(t *testing.T, s *Server, name string, args map[string]interface{}) *mcp.CallToolResult {
	t.Helper()
	req := mcp.CallToolRequest{}
	req.Params.Name = name
	req.Params.Arguments = args
	res, err := toolByName(t, s, name).Handler(context.Background(), req)
	require.NoError(t, err)
	require.NotNil(t, res)
	return res
}

func textOf(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	require.NotEmpty(t, res.Content)
	tc, ok := res.Content[0].(mcp.TextContent)
	require.True(t, ok, "first content is %T", res.Content[0])
	return tc.Text
}

func TestNew_RegistersEveryCatalogueTool(t *testing.T) {
	s := New(nil, "test")
	tools := s.Tools()
	all := catalog.Tools(catalog.AllCategories)
	require.Len(t, tools, len(all))
	for i, tool := range all {
		assert.Equal(t, tool.ID, tools[i].Name)
		assert.Contains(t, tools[i].Description, tool.Description)
	}
	assert.NotNil(t, s.MCPServer())
}

func TestToolFor_Schema(t *testing.T) {
	tool, err := catalog.Find("password-generator")
	require.NoError(t, err)
	def := ToolFor(tool)

	assert.Equal(t, "object", def.InputSchema.Type)
	length, ok := def.InputSchema.Properties["length"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "number", length["type"])
	assert.Equal(t, float64(4), length["minimum"])
	assert.Equal(t, float64(128), length["maximum"])
	assert.Equal(t, float64(16), length["default"])

	upper, ok := def.InputSchema.Properties["include_uppercase"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "boolean", upper["type"])
	assert.Equal(t, true, upper["default"])

	tool, err = catalog.Find("case-converter")
	require.NoError(t, err)
	def = ToolFor(tool)
	caseType, ok := def.InputSchema.Properties["case_type"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "string", caseType["type"])
	assert.Contains(t, caseType["enum"], "snake")

	tool, err = catalog.Find("calculator")
	require.NoError(t, err)
	def = ToolFor(tool)
	assert.Contains(t, def.InputSchema.Required, "expression")

	tool, err = catalog.Find("uuid-generator")
	require.NoError(t, err)
	assert.Empty(t, ToolFor(tool).InputSchema.Properties)
}

func TestHandler_TextResult(t *testing.T) {
	srv := toolsvctest.New()
	defer srv.Close()
	s := New(toolsvc.New(srv.URL), "test")

	res := call(t, s, "case-converter", map[string]interface{}{
		"text":      "hello world",
		"case_type": "upper",
	})
	assert.False(t, res.IsError)
	assert.Equal(t, "HELLO WORLD", textOf(t, res))
}

func TestHandler_NumberArguments(t *testing.T) {
	srv := toolsvctest.New()
	defer srv.Close()
	s := New(toolsvc.New(srv.URL), "test")

	res := call(t, s, "length-converter", map[string]interface{}{
		"value":   float64(10),
		"to_unit": "foot",
	})
	assert.False(t, res.IsError)
	assert.Equal(t, "10 meter = 32.8084 foot", textOf(t, res))
}

func TestHandler_ImageResult(t *testing.T) {
	srv := toolsvctest.New()
	defer srv.Close()
	s := New(toolsvc.New(srv.URL), "test")

	res := call(t, s, "qr-generator", map[string]interface{}{"text": "https://go.dev"})
	assert.False(t, res.IsError)
	require.Len(t, res.Content, 2)
	assert.Equal(t, "https://go.dev", textOf(t, res))

	img, ok := res.Content[1].(mcp.ImageContent)
	require.True(t, ok)
	assert.Equal(t, "image/png", img.MIMEType)
	assert.Equal(t, strings.TrimPrefix(toolsvctest.PNGDataURI, "data:image/png;base64,"), img.Data)
}

func TestHandler_Errors(t *testing.T) {
	srv := toolsvctest.New()
	defer srv.Close()
	srv.Fail(http.MethodPost, "/api/tools/math/calculate", http.StatusBadRequest, "Invalid expression")
	s := New(toolsvc.New(srv.URL), "test")

	res := call(t, s, "calculator", map[string]interface{}{"expression": "2+"})
	assert.True(t, res.IsError)
	assert.Equal(t, "Error: Invalid expression", textOf(t, res))

	res = call(t, s, "calculator", map[string]interface{}{"nope": "1"})
	assert.True(t, res.IsError)
	assert.Contains(t, textOf(t, res), `unknown field "nope"`)

	res = call(t, s, "calculator", nil)
	assert.True(t, res.IsError)
	assert.Equal(t, "Error: Expression is required", textOf(t, res))
}

func TestHandler_LocalToolWithoutService(t *testing.T) {
	s := New(nil, "test")
	res := call(t, s, "json-formatter", map[string]interface{}{"json": `{"b":1,"a":[true]}`})
	assert.False(t, res.IsError)
	assert.Equal(t, "{\n  \"b\": 1,\n  \"a\": [\n    true\n  ]\n}", textOf(t, res))

	res = call(t, s, "uuid-generator", nil)
	assert.True(t, res.IsError)
	assert.Equal(t, "Error: no tool service configured", textOf(t, res))
}

func TestArgString(t *testing.T) {
	tests := []struct {
		in   interface{}
		want string
	}{
		{nil, ""},
		{"x", "x"},
		{float64(300), "300"},
		{0.5, "0.5"},
		{true, "true"},
		{[]interface{}{"a", "b"}, "a\nb"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, argString(tt.in))
	}
}
