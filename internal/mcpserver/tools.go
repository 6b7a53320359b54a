package mcpserver

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"toolbox/internal/catalog"
	"toolbox/internal/operation"
	"toolbox/internal/schema"
)

// ToolFor builds the MCP tool definition of a catalogue tool.
func ToolFor(t catalog.Tool) mcp.Tool {
	opts := []mcp.ToolOption{
		mcp.WithDescription(fmt.Sprintf("%s: %s", t.Name, t.Description)),
	}
	for _, f := range operation.InputSchemaFor(t) {
		opts = append(opts, propertyFor(f))
	}
	return mcp.NewTool(t.ID, opts...)
}

func propertyFor(f schema.Field) mcp.ToolOption {
	props := []mcp.PropertyOption{mcp.Description(f.Label)}
	if f.Required {
		props = append(props, mcp.Required())
	}

	switch {
	case f.Kind == schema.KindCheckbox:
		props = append(props, mcp.DefaultBool(schema.ParseBool(f.Default)))
		return mcp.WithBoolean(f.Name, props...)

	case f.Kind.Numeric():
		if f.Min != nil {
			props = append(props, mcp.Min(*f.Min))
		}
		if f.Max != nil {
			props = append(props, mcp.Max(*f.Max))
		}
		if v, err := strconv.ParseFloat(f.Default, 64); err == nil {
			props = append(props, mcp.DefaultNumber(v))
		}
		return mcp.WithNumber(f.Name, props...)

	case f.Kind == schema.KindSelect:
		values := make([]string, 0, len(f.Options))
		for _, o := range f.Options {
			values = append(values, o.Value)
		}
		props = append(props, mcp.Enum(values...))
		if f.Default != "" {
			props = append(props, mcp.DefaultString(f.Default))
		}
		return mcp.WithString(f.Name, props...)

	default:
		if f.Default != "" {
			props = append(props, mcp.DefaultString(f.Default))
		}
		return mcp.WithString(f.Name, props...)
	}
}

// valuesFor seeds the defaults of fields and overlays MCP arguments.
// Unknown argument names are rejected.
func valuesFor(fields []schema.Field, args map[string]interface{}) (schema.Values, error) {
	values := schema.NewValues(fields)
	for name, raw := range args {
		if err := values.Set(name, argString(raw)); err != nil {
			return schema.Values{}, err
		}
	}
	return values, nil
}

// argString converts a decoded JSON argument into a raw field value.
func argString(raw interface{}) string {
	switch v := raw.(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		return schema.FormatNumber(v)
	case bool:
		return strconv.FormatBool(v)
	case []interface{}:
		parts := make([]string, 0, len(v))
		for _, item := range v {
			parts = append(parts, argString(item))
		}
		return strings.Join(parts, "\n")
	default:
		return fmt.Sprint(v)
	}
}
