package operation

import (
	"strings"

	"toolbox/internal/schema"
)

// jsonFormat pretty-prints JSON locally.
func jsonFormat() Descriptor {
	return Descriptor{
		Fields: []schema.Field{
			multilineField("json", "JSON", "", `{"key": "value"}`),
		},
		Shape: ShapeStructuredText,
		local: func(v schema.Values) (Result, error) {
			src := strings.TrimSpace(v.String("json"))
			if src == "" {
				return Result{}, &ValidationError{Field: "json", Message: "Invalid JSON - unexpected end of JSON input"}
			}
			text, err := indent([]byte(src))
			if err != nil {
				return Result{}, &ValidationError{Field: "json", Message: "Invalid JSON - " + err.Error()}
			}
			return Result{Shape: ShapeStructuredText, Text: text}, nil
		},
	}
}
