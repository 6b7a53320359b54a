package operation

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"toolbox/internal/schema"
)

// object decodes a response body into its top-level members. Member order
// and number formatting are kept raw.
func object(body []byte) (map[string]json.RawMessage, error) {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(body, &obj); err != nil {
		return nil, fmt.Errorf("response is not a JSON object: %w", err)
	}
	return obj, nil
}

// scalar renders a JSON member as display text: strings unquoted, numbers
// and booleans as written, missing or null members as "".
func scalar(raw json.RawMessage) string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || string(raw) == "null" {
		return ""
	}
	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err == nil {
			return s
		}
	}
	return string(raw)
}

// lines joins a JSON string array with newlines.
func lines(raw json.RawMessage) (string, error) {
	if len(bytes.TrimSpace(raw)) == 0 {
		return "", nil
	}
	var items []string
	if err := json.Unmarshal(raw, &items); err != nil {
		return "", fmt.Errorf("expected a list of strings: %w", err)
	}
	return strings.Join(items, "\n"), nil
}

// indent pretty-prints raw JSON with a two-space indent, keeping member
// order.
func indent(raw []byte) (string, error) {
	var buf bytes.Buffer
	if err := json.Indent(&buf, bytes.TrimSpace(raw), "", "  "); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// member returns an interpreter that shows one top-level member as plain
// text.
func member(key string) func(schema.Values, []byte) (Result, error) {
	return func(_ schema.Values, body []byte) (Result, error) {
		obj, err := object(body)
		if err != nil {
			return Result{}, err
		}
		return Result{Shape: ShapePlainText, Text: scalar(obj[key])}, nil
	}
}

// listMember shows a string array member one item per line.
func listMember(key string, shape ResultShape) func(schema.Values, []byte) (Result, error) {
	return func(_ schema.Values, body []byte) (Result, error) {
		obj, err := object(body)
		if err != nil {
			return Result{}, err
		}
		text, err := lines(obj[key])
		if err != nil {
			return Result{}, err
		}
		return Result{Shape: shape, Text: text}, nil
	}
}

// wholeBody shows the full response pretty-printed.
func wholeBody(_ schema.Values, body []byte) (Result, error) {
	text, err := indent(body)
	if err != nil {
		return Result{}, err
	}
	return Result{Shape: ShapeStructuredText, Text: text}, nil
}

// imageMember shows an image member with a caption taken from caption.
func imageMember(key string, caption func(schema.Values) string) func(schema.Values, []byte) (Result, error) {
	return func(values schema.Values, body []byte) (Result, error) {
		obj, err := object(body)
		if err != nil {
			return Result{}, err
		}
		return Result{Shape: ShapeImage, Image: scalar(obj[key]), Text: caption(values)}, nil
	}
}
