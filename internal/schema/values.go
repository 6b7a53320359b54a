package schema

import (
	"fmt"
	"strconv"
	"strings"
)

// Values holds the current input of one tool panel, keyed by field name.
// Values are raw strings as edited; typed accessors parse on demand.
type Values struct {
	fields []Field
	data   map[string]string
}

// NewValues seeds a value set with the defaults of fields.
func NewValues(fields []Field) Values {
	v := Values{
		fields: fields,
		data:   make(map[string]string, len(fields)),
	}
	for _, f := range fields {
		v.data[f.Name] = f.Default
	}
	return v
}

// Fields returns the schema this value set was created from.
func (v Values) Fields() []Field {
	return v.fields
}

// Field returns the descriptor for name.
func (v Values) Field(name string) (Field, bool) {
	for _, f := range v.fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// Set assigns the raw value of a field. Unknown field names are rejected.
func (v Values) Set(name, value string) error {
	if _, ok := v.Field(name); !ok {
		return fmt.Errorf("unknown field %q", name)
	}
	v.data[name] = value
	return nil
}

// Clone returns an independent snapshot. The lifecycle controller clones at
// trigger time so later edits never reach an in-flight call.
func (v Values) Clone() Values {
	out := Values{
		fields: v.fields,
		data:   make(map[string]string, len(v.data)),
	}
	for k, val := range v.data {
		out.data[k] = val
	}
	return out
}

// Raw returns the unparsed value.
func (v Values) Raw(name string) string {
	return v.data[name]
}

// String returns the value with surrounding whitespace preserved.
func (v Values) String(name string) string {
	return v.data[name]
}

// Float parses a numeric field.
func (v Values) Float(name string) (float64, error) {
	raw := strings.TrimSpace(v.data[name])
	if raw == "" {
		return 0, &FieldError{Field: name, Reason: "a number is required"}
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, &FieldError{Field: name, Reason: fmt.Sprintf("%q is not a number", raw)}
	}
	return f, nil
}

// Int parses an integer field.
func (v Values) Int(name string) (int, error) {
	raw := strings.TrimSpace(v.data[name])
	if raw == "" {
		return 0, &FieldError{Field: name, Reason: "an integer is required"}
	}
	i, err := strconv.Atoi(raw)
	if err != nil {
		return 0, &FieldError{Field: name, Reason: fmt.Sprintf("%q is not an integer", raw)}
	}
	return i, nil
}

// IntOr parses an integer field, falling back to def when the value is blank
// or unparsable.
func (v Values) IntOr(name string, def int) int {
	i, err := v.Int(name)
	if err != nil || i == 0 {
		return def
	}
	return i
}

// OptionalInt returns nil for a blank value.
func (v Values) OptionalInt(name string) (*int, error) {
	if strings.TrimSpace(v.data[name]) == "" {
		return nil, nil
	}
	i, err := v.Int(name)
	if err != nil {
		return nil, err
	}
	return &i, nil
}

// Bool interprets a checkbox field.
func (v Values) Bool(name string) bool {
	return ParseBool(v.data[name])
}

// Lines splits a multiline value into its non-blank lines.
func (v Values) Lines(name string) []string {
	var out []string
	for _, line := range strings.Split(v.data[name], "\n") {
		if strings.TrimSpace(line) != "" {
			out = append(out, line)
		}
	}
	return out
}

// CSV splits a comma-separated value. Items are kept verbatim, including
// surrounding whitespace.
func (v Values) CSV(name string) []string {
	return strings.Split(v.data[name], ",")
}

// Missing returns the names of required fields whose value is blank.
func (v Values) Missing() []string {
	var out []string
	for _, f := range v.fields {
		if f.Required && strings.TrimSpace(v.data[f.Name]) == "" {
			out = append(out, f.Name)
		}
	}
	return out
}

// FieldError reports a value that could not be interpreted.
type FieldError struct {
	Field  string
	Reason string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}
