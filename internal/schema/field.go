package schema

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// FieldKind is the control type a field renders as.
type FieldKind int

const (
	KindText FieldKind = iota
	KindMultilineText
	KindNumber
	KindSelect
	KindColor
	KindCheckbox
	KindRange
)

// String makes FieldKind satisfy the fmt.Stringer interface.
func (k FieldKind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindMultilineText:
		return "multiline-text"
	case KindNumber:
		return "number"
	case KindSelect:
		return "single-select"
	case KindColor:
		return "color"
	case KindCheckbox:
		return "checkbox"
	case KindRange:
		return "range"
	default:
		return "unknown"
	}
}

// MarshalYAML renders the kind by name.
func (k FieldKind) MarshalYAML() (interface{}, error) {
	return k.String(), nil
}

// Numeric reports whether values of this kind are parsed as numbers.
func (k FieldKind) Numeric() bool {
	return k == KindNumber || k == KindRange
}

// Option is one choice of a single-select field.
type Option struct {
	Value string `yaml:"value"`
	Label string `yaml:"label"`
}

// Field describes one input control of a tool.
//
// Min, Max and Step are UI affordances only (slider and spinner bounds).
// Values outside them are passed through unchanged; the remote operation is
// the authority on rejecting them.
type Field struct {
	Name        string    `yaml:"name"`
	Label       string    `yaml:"label"`
	Kind        FieldKind `yaml:"kind"`
	Default     string    `yaml:"default,omitempty"`
	Placeholder string    `yaml:"placeholder,omitempty"`
	Required    bool      `yaml:"required,omitempty"`
	Min         *float64  `yaml:"min,omitempty"`
	Max         *float64  `yaml:"max,omitempty"`
	Step        float64   `yaml:"step,omitempty"`
	Options     []Option  `yaml:"options,omitempty"`
}

// Bounds returns a pointer pair for Min/Max, keeping field literals short.
func Bounds(min, max float64) (*float64, *float64) {
	return &min, &max
}

// HasOption reports whether v is one of the field's select options.
func (f Field) HasOption(v string) bool {
	for _, o := range f.Options {
		if o.Value == v {
			return true
		}
	}
	return false
}

// Advance returns the value one step away from current in direction delta
// (+1 or -1). Selects cycle through their options, checkboxes toggle and
// ranges move by Step clamped to Min/Max. Other kinds return current.
func (f Field) Advance(current string, delta int) string {
	switch f.Kind {
	case KindSelect:
		if len(f.Options) == 0 {
			return current
		}
		idx := 0
		for i, o := range f.Options {
			if o.Value == current {
				idx = i
				break
			}
		}
		idx = (idx + delta + len(f.Options)) % len(f.Options)
		return f.Options[idx].Value
	case KindCheckbox:
		return strconv.FormatBool(!ParseBool(current))
	case KindRange:
		step := f.Step
		if step == 0 {
			step = 1
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(current), 64)
		if err != nil {
			v, _ = strconv.ParseFloat(f.Default, 64)
		}
		base := 0.0
		if f.Min != nil {
			base = *f.Min
		}
		v += float64(delta) * step
		v = base + math.Round((v-base)/step)*step
		if f.Min != nil && v < *f.Min {
			v = *f.Min
		}
		if f.Max != nil && v > *f.Max {
			v = *f.Max
		}
		return FormatNumber(roundTo(v, decimals(step)))
	default:
		return current
	}
}

// decimals counts the fractional digits of step, e.g. 2 for 0.05.
func decimals(step float64) int {
	_, frac, ok := strings.Cut(FormatNumber(step), ".")
	if !ok {
		return 0
	}
	return len(frac)
}

func roundTo(v float64, places int) float64 {
	r, err := strconv.ParseFloat(strconv.FormatFloat(v, 'f', places, 64), 64)
	if err != nil {
		return v
	}
	return r
}

// ParseBool interprets checkbox values. Anything other than a true-ish
// literal is false.
func ParseBool(s string) bool {
	b, err := strconv.ParseBool(strings.TrimSpace(s))
	return err == nil && b
}

// FormatNumber renders v without a trailing ".0" for whole numbers.
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Describe returns a short human description such as "range 0..100".
func (f Field) Describe() string {
	var parts []string
	parts = append(parts, f.Kind.String())
	if f.Min != nil && f.Max != nil {
		parts = append(parts, fmt.Sprintf("%s..%s", FormatNumber(*f.Min), FormatNumber(*f.Max)))
	}
	if len(f.Options) > 0 {
		values := make([]string, 0, len(f.Options))
		for _, o := range f.Options {
			values = append(values, o.Value)
		}
		parts = append(parts, "["+strings.Join(values, "|")+"]")
	}
	return strings.Join(parts, " ")
}
