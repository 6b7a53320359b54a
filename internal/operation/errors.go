package operation

import (
	"errors"
	"fmt"
	"strings"

	"toolbox/internal/schema"
)

// ValidationError reports input rejected locally, before any remote call.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// IsValidation reports whether err is a local validation failure.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

func checkRequired(values schema.Values) error {
	missing := values.Missing()
	if len(missing) == 0 {
		return nil
	}
	labels := make([]string, 0, len(missing))
	for _, name := range missing {
		labels = append(labels, labelOf(values, name))
	}
	return &ValidationError{
		Field:   missing[0],
		Message: fmt.Sprintf("%s is required", strings.Join(labels, ", ")),
	}
}

// invalid converts a schema parse failure into a ValidationError that names
// the field by its label.
func invalid(values schema.Values, err error) error {
	var fe *schema.FieldError
	if errors.As(err, &fe) {
		return &ValidationError{
			Field:   fe.Field,
			Message: fmt.Sprintf("%s: %s", labelOf(values, fe.Field), fe.Reason),
		}
	}
	return err
}

func labelOf(values schema.Values, name string) string {
	if f, ok := values.Field(name); ok && f.Label != "" {
		return f.Label
	}
	return name
}
