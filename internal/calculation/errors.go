package calculation

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is matched by every InvalidInputError via errors.Is.
var ErrInvalidInput = errors.New("invalid input")

// InvalidInputError reports a non-numeric, non-positive or out-of-range input.
// Message is safe to show to the user.
type InvalidInputError struct {
	Field   string
	Value   string
	Message string
}

func (e *InvalidInputError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("invalid %s %s: %s", e.Field, e.Value, e.Message)
}

// Is lets errors.Is(err, ErrInvalidInput) match.
func (e *InvalidInputError) Is(target error) bool { return target == ErrInvalidInput }

func invalidInput(field, value, format string, args ...any) *InvalidInputError {
	return &InvalidInputError{Field: field, Value: value, Message: fmt.Sprintf(format, args...)}
}
