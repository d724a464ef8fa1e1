package models

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when an entity does not exist — or exists but
// belongs to another user. The two cases are deliberately indistinguishable
// to callers.
var ErrNotFound = errors.New("not found")

// ValidationError reports a bad request body or out-of-range setting. It is
// returned to the caller and never logged as a server fault.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// NewValidationError creates a ValidationError for a named field.
func NewValidationError(field, format string, args ...any) *ValidationError {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}
