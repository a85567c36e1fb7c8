package service

import (
	"errors"
	"sort"
	"strings"
)

// Failure classes surfaced to callers. Handlers map them to status codes.
var (
	ErrAuthenticationRequired = errors.New("authentication credentials were not provided or are invalid")
	ErrPermissionDenied       = errors.New("you do not have permission to perform this action")
	ErrNotFound               = errors.New("not found")
)

// NonFieldErrors is the key used for messages that belong to no single field.
const NonFieldErrors = "non_field_errors"

// ValidationError collects per-field messages. Err optionally keeps the
// underlying cause for errors.Is checks; it is never shown to clients.
type ValidationError struct {
	Fields map[string][]string
	Err    error
}

func (e *ValidationError) Unwrap() error { return e.Err }

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+strings.Join(e.Fields[k], "; "))
	}
	return "validation failed: " + strings.Join(parts, ", ")
}

// Add records msg against field.
func (e *ValidationError) Add(field, msg string) {
	if e.Fields == nil {
		e.Fields = make(map[string][]string)
	}
	e.Fields[field] = append(e.Fields[field], msg)
}

// OrNil returns e when it holds at least one message.
func (e *ValidationError) OrNil() error {
	if e == nil || len(e.Fields) == 0 {
		return nil
	}
	return e
}

// Invalid builds a ValidationError with a single message.
func Invalid(field, msg string) *ValidationError {
	v := &ValidationError{}
	v.Add(field, msg)
	return v
}
