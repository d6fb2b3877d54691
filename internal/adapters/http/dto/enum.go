package dto

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jsamuelsen11/task-tracker/internal/domain"
	"github.com/jsamuelsen11/task-tracker/internal/domain/task"
)

// EnumError reports a request value outside an enumeration. It is a
// boundary error: the domain never sees the raw token.
type EnumError struct {
	Field   string
	Value   string
	Allowed []string
}

func (e *EnumError) Error() string {
	return fmt.Sprintf("Invalid value '%s' for field '%s'. Allowed values are: [%s]",
		e.Value, e.Field, strings.Join(e.Allowed, ", "))
}

// Unwrap classifies the error as invalid input.
func (e *EnumError) Unwrap() error {
	return domain.ErrValidation
}

// Status is the wire form of task.Status. Decoding rejects unknown tokens
// with an *EnumError.
type Status task.Status

func (s *Status) UnmarshalJSON(b []byte) error {
	var raw string
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	v := task.Status(raw)
	if !v.IsValid() {
		return &EnumError{Field: "status", Value: raw, Allowed: names(task.Statuses())}
	}
	*s = Status(v)
	return nil
}

// Priority is the wire form of task.Priority.
type Priority task.Priority

func (p *Priority) UnmarshalJSON(b []byte) error {
	var raw string
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	v := task.Priority(raw)
	if !v.IsValid() {
		return &EnumError{Field: "priority", Value: raw, Allowed: names(task.Priorities())}
	}
	*p = Priority(v)
	return nil
}

func names[T ~string](values []T) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = string(v)
	}
	return out
}
