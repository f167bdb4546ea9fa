package session

import (
	"fmt"
	"strings"
)

// ValidationError reports one or more rejected input fields or SQL rows. It is
// recovered at the screen boundary and rendered inline, never fatal.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Messages, "; ")
}

func newValidationError(messages ...string) *ValidationError {
	return &ValidationError{Messages: messages}
}

// NotFoundError reports a reference to an unknown or deleted entity.
type NotFoundError struct {
	Kind string
	ID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Kind, e.ID)
}

// PrerequisiteError reports an operation attempted before its required
// selections were made (workspace, dataset, material, assistant).
type PrerequisiteError struct {
	Missing []string
}

func (e *PrerequisiteError) Error() string {
	return "prerequisite not met: " + strings.Join(e.Missing, ", ")
}
