package domain

import (
	"errors"
	"fmt"
)

var (
	ErrConfigNotFound     = errors.New("menu configuration not found")
	ErrModuleNotFound     = errors.New("module not found")
	ErrItemNotFound       = errors.New("menu item not found")
	ErrIndexOutOfRange    = errors.New("index out of range")
	ErrInvalidFlagKey     = errors.New("invalid feature flag key")
	ErrUncommittedChanges = errors.New("draft has uncommitted changes")
	ErrConflictingEdit    = errors.New("configuration has uncommitted draft edits")
	ErrNoActiveDraft      = errors.New("no draft is being edited")
	ErrProtectedConfig    = errors.New("default configurations cannot be changed this way")
	ErrInvalidRole        = errors.New("invalid role")
	ErrUnauthenticated    = errors.New("not authenticated")
	ErrValidation         = errors.New("validation failed")
)

// ValidationError names the input field that was rejected.
type ValidationError struct {
	Field  string
	Reason string
}

func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Reason)
}

// Is lets errors.Is(err, ErrValidation) match any field.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}
