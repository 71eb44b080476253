// Package apperrors defines the error taxonomy shared by services and
// handlers. Services translate store-level failures into these values so
// that no raw persistence error ever reaches the transport boundary.
package apperrors

import (
	"errors"
	"fmt"
)

var (
	// ErrUnauthorized covers bad credentials, missing/invalid/expired
	// tokens and inactive accounts. The message stays generic on purpose.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrForbidden means the caller is authenticated but lacks a required role.
	ErrForbidden = errors.New("forbidden")
	// ErrNotFound means the requested resource id does not exist.
	ErrNotFound = errors.New("not found")
	// ErrInternal is the opaque translation of any unanticipated failure.
	// The underlying cause is logged server-side, never surfaced.
	ErrInternal = errors.New("unexpected error, check server logs")
)

// ConflictError is a unique-constraint violation. Detail carries the
// offending constraint so the caller can see what collided.
type ConflictError struct {
	Detail string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("conflict: %s", e.Detail)
}

// NewConflict wraps a constraint detail into a ConflictError.
func NewConflict(detail string) error {
	return &ConflictError{Detail: detail}
}

// IsConflict reports whether err is a ConflictError and returns it.
func IsConflict(err error) (*ConflictError, bool) {
	var ce *ConflictError
	if errors.As(err, &ce) {
		return ce, true
	}
	return nil, false
}
