// Package apperr defines the application error taxonomy and its mapping
// onto HTTP status codes. Services return these; the HTTP adapter
// translates them into structured failure responses.
package apperr

import (
	"fmt"
	"net/http"
)

// Kind classifies an application error.
type Kind int

const (
	// Internal is an unexpected failure, surfaced generically.
	Internal Kind = iota
	// Unauthenticated means a valid session was required and absent.
	Unauthenticated
	// AlreadyAuthenticated means a session was present where forbidden.
	AlreadyAuthenticated
	// NotFound means the target resource id does not exist.
	NotFound
	// OperationNotApplied means the resource exists but the mutation
	// affected zero rows, which signals an ownership mismatch.
	OperationNotApplied
	// ValidationFailed means the input violated a shape or pattern rule.
	ValidationFailed
	// Conflict marks a uniqueness race that callers resolve as the
	// opposite state already achieved; it never reaches a client.
	Conflict
)

// Error carries a kind, a client-facing message, and an optional cause.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// StatusCode returns the HTTP status for the error's kind.
func (e *Error) StatusCode() int {
	switch e.Kind {
	case Unauthenticated, AlreadyAuthenticated:
		return http.StatusForbidden
	case NotFound:
		return http.StatusNotFound
	case OperationNotApplied:
		return http.StatusUnauthorized
	case ValidationFailed:
		return http.StatusPreconditionFailed
	case Conflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// New creates an Error with the given kind and message.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Wrap creates an Error with an underlying cause.
func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}
