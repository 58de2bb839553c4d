// Package apperrors provides the error taxonomy shared by driftkit's
// state tracking and UI helpers: a value-comparable wrapping error that
// preserves the original failure's type and stack, plus specialized
// error kinds call sites can match on to render category-specific UI.
package apperrors

import (
	"fmt"
	"strings"
)

// ErrorKind identifies the dynamic type of a wrapped error's cause.
// It is a classification tag, not a message: two causes of the same Go
// type carry the same kind even when their texts differ.
type ErrorKind string

// KindNil is the kind assigned when an error was wrapped without a cause.
const KindNil ErrorKind = "<nil>"

// KindOf derives the classification tag for an error from its dynamic type.
func KindOf(err error) ErrorKind {
	if err == nil {
		return KindNil
	}
	return ErrorKind(fmt.Sprintf("%T", err))
}

// AppError wraps a failure caught at a boundary. It retains the original
// error for inspection, the classification of its type, and the call
// stack at the point of wrapping. All fields are fixed at construction.
type AppError struct {
	message string
	kind    ErrorKind
	cause   error
	stack   string
}

// Wrap builds an AppError around cause, capturing the current call stack.
// A nil cause is allowed and classified as KindNil.
//
// Wrap panics when message is empty: a wrapping site that cannot name
// what failed is a programmer error, caught at construction rather than
// surfaced later as a blank diagnostic.
func Wrap(message string, cause error) *AppError {
	if message == "" {
		panic("apperrors: Wrap called with empty message")
	}
	return &AppError{
		message: message,
		kind:    KindOf(cause),
		cause:   cause,
		stack:   CaptureStack(),
	}
}

// Error returns the message exactly, with no kind or cause decoration.
// The enriched fields are for logs; the message is the user-facing text.
func (e *AppError) Error() string {
	return e.message
}

// Message returns the human-readable description given at construction.
func (e *AppError) Message() string { return e.message }

// Kind returns the classification tag of the original error's type.
func (e *AppError) Kind() ErrorKind { return e.kind }

// Cause returns the original error, or nil if none was given.
func (e *AppError) Cause() error { return e.cause }

// Stack returns the call stack captured when the error was wrapped.
func (e *AppError) Stack() string { return e.stack }

// Unwrap exposes the cause to errors.Is and errors.As.
func (e *AppError) Unwrap() error {
	return e.cause
}

// Equal reports whether two wrapped errors carry the same message, kind,
// and cause. The captured stack is deliberately excluded: the same
// failure wrapped at two call sites still compares equal.
func (e *AppError) Equal(other *AppError) bool {
	if other == nil {
		return false
	}
	return e.message == other.message &&
		e.kind == other.kind &&
		e.cause == other.cause
}

// UnauthorizedError indicates an authentication or permission denial.
type UnauthorizedError struct {
	Message string
}

func (e *UnauthorizedError) Error() string { return e.Message }

// NotFoundError indicates a missing resource or entity.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string { return e.Message }

// NetworkError indicates a transport-level failure against a remote URL.
type NetworkError struct {
	Message string
	// URL is the endpoint the request was addressed to.
	URL string
	// StatusCode is the HTTP status, 0 when not applicable.
	StatusCode int
}

func (e *NetworkError) Error() string { return e.Message }

// ValidationError indicates rejected input.
type ValidationError struct {
	Message string
	// FieldErrors maps a field name to its error text. Nil when the
	// failure is not attributable to individual fields.
	FieldErrors map[string]string
}

func (e *ValidationError) Error() string { return e.Message }

// ConfigError indicates missing or invalid setup.
type ConfigError struct {
	Message string
}

func (e *ConfigError) Error() string { return e.Message }

// InvalidActionError indicates an operation attempted from a state that
// does not permit it.
type InvalidActionError struct {
	Message string
	// CurrentState names the state the component was in. Empty omits
	// the state suffix from Error().
	CurrentState string
	// ValidActions lists the actions permitted from CurrentState, in
	// order. Empty omits the actions suffix from Error().
	ValidActions []string
}

// Error appends the current-state suffix and then the valid-actions
// suffix to the message, each only when present.
func (e *InvalidActionError) Error() string {
	var sb strings.Builder
	sb.WriteString(e.Message)
	if e.CurrentState != "" {
		sb.WriteString(" (Current state: ")
		sb.WriteString(e.CurrentState)
		sb.WriteString(")")
	}
	if len(e.ValidActions) > 0 {
		sb.WriteString(" Valid actions: ")
		sb.WriteString(strings.Join(e.ValidActions, ", "))
	}
	return sb.String()
}
