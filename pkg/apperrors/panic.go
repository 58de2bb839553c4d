package apperrors

import "fmt"

// PanicError represents a recovered panic, letting a panic travel the
// same failure path as an ordinary error.
type PanicError struct {
	// Op is the operation that panicked.
	Op string
	// Value is the value passed to panic().
	Value any
	// Stack contains the call stack at the time of the panic.
	Stack string
}

func (e *PanicError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("panic in %s: %v", e.Op, e.Value)
	}
	return fmt.Sprintf("panic: %v", e.Value)
}
