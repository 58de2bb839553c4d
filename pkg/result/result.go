// Package result provides a two-branch success/failure container.
//
// driftkit helpers that absorb failures at a boundary (operation
// tracking, snackbar display) hand outcomes back as a Result instead of
// propagating errors, so callers branch explicitly on which side is
// populated.
package result

// Result holds either a success value or a failure error, never both.
// The zero value is a success carrying the zero value of T.
type Result[T any] struct {
	value T
	err   error
}

// Ok returns a success result wrapping value.
func Ok[T any](value T) Result[T] {
	return Result[T]{value: value}
}

// Err returns a failure result wrapping err.
// Panics on a nil err: a failure with no error is a programmer mistake,
// caught at construction so IsOk/IsErr stay trustworthy.
func Err[T any](err error) Result[T] {
	if err == nil {
		panic("result: Err called with nil error")
	}
	return Result[T]{err: err}
}

// IsOk reports whether the result is the success branch.
func (r Result[T]) IsOk() bool { return r.err == nil }

// IsErr reports whether the result is the failure branch.
func (r Result[T]) IsErr() bool { return r.err != nil }

// Value returns the success value. On the failure branch it returns the
// zero value of T.
func (r Result[T]) Value() T { return r.value }

// Err returns the failure error, or nil on the success branch.
func (r Result[T]) Err() error { return r.err }

// ValueOr returns the success value, or fallback on the failure branch.
func (r Result[T]) ValueOr(fallback T) T {
	if r.err != nil {
		return fallback
	}
	return r.value
}

// Get unpacks the result into Go's conventional (value, error) pair.
func (r Result[T]) Get() (T, error) {
	return r.value, r.err
}
