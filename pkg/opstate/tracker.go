// Package opstate tracks the loading/error/status bookkeeping around
// operations run on behalf of a UI component.
//
// A Tracker is owned by exactly one component. Every mutation checks the
// owner's mounted flag at the moment it applies, so an operation that
// completes after the component is gone silently discards its state
// update instead of writing into a disposed component.
package opstate

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/kibmuikia/driftkit/pkg/apperrors"
	"github.com/kibmuikia/driftkit/pkg/result"
)

// Owner is the component a Tracker is attached to. The UI adapter layer
// implements it on top of the host framework's widget lifecycle.
type Owner interface {
	// Mounted reports whether the component is currently live and
	// attached to the rendered tree.
	Mounted() bool
	// Rebuild signals the UI layer to re-render the component.
	Rebuild()
}

// Tracker holds the loading flag, the last recorded error, and an
// optional status message for one component.
//
// Tracker is not thread-safe. Like the widget state it belongs to, it
// must only be touched from the UI thread; background goroutines hand
// results back through the host framework's dispatch mechanism.
type Tracker struct {
	owner  Owner
	label  string
	id     string
	logger *slog.Logger

	loading bool
	lastErr error
	status  string
}

// NewTracker creates a tracker for owner. The label names the owning
// component in diagnostics; each tracker additionally gets a generated
// id so log lines from two instances of the same component stay
// distinguishable. A nil logger falls back to slog.Default().
func NewTracker(owner Owner, label string, logger *slog.Logger) *Tracker {
	if logger == nil {
		logger = slog.Default()
	}
	id := uuid.NewString()
	return &Tracker{
		owner:  owner,
		label:  label,
		id:     id,
		logger: logger.With("component", label, "tracker", id),
	}
}

// Label returns the component label given at construction.
func (t *Tracker) Label() string { return t.label }

// ID returns the generated tracker identifier.
func (t *Tracker) ID() string { return t.id }

// Loading reports whether a tracked operation is in flight.
func (t *Tracker) Loading() bool { return t.loading }

// LastError returns the most recently recorded failure, or nil.
func (t *Tracker) LastError() error { return t.lastErr }

// Status returns the current status message, empty by default.
func (t *Tracker) Status() string { return t.status }

// mutate applies fn and triggers one re-render, but only while the
// owner is mounted. Unmounted owners drop the mutation silently.
func (t *Tracker) mutate(fn func()) {
	if t.owner == nil || !t.owner.Mounted() {
		return
	}
	fn()
	t.owner.Rebuild()
}

// SetLoading sets the loading flag. No-op when the owner is unmounted.
func (t *Tracker) SetLoading(v bool) {
	t.mutate(func() { t.loading = v })
}

// SetError records err as the last failure. No-op when the owner is
// unmounted.
func (t *Tracker) SetError(err error) {
	t.mutate(func() { t.lastErr = err })
}

// SetStatus replaces the status message. No-op when the owner is
// unmounted.
func (t *Tracker) SetStatus(s string) {
	t.mutate(func() { t.status = s })
}

// StartLoading flips the loading flag on and clears the last error in a
// single update. No-op when the owner is unmounted.
func (t *Tracker) StartLoading() {
	t.mutate(func() {
		t.loading = true
		t.lastErr = nil
	})
}

// Reset restores all three fields to their defaults in a single update.
// This is the only way to clear the error and status besides SetError
// and SetStatus; see StateUpdate.
func (t *Tracker) Reset() {
	t.mutate(func() {
		t.loading = false
		t.lastErr = nil
		t.status = ""
	})
}

// StateUpdate names the fields to change in an Update call. Each field
// uses presence to mean "apply": a nil Loading, a nil Err, and an empty
// Status all leave the corresponding field untouched. This makes it
// impossible to clear the error or status through Update; use Reset.
type StateUpdate struct {
	Loading *bool
	Err     error
	Status  string
}

// Update applies the provided fields in one guarded update with a
// single re-render. No-op when the owner is unmounted.
func (t *Tracker) Update(u StateUpdate) {
	t.mutate(func() {
		if u.Loading != nil {
			t.loading = *u.Loading
		}
		if u.Err != nil {
			t.lastErr = u.Err
		}
		if u.Status != "" {
			t.status = u.Status
		}
	})
}

// Run executes op with full loading/error bookkeeping and returns its
// outcome as a result instead of an error.
//
// It flips the tracker to loading (clearing any previous error), invokes
// op, and always clears the loading flag afterward, whichever way the
// operation ends. A failure (an error return or a panic inside op) is
// wrapped into an *apperrors.AppError, recorded as the last error,
// logged with the component tag and stack, reported to the global error
// handler, and returned on the failure branch. Failures never propagate
// past this call.
//
// ctx is passed through to op untouched; Run itself does not cancel a
// running operation. Completion after the owner unmounts is safe: the
// state writes become no-ops while the returned result is still valid.
func Run[T any](ctx context.Context, t *Tracker, op func(context.Context) (T, error)) result.Result[T] {
	t.StartLoading()
	defer t.SetLoading(false)

	value, err := invoke(ctx, t.label, op)
	if err != nil {
		wrapped := coerce(err)
		t.SetError(wrapped)
		t.logger.Error("tracked operation failed",
			"error", wrapped.Message(),
			"kind", string(wrapped.Kind()),
			"stack", wrapped.Stack(),
		)
		apperrors.Report(wrapped)
		return result.Err[T](wrapped)
	}
	return result.Ok(value)
}

// invoke calls op, converting a panic into an error so it takes the
// ordinary failure path.
func invoke[T any](ctx context.Context, label string, op func(context.Context) (T, error)) (value T, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &apperrors.PanicError{
				Op:    label,
				Value: r,
				Stack: apperrors.CaptureStack(),
			}
		}
	}()
	return op(ctx)
}

// coerce returns err as an *apperrors.AppError, wrapping when needed.
// The wrapped message is the error's own text so the user-facing string
// survives the wrapping.
func coerce(err error) *apperrors.AppError {
	if wrapped, ok := err.(*apperrors.AppError); ok {
		return wrapped
	}
	message := err.Error()
	if message == "" {
		message = "operation failed"
	}
	return apperrors.Wrap(message, err)
}
