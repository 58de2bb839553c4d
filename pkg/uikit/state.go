// Package uikit binds driftkit's framework-agnostic pieces to the drift
// widget framework: a widget state base with tracking and logging baked
// in, a generic scoped value provider, and a snackbar helper.
package uikit

import (
	"log/slog"

	"github.com/go-drift/drift/pkg/core"
	"github.com/go-drift/drift/pkg/theme"

	"github.com/kibmuikia/driftkit/pkg/opstate"
)

// BaseState extends drift's StateBase with a ready-made operation
// tracker, component-tagged logging, and theme shortcuts. Embed it in a
// widget state and call Attach from InitState:
//
//	type profileState struct {
//	    uikit.BaseState
//	}
//
//	func (s *profileState) InitState() {
//	    s.Attach("ProfilePage", nil)
//	}
//
//	func (s *profileState) load(ctx context.Context) {
//	    res := opstate.Run(ctx, s.Tracker(), s.fetchProfile)
//	    ...
//	}
type BaseState struct {
	core.StateBase

	label   string
	logger  *slog.Logger
	tracker *opstate.Tracker
}

// Attach names the state and prepares its tracker and logger. A nil
// logger falls back to slog.Default(). Init and dispose are logged at
// info level, tagged with the label.
func (s *BaseState) Attach(label string, logger *slog.Logger) {
	if logger == nil {
		logger = slog.Default()
	}
	s.label = label
	s.logger = logger.With("component", label)
	s.tracker = opstate.NewTracker(s, label, logger)
	s.logger.Info("state initialized")
	s.OnDispose(func() {
		s.logger.Info("state disposed")
	})
}

// Tracker returns the state's operation tracker, attaching with a
// generic label if Attach was never called.
func (s *BaseState) Tracker() *opstate.Tracker {
	if s.tracker == nil {
		s.Attach("state", nil)
	}
	return s.tracker
}

// Logger returns the component-tagged logger.
func (s *BaseState) Logger() *slog.Logger {
	if s.logger == nil {
		s.Attach("state", nil)
	}
	return s.logger
}

// Mounted reports whether the state is live and attached to the tree.
// Satisfies opstate.Owner.
func (s *BaseState) Mounted() bool {
	return s.Element() != nil && !s.IsDisposed()
}

// Rebuild schedules a re-render. Satisfies opstate.Owner.
func (s *BaseState) Rebuild() {
	s.SetState(nil)
}

// Theme returns the nearest app theme data.
func (s *BaseState) Theme(ctx core.BuildContext) *theme.AppThemeData {
	return theme.AppThemeOf(ctx)
}

// Colors returns the nearest theme's color scheme.
func (s *BaseState) Colors(ctx core.BuildContext) theme.ColorScheme {
	return theme.ColorsOf(ctx)
}
