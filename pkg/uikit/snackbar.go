package uikit

import (
	"errors"
	"sync"
	"time"

	"github.com/go-drift/drift/pkg/core"
	"github.com/go-drift/drift/pkg/graphics"
	"github.com/go-drift/drift/pkg/layout"
	"github.com/go-drift/drift/pkg/overlay"
	"github.com/go-drift/drift/pkg/platform"
	"github.com/go-drift/drift/pkg/theme"
	"github.com/go-drift/drift/pkg/widgets"

	"github.com/kibmuikia/driftkit/pkg/appconfig"
	"github.com/kibmuikia/driftkit/pkg/apperrors"
	"github.com/kibmuikia/driftkit/pkg/result"
)

// ErrNoOverlay is the cause reported when ShowSnackbar finds no Overlay
// ancestor to host the notification.
var ErrNoOverlay = errors.New("no overlay ancestor in scope")

// DefaultDuration is the auto-dismiss delay used when SnackbarOptions
// leaves Duration zero. Configure overrides it from the settings file.
var DefaultDuration = 4 * time.Second

// Configure applies the loaded settings to the kit's UI-facing
// defaults: the snackbar duration, the process-wide logger, and the
// verbosity of reported errors. Call it once during app startup.
func Configure(cfg *appconfig.Config) {
	if cfg == nil {
		return
	}
	DefaultDuration = cfg.Snackbar.Duration()
	logger := appconfig.Logger(cfg)
	apperrors.SetHandler(&apperrors.LogHandler{Logger: logger, Verbose: cfg.Log.Verbose})
}

// SnackbarOptions configures ShowSnackbar.
type SnackbarOptions struct {
	// Duration before auto-dismiss. Zero means DefaultDuration;
	// negative disables auto-dismiss entirely.
	Duration time.Duration

	// Background overrides the theme's inverse-surface color. The zero
	// value means "theme default", so a fully transparent black
	// background cannot be requested explicitly.
	Background graphics.Color

	// ActionLabel adds a trailing action button when non-empty.
	ActionLabel string

	// OnAction is invoked when the action button is tapped, before the
	// snackbar is dismissed.
	OnAction func()

	// ShowCloseIcon adds a trailing close affordance.
	ShowCloseIcon bool

	// Dismissible lets a tap anywhere on the snackbar body dismiss it.
	Dismissible bool
}

// ShowSnackbar displays a transient notification above the nearest
// [overlay.Overlay], bottom-centered, auto-dismissing after the
// configured duration.
//
// The success branch carries a dismiss function for closing the
// snackbar early; it is idempotent. The failure branch is returned when
// no Overlay ancestor exists, wrapping ErrNoOverlay; the helper never
// panics over a missing display surface.
func ShowSnackbar(ctx core.BuildContext, message string, opts SnackbarOptions) result.Result[func()] {
	ov := overlay.OverlayOf(ctx)
	if ov == nil {
		return result.Err[func()](apperrors.Wrap("unable to show snackbar: no overlay available", ErrNoOverlay))
	}

	var once sync.Once
	var entry *overlay.OverlayEntry

	// OverlayEntry.Remove is idempotent, but sync.Once also guards the
	// timer and manual dismissal racing each other.
	dismiss := func() {
		once.Do(func() {
			entry.Remove()
		})
	}

	entry = overlay.NewOverlayEntry(func(ctx core.BuildContext) core.Widget {
		return snackbarWidget(ctx, message, opts, dismiss)
	})
	ov.Insert(entry, nil, nil)

	duration := opts.Duration
	if duration == 0 {
		duration = DefaultDuration
	}
	if duration > 0 {
		time.AfterFunc(duration, func() {
			// Re-enter the UI thread for the removal. Without a
			// registered dispatcher (headless tests) remove directly.
			if !platform.Dispatch(dismiss) {
				dismiss()
			}
		})
	}

	return result.Ok(dismiss)
}

// snackbarWidget builds the snackbar content: message text plus the
// optional action and close affordances, bottom-aligned above the page.
func snackbarWidget(ctx core.BuildContext, message string, opts SnackbarOptions, dismiss func()) core.Widget {
	colors := theme.ColorsOf(ctx)

	background := opts.Background
	if background == 0 {
		background = colors.InverseSurface
	}

	children := []core.Widget{
		widgets.Text{
			Content: message,
			Style: graphics.TextStyle{
				Color:    colors.OnInverseSurface,
				FontSize: 14,
			},
		},
	}

	if opts.ActionLabel != "" {
		children = append(children,
			widgets.HSpace(16),
			widgets.GestureDetector{
				OnTap: func() {
					if opts.OnAction != nil {
						opts.OnAction()
					}
					dismiss()
				},
				Child: widgets.Text{
					Content: opts.ActionLabel,
					Style: graphics.TextStyle{
						Color:      colors.OnInverseSurface,
						FontSize:   14,
						FontWeight: graphics.FontWeightSemibold,
					},
				},
			},
		)
	}

	if opts.ShowCloseIcon {
		children = append(children,
			widgets.HSpace(16),
			widgets.GestureDetector{
				OnTap: dismiss,
				Child: widgets.Text{
					Content: "✕",
					Style: graphics.TextStyle{
						Color:    colors.OnInverseSurface,
						FontSize: 14,
					},
				},
			},
		)
	}

	body := widgets.Container{
		Color:        background,
		BorderRadius: 8,
		Padding:      layout.EdgeInsetsSymmetric(20, 12),
		Child: widgets.Row{
			MainAxisSize: widgets.MainAxisSizeMin,
			Children:     children,
		},
	}

	content := core.Widget(body)
	if opts.Dismissible {
		content = widgets.GestureDetector{
			OnTap: dismiss,
			Child: body,
		}
	}

	return widgets.Stack{
		Fit: widgets.StackFitExpand,
		Children: []core.Widget{
			widgets.Positioned(content).Align(graphics.AlignBottomCenter).Bottom(48),
		},
	}
}
