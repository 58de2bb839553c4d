package apperrors

import "log/slog"

// LogHandler is a Handler that logs reported errors through slog.
type LogHandler struct {
	// Logger receives the error records. slog.Default() when nil.
	Logger *slog.Logger
	// Verbose includes the captured stack in the record.
	Verbose bool
}

// HandleError logs a wrapped error at error level.
func (h *LogHandler) HandleError(err *AppError) {
	if err == nil {
		return
	}
	l := h.Logger
	if l == nil {
		l = slog.Default()
	}
	attrs := []any{
		slog.String("kind", string(err.Kind())),
	}
	if cause := err.Cause(); cause != nil {
		attrs = append(attrs, slog.String("cause", cause.Error()))
	}
	if h.Verbose && err.Stack() != "" {
		attrs = append(attrs, slog.String("stack", err.Stack()))
	}
	l.Error(err.Message(), attrs...)
}
