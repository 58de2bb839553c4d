package apperrors

import (
	"fmt"
	"runtime"
	"strings"
	"sync"
)

var (
	// DefaultHandler is the global error handler.
	// It defaults to LogHandler writing through slog.Default().
	DefaultHandler Handler = &LogHandler{}

	handlerMu sync.RWMutex
)

// Handler receives wrapped errors reported by driftkit components.
type Handler interface {
	// HandleError is called once per reported error.
	HandleError(err *AppError)
}

// SetHandler configures the global error handler.
// Pass nil to restore the default LogHandler.
func SetHandler(h Handler) {
	handlerMu.Lock()
	defer handlerMu.Unlock()
	if h == nil {
		DefaultHandler = &LogHandler{}
	} else {
		DefaultHandler = h
	}
}

func getHandler() Handler {
	handlerMu.RLock()
	defer handlerMu.RUnlock()
	return DefaultHandler
}

// Report sends a wrapped error to the global handler.
// Nil errors are ignored.
func Report(err *AppError) {
	if err == nil {
		return
	}
	if h := getHandler(); h != nil {
		h.HandleError(err)
	}
}

// CaptureStack formats the calling goroutine's stack, one
// "function\n\tfile:line" entry per frame. The apperrors frames that
// requested the capture are skipped so the trace starts at the caller.
func CaptureStack() string {
	pcs := make([]uintptr, 32)
	n := runtime.Callers(3, pcs)
	if n == 0 {
		return ""
	}

	var sb strings.Builder
	frames := runtime.CallersFrames(pcs[:n])
	for more := true; more; {
		var frame runtime.Frame
		frame, more = frames.Next()
		fmt.Fprintf(&sb, "%s\n\t%s:%d\n", frame.Function, frame.File, frame.Line)
	}
	return sb.String()
}
