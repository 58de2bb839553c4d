package apperrors

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type captureHandler struct {
	captured *AppError
}

func (h *captureHandler) HandleError(err *AppError) {
	h.captured = err
}

func TestReport(t *testing.T) {
	handler := &captureHandler{}
	oldHandler := DefaultHandler
	SetHandler(handler)
	defer SetHandler(oldHandler)

	err := Wrap("sync failed", errors.New("disk full"))
	Report(err)

	require.NotNil(t, handler.captured)
	assert.Same(t, err, handler.captured)
}

func TestReportNil(t *testing.T) {
	handler := &captureHandler{}
	oldHandler := DefaultHandler
	SetHandler(handler)
	defer SetHandler(oldHandler)

	Report(nil)

	assert.Nil(t, handler.captured)
}

func TestSetHandlerNil(t *testing.T) {
	oldHandler := DefaultHandler
	defer SetHandler(oldHandler)

	SetHandler(nil)

	require.NotNil(t, DefaultHandler)
	_, ok := DefaultHandler.(*LogHandler)
	assert.True(t, ok, "SetHandler(nil) should restore the default LogHandler")
}

func TestCaptureStack(t *testing.T) {
	stack := CaptureStack()

	require.NotEmpty(t, stack)
	if !strings.Contains(stack, "testing") && !strings.Contains(stack, "runtime") {
		t.Errorf("stack trace should contain testing or runtime frames, got: %s", stack)
	}
	// Each frame is "function\n\tfile:line".
	assert.Regexp(t, `(?m)^\t\S+\.go:\d+$`, stack)
	assert.NotContains(t, stack, "apperrors.CaptureStack",
		"the capturing frames themselves should be skipped")
}

func TestLogHandler(t *testing.T) {
	var buf bytes.Buffer
	h := &LogHandler{Logger: slog.New(slog.NewTextHandler(&buf, nil))}

	h.HandleError(Wrap("sync failed", errors.New("disk full")))

	out := buf.String()
	assert.Contains(t, out, "sync failed")
	assert.Contains(t, out, "disk full")
	assert.NotContains(t, out, "stack")
}

func TestLogHandlerVerbose(t *testing.T) {
	var buf bytes.Buffer
	h := &LogHandler{Logger: slog.New(slog.NewTextHandler(&buf, nil)), Verbose: true}

	h.HandleError(Wrap("sync failed", errors.New("disk full")))

	assert.Contains(t, buf.String(), "stack")
}
