package ggview

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler is a slog.Handler that silently discards all log records.
// Enabled reports false so callers skip attribute construction entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr stores the active logger. Accessed atomically so that
// SetLogger can be called while figures render on other goroutines.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the logger for ggview and its sub-packages.
// By default ggview produces no log output. Pass nil to restore the
// silent default.
//
// Log levels used by ggview:
//   - [slog.LevelDebug]: render-time decisions (depth truncation, cycles,
//     degenerate transforms, culled primitives)
//   - [slog.LevelInfo]: view lifecycle (views linked, insets created)
//   - [slog.LevelWarn]: recovered failures (a primitive failed to draw)
//
// Example:
//
//	ggview.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger used by ggview.
// Sub-packages (recording/, scenefile/) call this to share one configuration.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
