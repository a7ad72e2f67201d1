package atlaspack

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler discards every record; it is the default logger target so
// atlaspack never writes to stderr unless a caller opts in with SetLogger.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (h nopHandler) WithAttrs([]slog.Attr) slog.Handler      { return h }
func (h nopHandler) WithGroup(string) slog.Handler           { return h }

var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(slog.New(nopHandler{}))
}

// SetLogger installs the logger atlaspack uses for its internal diagnostic
// messages (manager creation, segment growth). Passing nil restores the
// no-op default. Safe to call
// concurrently with use of any AtlasManager.
func SetLogger(logger *slog.Logger) {
	if logger == nil {
		logger = slog.New(nopHandler{})
	}
	loggerPtr.Store(logger)
}

// Logger returns the currently installed logger.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
