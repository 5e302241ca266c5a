package highlight

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler is a slog.Handler that silently discards all log records.
// The Enabled method returns false so the caller skips message formatting
// entirely, making disabled logging effectively zero-cost.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

// newNopLogger creates a logger that silently discards all output.
func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr stores the active logger. Accessed atomically so that
// SetLogger can be called concurrently with logging from any goroutine.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the package-wide logger used by highlight and its
// sub-packages. By default nothing is logged. Pass nil to restore the
// silent default.
//
// Log levels used:
//   - [slog.LevelDebug]: geometric fallbacks (degenerate hulls, parallel
//     miter edges, clamped wedge angles) and skipped invisible requests
//   - [slog.LevelWarn]: requests rejected by validation
//
// Example:
//
//	highlight.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the current package-wide logger.
// Sub-packages (recording, recording/backends/raster) call this to share the
// same configuration without introducing import cycles.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
