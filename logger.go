package outline

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// silentHandler drops every record. Enabled is always false, so slog never
// builds the record in the first place.
type silentHandler struct{}

func (silentHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (silentHandler) Handle(context.Context, slog.Record) error { return nil }
func (h silentHandler) WithAttrs([]slog.Attr) slog.Handler      { return h }
func (h silentHandler) WithGroup(string) slog.Handler           { return h }

// current is the package logger. Services without their own logger load it
// on every report.
var current atomic.Pointer[slog.Logger]

func init() {
	current.Store(silentLogger())
}

func silentLogger() *slog.Logger { return slog.New(silentHandler{}) }

// SetLogger configures the package logger. By default outline produces no
// log output. Pass nil to restore the silent default.
//
// Services created without [WithLogger] read the package logger on every
// report, so SetLogger also affects services that already exist.
//
// Log levels used by outline:
//   - [slog.LevelDebug]: outline slot added or removed
//   - [slog.LevelWarn]: precondition and state warnings (update before apply,
//     best-effort removal)
//   - [slog.LevelError]: configuration errors (missing template) and nil targets
//
// Example:
//
//	outline.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = silentLogger()
	}
	current.Store(l)
}

// Logger returns the current package logger. It is safe for concurrent use.
func Logger() *slog.Logger {
	return current.Load()
}
