// Package diag holds the logger shared by kinema and its sub-packages.
//
// Leaf packages (geom, colorspace) cannot import the root package, so the
// root SetLogger stores the logger here and everyone reads it back through
// [Logger].
package diag

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler discards every record. Enabled returns false so callers skip
// attribute formatting entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(slog.New(nopHandler{}))
}

// SetLogger installs l. A nil logger restores the silent default.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(nopHandler{})
	}
	loggerPtr.Store(l)
}

// Logger returns the active logger.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}

// Clamped reports a numeric input that was pulled back into [lo, hi].
// User-facing inputs are reported at warn level, values produced inside an
// algorithm (floating point drift, unclamped sub-progress) at debug level.
func Clamped(op string, v, lo, hi float64, user bool) {
	level := slog.LevelDebug
	if user {
		level = slog.LevelWarn
	}
	l := Logger()
	if !l.Enabled(context.Background(), level) {
		return
	}
	l.Log(context.Background(), level, "value clamped",
		"op", op, "value", v, "min", lo, "max", hi)
}
