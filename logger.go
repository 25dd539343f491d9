package kinema

import (
	"log/slog"

	"github.com/phanxgames/kinema/internal/diag"
)

// SetLogger sets the logger used by kinema, geom and colorspace. By default
// all output is discarded. Pass nil to silence logging again.
//
// Numeric clamps inside algorithms log at debug level, clamped user input at
// warn level, and animation lifecycle at info level while debug mode is on.
func SetLogger(l *slog.Logger) {
	diag.SetLogger(l)
}

// Logger returns the active logger.
func Logger() *slog.Logger {
	return diag.Logger()
}
