// Package errs defines the error kinds shared by every kinema package.
// Public packages re-export them so callers can match with errors.Is no
// matter which package produced the error.
package errs

import "errors"

var (
	// Validation marks malformed constructor input: wrong point count for a
	// segment tag, malformed hex string, inconsistent path data.
	Validation = errors.New("validation error")

	// Value marks an unrecognized enumerated option or an illegal
	// configuration value such as a non-positive run time.
	Value = errors.New("value error")

	// Index marks an out-of-bounds curve or child index.
	Index = errors.New("index out of range")

	// Range marks a numeric parameter outside its legal domain that cannot
	// be clamped meaningfully (for example fewer than two samples).
	Range = errors.New("parameter out of range")

	// Type marks an argument of the wrong kind.
	Type = errors.New("type mismatch")
)
