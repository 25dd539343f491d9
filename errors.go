package kinema

import "github.com/phanxgames/kinema/internal/errs"

// Error kinds. They are the same values geom and colorspace return, so
// errors.Is matches regardless of which package produced the error.
var (
	// ErrValidation reports malformed structural input.
	ErrValidation = errs.Validation
	// ErrValue reports an unrecognized option or a non-positive run time.
	ErrValue = errs.Value
	// ErrIndex reports an out-of-range index.
	ErrIndex = errs.Index
	// ErrRange reports an out-of-range numeric parameter.
	ErrRange = errs.Range
	// ErrType reports an argument of the wrong kind.
	ErrType = errs.Type
)
