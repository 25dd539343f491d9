// Package geom is the piecewise-Bézier path model behind every drawable
// kinema node.
//
// A [Path] is a flat point buffer plus a parallel list of segment tags
// ([MoveTo], [LineTo], [Quadratic], [Cubic], [ClosePath]). Each drawing tag
// continues from the last point of the previous segment, so a path with a
// MoveTo and three LineTo segments holds exactly four points.
//
//	p := geom.NewPath().
//		MoveTo(geom.Pt(0, 0)).
//		LineTo(geom.Pt(1, 0)).
//		LineTo(geom.Pt(1, 1)).
//		LineTo(geom.Pt(0, 1)).
//		Close()
//
// Curves are evaluated with the explicit Bernstein form. Arc length is a
// polyline approximation; [Sampler] fixes its resolution for the
// proportional operations ([Sampler.PointAtProportion],
// [Sampler.ExtractPartial]). [Align] and [PathFunc] support pointwise
// blending between paths, which is how the animation engine morphs shapes.
package geom

import "github.com/phanxgames/kinema/internal/errs"

// Error kinds returned by this package. They are shared with the other
// kinema packages, so errors.Is matches regardless of origin.
var (
	ErrValidation = errs.Validation
	ErrValue      = errs.Value
	ErrIndex      = errs.Index
	ErrRange      = errs.Range
)
