// Package colorspace stores colors as clamped sRGB plus alpha and converts
// them to other representations on demand.
//
// Conversions run through a [Graph] rooted at CIE XYZ. Every non-hub space
// has one edge toward the hub:
//
//	SRGB → LinearRGB → XYZ ← Oklab ← Oklch
//	 ↑  ↑
//	HSL HSV
//
// Converting between two spaces walks source→hub and then hub→destination.
// The default interpolation space is Oklab, which keeps perceived lightness
// steady across a blend:
//
//	mid := colorspace.Interpolate(colorspace.MustHex("#FC6255"), colorspace.White, 0.5, colorspace.Oklab)
//
// Hues (HSL, HSV, Oklch) are in degrees in [0, 360); every other channel is
// unitless.
package colorspace

import "github.com/phanxgames/kinema/internal/errs"

// Error kinds returned by this package, shared with the other kinema
// packages.
var (
	ErrValidation = errs.Validation
	ErrValue      = errs.Value
)
