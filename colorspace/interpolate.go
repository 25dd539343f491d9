package colorspace

import (
	"fmt"

	"golang.org/x/image/math/f64"

	"github.com/phanxgames/kinema/internal/diag"
	"github.com/phanxgames/kinema/internal/mathx"
)

// DefaultSpace is the interpolation space used when none is configured.
const DefaultSpace = Oklab

// Interpolate blends a toward b in space. Both operands are converted into
// space, every channel and alpha are mixed linearly by t, and the result is
// converted back. t is clamped to [0, 1]. Hue channels are mixed like any
// other channel.
//
// Interpolate panics if space is not a built-in space.
func Interpolate(a, b Color, t float64, space Space) Color {
	c, err := standard.Interpolate(a, b, t, space)
	if err != nil {
		panic(fmt.Errorf("colorspace: %w", err))
	}
	return c
}

// Interpolate is the package-level Interpolate using the steps in g.
func (g *Graph) Interpolate(a, b Color, t float64, space Space) (Color, error) {
	if t < 0 || t > 1 {
		diag.Clamped("colorspace.Interpolate", t, 0, 1, false)
		t = mathx.Clamp01(t)
	}
	if !space.Valid() || !g.Has(space) {
		return Color{}, fmt.Errorf("%w: unknown color space %s", ErrValue, space)
	}
	switch t {
	case 0:
		return a, nil
	case 1:
		return b, nil
	}
	alpha := mathx.Lerp(a.a, b.a, t)
	if space == SRGB {
		return fromVec(lerpVec(a.Vec(), b.Vec(), t), alpha), nil
	}
	va, err := g.Convert(a.Vec(), SRGB, space)
	if err != nil {
		return Color{}, err
	}
	vb, err := g.Convert(b.Vec(), SRGB, space)
	if err != nil {
		return Color{}, err
	}
	rgb, err := g.Convert(lerpVec(va, vb, t), space, SRGB)
	if err != nil {
		return Color{}, err
	}
	return fromVec(rgb, alpha), nil
}

func lerpVec(a, b f64.Vec3, t float64) f64.Vec3 {
	return f64.Vec3{
		mathx.Lerp(a[0], b[0], t),
		mathx.Lerp(a[1], b[1], t),
		mathx.Lerp(a[2], b[2], t),
	}
}

// Gradient samples n evenly spaced colors across stops, blending adjacent
// stops in space. The first and last results are the first and last stops.
func Gradient(stops []Color, n int, space Space) []Color {
	if n <= 0 || len(stops) == 0 {
		return nil
	}
	out := make([]Color, n)
	if len(stops) == 1 || n == 1 {
		for i := range out {
			out[i] = stops[0]
		}
		return out
	}
	segs := float64(len(stops) - 1)
	for i := range out {
		pos := float64(i) / float64(n-1) * segs
		k := min(int(pos), len(stops)-2)
		out[i] = Interpolate(stops[k], stops[k+1], pos-float64(k), space)
	}
	out[0], out[n-1] = stops[0], stops[len(stops)-1]
	return out
}
