package kinema

import (
	"github.com/phanxgames/kinema/colorspace"
	"github.com/phanxgames/kinema/internal/diag"
	"github.com/phanxgames/kinema/internal/mathx"
)

// Style holds a node's paint. Opacity is carried in the alpha channels of
// Fill and Stroke.
type Style struct {
	Fill        colorspace.Color
	Stroke      colorspace.Color
	StrokeWidth float64
}

// DefaultStrokeWidth is the stroke width given to new shapes.
const DefaultStrokeWidth = 4

// DefaultStyle is an unfilled white outline.
func DefaultStyle() Style {
	return Style{
		Fill:        colorspace.Transparent,
		Stroke:      colorspace.White,
		StrokeWidth: DefaultStrokeWidth,
	}
}

// Blend mixes s toward o. Colors are interpolated in space; t is clamped to
// [0, 1].
func (s Style) Blend(o Style, t float64, space colorspace.Space) Style {
	if t < 0 || t > 1 {
		diag.Clamped("Style.Blend", t, 0, 1, false)
		t = mathx.Clamp01(t)
	}
	return Style{
		Fill:        colorspace.Interpolate(s.Fill, o.Fill, t, space),
		Stroke:      colorspace.Interpolate(s.Stroke, o.Stroke, t, space),
		StrokeWidth: mathx.Lerp(s.StrokeWidth, o.StrokeWidth, t),
	}
}

// Opacity returns the larger of the fill and stroke alpha.
func (s Style) Opacity() float64 {
	return max(s.Fill.A(), s.Stroke.A())
}

// Opaque raises every painted channel to alpha 1. A channel with zero alpha
// stays unpainted, so an outline does not gain a fill; when neither channel
// is painted the stroke is made opaque.
func (s Style) Opaque() Style {
	switch {
	case s.Fill.A() == 0 && s.Stroke.A() == 0:
		s.Stroke = s.Stroke.WithAlpha(1)
	default:
		if s.Fill.A() > 0 {
			s.Fill = s.Fill.WithAlpha(1)
		}
		if s.Stroke.A() > 0 {
			s.Stroke = s.Stroke.WithAlpha(1)
		}
	}
	return s
}

// WithOpacity sets both fill and stroke alpha.
func (s Style) WithOpacity(a float64) Style {
	s.Fill = s.Fill.WithAlpha(a)
	s.Stroke = s.Stroke.WithAlpha(a)
	return s
}
