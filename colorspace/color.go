package colorspace

import (
	"fmt"
	imgcolor "image/color"

	"golang.org/x/image/math/f64"

	"github.com/phanxgames/kinema/internal/diag"
	"github.com/phanxgames/kinema/internal/mathx"
)

// Color is an sRGB color with straight (non-premultiplied) alpha. All four
// components are kept in [0, 1]; every other representation is derived on
// demand. The zero value is transparent black.
type Color struct {
	r, g, b, a float64
}

// Common colors.
var (
	Transparent = Color{}
	Black       = Color{a: 1}
	White       = Color{1, 1, 1, 1}
)

// New returns a color from sRGB components. Out-of-range components are
// clamped and reported at warn level.
func New(r, g, b, a float64) Color {
	return Color{
		r: clampChannel("New", r, true),
		g: clampChannel("New", g, true),
		b: clampChannel("New", b, true),
		a: clampChannel("New", a, true),
	}
}

// RGB returns an opaque color.
func RGB(r, g, b float64) Color { return New(r, g, b, 1) }

// FromSpace converts v from space into a Color with the given alpha.
// Channels that land outside the sRGB gamut are clamped.
func FromSpace(space Space, v f64.Vec3, alpha float64) (Color, error) {
	rgb, err := Convert(v, space, SRGB)
	if err != nil {
		return Color{}, err
	}
	return fromVec(rgb, clampChannel("FromSpace", alpha, true)), nil
}

// FromNRGBA converts an 8-bit color.
func FromNRGBA(c imgcolor.NRGBA) Color {
	return Color{float64(c.R) / 255, float64(c.G) / 255, float64(c.B) / 255, float64(c.A) / 255}
}

// fromVec is used for conversion results, where small excursions are
// rounding noise rather than user error.
func fromVec(v f64.Vec3, alpha float64) Color {
	return Color{
		r: clampChannel("convert", v[0], false),
		g: clampChannel("convert", v[1], false),
		b: clampChannel("convert", v[2], false),
		a: alpha,
	}
}

func clampChannel(op string, v float64, user bool) float64 {
	if v >= 0 && v <= 1 {
		return v
	}
	diag.Clamped("colorspace."+op, v, 0, 1, user)
	return mathx.Clamp01(v)
}

// R returns the red component.
func (c Color) R() float64 { return c.r }

// G returns the green component.
func (c Color) G() float64 { return c.g }

// B returns the blue component.
func (c Color) B() float64 { return c.b }

// A returns the alpha component (opacity).
func (c Color) A() float64 { return c.a }

// Components returns r, g, b, a.
func (c Color) Components() (r, g, b, a float64) { return c.r, c.g, c.b, c.a }

// Vec returns the sRGB channels without alpha.
func (c Color) Vec() f64.Vec3 { return f64.Vec3{c.r, c.g, c.b} }

// To returns the channels of c expressed in space.
func (c Color) To(space Space) (f64.Vec3, error) {
	return Convert(c.Vec(), SRGB, space)
}

// mustTo is To for the built-in spaces, which cannot fail.
func (c Color) mustTo(space Space) f64.Vec3 {
	v, err := c.To(space)
	if err != nil {
		panic(fmt.Errorf("colorspace: %w", err))
	}
	return v
}

// WithAlpha returns c with alpha replaced.
func (c Color) WithAlpha(a float64) Color {
	c.a = clampChannel("WithAlpha", a, true)
	return c
}

// Invert returns the complementary color with the same alpha.
func (c Color) Invert() Color {
	return Color{1 - c.r, 1 - c.g, 1 - c.b, c.a}
}

// Lighter raises Oklab lightness by amount (0..1).
func (c Color) Lighter(amount float64) Color {
	lab := c.mustTo(Oklab)
	lab[0] = mathx.Clamp01(lab[0] + amount)
	out, _ := FromSpace(Oklab, lab, c.a)
	return out
}

// Darker lowers Oklab lightness by amount (0..1).
func (c Color) Darker(amount float64) Color {
	return c.Lighter(-amount)
}

// Equal reports exact component equality.
func (c Color) Equal(o Color) bool { return c == o }

// ApproxEqual reports whether every component is within tol.
func (c Color) ApproxEqual(o Color, tol float64) bool {
	return mathx.InRange(c.r-o.r, -tol, tol) &&
		mathx.InRange(c.g-o.g, -tol, tol) &&
		mathx.InRange(c.b-o.b, -tol, tol) &&
		mathx.InRange(c.a-o.a, -tol, tol)
}

// RGBA implements image/color.Color (alpha-premultiplied, 16-bit).
func (c Color) RGBA() (r, g, b, a uint32) {
	return c.NRGBA().RGBA()
}

// NRGBA converts to an 8-bit straight-alpha color.
func (c Color) NRGBA() imgcolor.NRGBA {
	return imgcolor.NRGBA{R: to8(c.r), G: to8(c.g), B: to8(c.b), A: to8(c.a)}
}

func to8(v float64) uint8 {
	return uint8(mathx.Clamp01(v)*255 + 0.5)
}

// String returns the hex form.
func (c Color) String() string { return c.Hex() }
