package colorspace

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Hex returns "#RRGGBB", or "#RRGGBBAA" when the color is not fully opaque.
func (c Color) Hex() string {
	n := c.NRGBA()
	if n.A == 0xff {
		return fmt.Sprintf("#%02X%02X%02X", n.R, n.G, n.B)
	}
	return fmt.Sprintf("#%02X%02X%02X%02X", n.R, n.G, n.B, n.A)
}

// ParseHex reads "#RGB", "#RGBA", "#RRGGBB" or "#RRGGBBAA". The leading '#'
// is optional and digits are case-insensitive.
func ParseHex(s string) (Color, error) {
	digits := strings.TrimPrefix(strings.TrimSpace(s), "#")
	switch len(digits) {
	case 3, 4:
		var b strings.Builder
		for _, r := range digits {
			b.WriteRune(r)
			b.WriteRune(r)
		}
		digits = b.String()
	case 6, 8:
	default:
		return Color{}, fmt.Errorf("%w: hex color %q has %d digits", ErrValidation, s, len(digits))
	}
	if len(digits) == 6 {
		digits += "ff"
	}
	v, err := strconv.ParseUint(digits, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("%w: hex color %q: %w", ErrValidation, s, err)
	}
	ch := func(shift uint) float64 { return float64((v>>shift)&0xff) / 255 }
	return Color{ch(24), ch(16), ch(8), ch(0)}, nil
}

// MustHex is ParseHex for literals; it panics on malformed input.
func MustHex(s string) Color {
	c, err := ParseHex(s)
	if err != nil {
		panic("colorspace: " + err.Error())
	}
	return c
}

// Format renders c in space as "<space>(c0, c1, c2 | a%)" with three
// decimals per channel, e.g. "oklab(0.628, 0.225, 0.126 | 100%)".
func (c Color) Format(space Space) (string, error) {
	v, err := c.To(space)
	if err != nil {
		return "", err
	}
	alpha := strconv.FormatFloat(math.Round(c.a*1000)/10, 'f', -1, 64)
	return fmt.Sprintf("%s(%.3f, %.3f, %.3f | %s%%)", space, v[0], v[1], v[2], alpha), nil
}
