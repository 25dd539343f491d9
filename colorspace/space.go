package colorspace

import (
	"fmt"
	"strings"
)

// Space identifies a color representation.
type Space uint8

const (
	SRGB Space = iota
	LinearRGB
	XYZ
	HSL
	HSV
	Oklab
	Oklch
	numSpaces
)

// Hub is the space every conversion passes through.
const Hub = XYZ

var spaceNames = [numSpaces]string{
	SRGB:      "srgb",
	LinearRGB: "linearrgb",
	XYZ:       "xyz",
	HSL:       "hsl",
	HSV:       "hsv",
	Oklab:     "oklab",
	Oklch:     "oklch",
}

// Spaces returns every built-in space in declaration order.
func Spaces() []Space {
	out := make([]Space, numSpaces)
	for i := range out {
		out[i] = Space(i)
	}
	return out
}

// Valid reports whether s is one of the built-in spaces.
func (s Space) Valid() bool { return s < numSpaces }

func (s Space) String() string {
	if !s.Valid() {
		return fmt.Sprintf("Space(%d)", uint8(s))
	}
	return spaceNames[s]
}

// ParseSpace maps a token such as "oklab", "Linear-RGB" or "linear_rgb" to
// its Space. Case, '-' and '_' are ignored.
func ParseSpace(token string) (Space, error) {
	norm := strings.NewReplacer("-", "", "_", "", " ", "").Replace(strings.ToLower(token))
	if norm == "rgb" {
		return SRGB, nil
	}
	for i, name := range spaceNames {
		if name == norm {
			return Space(i), nil
		}
	}
	return 0, fmt.Errorf("%w: unknown color space %q", ErrValue, token)
}
