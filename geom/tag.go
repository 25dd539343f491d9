package geom

import (
	"fmt"
	"strings"
)

// Tag identifies the kind of a path segment. The vocabulary is fixed and
// shared with renderers.
type Tag uint8

const (
	MoveTo    Tag = iota // start a new subpath at one point
	LineTo               // straight segment to one point
	Quadratic            // quadratic Bézier: control point + end point
	Cubic                // cubic Bézier: two control points + end point
	ClosePath            // close the current subpath, no points
)

// PointCount returns how many new points a segment with this tag consumes.
func (t Tag) PointCount() int {
	switch t {
	case MoveTo, LineTo:
		return 1
	case Quadratic:
		return 2
	case Cubic:
		return 3
	default:
		return 0
	}
}

// Degree returns the Bézier degree of a drawable tag, or 0 for MoveTo and
// ClosePath.
func (t Tag) Degree() int {
	switch t {
	case LineTo:
		return 1
	case Quadratic:
		return 2
	case Cubic:
		return 3
	default:
		return 0
	}
}

// Drawable reports whether the tag produces a curve.
func (t Tag) Drawable() bool {
	return t.Degree() > 0
}

// Valid reports whether t is one of the five known tags.
func (t Tag) Valid() bool {
	return t <= ClosePath
}

func (t Tag) String() string {
	switch t {
	case MoveTo:
		return "MoveTo"
	case LineTo:
		return "LineTo"
	case Quadratic:
		return "Quadratic"
	case Cubic:
		return "Cubic"
	case ClosePath:
		return "ClosePath"
	default:
		return fmt.Sprintf("Tag(%d)", uint8(t))
	}
}

// ParseTag parses a tag name (case-insensitive).
func ParseTag(s string) (Tag, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "moveto", "move":
		return MoveTo, nil
	case "lineto", "line":
		return LineTo, nil
	case "quadratic", "quad":
		return Quadratic, nil
	case "cubic":
		return Cubic, nil
	case "closepath", "close":
		return ClosePath, nil
	}
	return 0, fmt.Errorf("%w: unknown segment tag %q", ErrValue, s)
}
