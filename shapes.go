package kinema

import (
	"math"

	"github.com/phanxgames/kinema/colorspace"
	"github.com/phanxgames/kinema/geom"
)

// Shape builders. Each returns a new node owning freshly generated points,
// centered on the origin unless stated otherwise, with DefaultStyle.

const (
	// DefaultTipLength is the arrowhead length used by NewArrow.
	DefaultTipLength = 0.35
	// maxTipRatio caps the arrowhead at a fraction of the arrow's length.
	maxTipRatio = 0.25
	// DefaultDotRadius is the radius used by NewDot.
	DefaultDotRadius = 0.08
	// arcSegmentAngle is the widest arc a single cubic approximates.
	arcSegmentAngle = math.Pi / 4
)

// NewPolyline creates an open path through pts.
func NewPolyline(name string, pts ...geom.Point) *Node {
	p := geom.NewPath()
	for i, pt := range pts {
		if i == 0 {
			p.MoveTo(pt)
		} else {
			p.LineTo(pt)
		}
	}
	return NewPathNode(name, p)
}

// NewPolygon creates a closed path through pts.
func NewPolygon(name string, pts ...geom.Point) *Node {
	n := NewPolyline(name, pts...)
	if len(pts) > 0 {
		n.path.LineTo(pts[0]).Close()
	}
	return n
}

// NewRegularPolygon creates an n-gon inscribed in a circle of the given
// radius, with its first vertex on the positive X axis.
func NewRegularPolygon(name string, sides int, radius float64) *Node {
	if sides < 3 {
		panic("kinema: a polygon needs at least 3 sides")
	}
	pts := make([]geom.Point, sides)
	for i := range pts {
		s, c := math.Sincos(2 * math.Pi * float64(i) / float64(sides))
		pts[i] = geom.Pt(radius*c, radius*s)
	}
	return NewPolygon(name, pts...)
}

// NewRectangle creates a width×height rectangle.
func NewRectangle(name string, width, height float64) *Node {
	w, h := width/2, height/2
	return NewPolygon(name,
		geom.Pt(w, h), geom.Pt(-w, h), geom.Pt(-w, -h), geom.Pt(w, -h))
}

// NewSquare creates a square with the given side length.
func NewSquare(name string, side float64) *Node {
	return NewRectangle(name, side, side)
}

// NewArc creates a circular arc of the given radius from startAngle sweeping
// angle radians (positive is counterclockwise).
func NewArc(name string, radius, startAngle, angle float64) *Node {
	return NewPathNode(name, arcPath(geom.Origin, radius, startAngle, angle))
}

// NewCircle creates a closed circle.
func NewCircle(name string, radius float64) *Node {
	p := arcPath(geom.Origin, radius, 0, 2*math.Pi)
	return NewPathNode(name, p.Close())
}

// NewDot creates a small filled circle at center.
func NewDot(name string, center geom.Point) *Node {
	n := NewCircle(name, DefaultDotRadius)
	n.Shift(center)
	n.Style.Fill = colorspace.White
	n.Style.StrokeWidth = 0
	return n
}

// NewLine creates a straight segment.
func NewLine(name string, from, to geom.Point) *Node {
	return NewPolyline(name, from, to)
}

// NewArrow creates a line from from to to capped with a triangular tip.
// The tip is no longer than a quarter of the arrow.
func NewArrow(name string, from, to geom.Point) *Node {
	length := from.Distance(to)
	tipLen := min(DefaultTipLength, maxTipRatio*length)
	base := to
	var perp geom.Point
	if length > 0 {
		dir := to.Sub(from).Mul(1 / length)
		base = to.Sub(dir.Mul(tipLen))
		perp = geom.Pt(-dir.Y, dir.X).Mul(tipLen / 2)
	}
	n := NewLine(name, from, base)
	tip := geom.NewPath().
		MoveTo(to).
		LineTo(base.Add(perp)).
		LineTo(base.Sub(perp)).
		LineTo(to).
		Close()
	n.Tip = &Tip{Path: tip, Length: tipLen}
	return n
}

// arcPath approximates a circular arc with cubic segments no wider than
// arcSegmentAngle.
func arcPath(center geom.Point, radius, start, angle float64) *geom.Path {
	segments := max(1, int(math.Ceil(math.Abs(angle)/arcSegmentAngle)))
	step := angle / float64(segments)
	k := 4.0 / 3.0 * math.Tan(step/4) * radius

	onCircle := func(a float64) (pt, tangent geom.Point) {
		s, c := math.Sincos(a)
		return center.Add(geom.Pt(radius*c, radius*s)), geom.Pt(-s, c)
	}

	p := geom.NewPath()
	a0 := start
	p0, t0 := onCircle(a0)
	p.MoveTo(p0)
	for i := 1; i <= segments; i++ {
		a1 := start + step*float64(i)
		p1, t1 := onCircle(a1)
		p.CubicTo(p0.Add(t0.Mul(k)), p1.Sub(t1.Mul(k)), p1)
		p0, t0 = p1, t1
	}
	return p
}
