package geom

import "fmt"

// CurveFunc maps a curve parameter t in [0, 1] to a point.
type CurveFunc func(t float64) Point

// Curve is one drawable Bézier segment of degree 1 (line), 2 (quadratic) or
// 3 (cubic). P[0] is the start point and P[Degree] the end point; entries
// past Degree are unused.
type Curve struct {
	Degree int
	P      [4]Point
}

// NewLine returns a degree-1 curve.
func NewLine(p0, p1 Point) Curve {
	return Curve{Degree: 1, P: [4]Point{p0, p1}}
}

// NewQuad returns a degree-2 curve.
func NewQuad(p0, p1, p2 Point) Curve {
	return Curve{Degree: 2, P: [4]Point{p0, p1, p2}}
}

// NewCubic returns a degree-3 curve.
func NewCubic(p0, p1, p2, p3 Point) Curve {
	return Curve{Degree: 3, P: [4]Point{p0, p1, p2, p3}}
}

// Eval evaluates the curve with the explicit Bernstein form for its degree.
func (c Curve) Eval(t float64) Point {
	mt := 1 - t
	switch c.Degree {
	case 1:
		// (1-t)P0 + tP1
		return c.P[0].Mul(mt).Add(c.P[1].Mul(t))
	case 2:
		// (1-t)²P0 + 2(1-t)tP1 + t²P2
		return c.P[0].Mul(mt * mt).
			Add(c.P[1].Mul(2 * mt * t)).
			Add(c.P[2].Mul(t * t))
	case 3:
		// (1-t)³P0 + 3(1-t)²tP1 + 3(1-t)t²P2 + t³P3
		mt2, t2 := mt*mt, t*t
		return c.P[0].Mul(mt2 * mt).
			Add(c.P[1].Mul(3 * mt2 * t)).
			Add(c.P[2].Mul(3 * mt * t2)).
			Add(c.P[3].Mul(t2 * t))
	default:
		return c.P[0]
	}
}

// Func returns Eval as a CurveFunc.
func (c Curve) Func() CurveFunc {
	return c.Eval
}

// Start returns the first control point.
func (c Curve) Start() Point {
	return c.P[0]
}

// End returns the last control point.
func (c Curve) End() Point {
	return c.P[c.Degree]
}

// Tag returns the segment tag that produces a curve of this degree.
func (c Curve) Tag() Tag {
	switch c.Degree {
	case 1:
		return LineTo
	case 2:
		return Quadratic
	default:
		return Cubic
	}
}

// Controls returns the points a segment with this curve's tag appends to
// a path buffer (everything but the start point).
func (c Curve) Controls() []Point {
	return append([]Point(nil), c.P[1:c.Degree+1]...)
}

// Split divides the curve at t with de Casteljau's construction.
func (c Curve) Split(t float64) (Curve, Curve) {
	n := c.Degree
	var work [4]Point
	copy(work[:], c.P[:n+1])
	left := Curve{Degree: n}
	right := Curve{Degree: n}
	left.P[0] = work[0]
	right.P[n] = work[n]
	for level := 1; level <= n; level++ {
		for i := 0; i <= n-level; i++ {
			work[i] = work[i].Lerp(work[i+1], t)
		}
		left.P[level] = work[0]
		right.P[n-level] = work[n-level]
	}
	return left, right
}

// Subsegment returns the part of the curve between t0 and t1 (t0 <= t1).
// Subsegment(0, 1) returns the curve unchanged.
func (c Curve) Subsegment(t0, t1 float64) Curve {
	if t0 <= 0 && t1 >= 1 {
		return c
	}
	if t1 <= t0 {
		pt := c.Eval(t0)
		out := Curve{Degree: c.Degree}
		for i := 0; i <= c.Degree; i++ {
			out.P[i] = pt
		}
		return out
	}
	out := c
	if t1 < 1 {
		out, _ = out.Split(t1)
	}
	if t0 > 0 {
		_, out = out.Split(t0 / t1)
	}
	return out
}

// Elevate returns the same curve expressed as a cubic.
func (c Curve) Elevate() Curve {
	switch c.Degree {
	case 1:
		return NewCubic(c.P[0], c.P[0].Lerp(c.P[1], 1.0/3), c.P[0].Lerp(c.P[1], 2.0/3), c.P[1])
	case 2:
		return NewCubic(
			c.P[0],
			c.P[0].Lerp(c.P[1], 2.0/3),
			c.P[2].Lerp(c.P[1], 2.0/3),
			c.P[2],
		)
	default:
		return c
	}
}

// PolylineLength approximates the arc length with samples evenly spaced
// parameter values (both endpoints included).
func (c Curve) PolylineLength(samples int) float64 {
	if samples < 2 {
		samples = 2
	}
	total := 0.0
	prev := c.P[0]
	for i := 1; i < samples; i++ {
		pt := c.Eval(float64(i) / float64(samples-1))
		total += prev.Distance(pt)
		prev = pt
	}
	return total
}

func (c Curve) String() string {
	return fmt.Sprintf("Curve{degree %d, %v -> %v}", c.Degree, c.Start(), c.End())
}

// curveList decomposes the path into curves, one per drawable tag.
func (p *Path) curveList() []Curve {
	if p.curves != nil {
		return p.curves
	}
	curves := make([]Curve, 0, len(p.tags))
	idx := 0
	for _, tag := range p.tags {
		n := tag.PointCount()
		if tag.Drawable() {
			c := Curve{Degree: tag.Degree()}
			c.P[0] = p.points[idx-1]
			copy(c.P[1:], p.points[idx:idx+n])
			curves = append(curves, c)
		}
		idx += n
	}
	p.curves = curves
	return curves
}

// CurveCount returns the number of drawable curves (MoveTo and ClosePath
// excluded).
func (p *Path) CurveCount() int {
	return len(p.curveList())
}

// Curve returns the i-th drawable curve.
func (p *Path) Curve(i int) (Curve, error) {
	curves := p.curveList()
	if i < 0 || i >= len(curves) {
		return Curve{}, fmt.Errorf("%w: curve %d of %d", ErrIndex, i, len(curves))
	}
	return curves[i], nil
}

// CurveAt returns the parametric function of the i-th drawable curve.
func (p *Path) CurveAt(i int) (CurveFunc, error) {
	c, err := p.Curve(i)
	if err != nil {
		return nil, err
	}
	return c.Eval, nil
}

// Curves returns a copy of every drawable curve in order.
func (p *Path) Curves() []Curve {
	return append([]Curve(nil), p.curveList()...)
}
