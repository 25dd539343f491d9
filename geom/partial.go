package geom

import (
	"github.com/phanxgames/kinema/internal/diag"
	"github.com/phanxgames/kinema/internal/mathx"
)

// ExtractPartial returns a new path covering only the portion between the
// global proportions start and end (arc-length based).
//
// The result keeps the tag sequence and point count of p so it can be
// blended pointwise with p: curves before the range collapse onto the start
// point, curves after it collapse onto the end point, and the two boundary
// curves are cut with de Casteljau subdivision. ExtractPartial(0, 1) is an
// exact copy; start == end yields a zero-length path anchored at
// PointAtProportion(start). Bounds outside [0, 1] are clamped and swapped
// bounds are reordered.
func (s Sampler) ExtractPartial(p *Path, start, end float64) *Path {
	if start < 0 || start > 1 {
		diag.Clamped("geom.ExtractPartial.start", start, 0, 1, false)
		start = mathx.Clamp01(start)
	}
	if end < 0 || end > 1 {
		diag.Clamped("geom.ExtractPartial.end", end, 0, 1, false)
		end = mathx.Clamp01(end)
	}
	if end < start {
		start, end = end, start
	}
	if start == 0 && end == 1 {
		return p.Clone()
	}
	out := p.Clone()
	if len(p.points) == 0 {
		return out
	}
	if start == end {
		anchor := s.PointAtProportion(p, start)
		for i := range out.points {
			out.points[i] = anchor
		}
		for ti, tag := range out.tags {
			if tag == ClosePath {
				out.open = append(out.open, ti)
			}
		}
		return out
	}

	curves := p.curveList()
	if len(curves) == 0 {
		anchor := p.points[len(p.points)-1]
		for i := range out.points {
			out.points[i] = anchor
		}
		return out
	}
	i0, t0, _ := s.locate(p, start)
	i1, t1, _ := s.locate(p, end)
	startPt := curves[i0].Eval(t0)
	endPt := curves[i1].Eval(t1)
	if end == 1 {
		endPt = p.points[len(p.points)-1]
	}

	// A subpath is whole when its first curve starts at or after the cut
	// start and its last curve ends at or before the cut end.
	whole := func(first, last int) bool {
		return (first > i0 || first == i0 && t0 == 0) &&
			(last < i1 || last == i1 && t1 == 1)
	}

	idx := 0
	ci := 0
	subFirst := 0
	for ti, tag := range p.tags {
		n := tag.PointCount()
		switch {
		case tag == ClosePath:
			if ci > subFirst && !whole(subFirst, ci-1) {
				out.open = append(out.open, ti)
			}
			subFirst = ci
		case tag == MoveTo:
			subFirst = ci
			// A MoveTo takes the position of the curve that follows it.
			next := nextCurveIndex(p.tags, ti, ci)
			switch {
			case next < 0 && ci <= i0:
				out.points[idx] = startPt
			case next < 0 || next > i1:
				out.points[idx] = endPt
			case next <= i0:
				out.points[idx] = startPt
			}
		case tag.Drawable():
			var c Curve
			switch {
			case ci < i0:
				c = collapsed(curves[ci].Degree, startPt)
			case ci > i1:
				c = collapsed(curves[ci].Degree, endPt)
			case ci == i0 && ci == i1:
				c = curves[ci].Subsegment(t0, t1)
			case ci == i0:
				c = curves[ci].Subsegment(t0, 1)
			case ci == i1:
				c = curves[ci].Subsegment(0, t1)
			default:
				c = curves[ci]
			}
			copy(out.points[idx:idx+n], c.P[1:c.Degree+1])
			ci++
		}
		idx += n
	}
	out.curves = nil
	return out
}

// nextCurveIndex returns the index of the first curve of the subpath opened
// at tag position ti, given that ci curves precede it, or -1 when the
// subpath has no curve.
func nextCurveIndex(tags []Tag, ti, ci int) int {
	for _, tag := range tags[ti+1:] {
		if tag == MoveTo {
			return -1
		}
		if tag.Drawable() {
			return ci
		}
	}
	return -1
}

func collapsed(degree int, pt Point) Curve {
	c := Curve{Degree: degree}
	for i := 0; i <= degree; i++ {
		c.P[i] = pt
	}
	return c
}

// ExtractPartial is Sampler{}.ExtractPartial(p, start, end).
func (p *Path) ExtractPartial(start, end float64) *Path {
	return Sampler{}.ExtractPartial(p, start, end)
}
