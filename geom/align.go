package geom

import "slices"

// Subpath is one MoveTo-delimited run of curves.
type Subpath struct {
	Start  Point
	Curves []Curve
	Closed bool
}

// End returns the end point of the last curve, or Start when there is none.
func (s Subpath) End() Point {
	if len(s.Curves) == 0 {
		return s.Start
	}
	return s.Curves[len(s.Curves)-1].End()
}

// Subpaths splits the path at MoveTo and ClosePath boundaries.
func (p *Path) Subpaths() []Subpath {
	var out []Subpath
	var cur *Subpath
	flush := func() {
		if cur != nil {
			out = append(out, *cur)
			cur = nil
		}
	}
	idx := 0
	for ti, tag := range p.tags {
		n := tag.PointCount()
		switch {
		case tag == MoveTo:
			flush()
			cur = &Subpath{Start: p.points[idx]}
		case tag == ClosePath:
			if cur != nil {
				cur.Closed = p.ClosesSubpath(ti)
			}
			flush()
		default:
			if cur == nil {
				cur = &Subpath{Start: p.points[idx-1]}
			}
			c := Curve{Degree: tag.Degree()}
			c.P[0] = p.points[idx-1]
			copy(c.P[1:], p.points[idx:idx+n])
			cur.Curves = append(cur.Curves, c)
		}
		idx += n
	}
	flush()
	return out
}

// FromSubpaths assembles a path from subpaths.
func FromSubpaths(subpaths []Subpath) *Path {
	p := NewPath()
	for _, sp := range subpaths {
		p.MoveTo(sp.Start)
		for _, c := range sp.Curves {
			p.mustAppend(c.Tag(), c.Controls()...)
		}
		if sp.Closed {
			p.Close()
		}
	}
	return p
}

// Reversed returns a copy that traverses every subpath backwards, with the
// subpaths themselves in reverse order.
func (p *Path) Reversed() *Path {
	sps := p.Subpaths()
	slices.Reverse(sps)
	for i, sp := range sps {
		rev := Subpath{Start: sp.End(), Closed: sp.Closed}
		for j := len(sp.Curves) - 1; j >= 0; j-- {
			c := sp.Curves[j]
			r := Curve{Degree: c.Degree}
			for k := 0; k <= c.Degree; k++ {
				r.P[k] = c.P[c.Degree-k]
			}
			rev.Curves = append(rev.Curves, r)
		}
		sps[i] = rev
	}
	return FromSubpaths(sps)
}

// Align returns copies of a and b with identical tag sequences and point
// counts, so they can be blended pointwise. Paths that already share a tag
// sequence are returned as plain clones. Otherwise every curve is elevated
// to a cubic, the shorter subpath list is padded with zero-length subpaths
// and curves are subdivided until each subpath pair has the same number of
// curves. A subpath closed on either side carries a ClosePath on both; the
// side that was open keeps that close undrawn (see Path.ClosesSubpath).
func Align(a, b *Path) (*Path, *Path) {
	if slices.Equal(a.tags, b.tags) {
		return a.Clone(), b.Clone()
	}
	sa, sb := a.Subpaths(), b.Subpaths()
	sa = padSubpaths(sa, len(sb), anchorOf(a, b))
	sb = padSubpaths(sb, len(sa), anchorOf(b, a))

	outA := make([]Subpath, len(sa))
	outB := make([]Subpath, len(sb))
	for i := range sa {
		ca := cubics(sa[i])
		cb := cubics(sb[i])
		n := max(len(ca), len(cb))
		closed := sa[i].Closed || sb[i].Closed
		outA[i] = Subpath{Start: sa[i].Start, Curves: subdivideTo(ca, n), Closed: closed}
		outB[i] = Subpath{Start: sb[i].Start, Curves: subdivideTo(cb, n), Closed: closed}
	}
	pa, pb := FromSubpaths(outA), FromSubpaths(outB)
	pa.markOpen(sa)
	pb.markOpen(sb)
	return pa, pb
}

// markOpen leaves undrawn the ClosePath of every subpath that is open in
// orig. p must hold one closing subpath per entry of orig.
func (p *Path) markOpen(orig []Subpath) {
	sub := -1
	for ti, tag := range p.tags {
		switch tag {
		case MoveTo:
			sub++
		case ClosePath:
			if sub >= 0 && sub < len(orig) && !orig[sub].Closed {
				p.open = append(p.open, ti)
			}
		}
	}
}

// MatchCloses copies which ClosePath tags of other draw their edge. It does
// nothing when the tag sequences differ.
func (p *Path) MatchCloses(other *Path) {
	if !slices.Equal(p.tags, other.tags) {
		return
	}
	p.open = append(p.open[:0], other.open...)
}

// anchorOf picks where padding subpaths of p collapse: its last point, or
// the center of the other path when p is empty.
func anchorOf(p, other *Path) Point {
	if pt, ok := p.CurrentPoint(); ok {
		return pt
	}
	return other.Center()
}

func padSubpaths(sps []Subpath, n int, anchor Point) []Subpath {
	for len(sps) < n {
		sps = append(sps, Subpath{Start: anchor})
	}
	return sps
}

// cubics returns the subpath's curves elevated to cubics; a subpath without
// curves becomes a single degenerate cubic at its start.
func cubics(sp Subpath) []Curve {
	if len(sp.Curves) == 0 {
		return []Curve{collapsed(3, sp.Start)}
	}
	out := make([]Curve, len(sp.Curves))
	for i, c := range sp.Curves {
		out[i] = c.Elevate()
	}
	return out
}

// subdivideTo splits curves until there are n of them, spreading the extra
// splits evenly across the list.
func subdivideTo(curves []Curve, n int) []Curve {
	m := len(curves)
	if m >= n {
		return curves
	}
	splits := make([]int, m)
	for i := 0; i < n; i++ {
		splits[i*m/n]++
	}
	out := make([]Curve, 0, n)
	for i, c := range curves {
		k := splits[i]
		for j := 0; j < k; j++ {
			out = append(out, c.Subsegment(float64(j)/float64(k), float64(j+1)/float64(k)))
		}
	}
	return out
}
