package ebitenrender

import (
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/math/f64"

	"github.com/phanxgames/kinema/geom"
)

// AppendPath adds every segment of p, mapped through m, to dst.
func AppendPath(dst *vector.Path, p *geom.Path, m f64.Aff3) {
	if p == nil {
		return
	}
	pts := p.Points()
	i := 0
	for ti, tag := range p.Tags() {
		switch tag {
		case geom.MoveTo:
			x, y := screenXY(m, pts[i])
			dst.MoveTo(x, y)
		case geom.LineTo:
			x, y := screenXY(m, pts[i])
			dst.LineTo(x, y)
		case geom.Quadratic:
			cx, cy := screenXY(m, pts[i])
			x, y := screenXY(m, pts[i+1])
			dst.QuadTo(cx, cy, x, y)
		case geom.Cubic:
			c1x, c1y := screenXY(m, pts[i])
			c2x, c2y := screenXY(m, pts[i+1])
			x, y := screenXY(m, pts[i+2])
			dst.CubicTo(c1x, c1y, c2x, c2y, x, y)
		case geom.ClosePath:
			if p.ClosesSubpath(ti) {
				dst.Close()
			}
		}
		i += tag.PointCount()
	}
}

func screenXY(m f64.Aff3, p geom.Point) (float32, float32) {
	q := geom.ApplyAffine(m, p)
	return float32(q.X), float32(q.Y)
}

// polyline is one flattened subpath in screen space. cut marks a closed
// subpath that a partial reveal left open.
type polyline struct {
	pts    []vec2
	closed bool
	cut    bool
}

type vec2 struct{ x, y float32 }

// flatten appends the subpaths of p to dst, sampling every Bézier segment
// at steps evenly spaced parameters. A subpath whose last point coincides
// with its first is treated as closed even without a ClosePath tag, unless
// its ClosePath was cut by a partial reveal.
func flatten(dst []polyline, p *geom.Path, m f64.Aff3, steps int) []polyline {
	if p == nil || p.Empty() {
		return dst
	}
	if steps < 1 {
		steps = 1
	}
	first := len(dst)
	pts := p.Points()
	i := 0
	// Paths always open with MoveTo, so cur is set before any other tag.
	cur := -1
	var prev geom.Point
	push := func(q geom.Point) {
		x, y := screenXY(m, q)
		dst[cur].pts = append(dst[cur].pts, vec2{x, y})
	}
	for ti, tag := range p.Tags() {
		switch tag {
		case geom.MoveTo:
			dst = append(dst, polyline{})
			cur = len(dst) - 1
			prev = pts[i]
			push(prev)
		case geom.LineTo:
			prev = pts[i]
			push(prev)
		case geom.Quadratic, geom.Cubic:
			var c geom.Curve
			if tag == geom.Quadratic {
				c = geom.NewQuad(prev, pts[i], pts[i+1])
			} else {
				c = geom.NewCubic(prev, pts[i], pts[i+1], pts[i+2])
			}
			for k := 1; k <= steps; k++ {
				push(c.Eval(float64(k) / float64(steps)))
			}
			prev = pts[i+tag.PointCount()-1]
		case geom.ClosePath:
			if p.ClosesSubpath(ti) {
				dst[cur].closed = true
			} else {
				dst[cur].cut = true
			}
		}
		i += tag.PointCount()
	}
	for k := first; k < len(dst); k++ {
		pl := &dst[k]
		if n := len(pl.pts); n > 2 && !pl.cut && pl.pts[0] == pl.pts[n-1] {
			pl.pts = pl.pts[:n-1]
			pl.closed = true
		}
	}
	return dst
}
