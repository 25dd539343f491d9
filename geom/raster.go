package geom

import (
	"golang.org/x/image/math/f64"
	"golang.org/x/image/vector"
)

// AddTo feeds the path into a rasterizer after mapping every point through
// m (XY only). The rasterizer owns coverage computation; this only replays
// the segments. A vector.Rasterizer only fills, so every subpath is closed
// before the next one starts, whether or not it carries a drawn ClosePath.
func (p *Path) AddTo(r *vector.Rasterizer, m f64.Aff3) {
	xy := func(pt Point) (float32, float32) {
		q := ApplyAffine(m, pt)
		return float32(q.X), float32(q.Y)
	}
	idx := 0
	open := false
	for _, tag := range p.tags {
		pts := p.points[idx : idx+tag.PointCount()]
		switch tag {
		case MoveTo:
			if open {
				r.ClosePath()
			}
			open = true
			r.MoveTo(xy(pts[0]))
		case LineTo:
			r.LineTo(xy(pts[0]))
		case Quadratic:
			bx, by := xy(pts[0])
			cx, cy := xy(pts[1])
			r.QuadTo(bx, by, cx, cy)
		case Cubic:
			bx, by := xy(pts[0])
			cx, cy := xy(pts[1])
			dx, dy := xy(pts[2])
			r.CubeTo(bx, by, cx, cy, dx, dy)
		case ClosePath:
			r.ClosePath()
			open = false
		}
		idx += tag.PointCount()
	}
	if open {
		r.ClosePath()
	}
}
