package kinema

import (
	"golang.org/x/image/math/f64"

	"github.com/phanxgames/kinema/geom"
)

// All node transforms apply to every path (and tip path) in the subtree
// rooted at the receiver. They return n for chaining.

// Shift translates the subtree by v.
func (n *Node) Shift(v geom.Point) *Node {
	n.eachPath(func(p *geom.Path) { p.Translate(v) })
	return n
}

// Scale scales the subtree about its center.
func (n *Node) Scale(factor float64) *Node {
	return n.ScaleAbout(factor, n.Center())
}

// ScaleAbout scales the subtree about an explicit point.
func (n *Node) ScaleAbout(factor float64, about geom.Point) *Node {
	n.eachPath(func(p *geom.Path) { p.Scale(factor, about) })
	return n
}

// Rotate turns the subtree by angle radians about its center, in the XY
// plane. Positive angles turn counterclockwise.
func (n *Node) Rotate(angle float64) *Node {
	return n.RotateAbout(angle, n.Center())
}

// RotateAbout turns the subtree by angle radians about a point.
func (n *Node) RotateAbout(angle float64, about geom.Point) *Node {
	return n.ApplyMatrix(geom.RotationMatrix(angle, geom.Point{Z: 1}), about)
}

// ApplyMatrix maps every point p to about + m·(p - about).
func (n *Node) ApplyMatrix(m f64.Mat3, about geom.Point) *Node {
	n.eachPath(func(p *geom.Path) { p.ApplyMatrix(m, about) })
	return n
}

// ApplyAffine maps the XY coordinates of every point through m.
func (n *Node) ApplyAffine(m f64.Aff3) *Node {
	n.eachPath(func(p *geom.Path) { p.ApplyAffine(m) })
	return n
}

// MoveTo shifts the subtree so its center lands on pt.
func (n *Node) MoveTo(pt geom.Point) *Node {
	return n.Shift(pt.Sub(n.Center()))
}

// Bounds returns the axis-aligned box around every path point in the
// subtree. ok is false when the subtree has no points.
func (n *Node) Bounds() (lo, hi geom.Point, ok bool) {
	n.eachPath(func(p *geom.Path) {
		plo, phi, pok := p.Bounds()
		if !pok {
			return
		}
		if !ok {
			lo, hi, ok = plo, phi, true
			return
		}
		lo = geom.Pt3(min(lo.X, plo.X), min(lo.Y, plo.Y), min(lo.Z, plo.Z))
		hi = geom.Pt3(max(hi.X, phi.X), max(hi.Y, phi.Y), max(hi.Z, phi.Z))
	})
	return lo, hi, ok
}

// Center returns the middle of Bounds, or the origin for an empty subtree.
func (n *Node) Center() geom.Point {
	lo, hi, ok := n.Bounds()
	if !ok {
		return geom.Origin
	}
	return lo.Lerp(hi, 0.5)
}

// Width returns the X extent of the subtree.
func (n *Node) Width() float64 {
	lo, hi, _ := n.Bounds()
	return hi.X - lo.X
}

// Height returns the Y extent of the subtree.
func (n *Node) Height() float64 {
	lo, hi, _ := n.Bounds()
	return hi.Y - lo.Y
}

func (n *Node) eachPath(fn func(*geom.Path)) {
	n.walk(func(m *Node) {
		for _, p := range m.paths() {
			fn(p)
		}
	})
}
