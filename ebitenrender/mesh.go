package ebitenrender

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// whitePixelImage is a 1×1 white image used as the source for untextured
// triangles. Rendering is single-threaded, so it is created lazily without
// synchronization.
var whitePixelImage *ebiten.Image

func ensureWhitePixel() *ebiten.Image {
	if whitePixelImage == nil {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		whitePixelImage = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	return whitePixelImage
}

// rgba is a straight-alpha vertex color.
type rgba struct{ r, g, b, a float32 }

func (c rgba) vertex(p vec2) ebiten.Vertex {
	return ebiten.Vertex{
		DstX: p.x, DstY: p.y,
		SrcX: 1.5, SrcY: 1.5,
		ColorR: c.r, ColorG: c.g, ColorB: c.b, ColorA: c.a,
	}
}

// appendFill appends one triangle fan per polyline. Fans overlap for
// concave outlines; drawing with the non-zero fill rule resolves coverage.
func appendFill(verts []ebiten.Vertex, inds []uint32, lines []polyline, c rgba) ([]ebiten.Vertex, []uint32) {
	for _, pl := range lines {
		n := len(pl.pts)
		if n < 3 {
			continue
		}
		base := uint32(len(verts))
		for _, p := range pl.pts {
			verts = append(verts, c.vertex(p))
		}
		for i := uint32(1); i < uint32(n-1); i++ {
			inds = append(inds, base, base+i, base+i+1)
		}
	}
	return verts, inds
}

// appendStroke appends a quad of the given width for every segment of every
// polyline, plus a bevel pair of triangles at each interior joint.
func appendStroke(verts []ebiten.Vertex, inds []uint32, lines []polyline, width float32, c rgba) ([]ebiten.Vertex, []uint32) {
	if width <= 0 {
		return verts, inds
	}
	hw := width / 2
	for _, pl := range lines {
		n := len(pl.pts)
		if n < 2 {
			continue
		}
		segs := n - 1
		if pl.closed && n > 2 {
			segs = n
		}
		var prevN vec2
		for s := 0; s < segs; s++ {
			a, b := pl.pts[s], pl.pts[(s+1)%n]
			nrm := perpendicular(a, b)
			off := vec2{nrm.x * hw, nrm.y * hw}

			v := uint32(len(verts))
			verts = append(verts,
				c.vertex(vec2{a.x + off.x, a.y + off.y}),
				c.vertex(vec2{a.x - off.x, a.y - off.y}),
				c.vertex(vec2{b.x + off.x, b.y + off.y}),
				c.vertex(vec2{b.x - off.x, b.y - off.y}),
			)
			inds = append(inds, v, v+1, v+2, v+1, v+3, v+2)

			if s > 0 {
				verts, inds = appendBevel(verts, inds, a, prevN, nrm, hw, c)
			}
			prevN = nrm
		}
		if segs == n {
			first := perpendicular(pl.pts[0], pl.pts[1])
			verts, inds = appendBevel(verts, inds, pl.pts[0], prevN, first, hw, c)
		}
	}
	return verts, inds
}

// appendBevel fills the wedge between two segment quads meeting at p.
func appendBevel(verts []ebiten.Vertex, inds []uint32, p, n0, n1 vec2, hw float32, c rgba) ([]ebiten.Vertex, []uint32) {
	v := uint32(len(verts))
	verts = append(verts,
		c.vertex(p),
		c.vertex(vec2{p.x + n0.x*hw, p.y + n0.y*hw}),
		c.vertex(vec2{p.x + n1.x*hw, p.y + n1.y*hw}),
		c.vertex(vec2{p.x - n0.x*hw, p.y - n0.y*hw}),
		c.vertex(vec2{p.x - n1.x*hw, p.y - n1.y*hw}),
	)
	inds = append(inds, v, v+1, v+2, v, v+3, v+4)
	return verts, inds
}

// perpendicular returns the unit left-perpendicular of segment a→b. A
// degenerate segment yields (0, -1).
func perpendicular(a, b vec2) vec2 {
	dx := float64(b.x - a.x)
	dy := float64(b.y - a.y)
	l := math.Sqrt(dx*dx + dy*dy)
	if l < 1e-10 {
		return vec2{0, -1}
	}
	return vec2{float32(-dy / l), float32(dx / l)}
}
