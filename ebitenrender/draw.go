package ebitenrender

import (
	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/math/f64"

	"github.com/phanxgames/kinema"
	"github.com/phanxgames/kinema/colorspace"
	"github.com/phanxgames/kinema/geom"
)

// DefaultFrameHeight is the number of scene units visible vertically when a
// Camera leaves PixelsPerUnit unset.
const DefaultFrameHeight = 8

// DefaultCurveSteps is the number of line segments each Bézier segment is
// flattened into.
const DefaultCurveSteps = 16

// Camera maps scene units to screen pixels.
type Camera struct {
	// Center is the scene point drawn at the middle of the screen.
	Center geom.Point
	// PixelsPerUnit scales scene units. Zero fits DefaultFrameHeight units
	// into the screen height.
	PixelsPerUnit float64
}

// Affine returns the scene-to-screen transform for a w×h target. Scene +Y
// points up; screen +Y points down.
func (c Camera) Affine(w, h int) f64.Aff3 {
	s := c.PixelsPerUnit
	if s <= 0 {
		s = float64(h) / DefaultFrameHeight
	}
	return f64.Aff3{
		s, 0, float64(w)/2 - s*c.Center.X,
		0, -s, float64(h)/2 + s*c.Center.Y,
	}
}

// DrawOptions configures a Renderer.
type DrawOptions struct {
	Camera Camera
	// CurveSteps is the flattening resolution. Zero means DefaultCurveSteps.
	CurveSteps int
	// StrokeScale converts Style.StrokeWidth to pixels. Zero means 1.
	StrokeScale float64
}

// Renderer draws node trees. Its vertex and index buffers are reused across
// frames, so a Renderer must not be shared between goroutines.
type Renderer struct {
	opts  DrawOptions
	lines []polyline
	verts []ebiten.Vertex
	inds  []uint32

	fillOp   ebiten.DrawTrianglesOptions
	strokeOp ebiten.DrawTrianglesOptions
}

// NewRenderer creates a Renderer.
func NewRenderer(opts DrawOptions) *Renderer {
	if opts.CurveSteps <= 0 {
		opts.CurveSteps = DefaultCurveSteps
	}
	if opts.StrokeScale <= 0 {
		opts.StrokeScale = 1
	}
	return &Renderer{
		opts:     opts,
		fillOp:   ebiten.DrawTrianglesOptions{FillRule: ebiten.FillRuleNonZero},
		strokeOp: ebiten.DrawTrianglesOptions{FillRule: ebiten.FillRuleFillAll},
	}
}

// Options returns the renderer's resolved options.
func (r *Renderer) Options() DrawOptions {
	return r.opts
}

// Draw renders n and its visible descendants onto dst in pre-order, so
// children paint over their parents. An invisible node hides its subtree.
func (r *Renderer) Draw(dst *ebiten.Image, n *kinema.Node) {
	if n == nil {
		return
	}
	b := dst.Bounds()
	m := r.opts.Camera.Affine(b.Dx(), b.Dy())
	r.drawNode(dst, n, m)
}

func (r *Renderer) drawNode(dst *ebiten.Image, n *kinema.Node, m f64.Aff3) {
	if !n.Visible || n.IsDisposed() {
		return
	}
	if n.HasPath() {
		r.drawPath(dst, n.Path(), n.Style, m)
		if n.Tip != nil && n.Tip.Path != nil {
			// Tips are solid in the stroke color.
			tip := kinema.Style{Fill: n.Style.Stroke, Stroke: n.Style.Stroke}
			r.drawPath(dst, n.Tip.Path, tip, m)
		}
	}
	for _, c := range n.Children() {
		r.drawNode(dst, c, m)
	}
}

func (r *Renderer) drawPath(dst *ebiten.Image, p *geom.Path, st kinema.Style, m f64.Aff3) {
	r.lines = flatten(r.lines[:0], p, m, r.opts.CurveSteps)
	if len(r.lines) == 0 {
		return
	}
	r.verts = r.verts[:0]
	r.inds = r.inds[:0]
	if st.Fill.A() > 0 {
		r.verts, r.inds = appendFill(r.verts, r.inds, r.lines, toRGBA(st.Fill))
		r.flush(dst, &r.fillOp)
	}
	w := float32(st.StrokeWidth * r.opts.StrokeScale)
	if w > 0 && st.Stroke.A() > 0 {
		r.verts, r.inds = appendStroke(r.verts, r.inds, r.lines, w, toRGBA(st.Stroke))
		r.flush(dst, &r.strokeOp)
	}
}

// flush submits and clears the pending triangles. Fills need the non-zero
// rule to resolve overlapping fan triangles; stroke quads are drawn as is.
func (r *Renderer) flush(dst *ebiten.Image, op *ebiten.DrawTrianglesOptions) {
	if len(r.inds) == 0 {
		return
	}
	dst.DrawTriangles32(r.verts, r.inds, ensureWhitePixel(), op)
	r.verts = r.verts[:0]
	r.inds = r.inds[:0]
}

func toRGBA(c colorspace.Color) rgba {
	return rgba{float32(c.R()), float32(c.G()), float32(c.B()), float32(c.A())}
}

// Draw renders n onto dst with a temporary Renderer. Use a Renderer directly
// when drawing every frame so buffers are reused.
func Draw(dst *ebiten.Image, n *kinema.Node, opts DrawOptions) {
	NewRenderer(opts).Draw(dst, n)
}
