package kinema

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/phanxgames/kinema/colorspace"
)

// Tween animates up to 4 scalar values simultaneously and hands them to a
// setter every frame. Tweens are lightweight property animations that run
// alongside the Animation engine; register one with Scene.AddUpdater or
// call Update yourself. If the target node is disposed, the tween stops
// immediately.
type Tween struct {
	tweens [4]*gween.Tween
	count  int
	apply  func(vals [4]float64)
	target *Node
	Done   bool
}

// Update advances all tweens by dt seconds and applies the values. If the
// target node has been disposed, Done is set to true and nothing is applied.
func (tw *Tween) Update(dt float64) {
	if tw.Done {
		return
	}
	if tw.target != nil && tw.target.IsDisposed() {
		tw.Done = true
		return
	}
	var vals [4]float64
	allDone := true
	for i := 0; i < tw.count; i++ {
		val, finished := tw.tweens[i].Update(float32(dt))
		vals[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	tw.apply(vals)
	tw.Done = allDone
}

// Finished implements Updater.
func (tw *Tween) Finished() bool { return tw.Done }

// TweenValue animates *v toward to.
func TweenValue(v *float64, to float64, duration float32, fn ease.TweenFunc) *Tween {
	tw := &Tween{count: 1, apply: func(vals [4]float64) { *v = vals[0] }}
	tw.tweens[0] = gween.New(float32(*v), float32(to), duration, fn)
	return tw
}

// TweenOpacity animates the opacity of node's subtree from node's current
// opacity to the target value.
func TweenOpacity(node *Node, to float64, duration float32, fn ease.TweenFunc) *Tween {
	tw := &Tween{count: 1, target: node, apply: func(vals [4]float64) { node.SetOpacity(vals[0]) }}
	tw.tweens[0] = gween.New(float32(node.Opacity()), float32(to), duration, fn)
	return tw
}

// TweenStrokeWidth animates the stroke width of node's subtree.
func TweenStrokeWidth(node *Node, to float64, duration float32, fn ease.TweenFunc) *Tween {
	tw := &Tween{count: 1, target: node, apply: func(vals [4]float64) { node.SetStrokeWidth(vals[0]) }}
	tw.tweens[0] = gween.New(float32(node.Style.StrokeWidth), float32(to), duration, fn)
	return tw
}

// TweenFill animates all four sRGB components of node's fill color. The
// channels move independently; use a Transform to blend perceptually.
func TweenFill(node *Node, to colorspace.Color, duration float32, fn ease.TweenFunc) *Tween {
	from := node.Style.Fill
	tw := &Tween{count: 4, target: node, apply: func(vals [4]float64) {
		node.SetFill(colorspace.New(vals[0], vals[1], vals[2], vals[3]))
	}}
	tw.tweens[0] = gween.New(float32(from.R()), float32(to.R()), duration, fn)
	tw.tweens[1] = gween.New(float32(from.G()), float32(to.G()), duration, fn)
	tw.tweens[2] = gween.New(float32(from.B()), float32(to.B()), duration, fn)
	tw.tweens[3] = gween.New(float32(from.A()), float32(to.A()), duration, fn)
	return tw
}
