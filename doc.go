// Package kinema is a retained-mode vector animation engine.
//
// Kinema provides the scene tree, path geometry, perceptual color blending,
// and frame-driven animations (transforms, progressive reveals, fades,
// groups and successions) that mathematical animation needs. Rendering is
// left to an adapter; [github.com/phanxgames/kinema/ebitenrender] draws
// scenes with [Ebitengine].
//
// # Quick start
//
//	scene := kinema.NewScene()
//	square := kinema.NewSquare("square", 2)
//	circle := kinema.NewCircle("circle", 1)
//	circle.SetStroke(colorspace.MustHex("#FC6255"))
//
//	cfg := kinema.DefaultAnimConfig()
//	scene.Play(kinema.NewSuccession(
//		kinema.Create(square, cfg),
//		kinema.Transform(square, circle, cfg),
//		kinema.FadeOut(square, kinema.FadeConfig{}, cfg),
//	))
//
//	for scene.Animating() {
//		scene.Update(1.0 / 60)
//	}
//
// # Scene tree
//
// Every visual element is a [Node]. A node may own a [geom.Path] and always
// carries a [Style] (fill, stroke, stroke width). Nodes form a tree rooted
// at [Scene.Root]; everything below the root is on stage.
//
// Build nodes with the shape constructors: [NewPolygon], [NewRectangle],
// [NewSquare], [NewCircle], [NewArc], [NewLine], [NewArrow], [NewDot], and
// group them with [NewGroup].
//
// # Animations
//
// An [Animation] takes a private snapshot of its node on Begin and moves
// the node from that snapshot toward a target state as it is stepped.
// Progress is split across the node's family with [AnimConfig.LagRatio] and
// eased with a [RateFunc]. Introducer animations ([Create], [FadeIn]) put
// their node on stage when they begin; removers ([Uncreate], [FadeOut],
// [ReplacementTransform]) take it off when they finish.
//
// [Animate] records operations on a node and builds the [Transform] that
// carries it to the result:
//
//	anim, err := kinema.Animate(square).Shift(geom.Pt(2, 0)).Scale(0.5).Build(cfg)
//
// Lightweight property animations use [gween] through [Tween] and run as
// scene updaters.
//
// # Color
//
// Colors live in the [github.com/phanxgames/kinema/colorspace] package.
// Style blending goes through the configured [AnimConfig.ColorSpace],
// Oklab by default.
//
// # Diagnostics
//
// Out-of-range numeric input is clamped and reported through the logger
// installed with [SetLogger]. [Scene.SetDebugMode] adds disposed-node
// checks, tree-shape warnings and animation lifecycle logs.
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
package kinema
