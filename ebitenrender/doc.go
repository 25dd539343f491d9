// Package ebitenrender draws a kinema scene tree with Ebitengine.
//
// Paths are flattened into polylines in screen space, filled as triangle
// fans under the non-zero winding rule and stroked as one quad per segment
// with bevel joins. All geometry is submitted through DrawTriangles32 with
// a 1×1 white source image so vertex colors carry the paint.
//
// Scene units are mapped to pixels by a [Camera]: the origin sits at the
// center of the screen and +Y points up.
//
//	scene := kinema.NewScene()
//	circle := kinema.NewCircle("c", 1)
//	scene.Play(kinema.Create(circle, kinema.DefaultAnimConfig()))
//	if err := ebitenrender.Run(scene, ebitenrender.RunConfig{Title: "demo"}); err != nil {
//		log.Fatal(err)
//	}
//
// [AppendPath] is provided for callers that prefer ebiten's vector package
// for their own drawing.
package ebitenrender
