package colorspace

import (
	"fmt"

	"golang.org/x/image/math/f64"
)

// Step converts a channel triple across one edge of the graph.
type Step func(f64.Vec3) f64.Vec3

type edge struct {
	parent     Space
	toParent   Step
	fromParent Step
}

// Graph is a conversion tree rooted at Hub. Every other space has exactly
// one edge pointing toward the hub; conversions walk source→hub and then
// hub→destination.
//
// A Graph is not safe for concurrent mutation. Once built it can be shared
// freely.
type Graph struct {
	edges map[Space]edge
}

// NewGraph returns a graph containing only the hub.
func NewGraph() *Graph {
	return &Graph{edges: make(map[Space]edge)}
}

// DefaultGraph builds the standard conversion tree:
//
//	SRGB → LinearRGB → XYZ
//	HSL → SRGB
//	HSV → SRGB
//	Oklch → Oklab → XYZ
func DefaultGraph() *Graph {
	g := NewGraph()
	g.mustAdd(LinearRGB, XYZ, linearToXYZ, xyzToLinear)
	g.mustAdd(SRGB, LinearRGB, srgbToLinear, linearToSRGB)
	g.mustAdd(HSL, SRGB, hslToSRGB, srgbToHSL)
	g.mustAdd(HSV, SRGB, hsvToSRGB, srgbToHSV)
	g.mustAdd(Oklab, XYZ, oklabToXYZ, xyzToOklab)
	g.mustAdd(Oklch, Oklab, oklchToOklab, oklabToOklch)
	return g
}

// AddEdge registers space with a single edge toward parent. The parent must
// be the hub or already registered, and space must not already have an edge.
func (g *Graph) AddEdge(space, parent Space, toParent, fromParent Step) error {
	switch {
	case space == Hub:
		return fmt.Errorf("%w: the hub has no parent", ErrValidation)
	case space == parent:
		return fmt.Errorf("%w: %v cannot be its own parent", ErrValidation, space)
	case toParent == nil || fromParent == nil:
		return fmt.Errorf("%w: nil step for %v", ErrValidation, space)
	case !g.Has(parent):
		return fmt.Errorf("%w: parent %v is not registered", ErrValidation, parent)
	}
	if _, dup := g.edges[space]; dup {
		return fmt.Errorf("%w: %v already has an edge", ErrValidation, space)
	}
	g.edges[space] = edge{parent: parent, toParent: toParent, fromParent: fromParent}
	return nil
}

func (g *Graph) mustAdd(space, parent Space, to, from Step) {
	if err := g.AddEdge(space, parent, to, from); err != nil {
		panic("colorspace: " + err.Error())
	}
}

// Has reports whether space can be converted by g.
func (g *Graph) Has(space Space) bool {
	if space == Hub {
		return true
	}
	_, ok := g.edges[space]
	return ok
}

// Convert maps v from one space to another. Converting a space to itself
// returns v without invoking any step.
func (g *Graph) Convert(v f64.Vec3, from, to Space) (f64.Vec3, error) {
	if from == to {
		return v, nil
	}
	if !g.Has(from) {
		return v, fmt.Errorf("%w: no conversion for %v", ErrValue, from)
	}
	if !g.Has(to) {
		return v, fmt.Errorf("%w: no conversion for %v", ErrValue, to)
	}
	for s := from; s != Hub; {
		e := g.edges[s]
		v = e.toParent(v)
		s = e.parent
	}
	// Collect the descent first; it has to run hub-side first.
	var down []Step
	for s := to; s != Hub; {
		e := g.edges[s]
		down = append(down, e.fromParent)
		s = e.parent
	}
	for i := len(down) - 1; i >= 0; i-- {
		v = down[i](v)
	}
	return v, nil
}

// standard is never mutated after construction.
var standard = DefaultGraph()

// Convert maps v between two built-in spaces using the default graph.
func Convert(v f64.Vec3, from, to Space) (f64.Vec3, error) {
	return standard.Convert(v, from, to)
}
