package kinema

import (
	"github.com/phanxgames/kinema/geom"
	"github.com/phanxgames/kinema/internal/diag"
	"github.com/phanxgames/kinema/internal/mathx"
)

// --- Transform ---

type transformKind struct {
	to      *Node
	replace bool
}

func (k *transformKind) prepare(a *Animation) {
	a.target = k.to.Copy()
	alignNodes(a.node, a.target)
}

func (k *transformKind) interpolateMember(a *Animation, m member, sub float64) {
	blendMember(a, m, sub)
}

// cleanup leaves each member closed exactly where its target is. Alignment
// closes a subpath on both sides when either side was closed.
func (k *transformKind) cleanup(a *Animation) {
	for _, m := range a.members {
		live, target := m.node.paths(), m.target.paths()
		for i := range min(len(live), len(target)) {
			live[i].MatchCloses(target[i])
		}
	}
	if k.replace && a.stage != nil && !a.stage.Contains(k.to) {
		a.stage.Add(k.to)
	}
}

// blendMember moves m's paths from the snapshot toward the target with the
// configured PathFunc and blends its style.
func blendMember(a *Animation, m member, sub float64) {
	if sub < 0 || sub > 1 {
		diag.Clamped("Animation.interpolate", sub, 0, 1, false)
		sub = mathx.Clamp01(sub)
	}
	live, start, target := m.node.paths(), m.start.paths(), m.target.paths()
	for i := range min(len(live), len(start), len(target)) {
		pts := a.cfg.PathFunc(start[i].Points(), target[i].Points(), sub)
		if err := live[i].SetPoints(pts); err != nil {
			diag.Logger().Error("kinema: transform member", "node", m.node.Name, "err", err)
		}
	}
	m.node.Style = m.start.Style.Blend(m.target.Style, sub, a.cfg.ColorSpace)
}

// Transform morphs node into the shape and style of target. target itself
// is left untouched; node ends up looking like it.
func Transform(node, target *Node, cfg AnimConfig) *Animation {
	return newAnimation(node, &transformKind{to: target}, cfg)
}

// ReplacementTransform morphs node into target, then takes node off the
// stage and puts target on it.
func ReplacementTransform(node, target *Node, cfg AnimConfig) *Animation {
	cfg.Remover = true
	return newAnimation(node, &transformKind{to: target, replace: true}, cfg)
}

// ClockwiseTransform is Transform with points travelling along clockwise
// half-circle arcs.
func ClockwiseTransform(node, target *Node, cfg AnimConfig) *Animation {
	cfg.PathFunc = geom.Clockwise()
	return Transform(node, target, cfg)
}

// CounterclockwiseTransform is Transform along counterclockwise arcs.
func CounterclockwiseTransform(node, target *Node, cfg AnimConfig) *Animation {
	cfg.PathFunc = geom.Counterclockwise()
	return Transform(node, target, cfg)
}

// Target returns the node a transform animation is heading for, or nil for
// other kinds.
func (a *Animation) Target() *Node {
	if k, ok := a.kind.(*transformKind); ok {
		return k.to
	}
	return a.target
}

// --- Partial reveal ---

// BoundsFunc maps sub-progress to the [start, end] proportion of each path
// that is shown.
type BoundsFunc func(sub float64) (start, end float64)

type partialKind struct {
	bounds BoundsFunc
}

func (k *partialKind) prepare(*Animation) {}
func (k *partialKind) cleanup(*Animation) {}

func (k *partialKind) interpolateMember(a *Animation, m member, sub float64) {
	lo, hi := k.bounds(sub)
	live, start := m.node.paths(), m.start.paths()
	for i := range min(len(live), len(start)) {
		live[i].Become(a.sampler.ExtractPartial(start[i], lo, hi))
	}
}

func createBounds(sub float64) (float64, float64) { return 0, sub }

// Reveal shows the [start, end] portion of every path in node's family as
// given by bounds. Create and Uncreate are Reveal with fixed bounds.
func Reveal(node *Node, bounds BoundsFunc, cfg AnimConfig) *Animation {
	return newAnimation(node, &partialKind{bounds: bounds}, cfg)
}

// Create draws node's paths from start to end. It is an introducer.
func Create(node *Node, cfg AnimConfig) *Animation {
	cfg.Introducer = true
	return Reveal(node, createBounds, cfg)
}

// Uncreate is Create run backwards. It is a remover.
func Uncreate(node *Node, cfg AnimConfig) *Animation {
	cfg.Reverse = !cfg.Reverse
	cfg.Introducer = false
	cfg.Remover = true
	return Reveal(node, createBounds, cfg)
}

// --- Fade ---

// FadeConfig adds optional motion to a fade. The zero value fades in place.
type FadeConfig struct {
	// Shift is the distance travelled while fading.
	Shift geom.Point
	// Scale is the size factor reached while fading out, or left behind
	// while fading in. Zero means 1.
	Scale float64
}

type fadeKind struct {
	in  bool
	opt FadeConfig
}

func (k *fadeKind) prepare(a *Animation) {
	scale := k.opt.Scale
	if scale == 0 {
		scale = 1
	}
	a.target = a.node.Copy()
	if k.in {
		a.target.walk(func(m *Node) { m.Style = m.Style.Opaque() })
		a.node.Shift(k.opt.Shift.Mul(-1))
		if scale != 1 {
			a.node.Scale(1 / scale)
		}
		a.node.SetOpacity(0)
		return
	}
	a.target.Shift(k.opt.Shift)
	if scale != 1 {
		a.target.Scale(scale)
	}
	a.target.SetOpacity(0)
}

func (k *fadeKind) interpolateMember(a *Animation, m member, sub float64) {
	blendMember(a, m, sub)
}

func (k *fadeKind) cleanup(*Animation) {}

// FadeIn raises node from transparent to full opacity. Channels that are
// unpainted before the fade stay unpainted (see Style.Opaque). It is an
// introducer.
func FadeIn(node *Node, opt FadeConfig, cfg AnimConfig) *Animation {
	cfg.Introducer = true
	return newAnimation(node, &fadeKind{in: true, opt: opt}, cfg)
}

// FadeOut lowers node to opacity 0. It is a remover.
func FadeOut(node *Node, opt FadeConfig, cfg AnimConfig) *Animation {
	cfg.Remover = true
	return newAnimation(node, &fadeKind{opt: opt}, cfg)
}

// --- Wait ---

type waitKind struct{}

func (waitKind) prepare(*Animation)                           {}
func (waitKind) interpolateMember(*Animation, member, float64) {}
func (waitKind) cleanup(*Animation)                           {}

// Wait does nothing for cfg.RunTime seconds. It is useful for pacing inside
// a Succession.
func Wait(cfg AnimConfig) *Animation {
	cfg.Introducer, cfg.Remover, cfg.SuspendUpdating = false, false, false
	return newAnimation(nil, waitKind{}, cfg)
}
