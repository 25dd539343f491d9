package kinema

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/phanxgames/kinema/colorspace"
	"github.com/phanxgames/kinema/geom"
	"github.com/phanxgames/kinema/internal/diag"
	"github.com/phanxgames/kinema/internal/mathx"
)

// State is an animation's position in its lifecycle. Finished is terminal.
type State uint8

const (
	Idle State = iota
	Running
	Finished
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Finished:
		return "finished"
	}
	return fmt.Sprintf("State(%d)", uint8(s))
}

// Stage owns scene membership. Introducer animations add their node when
// they begin, remover animations remove it when they finish.
type Stage interface {
	Add(nodes ...*Node)
	Remove(nodes ...*Node)
	Contains(n *Node) bool
}

// Animator is driven by Scene.Play and Scene.Update. Animation and the
// group types implement it.
type Animator interface {
	Begin()
	Step(dt float64)
	Finish()
	State() State
	// Attach binds the stage and event sink. Either may be nil.
	Attach(stage Stage, sink EventSink)
}

// AnimConfig configures an Animation. Start from DefaultAnimConfig or
// Config.AnimConfig; a zero RunTime makes Begin panic.
type AnimConfig struct {
	Name string

	// RunTime is the duration in seconds. Must be positive.
	RunTime float64

	// Rate eases each member's sub-progress. nil means Smooth.
	Rate RateFunc

	// LagRatio staggers family members: member i starts once member i-1 is
	// LagRatio of the way through. Clamped to [0, 1].
	LagRatio float64

	// Reverse feeds 1 - progress to Rate.
	Reverse bool

	// Introducer adds the node to the stage on Begin if it is not there.
	Introducer bool

	// Remover removes the node from the stage on Finish.
	Remover bool

	// SuspendUpdating pauses the node's OnUpdate callbacks while running.
	SuspendUpdating bool

	// PathFunc moves points for transform animations. nil means
	// geom.StraightPath.
	PathFunc geom.PathFunc

	// ColorSpace is where fill and stroke colors are blended.
	ColorSpace colorspace.Space

	// ArcSamples is the arc-length resolution for partial reveals. Zero
	// means geom.DefaultArcSamples.
	ArcSamples int
}

// DefaultAnimConfig returns a one second smoothstep animation blending in
// Oklab.
func DefaultAnimConfig() AnimConfig {
	return AnimConfig{
		RunTime:         1,
		Rate:            Smooth,
		SuspendUpdating: true,
		ColorSpace:      colorspace.DefaultSpace,
	}
}

// member is one (live, starting snapshot, target) triple of a family.
type member struct {
	node, start, target *Node
}

// kind supplies the per-animation-type behavior.
type kind interface {
	// prepare runs in Begin before the starting snapshot is taken.
	prepare(a *Animation)
	// interpolateMember moves one family member to sub-progress sub.
	interpolateMember(a *Animation, m member, sub float64)
	// cleanup runs in Finish after the final interpolation.
	cleanup(a *Animation)
}

// Animation moves a node from a snapshot of its state at Begin toward a
// target state. It is driven by Step, usually through Scene.Update, and is
// not safe for concurrent use. At most one running animation should target
// a given node.
type Animation struct {
	ID uuid.UUID

	cfg     AnimConfig
	sampler geom.Sampler
	kind    kind

	node   *Node
	target *Node
	start  *Node

	stage Stage
	sink  EventSink

	state   State
	elapsed float64
	members []member
}

func newAnimation(node *Node, k kind, cfg AnimConfig) *Animation {
	if cfg.Rate == nil {
		cfg.Rate = Smooth
	}
	if cfg.PathFunc == nil {
		cfg.PathFunc = geom.StraightPath
	}
	if !mathx.InRange(cfg.LagRatio, 0, 1) {
		diag.Clamped("AnimConfig.LagRatio", cfg.LagRatio, 0, 1, true)
		cfg.LagRatio = mathx.Clamp01(cfg.LagRatio)
	}
	if !cfg.ColorSpace.Valid() {
		diag.Logger().Warn("kinema: invalid color space, using default",
			"space", cfg.ColorSpace.String(), "default", colorspace.DefaultSpace.String())
		cfg.ColorSpace = colorspace.DefaultSpace
	}
	return &Animation{
		ID:      uuid.New(),
		cfg:     cfg,
		sampler: geom.Sampler{Samples: cfg.ArcSamples},
		kind:    k,
		node:    node,
	}
}

// Attach implements Animator.
func (a *Animation) Attach(stage Stage, sink EventSink) {
	a.stage = stage
	a.sink = sink
}

// Begin moves the animation from Idle to Running. It panics with an error
// wrapping ErrValue if the run time is not positive. Calling Begin on a
// running or finished animation does nothing.
func (a *Animation) Begin() {
	if a.state != Idle {
		return
	}
	if a.cfg.RunTime <= 0 {
		panic(fmt.Errorf("%w: animation %q run time %v must be positive", ErrValue, a.cfg.Name, a.cfg.RunTime))
	}
	a.kind.prepare(a)
	if a.node != nil {
		a.start = a.node.Copy()
		if a.cfg.SuspendUpdating {
			a.node.SuspendUpdating()
		}
		if a.cfg.Introducer && a.stage != nil && !a.stage.Contains(a.node) {
			a.stage.Add(a.node)
		}
		a.members = pairMembers(a.node, a.start, a.target)
	}
	a.state = Running
	a.emit(AnimationBegan)
	a.Interpolate(0)
}

// Step advances the animation by dt seconds. Once the elapsed time reaches
// the run time the animation finishes. Before that, members are only moved
// once the elapsed time has passed LagRatio of the run time.
// Step does nothing unless the animation is running.
func (a *Animation) Step(dt float64) {
	if a.state != Running {
		return
	}
	a.elapsed += dt
	if a.elapsed >= a.cfg.RunTime {
		a.Finish()
		return
	}
	if a.elapsed >= a.cfg.LagRatio*a.cfg.RunTime {
		a.Interpolate(a.elapsed / a.cfg.RunTime)
	}
}

// Finish forces the final state: every member is interpolated to 1, a
// remover takes its node off the stage, and suspended updaters resume.
// Finishing an Idle animation begins it first. Calling Finish again does
// nothing.
func (a *Animation) Finish() {
	switch a.state {
	case Finished:
		return
	case Idle:
		a.Begin()
	}
	a.Interpolate(1)
	a.kind.cleanup(a)
	if a.node != nil {
		if a.cfg.Remover && a.stage != nil {
			a.stage.Remove(a.node)
		}
		if a.cfg.SuspendUpdating {
			a.node.ResumeUpdating()
		}
	}
	a.state = Finished
	a.emit(AnimationFinished)
}

// Interpolate moves every family member to its sub-progress for global
// progress alpha.
func (a *Animation) Interpolate(alpha float64) {
	n := len(a.members)
	for i, m := range a.members {
		a.kind.interpolateMember(a, m, a.SubAlpha(alpha, i, n))
	}
}

// RawSubAlpha is the un-eased progress of member index out of count at
// global progress alpha. With fullLength = (count-1)·lagRatio + 1 it is
// alpha·fullLength - index·lagRatio. The result is not clamped: values
// below 0 mean the member has not started, values above 1 that it is done.
func RawSubAlpha(alpha, lagRatio float64, index, count int) float64 {
	fullLength := float64(count-1)*lagRatio + 1
	return alpha*fullLength - float64(index)*lagRatio
}

// SubAlpha is the eased progress of member index out of count.
func (a *Animation) SubAlpha(alpha float64, index, count int) float64 {
	raw := RawSubAlpha(alpha, a.cfg.LagRatio, index, count)
	if a.cfg.Reverse {
		return a.cfg.Rate(1 - raw)
	}
	return a.cfg.Rate(raw)
}

// State implements Animator.
func (a *Animation) State() State { return a.state }

// Elapsed returns the seconds stepped so far.
func (a *Animation) Elapsed() float64 { return a.elapsed }

// RunTime returns the configured duration.
func (a *Animation) RunTime() float64 { return a.cfg.RunTime }

// Name returns the configured name.
func (a *Animation) Name() string { return a.cfg.Name }

// Config returns the effective configuration.
func (a *Animation) Config() AnimConfig { return a.cfg }

// Node returns the animated node, or nil for Wait.
func (a *Animation) Node() *Node { return a.node }

// StartingSnapshot returns the private copy taken at Begin, or nil before
// that. It must not be modified.
func (a *Animation) StartingSnapshot() *Node { return a.start }

func (a *Animation) emit(typ AnimationEventType) {
	ev := AnimationEvent{
		Type:        typ,
		AnimationID: a.ID,
		Name:        a.cfg.Name,
		Elapsed:     a.elapsed,
	}
	if a.node != nil {
		ev.NodeID = a.node.ID
	}
	if globalDebug {
		diag.Logger().Info("animation "+typ.String(),
			"id", a.ID, "name", a.cfg.Name, "node", ev.NodeID, "elapsed", a.elapsed)
	}
	if a.sink != nil {
		a.sink.EmitAnimationEvent(ev)
	}
}

// pairMembers lines up the path-owning families. target may be nil.
func pairMembers(node, start, target *Node) []member {
	live := node.FamilyWithPaths()
	snap := start.FamilyWithPaths()
	var tgt []*Node
	if target != nil {
		tgt = target.FamilyWithPaths()
	}
	n := min(len(live), len(snap))
	if target != nil {
		n = min(n, len(tgt))
	}
	out := make([]member, n)
	for i := range out {
		out[i] = member{node: live[i], start: snap[i]}
		if target != nil {
			out[i].target = tgt[i]
		}
	}
	return out
}
