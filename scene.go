package kinema

// Updater is advanced once per Scene.Update after animations and node
// callbacks. It is dropped once Finished reports true.
type Updater interface {
	Update(dt float64)
	Finished() bool
}

// Scene owns the node tree that is on stage and drives animations frame by
// frame. It implements Stage. The frame loop (see the ebitenrender package)
// calls Update once per frame.
type Scene struct {
	root     *Node
	anims    []Animator
	updaters []Updater
	sink     EventSink
	debug    bool
	time     float64
}

// NewScene creates a new scene with a pre-created root node.
func NewScene() *Scene {
	return &Scene{root: NewNode("root")}
}

// Root returns the scene's root node. Everything below it is on stage.
func (s *Scene) Root() *Node {
	return s.root
}

// Add puts nodes on stage as children of the root. A node that is already
// on stage moves to the front.
func (s *Scene) Add(nodes ...*Node) {
	for _, n := range nodes {
		s.root.AddChild(n)
	}
}

// Remove takes nodes off stage. Nodes that are not on stage are ignored.
func (s *Scene) Remove(nodes ...*Node) {
	for _, n := range nodes {
		if n != s.root && s.Contains(n) {
			n.RemoveFromParent()
		}
	}
}

// Contains reports whether n is the root or one of its descendants.
func (s *Scene) Contains(n *Node) bool {
	return n != nil && isAncestor(s.root, n)
}

// Play attaches and begins anims, then registers them to be stepped by
// Update in the order given.
func (s *Scene) Play(anims ...Animator) {
	for _, a := range anims {
		a.Attach(s, s.sink)
		a.Begin()
		if a.State() != Finished {
			s.anims = append(s.anims, a)
		}
	}
}

// Update advances the scene by dt seconds: animations are stepped in
// registration order and finished ones dropped, then OnUpdate callbacks run
// for nodes on stage, then updaters run.
func (s *Scene) Update(dt float64) {
	s.time += dt

	live := s.anims[:0]
	for _, a := range s.anims {
		a.Step(dt)
		if a.State() != Finished {
			live = append(live, a)
		}
	}
	clear(s.anims[len(live):])
	s.anims = live

	s.root.update(dt)

	keep := s.updaters[:0]
	for _, u := range s.updaters {
		u.Update(dt)
		if !u.Finished() {
			keep = append(keep, u)
		}
	}
	clear(s.updaters[len(keep):])
	s.updaters = keep
}

// FinishAll finishes every running animation in registration order.
func (s *Scene) FinishAll() {
	for _, a := range s.anims {
		a.Finish()
	}
	clear(s.anims)
	s.anims = s.anims[:0]
}

// Animating reports whether any animation is still running.
func (s *Scene) Animating() bool {
	return len(s.anims) > 0
}

// AddUpdater registers u to run every frame until it finishes.
func (s *Scene) AddUpdater(u Updater) {
	s.updaters = append(s.updaters, u)
}

// Time returns the total seconds passed to Update.
func (s *Scene) Time() float64 {
	return s.time
}

// SetEventSink sets where animation events are published. Animations
// already playing keep the sink they were started with.
func (s *Scene) SetEventSink(sink EventSink) {
	s.sink = sink
}

// SetDebugMode enables or disables debug mode. When enabled, disposed-node
// access panics, tree depth and child count warnings are logged, and
// animation lifecycle is logged at info level.
func (s *Scene) SetDebugMode(enabled bool) {
	s.debug = enabled
	globalDebug = enabled
}

// globalDebug mirrors the most recently set Scene debug flag so that node
// operations (which lack a Scene pointer) can check it cheaply. Only valid
// with a single Scene; multiple Scenes with differing debug modes will
// reflect whichever called SetDebugMode last.
var globalDebug bool
