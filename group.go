package kinema

// AnimationGroup runs several animations side by side. Begin, Step and
// Finish are forwarded to the members in registration order; the group is
// finished once every member is.
type AnimationGroup struct {
	anims []Animator
	state State
}

// NewAnimationGroup groups anims.
func NewAnimationGroup(anims ...Animator) *AnimationGroup {
	return &AnimationGroup{anims: anims}
}

// Animations returns the members. The returned slice MUST NOT be mutated.
func (g *AnimationGroup) Animations() []Animator { return g.anims }

// Attach implements Animator.
func (g *AnimationGroup) Attach(stage Stage, sink EventSink) {
	for _, a := range g.anims {
		a.Attach(stage, sink)
	}
}

// Begin implements Animator.
func (g *AnimationGroup) Begin() {
	if g.state != Idle {
		return
	}
	g.state = Running
	for _, a := range g.anims {
		a.Begin()
	}
	g.checkDone()
}

// Step implements Animator.
func (g *AnimationGroup) Step(dt float64) {
	if g.state != Running {
		return
	}
	for _, a := range g.anims {
		a.Step(dt)
	}
	g.checkDone()
}

// Finish implements Animator.
func (g *AnimationGroup) Finish() {
	if g.state == Finished {
		return
	}
	for _, a := range g.anims {
		a.Finish()
	}
	g.state = Finished
}

// State implements Animator.
func (g *AnimationGroup) State() State { return g.state }

func (g *AnimationGroup) checkDone() {
	for _, a := range g.anims {
		if a.State() != Finished {
			return
		}
	}
	g.state = Finished
}

// Succession runs animations one after another. Each member begins when
// the previous one finishes; time left over in that frame is not carried
// into the next member.
type Succession struct {
	anims []Animator
	cur   int
	state State
}

// NewSuccession chains anims.
func NewSuccession(anims ...Animator) *Succession {
	return &Succession{anims: anims}
}

// Attach implements Animator.
func (s *Succession) Attach(stage Stage, sink EventSink) {
	for _, a := range s.anims {
		a.Attach(stage, sink)
	}
}

// Begin implements Animator.
func (s *Succession) Begin() {
	if s.state != Idle {
		return
	}
	s.state = Running
	s.advance()
}

// Step implements Animator.
func (s *Succession) Step(dt float64) {
	if s.state != Running {
		return
	}
	s.anims[s.cur].Step(dt)
	s.advance()
}

// advance begins the current member and skips past finished ones.
func (s *Succession) advance() {
	for s.cur < len(s.anims) {
		a := s.anims[s.cur]
		a.Begin()
		if a.State() != Finished {
			return
		}
		s.cur++
	}
	s.state = Finished
}

// Finish implements Animator. Members that have not begun are begun and
// finished in order.
func (s *Succession) Finish() {
	if s.state == Finished {
		return
	}
	for ; s.cur < len(s.anims); s.cur++ {
		s.anims[s.cur].Finish()
	}
	s.state = Finished
}

// State implements Animator.
func (s *Succession) State() State { return s.state }
