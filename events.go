package kinema

import (
	"fmt"

	"github.com/google/uuid"
)

// AnimationEventType identifies an animation lifecycle transition.
type AnimationEventType uint8

const (
	AnimationBegan    AnimationEventType = iota // Idle → Running
	AnimationFinished                           // → Finished
)

func (t AnimationEventType) String() string {
	switch t {
	case AnimationBegan:
		return "began"
	case AnimationFinished:
		return "finished"
	}
	return fmt.Sprintf("AnimationEventType(%d)", uint8(t))
}

// AnimationEvent is published when an animation begins or finishes.
type AnimationEvent struct {
	Type        AnimationEventType
	AnimationID uuid.UUID
	Name        string
	NodeID      uint32 // 0 for animations without a node
	Elapsed     float64
}

// EventSink receives animation events. Set one on a Scene with
// SetEventSink; the ecs package provides a Donburi-backed sink.
type EventSink interface {
	EmitAnimationEvent(event AnimationEvent)
}

// EventSinkFunc adapts a function to EventSink.
type EventSinkFunc func(AnimationEvent)

// EmitAnimationEvent implements EventSink.
func (f EventSinkFunc) EmitAnimationEvent(e AnimationEvent) { f(e) }
