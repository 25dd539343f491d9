// Package ecs provides ECS adapters for kinema.
package ecs

import (
	"github.com/phanxgames/kinema"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// AnimationEventType is the Donburi event type for kinema animation events.
// Subscribe to this in your ECS systems to react when animations begin or
// finish.
var AnimationEventType = events.NewEventType[kinema.AnimationEvent]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates an EventSink backed by a Donburi world.
// Animation events are published to AnimationEventType and can be
// consumed with events.Subscribe and ProcessEvents.
func NewDonburiSink(world donburi.World) kinema.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitAnimationEvent(event kinema.AnimationEvent) {
	AnimationEventType.Publish(s.world, event)
}
