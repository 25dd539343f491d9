// Package ecs provides ECS adapters for kinema's animation events.
//
// The primary adapter is [NewDonburiSink], which bridges kinema animation
// lifecycle events (began, finished) into a [Donburi] world as typed events.
// Subscribe to [AnimationEventType] in your ECS systems to receive them.
//
// Usage:
//
//	sink := ecs.NewDonburiSink(world)
//	scene.SetEventSink(sink)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
