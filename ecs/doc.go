// Package ecs forwards kinetic engine events into a [Donburi] world.
//
// [NewDonburiStore] returns a kinetic.EventSink that publishes every
// disclosure transition, item reveal and typewriter text change as a typed
// Donburi event. Subscribe to [EventType] in your ECS systems to receive
// them.
//
// Usage:
//
//	engine.SetEventSink(ecs.NewDonburiStore(world))
//	ecs.EventType.Subscribe(world, onMotionEvent)
//	// each tick, after engine.Update:
//	ecs.EventType.ProcessEvents(world)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
