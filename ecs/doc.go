// Package ecs provides ECS adapters for tempo's tween completions.
//
// The primary adapter is [PublishEnds], which bridges tween end callbacks
// (natural and forced) into a [Donburi] world as typed events. Subscribe to
// [EndEventType] in your ECS systems to receive them.
//
// Usage:
//
//	id := ecs.Add(manager, world, tempo.Tween{Duration: time.Second})
//	ecs.EndEventType.Subscribe(world, onTweenEnd)
//	// each frame:
//	ecs.EndEventType.ProcessEvents(world)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
