// Package tempo schedules time-driven tweens.
//
// A tween is a time-bounded interpolation with three callbacks: OnStart once
// the tween becomes active, OnUpdate every frame with the eased progress, and
// OnEnd exactly once when it completes. Progress is computed from elapsed
// wall-clock time, never from frame counts, so animations last the same time
// at 30 or 144 frames per second.
//
// # Quick start
//
// The package-level functions use a lazily started Default manager driven by
// a 60 Hz timer:
//
//	id := tempo.Add(tempo.Tween{
//		Delay:    100 * time.Millisecond,
//		Duration: 300 * time.Millisecond,
//		Easing:   tempo.OutQuad,
//		OnUpdate: tempo.BindFloat(&sprite.Alpha, 1),
//		OnEnd: func(reason tempo.EndReason, id tempo.ID) {
//			log.Printf("%v ended (%v)", id, reason)
//		},
//	})
//	// ...
//	tempo.Finish(id) // jump to the end now
//
// For full control, construct a [Manager] with an explicit [Clock] and
// [FrameRequester], then call [Manager.Start], or call [Manager.Step] yourself
// once per frame from an existing game loop.
//
// # Lifecycle
//
// A registered tween is dormant until now >= start (registration time plus
// Delay), active until now >= end (start plus Duration), then ends
// naturally with a final OnUpdate(1). [Manager.Finish] ends it early with the
// same final OnUpdate(1) and [EndForced]. OnStart always precedes OnEnd, even
// when both become due in the same pass.
//
// # Easing
//
// [Linear], [InQuad], [OutQuad] and [InOutQuad] are built in. Any
// [gween/ease] curve can be adapted with [FromGween], and [EasingByName]
// resolves kebab-case names for configuration files.
//
// # Integrations
//
// Sub-package ebitenpump drives a Manager from an [Ebitengine] game loop, and
// sub-package ecs publishes tween completions as [Donburi] events.
//
// [gween/ease]: https://github.com/tanema/gween
// [Ebitengine]: https://ebitengine.org
// [Donburi]: https://github.com/yohamta/donburi
package tempo
