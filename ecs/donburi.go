package ecs

import (
	"github.com/phanxgames/tempo"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// EndEvent is published when a tween leaves its Manager.
type EndEvent struct {
	ID     tempo.ID
	Reason tempo.EndReason
}

// EndEventType is the Donburi event type for tween completions. Subscribe to
// this in your ECS systems and drain it with ProcessEvents each frame.
var EndEventType = events.NewEventType[EndEvent]()

// PublishEnds returns tw with its OnEnd wrapped so that every completion is
// also published to world as an EndEvent. The original OnEnd, if any, runs
// first.
func PublishEnds(world donburi.World, tw tempo.Tween) tempo.Tween {
	next := tw.OnEnd
	tw.OnEnd = func(reason tempo.EndReason, id tempo.ID) {
		if next != nil {
			next(reason, id)
		}
		EndEventType.Publish(world, EndEvent{ID: id, Reason: reason})
	}
	return tw
}

// Add registers tw on m with completions published to world.
func Add(m *tempo.Manager, world donburi.World, tw tempo.Tween) tempo.ID {
	return m.Add(PublishEnds(world, tw))
}
