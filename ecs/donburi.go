package ecs

import (
	"github.com/phanxgames/kinetic"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// EventType is the Donburi event type for kinetic engine events.
var EventType = events.NewEventType[kinetic.Event]()

type donburiStore struct {
	world donburi.World
	kinds map[kinetic.EventType]bool
}

// NewDonburiStore creates an EventSink backed by a Donburi world. Events are
// queued on EventType and delivered by ProcessEvents. When kinds is
// non-empty only those event types are forwarded.
func NewDonburiStore(world donburi.World, kinds ...kinetic.EventType) kinetic.EventSink {
	s := &donburiStore{world: world}
	if len(kinds) > 0 {
		s.kinds = make(map[kinetic.EventType]bool, len(kinds))
		for _, k := range kinds {
			s.kinds[k] = true
		}
	}
	return s
}

func (s *donburiStore) EmitEvent(event kinetic.Event) {
	if s.kinds != nil && !s.kinds[event.Type] {
		return
	}
	EventType.Publish(s.world, event)
}
