package ecs

import (
	"testing"
	"time"

	"github.com/phanxgames/kinetic"

	"github.com/yohamta/donburi"
)

func collect(world donburi.World) *[]kinetic.Event {
	var received []kinetic.Event
	EventType.Subscribe(world, func(w donburi.World, e kinetic.Event) {
		received = append(received, e)
	})
	return &received
}

func TestDonburiStore_EmitEvent(t *testing.T) {
	world := donburi.NewWorld()
	store := NewDonburiStore(world)
	received := collect(world)

	store.EmitEvent(kinetic.Event{
		Type:   kinetic.EventDisclosureChanged,
		Source: "menu",
		From:   kinetic.DisclosureClosed,
		To:     kinetic.DisclosureOpening,
	})
	store.EmitEvent(kinetic.Event{Type: kinetic.EventItemRevealed, Source: "grid", Index: 3})

	// Events are queued until processed.
	if len(*received) != 0 {
		t.Fatalf("delivered before ProcessEvents: %d", len(*received))
	}
	EventType.ProcessEvents(world)

	if len(*received) != 2 {
		t.Fatalf("expected 2 events, got %d", len(*received))
	}
	e0 := (*received)[0]
	if e0.Source != "menu" || e0.To != kinetic.DisclosureOpening {
		t.Errorf("event 0: %+v", e0)
	}
	if e1 := (*received)[1]; e1.Type != kinetic.EventItemRevealed || e1.Index != 3 {
		t.Errorf("event 1: %+v", e1)
	}
}

func TestDonburiStore_FiltersKinds(t *testing.T) {
	world := donburi.NewWorld()
	store := NewDonburiStore(world, kinetic.EventTypewriterText)
	received := collect(world)

	store.EmitEvent(kinetic.Event{Type: kinetic.EventItemRevealed})
	store.EmitEvent(kinetic.Event{Type: kinetic.EventTypewriterText, Text: "c"})
	EventType.ProcessEvents(world)

	if len(*received) != 1 || (*received)[0].Text != "c" {
		t.Errorf("received = %+v", *received)
	}
}

func TestDonburiStore_EngineEvents(t *testing.T) {
	world := donburi.NewWorld()
	received := collect(world)

	engine := kinetic.NewEngine(nil)
	engine.SetEventSink(NewDonburiStore(world))
	cfg := kinetic.DefaultDisclosureConfig()
	menu, err := engine.NewDisclosure("menu", cfg)
	if err != nil {
		t.Fatal(err)
	}

	menu.Open()
	engine.Update((cfg.Grow + time.Millisecond).Seconds())
	EventType.ProcessEvents(world)

	if len(*received) != 2 {
		t.Fatalf("expected 2 events, got %d: %+v", len(*received), *received)
	}
	last := (*received)[1]
	if last.From != kinetic.DisclosureOpening || last.To != kinetic.DisclosureOpen {
		t.Errorf("last event: %+v", last)
	}
	if last.Time != cfg.Grow {
		t.Errorf("last event time = %v, want %v", last.Time, cfg.Grow)
	}
}

func TestDonburiStore_MultipleSubscribers(t *testing.T) {
	world := donburi.NewWorld()
	store := NewDonburiStore(world)

	var count1, count2 int
	EventType.Subscribe(world, func(w donburi.World, e kinetic.Event) { count1++ })
	EventType.Subscribe(world, func(w donburi.World, e kinetic.Event) { count2++ })

	store.EmitEvent(kinetic.Event{Type: kinetic.EventTypewriterText})
	EventType.ProcessEvents(world)

	if count1 != 1 || count2 != 1 {
		t.Errorf("counts = %d, %d; want 1, 1", count1, count2)
	}
}
