package events

import (
	"testing"

	"github.com/lmorandi/reverie/internal/event"
)

func TestAttributeChangedHelpers(t *testing.T) {
	ev := NewAttributeChanged("observation", 1, 3, "examination")

	if ev.Type() != TypeAttributeChanged {
		t.Errorf("Type = %q", ev.Type())
	}
	if got := ev.Delta(); got != 2 {
		t.Errorf("Delta = %d, want 2", got)
	}
	if !ev.Improved() {
		t.Error("Improved should be true for a raise")
	}

	drop := NewAttributeChanged("empathy", 3, 1, "story_progress")
	if drop.Improved() {
		t.Error("Improved should be false for a drop")
	}
	if got := drop.Delta(); got != -2 {
		t.Errorf("Delta = %d, want -2", got)
	}
}

func TestPriorityOverrides(t *testing.T) {
	cases := []struct {
		ev   event.Event
		want int
	}{
		{NewItemAcquired("amulet", "Amulet", "memento", "discovery"), event.PriorityElevated},
		{NewItemLost("amulet", "Amulet", "used"), event.PriorityNormal},
		{NewLocationChanged("study", "hallway", "door"), 2},
		{NewDialogueStarted("elena", "Elena", "elena_intro"), event.PriorityHigh},
		{NewInsightGained("i1", "The clock is stopped", "mystery", "examination"), event.PriorityElevated},
		{NewPuzzleSolved("p1", "Clock puzzle", "wind the clock", 2), 4},
		{NewStateChanged("Exploring", "Dialogue", "event"), event.PriorityHigh},
		{NewError("E1", "lost connection", "transport"), event.PriorityCritical},
		{NewGameSaved("slot1", "2026-08-30T10:00:00", true), event.PriorityNormal},
	}

	for _, tc := range cases {
		if got := tc.ev.Priority(); got != tc.want {
			t.Errorf("%s priority = %d, want %d", tc.ev.Type(), got, tc.want)
		}
	}
}

func TestCancellableOverrides(t *testing.T) {
	if NewStateChanged("A", "B", "").Cancellable() {
		t.Error("StateChanged must not be cancellable")
	}
	if NewError("E1", "boom", "").Cancellable() {
		t.Error("Error must not be cancellable")
	}
	if !NewItemAcquired("id", "name", "clue", "").Cancellable() {
		t.Error("ItemAcquired should be cancellable")
	}
}

// Subscribers recover payloads by asserting on the concrete type.
func TestPayloadTypeAssertion(t *testing.T) {
	var ev event.Event = NewItemAcquired("amulet", "Amulet", "memento", "discovery")

	item, ok := ev.(*ItemAcquired)
	if !ok {
		t.Fatalf("expected *ItemAcquired, got %T", ev)
	}
	if item.ItemID != "amulet" || item.ItemType != "memento" {
		t.Errorf("unexpected payload: %+v", item)
	}

	if _, ok := ev.(*ItemLost); ok {
		t.Error("assertion to the wrong concrete type should fail")
	}
}

func TestDispatchThroughDispatcher(t *testing.T) {
	d := event.New()
	var seen []string

	d.Subscribe(TypeLocationChanged, func(ev event.Event) error {
		loc := ev.(*LocationChanged)
		seen = append(seen, loc.FromLocation+"->"+loc.ToLocation)
		return nil
	})

	d.PublishImmediate(NewLocationChanged("study", "hallway", "walk"))

	if len(seen) != 1 || seen[0] != "study->hallway" {
		t.Errorf("seen = %v", seen)
	}
}
