package event

import (
	"testing"
	"time"
)

func TestBaseAssignsIdentityOnce(t *testing.T) {
	before := time.Now()
	b := NewBase()
	after := time.Now()

	if b.ID() == "" {
		t.Error("expected a non-empty id")
	}
	if b.Timestamp().Before(before) || b.Timestamp().After(after) {
		t.Errorf("timestamp %v outside construction window", b.Timestamp())
	}
	if NewBase().ID() == b.ID() {
		t.Error("ids should be unique per event")
	}
}

func TestBaseDefaults(t *testing.T) {
	b := NewBase()

	if got := b.Priority(); got != PriorityNormal {
		t.Errorf("default priority = %d, want %d", got, PriorityNormal)
	}
	if !b.Cancellable() {
		t.Error("events should be cancellable by default")
	}
}

func TestConcreteOverridesWin(t *testing.T) {
	var ev Event = newTestEvent("E", PriorityCritical)

	if got := ev.Priority(); got != PriorityCritical {
		t.Errorf("priority through interface = %d, want %d", got, PriorityCritical)
	}
}
