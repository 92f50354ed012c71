package event

import (
	"time"

	"github.com/google/uuid"
)

// Priority levels for event delivery. The range is 0-10 where 0 is
// delivered first. Subscribers use the same scale.
const (
	// PriorityCritical is for errors and other events that must be seen first.
	PriorityCritical = 0

	// PriorityHigh is for events that drive mode changes (dialogue, scene).
	PriorityHigh = 1

	// PriorityElevated is for events that should beat the default ordering.
	PriorityElevated = 3

	// PriorityNormal is the default priority for events and subscribers.
	PriorityNormal = 5

	// PriorityLow is for bookkeeping handlers that run last.
	PriorityLow = 8
)

// Event is an immutable unit of information flowing through the Dispatcher.
//
// The type tag is the dispatch key; payload access requires a type
// assertion on the concrete event type. Concrete events embed Base and
// override Priority or Cancellable where the defaults do not fit.
type Event interface {
	// Type returns the unique type tag used for dispatch and filtering.
	Type() string

	// ID returns the unique identifier of this event instance.
	ID() string

	// Timestamp returns when the event was created.
	Timestamp() time.Time

	// Priority returns the delivery priority (0-10, 0 highest).
	Priority() int

	// Cancellable reports whether higher layers may suppress the event
	// before publishing. The dispatcher itself does not enforce it.
	Cancellable() bool
}

// Base carries the fields shared by every event. Embed it by value;
// the ID and timestamp are assigned once at construction and never change.
type Base struct {
	id        string
	timestamp time.Time
}

// NewBase creates the shared portion of an event.
func NewBase() Base {
	return Base{
		id:        uuid.NewString(),
		timestamp: time.Now(),
	}
}

// ID returns the unique identifier of this event instance.
func (b Base) ID() string { return b.id }

// Timestamp returns when the event was created.
func (b Base) Timestamp() time.Time { return b.timestamp }

// Priority returns the default priority. Concrete events override as needed.
func (b Base) Priority() int { return PriorityNormal }

// Cancellable returns true by default.
func (b Base) Cancellable() bool { return true }

// Callback is invoked with each dispatched event. A returned error is
// logged with the subscriber id and event type and does not stop delivery
// to subsequent subscribers.
type Callback func(Event) error
