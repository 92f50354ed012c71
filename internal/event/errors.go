package event

import "errors"

// Sentinel errors for the dispatcher.
var (
	// ErrNilCallback is returned when a nil callback is provided.
	ErrNilCallback = errors.New("callback cannot be nil")

	// ErrNilEvent is returned when a nil event is published.
	ErrNilEvent = errors.New("event cannot be nil")

	// ErrQueueFull is returned when the pending queue is at capacity.
	ErrQueueFull = errors.New("event queue is full")

	// ErrReentrantProcess is returned when ProcessEvents is called from
	// within a subscriber callback.
	ErrReentrantProcess = errors.New("already processing events")
)

// CallbackError wraps an error returned by a subscriber callback with
// enough context to diagnose the failing subscriber.
type CallbackError struct {
	// SubscriberID is the id of the subscriber whose callback failed.
	SubscriberID string

	// EventType is the type tag of the event being delivered.
	EventType string

	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *CallbackError) Error() string {
	return "callback error for subscriber " + e.SubscriberID + " on event " + e.EventType + ": " + e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *CallbackError) Unwrap() error {
	return e.Err
}
