package event

import "github.com/lmorandi/reverie/internal/logging"

// DefaultQueueCapacity bounds the pending queue when no capacity is given.
const DefaultQueueCapacity = 1000

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithQueueCapacity sets the pending queue capacity.
func WithQueueCapacity(capacity int) Option {
	return func(d *Dispatcher) {
		if capacity > 0 {
			d.pending = newQueue(capacity)
		}
	}
}

// WithLogger sets the logger used for drops, faults, and usage errors.
func WithLogger(l *logging.Logger) Option {
	return func(d *Dispatcher) {
		if l != nil {
			d.logger = l
		}
	}
}

// WithDebug enables per-dispatch debug logging.
func WithDebug(enabled bool) Option {
	return func(d *Dispatcher) {
		d.debug.Store(enabled)
	}
}

// subscribeConfig holds per-subscription settings.
type subscribeConfig struct {
	id       string
	priority int
}

// SubscribeOption configures a single subscription.
type SubscribeOption func(*subscribeConfig)

// WithSubscriberID sets an explicit subscriber id. Re-subscribing with an
// id already registered for the same event type replaces that entry in
// place. When omitted, an id is generated.
func WithSubscriberID(id string) SubscribeOption {
	return func(c *subscribeConfig) {
		c.id = id
	}
}

// WithPriority sets the subscriber priority (0-10, lower runs earlier).
// The default is PriorityNormal.
func WithPriority(priority int) SubscribeOption {
	return func(c *subscribeConfig) {
		c.priority = priority
	}
}
