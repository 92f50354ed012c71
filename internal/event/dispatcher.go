package event

import (
	"fmt"
	"runtime/debug"
	"sync/atomic"

	"github.com/lmorandi/reverie/internal/logging"
)

// Dispatcher routes events from producers to subscribers. See the package
// documentation for the delivery and concurrency contract.
type Dispatcher struct {
	registry *registry
	pending  *queue
	filters  filterSet
	stats    *statistics

	// idSeq feeds generated subscriber ids. Instance-scoped so parallel
	// dispatchers never share counter state.
	idSeq atomic.Uint64

	// processing guards against re-entrant ProcessEvents calls.
	processing atomic.Bool

	debug  atomic.Bool
	logger *logging.Logger
}

// New creates a Dispatcher. Without options it has a queue capacity of
// DefaultQueueCapacity and discards log output.
func New(opts ...Option) *Dispatcher {
	d := &Dispatcher{
		registry: newRegistry(),
		pending:  newQueue(DefaultQueueCapacity),
		stats:    newStatistics(),
		logger:   logging.Null,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Subscribe registers a callback for an event type and returns the
// subscriber id. A nil callback is a logged no-op returning "". When no
// id is supplied one is generated from the event type and an incrementing
// counter. After insertion the type's list is re-sorted by priority;
// insertion order is preserved among equal priorities.
func (d *Dispatcher) Subscribe(eventType string, cb Callback, opts ...SubscribeOption) string {
	if cb == nil {
		d.logger.Error("subscribe to %q: %v", eventType, ErrNilCallback)
		return ""
	}

	cfg := subscribeConfig{priority: PriorityNormal}
	for _, opt := range opts {
		opt(&cfg)
	}

	id := cfg.id
	if id == "" {
		id = d.nextSubscriberID(eventType)
	}

	replaced := d.registry.add(eventType, &subscriber{
		id:       id,
		callback: cb,
		priority: cfg.priority,
		active:   true,
	})
	if replaced {
		d.logger.Warn("subscriber %s already registered for %s, replacing", id, eventType)
	}
	if d.debug.Load() {
		d.logger.Debug("subscribed %s -> %s (priority %d)", id, eventType, cfg.priority)
	}
	return id
}

// Unsubscribe removes one subscriber from one event type. Reports whether
// a subscriber was actually removed.
func (d *Dispatcher) Unsubscribe(eventType, id string) bool {
	removed := d.registry.remove(eventType, id)
	if removed && d.debug.Load() {
		d.logger.Debug("unsubscribed %s <- %s", id, eventType)
	}
	return removed
}

// UnsubscribeAll removes every subscription held under the given id, in
// every event type. Used when a whole subsystem shuts down.
func (d *Dispatcher) UnsubscribeAll(id string) {
	removed := d.registry.removeAll(id)
	if removed > 0 && d.debug.Load() {
		d.logger.Debug("unsubscribed %s from %d event types", id, removed)
	}
}

// SetSubscriberActive toggles delivery to every subscription registered
// under the given id without removing it. An inactive subscriber keeps
// its slot and priority.
func (d *Dispatcher) SetSubscriberActive(id string, active bool) {
	touched := d.registry.setActive(id, active)
	if touched == 0 {
		d.logger.Warn("set active: no subscriber with id %s", id)
	}
}

// PublishImmediate dispatches an event synchronously to all active
// subscribers of its type, in priority order. It blocks until every
// callback has returned.
func (d *Dispatcher) PublishImmediate(ev Event) {
	if ev == nil {
		d.logger.Error("publish immediate: %v", ErrNilEvent)
		return
	}
	if d.debug.Load() {
		d.logger.Debug("immediate %s (priority %d)", ev.Type(), ev.Priority())
	}

	// Statistics count before the filter check, so filtered events still
	// register as dispatched. Kept for parity with the stats consumers.
	d.stats.record(ev.Type())
	d.dispatch(ev)
}

// Publish appends an event to the pending queue for the next
// ProcessEvents pass. If the queue is at capacity the event is dropped
// and the drop is logged; Publish never blocks.
func (d *Dispatcher) Publish(ev Event) {
	if ev == nil {
		d.logger.Error("publish: %v", ErrNilEvent)
		return
	}
	if !d.pending.push(ev) {
		d.logger.Warn("event queue full, dropping %s", ev.Type())
		return
	}
	if d.debug.Load() {
		d.logger.Debug("queued %s (priority %d)", ev.Type(), ev.Priority())
	}
}

// PublishBatch enqueues events under a single queue lock, stopping once
// the queue is full. Events that do not fit are dropped, not retried.
func (d *Dispatcher) PublishBatch(events []Event) {
	if len(events) == 0 {
		return
	}
	accepted := d.pending.pushAll(events)
	if d.debug.Load() {
		d.logger.Debug("batch published %d/%d events", accepted, len(events))
	}
}

// ProcessEvents drains the pending queue FIFO, dispatching each event the
// same way PublishImmediate does, and returns how many were dispatched.
// maxEvents 0 (or negative) means no limit. A re-entrant call from inside
// a subscriber callback is rejected and returns 0, keeping dispatch order
// deterministic. A fault inside the loop aborts the call; events already
// dispatched stay dispatched.
func (d *Dispatcher) ProcessEvents(maxEvents int) (processed int) {
	if !d.processing.CompareAndSwap(false, true) {
		d.logger.Warn("process events: %v", ErrReentrantProcess)
		return 0
	}
	defer d.processing.Store(false)
	defer func() {
		if r := recover(); r != nil {
			d.logger.Error("event processing aborted: %v", r)
		}
	}()

	for maxEvents <= 0 || processed < maxEvents {
		ev, ok := d.pending.pop()
		if !ok {
			break
		}

		d.stats.record(ev.Type())
		if d.debug.Load() {
			d.logger.Debug("processing %s (priority %d)", ev.Type(), ev.Priority())
		}
		d.dispatch(ev)
		processed++
	}
	return processed
}

// ClearQueue discards all pending events, e.g. on a scene change.
func (d *Dispatcher) ClearQueue() {
	dropped := d.pending.clear()
	if dropped > 0 {
		d.logger.Info("cleared event queue, discarded %d events", dropped)
	}
}

// SubscriberCount returns the number of registered (not necessarily
// active) subscribers for an event type. An empty type counts across all
// event types.
func (d *Dispatcher) SubscriberCount(eventType string) int {
	if eventType == "" {
		return d.registry.total()
	}
	return d.registry.count(eventType)
}

// QueueSize returns the number of pending events.
func (d *Dispatcher) QueueSize() int {
	return d.pending.size()
}

// HasSubscribers reports whether any subscriber is registered for the
// event type.
func (d *Dispatcher) HasSubscribers(eventType string) bool {
	return d.registry.has(eventType)
}

// Statistics returns a snapshot of per-type dispatch counts.
func (d *Dispatcher) Statistics() map[string]int {
	return d.stats.snapshot()
}

// ResetStatistics clears the per-type dispatch counts.
func (d *Dispatcher) ResetStatistics() {
	d.stats.reset()
	if d.debug.Load() {
		d.logger.Debug("statistics reset")
	}
}

// AddFilter adds an event type to the dispatch allow-list. While the list
// is non-empty, events of unlisted types are silently dropped at dispatch.
func (d *Dispatcher) AddFilter(eventType string) {
	d.filters.add(eventType)
}

// RemoveFilter removes an event type from the allow-list.
func (d *Dispatcher) RemoveFilter(eventType string) {
	d.filters.remove(eventType)
}

// ClearFilters empties the allow-list, letting all event types through.
func (d *Dispatcher) ClearFilters() {
	d.filters.clear()
}

// SetDebug toggles per-dispatch debug logging.
func (d *Dispatcher) SetDebug(enabled bool) {
	d.debug.Store(enabled)
}

// SetQueueCapacity changes the pending queue bound.
func (d *Dispatcher) SetQueueCapacity(capacity int) {
	d.pending.setCapacity(capacity)
}

// dispatch delivers one event to the active subscribers of its type.
// The subscriber list is copied out under the registry lock, then the
// lock is released before any callback runs.
func (d *Dispatcher) dispatch(ev Event) {
	eventType := ev.Type()
	if !d.filters.passes(eventType) {
		return
	}

	subs := d.registry.snapshot(eventType)
	if len(subs) == 0 {
		if d.debug.Load() {
			d.logger.Debug("no subscribers for %s", eventType)
		}
		return
	}

	for i := range subs {
		if !subs[i].active {
			continue
		}
		d.invoke(&subs[i], ev)
	}
}

// invoke runs one callback with panic recovery. Errors and panics are
// logged with the subscriber id and event type and delivery continues.
func (d *Dispatcher) invoke(sub *subscriber, ev Event) {
	defer func() {
		if r := recover(); r != nil {
			d.logger.Error("subscriber %s panicked on event %s: %v\n%s",
				sub.id, ev.Type(), r, debug.Stack())
		}
	}()

	if err := sub.callback(ev); err != nil {
		d.logger.Error("%v", &CallbackError{
			SubscriberID: sub.id,
			EventType:    ev.Type(),
			Err:          err,
		})
	}
}

// nextSubscriberID generates an id for a subscription made without one.
func (d *Dispatcher) nextSubscriberID(eventType string) string {
	base := eventType
	if base == "" {
		base = "Subscriber"
	}
	return fmt.Sprintf("%s_%d", base, d.idSeq.Add(1))
}
