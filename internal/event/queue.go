package event

import "sync"

// queue is a bounded FIFO of pending events. Pushes never block: once the
// queue reaches capacity new events are refused and the caller decides
// whether to log the drop. It is safe for concurrent use.
type queue struct {
	mu       sync.Mutex
	events   []Event
	capacity int
}

func newQueue(capacity int) *queue {
	if capacity <= 0 {
		capacity = DefaultQueueCapacity
	}
	return &queue{capacity: capacity}
}

// push appends an event to the tail. Returns false if the queue is full.
func (q *queue) push(ev Event) bool {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.events) >= q.capacity {
		return false
	}
	q.events = append(q.events, ev)
	return true
}

// pushAll appends events until the queue is full, under a single lock
// acquisition. Returns the number accepted; the rest are dropped.
func (q *queue) pushAll(events []Event) int {
	q.mu.Lock()
	defer q.mu.Unlock()

	accepted := 0
	for _, ev := range events {
		if ev == nil {
			continue
		}
		if len(q.events) >= q.capacity {
			break
		}
		q.events = append(q.events, ev)
		accepted++
	}
	return accepted
}

// pop removes and returns the head of the queue.
func (q *queue) pop() (Event, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.events) == 0 {
		return nil, false
	}
	ev := q.events[0]
	q.events[0] = nil
	q.events = q.events[1:]
	if len(q.events) == 0 {
		q.events = nil
	}
	return ev, true
}

// size returns the number of pending events.
func (q *queue) size() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.events)
}

// clear discards all pending events and returns how many were dropped.
func (q *queue) clear() int {
	q.mu.Lock()
	defer q.mu.Unlock()

	n := len(q.events)
	q.events = nil
	return n
}

// setCapacity changes the capacity bound. Events already queued above the
// new bound stay queued; only new pushes are refused.
func (q *queue) setCapacity(capacity int) {
	if capacity <= 0 {
		return
	}
	q.mu.Lock()
	defer q.mu.Unlock()
	q.capacity = capacity
}
