package event

import "testing"

func TestQueuePushPopFIFO(t *testing.T) {
	q := newQueue(10)

	first := newTestEvent("first", PriorityNormal)
	second := newTestEvent("second", PriorityNormal)
	q.push(first)
	q.push(second)

	ev, ok := q.pop()
	if !ok || ev.Type() != "first" {
		t.Errorf("first pop = %v, want first", ev)
	}
	ev, ok = q.pop()
	if !ok || ev.Type() != "second" {
		t.Errorf("second pop = %v, want second", ev)
	}
	if _, ok := q.pop(); ok {
		t.Error("pop on empty queue should report false")
	}
}

func TestQueueRefusesWhenFull(t *testing.T) {
	q := newQueue(2)

	if !q.push(newTestEvent("a", PriorityNormal)) {
		t.Fatal("push within capacity should succeed")
	}
	if !q.push(newTestEvent("b", PriorityNormal)) {
		t.Fatal("push within capacity should succeed")
	}
	if q.push(newTestEvent("c", PriorityNormal)) {
		t.Error("push beyond capacity should be refused")
	}
	if got := q.size(); got != 2 {
		t.Errorf("size = %d, want 2", got)
	}
}

func TestQueuePushAll(t *testing.T) {
	q := newQueue(2)

	accepted := q.pushAll([]Event{
		newTestEvent("a", PriorityNormal),
		nil,
		newTestEvent("b", PriorityNormal),
		newTestEvent("c", PriorityNormal),
	})

	if accepted != 2 {
		t.Errorf("pushAll accepted %d, want 2", accepted)
	}
	if got := q.size(); got != 2 {
		t.Errorf("size = %d, want 2", got)
	}
}

func TestQueueClear(t *testing.T) {
	q := newQueue(10)
	q.push(newTestEvent("a", PriorityNormal))
	q.push(newTestEvent("b", PriorityNormal))

	if dropped := q.clear(); dropped != 2 {
		t.Errorf("clear dropped %d, want 2", dropped)
	}
	if got := q.size(); got != 0 {
		t.Errorf("size after clear = %d, want 0", got)
	}
}

func TestQueueSetCapacity(t *testing.T) {
	q := newQueue(1)
	q.push(newTestEvent("a", PriorityNormal))

	if q.push(newTestEvent("b", PriorityNormal)) {
		t.Fatal("push should be refused at capacity 1")
	}

	q.setCapacity(2)
	if !q.push(newTestEvent("b", PriorityNormal)) {
		t.Error("push should succeed after raising capacity")
	}

	// Non-positive capacities are ignored.
	q.setCapacity(0)
	if got := q.size(); got != 2 {
		t.Errorf("size = %d, want 2", got)
	}
}
