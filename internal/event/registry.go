package event

import (
	"sort"
	"sync"
)

// subscriber is one registered callback for a single event type.
// An id is unique within one type's list but may be shared across types.
type subscriber struct {
	id       string
	callback Callback
	priority int
	active   bool
}

// registry maps event types to their subscriber lists. It is safe for
// concurrent use. Within one type's list, subscribers are kept sorted by
// ascending priority; insertion order breaks ties.
type registry struct {
	mu   sync.RWMutex
	subs map[string][]*subscriber
}

func newRegistry() *registry {
	return &registry{
		subs: make(map[string][]*subscriber),
	}
}

// add registers a subscriber for an event type. If a subscriber with the
// same id already exists for that type it is replaced in place, keeping
// its slot so the stable re-sort preserves its position among equal
// priorities. Returns true if an existing subscriber was replaced.
func (r *registry) add(eventType string, sub *subscriber) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	list := r.subs[eventType]
	replaced := false
	for i, s := range list {
		if s.id == sub.id {
			list[i] = sub
			replaced = true
			break
		}
	}
	if !replaced {
		list = append(list, sub)
	}

	sort.SliceStable(list, func(i, j int) bool {
		return list[i].priority < list[j].priority
	})

	r.subs[eventType] = list
	return replaced
}

// remove deletes the subscriber with the given id from one type's list.
// The type entry itself is pruned once its list is empty.
func (r *registry) remove(eventType, id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	list, ok := r.subs[eventType]
	if !ok {
		return false
	}

	removed := false
	for i, s := range list {
		if s.id == id {
			list = append(list[:i], list[i+1:]...)
			removed = true
			break
		}
	}
	if !removed {
		return false
	}

	if len(list) == 0 {
		delete(r.subs, eventType)
	} else {
		r.subs[eventType] = list
	}
	return true
}

// removeAll deletes every subscriber with the given id across all event
// types and prunes emptied type entries. Returns the number removed.
func (r *registry) removeAll(id string) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	removed := 0
	for eventType, list := range r.subs {
		kept := list[:0]
		for _, s := range list {
			if s.id == id {
				removed++
				continue
			}
			kept = append(kept, s)
		}
		if len(kept) == 0 {
			delete(r.subs, eventType)
		} else {
			r.subs[eventType] = kept
		}
	}
	return removed
}

// setActive toggles delivery for every subscriber with the given id, in
// every type list that contains it. Returns the number of entries touched.
func (r *registry) setActive(id string, active bool) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	touched := 0
	for _, list := range r.subs {
		for _, s := range list {
			if s.id == id {
				s.active = active
				touched++
			}
		}
	}
	return touched
}

// snapshot returns a value copy of one type's subscriber list so callbacks
// can be invoked without holding the registry lock.
func (r *registry) snapshot(eventType string) []subscriber {
	r.mu.RLock()
	defer r.mu.RUnlock()

	list := r.subs[eventType]
	if len(list) == 0 {
		return nil
	}

	out := make([]subscriber, len(list))
	for i, s := range list {
		out[i] = *s
	}
	return out
}

// count returns the number of subscribers for one event type.
func (r *registry) count(eventType string) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.subs[eventType])
}

// total returns the number of subscribers across all event types.
func (r *registry) total() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	n := 0
	for _, list := range r.subs {
		n += len(list)
	}
	return n
}

// has reports whether any subscriber is registered for the event type.
func (r *registry) has(eventType string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.subs[eventType]) > 0
}
