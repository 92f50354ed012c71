package event

import "sync"

// filterSet is an allow-list of event type tags. When non-empty, only
// listed types are dispatched; an empty set passes everything. Used to
// narrow delivery to a handful of types while debugging.
type filterSet struct {
	mu      sync.RWMutex
	allowed []string
}

// add appends an event type to the allow-list.
func (f *filterSet) add(eventType string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, t := range f.allowed {
		if t == eventType {
			return
		}
	}
	f.allowed = append(f.allowed, eventType)
}

// remove deletes an event type from the allow-list.
func (f *filterSet) remove(eventType string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	for i, t := range f.allowed {
		if t == eventType {
			f.allowed = append(f.allowed[:i], f.allowed[i+1:]...)
			return true
		}
	}
	return false
}

// clear removes all filters.
func (f *filterSet) clear() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.allowed = nil
}

// passes reports whether the event type should be dispatched.
func (f *filterSet) passes(eventType string) bool {
	f.mu.RLock()
	defer f.mu.RUnlock()

	if len(f.allowed) == 0 {
		return true
	}
	for _, t := range f.allowed {
		if t == eventType {
			return true
		}
	}
	return false
}
