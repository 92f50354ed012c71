package event

import "sync"

// statistics tracks how many events of each type have been dispatched.
// A count increments once per dispatched event regardless of the delivery
// path or how many subscribers it reached.
type statistics struct {
	mu     sync.Mutex
	counts map[string]int
}

func newStatistics() *statistics {
	return &statistics{counts: make(map[string]int)}
}

// record increments the counter for an event type.
func (s *statistics) record(eventType string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.counts[eventType]++
}

// snapshot returns a copy of the per-type counters.
func (s *statistics) snapshot() map[string]int {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make(map[string]int, len(s.counts))
	for k, v := range s.counts {
		out[k] = v
	}
	return out
}

// reset clears all counters.
func (s *statistics) reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.counts = make(map[string]int)
}
