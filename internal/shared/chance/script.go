package chance

import "sync"

// Script is a Source that replays fixed draws. Once a queue runs dry,
// Float64 returns Fallback and IntN returns 0.
type Script struct {
	mu       sync.Mutex
	floats   []float64
	ints     []int
	Fallback float64
}

// NewScript returns a Script whose exhausted float queue yields 0.999, a
// value that fails every Roll below certainty.
func NewScript() *Script {
	return &Script{Fallback: 0.999}
}

// Floats queues uniform draws.
func (s *Script) Floats(v ...float64) *Script {
	s.mu.Lock()
	s.floats = append(s.floats, v...)
	s.mu.Unlock()
	return s
}

// Ints queues IntN results. Values are reduced modulo n when drawn.
func (s *Script) Ints(v ...int) *Script {
	s.mu.Lock()
	s.ints = append(s.ints, v...)
	s.mu.Unlock()
	return s
}

// Pending reports how many queued draws remain.
func (s *Script) Pending() (floats, ints int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.floats), len(s.ints)
}

func (s *Script) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.floats) == 0 {
		return s.Fallback
	}
	v := s.floats[0]
	s.floats = s.floats[1:]
	return v
}

func (s *Script) IntN(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.ints) == 0 {
		return 0
	}
	v := s.ints[0]
	s.ints = s.ints[1:]
	return v % n
}
