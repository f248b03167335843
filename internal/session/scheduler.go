package session

import (
	"sync"
	"time"
)

// Scheduler coalesces bursts of text-change events. Each trigger bumps a
// generation counter and re-arms the settle timer; only the evaluation
// carrying the newest generation is allowed to commit. Cancellation is
// cooperative: a superseded evaluation sees Current() == false and
// discards its result without side effects.
type Scheduler struct {
	settle time.Duration
	run    func(text string, generation uint64)

	mu         sync.Mutex
	generation uint64
	timer      *time.Timer
}

// NewScheduler creates a scheduler with the given settle window. run is
// invoked on a timer goroutine once the window elapses without another
// trigger.
func NewScheduler(settle time.Duration, run func(text string, generation uint64)) *Scheduler {
	return &Scheduler{settle: settle, run: run}
}

// Trigger records a text-change event. Any pending evaluation is
// superseded; the new one fires after the settle window.
func (s *Scheduler) Trigger(text string) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.generation++
	generation := s.generation
	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = time.AfterFunc(s.settle, func() {
		s.run(text, generation)
	})
	return generation
}

// Cancel invalidates any pending or in-flight evaluation. The timer has a
// bounded lifetime, so this never leaves a stuck pending state.
func (s *Scheduler) Cancel() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.generation++
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}

// Current reports whether the given generation is still the newest one.
func (s *Scheduler) Current(generation uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return generation == s.generation
}
