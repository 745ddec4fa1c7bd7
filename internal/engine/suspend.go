package engine

import (
	"sort"
	"sync"
)

// Reason names one source of autoplay suspension.
type Reason string

const (
	ReasonHover         Reason = "hover"
	ReasonDrag          Reason = "drag"
	ReasonFocusLost     Reason = "focus"
	ReasonReducedMotion Reason = "reduced-motion"
)

// Suspensions OR-combines independent suspension sources into the engine's
// single suspended flag. Each source adds its reason when it becomes active
// and removes it when it ends; the engine stays suspended while any reason
// remains. Pushing raw booleans from each source instead would let a
// hover-leave re-arm autoplay mid-drag.
type Suspensions struct {
	engine *Engine

	mu     sync.Mutex
	active map[Reason]struct{}
}

// NewSuspensions builds an empty suspension set for e.
func NewSuspensions(e *Engine) *Suspensions {
	return &Suspensions{
		engine: e,
		active: make(map[Reason]struct{}),
	}
}

// Add marks a reason active. Adding a reason twice is the same as adding it
// once; a source re-reporting itself does not need a matching extra Remove.
func (s *Suspensions) Add(r Reason) {
	s.mu.Lock()
	s.active[r] = struct{}{}
	s.mu.Unlock()
	s.engine.SetSuspended(true)
}

// Remove clears a reason. The engine resumes only when no reason remains.
func (s *Suspensions) Remove(r Reason) {
	s.mu.Lock()
	delete(s.active, r)
	remaining := len(s.active)
	s.mu.Unlock()
	if remaining == 0 {
		s.engine.SetSuspended(false)
	}
}

// Active returns the active reasons in stable order.
func (s *Suspensions) Active() []Reason {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.active) == 0 {
		return nil
	}
	reasons := make([]Reason, 0, len(s.active))
	for r := range s.active {
		reasons = append(reasons, r)
	}
	sort.Slice(reasons, func(i, j int) bool { return reasons[i] < reasons[j] })
	return reasons
}
