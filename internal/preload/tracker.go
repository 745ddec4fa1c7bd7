package preload

import (
	"sort"
	"sync"
)

// Tracker derives the warm set from the current slide index: the slide and
// its immediate neighbors. The set only grows. Media already fetched stays
// fetched, so revisiting an index never re-emits it, and the whole set is
// bounded by the slide count.
type Tracker struct {
	mu    sync.Mutex
	count int
	seen  map[int]struct{}
}

// NewTracker builds a tracker for a fixed slide count.
func NewTracker(slideCount int) *Tracker {
	if slideCount < 0 {
		slideCount = 0
	}
	return &Tracker{
		count: slideCount,
		seen:  make(map[int]struct{}),
	}
}

// Observe records that index became current and returns the indices newly
// entering the warm set, ascending. Out-of-range indices return nothing.
func (t *Tracker) Observe(index int) []int {
	t.mu.Lock()
	defer t.mu.Unlock()
	if index < 0 || index >= t.count {
		return nil
	}
	var fresh []int
	for i := index - 1; i <= index+1; i++ {
		if i < 0 || i >= t.count {
			continue
		}
		if _, ok := t.seen[i]; ok {
			continue
		}
		t.seen[i] = struct{}{}
		fresh = append(fresh, i)
	}
	return fresh
}

// Seen returns every index ever emitted, sorted.
func (t *Tracker) Seen() []int {
	t.mu.Lock()
	defer t.mu.Unlock()
	if len(t.seen) == 0 {
		return nil
	}
	out := make([]int, 0, len(t.seen))
	for i := range t.seen {
		out = append(out, i)
	}
	sort.Ints(out)
	return out
}

// Len returns how many indices have been emitted.
func (t *Tracker) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.seen)
}
