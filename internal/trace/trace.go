package trace

import (
	"sync"
	"time"

	"github.com/chanderbhanswami/lantern/internal/engine"
)

// Record is one journaled slide transition.
type Record struct {
	At    time.Time
	From  int
	To    int
	Cause engine.Cause
}

// Journal keeps the most recent transitions in a fixed ring. It backs the
// presenter's console overlay and costs the same whether a show runs for a
// minute or a day.
type Journal struct {
	mu    sync.Mutex
	ring  []Record
	next  int
	count int
}

// NewJournal builds a journal holding up to capacity records.
func NewJournal(capacity int) *Journal {
	if capacity < 1 {
		capacity = 1
	}
	return &Journal{ring: make([]Record, capacity)}
}

// Add appends a record, evicting the oldest when full.
func (j *Journal) Add(r Record) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.ring[j.next] = r
	j.next = (j.next + 1) % len(j.ring)
	if j.count < len(j.ring) {
		j.count++
	}
}

// Len returns how many records are held.
func (j *Journal) Len() int {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.count
}

// Recent returns up to max records, oldest first. Pass a non-positive max
// for everything held.
func (j *Journal) Recent(max int) []Record {
	j.mu.Lock()
	defer j.mu.Unlock()
	if j.count == 0 {
		return nil
	}
	n := j.count
	if max > 0 && max < n {
		n = max
	}
	out := make([]Record, n)
	start := j.next - n
	if start < 0 {
		start += len(j.ring)
	}
	for i := 0; i < n; i++ {
		out[i] = j.ring[(start+i)%len(j.ring)]
	}
	return out
}

// Follow subscribes the journal to e's slide changes and returns the
// unsubscribe func.
func (j *Journal) Follow(e *engine.Engine) func() {
	return e.Subscribe(func(u engine.Update) {
		if u.Change == nil {
			return
		}
		j.Add(Record{
			At:    time.Now(),
			From:  u.Change.From,
			To:    u.Change.To,
			Cause: u.Change.Cause,
		})
	})
}
