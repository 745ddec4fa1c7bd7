package engine

import (
	"sync"
	"time"
)

// Default pacing. The interval is how long one slide stays visible; the tick
// period is how often progress is repainted while autoplay runs.
const (
	DefaultInterval   = 5 * time.Second
	DefaultTickPeriod = 100 * time.Millisecond
)

// Config fixes an engine's shape at construction time.
type Config struct {
	SlideCount int
	Autoplay   bool
	Loop       bool
	Interval   time.Duration
	TickPeriod time.Duration
}

func (c Config) withDefaults() Config {
	if c.SlideCount < 0 {
		c.SlideCount = 0
	}
	if c.Interval <= 0 {
		c.Interval = DefaultInterval
	}
	if c.TickPeriod <= 0 || c.TickPeriod > c.Interval {
		c.TickPeriod = DefaultTickPeriod
	}
	return c
}

type subscriber struct {
	id int
	fn func(Update)
}

// Engine owns the presentation state. Every input source (timer, drag, key,
// click, remote call) funnels through its transition methods; each accepted
// transition produces exactly one new snapshot and notifies subscribers
// synchronously under the engine lock.
//
// Subscriber callbacks run with the lock held and must not call back into
// the engine (including unsubscribing). Forward work through a channel when
// a reaction needs engine calls.
type Engine struct {
	cfg      Config
	ticksPer int

	mu      sync.Mutex
	state   State
	elapsed int
	closed  bool
	subs    []subscriber
	nextID  int
}

// New builds an engine over a fixed slide count. A zero count yields an
// inert engine, which callers may still subscribe to and query.
func New(cfg Config) *Engine {
	cfg = cfg.withDefaults()
	ticks := int(cfg.Interval / cfg.TickPeriod)
	if ticks < 1 {
		ticks = 1
	}
	e := &Engine{cfg: cfg, ticksPer: ticks}
	e.state = State{
		IsPlaying:  cfg.Autoplay,
		Loop:       cfg.Loop,
		SlideCount: cfg.SlideCount,
	}
	return e
}

// Interval returns the configured slide interval.
func (e *Engine) Interval() time.Duration { return e.cfg.Interval }

// TickPeriod returns the configured progress tick period.
func (e *Engine) TickPeriod() time.Duration { return e.cfg.TickPeriod }

// State returns the current snapshot.
func (e *Engine) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

// Subscribe registers fn for every accepted transition and returns its
// unsubscribe func. Notifications arrive in subscription order.
func (e *Engine) Subscribe(fn func(Update)) func() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return func() {}
	}
	id := e.nextID
	e.nextID++
	e.subs = append(e.subs, subscriber{id: id, fn: fn})
	return func() {
		e.mu.Lock()
		defer e.mu.Unlock()
		for i, sub := range e.subs {
			if sub.id == id {
				e.subs = append(e.subs[:i], e.subs[i+1:]...)
				return
			}
		}
	}
}

// Close makes the engine inert and drops all subscribers. Transition calls
// that race a close become no-ops, so a late timer fire cannot publish after
// teardown.
func (e *Engine) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.closed = true
	e.subs = nil
}

// Next advances one slide, wrapping when looping. No-op at the end of a
// non-looping show.
func (e *Engine) Next(cause Cause) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.advance(cause)
}

// Previous goes back one slide, wrapping when looping. No-op at the start of
// a non-looping show.
func (e *Engine) Previous(cause Cause) {
	e.mu.Lock()
	defer e.mu.Unlock()
	st := e.state
	if e.closed || !st.CanGoPrevious() {
		return
	}
	next := st
	if st.Index == 0 {
		next.Index = st.SlideCount - 1
	} else {
		next.Index = st.Index - 1
	}
	next.Direction = Backward
	next.Progress = 0
	e.elapsed = 0
	e.publish(next, &SlideChange{From: st.Index, To: next.Index, Cause: cause})
}

// GoTo jumps to index. Out-of-range targets are ignored; input may originate
// from stale external state, so this fails silently rather than erroring.
// Jumping to the current index resets progress without emitting a change.
func (e *Engine) GoTo(index int, cause Cause) {
	e.mu.Lock()
	defer e.mu.Unlock()
	st := e.state
	if e.closed || st.Inert() || index < 0 || index >= st.SlideCount {
		return
	}
	next := st
	next.Index = index
	switch {
	case index > st.Index:
		next.Direction = Forward
	case index < st.Index:
		next.Direction = Backward
	}
	next.Progress = 0
	if next == st {
		return
	}
	e.elapsed = 0
	var change *SlideChange
	if next.Index != st.Index {
		change = &SlideChange{From: st.Index, To: next.Index, Cause: cause}
	}
	e.publish(next, change)
}

// ToggleAutoplay flips the playing intent. It never touches the index.
func (e *Engine) ToggleAutoplay() {
	e.mu.Lock()
	defer e.mu.Unlock()
	st := e.state
	if e.closed || st.Inert() {
		return
	}
	next := st
	next.IsPlaying = !st.IsPlaying
	e.publish(next, nil)
}

// SetSuspended sets the single suspended flag. Callers with several
// suspension sources must OR them first; Suspensions does that bookkeeping.
func (e *Engine) SetSuspended(flag bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	st := e.state
	if e.closed || st.Inert() || st.IsSuspended == flag {
		return
	}
	next := st
	next.IsSuspended = flag
	e.publish(next, nil)
}

// SetFullscreen records the view's fullscreen state.
func (e *Engine) SetFullscreen(flag bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	st := e.state
	if e.closed || st.Inert() || st.IsFullscreen == flag {
		return
	}
	next := st
	next.IsFullscreen = flag
	e.publish(next, nil)
}

// Tick advances progress by one period. Only the scheduler calls this. When
// the interval completes the engine advances in the same snapshot, so
// observers never see a full bar and a stale index together. At the end of a
// non-looping show progress clamps at 1; stopping the timer is the
// scheduler's job, not Tick's.
func (e *Engine) Tick() {
	e.mu.Lock()
	defer e.mu.Unlock()
	st := e.state
	if e.closed || st.Inert() || !st.IsPlaying || st.IsSuspended {
		return
	}
	if e.elapsed < e.ticksPer {
		e.elapsed++
	}
	if e.elapsed < e.ticksPer {
		next := st
		next.Progress = float64(e.elapsed) / float64(e.ticksPer)
		e.publish(next, nil)
		return
	}
	if !st.CanGoNext() {
		next := st
		next.Progress = 1
		if next == st {
			return
		}
		e.publish(next, nil)
		return
	}
	e.advance(CauseTimer)
}

// advance implements Next under an already-held lock.
func (e *Engine) advance(cause Cause) {
	st := e.state
	if e.closed || !st.CanGoNext() {
		return
	}
	next := st
	if st.Index == st.SlideCount-1 {
		next.Index = 0
	} else {
		next.Index = st.Index + 1
	}
	next.Direction = Forward
	next.Progress = 0
	e.elapsed = 0
	e.publish(next, &SlideChange{From: st.Index, To: next.Index, Cause: cause})
}

func (e *Engine) publish(next State, change *SlideChange) {
	e.state = next
	update := Update{State: next, Change: change}
	for _, sub := range e.subs {
		sub.fn(update)
	}
}
