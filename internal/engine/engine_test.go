package engine

import (
	"testing"
	"time"
)

// recorder collects every update a subscription delivers.
type recorder struct {
	updates []Update
}

func (r *recorder) record(u Update) { r.updates = append(r.updates, u) }

func (r *recorder) changes() []SlideChange {
	var out []SlideChange
	for _, u := range r.updates {
		if u.Change != nil {
			out = append(out, *u.Change)
		}
	}
	return out
}

func newTestEngine(count int, loop bool) *Engine {
	return New(Config{
		SlideCount: count,
		Loop:       loop,
		Interval:   5 * time.Second,
		TickPeriod: 100 * time.Millisecond,
	})
}

func TestEngine_BoundsHoldAcrossSequences(t *testing.T) {
	e := newTestEngine(4, false)
	ops := []func(){
		func() { e.Next(CauseKeyboard) },
		func() { e.Next(CauseKeyboard) },
		func() { e.Previous(CauseKeyboard) },
		func() { e.GoTo(3, CauseClick) },
		func() { e.Next(CauseKeyboard) },
		func() { e.Next(CauseDrag) },
		func() { e.GoTo(17, CauseAPI) },
		func() { e.GoTo(-2, CauseAPI) },
		func() { e.Previous(CauseDrag) },
		func() { e.Previous(CauseDrag) },
		func() { e.Previous(CauseDrag) },
		func() { e.Previous(CauseDrag) },
		func() { e.Previous(CauseDrag) },
	}
	for i, op := range ops {
		op()
		st := e.State()
		if st.Index < 0 || st.Index >= st.SlideCount {
			t.Fatalf("op %d: index = %d, want within [0,%d)", i, st.Index, st.SlideCount)
		}
	}
	if got := e.State().Index; got != 0 {
		t.Fatalf("final index = %d, want 0", got)
	}
}

func TestEngine_LoopWrap(t *testing.T) {
	e := newTestEngine(3, true)
	e.GoTo(2, CauseClick)

	e.Next(CauseKeyboard)
	if got := e.State().Index; got != 0 {
		t.Fatalf("next from last with loop: index = %d, want 0", got)
	}
	if got := e.State().Direction; got != Forward {
		t.Fatalf("direction after wrap = %v, want forward", got)
	}

	e.Previous(CauseKeyboard)
	if got := e.State().Index; got != 2 {
		t.Fatalf("previous from first with loop: index = %d, want 2", got)
	}
	if got := e.State().Direction; got != Backward {
		t.Fatalf("direction after wrap back = %v, want backward", got)
	}
}

func TestEngine_NoLoopBoundariesAreNoOps(t *testing.T) {
	e := newTestEngine(3, false)
	var rec recorder
	e.Subscribe(rec.record)

	e.Previous(CauseKeyboard)
	if got := e.State().Index; got != 0 {
		t.Fatalf("previous at start: index = %d, want 0", got)
	}

	e.GoTo(2, CauseClick)
	e.Next(CauseKeyboard)
	if got := e.State().Index; got != 2 {
		t.Fatalf("next at end: index = %d, want 2", got)
	}

	// Only the accepted GoTo published anything.
	if got := len(rec.updates); got != 1 {
		t.Fatalf("updates = %d, want 1", got)
	}
}

func TestEngine_GoTo(t *testing.T) {
	tests := []struct {
		name          string
		start         int
		target        int
		wantIndex     int
		wantDirection Direction
		wantChange    bool
	}{
		{name: "forward jump", start: 0, target: 3, wantIndex: 3, wantDirection: Forward, wantChange: true},
		{name: "backward jump", start: 3, target: 1, wantIndex: 1, wantDirection: Backward, wantChange: true},
		{name: "negative ignored", start: 2, target: -1, wantIndex: 2, wantDirection: Forward, wantChange: false},
		{name: "past end ignored", start: 2, target: 5, wantIndex: 2, wantDirection: Forward, wantChange: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestEngine(5, false)
			e.GoTo(tt.start, CauseAPI)
			var rec recorder
			e.Subscribe(rec.record)

			e.GoTo(tt.target, CauseClick)
			st := e.State()
			if st.Index != tt.wantIndex {
				t.Fatalf("index = %d, want %d", st.Index, tt.wantIndex)
			}
			if tt.wantChange {
				if st.Direction != tt.wantDirection {
					t.Fatalf("direction = %v, want %v", st.Direction, tt.wantDirection)
				}
				changes := rec.changes()
				if len(changes) != 1 || changes[0].To != tt.wantIndex || changes[0].Cause != CauseClick {
					t.Fatalf("changes = %+v, want one click change to %d", changes, tt.wantIndex)
				}
			} else if len(rec.updates) != 0 {
				t.Fatalf("updates = %d, want 0 for rejected goto", len(rec.updates))
			}
		})
	}
}

func TestEngine_GoToCurrentIndexResetsProgressQuietly(t *testing.T) {
	e := New(Config{SlideCount: 3, Autoplay: true, Interval: time.Second, TickPeriod: 100 * time.Millisecond})
	for i := 0; i < 4; i++ {
		e.Tick()
	}
	if got := e.State().Progress; got != 0.4 {
		t.Fatalf("progress = %v, want 0.4", got)
	}

	var rec recorder
	e.Subscribe(rec.record)
	e.GoTo(0, CauseClick)

	st := e.State()
	if st.Index != 0 || st.Progress != 0 {
		t.Fatalf("state = index %d progress %v, want index 0 progress 0", st.Index, st.Progress)
	}
	if len(rec.updates) != 1 || rec.updates[0].Change != nil {
		t.Fatalf("updates = %+v, want one update with nil change", rec.updates)
	}

	// Repeating it with progress already zero changes nothing, so nothing
	// is published.
	e.GoTo(0, CauseClick)
	if len(rec.updates) != 1 {
		t.Fatalf("updates = %d, want 1 after idempotent goto", len(rec.updates))
	}
}

func TestEngine_ToggleAutoplay(t *testing.T) {
	e := newTestEngine(3, false)
	if e.State().IsPlaying {
		t.Fatal("IsPlaying = true before toggle, want false")
	}
	e.ToggleAutoplay()
	if !e.State().IsPlaying {
		t.Fatal("IsPlaying = false after toggle, want true")
	}
	if got := e.State().Index; got != 0 {
		t.Fatalf("toggle moved index to %d, want 0", got)
	}
	e.ToggleAutoplay()
	if e.State().IsPlaying {
		t.Fatal("IsPlaying = true after second toggle, want false")
	}
}

func TestEngine_InertWhenEmpty(t *testing.T) {
	e := New(Config{SlideCount: 0, Autoplay: true})
	var rec recorder
	e.Subscribe(rec.record)

	e.Next(CauseKeyboard)
	e.Previous(CauseKeyboard)
	e.GoTo(0, CauseClick)
	e.ToggleAutoplay()
	e.SetSuspended(true)
	e.SetFullscreen(true)
	e.Tick()

	st := e.State()
	if !st.Inert() {
		t.Fatal("Inert() = false, want true")
	}
	if st.Index != 0 || st.IsSuspended || st.IsFullscreen {
		t.Fatalf("inert state mutated: %+v", st)
	}
	if st.CanGoNext() || st.CanGoPrevious() {
		t.Fatal("inert engine reports navigable state")
	}
	if len(rec.updates) != 0 {
		t.Fatalf("updates = %d, want 0 from inert engine", len(rec.updates))
	}
}

func TestEngine_FiftyTicksAdvanceExactlyOnce(t *testing.T) {
	e := New(Config{
		SlideCount: 5,
		Autoplay:   true,
		Loop:       true,
		Interval:   5 * time.Second,
		TickPeriod: 100 * time.Millisecond,
	})
	var rec recorder
	e.Subscribe(rec.record)

	for i := 0; i < 50; i++ {
		e.Tick()
	}

	if got := e.State().Index; got != 1 {
		t.Fatalf("index after 50 ticks = %d, want 1", got)
	}
	changes := rec.changes()
	if len(changes) != 1 {
		t.Fatalf("changes = %d, want exactly 1", len(changes))
	}
	if changes[0].From != 0 || changes[0].To != 1 || changes[0].Cause != CauseTimer {
		t.Fatalf("change = %+v, want 0->1 by timer", changes[0])
	}

	// Progress climbs strictly until the advancing tick resets it.
	prev := 0.0
	for _, u := range rec.updates[:len(rec.updates)-1] {
		if u.State.Progress <= prev {
			t.Fatalf("progress not strictly increasing: %v after %v", u.State.Progress, prev)
		}
		prev = u.State.Progress
	}
	last := rec.updates[len(rec.updates)-1]
	if last.State.Progress != 0 || last.State.Index != 1 {
		t.Fatalf("advancing update = %+v, want index 1 progress 0", last.State)
	}
}

func TestEngine_SuspensionFreezesProgress(t *testing.T) {
	e := New(Config{
		SlideCount: 5,
		Autoplay:   true,
		Loop:       true,
		Interval:   5 * time.Second,
		TickPeriod: 100 * time.Millisecond,
	})

	for i := 0; i < 20; i++ {
		e.Tick()
	}
	frozen := e.State().Progress
	if frozen != 0.4 {
		t.Fatalf("progress before suspension = %v, want 0.4", frozen)
	}

	e.SetSuspended(true)
	for i := 0; i < 25; i++ {
		e.Tick()
	}
	if got := e.State().Progress; got != frozen {
		t.Fatalf("suspended progress = %v, want frozen at %v", got, frozen)
	}
	if got := e.State().Index; got != 0 {
		t.Fatalf("suspended index = %d, want 0", got)
	}

	e.SetSuspended(false)
	for i := 0; i < 30; i++ {
		e.Tick()
	}
	if got := e.State().Index; got != 1 {
		t.Fatalf("index after resume = %d, want 1", got)
	}
}

func TestEngine_IndexChangeResetsProgressInSameSnapshot(t *testing.T) {
	e := New(Config{SlideCount: 4, Autoplay: true, Interval: time.Second, TickPeriod: 100 * time.Millisecond})
	var rec recorder
	e.Subscribe(rec.record)

	for i := 0; i < 6; i++ {
		e.Tick()
	}
	e.Next(CauseDrag)

	// Every observed snapshot that carries a change must already carry the
	// reset progress; a full-or-stale bar with a new index is a torn read.
	for _, u := range rec.updates {
		if u.Change != nil && u.State.Progress != 0 {
			t.Fatalf("change snapshot has progress %v, want 0", u.State.Progress)
		}
		if u.Change == nil && u.State.Index != 0 {
			t.Fatalf("index moved without a change notification: %+v", u)
		}
	}
}

func TestEngine_NonLoopEndClampsAndFinishes(t *testing.T) {
	e := New(Config{
		SlideCount: 2,
		Autoplay:   true,
		Interval:   500 * time.Millisecond,
		TickPeriod: 100 * time.Millisecond,
	})

	// First interval advances 0 -> 1.
	for i := 0; i < 5; i++ {
		e.Tick()
	}
	if got := e.State().Index; got != 1 {
		t.Fatalf("index = %d, want 1", got)
	}

	// Second interval cannot advance; progress fills and clamps.
	for i := 0; i < 5; i++ {
		e.Tick()
	}
	st := e.State()
	if st.Index != 1 || st.Progress != 1 {
		t.Fatalf("state = index %d progress %v, want index 1 progress 1", st.Index, st.Progress)
	}
	if !st.Finished() {
		t.Fatal("Finished() = false, want true at clamped end")
	}

	// Further ticks publish nothing.
	var rec recorder
	e.Subscribe(rec.record)
	for i := 0; i < 3; i++ {
		e.Tick()
	}
	if len(rec.updates) != 0 {
		t.Fatalf("updates after clamp = %d, want 0", len(rec.updates))
	}

	// Navigating back re-opens the show.
	e.Previous(CauseKeyboard)
	if e.State().Finished() {
		t.Fatal("Finished() = true after navigating back, want false")
	}
}

func TestEngine_SubscribeAndUnsubscribe(t *testing.T) {
	e := newTestEngine(3, true)
	var rec recorder
	unsub := e.Subscribe(rec.record)

	e.Next(CauseKeyboard)
	unsub()
	e.Next(CauseKeyboard)

	if got := len(rec.updates); got != 1 {
		t.Fatalf("updates = %d, want 1 after unsubscribe", got)
	}
}

func TestEngine_CloseDropsTransitions(t *testing.T) {
	e := newTestEngine(3, true)
	var rec recorder
	e.Subscribe(rec.record)

	e.Close()
	e.Next(CauseKeyboard)
	e.Tick()
	e.ToggleAutoplay()

	if got := e.State().Index; got != 0 {
		t.Fatalf("index after close = %d, want 0", got)
	}
	if len(rec.updates) != 0 {
		t.Fatalf("updates after close = %d, want 0", len(rec.updates))
	}
}

func TestState_PreloadSet(t *testing.T) {
	tests := []struct {
		name  string
		index int
		count int
		want  []int
	}{
		{name: "middle", index: 2, count: 5, want: []int{1, 2, 3}},
		{name: "first", index: 0, count: 5, want: []int{0, 1}},
		{name: "last", index: 4, count: 5, want: []int{3, 4}},
		{name: "single", index: 0, count: 1, want: []int{0}},
		{name: "empty", index: 0, count: 0, want: nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := State{Index: tt.index, SlideCount: tt.count}
			got := st.PreloadSet()
			if len(got) != len(tt.want) {
				t.Fatalf("PreloadSet() = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Fatalf("PreloadSet() = %v, want %v", got, tt.want)
				}
			}
		})
	}
}

func TestState_NavigationQueries(t *testing.T) {
	tests := []struct {
		name     string
		st       State
		wantNext bool
		wantPrev bool
	}{
		{name: "middle no loop", st: State{Index: 1, SlideCount: 3}, wantNext: true, wantPrev: true},
		{name: "start no loop", st: State{Index: 0, SlideCount: 3}, wantNext: true, wantPrev: false},
		{name: "end no loop", st: State{Index: 2, SlideCount: 3}, wantNext: false, wantPrev: true},
		{name: "start loop", st: State{Index: 0, SlideCount: 3, Loop: true}, wantNext: true, wantPrev: true},
		{name: "end loop", st: State{Index: 2, SlideCount: 3, Loop: true}, wantNext: true, wantPrev: true},
		{name: "inert", st: State{SlideCount: 0, Loop: true}, wantNext: false, wantPrev: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.st.CanGoNext(); got != tt.wantNext {
				t.Fatalf("CanGoNext() = %v, want %v", got, tt.wantNext)
			}
			if got := tt.st.CanGoPrevious(); got != tt.wantPrev {
				t.Fatalf("CanGoPrevious() = %v, want %v", got, tt.wantPrev)
			}
		})
	}
}

func TestCause_String(t *testing.T) {
	tests := []struct {
		cause Cause
		want  string
	}{
		{CauseTimer, "timer"},
		{CauseDrag, "drag"},
		{CauseKeyboard, "keyboard"},
		{CauseClick, "click"},
		{CauseAPI, "api"},
		{Cause(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.cause.String(); got != tt.want {
			t.Fatalf("Cause(%d).String() = %q, want %q", int(tt.cause), got, tt.want)
		}
	}
}
