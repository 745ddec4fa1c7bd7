package engine

// Direction records the last navigation direction. Views use it to pick an
// enter/exit animation family; it has no effect on later transitions.
type Direction int

const (
	Forward Direction = iota
	Backward
)

func (d Direction) String() string {
	if d == Backward {
		return "backward"
	}
	return "forward"
}

// Cause identifies the input source behind a slide change. It is carried on
// change notifications for journaling and analytics.
type Cause int

const (
	CauseTimer Cause = iota
	CauseDrag
	CauseKeyboard
	CauseClick
	CauseAPI
)

func (c Cause) String() string {
	switch c {
	case CauseTimer:
		return "timer"
	case CauseDrag:
		return "drag"
	case CauseKeyboard:
		return "keyboard"
	case CauseClick:
		return "click"
	case CauseAPI:
		return "api"
	default:
		return "unknown"
	}
}

// State is one immutable snapshot of the presentation. The engine replaces
// it wholesale on every accepted transition; observers never see a partially
// updated value.
type State struct {
	// Index is the current slide, 0 <= Index < SlideCount while SlideCount > 0.
	Index int

	// Direction is the last navigation direction.
	Direction Direction

	// IsPlaying is the user-level autoplay intent, distinct from whether a
	// timer is currently armed.
	IsPlaying bool

	// IsSuspended is true while any suspension source (hover, drag, lost
	// focus, reduced motion) is active. Autoplay runs iff IsPlaying and not
	// IsSuspended.
	IsSuspended bool

	// IsFullscreen mirrors the view's fullscreen toggle. The engine only
	// stores the boolean it is told.
	IsFullscreen bool

	// Progress is the fraction of the current interval elapsed, in [0,1].
	// It resets to 0 on every index change regardless of cause.
	Progress float64

	// Loop selects wrap-around boundary behavior. Fixed at construction.
	Loop bool

	// SlideCount is fixed for the engine's lifetime. Zero means inert.
	SlideCount int
}

// Inert reports whether the engine has nothing to present. Every operation
// on an inert engine is a no-op.
func (s State) Inert() bool { return s.SlideCount == 0 }

// CanGoNext reports whether a next navigation would be accepted.
func (s State) CanGoNext() bool {
	if s.Inert() {
		return false
	}
	return s.Loop || s.Index < s.SlideCount-1
}

// CanGoPrevious reports whether a previous navigation would be accepted.
func (s State) CanGoPrevious() bool {
	if s.Inert() {
		return false
	}
	return s.Loop || s.Index > 0
}

// Finished reports that a non-looping show sits on its last slide with the
// interval fully elapsed. The scheduler disarms on finished snapshots.
func (s State) Finished() bool {
	return !s.Inert() && !s.CanGoNext() && s.Progress >= 1
}

// PreloadSet returns the indices whose media should be kept warm: the
// current slide and its immediate neighbors, clipped to bounds. The slice is
// freshly allocated on each call.
func (s State) PreloadSet() []int {
	if s.Inert() {
		return nil
	}
	set := make([]int, 0, 3)
	for i := s.Index - 1; i <= s.Index+1; i++ {
		if i >= 0 && i < s.SlideCount {
			set = append(set, i)
		}
	}
	return set
}

// SlideChange describes one accepted index change.
type SlideChange struct {
	From  int
	To    int
	Cause Cause
}

// Update is delivered to subscribers on every accepted transition. Change is
// non-nil only when the slide index moved.
type Update struct {
	State  State
	Change *SlideChange
}
