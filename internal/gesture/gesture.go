package gesture

import (
	"math"
	"time"

	"github.com/chanderbhanswami/lantern/internal/engine"
)

// Decision is the discrete outcome of a completed drag.
type Decision int

const (
	None Decision = iota
	Previous
	Next
)

func (d Decision) String() string {
	switch d {
	case Previous:
		return "previous"
	case Next:
		return "next"
	default:
		return "none"
	}
}

// Thresholds separate an intentional swipe from incidental pointer noise.
// They live in configuration and are shared by every surface that reads
// drags; scattering per-call-site literals is how two parts of a UI end up
// disagreeing about what counts as a swipe.
type Thresholds struct {
	// Distance is the horizontal offset in cells past which a drag
	// navigates regardless of speed.
	Distance float64
	// Velocity is the speed in cells per second past which a short flick
	// navigates even when the offset stays under Distance.
	Velocity float64
}

// Default cutoffs. Four cells is roughly the dead zone a pointer crosses
// only on purpose at common terminal sizes.
const (
	DefaultDistance = 4.0
	DefaultVelocity = 25.0
)

func (t Thresholds) withDefaults() Thresholds {
	if t.Distance <= 0 {
		t.Distance = DefaultDistance
	}
	if t.Velocity <= 0 {
		t.Velocity = DefaultVelocity
	}
	return t
}

// Interpreter owns the drag lifecycle. Begin suspends autoplay through the
// suspension set, Move reports the running offset for the drag affordance,
// End lifts the suspension and returns the navigation decision. The
// suspension set composes with other sources, so ending a drag under a
// still-hovering pointer leaves autoplay suspended.
type Interpreter struct {
	thresholds Thresholds
	susp       *engine.Suspensions

	active  bool
	originX int
	lastX   int
	started time.Time
}

// NewInterpreter builds an interpreter. Zero threshold fields fall back to
// the defaults. susp may be nil when no autoplay exists to suspend.
func NewInterpreter(thresholds Thresholds, susp *engine.Suspensions) *Interpreter {
	return &Interpreter{
		thresholds: thresholds.withDefaults(),
		susp:       susp,
	}
}

// Thresholds returns the active cutoffs.
func (it *Interpreter) Thresholds() Thresholds { return it.thresholds }

// Active reports whether a drag is in progress.
func (it *Interpreter) Active() bool { return it.active }

// Begin starts a drag at column x. A Begin while a drag is already active
// restarts it; terminals drop release events on focus churn and a stale
// origin would poison the next decision.
func (it *Interpreter) Begin(x int, at time.Time) {
	it.active = true
	it.originX = x
	it.lastX = x
	it.started = at
	if it.susp != nil {
		it.susp.Add(engine.ReasonDrag)
	}
}

// Move records pointer motion and returns the running offset in cells,
// negative when the content is being pulled toward the next slide. Returns
// 0 when no drag is active.
func (it *Interpreter) Move(x int, at time.Time) int {
	if !it.active {
		return 0
	}
	it.lastX = x
	return x - it.originX
}

// Offset returns the current drag offset, 0 when idle.
func (it *Interpreter) Offset() int {
	if !it.active {
		return 0
	}
	return it.lastX - it.originX
}

// End completes the drag and decides. A drag navigates when its offset
// beats the distance cutoff or its average speed beats the velocity cutoff,
// so a fast short flick still counts. Negative motion reads as next,
// positive as previous, anything under both cutoffs as none.
func (it *Interpreter) End(x int, at time.Time) Decision {
	if !it.active {
		return None
	}
	it.active = false
	it.lastX = x
	if it.susp != nil {
		it.susp.Remove(engine.ReasonDrag)
	}

	offset := float64(x - it.originX)
	var velocity float64
	if seconds := at.Sub(it.started).Seconds(); seconds > 0 {
		velocity = offset / seconds
	}
	if math.Abs(offset) <= it.thresholds.Distance && math.Abs(velocity) <= it.thresholds.Velocity {
		return None
	}
	if offset < 0 {
		return Next
	}
	return Previous
}
