package engine

import (
	"sync"

	"go.uber.org/zap"
)

// SchedulerOption configures a Scheduler.
type SchedulerOption func(*Scheduler)

// WithClock substitutes the ticker source, used by tests to count timers.
func WithClock(c Clock) SchedulerOption {
	return func(s *Scheduler) { s.clock = c }
}

// WithLogger attaches a logger for arm/disarm lifecycle events.
func WithLogger(logger *zap.Logger) SchedulerOption {
	return func(s *Scheduler) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// Scheduler drives autoplay. It observes every engine snapshot and keeps a
// ticker armed exactly while the snapshot wants one: playing, not suspended,
// not inert, not finished. At most one ticker is ever live; arming checks
// for an existing ticker and disarming is idempotent, so rapid hover in and
// out cannot leak timers.
type Scheduler struct {
	engine *Engine
	clock  Clock
	logger *zap.Logger

	mu     sync.Mutex
	ticker Ticker
	stop   chan struct{}
	unsub  func()
	closed bool
}

// NewScheduler builds a scheduler bound to e. Call Start to begin observing
// and Close to tear down.
func NewScheduler(e *Engine, opts ...SchedulerOption) *Scheduler {
	s := &Scheduler{
		engine: e,
		clock:  systemClock{},
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start subscribes to the engine and arms immediately when the current
// snapshot calls for autoplay.
func (s *Scheduler) Start() {
	unsub := s.engine.Subscribe(func(u Update) {
		s.evaluate(u.State)
	})

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		unsub()
		return
	}
	s.unsub = unsub
	s.mu.Unlock()

	s.evaluate(s.engine.State())
}

// Close disarms and unsubscribes. Safe to call more than once. After Close
// the scheduler never arms again.
func (s *Scheduler) Close() {
	s.mu.Lock()
	unsub := s.unsub
	s.unsub = nil
	s.mu.Unlock()
	// Unsubscribe outside the scheduler lock: the engine invokes the
	// subscription under its own lock and that callback takes s.mu.
	if unsub != nil {
		unsub()
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	s.disarm()
}

func (s *Scheduler) evaluate(st State) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	if shouldRun(st) {
		s.arm()
	} else {
		s.disarm()
	}
}

func shouldRun(st State) bool {
	return st.IsPlaying && !st.IsSuspended && !st.Inert() && !st.Finished()
}

// arm is a no-op when a ticker is already live. Caller holds s.mu.
func (s *Scheduler) arm() {
	if s.ticker != nil {
		return
	}
	s.ticker = s.clock.NewTicker(s.engine.TickPeriod())
	s.stop = make(chan struct{})
	s.logger.Debug("autoplay armed", zap.Duration("period", s.engine.TickPeriod()))
	go s.run(s.ticker, s.stop)
}

// disarm is a no-op when no ticker is live. Caller holds s.mu.
func (s *Scheduler) disarm() {
	if s.ticker == nil {
		return
	}
	s.ticker.Stop()
	close(s.stop)
	s.ticker = nil
	s.stop = nil
	s.logger.Debug("autoplay disarmed")
}

func (s *Scheduler) run(ticker Ticker, stop chan struct{}) {
	for {
		select {
		case <-stop:
			return
		case <-ticker.C():
			select {
			case <-stop:
				return
			default:
			}
			// A fire that races a disarm lands here; the engine's own
			// playing/suspended guards drop it.
			s.engine.Tick()
		}
	}
}
