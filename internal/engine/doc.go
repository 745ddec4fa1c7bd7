// Package engine owns which slide is current and everything derived from
// that: direction, autoplay intent, suspension, and interval progress.
//
// # Overview
//
// Every input source in lantern funnels into this package's transition
// methods. The engine recomputes one immutable State snapshot per accepted
// transition and notifies subscribers synchronously; nothing else in the
// program ever writes a state field.
//
//	timer tick ─────┐
//	drag end ───────┤
//	key press ──────┼──→ Engine transition ──→ new State ──→ subscribers
//	rail click ─────┤      (under one lock)                  (scheduler,
//	hover/focus ────┤                                         preloader,
//	remote call ────┘                                         UI bridge)
//
// # Core Types
//
// Engine:
//   - Serializes transitions behind one mutex
//   - Transition methods: Next, Previous, GoTo, ToggleAutoplay,
//     SetSuspended, SetFullscreen, Tick
//   - Subscribe returns an unsubscribe func; Close drops everything
//
// State:
//   - Value type, replaced wholesale, safe to copy and hold
//   - Derived queries are methods, not stored fields: CanGoNext,
//     CanGoPrevious, PreloadSet, Finished, Inert
//
// Scheduler:
//   - Observes snapshots and keeps a ticker armed exactly while
//     playing && !suspended && !inert && !finished
//   - Guarantees at most one live ticker; rearming without disarming
//     first is the timer-leak bug this type exists to prevent
//
// Suspensions:
//   - A set of reasons (hover, drag, focus, reduced motion) OR-combined
//     into the engine's single suspended flag
//
// # Progress Accounting
//
// Progress is stored as elapsed ticks over ticks-per-interval and exposed
// as their ratio, so a 5000ms interval at a 100ms tick advances after
// exactly 50 ticks with no float drift. The tick that completes the
// interval advances the index and resets progress in the same snapshot;
// observers never see a full bar paired with a stale index.
//
// At the end of a non-looping show progress clamps at 1 and the snapshot
// reports Finished. The scheduler reads that and disarms; Tick itself
// never stops the timer.
//
// # Concurrency Model
//
// Subscribers run under the engine lock. That is what makes a transition
// atomic with respect to observers, and it carries one rule: a subscriber
// must not call back into the engine. Reactions that need engine calls
// (the UI bridge, the preload warmer) forward the update through a channel
// and act from their own goroutine.
//
// The scheduler's tick goroutine calls Engine.Tick, which takes the engine
// lock and may synchronously re-enter the scheduler's evaluate via the
// subscription. evaluate only takes the scheduler's own lock, and nothing
// holds that lock while waiting on the engine's, so the two locks never
// deadlock.
//
// # Lifecycle
//
//	eng := engine.New(engine.Config{SlideCount: 12, Autoplay: true, Loop: true})
//	sched := engine.NewScheduler(eng)
//	sched.Start()
//	defer func() {
//		sched.Close() // disarm first
//		eng.Close()   // then make late fires no-ops
//	}()
//
// Close order matters at teardown: the scheduler disarms synchronously, and
// the engine close turns any tick already in flight into a no-op.
package engine
