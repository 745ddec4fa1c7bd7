package preload

import (
	"context"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/chanderbhanswami/lantern/internal/engine"
)

// Loader fetches the media behind one slide index into a warm cache.
type Loader interface {
	Warm(ctx context.Context, index int) error
}

// LoaderFunc adapts a function to the Loader interface.
type LoaderFunc func(ctx context.Context, index int) error

func (f LoaderFunc) Warm(ctx context.Context, index int) error { return f(ctx, index) }

const (
	maxWorkers = 4
	// Below this much free memory the warmer stays off; decoding images
	// ahead of need is not worth pressuring the rest of the system.
	minFreeBytes = 128 << 20
)

// defaultWorkers sizes the pool from the host: one worker per logical CPU
// up to a small cap, or zero under memory pressure.
func defaultWorkers() int {
	if vm, err := mem.VirtualMemory(); err == nil && vm.Available < minFreeBytes {
		return 0
	}
	workers := 2
	if count, err := cpu.Counts(true); err == nil && count > 0 {
		workers = count
	}
	if workers > maxWorkers {
		workers = maxWorkers
	}
	return workers
}

// WarmerOption configures a Warmer.
type WarmerOption func(*Warmer)

// WithWorkers overrides the pool size. Zero or negative disables warming.
func WithWorkers(n int) WarmerOption {
	return func(w *Warmer) { w.workers = n }
}

// WithWarmLogger attaches a logger for fetch failures.
func WithWarmLogger(logger *zap.Logger) WarmerOption {
	return func(w *Warmer) {
		if logger != nil {
			w.logger = logger
		}
	}
}

// Warmer follows the engine and fetches media for indices as they enter the
// warm set. Fetches run on a bounded worker pool; failures are logged and
// never surface to navigation.
type Warmer struct {
	engine  *engine.Engine
	tracker *Tracker
	loader  Loader
	logger  *zap.Logger
	workers int

	queue  chan int
	group  errgroup.Group
	ctx    context.Context
	cancel context.CancelFunc
	unsub  func()
}

// NewWarmer builds a warmer over e. The tracker is sized from the engine's
// snapshot.
func NewWarmer(e *engine.Engine, loader Loader, opts ...WarmerOption) *Warmer {
	count := e.State().SlideCount
	w := &Warmer{
		engine:  e,
		tracker: NewTracker(count),
		loader:  loader,
		logger:  zap.NewNop(),
		workers: defaultWorkers(),
		// Each index is enqueued at most once ever, so the queue never
		// overflows at this capacity.
		queue: make(chan int, count+1),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Start subscribes to the engine, warms the current neighborhood, and keeps
// following index changes. A warmer with no workers or no loader does
// nothing.
func (w *Warmer) Start() {
	if w.loader == nil || w.workers <= 0 || w.engine.State().Inert() {
		w.logger.Debug("preload warmer disabled")
		return
	}
	w.ctx, w.cancel = context.WithCancel(context.Background())
	w.group.SetLimit(w.workers)

	w.unsub = w.engine.Subscribe(func(u engine.Update) {
		if u.Change != nil {
			w.observe(u.Change.To)
		}
	})

	go w.dispatch()
	w.observe(w.engine.State().Index)
}

// Close stops following the engine and waits for in-flight fetches.
func (w *Warmer) Close() {
	if w.unsub != nil {
		w.unsub()
		w.unsub = nil
	}
	if w.cancel != nil {
		w.cancel()
	}
	w.group.Wait()
}

// observe runs inside the engine notification; it only moves indices into
// the queue so the engine lock is never held across a fetch.
func (w *Warmer) observe(index int) {
	for _, idx := range w.tracker.Observe(index) {
		select {
		case w.queue <- idx:
		default:
		}
	}
}

func (w *Warmer) dispatch() {
	for {
		select {
		case <-w.ctx.Done():
			return
		case idx := <-w.queue:
			w.group.Go(func() error {
				if err := w.loader.Warm(w.ctx, idx); err != nil && w.ctx.Err() == nil {
					w.logger.Warn("preload failed", zap.Int("slide", idx), zap.Error(err))
				}
				return nil
			})
		}
	}
}
