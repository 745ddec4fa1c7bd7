package app

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/chanderbhanswami/lantern/internal/config"
	"github.com/chanderbhanswami/lantern/internal/deck"
	"github.com/chanderbhanswami/lantern/internal/engine"
	"github.com/chanderbhanswami/lantern/internal/gesture"
	"github.com/chanderbhanswami/lantern/internal/logging"
	"github.com/chanderbhanswami/lantern/internal/media"
	"github.com/chanderbhanswami/lantern/internal/prefs"
	"github.com/chanderbhanswami/lantern/internal/preload"
	"github.com/chanderbhanswami/lantern/internal/remote"
	"github.com/chanderbhanswami/lantern/internal/trace"
	"github.com/chanderbhanswami/lantern/internal/ui"
)

// journalCapacity bounds the transition history behind the console overlay.
const journalCapacity = 256

const shutdownTimeout = 3 * time.Second

// Options configure one presenter run.
type Options struct {
	DeckPath   string
	ConfigPath string // empty uses default ~/.config/lantern/config.toml
	PrefsPath  string // empty uses default ~/.config/lantern/prefs.toml
}

// Run boots the presenter and blocks until the context is cancelled or the
// user quits.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	userPrefs := prefs.Load(opts.PrefsPath)

	d, err := deck.Load(opts.DeckPath)
	if err != nil {
		return fmt.Errorf("load deck: %w", err)
	}

	logger, err := logging.New(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("init logging: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("deck loaded",
		zap.String("path", opts.DeckPath),
		zap.String("title", d.Title),
		zap.Int("slides", d.Len()))

	eng := engine.New(engine.Config{
		SlideCount: d.Len(),
		Autoplay:   cfg.Autoplay,
		Loop:       cfg.Loop,
		Interval:   cfg.Interval(),
		TickPeriod: cfg.TickPeriod(),
	})
	defer eng.Close()

	scheduler := engine.NewScheduler(eng, engine.WithLogger(logger))
	scheduler.Start()
	defer scheduler.Close()

	susp := engine.NewSuspensions(eng)
	if userPrefs.ReduceMotion {
		susp.Add(engine.ReasonReducedMotion)
	}

	gestures := gesture.NewInterpreter(gesture.Thresholds{
		Distance: cfg.DragDistance,
		Velocity: cfg.FlickVelocity,
	}, susp)

	loader := media.NewLoader()
	warmer := newWarmer(eng, d, loader, cfg.PreloadWorkers, logger)
	warmer.Start()
	defer warmer.Close()

	journal := trace.NewJournal(journalCapacity)
	unfollow := journal.Follow(eng)
	defer unfollow()

	unlog := eng.Subscribe(func(u engine.Update) {
		if u.Change == nil {
			return
		}
		logger.Info("slide change",
			zap.Int("from", u.Change.From),
			zap.Int("to", u.Change.To),
			zap.String("cause", u.Change.Cause.String()))
	})
	defer unlog()

	var remoteURL string
	if cfg.RemoteBind != "" {
		srv := remote.NewServer(cfg.RemoteBind, eng, d, logger)
		if err := srv.Start(); err != nil {
			return fmt.Errorf("start remote control: %w", err)
		}
		defer func() {
			shutCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			_ = srv.Shutdown(shutCtx)
		}()
		remoteURL = srv.URL()
	}

	return ui.Run(ui.Options{
		Context:      ctx,
		Engine:       eng,
		Deck:         d,
		Suspensions:  susp,
		Gestures:     gestures,
		Journal:      journal,
		Loader:       loader,
		Logger:       logger,
		RemoteURL:    remoteURL,
		ThemeName:    userPrefs.Theme,
		HideRail:     userPrefs.HideRail,
		ReduceMotion: userPrefs.ReduceMotion,
		PrefsPath:    opts.PrefsPath,
	})
}

// newWarmer wires the preload pool to the deck's image paths. Slides without
// an image warm instantly.
func newWarmer(eng *engine.Engine, d *deck.Deck, loader *media.Loader, workers int, logger *zap.Logger) *preload.Warmer {
	fetch := preload.LoaderFunc(func(ctx context.Context, index int) error {
		path := d.ImagePath(index)
		if path == "" {
			return nil
		}
		_, err := loader.Load(ctx, path)
		return err
	})

	warmOpts := []preload.WarmerOption{preload.WithWarmLogger(logger)}
	if workers > 0 {
		warmOpts = append(warmOpts, preload.WithWorkers(workers))
	}
	return preload.NewWarmer(eng, fetch, warmOpts...)
}
