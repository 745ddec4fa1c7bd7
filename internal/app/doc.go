// Package app provides the orchestration layer for the Lantern presenter.
//
// # Overview
//
// This package wires together configuration, the playback engine, media
// preloading, the remote control server, and the UI to create the complete
// presenter. It serves as the composition root where all dependencies are
// initialized and connected.
//
// # Architecture
//
// The app package follows a simple initialization pattern:
//
//  1. Load presenter configuration from ~/.config/lantern/config.toml
//  2. Load user preferences (theme, rail, reduced motion)
//  3. Load and validate the deck manifest
//  4. Open the JSON log file; the terminal itself belongs to the UI
//  5. Build the engine, scheduler, suspension set, and gesture interpreter
//  6. Start the preload warmer and, when configured, the remote server
//  7. Start the TUI and block until the user exits or the context cancels
//
// # Data Flow
//
//	┌──────────────┐
//	│   Run()      │ Initialize everything
//	└──────┬───────┘
//	       │
//	       ├─────> config.Load()        Read presenter config
//	       ├─────> prefs.Load()         Read user preferences
//	       ├─────> deck.Load()          Read and validate the manifest
//	       ├─────> engine.New()         Single source of playback truth
//	       ├─────> NewScheduler()       Autoplay ticker lifecycle
//	       ├─────> NewWarmer()          Media preload pool
//	       ├─────> remote.NewServer()   Optional phone remote
//	       └─────> ui.Run()             Start TUI (blocks)
//
//	Input fan-in, all paths through the engine:
//	┌─────────────────────────────────────────┐
//	│ keys / clicks / drags ──> engine ops    │
//	│ scheduler ticks        ──> engine.Tick  │
//	│ remote HTTP calls      ──> engine ops   │
//	│     └─> subscribers: UI, journal,       │
//	│         scheduler, preload warmer       │
//	└─────────────────────────────────────────┘
//
// # Teardown Order
//
// Deferred teardown runs in reverse construction order: the remote server
// stops accepting input first, then the journal unfollows, the warmer
// drains, the scheduler disarms, and the engine closes last. Every input
// source is gone before the thing they drive shuts down.
//
// # Error Handling
//
// The app package distinguishes between fatal and recoverable errors:
//
// Fatal errors (returned from Run):
//   - Configuration file invalid (missing is fine, defaults apply)
//   - Deck manifest missing, malformed, or carrying duplicate slide ids
//   - Log file unwritable
//   - Remote control bind address already in use
//
// Recoverable errors (logged, presentation continues):
//   - Slide image decode failures
//   - Preload fetch failures
//   - Preference write failures
//
// A missing image degrades one slide's rendering; it never blocks
// navigation or takes the show down.
//
// # Usage Example
//
//	ctx, cancel := context.WithCancel(context.Background())
//	defer cancel()
//
//	opts := app.Options{
//		DeckPath:   "talk.yaml",
//		ConfigPath: "", // use default
//	}
//
//	if err := app.Run(ctx, opts); err != nil {
//		log.Fatalf("lantern failed: %v", err)
//	}
//
// # Dependencies
//
//   - config: Presenter configuration with validation
//   - deck: YAML manifest loading
//   - engine: Playback state machine, scheduler, and suspensions
//   - gesture: Drag and flick interpretation
//   - logging: File-bound zap logger construction
//   - media: Image decode and cache
//   - prefs: Persisted theme and accessibility switches
//   - preload: Neighbor warming worker pool
//   - remote: HTTP remote control server
//   - trace: Transition journal behind the console overlay
//   - ui: Terminal user interface
package app
