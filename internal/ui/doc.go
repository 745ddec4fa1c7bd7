// Package ui provides the terminal presenter interface for Lantern.
//
// # Architecture Overview
//
// The UI is a Bubble Tea program. The Model holds an immutable engine
// snapshot plus purely visual state (theme, overlay, pointer tracking), and
// every render derives from those two inputs. The engine is the single
// source of playback truth: key and mouse handlers call engine operations
// and never mutate the snapshot themselves.
//
// # Package Structure
//
// The package is organized into focused modules:
//
//   - app.go: Model, message routing, pointer handling, and the Run function
//   - header.go: Deck banner, playback badge, progress bar, and command bar
//   - stage.go: Slide body rendering with optional side-by-side art
//   - rail.go: Slide position dots and click hit-testing
//   - theme.go: Color palettes and the derived style set
//   - keys.go: Key bindings built on bubbles/key
//   - modal.go, help.go, prompt.go, qr.go, console.go: Overlay windows
//
// # Event Flow
//
//  1. Run() subscribes to the engine and starts the Bubble Tea program
//  2. Engine notifications cross a latest-wins channel into engineMsg values
//  3. Update stores each snapshot and re-arms the channel read
//  4. Input handlers translate keys, clicks, wheel, and drags into engine calls
//  5. The next snapshot renders; the UI never predicts engine results
//
// The bridge channel holds one pending snapshot. When renders fall behind,
// stale snapshots are dropped rather than queued, so the screen always shows
// the latest state and the engine's notify path never blocks.
//
// # Input Handling
//
// Keys are matched through a bubbles key.Map so the help overlay and the
// handlers cannot drift apart. When an overlay is open it consumes all key
// input until it reports done. Pointer input distinguishes four intents:
// wheel steps, rail dot clicks, stage clicks by screen half, and horizontal
// drags, where press-to-release travel beyond the gesture thresholds commits
// a slide change and anything within clickSlop counts as a click. Terminal
// focus loss and pointer hover hold autoplay through the suspension set.
//
// # Rendering
//
// Views compose lipgloss-styled fragments. Full-width bands (header, rail)
// are built with Bar so the surface color runs edge to edge, and the
// stage is centered with lipgloss.Place over the theme background. Below
// LayoutCompactWidth columns the header drops its progress bar and badges to
// keep the deck title readable.
//
// # Usage Example
//
//	opts := ui.Options{
//		Context:     ctx,
//		Engine:      eng,
//		Deck:        dck,
//		Suspensions: susp,
//		Journal:     journal,
//		Loader:      loader,
//		RemoteURL:   srv.URL(),
//		PrefsPath:   prefsPath,
//	}
//	if err := ui.Run(opts); err != nil {
//		log.Fatal(err)
//	}
//
// # Key Bindings
//
//   - Right / l / PgDn: Next slide
//   - Left / h / PgUp: Previous slide
//   - g / Home, G / End: First and last slide
//   - 1-9: Jump straight to that slide
//   - :: Go-to-slide prompt
//   - Space: Play or pause autoplay
//   - f: Toggle fullscreen stage
//   - r: Show or hide the slide rail
//   - c: Transition console overlay
//   - R: Remote control QR overlay
//   - L: Slide link QR overlay
//   - T: Cycle color theme
//   - ?: Help overlay
//   - q or Ctrl+C: Exit
package ui
