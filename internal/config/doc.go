// Package config handles loading and parsing Lantern configuration files.
//
// # Overview
//
// This package reads Lantern's TOML configuration to establish timing,
// gesture, preloading, and remote-control settings before the presenter
// starts. Every field is optional; a missing file is not an error.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/lantern/config.toml (default)
//  3. If the config file doesn't exist, fall back to hardcoded defaults
//  4. If the file exists but fields are missing/zero, use defaults
//
// # Default Values
//
//   - Config file: ~/.config/lantern/config.toml
//   - Autoplay interval: 5000 ms per slide
//   - Tick period: 100 ms progress granularity
//   - Loop / autoplay on start: off
//   - Drag distance and flick velocity: gesture package defaults
//   - Preload workers: sized from the host (0 = auto)
//   - Remote bind: empty (remote control disabled)
//   - Log file: ~/.local/share/lantern/lantern.log at info level
//
// # TOML Format
//
// Example config.toml:
//
//	interval_ms = 8000
//	tick_ms = 50
//	loop = true
//	autoplay = true
//	drag_distance = 6.0
//	flick_velocity = 30.0
//	preload_workers = 2
//	remote_bind = "127.0.0.1:7910"
//	log_file = "~/.local/share/lantern/lantern.log"
//	log_level = "debug"
//
// All fields are optional. Tilde expansion is performed automatically.
//
// # Validation
//
// Load rejects configurations that cannot drive a show: negative timings or
// thresholds, and a tick period longer than the slide interval. Everything
// else is coerced toward a working default rather than refused.
//
// # Error Handling
//
// Load returns errors for:
//   - Path expansion failures (e.g. cannot determine home directory)
//   - File read errors (except os.ErrNotExist, which triggers defaults)
//   - TOML parsing errors
//   - Validation failures
//
// Missing config files are NOT an error. This allows Lantern to present a
// deck out-of-the-box without any configuration.
//
// # Usage Example
//
//	cfg, err := config.Load("")
//	if err != nil {
//		return err
//	}
//	eng := engine.New(engine.Config{
//		SlideCount: deck.Len(),
//		Autoplay:   cfg.Autoplay,
//		Loop:       cfg.Loop,
//		Interval:   cfg.Interval(),
//		TickPeriod: cfg.TickPeriod(),
//	})
//
// The config package is read-only and stateless. It loads configuration once
// at startup and returns an immutable Config struct.
package config
