package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// Config captures the presenter settings Lantern reads at startup.
type Config struct {
	IntervalMS     int
	TickMS         int
	Loop           bool
	Autoplay       bool
	DragDistance   float64
	FlickVelocity  float64
	PreloadWorkers int
	RemoteBind     string
	LogFile        string
	LogLevel       string
}

const (
	defaultConfigPath = "~/.config/lantern/config.toml"
	defaultLogFile    = "~/.local/share/lantern/lantern.log"
	defaultIntervalMS = 5000
	defaultTickMS     = 100
	defaultLogLevel   = "info"
)

// Load locates and parses the Lantern config, falling back to defaults when
// missing. Zero or empty fields inherit their defaults, so a partial file is
// as good as a full one.
func Load(path string) (Config, error) {
	target := strings.TrimSpace(path)
	if target == "" {
		target = defaultConfigPath
	}
	resolved, err := expandPath(target)
	if err != nil {
		return Config{}, err
	}

	cfg := defaults()

	data, err := os.ReadFile(resolved)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		IntervalMS     int     `toml:"interval_ms"`
		TickMS         int     `toml:"tick_ms"`
		Loop           bool    `toml:"loop"`
		Autoplay       bool    `toml:"autoplay"`
		DragDistance   float64 `toml:"drag_distance"`
		FlickVelocity  float64 `toml:"flick_velocity"`
		PreloadWorkers int     `toml:"preload_workers"`
		RemoteBind     string  `toml:"remote_bind"`
		LogFile        string  `toml:"log_file"`
		LogLevel       string  `toml:"log_level"`
	}
	if err := toml.Unmarshal(data, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if raw.IntervalMS != 0 {
		cfg.IntervalMS = raw.IntervalMS
	}
	if raw.TickMS != 0 {
		cfg.TickMS = raw.TickMS
	}
	cfg.Loop = raw.Loop
	cfg.Autoplay = raw.Autoplay
	if raw.DragDistance != 0 {
		cfg.DragDistance = raw.DragDistance
	}
	if raw.FlickVelocity != 0 {
		cfg.FlickVelocity = raw.FlickVelocity
	}
	if raw.PreloadWorkers != 0 {
		cfg.PreloadWorkers = raw.PreloadWorkers
	}
	cfg.RemoteBind = strings.TrimSpace(raw.RemoteBind)
	if trimmed := strings.TrimSpace(raw.LogFile); trimmed != "" {
		cfg.LogFile = trimmed
	}
	if trimmed := strings.TrimSpace(raw.LogLevel); trimmed != "" {
		cfg.LogLevel = trimmed
	}
	cfg.LogFile = mustExpand(cfg.LogFile)

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func defaults() Config {
	return Config{
		IntervalMS: defaultIntervalMS,
		TickMS:     defaultTickMS,
		LogFile:    mustExpand(defaultLogFile),
		LogLevel:   defaultLogLevel,
	}
}

func (c Config) validate() error {
	if c.IntervalMS < 0 {
		return fmt.Errorf("interval_ms %d must be positive", c.IntervalMS)
	}
	if c.TickMS < 0 {
		return fmt.Errorf("tick_ms %d must be positive", c.TickMS)
	}
	if c.TickMS > c.IntervalMS {
		return fmt.Errorf("tick_ms %d exceeds interval_ms %d", c.TickMS, c.IntervalMS)
	}
	if c.DragDistance < 0 {
		return fmt.Errorf("drag_distance %.1f must not be negative", c.DragDistance)
	}
	if c.FlickVelocity < 0 {
		return fmt.Errorf("flick_velocity %.1f must not be negative", c.FlickVelocity)
	}
	if c.PreloadWorkers < 0 {
		return fmt.Errorf("preload_workers %d must not be negative", c.PreloadWorkers)
	}
	return nil
}

// Interval returns the autoplay dwell per slide.
func (c Config) Interval() time.Duration {
	return time.Duration(c.IntervalMS) * time.Millisecond
}

// TickPeriod returns the progress tick granularity.
func (c Config) TickPeriod() time.Duration {
	return time.Duration(c.TickMS) * time.Millisecond
}

// mustExpand keeps a path usable even when expansion fails, so a bad tilde
// in log_file never blocks startup.
func mustExpand(path string) string {
	if expanded, err := expandPath(path); err == nil {
		return expanded
	}
	return path
}

func expandPath(path string) (string, error) {
	p := strings.TrimSpace(path)
	switch {
	case p == "":
		return "", errors.New("empty path")
	case p == "~" || strings.HasPrefix(p, "~/"):
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		p = filepath.Join(home, p[1:])
	}
	return filepath.Abs(p)
}
