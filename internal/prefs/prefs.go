// Package prefs persists the presenter settings the user flips mid-show:
// theme, reduced motion, and the slide rail. Unlike config, prefs are
// written back by Lantern itself, and loading never fails; cosmetic
// settings degrade to defaults rather than stopping a presentation.
package prefs

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// Prefs holds the persisted user preferences.
type Prefs struct {
	Theme        string `toml:"theme"`
	ReduceMotion bool   `toml:"reduce_motion"`
	HideRail     bool   `toml:"hide_rail"`
}

const (
	defaultPrefsPath = "~/.config/lantern/prefs.toml"
	defaultTheme     = "Nightfox"
)

// DefaultPath returns the default preferences file path.
func DefaultPath() string {
	return defaultPrefsPath
}

// Load reads preferences from path, or the default location when path is
// empty. Every failure degrades to defaults.
func Load(path string) Prefs {
	fallback := Prefs{Theme: defaultTheme}

	resolved, err := resolve(path)
	if err != nil {
		return fallback
	}
	data, err := os.ReadFile(resolved)
	if err != nil {
		return fallback
	}

	loaded := fallback
	if err := toml.Unmarshal(data, &loaded); err != nil {
		return fallback
	}
	if strings.TrimSpace(loaded.Theme) == "" {
		loaded.Theme = defaultTheme
	}
	return loaded
}

// Save writes preferences to path, creating parent directories as needed.
func Save(path string, p Prefs) error {
	resolved, err := resolve(path)
	if err != nil {
		return fmt.Errorf("resolve prefs path: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(resolved), 0o755); err != nil {
		return fmt.Errorf("create prefs dir: %w", err)
	}
	data, err := toml.Marshal(p)
	if err != nil {
		return fmt.Errorf("encode prefs: %w", err)
	}
	if err := os.WriteFile(resolved, data, 0o644); err != nil {
		return fmt.Errorf("write prefs: %w", err)
	}
	return nil
}

// resolve picks the default path when none is given and expands it to an
// absolute one.
func resolve(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		path = defaultPrefsPath
	}
	return expand(path)
}

func expand(path string) (string, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return "", errors.New("empty path")
	}
	if after, ok := strings.CutPrefix(path, "~"); ok {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		path = filepath.Join(home, after)
	}
	return filepath.Abs(path)
}
