package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all keyboard bindings for the presenter.
type keyMap struct {
	// Global
	Quit       key.Binding
	Help       key.Binding
	CycleTheme key.Binding
	Escape     key.Binding

	// Navigation
	Next     key.Binding
	Previous key.Binding
	First    key.Binding
	Last     key.Binding
	GoTo     key.Binding

	// Playback
	ToggleAutoplay key.Binding

	// Chrome
	ToggleFullscreen key.Binding
	ToggleRail       key.Binding
	ToggleConsole    key.Binding
	ShowRemote       key.Binding
	ShowLink         key.Binding

	// Input
	Confirm key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		// Global
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "Quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "Toggle help"),
		),
		CycleTheme: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "Cycle theme"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "Close overlay"),
		),

		// Navigation
		Next: key.NewBinding(
			key.WithKeys("right", "l", "pgdown"),
			key.WithHelp("→/l", "Next slide"),
		),
		Previous: key.NewBinding(
			key.WithKeys("left", "h", "pgup"),
			key.WithHelp("←/h", "Previous slide"),
		),
		First: key.NewBinding(
			key.WithKeys("g", "home"),
			key.WithHelp("g", "First slide"),
		),
		Last: key.NewBinding(
			key.WithKeys("G", "end"),
			key.WithHelp("G", "Last slide"),
		),
		GoTo: key.NewBinding(
			key.WithKeys(":"),
			key.WithHelp(":", "Go to slide"),
		),

		// Playback
		ToggleAutoplay: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("Space", "Play/pause"),
		),

		// Chrome
		ToggleFullscreen: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "Fullscreen stage"),
		),
		ToggleRail: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "Toggle rail"),
		),
		ToggleConsole: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "Transition console"),
		),
		ShowRemote: key.NewBinding(
			key.WithKeys("R"),
			key.WithHelp("R", "Remote control QR"),
		),
		ShowLink: key.NewBinding(
			key.WithKeys("L"),
			key.WithHelp("L", "Slide link QR"),
		),

		// Input
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "Confirm"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		// Navigation
		{k.Next, k.Previous, k.First, k.Last, k.GoTo},
		// Playback
		{k.ToggleAutoplay},
		// Chrome
		{k.ToggleFullscreen, k.ToggleRail, k.ToggleConsole, k.ShowRemote, k.ShowLink},
		// General
		{k.CycleTheme, k.Help, k.Quit},
	}
}
