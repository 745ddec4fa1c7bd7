package ui

import (
	"fmt"
	"strings"
)

// renderHeader renders the status bar across the top of the presenter.
func (m Model) renderHeader() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBar(m.theme.Surface)
	compact := m.width < LayoutCompactWidth
	st := m.snapshot

	var parts []string

	parts = append(parts, bg.Text("lantern", styles.Logo))

	if st.Inert() {
		parts = append(parts, bg.Text("EMPTY DECK", styles.WarningText.Bold(true)))
		parts = append(parts, bg.Text("add slides to the manifest and restart", styles.MutedText))
		return styles.Header.Width(m.width).Render(bg.Join(parts, "  "))
	}

	// Deck title
	maxTitle := 40
	if compact {
		maxTitle = 18
	}
	if m.deck != nil && m.deck.Title != "" {
		parts = append(parts, bg.Text(truncate(m.deck.Title, maxTitle), styles.Text))
	}

	// Position
	parts = append(parts, bg.Text(fmt.Sprintf("%d/%d", st.Index+1, st.SlideCount), styles.AccentText))

	// Playback badge
	parts = append(parts, m.playbackBadge(styles, bg, compact))

	// Autoplay progress
	if st.IsPlaying && !compact {
		parts = append(parts, m.progressBar.ViewAs(st.Progress))
	}

	if st.Loop && !compact {
		parts = append(parts, bg.Text("LOOP", styles.InfoText))
	}

	if st.Finished() {
		parts = append(parts, bg.Text("■ END", styles.MutedText))
	}

	return styles.Header.Width(m.width).Render(bg.Join(parts, "  "))
}

// playbackBadge formats the play state, naming the hold reasons when the
// timeline is suspended.
func (m Model) playbackBadge(styles Styles, bg Bar, compact bool) string {
	st := m.snapshot

	if !st.IsPlaying {
		return bg.Text("⏸ PAUSED", styles.MutedText)
	}
	if st.IsSuspended {
		badge := bg.Text("⏸ HELD", styles.WarningText.Bold(true))
		if !compact && m.suspensions != nil {
			if reasons := m.suspensions.Active(); len(reasons) > 0 {
				labels := make([]string, 0, len(reasons))
				for _, r := range reasons {
					labels = append(labels, string(r))
				}
				badge += bg.Space() + bg.Text("("+strings.Join(labels, " ")+")", styles.FaintText)
			}
		}
		return badge
	}
	return bg.Text("▶ PLAYING", styles.SuccessText)
}

// renderCommandBar renders the command hints bar under the header.
func (m Model) renderCommandBar() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBar(m.theme.Surface)

	playLabel := "Play"
	if m.snapshot.IsPlaying {
		playLabel = "Pause"
	}
	railLabel := "Rail"
	if m.hideRail {
		railLabel = "Rail off"
	}

	type cmd struct{ key, desc string }
	commands := []cmd{
		{"←/→", "Navigate"},
		{"Space", playLabel},
		{":", "Goto"},
		{"f", "Fullscreen"},
		{"r", railLabel},
		{"c", "Console"},
	}
	if m.remoteURL != "" {
		commands = append(commands, cmd{"R", "Remote"})
	}
	if m.deck != nil && m.deck.Slide(m.snapshot.Index).Link != "" {
		commands = append(commands, cmd{"L", "Link"})
	}
	commands = append(commands, cmd{"?", "Help"})

	colon := bg.Sep(":")
	sep := bg.Pad(2)

	segments := make([]string, 0, len(commands)+1)
	for _, c := range commands {
		segments = append(segments,
			bg.Text(c.key, styles.AccentText)+colon+bg.Text(c.desc, styles.MutedText))
	}

	// Theme indicator
	segments = append(segments,
		bg.Text("T", styles.AccentText)+colon+bg.Text(m.theme.Name, styles.FaintText))

	return styles.Header.Width(m.width).Render(strings.Join(segments, sep))
}
