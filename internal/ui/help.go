package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// helpModal is the keyboard shortcut overlay. Any key closes it.
type helpModal struct{}

func newHelpModal() helpModal {
	return helpModal{}
}

// Update implements Modal.
func (h helpModal) Update(msg tea.Msg, keys keyMap) (Modal, tea.Cmd, bool) {
	if _, ok := msg.(tea.KeyMsg); ok {
		return h, nil, true
	}
	return h, nil, false
}

// View implements Modal.
func (h helpModal) View(theme Theme, width, height int) string {
	styles := theme.Styles()

	sections := []helpSection{
		{
			title: "Navigation",
			items: []helpItem{
				{"→/l", "Next slide"},
				{"←/h", "Previous slide"},
				{"g/G", "First/last slide"},
				{"1-9", "Jump to slide"},
				{":", "Go to slide number"},
			},
		},
		{
			title: "Playback",
			items: []helpItem{
				{"Space", "Play/pause autoplay"},
			},
		},
		{
			title: "Stage",
			items: []helpItem{
				{"f", "Fullscreen stage"},
				{"esc", "Leave fullscreen"},
				{"r", "Toggle slide rail"},
				{"c", "Transition console"},
				{"R", "Remote control QR"},
				{"L", "Slide link QR"},
			},
		},
		{
			title: "General",
			items: []helpItem{
				{"T", "Cycle theme"},
				{"?", "Toggle help"},
				{"q/ctrl+c", "Quit"},
			},
		},
	}

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Warning)).
		Width(12)

	var b strings.Builder
	b.WriteString(styles.Text.Bold(true).Render("Keyboard Shortcuts"))
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render(strings.Repeat("─", 30)))
	b.WriteString("\n\n")

	for i, section := range sections {
		b.WriteString(styles.AccentText.Bold(true).Render(section.title))
		b.WriteString("\n")
		for _, item := range section.items {
			b.WriteString(keyStyle.Render(item.key))
			b.WriteString(styles.Text.Render(item.desc))
			b.WriteString("\n")
		}
		if i < len(sections)-1 {
			b.WriteString("\n")
		}
	}

	return placeModal(theme, b.String(), width, height)
}

type helpSection struct {
	title string
	items []helpItem
}

type helpItem struct {
	key  string
	desc string
}
