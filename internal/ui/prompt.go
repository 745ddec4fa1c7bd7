package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// gotoRequestMsg asks the app to jump to a zero-based slide index.
type gotoRequestMsg struct {
	index int
}

// gotoModal prompts for a 1-based slide number.
type gotoModal struct {
	input      textinput.Model
	slideCount int
	errText    string
}

func newGotoModal(slideCount int) gotoModal {
	ti := textinput.New()
	ti.Placeholder = "slide number"
	ti.CharLimit = 4
	ti.Width = 14
	ti.Focus()
	return gotoModal{input: ti, slideCount: slideCount}
}

// Update implements Modal.
func (g gotoModal) Update(msg tea.Msg, keys keyMap) (Modal, tea.Cmd, bool) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return g, nil, false
	}

	switch {
	case key.Matches(keyMsg, keys.Escape):
		return g, nil, true

	case key.Matches(keyMsg, keys.Confirm):
		raw := strings.TrimSpace(g.input.Value())
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > g.slideCount {
			g.errText = fmt.Sprintf("enter a number between 1 and %d", g.slideCount)
			return g, nil, false
		}
		index := n - 1
		return g, func() tea.Msg { return gotoRequestMsg{index: index} }, true
	}

	var cmd tea.Cmd
	g.input, cmd = g.input.Update(msg)
	g.errText = ""
	return g, cmd, false
}

// View implements Modal.
func (g gotoModal) View(theme Theme, width, height int) string {
	styles := theme.Styles()

	var b strings.Builder
	b.WriteString(styles.Text.Bold(true).Render("Go to slide"))
	b.WriteString("\n\n")
	b.WriteString(g.input.View())
	b.WriteString("\n")
	if g.errText != "" {
		b.WriteString(styles.DangerText.Render(g.errText))
	} else {
		b.WriteString(styles.FaintText.Render(fmt.Sprintf("1-%d, enter to jump", g.slideCount)))
	}

	return placeModal(theme, b.String(), width, height)
}
