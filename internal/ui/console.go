package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/chanderbhanswami/lantern/internal/trace"
)

// consoleModal shows the transition journal. It stays live while open;
// records keep arriving as the show runs underneath.
type consoleModal struct {
	journal *trace.Journal
}

func newConsoleModal(j *trace.Journal) consoleModal {
	return consoleModal{journal: j}
}

// Update implements Modal.
func (c consoleModal) Update(msg tea.Msg, keys keyMap) (Modal, tea.Cmd, bool) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil, false
	}
	if key.Matches(keyMsg, keys.Escape) || key.Matches(keyMsg, keys.ToggleConsole) || key.Matches(keyMsg, keys.Quit) {
		return c, nil, true
	}
	return c, nil, false
}

// View implements Modal.
func (c consoleModal) View(theme Theme, width, height int) string {
	styles := theme.Styles()

	var b strings.Builder
	b.WriteString(styles.Text.Bold(true).Render("Transitions"))
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render(strings.Repeat("─", 34)))
	b.WriteString("\n")

	records := c.journal.Recent(ConsoleRecords)
	if len(records) == 0 {
		b.WriteString(styles.MutedText.Render("No transitions yet."))
	}
	for i, r := range records {
		b.WriteString(formatRecord(styles, r))
		if i < len(records)-1 {
			b.WriteString("\n")
		}
	}

	return placeModal(theme, b.String(), width, height)
}

// formatRecord renders one journal line, slide numbers shown 1-based.
func formatRecord(styles Styles, r trace.Record) string {
	ts := r.At.In(time.Local).Format("15:04:05")
	cause := r.Cause.String()
	return styles.FaintText.Render(ts) + "  " +
		styles.CauseStyle(cause).Render(padRight(titleCase(cause), 9)) +
		styles.Text.Render(fmt.Sprintf("%3d → %d", r.From+1, r.To+1))
}
