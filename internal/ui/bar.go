package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Bar paints chrome rows (the status bar, the command bar, the slide rail)
// onto a single background color. Lipgloss closes its ANSI state at every
// styled segment, so joining segments with bare spaces leaves unpainted
// gaps in the row (https://github.com/charmbracelet/lipgloss/discussions/78).
// Every space, separator, and pad must go through the bar's own style for
// the row to read as one solid strip.
type Bar struct {
	bg    lipgloss.Color
	fill  lipgloss.Style
	space string
}

// NewBar returns a Bar for the given background color.
func NewBar(background string) Bar {
	bg := lipgloss.Color(background)
	fill := lipgloss.NewStyle().Background(bg)
	return Bar{bg: bg, fill: fill, space: fill.Render(" ")}
}

// Text renders s with style on the bar. Spaces inside s are re-rendered
// through the bar fill so mid-phrase gaps stay painted.
func (b Bar) Text(s string, style lipgloss.Style) string {
	if s == "" {
		return ""
	}
	styled := style.Background(b.bg)
	if !strings.ContainsRune(s, ' ') {
		return styled.Render(s)
	}
	words := strings.Split(s, " ")
	for i, w := range words {
		if w != "" {
			words[i] = styled.Render(w)
		}
	}
	return strings.Join(words, b.space)
}

// Space returns one painted space.
func (b Bar) Space() string {
	return b.space
}

// Pad returns n painted spaces.
func (b Bar) Pad(n int) string {
	if n <= 0 {
		return ""
	}
	return b.fill.Render(strings.Repeat(" ", n))
}

// Sep returns sep painted onto the bar.
func (b Bar) Sep(sep string) string {
	return b.fill.Render(sep)
}

// Join joins parts with a painted separator.
func (b Bar) Join(parts []string, sep string) string {
	return strings.Join(parts, b.Sep(sep))
}

// Fill pads content out to width so the bar spans the whole terminal row.
func (b Bar) Fill(content string, width int) string {
	return b.fill.Width(width).Render(content)
}
