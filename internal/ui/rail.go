package ui

import (
	"fmt"
	"strings"
)

const (
	railPad       = 1 // leading spaces before the first dot
	railDotStride = 2 // dot plus trailing space
)

// renderRail renders the slide rail: one dot per slide, clickable.
func (m Model) renderRail() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBar(m.theme.Surface)
	st := m.snapshot

	if st.Inert() {
		return bg.Fill(bg.Text("─", styles.FaintText), m.width)
	}

	if !m.railShowsDots() {
		pos := fmt.Sprintf("slide %d of %d", st.Index+1, st.SlideCount)
		return bg.Fill(bg.Pad(railPad)+bg.Text(pos, styles.MutedText), m.width)
	}

	var b strings.Builder
	b.WriteString(bg.Pad(railPad))
	for i := 0; i < st.SlideCount; i++ {
		if i == st.Index {
			b.WriteString(bg.Text("●", styles.AccentText))
		} else {
			b.WriteString(bg.Text("○", styles.FaintText))
		}
		b.WriteString(bg.Space())
	}

	// Current slide title when there is room left of the edge
	used := railPad + st.SlideCount*railDotStride
	if room := m.width - used - 3; room > 8 && m.deck != nil {
		title := truncate(m.deck.Slide(st.Index).Title, room)
		b.WriteString(bg.Space())
		b.WriteString(bg.Text(title, styles.MutedText))
	}

	return bg.Fill(b.String(), m.width)
}

// railShowsDots reports whether the dot strip fits the current width. The
// click handler consults the same answer so hits always match what was
// drawn.
func (m Model) railShowsDots() bool {
	return railPad+m.snapshot.SlideCount*railDotStride < m.width
}

// railHitTest maps a click column to a slide index, or -1 when the column
// is outside the dot strip.
func railHitTest(x, count int) int {
	if x < railPad {
		return -1
	}
	i := (x - railPad) / railDotStride
	if i < 0 || i >= count {
		return -1
	}
	return i
}
