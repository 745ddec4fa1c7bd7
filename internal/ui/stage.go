package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderStage renders the slide content area at exactly stageHeight rows.
func (m Model) renderStage(stageHeight int) string {
	styles := m.theme.Styles()
	st := m.snapshot

	if st.Inert() {
		empty := styles.MutedText.Render("This deck has no slides.") + "\n\n" +
			styles.FaintText.Render("lantern -init writes a starter manifest.")
		return m.placeStage(empty, stageHeight)
	}

	slide := m.deck.Slide(st.Index)

	measure := min(StageTextWidth, m.width-8)
	if measure < 16 {
		measure = 16
	}

	var text strings.Builder
	text.WriteString(styles.SlideTitle.Render(slide.Title))
	if body := strings.TrimSpace(slide.Body); body != "" {
		text.WriteString("\n\n")
		text.WriteString(styles.Text.Width(measure).Render(body))
	}
	if slide.Link != "" {
		text.WriteString("\n\n")
		text.WriteString(styles.InfoText.Render("↗ " + truncateMiddle(slide.Link, measure-2)))
	}
	textBlock := text.String()

	content := textBlock
	if art := m.arts[st.Index]; art != nil {
		split := m.width >= LayoutSplitWidth
		artBlock := art.Render(m.artBox(stageHeight, split))
		if artBlock != "" {
			if split {
				content = lipgloss.JoinHorizontal(lipgloss.Center, textBlock, "    ", artBlock)
			} else {
				content = lipgloss.JoinVertical(lipgloss.Center, textBlock, "", artBlock)
			}
		}
	}

	if hint := m.dragHint(styles); hint != "" {
		content = lipgloss.JoinVertical(lipgloss.Center, content, "", hint)
	}

	return m.placeStage(content, stageHeight)
}

// artBox sizes the image cell budget for the current layout.
func (m Model) artBox(stageHeight int, split bool) (int, int) {
	maxW := m.width - 8
	if split {
		maxW = m.width/2 - 8
	} else if maxW > 64 {
		maxW = 64
	}
	maxH := stageHeight - 6
	return maxW, maxH
}

// dragHint names where releasing the current drag would land.
func (m Model) dragHint(styles Styles) string {
	if !m.dragging {
		return ""
	}
	switch {
	case m.dragOffset < 0 && m.snapshot.CanGoNext():
		return styles.AccentText.Render("⟩⟩ release for next")
	case m.dragOffset > 0 && m.snapshot.CanGoPrevious():
		return styles.AccentText.Render("⟨⟨ release for previous")
	default:
		return styles.FaintText.Render("·· dragging ··")
	}
}

func (m Model) placeStage(content string, stageHeight int) string {
	return lipgloss.Place(
		m.width,
		stageHeight,
		lipgloss.Center,
		lipgloss.Center,
		content,
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceBackground(lipgloss.Color(m.theme.Background)),
	)
}
