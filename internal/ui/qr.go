package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	qrcode "github.com/skip2/go-qrcode"
)

// qrModal shows a URL as a scannable QR code. It backs both the remote
// control overlay and the slide link overlay.
type qrModal struct {
	title     string
	url       string
	emptyText string
	emptyHint string
}

func newRemoteModal(url string) qrModal {
	return qrModal{
		title:     "Remote Control",
		url:       url,
		emptyText: "Remote control is disabled.",
		emptyHint: "Set remote_bind in config.toml to enable it.",
	}
}

func newLinkModal(url string) qrModal {
	return qrModal{
		title:     "Slide Link",
		url:       url,
		emptyText: "This slide has no link.",
	}
}

// Update implements Modal.
func (q qrModal) Update(msg tea.Msg, keys keyMap) (Modal, tea.Cmd, bool) {
	if _, ok := msg.(tea.KeyMsg); ok {
		return q, nil, true
	}
	return q, nil, false
}

// View implements Modal.
func (q qrModal) View(theme Theme, width, height int) string {
	styles := theme.Styles()

	var b strings.Builder
	b.WriteString(styles.Text.Bold(true).Render(q.title))
	b.WriteString("\n\n")

	if q.url == "" {
		b.WriteString(styles.MutedText.Render(q.emptyText))
		if q.emptyHint != "" {
			b.WriteString("\n")
			b.WriteString(styles.FaintText.Render(q.emptyHint))
		}
		return placeModal(theme, b.String(), width, height)
	}

	code, err := qrcode.New(q.url, qrcode.Medium)
	if err != nil {
		b.WriteString(styles.DangerText.Render("QR encode failed: " + err.Error()))
		b.WriteString("\n")
		b.WriteString(styles.AccentText.Render(q.url))
		return placeModal(theme, b.String(), width, height)
	}

	b.WriteString(code.ToSmallString(false))
	b.WriteString("\n")
	b.WriteString(styles.AccentText.Render(q.url))

	return placeModal(theme, b.String(), width, height)
}
