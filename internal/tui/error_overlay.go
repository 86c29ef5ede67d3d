package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// errorOverlayModel is a dismissable error box drawn under the current
// page. It is hidden while message is empty.
type errorOverlayModel struct {
	message string
}

func (m errorOverlayModel) visible() bool {
	return m.message != ""
}

func (m *errorOverlayModel) show(message string) {
	if message == "" {
		message = "unknown error"
	}
	m.message = message
}

// update reports whether msg was consumed. While visible the overlay takes
// every key; enter and esc dismiss it.
func (m *errorOverlayModel) update(msg tea.KeyMsg) bool {
	if !m.visible() {
		return false
	}
	if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
		m.message = ""
	}
	return true
}

func (m errorOverlayModel) View() string {
	if !m.visible() {
		return ""
	}
	return overlayBoxStyle.Render(errorStyle.Render("Error") + "\n\n" + m.message + "\n\nenter / esc close")
}
