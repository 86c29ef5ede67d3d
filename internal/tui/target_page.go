package tui

import (
	"github.com/MKhiriev/go-cwa-home/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// TargetModel stands in for screens that are outside of the home client.
type TargetModel struct {
	target models.NavTarget
}

func NewTargetModel() *TargetModel {
	return &TargetModel{}
}

func (m *TargetModel) Init() tea.Cmd {
	return nil
}

func (m *TargetModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case targetMsg:
		m.target = msg.target
	case tea.KeyMsg:
		if key.Matches(msg, keys.esc) || key.Matches(msg, keys.enter) {
			return m, navigateHomeCmd
		}
	}
	return m, nil
}

func (m *TargetModel) View() string {
	body := "Opened: " + valueOrNA(m.target.String()) + "\n\nThis screen is not available in the home client."
	return renderPage("NAVIGATION", body, "esc: back to home")
}
