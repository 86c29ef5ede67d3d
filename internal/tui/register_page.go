package tui

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-cwa-home/internal/service"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type registeredMsg struct {
	err error
}

// RegisterModel pairs a test by the code printed on it (the QR code
// content).
type RegisterModel struct {
	ctx        context.Context
	submission service.SubmissionService

	input      textinput.Model
	submitting bool
	errMsg     string
}

func NewRegisterModel(ctx context.Context, submission service.SubmissionService) *RegisterModel {
	input := textinput.New()
	input.Placeholder = "test code, e.g. 3D6D08-3567F3F2-4DCF-43A3-8737-4CD1F87D6FDA"
	input.CharLimit = 128
	input.Width = 60

	return &RegisterModel{
		ctx:        ctx,
		submission: submission,
		input:      input,
	}
}

func (m *RegisterModel) Init() tea.Cmd {
	m.input.SetValue("")
	m.errMsg = ""
	m.submitting = false
	return m.input.Focus()
}

func (m *RegisterModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case registeredMsg:
		m.submitting = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		return m, navigateHomeCmd
	case tea.KeyMsg:
		if m.submitting {
			return m, nil
		}
		switch {
		case key.Matches(msg, keys.esc):
			return m, navigateHomeCmd
		case key.Matches(msg, keys.enter):
			guid := strings.TrimSpace(m.input.Value())
			if guid == "" {
				m.errMsg = "Enter the code of your test"
				return m, nil
			}
			m.errMsg = ""
			m.submitting = true
			return m, m.cmdRegister(guid)
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *RegisterModel) View() string {
	var b strings.Builder

	b.WriteString("Enter the code of your test to receive the result here.\n\n")
	b.WriteString(m.input.View())

	if m.submitting {
		b.WriteString("\n\nRegistering test...")
	}
	if m.errMsg != "" {
		b.WriteString("\n\n" + errorStyle.Render(m.errMsg))
	}

	return renderPage("REGISTER TEST", b.String(), "enter: register │ esc: back")
}

// cmdRegister pairs the test and fetches its first state right away.
func (m *RegisterModel) cmdRegister(guid string) tea.Cmd {
	ctx := m.ctx
	submission := m.submission
	return func() tea.Msg {
		if err := submission.RegisterTest(ctx, guid); err != nil {
			return registeredMsg{err: err}
		}
		// the refresh result reaches the home page through the board
		_ = submission.RefreshDeviceState(ctx)
		return registeredMsg{}
	}
}
