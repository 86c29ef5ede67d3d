package tui

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-cwa-home/internal/service"
	"github.com/MKhiriev/go-cwa-home/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// NoConsentModel is shown for a positive result when the user has not
// agreed to share it. Leaving it asks whether to warn others after all.
type NoConsentModel struct {
	ctx        context.Context
	submission service.SubmissionService

	registration models.LocalRegistration
	loaded       bool
	errMsg       string

	showCancel bool
	cancel     confirmModel
}

func NewNoConsentModel(ctx context.Context, submission service.SubmissionService) *NoConsentModel {
	return &NoConsentModel{
		ctx:        ctx,
		submission: submission,
		cancel: confirmModel{
			title:    "Do you really want to cancel?",
			message:  "Your positive test result will not be shared and\nothers will not be warned.",
			yesLabel: "warn others",
			noLabel:  "back to home",
		},
	}
}

func (m *NoConsentModel) Init() tea.Cmd {
	m.loaded = false
	m.errMsg = ""
	m.showCancel = false
	return cmdLoadRegistration(m.ctx, m.submission)
}

func (m *NoConsentModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case registrationLoadedMsg:
		m.loaded = true
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.registration = msg.registration
		return m, nil
	case tea.KeyMsg:
		if m.showCancel {
			switch {
			case key.Matches(msg, keys.yes):
				m.showCancel = false
				return m, navigateCmd(models.NavWarnOthers)
			case key.Matches(msg, keys.no):
				m.showCancel = false
				return m, navigateHomeCmd
			}
			return m, nil
		}

		switch {
		case key.Matches(msg, keys.warn), key.Matches(msg, keys.enter):
			return m, navigateCmd(models.NavWarnOthers)
		case key.Matches(msg, keys.esc):
			m.showCancel = true
		}
	}

	return m, nil
}

func (m *NoConsentModel) View() string {
	var b strings.Builder

	b.WriteString("Your test result\n\n")
	switch {
	case !m.loaded:
		b.WriteString("Loading...")
	case m.errMsg != "":
		b.WriteString(errorStyle.Render(m.errMsg))
	default:
		b.WriteString(renderRegistration(m.registration))
	}

	b.WriteString("\n\nPlease warn others. Sharing your result is voluntary\n")
	b.WriteString("and helps to interrupt chains of infection.")

	if m.showCancel {
		b.WriteString("\n\n" + m.cancel.View())
	}

	return renderPage("POSITIVE TEST RESULT", b.String(), "w / enter: warn others │ esc: cancel")
}
