package tui

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-cwa-home/internal/service"
	"github.com/MKhiriev/go-cwa-home/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

var resultTitles = map[models.NavTarget]string{
	models.NavTestResultPending:  "TEST RESULT PENDING",
	models.NavTestResultNegative: "TEST RESULT NEGATIVE",
	models.NavTestResultInvalid:  "TEST RESULT INVALID",
}

// ResultModel shows the details of the paired test for the pending,
// negative and invalid result targets.
type ResultModel struct {
	ctx        context.Context
	submission service.SubmissionService

	target       models.NavTarget
	registration models.LocalRegistration
	loaded       bool
	errMsg       string

	showConfirm bool
	confirm     confirmModel
}

func NewResultModel(ctx context.Context, submission service.SubmissionService) *ResultModel {
	return &ResultModel{
		ctx:        ctx,
		submission: submission,
		target:     models.NavTestResultPending,
	}
}

func (m *ResultModel) Init() tea.Cmd {
	m.loaded = false
	m.errMsg = ""
	m.showConfirm = false
	return cmdLoadRegistration(m.ctx, m.submission)
}

func (m *ResultModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case targetMsg:
		m.target = msg.target
		return m, nil
	case registrationLoadedMsg:
		m.loaded = true
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.registration = msg.registration
		return m, nil
	case actionDoneMsg:
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		return m, navigateHomeCmd
	case tea.KeyMsg:
		if m.showConfirm {
			switch {
			case key.Matches(msg, keys.yes):
				m.showConfirm = false
				return m, m.cmdRemoveTest()
			case key.Matches(msg, keys.no), key.Matches(msg, keys.esc):
				m.showConfirm = false
			}
			return m, nil
		}

		switch {
		case key.Matches(msg, keys.esc):
			return m, navigateHomeCmd
		case key.Matches(msg, keys.remove):
			m.showConfirm = true
			m.confirm = newRemoveTestDialog()
		}
	}

	return m, nil
}

func (m *ResultModel) View() string {
	title, ok := resultTitles[m.target]
	if !ok {
		title = "TEST RESULT"
	}

	var b strings.Builder
	switch {
	case !m.loaded:
		b.WriteString("Loading...")
	case m.errMsg != "":
		b.WriteString(errorStyle.Render(m.errMsg))
	default:
		b.WriteString(renderRegistration(m.registration))
	}

	if m.showConfirm {
		b.WriteString("\n\n" + m.confirm.View())
	}

	return renderPage(title, b.String(), "d: remove test │ esc: back")
}

func (m *ResultModel) cmdRemoveTest() tea.Cmd {
	ctx := m.ctx
	submission := m.submission
	return func() tea.Msg {
		return actionDoneMsg{status: "Test removed", err: submission.RemoveTest(ctx)}
	}
}

func renderRegistration(registration models.LocalRegistration) string {
	var b strings.Builder

	b.WriteString("Result: ")
	b.WriteString(describeState(registration.LastState))
	b.WriteString("\n")
	b.WriteString("Registered on: ")
	b.WriteString(formatDate(&registration.RegisteredAt))
	b.WriteString("\n")
	b.WriteString("Result received on: ")
	b.WriteString(formatDate(registration.ResultReceivedAt))

	return b.String()
}

func describeState(state models.DeviceState) string {
	switch state {
	case models.PairedNoResult, "":
		return "not available yet"
	case models.PairedNegative:
		return "SARS-CoV-2 negative"
	case models.PairedPositive, models.PairedPositiveTelekom:
		return "SARS-CoV-2 positive"
	case models.PairedError:
		return "could not be evaluated"
	case models.PairedRedeemed:
		return "expired"
	default:
		return state.String()
	}
}

func cmdLoadRegistration(ctx context.Context, submission service.SubmissionService) tea.Cmd {
	return func() tea.Msg {
		registration, err := submission.LocalRegistration(ctx)
		return registrationLoadedMsg{registration: registration, err: err}
	}
}
