package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-cwa-home/internal/home"
	"github.com/MKhiriev/go-cwa-home/internal/service"
	"github.com/MKhiriev/go-cwa-home/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type cardContent struct {
	title  string
	body   string
	button string
}

var cardContents = map[models.Card]cardContent{
	models.UnregisteredCard: {
		title:  "Did you get tested?",
		body:   "Register your test to receive the result on this device.",
		button: "Next steps",
	},
	models.PendingCard: {
		title:  "Your test result is not available yet",
		body:   "The evaluation of your test is not complete yet.",
		button: "Show test",
	},
	models.NegativeCard: {
		title:  "Negative",
		body:   "The laboratory result shows no verification that you\nhave coronavirus SARS-CoV-2.",
		button: "Show test",
	},
	models.InvalidCard: {
		title:  "Error",
		body:   "Your test could not be evaluated.",
		button: "Show test",
	},
	models.PositiveCard: {
		title:  "Positive",
		body:   "You were tested positive. Please help by warning others.",
		button: "Continue",
	},
	models.FailedCard: {
		title:  "Test result could not be retrieved",
		body:   "Your test is no longer valid or the server could not be\nreached. Remove the test to register a new one.",
		button: "Remove test",
	},
	models.ReadyCard: {
		title:  "Your result is available",
		body:   "Your test result was sent to this device.",
		button: "Retrieve result",
	},
}

const menuHelp = "g: contact diary │ i: risk details │ s: share │ t: tracing settings │ o: interoperability"

// HomeModel renders the home board and dispatches card activations.
type HomeModel struct {
	ctx        context.Context
	submission service.SubmissionService

	board    home.Board
	hasBoard bool
	control  home.Control

	spinner spinner.Model
	busy    bool
	status  string

	errorOverlay errorOverlayModel
	showConfirm  bool
	confirm      confirmModel
}

func NewHomeModel(ctx context.Context, submission service.SubmissionService) *HomeModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	return &HomeModel{
		ctx:        ctx,
		submission: submission,
		spinner:    s,
	}
}

func (m *HomeModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m *HomeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case boardMsg:
		m.board = msg.board
		m.hasBoard = true
		return m, nil
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case actionDoneMsg:
		m.busy = false
		if msg.err != nil {
			m.showErrorf(humanizeError(msg.err))
			return m, nil
		}
		m.status = msg.status
		return m, cmdClearStatus()
	case copiedMsg:
		m.status = "Registration token copied to clipboard"
		return m, cmdClearStatus()
	case clearStatusMsg:
		m.status = ""
		return m, nil
	case tea.KeyMsg:
		return m.updateKeys(msg)
	}

	return m, nil
}

func (m *HomeModel) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.errorOverlay.update(msg) {
		return m, nil
	}
	if m.showConfirm {
		switch {
		case key.Matches(msg, keys.yes):
			m.showConfirm = false
			m.busy = true
			return m, m.cmdRemoveTest()
		case key.Matches(msg, keys.no), key.Matches(msg, keys.esc):
			m.showConfirm = false
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	case key.Matches(msg, keys.up), key.Matches(msg, keys.down), key.Matches(msg, keys.tab):
		m.toggleControl()
	case key.Matches(msg, keys.enter):
		if !m.hasBoard {
			return m, nil
		}
		return m, m.activate()
	case key.Matches(msg, keys.refresh):
		if m.busy {
			return m, nil
		}
		m.busy = true
		return m, m.cmdRefresh()
	case key.Matches(msg, keys.remove):
		if m.registered() {
			m.openRemoveDialog()
		}
	case key.Matches(msg, keys.copy):
		if m.registered() {
			return m, m.cmdCopyToken()
		}
	default:
		if target, ok := menuTarget(msg); ok {
			return m, navigateCmd(target)
		}
	}

	return m, nil
}

func (m *HomeModel) View() string {
	var b strings.Builder

	header := "Corona-Warn home"
	if m.busy {
		header += "  " + m.spinner.View()
	}

	if !m.hasBoard {
		b.WriteString(m.spinner.View() + " Loading test status...")
		return renderPage(header, b.String(), "q: quit")
	}

	b.WriteString(m.renderCard())

	if m.status != "" {
		b.WriteString("\n\n" + statusStyle.Render(m.status))
	}
	if m.showConfirm {
		b.WriteString("\n\n" + m.confirm.View())
	}
	if m.errorOverlay.visible() {
		b.WriteString("\n\n" + m.errorOverlay.View())
	}

	hotKeys := "enter: open │ tab: switch control │ r: refresh │ v: version │ q: quit"
	if m.registered() {
		hotKeys = "enter: open │ tab: switch control │ r: refresh │ c: copy token │ d: remove test │ v: version │ q: quit"
	}
	hotKeys += "\n" + menuHelp

	return renderPage(header, b.String(), hotKeys)
}

func (m *HomeModel) renderCard() string {
	card := m.board.Visible
	content, ok := cardContents[card]
	if !ok {
		content = cardContent{title: card.String()}
	}

	title := titleStyle.Render(content.title)
	if card == models.PendingCard {
		title = m.spinner.View() + " " + title
	}

	primary := buttonStyle.Render("Open card")
	secondary := buttonStyle.Render(content.button)
	if m.control == home.PrimaryControl {
		primary = focusedButtonStyle.Render("Open card")
	} else {
		secondary = focusedButtonStyle.Render(content.button)
	}

	body := title + "\n\n" + content.body + "\n\n" + lipgloss.JoinHorizontal(lipgloss.Top, primary, " ", secondary)
	return cardStyleFor(card).Render(body)
}

func (m *HomeModel) registered() bool {
	return m.hasBoard && m.board.Visible != models.UnregisteredCard
}

func (m *HomeModel) toggleControl() {
	if m.control == home.PrimaryControl {
		m.control = home.SecondaryControl
		return
	}
	m.control = home.PrimaryControl
}

// activate resolves the visible card's target through the board. The remove
// test target opens the dialog in place; an available result is marked as
// seen before it is opened.
func (m *HomeModel) activate() tea.Cmd {
	var target models.NavTarget
	if err := m.board.Activate(m.board.Visible, m.control, func(t models.NavTarget) { target = t }); err != nil {
		m.showErrorf(err.Error())
		return nil
	}

	switch target {
	case models.NavRemoveTest:
		m.openRemoveDialog()
		return nil
	case models.NavTestResultAvailable:
		return m.cmdOpenAvailableResult(target)
	}

	return navigateCmd(target)
}

func (m *HomeModel) openRemoveDialog() {
	m.showConfirm = true
	m.confirm = newRemoveTestDialog()
}

func (m *HomeModel) showErrorf(message string) {
	m.errorOverlay.show(message)
}

func (m *HomeModel) cmdRefresh() tea.Cmd {
	ctx := m.ctx
	submission := m.submission
	return func() tea.Msg {
		err := submission.RefreshDeviceState(ctx)
		return actionDoneMsg{status: "Test status updated", err: err}
	}
}

func (m *HomeModel) cmdRemoveTest() tea.Cmd {
	ctx := m.ctx
	submission := m.submission
	return func() tea.Msg {
		err := submission.RemoveTest(ctx)
		return actionDoneMsg{status: "Test removed", err: err}
	}
}

func (m *HomeModel) cmdOpenAvailableResult(target models.NavTarget) tea.Cmd {
	ctx := m.ctx
	submission := m.submission
	return func() tea.Msg {
		if err := submission.MarkResultSeen(ctx); err != nil {
			return actionDoneMsg{err: err}
		}
		return NavigateTo{Page: pageForTarget(target), Payload: targetMsg{target: target}}
	}
}

func (m *HomeModel) cmdCopyToken() tea.Cmd {
	ctx := m.ctx
	submission := m.submission
	return func() tea.Msg {
		token, err := submission.RegistrationToken(ctx)
		if err != nil {
			return actionDoneMsg{err: err}
		}
		if err = clipboard.WriteAll(token); err != nil {
			return actionDoneMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
