package tui

import (
	"github.com/MKhiriev/go-cwa-home/internal/home"
	"github.com/MKhiriev/go-cwa-home/models"
	tea "github.com/charmbracelet/bubbletea"
)

// NavigateTo switches the active page. Payload, when set, is delivered to
// the new page right after its Init command.
type NavigateTo struct {
	Page    string
	Payload tea.Msg
}

// boardMsg carries a freshly computed home board from the presenter.
type boardMsg struct {
	board home.Board
}

// targetMsg tells a page which navigation target opened it.
type targetMsg struct {
	target models.NavTarget
}

type actionDoneMsg struct {
	status string
	err    error
}

type registrationLoadedMsg struct {
	registration models.LocalRegistration
	err          error
}

type serverVersionMsg struct {
	version string
	err     error
}

type copiedMsg struct{}

type clearStatusMsg struct{}
