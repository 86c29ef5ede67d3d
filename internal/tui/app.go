package tui

import (
	"context"

	"github.com/MKhiriev/go-cwa-home/internal/service"
	"github.com/MKhiriev/go-cwa-home/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// RootModel is a TUI router:
// 1) keeps the active page
// 2) handles global Ctrl+C quit and the build info window
// 3) handles NavigateTo messages
// 4) keeps the home page fed with boards while another page is open
// 5) delegates all other messages to the active page
type RootModel struct {
	ctx        context.Context
	submission service.SubmissionService

	pages   map[string]tea.Model
	current string

	quitByUser bool

	buildInfo     models.AppBuildInfo
	serverVersion string
	showBuildInfo bool
}

// NewRootModel registers all pages and opens startPage.
func NewRootModel(ctx context.Context, submission service.SubmissionService, pages map[string]tea.Model, startPage string, buildInfo models.AppBuildInfo) RootModel {
	return RootModel{
		ctx:        ctx,
		submission: submission,
		pages:      pages,
		current:    startPage,
		buildInfo:  buildInfo,
	}
}

func (r RootModel) Init() tea.Cmd {
	page, ok := r.pages[r.current]
	if !ok {
		return nil
	}
	return page.Init()
}

func (r RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case msg.String() == "ctrl+c":
			r.quitByUser = true
			return r, tea.Quit
		case key.Matches(msg, keys.version) && r.current == pageHome:
			r.showBuildInfo = !r.showBuildInfo
			if r.showBuildInfo {
				return r, r.cmdServerVersion()
			}
			return r, nil
		case key.Matches(msg, keys.esc) && r.showBuildInfo:
			r.showBuildInfo = false
			return r, nil
		}

		if r.showBuildInfo {
			return r, nil
		}

	case serverVersionMsg:
		if msg.err != nil {
			r.serverVersion = humanizeError(msg.err)
			return r, nil
		}
		r.serverVersion = msg.version
		return r, nil

	case NavigateTo:
		next, exists := r.pages[msg.Page]
		if !exists {
			return r, nil
		}

		r.showBuildInfo = false
		r.current = msg.Page

		if msg.Payload != nil {
			payload := msg.Payload
			return r, tea.Batch(next.Init(), func() tea.Msg { return payload })
		}
		return r, next.Init()

	case boardMsg:
		homePage, ok := r.pages[pageHome]
		if !ok {
			return r, nil
		}
		updated, cmd := homePage.Update(msg)
		r.pages[pageHome] = updated
		return r, cmd
	}

	page, ok := r.pages[r.current]
	if !ok {
		return r, nil
	}

	updated, cmd := page.Update(msg)
	r.pages[r.current] = updated
	return r, cmd
}

func (r RootModel) View() string {
	if r.showBuildInfo {
		return appStyle.Render(renderBuildInfoWindow(r.buildInfo, r.serverVersion))
	}
	page, ok := r.pages[r.current]
	if !ok {
		return renderPage("CWA", "", "")
	}
	return appStyle.Render(page.View())
}

// QuitByUser reports whether the program ended on Ctrl+C.
func (r RootModel) QuitByUser() bool {
	return r.quitByUser
}

func (r RootModel) cmdServerVersion() tea.Cmd {
	ctx := r.ctx
	submission := r.submission
	return func() tea.Msg {
		version, err := submission.ServerVersion(ctx)
		return serverVersionMsg{version: version, err: err}
	}
}
