package tui

import (
	"github.com/MKhiriev/go-cwa-home/models"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	pageHome      = "home"
	pageRegister  = "register"
	pageResult    = "result"
	pageNoConsent = "no-consent"
	pageTarget    = "target"
)

// pageForTarget resolves a navigation target to the page that renders it.
// Targets without their own page open the generic target page.
func pageForTarget(target models.NavTarget) string {
	switch target {
	case models.NavHome:
		return pageHome
	case models.NavSubmissionDispatcher:
		return pageRegister
	case models.NavTestResultPending, models.NavTestResultNegative, models.NavTestResultInvalid:
		return pageResult
	case models.NavTestResultAvailable, models.NavPositiveOtherWarningNoConsent:
		return pageNoConsent
	default:
		return pageTarget
	}
}

func navigateCmd(target models.NavTarget) tea.Cmd {
	return func() tea.Msg {
		return NavigateTo{Page: pageForTarget(target), Payload: targetMsg{target: target}}
	}
}

func navigateHomeCmd() tea.Msg {
	return NavigateTo{Page: pageHome}
}
