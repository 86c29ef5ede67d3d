package tui

import (
	"github.com/MKhiriev/go-cwa-home/models"
	"github.com/charmbracelet/lipgloss"
)

var (
	appStyle        = lipgloss.NewStyle().Padding(1, 2)
	titleStyle      = lipgloss.NewStyle().Bold(true)
	helpStyle       = lipgloss.NewStyle().Faint(true)
	errorStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	statusStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	overlayBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)

	cardStyle          = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 2).Width(56)
	buttonStyle        = lipgloss.NewStyle().Padding(0, 1).Border(lipgloss.NormalBorder())
	focusedButtonStyle = buttonStyle.Bold(true).BorderForeground(lipgloss.Color("12"))
)

// cardColors is the accent of each test card.
var cardColors = map[models.Card]lipgloss.Color{
	models.UnregisteredCard: lipgloss.Color("12"),
	models.PendingCard:      lipgloss.Color("8"),
	models.NegativeCard:     lipgloss.Color("10"),
	models.InvalidCard:      lipgloss.Color("11"),
	models.PositiveCard:     lipgloss.Color("9"),
	models.FailedCard:       lipgloss.Color("11"),
	models.ReadyCard:        lipgloss.Color("13"),
}

func cardStyleFor(card models.Card) lipgloss.Style {
	color, ok := cardColors[card]
	if !ok {
		return cardStyle
	}
	return cardStyle.BorderForeground(color)
}
