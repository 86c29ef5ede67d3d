package tui

import (
	"github.com/MKhiriev/go-cwa-home/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type keyMap struct {
	up      key.Binding
	down    key.Binding
	tab     key.Binding
	enter   key.Binding
	esc     key.Binding
	quit    key.Binding
	refresh key.Binding
	remove  key.Binding
	copy    key.Binding
	warn    key.Binding
	version key.Binding
	yes     key.Binding
	no      key.Binding

	// home menu
	diary    key.Binding
	risk     key.Binding
	sharing  key.Binding
	settings key.Binding
	interop  key.Binding
}

var keys = keyMap{
	up:      key.NewBinding(key.WithKeys("up", "k")),
	down:    key.NewBinding(key.WithKeys("down", "j")),
	tab:     key.NewBinding(key.WithKeys("tab", "shift+tab")),
	enter:   key.NewBinding(key.WithKeys("enter")),
	esc:     key.NewBinding(key.WithKeys("esc")),
	quit:    key.NewBinding(key.WithKeys("q")),
	refresh: key.NewBinding(key.WithKeys("r")),
	remove:  key.NewBinding(key.WithKeys("d")),
	copy:    key.NewBinding(key.WithKeys("c")),
	warn:    key.NewBinding(key.WithKeys("w")),
	version: key.NewBinding(key.WithKeys("v")),
	yes:     key.NewBinding(key.WithKeys("y")),
	no:      key.NewBinding(key.WithKeys("n")),

	diary:    key.NewBinding(key.WithKeys("g")),
	risk:     key.NewBinding(key.WithKeys("i")),
	sharing:  key.NewBinding(key.WithKeys("s")),
	settings: key.NewBinding(key.WithKeys("t")),
	interop:  key.NewBinding(key.WithKeys("o")),
}

// menuTargets binds the home menu entries to screens that are reached by
// navigation only.
var menuTargets = []struct {
	binding key.Binding
	target  models.NavTarget
}{
	{keys.diary, models.NavContactDiary},
	{keys.risk, models.NavRiskDetails},
	{keys.sharing, models.NavSharing},
	{keys.settings, models.NavSettingsTracing},
	{keys.interop, models.NavInteropOnboarding},
}

func menuTarget(msg tea.KeyMsg) (models.NavTarget, bool) {
	for _, entry := range menuTargets {
		if key.Matches(msg, entry.binding) {
			return entry.target, true
		}
	}
	return "", false
}
