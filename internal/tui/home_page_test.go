package tui

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-cwa-home/internal/home"
	"github.com/MKhiriev/go-cwa-home/internal/mock"
	"github.com/MKhiriev/go-cwa-home/internal/service"
	"github.com/MKhiriev/go-cwa-home/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func runeKey(r string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(r)}
}

var (
	enterKey = tea.KeyMsg{Type: tea.KeyEnter}
	escKey   = tea.KeyMsg{Type: tea.KeyEsc}
	tabKey   = tea.KeyMsg{Type: tea.KeyTab}
)

func newTestHome(t *testing.T, state models.SubmissionCardState) (*HomeModel, *mock.MockSubmissionService) {
	t.Helper()
	submission := mock.NewMockSubmissionService(gomock.NewController(t))
	m := NewHomeModel(context.Background(), submission)
	m.Update(boardMsg{board: home.NewBoard(state)})
	return m, submission
}

func registeredWith(state models.DeviceState, seen bool) models.SubmissionCardState {
	return models.SubmissionCardState{
		Registered:    true,
		ResultSeen:    seen,
		DeviceUIState: models.Success(state),
	}
}

func TestHomeModel_ActivateNavigatesToBoundTarget(t *testing.T) {
	tests := []struct {
		name     string
		state    models.SubmissionCardState
		control  home.Control
		wantPage string
		want     models.NavTarget
	}{
		{"unregistered opens registration", models.SubmissionCardState{}, home.PrimaryControl, pageRegister, models.NavSubmissionDispatcher},
		{"pending opens pending result", models.SubmissionCardState{Registered: true}, home.PrimaryControl, pageResult, models.NavTestResultPending},
		{"negative secondary control", registeredWith(models.PairedNegative, false), home.SecondaryControl, pageResult, models.NavTestResultNegative},
		{"invalid result", registeredWith(models.PairedError, false), home.PrimaryControl, pageResult, models.NavTestResultInvalid},
		{"seen positive", registeredWith(models.PairedPositive, true), home.PrimaryControl, pageNoConsent, models.NavPositiveOtherWarningNoConsent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, _ := newTestHome(t, tt.state)
			if tt.control == home.SecondaryControl {
				m.Update(tabKey)
			}

			_, cmd := m.Update(enterKey)
			require.NotNil(t, cmd)

			nav, ok := cmd().(NavigateTo)
			require.True(t, ok)
			assert.Equal(t, tt.wantPage, nav.Page)
			assert.Equal(t, targetMsg{target: tt.want}, nav.Payload)
		})
	}
}

func TestHomeModel_ReadyCardMarksResultSeen(t *testing.T) {
	m, submission := newTestHome(t, registeredWith(models.PairedPositive, false))
	submission.EXPECT().MarkResultSeen(gomock.Any()).Return(nil)

	_, cmd := m.Update(enterKey)
	require.NotNil(t, cmd)

	nav, ok := cmd().(NavigateTo)
	require.True(t, ok)
	assert.Equal(t, pageNoConsent, nav.Page)
}

func TestHomeModel_ReadyCardMarkFailureShowsError(t *testing.T) {
	m, submission := newTestHome(t, registeredWith(models.PairedPositive, false))
	submission.EXPECT().MarkResultSeen(gomock.Any()).Return(service.ErrNoTestRegistered)

	_, cmd := m.Update(enterKey)
	m.Update(cmd())

	assert.True(t, m.errorOverlay.visible())
	assert.Contains(t, m.View(), "No test is registered")
}

func TestHomeModel_FailedCardOpensRemoveDialog(t *testing.T) {
	m, submission := newTestHome(t, models.SubmissionCardState{
		Registered:    true,
		DeviceUIState: models.Failure[models.DeviceState](errors.New("boom")),
	})

	_, cmd := m.Update(enterKey)
	assert.Nil(t, cmd)
	require.True(t, m.showConfirm)
	assert.Contains(t, m.View(), "Remove test?")

	submission.EXPECT().RemoveTest(gomock.Any()).Return(nil)
	_, cmd = m.Update(runeKey("y"))
	require.NotNil(t, cmd)
	assert.False(t, m.showConfirm)

	m.Update(cmd())
	assert.False(t, m.busy)
	assert.Equal(t, "Test removed", m.status)
}

func TestHomeModel_RemoveDialogCancelled(t *testing.T) {
	m, _ := newTestHome(t, registeredWith(models.PairedNegative, false))

	m.Update(runeKey("d"))
	require.True(t, m.showConfirm)

	_, cmd := m.Update(runeKey("n"))
	assert.Nil(t, cmd)
	assert.False(t, m.showConfirm)
}

func TestHomeModel_RemoveNeedsRegisteredTest(t *testing.T) {
	m, _ := newTestHome(t, models.SubmissionCardState{})

	m.Update(runeKey("d"))

	assert.False(t, m.showConfirm)
}

func TestHomeModel_Refresh(t *testing.T) {
	m, submission := newTestHome(t, models.SubmissionCardState{Registered: true})
	submission.EXPECT().RefreshDeviceState(gomock.Any()).Return(service.ErrServerUnavailable)

	_, cmd := m.Update(runeKey("r"))
	require.NotNil(t, cmd)
	assert.True(t, m.busy)

	_, second := m.Update(runeKey("r"))
	assert.Nil(t, second, "refresh is not started twice")

	m.Update(cmd())
	assert.False(t, m.busy)
	assert.True(t, m.errorOverlay.visible())
	assert.Contains(t, m.errorOverlay.message, "unavailable")

	m.Update(escKey)
	assert.False(t, m.errorOverlay.visible())
}

func TestHomeModel_ViewFollowsBoard(t *testing.T) {
	m, _ := newTestHome(t, registeredWith(models.PairedNegative, false))
	assert.Contains(t, m.View(), "Negative")

	m.Update(boardMsg{board: home.NewBoard(models.SubmissionCardState{})})
	assert.Contains(t, m.View(), "Did you get tested?")
}

func TestHomeModel_LoadingBeforeFirstBoard(t *testing.T) {
	m := NewHomeModel(context.Background(), mock.NewMockSubmissionService(gomock.NewController(t)))

	_, cmd := m.Update(enterKey)

	assert.Nil(t, cmd)
	assert.Contains(t, m.View(), "Loading test status")
}

func TestHomeModel_MenuKeysNavigateToTargets(t *testing.T) {
	tests := map[string]models.NavTarget{
		"g": models.NavContactDiary,
		"i": models.NavRiskDetails,
		"s": models.NavSharing,
		"t": models.NavSettingsTracing,
		"o": models.NavInteropOnboarding,
	}

	for r, want := range tests {
		t.Run(r, func(t *testing.T) {
			m, _ := newTestHome(t, models.SubmissionCardState{})

			_, cmd := m.Update(runeKey(r))
			require.NotNil(t, cmd)

			nav, ok := cmd().(NavigateTo)
			require.True(t, ok)
			assert.Equal(t, pageTarget, nav.Page)
			assert.Equal(t, targetMsg{target: want}, nav.Payload)
		})
	}
}

func TestErrorOverlay(t *testing.T) {
	var overlay errorOverlayModel
	assert.False(t, overlay.visible())
	assert.Empty(t, overlay.View())
	assert.False(t, overlay.update(enterKey), "hidden overlay does not consume keys")

	overlay.show("")
	assert.True(t, overlay.visible())
	assert.Contains(t, overlay.View(), "unknown error")

	overlay.show("server unavailable")
	assert.True(t, overlay.update(runeKey("r")), "visible overlay swallows other keys")
	assert.True(t, overlay.visible())

	assert.True(t, overlay.update(escKey))
	assert.False(t, overlay.visible())
}
