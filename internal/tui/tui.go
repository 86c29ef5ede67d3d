// Package tui is the terminal front end of the home client. It renders the
// test card board computed by the home package and resolves card
// activations to pages.
package tui

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-cwa-home/internal/home"
	"github.com/MKhiriev/go-cwa-home/internal/logger"
	"github.com/MKhiriev/go-cwa-home/internal/service"
	"github.com/MKhiriev/go-cwa-home/models"
	tea "github.com/charmbracelet/bubbletea"
)

var ErrUserQuit = errors.New("user quit")

type TUI struct {
	submission service.SubmissionService
	presenter  *home.Presenter
	buildInfo  models.AppBuildInfo
	logger     *logger.Logger
}

func New(submission service.SubmissionService, buildInfo models.AppBuildInfo, logger *logger.Logger) *TUI {
	return &TUI{
		submission: submission,
		presenter:  home.NewPresenter(logger.WithComponent("presenter")),
		buildInfo:  buildInfo,
		logger:     logger,
	}
}

// Run shows the home screen until the user quits or ctx is done. Boards are
// pushed into the program by the presenter, which follows the submission
// state stream.
func (t *TUI) Run(parent context.Context) error {
	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	root := NewRootModel(ctx, t.submission, t.pages(ctx), pageHome, t.buildInfo)
	program := tea.NewProgram(root, tea.WithAltScreen(), tea.WithContext(ctx))

	states, unsubscribe := t.submission.Subscribe()
	defer unsubscribe()

	presenterDone := make(chan struct{})
	go func() {
		defer close(presenterDone)
		t.presenter.Run(ctx, states, func(board home.Board) {
			program.Send(boardMsg{board: board})
		})
	}()

	finalModel, err := program.Run()
	cancel()
	<-presenterDone

	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && parent.Err() != nil {
			return nil
		}
		return fmt.Errorf("run tui: %w", err)
	}

	if result, ok := finalModel.(RootModel); ok && result.QuitByUser() {
		return ErrUserQuit
	}

	return nil
}

func (t *TUI) pages(ctx context.Context) map[string]tea.Model {
	return map[string]tea.Model{
		pageHome:      NewHomeModel(ctx, t.submission),
		pageRegister:  NewRegisterModel(ctx, t.submission),
		pageResult:    NewResultModel(ctx, t.submission),
		pageNoConsent: NewNoConsentModel(ctx, t.submission),
		pageTarget:    NewTargetModel(),
	}
}
