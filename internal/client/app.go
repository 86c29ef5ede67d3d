package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-cwa-home/internal/logger"
	"github.com/MKhiriev/go-cwa-home/internal/service"
	"github.com/MKhiriev/go-cwa-home/internal/tui"
	"github.com/MKhiriev/go-cwa-home/internal/workers"
)

type App struct {
	services *service.ClientServices
	workers  *workers.Workers
	ui       UI
	logger   *logger.Logger
}

func NewApp(services *service.ClientServices, ui UI, logger *logger.Logger) (*App, error) {
	if services == nil || services.SubmissionService == nil || services.RefreshJob == nil {
		return nil, ErrNoClientServices
	}
	if ui == nil {
		return nil, ErrNoUI
	}

	return &App{
		services: services,
		workers:  workers.NewWorkers(services.RefreshJob),
		ui:       ui,
		logger:   logger,
	}, nil
}

// Run publishes the cached test state, keeps it fresh in the background and
// blocks in the UI. Leaving the UI with Ctrl+C is a normal exit.
func (a *App) Run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := a.services.SubmissionService.Restore(ctx); err != nil {
		return fmt.Errorf("restore test registration: %w", err)
	}

	a.workers.Start(ctx)
	defer a.workers.Stop()

	a.logger.Info().Msg("home client started")

	err := a.ui.Run(ctx)
	if errors.Is(err, tui.ErrUserQuit) {
		a.logger.Info().Msg("home client closed by user")
		return nil
	}

	return err
}
