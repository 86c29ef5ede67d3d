// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package home

import (
	"context"

	"github.com/MKhiriev/go-cwa-home/internal/logger"
	"github.com/MKhiriev/go-cwa-home/models"
)

// RenderFunc receives each freshly computed board.
type RenderFunc func(Board)

// Presenter turns a stream of submission states into boards.
type Presenter struct {
	logger *logger.Logger
}

func NewPresenter(logger *logger.Logger) *Presenter {
	return &Presenter{logger: logger}
}

// Run reads states until ctx is done or the channel is closed and calls
// render with a new board for each one, in the order they arrive. Run blocks;
// render is called on the caller's goroutine.
func (p *Presenter) Run(ctx context.Context, states <-chan models.SubmissionCardState, render RenderFunc) {
	for {
		select {
		case <-ctx.Done():
			return
		case state, ok := <-states:
			if !ok {
				return
			}

			board := NewBoard(state)
			p.logger.Debug().
				Str("visible", board.Visible.String()).
				Str("result_target", board.Result.Target.String()).
				Str("fetch", state.DeviceUIState.Status().String()).
				Msg("home board recomputed")

			render(board)
		}
	}
}
