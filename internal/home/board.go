// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package home

import (
	"fmt"

	"github.com/MKhiriev/go-cwa-home/models"
)

// Control identifies which of a card's two activation controls was used.
type Control int

const (
	// PrimaryControl is the card body.
	PrimaryControl Control = iota
	// SecondaryControl is the button inside the card.
	SecondaryControl
)

// NavigateFunc is called with the target a card leads to.
type NavigateFunc func(models.NavTarget)

// Board is the set of test cards the home screen can show, each bound to its
// navigation target, plus the one that is currently visible.
type Board struct {
	// Visible is the card the user sees.
	Visible models.Card
	// Result is the directive for the result card (pending, negative,
	// invalid).
	Result models.Directive

	bindings map[models.Card]models.NavTarget
}

// NewBoard binds every test card for state. It is recomputed from scratch on
// every emission, so a Board never carries anything over from a previous
// state.
func NewBoard(state models.SubmissionCardState) Board {
	result := SelectTestResultDirective(state.DeviceUIState)

	bindings := map[models.Card]models.NavTarget{
		models.UnregisteredCard: models.NavSubmissionDispatcher,
		models.PositiveCard:     models.NavPositiveOtherWarningNoConsent,
		models.FailedCard:       models.NavRemoveTest,
		models.ReadyCard:        models.NavTestResultAvailable,
	}
	bindings[result.Card] = result.Target

	return Board{
		Visible:  VisibleCard(state),
		Result:   result,
		bindings: bindings,
	}
}

// VisibleCard decides which test card is displayed.
//
// A failed fetch shows the failed card here, while the result card's own
// target still resolves to pending through [SelectTestResultDirective].
func VisibleCard(state models.SubmissionCardState) models.Card {
	if !state.Registered {
		return models.UnregisteredCard
	}

	if state.DeviceUIState.IsFailure() {
		return models.FailedCard
	}

	if deviceState, ok := state.DeviceUIState.Value(); ok {
		switch {
		case deviceState == models.Unregistered:
			return models.UnregisteredCard
		case deviceState.IsPositive() && !state.ResultSeen:
			return models.ReadyCard
		case deviceState.IsPositive():
			return models.PositiveCard
		}
	}

	return SelectTestResultDirective(state.DeviceUIState).Card
}

// Target returns the navigation target bound to card.
func (b Board) Target(card models.Card) (models.NavTarget, bool) {
	target, ok := b.bindings[card]
	return target, ok
}

// VisibleDirective returns the visible card with its target.
func (b Board) VisibleDirective() models.Directive {
	return models.Directive{Card: b.Visible, Target: b.bindings[b.Visible]}
}

// Activate handles a click on one of card's controls. Both controls of a
// card navigate to the same target.
func (b Board) Activate(card models.Card, control Control, navigate NavigateFunc) error {
	if control != PrimaryControl && control != SecondaryControl {
		return fmt.Errorf("%w: %d", ErrUnknownControl, control)
	}

	target, ok := b.bindings[card]
	if !ok {
		return fmt.Errorf("%w: %s", ErrCardNotBound, card)
	}

	navigate(target)
	return nil
}
