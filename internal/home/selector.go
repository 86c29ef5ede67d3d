// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package home decides what the home screen shows for the registered test
// and where each test card leads when activated.
//
// Everything here is pure: the functions take the latest submission state
// and return values, so callers can recompute on every emission and apply
// results in order without coordinating.
package home

import "github.com/MKhiriev/go-cwa-home/models"

// SelectTestResultDirective picks the card shown for a registered test that
// is not positive, together with the target both of its controls navigate to.
//
// Pending and failed fetches both select the pending card, so at this point a
// failed fetch looks exactly like one still in flight. [VisibleCard] is where
// the failed card surfaces.
//
// States this build does not recognise also select the pending card.
func SelectTestResultDirective(deviceUIState models.AsyncResult[models.DeviceState]) models.Directive {
	state, ok := deviceUIState.Value()
	if !ok {
		return pendingDirective
	}

	switch state {
	case models.PairedNegative:
		return models.Directive{Card: models.NegativeCard, Target: models.NavTestResultNegative}
	case models.PairedError, models.PairedRedeemed:
		return models.Directive{Card: models.InvalidCard, Target: models.NavTestResultInvalid}
	default:
		return pendingDirective
	}
}

var pendingDirective = models.Directive{Card: models.PendingCard, Target: models.NavTestResultPending}
