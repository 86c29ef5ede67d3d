// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"strings"

	"github.com/MKhiriev/go-cwa-home/internal/adapter"
	"github.com/MKhiriev/go-cwa-home/internal/app"
)

// mapAdapterError translates the adapter's transport error into a service business error
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	msg := extractBody(err)

	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return err

	case errors.Is(err, adapter.ErrBadRequest):
		if msg == app.MsgInvalidGUID {
			return ErrInvalidGUID
		}

	case errors.Is(err, adapter.ErrUnauthorized), errors.Is(err, adapter.ErrNotFound):
		return ErrRegistrationRejected

	case errors.Is(err, adapter.ErrConflict):
		return ErrGUIDAlreadyUsed

	case errors.Is(err, adapter.ErrInternalServerError),
		errors.Is(err, adapter.ErrBadGateway),
		errors.Is(err, adapter.ErrServiceUnavailable):
		return errors.Join(ErrServerUnavailable, err)
	}

	return err
}

// extractBody extracts the body from a message of the form "bad request: <body>"
func extractBody(err error) string {
	msg := err.Error()
	if idx := strings.Index(msg, ": "); idx != -1 {
		return msg[idx+2:]
	}
	return msg
}
