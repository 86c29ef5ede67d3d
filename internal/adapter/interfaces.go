// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the home client's transport to the verification
// server.
//
// The primary abstraction is [VerificationAdapter], which decouples the
// service layer from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPVerificationAdapter]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrConflict] for 409, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-cwa-home/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/verification_adapter_mock.go -package=mock

// VerificationAdapter defines transport-agnostic communication with the
// verification server.
type VerificationAdapter interface {
	// RegisterTest pairs the scanned test GUID with this device and returns
	// the registration token. Returns [ErrConflict] (wrapped) when the GUID
	// was already registered.
	RegisterTest(ctx context.Context, guid string) (string, error)

	// GetTestResult fetches the current state of the test identified by the
	// registration token. Returns [ErrUnauthorized] (wrapped) when the token
	// is rejected.
	GetTestResult(ctx context.Context, registrationToken string) (models.TestResultResponse, error)

	// GetServerVersion returns the version string reported by the server.
	GetServerVersion(ctx context.Context) (string, error)
}
