package store

import (
	"context"

	"github.com/MKhiriev/go-cwa-home/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// RegistrationRepository persists paired tests and lab results on the
// verification server. GUIDs only ever reach it as hashes.
type RegistrationRepository interface {
	// CreateRegistration stores a new pairing. Returns
	// [ErrGUIDAlreadyRegistered] when the hashed GUID is already paired.
	CreateRegistration(ctx context.Context, registration models.Registration) (models.Registration, error)
	// GetRegistration returns the pairing with its current lab result.
	// DeviceState is PAIRED_NO_RESULT while no lab result exists.
	GetRegistration(ctx context.Context, registrationID string) (models.Registration, error)
	// MarkRedeemed flags the pairing as no longer answerable.
	MarkRedeemed(ctx context.Context, registrationID string) error
	// SaveLabResult inserts or replaces the lab result of a hashed GUID.
	SaveLabResult(ctx context.Context, hashedGUID string, state models.DeviceState) error
}
