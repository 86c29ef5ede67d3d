package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-cwa-home/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// LocalRegistrationRepository keeps the single test paired with this device.
type LocalRegistrationRepository interface {
	SaveRegistration(ctx context.Context, registration models.LocalRegistration) error
	// GetRegistration returns [ErrNoLocalRegistration] when no test is paired.
	GetRegistration(ctx context.Context) (models.LocalRegistration, error)
	DeleteRegistration(ctx context.Context) error
	MarkResultSeen(ctx context.Context) error
	SaveLastState(ctx context.Context, state models.DeviceState, receivedAt *time.Time) error
}
