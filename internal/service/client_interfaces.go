package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-cwa-home/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// SubmissionService is the client-side owner of the paired test. Every
// operation publishes the resulting [models.SubmissionCardState] to its
// subscribers; the home screen renders nothing else.
type SubmissionService interface {
	// Restore publishes the locally cached state without contacting the
	// server.
	Restore(ctx context.Context) error

	// RefreshDeviceState publishes Pending, asks the server for the current
	// result and publishes Success or Failure. Without a paired test it
	// publishes the unregistered state and returns nil. Other operations do
	// not wait for the fetch; a result that arrives after the test was
	// removed or after a newer refresh started is dropped.
	RefreshDeviceState(ctx context.Context) error

	// RegisterTest pairs the scanned GUID with this device.
	RegisterTest(ctx context.Context, guid string) error

	// RemoveTest forgets the paired test.
	RemoveTest(ctx context.Context) error

	// MarkResultSeen records that the user opened the available result.
	MarkResultSeen(ctx context.Context) error

	// LocalRegistration returns the stored record of the paired test.
	LocalRegistration(ctx context.Context) (models.LocalRegistration, error)

	// RegistrationToken returns the stored token of the paired test.
	RegistrationToken(ctx context.Context) (string, error)

	// ServerVersion returns the version reported by the verification server.
	ServerVersion(ctx context.Context) (string, error)

	// Current returns the last published state.
	Current() models.SubmissionCardState

	// Subscribe returns a channel of published states and a function that
	// cancels the subscription. The channel first yields the latest state,
	// if any.
	Subscribe() (<-chan models.SubmissionCardState, func())
}

// DeviceStateRefresher is what [RefreshJob] drives.
type DeviceStateRefresher interface {
	RefreshDeviceState(ctx context.Context) error
}

// BackgroundJob is a restartable periodic task.
type BackgroundJob interface {
	// Start launches the job. Any previously running instance is stopped
	// first.
	Start(ctx context.Context)
	// Stop signals the job to exit and blocks until it has.
	Stop()
}

// defaultRefreshInterval is used when the configured interval is not
// positive.
const defaultRefreshInterval = 5 * time.Minute
