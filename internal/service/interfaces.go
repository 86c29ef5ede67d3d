package service

import (
	"context"

	"github.com/MKhiriev/go-cwa-home/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// VerificationService pairs tests with devices, answers result lookups and
// accepts lab uploads.
type VerificationService interface {
	// RegisterTest pairs guid with a new registration and returns the signed
	// token. The GUID is stored only as a keyed hash.
	RegisterTest(ctx context.Context, guid string) (models.RegistrationToken, error)
	// GetTestResult validates the token and returns the current state of the
	// paired test.
	GetTestResult(ctx context.Context, registrationToken string) (models.TestResultResponse, error)
	// SaveLabResult stores a lab's result for a GUID.
	SaveLabResult(ctx context.Context, request models.LabResultRequest) error
}

// AppInfoService exposes build information of the server.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
