package service

import (
	"errors"

	"github.com/MKhiriev/go-cwa-home/internal/validators"
)

// Errors returned by the verification server services.
var (
	ErrInvalidGUID             = validators.ErrInvalidGUID
	ErrInvalidDeviceState      = validators.ErrInvalidDeviceState
	ErrTokenIsExpiredOrInvalid = errors.New("registration token is expired or invalid")
	ErrTokenCreationFailed     = errors.New("registration token creation failed")
	ErrVersionIsNotSpecified   = errors.New("version is not specified")
)

// Errors returned by the home client services.
var (
	// ErrTestAlreadyRegistered is returned when the device already has a
	// paired test and another one is scanned.
	ErrTestAlreadyRegistered = errors.New("a test is already registered on this device")

	// ErrNoTestRegistered is returned by operations that need a paired test.
	ErrNoTestRegistered = errors.New("no test registered on this device")

	// ErrGUIDAlreadyUsed is returned when the server reports that the
	// scanned GUID was paired before.
	ErrGUIDAlreadyUsed = errors.New("test guid was already used")

	// ErrRegistrationRejected is returned when the server no longer accepts
	// the stored registration token.
	ErrRegistrationRejected = errors.New("registration token rejected by server")

	// ErrServerUnavailable is returned when the verification server cannot
	// be reached or reports a server-side failure.
	ErrServerUnavailable = errors.New("verification server unavailable")
)
