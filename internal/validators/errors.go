package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidGUID            = errors.New("invalid test guid")
	ErrInvalidDeviceState     = errors.New("invalid device state for lab result")
	ErrEmptyRegistrationToken = errors.New("registration token is required")
)
