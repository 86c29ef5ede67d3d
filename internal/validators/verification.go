package validators

import (
	"context"
	"regexp"
	"strings"

	"github.com/MKhiriev/go-cwa-home/models"
)

// Field names accepted by [VerificationValidator.Validate].
const (
	// FieldGUID targets the scanned test GUID.
	FieldGUID = "guid"

	// FieldDeviceState targets the state a lab uploads. Only lab verdicts
	// pass.
	FieldDeviceState = "device_state"

	// FieldRegistrationToken targets the token of a test-result lookup.
	FieldRegistrationToken = "registration_token"
)

// MaxGUIDLength bounds a scanned GUID.
const MaxGUIDLength = 128

// guidPattern accepts hex groups separated by dashes, as printed on test
// QR codes.
var guidPattern = regexp.MustCompile(`^[0-9A-Fa-f]+(-[0-9A-Fa-f]+)*$`)

// VerificationValidator validates the requests of the verification API:
// [models.RegistrationRequest], [models.TestResultRequest] and
// [models.LabResultRequest], by value or by pointer.
type VerificationValidator struct{}

func NewVerificationValidator() Validator {
	return &VerificationValidator{}
}

func (v *VerificationValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.RegistrationRequest:
		return v.validateRegistrationRequest(value, fields...)
	case *models.RegistrationRequest:
		return v.validateRegistrationRequest(*value, fields...)

	case models.TestResultRequest:
		return v.validateTestResultRequest(value, fields...)
	case *models.TestResultRequest:
		return v.validateTestResultRequest(*value, fields...)

	case models.LabResultRequest:
		return v.validateLabResultRequest(value, fields...)
	case *models.LabResultRequest:
		return v.validateLabResultRequest(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *VerificationValidator) validateRegistrationRequest(request models.RegistrationRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldGUID}
	}

	for _, f := range fields {
		switch f {
		case FieldGUID:
			if !isValidGUID(request.GUID) {
				return ErrInvalidGUID
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *VerificationValidator) validateTestResultRequest(request models.TestResultRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldRegistrationToken}
	}

	for _, f := range fields {
		switch f {
		case FieldRegistrationToken:
			if strings.TrimSpace(request.RegistrationToken) == "" {
				return ErrEmptyRegistrationToken
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *VerificationValidator) validateLabResultRequest(request models.LabResultRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldGUID, FieldDeviceState}
	}

	for _, f := range fields {
		switch f {
		case FieldGUID:
			if !isValidGUID(request.GUID) {
				return ErrInvalidGUID
			}
		case FieldDeviceState:
			if !request.DeviceState.IsLabResult() {
				return ErrInvalidDeviceState
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func isValidGUID(guid string) bool {
	guid = strings.TrimSpace(guid)
	return guid != "" && len(guid) <= MaxGUIDLength && guidPattern.MatchString(guid)
}
