// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// DeviceState is the server-reported status of the test registered on this
// device. The value travels over the wire as a string.
//
// Values that this build does not know are kept verbatim rather than coerced
// to a known variant, so newer servers can introduce states without the
// client misinterpreting them.
type DeviceState string

const (
	// Unregistered means no test is registered on the device.
	Unregistered DeviceState = "UNREGISTERED"

	// PairedNoResult means a test is registered and the lab has not yet
	// uploaded a result.
	PairedNoResult DeviceState = "PAIRED_NO_RESULT"

	// PairedPositive means the lab reported a positive result.
	PairedPositive DeviceState = "PAIRED_POSITIVE"

	// PairedPositiveTelekom means a positive result was reported through the
	// TAN hotline instead of a QR code.
	PairedPositiveTelekom DeviceState = "PAIRED_POSITIVE_TELEKOM"

	// PairedNegative means the lab reported a negative result.
	PairedNegative DeviceState = "PAIRED_NEGATIVE"

	// PairedError means the lab reported an invalid sample.
	PairedError DeviceState = "PAIRED_ERROR"

	// PairedRedeemed means the result expired on the server and can no
	// longer be retrieved.
	PairedRedeemed DeviceState = "PAIRED_REDEEMED"

	// SubmittedInitial means diagnosis keys were submitted once.
	SubmittedInitial DeviceState = "SUBMITTED_INITIAL"

	// SubmittedFinal means the submission flow is complete.
	SubmittedFinal DeviceState = "SUBMITTED_FINAL"
)

var knownDeviceStates = map[DeviceState]struct{}{
	Unregistered:          {},
	PairedNoResult:        {},
	PairedPositive:        {},
	PairedPositiveTelekom: {},
	PairedNegative:        {},
	PairedError:           {},
	PairedRedeemed:        {},
	SubmittedInitial:      {},
	SubmittedFinal:        {},
}

// IsKnown reports whether s is one of the states defined by this build.
func (s DeviceState) IsKnown() bool {
	_, ok := knownDeviceStates[s]
	return ok
}

// IsPositive reports whether s carries a positive lab result.
func (s DeviceState) IsPositive() bool {
	return s == PairedPositive || s == PairedPositiveTelekom
}

// IsLabResult reports whether s is a state a lab may upload.
func (s DeviceState) IsLabResult() bool {
	switch s {
	case PairedNoResult, PairedPositive, PairedNegative, PairedError:
		return true
	}
	return false
}

func (s DeviceState) String() string {
	return string(s)
}
