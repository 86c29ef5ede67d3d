// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// RegistrationRequest pairs a scanned test GUID with the device.
type RegistrationRequest struct {
	GUID string `json:"guid"`
}

// RegistrationResponse returns the token the device uses for every later
// test-result lookup.
type RegistrationResponse struct {
	RegistrationToken string `json:"registration_token"`
}

// TestResultRequest asks for the state of a registered test.
type TestResultRequest struct {
	RegistrationToken string `json:"registration_token"`
}

// TestResultResponse carries the server-side state of a registered test.
type TestResultResponse struct {
	DeviceState DeviceState `json:"device_state"`
	ReceivedAt  *time.Time  `json:"received_at,omitempty"`
}

// LabResultRequest is uploaded by a lab to set the result for a GUID.
type LabResultRequest struct {
	GUID        string      `json:"guid"`
	DeviceState DeviceState `json:"device_state"`
}

// Registration is the server-side record of a paired test.
type Registration struct {
	RegistrationID string
	HashedGUID     string
	DeviceState    DeviceState
	CreatedAt      time.Time
	ResultAt       *time.Time
	Redeemed       bool
}

// LocalRegistration is the client-side record of the paired test.
type LocalRegistration struct {
	RegistrationToken string
	RegisteredAt      time.Time
	ResultSeen        bool
	LastState         DeviceState
	ResultReceivedAt  *time.Time
}
