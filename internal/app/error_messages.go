// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used by the
// verification server handlers and by the home client when it interprets
// server answers.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies or log entries to describe the outcome of an operation.
// Keeping them in one place ensures consistent wording throughout the API.
package app

const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded or fails basic validation (e.g. missing required fields).
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInvalidGUID is returned when the scanned test GUID is empty or
	// malformed.
	MsgInvalidGUID = "invalid test guid"

	// MsgInvalidDeviceState is returned when a lab uploads a state that is
	// not a lab result.
	MsgInvalidDeviceState = "invalid device state"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgServiceUnavailable is returned when the database reports a
	// transient failure. The client may retry.
	MsgServiceUnavailable = "service temporarily unavailable"

	// MsgTokenIsExpiredOrInvalid is returned when a registration token is
	// either expired or cannot be verified (e.g. wrong signature).
	MsgTokenIsExpiredOrInvalid = "registration token is expired or invalid"

	// MsgRegistrationNotFound is returned when a valid token refers to a
	// registration the server no longer knows.
	MsgRegistrationNotFound = "registration not found"

	// MsgGUIDAlreadyRegistered is returned when a test GUID is paired a
	// second time.
	MsgGUIDAlreadyRegistered = "test already registered"

	// MsgRegistrationFailed is returned when the registration handler
	// encounters an unexpected error that prevents pairing.
	MsgRegistrationFailed = "registration failed"

	// MsgVersionIsNotSpecified is returned when the server has no version
	// configured.
	MsgVersionIsNotSpecified = "version is not specified"
)
