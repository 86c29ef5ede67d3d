// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-cwa-home/internal/service"
)

var userMessages = []struct {
	target  error
	message string
}{
	{service.ErrInvalidGUID, "The test code is not valid. Check it and try again."},
	{service.ErrGUIDAlreadyUsed, "This test was already registered."},
	{service.ErrTestAlreadyRegistered, "A test is already registered on this device."},
	{service.ErrNoTestRegistered, "No test is registered on this device."},
	{service.ErrRegistrationRejected, "The server no longer knows this test. Remove it and register again."},
	{service.ErrServerUnavailable, "The verification server is unavailable. Try again later."},
}

func humanizeError(err error) string {
	if err == nil {
		return ""
	}

	for _, m := range userMessages {
		if errors.Is(err, m.target) {
			return m.message
		}
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return "No network or the server is unavailable."
	}

	return err.Error()
}
