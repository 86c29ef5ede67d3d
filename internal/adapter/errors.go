package adapter

import "errors"

// Sentinel errors for non-2xx answers of the verification server.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
	ErrServiceUnavailable  = errors.New("service unavailable")
)

// ErrInvalidAddress is returned when the configured server address cannot be
// turned into a base URL.
var ErrInvalidAddress = errors.New("invalid verification server address")
