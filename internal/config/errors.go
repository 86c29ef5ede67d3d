package config

import "errors"

// Validation errors returned when a config view is incomplete.
var (
	// ErrInvalidAdapterConfigs indicates a missing verification server
	// address or request timeout on the client.
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidStorageConfigs indicates an empty or in-memory DSN.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAppConfigs indicates missing token or hashing settings.
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidWorkerConfigs indicates a zero refresh interval.
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
	// ErrInvalidServerConfigs indicates that no listen address is set.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
)
