package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrGUIDAlreadyRegistered is returned when a test GUID (by its hash) is
	// registered a second time.
	ErrGUIDAlreadyRegistered = errors.New("guid already registered")

	// ErrRegistrationNotFound is returned when no registration matches the
	// registration ID carried by a token.
	ErrRegistrationNotFound = errors.New("registration was not found")

	// ErrNoLocalRegistration is returned by the client repository when no
	// test is paired with this device.
	ErrNoLocalRegistration = errors.New("no local registration")

	// ErrTransient wraps database failures that may succeed when retried
	// (lost connection, serialization failure, deadlock).
	ErrTransient = errors.New("transient database error")
)

// Low-level database operation errors.
var (
	// ErrBuildingSQLQuery is returned when constructing a SQL query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing an INSERT, UPDATE or
	// DELETE fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning a result row fails.
	ErrScanningRow = errors.New("failed to scan row")
)
