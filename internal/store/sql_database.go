package store

import (
	"database/sql"
	"errors"

	"github.com/MKhiriev/go-cwa-home/internal/logger"
	"github.com/MKhiriev/go-cwa-home/migrations"
)

// DB wraps *sql.DB with the logger and the error classifier of its driver.
type DB struct {
	*sql.DB
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// ErrorClassificator decides whether a driver error is worth retrying.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// MigrateServer applies the verification server schema.
func (db *DB) MigrateServer() error {
	return migrations.MigrateServer(db.DB)
}

// MigrateClient applies the local registration schema.
func (db *DB) MigrateClient() error {
	return migrations.MigrateClient(db.DB)
}

// classify wraps err with [ErrTransient] when the driver reports a retryable
// condition. A DB without a classifier never reports transient errors.
func (db *DB) classify(err error) error {
	if err == nil || db.errorClassificator == nil {
		return err
	}
	if db.errorClassificator.Classify(err) == Retryable {
		return errors.Join(ErrTransient, err)
	}
	return err
}
