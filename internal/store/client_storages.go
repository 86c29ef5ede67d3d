package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-cwa-home/internal/config"
	"github.com/MKhiriev/go-cwa-home/internal/logger"
)

// ClientStorages groups the client-side repositories.
type ClientStorages struct {
	// RegistrationRepository keeps the test paired with this device.
	RegistrationRepository LocalRegistrationRepository

	db *DB
}

// NewClientStorages initialises the client storage layer:
//  1. Opens the SQLite file at cfg.DB.DSN, creating it if needed.
//  2. Applies the local schema via [DB.MigrateClient].
//  3. Wires the [LocalRegistrationRepository].
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err = db.MigrateClient(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &ClientStorages{
		RegistrationRepository: NewLocalRegistrationRepository(db, logger),
		db:                     db,
	}, nil
}

// Close releases the database connection.
func (s *ClientStorages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
