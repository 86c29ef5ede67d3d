// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package migrations embeds the schema of the verification server
// (PostgreSQL) and of the home client's local database (SQLite) and applies
// them with goose.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"

	"github.com/pressly/goose/v3"
)

//go:embed server/*.sql client/*.sql
var embedMigrations embed.FS

// ErrNilDB is returned when a migration is requested without a connection.
var ErrNilDB = errors.New("migration error: db is nil")

// MigrateServer applies the verification server schema to a PostgreSQL
// database opened with the pgx driver.
func MigrateServer(db *sql.DB) error {
	return migrate(db, goose.DialectPostgres, "server")
}

// MigrateClient applies the local registration schema to a SQLite database.
func MigrateClient(db *sql.DB) error {
	return migrate(db, goose.DialectSQLite3, "client")
}

func migrate(db *sql.DB, dialect goose.Dialect, dir string) error {
	if db == nil {
		return ErrNilDB
	}

	migrationsFS, err := fs.Sub(embedMigrations, dir)
	if err != nil {
		return fmt.Errorf("migration error opening %s migrations: %w", dir, err)
	}

	provider, err := goose.NewProvider(dialect, db, migrationsFS)
	if err != nil {
		return fmt.Errorf("migration error creating provider: %w", err)
	}

	if _, err = provider.Up(context.Background()); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
