package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-cwa-home/internal/logger"
	"github.com/MKhiriev/go-cwa-home/models"
	"github.com/jackc/pgerrcode"
)

// registrationRepository is the PostgreSQL-backed implementation of
// [RegistrationRepository] over the "registrations" and "lab_results"
// tables.
type registrationRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewRegistrationRepository constructs a [RegistrationRepository] backed by
// the provided database connection.
func NewRegistrationRepository(db *DB, logger *logger.Logger) RegistrationRepository {
	logger.Debug().Msg("creating registration repository")
	return &registrationRepository{
		db:     db,
		logger: logger,
	}
}

// CreateRegistration inserts the pairing and returns it with the
// server-assigned CreatedAt.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrGUIDAlreadyRegistered].
//   - Retryable driver errors → wrapped with [ErrTransient].
func (r *registrationRepository) CreateRegistration(ctx context.Context, registration models.Registration) (models.Registration, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCreateRegistration(registration)
	if err != nil {
		return models.Registration{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	row := r.db.QueryRowContext(ctx, query, args...)
	if err = row.Scan(&registration.CreatedAt, &registration.Redeemed); err != nil {
		log.Err(err).Str("func", "*registrationRepository.CreateRegistration").Msg("error inserting registration")

		if postgresError(err) == pgerrcode.UniqueViolation {
			return models.Registration{}, ErrGUIDAlreadyRegistered
		}
		return models.Registration{}, fmt.Errorf("%w: %w", ErrExecutingQuery, r.db.classify(err))
	}

	registration.DeviceState = models.PairedNoResult
	return registration, nil
}

// GetRegistration loads the pairing joined with its lab result.
//
// Error handling:
//   - No row → [ErrRegistrationNotFound].
//   - Retryable driver errors → wrapped with [ErrTransient].
func (r *registrationRepository) GetRegistration(ctx context.Context, registrationID string) (models.Registration, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetRegistration(registrationID)
	if err != nil {
		return models.Registration{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var (
		found      models.Registration
		state      string
		receivedAt sql.NullTime
	)
	row := r.db.QueryRowContext(ctx, query, args...)
	err = row.Scan(&found.RegistrationID, &found.HashedGUID, &found.CreatedAt, &found.Redeemed, &state, &receivedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Registration{}, ErrRegistrationNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*registrationRepository.GetRegistration").Str("registration_id", registrationID).Msg("error loading registration")
		return models.Registration{}, fmt.Errorf("%w: %w", ErrScanningRow, r.db.classify(err))
	}

	found.DeviceState = models.DeviceState(state)
	if receivedAt.Valid {
		found.ResultAt = &receivedAt.Time
	}

	return found, nil
}

// MarkRedeemed sets the redeemed flag. Returns [ErrRegistrationNotFound]
// when no row was updated.
func (r *registrationRepository) MarkRedeemed(ctx context.Context, registrationID string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildMarkRedeemed(registrationID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*registrationRepository.MarkRedeemed").Str("registration_id", registrationID).Msg("error redeeming registration")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, r.db.classify(err))
	}

	if rowsAffected, _ := result.RowsAffected(); rowsAffected == 0 {
		return ErrRegistrationNotFound
	}

	return nil
}

// SaveLabResult upserts the lab result of hashedGUID. A lab may upload
// before or after the device registers.
func (r *registrationRepository) SaveLabResult(ctx context.Context, hashedGUID string, state models.DeviceState) error {
	log := logger.FromContext(ctx)

	query, args, err := buildSaveLabResult(hashedGUID, state)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*registrationRepository.SaveLabResult").Str("device_state", state.String()).Msg("error saving lab result")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, r.db.classify(err))
	}

	return nil
}
