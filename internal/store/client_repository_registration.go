package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-cwa-home/internal/logger"
	"github.com/MKhiriev/go-cwa-home/models"
)

type localRegistrationRepository struct {
	*DB
	logger *logger.Logger
}

// NewLocalRegistrationRepository returns the SQLite-backed
// [LocalRegistrationRepository].
func NewLocalRegistrationRepository(db *DB, logger *logger.Logger) LocalRegistrationRepository {
	return &localRegistrationRepository{
		DB:     db,
		logger: logger,
	}
}

func (l *localRegistrationRepository) SaveRegistration(ctx context.Context, registration models.LocalRegistration) error {
	log := logger.FromContext(ctx)

	_, err := l.DB.ExecContext(ctx, saveLocalRegistration,
		registration.RegistrationToken,
		registration.RegisteredAt,
		registration.ResultSeen,
		string(registration.LastState),
		nullTime(registration.ResultReceivedAt),
	)
	if err != nil {
		log.Err(err).Str("func", "localRegistrationRepository.SaveRegistration").Msg("failed to save local registration")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (l *localRegistrationRepository) GetRegistration(ctx context.Context) (models.LocalRegistration, error) {
	log := logger.FromContext(ctx)

	var (
		registration models.LocalRegistration
		lastState    string
		receivedAt   sql.NullTime
	)
	err := l.DB.QueryRowContext(ctx, getLocalRegistration).Scan(
		&registration.RegistrationToken,
		&registration.RegisteredAt,
		&registration.ResultSeen,
		&lastState,
		&receivedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.LocalRegistration{}, ErrNoLocalRegistration
	}
	if err != nil {
		log.Err(err).Str("func", "localRegistrationRepository.GetRegistration").Msg("failed to scan local registration")
		return models.LocalRegistration{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	registration.LastState = models.DeviceState(lastState)
	if receivedAt.Valid {
		registration.ResultReceivedAt = &receivedAt.Time
	}

	return registration, nil
}

func (l *localRegistrationRepository) DeleteRegistration(ctx context.Context) error {
	log := logger.FromContext(ctx)

	if _, err := l.DB.ExecContext(ctx, deleteLocalRegistration); err != nil {
		log.Err(err).Str("func", "localRegistrationRepository.DeleteRegistration").Msg("failed to delete local registration")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (l *localRegistrationRepository) MarkResultSeen(ctx context.Context) error {
	return l.updateSingle(ctx, "localRegistrationRepository.MarkResultSeen", markLocalResultSeen)
}

func (l *localRegistrationRepository) SaveLastState(ctx context.Context, state models.DeviceState, receivedAt *time.Time) error {
	return l.updateSingle(ctx, "localRegistrationRepository.SaveLastState", saveLocalLastState, string(state), nullTime(receivedAt))
}

// updateSingle runs an UPDATE on the registration row and reports
// [ErrNoLocalRegistration] when there is none.
func (l *localRegistrationRepository) updateSingle(ctx context.Context, funcName, query string, args ...any) error {
	log := logger.FromContext(ctx)

	result, err := l.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to update local registration")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if rowsAffected, _ := result.RowsAffected(); rowsAffected == 0 {
		return ErrNoLocalRegistration
	}

	return nil
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}
