package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/MKhiriev/go-cwa-home/internal/config"
	"github.com/MKhiriev/go-cwa-home/internal/logger"
	"github.com/MKhiriev/go-cwa-home/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientStorages_SQLiteRoundTrip(t *testing.T) {
	ctx := context.Background()
	dsn := filepath.Join(t.TempDir(), "nested", "home.db")

	storages, err := NewClientStorages(ctx, config.ClientStorage{DB: config.ClientDB{DSN: dsn}}, logger.Nop())
	require.NoError(t, err)
	defer storages.Close()

	repo := storages.RegistrationRepository

	_, err = repo.GetRegistration(ctx)
	require.ErrorIs(t, err, ErrNoLocalRegistration)
	require.ErrorIs(t, repo.MarkResultSeen(ctx), ErrNoLocalRegistration)

	registeredAt := time.Now().UTC().Truncate(time.Second)
	require.NoError(t, repo.SaveRegistration(ctx, models.LocalRegistration{
		RegistrationToken: "token-1",
		RegisteredAt:      registeredAt,
		LastState:         models.PairedNoResult,
	}))

	receivedAt := registeredAt.Add(time.Minute)
	require.NoError(t, repo.SaveLastState(ctx, models.PairedPositive, &receivedAt))
	require.NoError(t, repo.MarkResultSeen(ctx))

	got, err := repo.GetRegistration(ctx)
	require.NoError(t, err)
	assert.Equal(t, "token-1", got.RegistrationToken)
	assert.True(t, got.RegisteredAt.Equal(registeredAt))
	assert.True(t, got.ResultSeen)
	assert.Equal(t, models.PairedPositive, got.LastState)
	require.NotNil(t, got.ResultReceivedAt)
	assert.True(t, got.ResultReceivedAt.Equal(receivedAt))

	// saving again replaces the single row
	require.NoError(t, repo.SaveRegistration(ctx, models.LocalRegistration{
		RegistrationToken: "token-2",
		RegisteredAt:      registeredAt,
		LastState:         models.PairedNoResult,
	}))
	got, err = repo.GetRegistration(ctx)
	require.NoError(t, err)
	assert.Equal(t, "token-2", got.RegistrationToken)
	assert.False(t, got.ResultSeen)

	require.NoError(t, repo.DeleteRegistration(ctx))
	_, err = repo.GetRegistration(ctx)
	assert.ErrorIs(t, err, ErrNoLocalRegistration)
}
