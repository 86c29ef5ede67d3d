package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/MKhiriev/go-cwa-home/internal/adapter"
	"github.com/MKhiriev/go-cwa-home/internal/logger"
	"github.com/MKhiriev/go-cwa-home/internal/mock"
	"github.com/MKhiriev/go-cwa-home/internal/store"
	"github.com/MKhiriev/go-cwa-home/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestSubmissionSvc(t *testing.T) (*submissionService, *mock.MockLocalRegistrationRepository, *mock.MockVerificationAdapter) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mock.NewMockLocalRegistrationRepository(ctrl)
	verification := mock.NewMockVerificationAdapter(ctrl)

	svc := NewSubmissionService(repo, verification, logger.Nop()).(*submissionService)
	return svc, repo, verification
}

var localReg = models.LocalRegistration{
	RegistrationToken: "token-1",
	RegisteredAt:      time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	LastState:         models.PairedNoResult,
}

// ── RefreshDeviceState ───────────────────────────────────────────────────────

func TestSubmissionService_Refresh_Success(t *testing.T) {
	svc, repo, verification := newTestSubmissionSvc(t)
	ctx := context.Background()
	received := time.Now()

	var observed []models.ResultStatus
	verification.EXPECT().GetTestResult(ctx, "token-1").DoAndReturn(
		func(context.Context, string) (models.TestResultResponse, error) {
			observed = append(observed, svc.Current().DeviceUIState.Status())
			return models.TestResultResponse{DeviceState: models.PairedNegative, ReceivedAt: &received}, nil
		},
	)
	repo.EXPECT().GetRegistration(ctx).Return(localReg, nil).Times(2)
	repo.EXPECT().SaveLastState(ctx, models.PairedNegative, &received).Return(nil)

	require.NoError(t, svc.RefreshDeviceState(ctx))

	assert.Equal(t, []models.ResultStatus{models.ResultPending}, observed, "pending is published before the fetch")
	current := svc.Current()
	assert.True(t, current.Registered)
	v, ok := current.DeviceUIState.Value()
	require.True(t, ok)
	assert.Equal(t, models.PairedNegative, v)
}

func TestSubmissionService_Refresh_UnchangedStateNotSaved(t *testing.T) {
	svc, repo, verification := newTestSubmissionSvc(t)
	ctx := context.Background()

	repo.EXPECT().GetRegistration(ctx).Return(localReg, nil).Times(2)
	verification.EXPECT().GetTestResult(ctx, "token-1").Return(models.TestResultResponse{DeviceState: models.PairedNoResult}, nil)

	require.NoError(t, svc.RefreshDeviceState(ctx))
}

func TestSubmissionService_Refresh_Failure(t *testing.T) {
	svc, repo, verification := newTestSubmissionSvc(t)
	ctx := context.Background()

	repo.EXPECT().GetRegistration(ctx).Return(localReg, nil).Times(2)
	verification.EXPECT().GetTestResult(ctx, "token-1").
		Return(models.TestResultResponse{}, fmt.Errorf("%w: boom", adapter.ErrInternalServerError))

	err := svc.RefreshDeviceState(ctx)

	assert.ErrorIs(t, err, ErrServerUnavailable)
	current := svc.Current()
	assert.True(t, current.DeviceUIState.IsFailure())
	assert.ErrorIs(t, current.DeviceUIState.Err(), ErrServerUnavailable)
	assert.True(t, current.Registered)
}

func TestSubmissionService_Refresh_Unregistered(t *testing.T) {
	svc, repo, _ := newTestSubmissionSvc(t)
	ctx := context.Background()

	repo.EXPECT().GetRegistration(ctx).Return(models.LocalRegistration{}, store.ErrNoLocalRegistration)

	require.NoError(t, svc.RefreshDeviceState(ctx))

	current := svc.Current()
	assert.False(t, current.Registered)
	v, _ := current.DeviceUIState.Value()
	assert.Equal(t, models.Unregistered, v)
}

func TestSubmissionService_Refresh_LocalError(t *testing.T) {
	svc, repo, _ := newTestSubmissionSvc(t)
	ctx := context.Background()

	repo.EXPECT().GetRegistration(ctx).Return(models.LocalRegistration{}, errors.New("disk error"))

	require.Error(t, svc.RefreshDeviceState(ctx))
	current := svc.Current()
	assert.True(t, current.DeviceUIState.IsFailure())
	assert.True(t, current.Registered, "without a known state the failed card is offered")
}

func TestSubmissionService_Refresh_LocalErrorKeepsKnownFlags(t *testing.T) {
	svc, repo, _ := newTestSubmissionSvc(t)
	ctx := context.Background()
	seen := localReg
	seen.ResultSeen = true
	seen.LastState = models.PairedPositive

	gomock.InOrder(
		repo.EXPECT().GetRegistration(ctx).Return(seen, nil),
		repo.EXPECT().GetRegistration(ctx).Return(models.LocalRegistration{}, errors.New("disk error")),
	)

	require.NoError(t, svc.Restore(ctx))
	require.Error(t, svc.RefreshDeviceState(ctx))

	current := svc.Current()
	assert.True(t, current.DeviceUIState.IsFailure())
	assert.True(t, current.Registered)
	assert.True(t, current.ResultSeen)
}

func TestSubmissionService_Refresh_RemoveTestDuringFetch(t *testing.T) {
	svc, repo, verification := newTestSubmissionSvc(t)
	ctx := context.Background()

	gomock.InOrder(
		repo.EXPECT().GetRegistration(ctx).Return(localReg, nil),
		repo.EXPECT().DeleteRegistration(ctx).Return(nil),
		repo.EXPECT().GetRegistration(ctx).Return(models.LocalRegistration{}, store.ErrNoLocalRegistration),
	)
	verification.EXPECT().GetTestResult(ctx, "token-1").DoAndReturn(
		func(context.Context, string) (models.TestResultResponse, error) {
			require.NoError(t, svc.RemoveTest(ctx))
			return models.TestResultResponse{DeviceState: models.PairedNegative}, nil
		},
	)

	require.NoError(t, svc.RefreshDeviceState(ctx))

	current := svc.Current()
	assert.False(t, current.Registered)
	v, _ := current.DeviceUIState.Value()
	assert.Equal(t, models.Unregistered, v)
}

func TestSubmissionService_Refresh_MarkResultSeenDuringFetch(t *testing.T) {
	svc, repo, verification := newTestSubmissionSvc(t)
	ctx := context.Background()
	positive := localReg
	positive.LastState = models.PairedPositive
	seen := positive
	seen.ResultSeen = true

	gomock.InOrder(
		repo.EXPECT().GetRegistration(ctx).Return(positive, nil),
		repo.EXPECT().MarkResultSeen(ctx).Return(nil),
		repo.EXPECT().GetRegistration(ctx).Return(seen, nil),
	)
	verification.EXPECT().GetTestResult(ctx, "token-1").DoAndReturn(
		func(context.Context, string) (models.TestResultResponse, error) {
			require.NoError(t, svc.MarkResultSeen(ctx))
			return models.TestResultResponse{DeviceState: models.PairedPositive}, nil
		},
	)

	require.NoError(t, svc.RefreshDeviceState(ctx))
	assert.True(t, svc.Current().ResultSeen)
}

func TestSubmissionService_Refresh_SupersededResultDropped(t *testing.T) {
	svc, repo, verification := newTestSubmissionSvc(t)
	ctx := context.Background()

	repo.EXPECT().GetRegistration(ctx).Return(localReg, nil).Times(3)
	repo.EXPECT().SaveLastState(ctx, models.PairedNegative, nil).Return(nil)

	calls := 0
	verification.EXPECT().GetTestResult(ctx, "token-1").Times(2).DoAndReturn(
		func(context.Context, string) (models.TestResultResponse, error) {
			calls++
			if calls == 1 {
				require.NoError(t, svc.RefreshDeviceState(ctx))
				return models.TestResultResponse{DeviceState: models.PairedPositive}, nil
			}
			return models.TestResultResponse{DeviceState: models.PairedNegative}, nil
		},
	)

	require.NoError(t, svc.RefreshDeviceState(ctx))

	v, ok := svc.Current().DeviceUIState.Value()
	require.True(t, ok)
	assert.Equal(t, models.PairedNegative, v)
}

func TestSubmissionService_Refresh_KeepsResultSeen(t *testing.T) {
	svc, repo, verification := newTestSubmissionSvc(t)
	ctx := context.Background()
	seen := localReg
	seen.ResultSeen = true
	seen.LastState = models.PairedPositive

	repo.EXPECT().GetRegistration(ctx).Return(seen, nil).Times(2)
	verification.EXPECT().GetTestResult(ctx, "token-1").Return(models.TestResultResponse{DeviceState: models.PairedPositive}, nil)

	require.NoError(t, svc.RefreshDeviceState(ctx))
	assert.True(t, svc.Current().ResultSeen)
}

// ── Restore ──────────────────────────────────────────────────────────────────

func TestSubmissionService_Restore_CachedState(t *testing.T) {
	svc, repo, _ := newTestSubmissionSvc(t)
	ctx := context.Background()
	cached := localReg
	cached.LastState = models.PairedError

	repo.EXPECT().GetRegistration(ctx).Return(cached, nil)

	require.NoError(t, svc.Restore(ctx))

	v, ok := svc.Current().DeviceUIState.Value()
	require.True(t, ok)
	assert.Equal(t, models.PairedError, v)
}

func TestSubmissionService_Restore_NoCachedStateIsPending(t *testing.T) {
	svc, repo, _ := newTestSubmissionSvc(t)
	ctx := context.Background()
	cached := localReg
	cached.LastState = ""

	repo.EXPECT().GetRegistration(ctx).Return(cached, nil)

	require.NoError(t, svc.Restore(ctx))
	assert.True(t, svc.Current().DeviceUIState.IsPending())
}

// ── RegisterTest ─────────────────────────────────────────────────────────────

func TestSubmissionService_RegisterTest_Success(t *testing.T) {
	svc, repo, verification := newTestSubmissionSvc(t)
	ctx := context.Background()
	now := time.Date(2026, 2, 2, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	gomock.InOrder(
		repo.EXPECT().GetRegistration(ctx).Return(models.LocalRegistration{}, store.ErrNoLocalRegistration),
		verification.EXPECT().RegisterTest(ctx, "ABC-123").Return("token-9", nil),
		repo.EXPECT().SaveRegistration(ctx, models.LocalRegistration{
			RegistrationToken: "token-9",
			RegisteredAt:      now,
			LastState:         models.PairedNoResult,
		}).Return(nil),
	)

	require.NoError(t, svc.RegisterTest(ctx, "  ABC-123 "))

	current := svc.Current()
	assert.True(t, current.Registered)
	v, _ := current.DeviceUIState.Value()
	assert.Equal(t, models.PairedNoResult, v)
}

func TestSubmissionService_RegisterTest_AlreadyRegistered(t *testing.T) {
	svc, repo, _ := newTestSubmissionSvc(t)
	ctx := context.Background()

	repo.EXPECT().GetRegistration(ctx).Return(localReg, nil)

	assert.ErrorIs(t, svc.RegisterTest(ctx, "ABC"), ErrTestAlreadyRegistered)
}

func TestSubmissionService_RegisterTest_GUIDUsed(t *testing.T) {
	svc, repo, verification := newTestSubmissionSvc(t)
	ctx := context.Background()

	repo.EXPECT().GetRegistration(ctx).Return(models.LocalRegistration{}, store.ErrNoLocalRegistration)
	verification.EXPECT().RegisterTest(ctx, "ABC").Return("", fmt.Errorf("%w: test already registered", adapter.ErrConflict))

	assert.ErrorIs(t, svc.RegisterTest(ctx, "ABC"), ErrGUIDAlreadyUsed)
}

// ── RemoveTest / MarkResultSeen ──────────────────────────────────────────────

func TestSubmissionService_RemoveTest(t *testing.T) {
	svc, repo, _ := newTestSubmissionSvc(t)
	ctx := context.Background()

	repo.EXPECT().DeleteRegistration(ctx).Return(nil)

	require.NoError(t, svc.RemoveTest(ctx))

	current := svc.Current()
	assert.False(t, current.Registered)
	v, _ := current.DeviceUIState.Value()
	assert.Equal(t, models.Unregistered, v)
}

func TestSubmissionService_MarkResultSeen(t *testing.T) {
	svc, repo, _ := newTestSubmissionSvc(t)
	ctx := context.Background()
	svc.stream.Publish(models.SubmissionCardState{Registered: true, DeviceUIState: models.Success(models.PairedPositive)})

	repo.EXPECT().MarkResultSeen(ctx).Return(nil)

	require.NoError(t, svc.MarkResultSeen(ctx))

	current := svc.Current()
	assert.True(t, current.ResultSeen)
	v, _ := current.DeviceUIState.Value()
	assert.Equal(t, models.PairedPositive, v)
}

func TestSubmissionService_MarkResultSeen_NoTest(t *testing.T) {
	svc, repo, _ := newTestSubmissionSvc(t)
	ctx := context.Background()

	repo.EXPECT().MarkResultSeen(ctx).Return(store.ErrNoLocalRegistration)

	assert.ErrorIs(t, svc.MarkResultSeen(ctx), ErrNoTestRegistered)
}

// ── RegistrationToken / ServerVersion ────────────────────────────────────────

func TestSubmissionService_RegistrationToken(t *testing.T) {
	svc, repo, _ := newTestSubmissionSvc(t)
	ctx := context.Background()

	repo.EXPECT().GetRegistration(ctx).Return(localReg, nil)
	token, err := svc.RegistrationToken(ctx)
	require.NoError(t, err)
	assert.Equal(t, "token-1", token)

	repo.EXPECT().GetRegistration(ctx).Return(models.LocalRegistration{}, store.ErrNoLocalRegistration)
	_, err = svc.RegistrationToken(ctx)
	assert.ErrorIs(t, err, ErrNoTestRegistered)
}

func TestSubmissionService_LocalRegistration(t *testing.T) {
	svc, repo, _ := newTestSubmissionSvc(t)
	ctx := context.Background()

	received := time.Date(2026, 1, 3, 9, 0, 0, 0, time.UTC)
	stored := localReg
	stored.LastState = models.PairedPositive
	stored.ResultReceivedAt = &received

	repo.EXPECT().GetRegistration(ctx).Return(stored, nil)
	got, err := svc.LocalRegistration(ctx)
	require.NoError(t, err)
	assert.Equal(t, stored, got)

	repo.EXPECT().GetRegistration(ctx).Return(models.LocalRegistration{}, errors.New("disk I/O error"))
	_, err = svc.LocalRegistration(ctx)
	assert.ErrorContains(t, err, "get local registration")
}

func TestSubmissionService_ServerVersion(t *testing.T) {
	svc, _, verification := newTestSubmissionSvc(t)
	ctx := context.Background()

	verification.EXPECT().GetServerVersion(ctx).Return("1.2.3", nil)

	version, err := svc.ServerVersion(ctx)
	require.NoError(t, err)
	assert.Equal(t, "1.2.3", version)
}

// ── Subscribe ────────────────────────────────────────────────────────────────

func TestSubmissionService_SubscriberSeesLatestAfterRefresh(t *testing.T) {
	svc, repo, verification := newTestSubmissionSvc(t)
	ctx := context.Background()

	repo.EXPECT().GetRegistration(ctx).Return(localReg, nil).Times(2)
	verification.EXPECT().GetTestResult(ctx, "token-1").Return(models.TestResultResponse{DeviceState: models.PairedNoResult}, nil)

	ch, cancel := svc.Subscribe()
	defer cancel()

	require.NoError(t, svc.RefreshDeviceState(ctx))

	got := <-ch
	v, ok := got.DeviceUIState.Value()
	require.True(t, ok)
	assert.Equal(t, models.PairedNoResult, v)
}
