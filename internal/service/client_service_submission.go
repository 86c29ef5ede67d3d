package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-cwa-home/internal/adapter"
	"github.com/MKhiriev/go-cwa-home/internal/logger"
	"github.com/MKhiriev/go-cwa-home/internal/store"
	"github.com/MKhiriev/go-cwa-home/models"
)

type submissionService struct {
	repository store.LocalRegistrationRepository
	adapter    adapter.VerificationAdapter
	stream     *SubmissionStateStream

	// mu serialises local reads, writes and publishes. It is not held during
	// the test-result fetch.
	mu sync.Mutex
	// refreshSeq numbers refreshes; only the latest may publish its result.
	refreshSeq uint64

	now    func() time.Time
	logger *logger.Logger
}

// NewSubmissionService returns the [SubmissionService] backed by the local
// registration repository and the verification server.
func NewSubmissionService(repository store.LocalRegistrationRepository, verificationAdapter adapter.VerificationAdapter, logger *logger.Logger) SubmissionService {
	return &submissionService{
		repository: repository,
		adapter:    verificationAdapter,
		stream:     NewSubmissionStateStream(),
		now:        time.Now,
		logger:     logger.WithComponent("submission"),
	}
}

var unregisteredState = models.SubmissionCardState{
	DeviceUIState: models.Success(models.Unregistered),
}

func (s *submissionService) Restore(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	registration, err := s.repository.GetRegistration(ctx)
	if errors.Is(err, store.ErrNoLocalRegistration) {
		s.publish(unregisteredState)
		return nil
	}
	if err != nil {
		return fmt.Errorf("restore local registration: %w", err)
	}

	state := models.SubmissionCardState{Registered: true, ResultSeen: registration.ResultSeen}
	if registration.LastState != "" {
		state.DeviceUIState = models.Success(registration.LastState)
	}
	s.publish(state)

	return nil
}

// RefreshDeviceState holds the lock only around local reads and publishes.
// A result is dropped when a newer refresh started meanwhile or the test was
// removed or replaced during the fetch.
func (s *submissionService) RefreshDeviceState(ctx context.Context) error {
	registration, seq, err := s.beginRefresh(ctx)
	if err != nil || seq == 0 {
		return err
	}

	result, err := s.adapter.GetTestResult(ctx, registration.RegistrationToken)

	return s.finishRefresh(ctx, seq, registration, result, err)
}

// beginRefresh publishes Pending and returns the refresh sequence number.
// A zero sequence means there is nothing to fetch.
func (s *submissionService) beginRefresh(ctx context.Context) (models.LocalRegistration, uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	registration, err := s.repository.GetRegistration(ctx)
	if errors.Is(err, store.ErrNoLocalRegistration) {
		s.publish(unregisteredState)
		return models.LocalRegistration{}, 0, nil
	}
	if err != nil {
		s.publish(s.localFailure(err))
		return models.LocalRegistration{}, 0, fmt.Errorf("load local registration: %w", err)
	}

	s.refreshSeq++
	s.publish(models.SubmissionCardState{
		Registered:    true,
		ResultSeen:    registration.ResultSeen,
		DeviceUIState: models.Pending[models.DeviceState](),
	})

	return registration, s.refreshSeq, nil
}

func (s *submissionService) finishRefresh(ctx context.Context, seq uint64, fetched models.LocalRegistration, result models.TestResultResponse, fetchErr error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if fetchErr != nil {
		fetchErr = mapAdapterError(fetchErr)
	}

	if seq != s.refreshSeq {
		s.logger.Debug().Uint64("refresh", seq).Msg("superseded test result dropped")
		return fetchErr
	}

	registration, err := s.repository.GetRegistration(ctx)
	switch {
	case errors.Is(err, store.ErrNoLocalRegistration):
		s.logger.Debug().Msg("test removed during refresh, result dropped")
		return nil
	case err != nil:
		s.logger.Err(err).Msg("error re-reading local registration")
		registration = fetched
	case registration.RegistrationToken != fetched.RegistrationToken:
		s.logger.Debug().Msg("test replaced during refresh, result dropped")
		return nil
	}

	state := models.SubmissionCardState{Registered: true, ResultSeen: registration.ResultSeen}

	if fetchErr != nil {
		s.logger.Warn().Err(fetchErr).Msg("test result refresh failed")

		state.DeviceUIState = models.Failure[models.DeviceState](fetchErr)
		s.publish(state)
		return fetchErr
	}

	if result.DeviceState != registration.LastState {
		if saveErr := s.repository.SaveLastState(ctx, result.DeviceState, result.ReceivedAt); saveErr != nil {
			s.logger.Err(saveErr).Msg("error caching last device state")
		}
	}

	if !result.DeviceState.IsKnown() {
		s.logger.Warn().Str("device_state", result.DeviceState.String()).Msg("server reported unknown device state")
	}

	state.DeviceUIState = models.Success(result.DeviceState)
	s.publish(state)

	return nil
}

// localFailure builds the state published when the local store cannot be
// read. Flags of the last published state are kept. Without one the device
// is assumed registered so that the remove-test card is offered.
func (s *submissionService) localFailure(err error) models.SubmissionCardState {
	state, ok := s.stream.Latest()
	if !ok {
		state = models.SubmissionCardState{Registered: true}
	}
	state.DeviceUIState = models.Failure[models.DeviceState](err)
	return state
}

func (s *submissionService) RegisterTest(ctx context.Context, guid string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.repository.GetRegistration(ctx)
	switch {
	case err == nil:
		return ErrTestAlreadyRegistered
	case !errors.Is(err, store.ErrNoLocalRegistration):
		return fmt.Errorf("load local registration: %w", err)
	}

	token, err := s.adapter.RegisterTest(ctx, strings.TrimSpace(guid))
	if err != nil {
		return mapAdapterError(err)
	}

	registration := models.LocalRegistration{
		RegistrationToken: token,
		RegisteredAt:      s.now(),
		LastState:         models.PairedNoResult,
	}
	if err = s.repository.SaveRegistration(ctx, registration); err != nil {
		return fmt.Errorf("save local registration: %w", err)
	}

	s.logger.Info().Msg("test registered")
	s.publish(models.SubmissionCardState{Registered: true, DeviceUIState: models.Success(models.PairedNoResult)})

	return nil
}

func (s *submissionService) RemoveTest(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.repository.DeleteRegistration(ctx); err != nil {
		return fmt.Errorf("delete local registration: %w", err)
	}

	s.logger.Info().Msg("test removed")
	s.publish(unregisteredState)

	return nil
}

func (s *submissionService) MarkResultSeen(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.repository.MarkResultSeen(ctx); err != nil {
		if errors.Is(err, store.ErrNoLocalRegistration) {
			return ErrNoTestRegistered
		}
		return fmt.Errorf("mark result seen: %w", err)
	}

	state := s.current()
	state.ResultSeen = true
	s.publish(state)

	return nil
}

func (s *submissionService) LocalRegistration(ctx context.Context) (models.LocalRegistration, error) {
	registration, err := s.repository.GetRegistration(ctx)
	if errors.Is(err, store.ErrNoLocalRegistration) {
		return models.LocalRegistration{}, ErrNoTestRegistered
	}
	if err != nil {
		return models.LocalRegistration{}, fmt.Errorf("get local registration: %w", err)
	}

	return registration, nil
}

func (s *submissionService) RegistrationToken(ctx context.Context) (string, error) {
	registration, err := s.LocalRegistration(ctx)
	if err != nil {
		return "", err
	}

	return registration.RegistrationToken, nil
}

func (s *submissionService) ServerVersion(ctx context.Context) (string, error) {
	version, err := s.adapter.GetServerVersion(ctx)
	if err != nil {
		return "", mapAdapterError(err)
	}
	return version, nil
}

func (s *submissionService) Current() models.SubmissionCardState {
	return s.current()
}

func (s *submissionService) Subscribe() (<-chan models.SubmissionCardState, func()) {
	return s.stream.Subscribe()
}

func (s *submissionService) current() models.SubmissionCardState {
	state, _ := s.stream.Latest()
	return state
}

func (s *submissionService) publish(state models.SubmissionCardState) {
	s.logger.Debug().
		Bool("registered", state.Registered).
		Bool("result_seen", state.ResultSeen).
		Str("fetch", state.DeviceUIState.Status().String()).
		Msg("submission state published")

	s.stream.Publish(state)
}
