package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-cwa-home/internal/config"
	"github.com/MKhiriev/go-cwa-home/internal/logger"
	"github.com/MKhiriev/go-cwa-home/internal/store"
	"github.com/MKhiriev/go-cwa-home/internal/utils"
	"github.com/MKhiriev/go-cwa-home/internal/validators"
	"github.com/MKhiriev/go-cwa-home/models"
)

// resultRedeemAfter is how long a lab result stays retrievable. Older
// results are reported as PAIRED_REDEEMED from then on.
const resultRedeemAfter = 21 * 24 * time.Hour

// verificationService is the concrete implementation of
// [VerificationService].
type verificationService struct {
	registrationRepository store.RegistrationRepository
	idGenerator            utils.IDGenerator
	validator              validators.Validator

	// guidHashKey salts the Argon2id hash of every GUID.
	guidHashKey string

	tokenSignKey  string
	tokenIssuer   string
	tokenDuration time.Duration

	// now is replaced in tests.
	now func() time.Time

	logger *logger.Logger
}

// NewVerificationService constructs a [VerificationService] wired to the
// given repository and populated with token and hashing parameters from
// cfg.
func NewVerificationService(registrationRepository store.RegistrationRepository, idGenerator utils.IDGenerator, cfg config.App, logger *logger.Logger) VerificationService {
	return &verificationService{
		registrationRepository: registrationRepository,
		idGenerator:            idGenerator,
		validator:              validators.NewVerificationValidator(),
		guidHashKey:            cfg.GUIDHashKey,
		tokenSignKey:           cfg.TokenSignKey,
		tokenIssuer:            cfg.TokenIssuer,
		tokenDuration:          cfg.TokenDuration,
		now:                    time.Now,
		logger:                 logger,
	}
}

// RegisterTest validates guid, stores its hash under a fresh registration
// ID and issues a registration token for it.
//
// Returns [ErrInvalidGUID] for a malformed GUID and
// [store.ErrGUIDAlreadyRegistered] when the GUID was paired before.
func (s *verificationService) RegisterTest(ctx context.Context, guid string) (models.RegistrationToken, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, models.RegistrationRequest{GUID: guid}); err != nil {
		return models.RegistrationToken{}, err
	}

	registration, err := s.registrationRepository.CreateRegistration(ctx, models.Registration{
		RegistrationID: s.idGenerator.Generate(),
		HashedGUID:     utils.HashGUID(guid, s.guidHashKey),
	})
	if err != nil {
		log.Err(err).Str("func", "*verificationService.RegisterTest").Msg("error creating registration")
		return models.RegistrationToken{}, err
	}

	token, err := utils.GenerateRegistrationToken(s.tokenIssuer, registration.RegistrationID, s.tokenDuration, s.tokenSignKey)
	if err != nil {
		log.Err(err).Str("func", "*verificationService.RegisterTest").Msg("error generating registration token")
		return models.RegistrationToken{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	log.Info().Str("registration_id", registration.RegistrationID).Msg("test registered")
	return token, nil
}

// GetTestResult validates the token and reports the state of the paired
// test. A lab verdict older than the redemption window is redeemed on first
// lookup and reported as PAIRED_REDEEMED afterwards. A pending test is never
// redeemed.
func (s *verificationService) GetTestResult(ctx context.Context, registrationToken string) (models.TestResultResponse, error) {
	log := logger.FromContext(ctx)

	token, err := utils.ValidateRegistrationToken(registrationToken, s.tokenSignKey, s.tokenIssuer)
	if err != nil {
		log.Debug().Err(err).Str("func", "*verificationService.GetTestResult").Msg("rejected registration token")
		return models.TestResultResponse{}, fmt.Errorf("%w: %w", ErrTokenIsExpiredOrInvalid, err)
	}

	registration, err := s.registrationRepository.GetRegistration(ctx, token.RegistrationID)
	if err != nil {
		return models.TestResultResponse{}, err
	}

	// PAIRED_NO_RESULT uploads carry a timestamp but are not a verdict.
	receivedAt := registration.ResultAt
	if registration.DeviceState == models.PairedNoResult {
		receivedAt = nil
	}

	if registration.Redeemed {
		return models.TestResultResponse{DeviceState: models.PairedRedeemed, ReceivedAt: receivedAt}, nil
	}

	if receivedAt != nil && s.now().Sub(*receivedAt) > resultRedeemAfter {
		if err = s.registrationRepository.MarkRedeemed(ctx, registration.RegistrationID); err != nil {
			log.Err(err).Str("func", "*verificationService.GetTestResult").Msg("error redeeming registration")
			return models.TestResultResponse{}, err
		}
		return models.TestResultResponse{DeviceState: models.PairedRedeemed, ReceivedAt: receivedAt}, nil
	}

	return models.TestResultResponse{
		DeviceState: registration.DeviceState,
		ReceivedAt:  receivedAt,
	}, nil
}

// SaveLabResult stores the lab's verdict under the hash of request.GUID.
// Only lab states are accepted ([models.DeviceState.IsLabResult]).
func (s *verificationService) SaveLabResult(ctx context.Context, request models.LabResultRequest) error {
	if err := s.validator.Validate(ctx, request); err != nil {
		logger.FromContext(ctx).Debug().Err(err).Str("device_state", request.DeviceState.String()).Msg("rejected lab result")
		return err
	}

	if err := s.registrationRepository.SaveLabResult(ctx, utils.HashGUID(request.GUID, s.guidHashKey), request.DeviceState); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*verificationService.SaveLabResult").Msg("error saving lab result")
		return err
	}

	return nil
}
