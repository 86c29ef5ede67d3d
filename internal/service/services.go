package service

import (
	"fmt"

	"github.com/MKhiriev/go-cwa-home/internal/config"
	"github.com/MKhiriev/go-cwa-home/internal/logger"
	"github.com/MKhiriev/go-cwa-home/internal/store"
	"github.com/MKhiriev/go-cwa-home/internal/utils"
)

// Services groups the verification server services.
type Services struct {
	VerificationService VerificationService
	AppInfoService      AppInfoService
}

// NewServices wires the server services on top of storages.
func NewServices(storages *store.Storages, cfg config.App, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	return &Services{
		VerificationService: NewVerificationService(storages.RegistrationRepository, utils.NewUUIDGenerator(), cfg, logger),
		AppInfoService:      appInfoService,
	}, nil
}
