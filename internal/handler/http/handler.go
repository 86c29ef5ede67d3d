package http

import (
	"github.com/MKhiriev/go-cwa-home/internal/logger"
	"github.com/MKhiriev/go-cwa-home/internal/service"
)

// Handler serves the verification API over HTTP. Devices and labs share
// one verification service; the version route reads the app info service.
type Handler struct {
	verification service.VerificationService
	appInfo      service.AppInfoService

	logger *logger.Logger
}

func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	h := &Handler{logger: logger}
	if services != nil {
		h.verification = services.VerificationService
		h.appInfo = services.AppInfoService
	}

	logger.Info().
		Bool("verification", h.verification != nil).
		Bool("version", h.appInfo != nil).
		Msg("http handler created")
	return h
}
