package handler

import (
	"github.com/MKhiriev/go-cwa-home/internal/config"
	"github.com/MKhiriev/go-cwa-home/internal/handler/grpc"
	"github.com/MKhiriev/go-cwa-home/internal/handler/http"
	"github.com/MKhiriev/go-cwa-home/internal/logger"
	"github.com/MKhiriev/go-cwa-home/internal/service"
)

// Handlers holds one handler per enabled transport. A transport is enabled
// by configuring its listen address; a nil field means it is off.
type Handlers struct {
	HTTP *http.Handler
	GRPC *grpc.Handler
}

func NewHandlers(services *service.Services, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	if cfg.HTTPAddress == "" && cfg.GRPCAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	var handlers Handlers
	if cfg.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, logger.WithComponent("http"))
	}
	if cfg.GRPCAddress != "" {
		handlers.GRPC = grpc.NewHandler(services, logger.WithComponent("grpc"))
	}

	logger.Info().
		Str("http_address", cfg.HTTPAddress).
		Str("grpc_address", cfg.GRPCAddress).
		Msg("transport handlers created")

	return &handlers, nil
}
