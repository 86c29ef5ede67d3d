package grpc

import (
	"github.com/MKhiriev/go-cwa-home/internal/logger"
	"github.com/MKhiriev/go-cwa-home/internal/service"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// VerificationServiceName is the service name reported by the health
// service next to the overall ("") status.
const VerificationServiceName = "cwa.verification"

// Handler is the root gRPC transport handler.
//
// It owns the standard gRPC health service. Load balancers and the home
// client's operators probe it to learn whether the verification server
// accepts traffic.
type Handler struct {
	// services provides access to the verification services.
	services *service.Services

	health *health.Server

	logger *logger.Logger
}

// NewHandler constructs a [Handler]. Both the overall and the
// verification status start as SERVING.
func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")

	h := &Handler{
		services: services,
		health:   health.NewServer(),
		logger:   logger,
	}
	h.health.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	h.health.SetServingStatus(VerificationServiceName, healthpb.HealthCheckResponse_SERVING)

	return h
}

// Register attaches the handler's services to s.
func (h *Handler) Register(s grpc.ServiceRegistrar) {
	healthpb.RegisterHealthServer(s, h.health)
}

// Shutdown flips every status to NOT_SERVING and ignores later updates.
func (h *Handler) Shutdown() {
	h.logger.Debug().Msg("gRPC health set to NOT_SERVING")
	h.health.Shutdown()
}
