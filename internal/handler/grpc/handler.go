// Package grpc exposes the standard gRPC health checking protocol
// (grpc.health.v1.Health) so orchestrators and load balancers can probe
// the backend without going through the HTTP surface.
package grpc

import (
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/MKhiriev/go-inbox-pilot/internal/logger"
	"github.com/MKhiriev/go-inbox-pilot/internal/service"
)

// ServiceName is the per-service key under which the backend reports its
// health, next to the overall ("") status.
const ServiceName = "inbox-pilot"

// Handler is the root gRPC transport handler. It owns the health service
// state; one instance is created at startup and shared by the gRPC server.
type Handler struct {
	// services provides access to the application business operations for
	// future RPC services registered alongside the health check.
	services *service.Services

	// health implements grpc.health.v1.Health, including Watch streaming.
	health *health.Server

	// logger is used for transport diagnostics.
	logger *logger.Logger
}

// NewHandler constructs a [Handler] over the given service container.
// The health state starts as NOT_SERVING until [Handler.Register] is called.
func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	h := &Handler{
		services: services,
		health:   health.NewServer(),
		logger:   logger,
	}
	h.health.SetServingStatus("", healthpb.HealthCheckResponse_NOT_SERVING)
	h.health.SetServingStatus(ServiceName, healthpb.HealthCheckResponse_NOT_SERVING)

	logger.Debug().Msg("grpc handler created")

	return h
}

// Register attaches the health service to srv and marks the backend as
// serving. Called by the gRPC server right before it starts listening.
func (h *Handler) Register(srv *grpc.Server) {
	healthpb.RegisterHealthServer(srv, h.health)

	h.health.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	h.health.SetServingStatus(ServiceName, healthpb.HealthCheckResponse_SERVING)

	h.logger.Info().Msg("grpc health service registered")
}

// SetNotServing flips the reported status so load balancers stop routing
// new work here. Called at the start of a graceful shutdown.
func (h *Handler) SetNotServing() {
	h.health.SetServingStatus("", healthpb.HealthCheckResponse_NOT_SERVING)
	h.health.SetServingStatus(ServiceName, healthpb.HealthCheckResponse_NOT_SERVING)
}
