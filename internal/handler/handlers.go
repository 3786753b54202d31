// Package handler aggregates the transport handlers the server can run.
package handler

import (
	"github.com/MKhiriev/go-inbox-pilot/internal/config"
	"github.com/MKhiriev/go-inbox-pilot/internal/handler/grpc"
	"github.com/MKhiriev/go-inbox-pilot/internal/handler/http"
	"github.com/MKhiriev/go-inbox-pilot/internal/logger"
	"github.com/MKhiriev/go-inbox-pilot/internal/service"
)

// Handlers bundles the per-transport handlers. A nil field means the
// matching transport is not configured and must not be started.
type Handlers struct {
	HTTP *http.Handler
	GRPC *grpc.Handler
}

// NewHandlers builds a handler for every transport with a configured
// address. At least one transport must be enabled.
func NewHandlers(services *service.Services, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, cfg, logger)
	}
	if cfg.GRPCAddress != "" {
		handlers.GRPC = grpc.NewHandler(services, logger)
	}

	if handlers.HTTP == nil && handlers.GRPC == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
