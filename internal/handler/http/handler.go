package http

import (
	"github.com/MKhiriev/go-inbox-pilot/internal/config"
	"github.com/MKhiriev/go-inbox-pilot/internal/logger"
	"github.com/MKhiriev/go-inbox-pilot/internal/service"
)

// Handler owns the HTTP transport: routing, middleware and request
// handlers. All domain behavior lives in the injected services; the
// handler only translates between the wire and the service layer.
type Handler struct {
	services *service.Services

	// corsAllowedOrigins is handed to the CORS middleware. The development
	// default of "*" admits any browser origin.
	corsAllowedOrigins []string

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:           services,
		corsAllowedOrigins: cfg.CORSAllowedOrigins,
		logger:             logger,
	}
}
