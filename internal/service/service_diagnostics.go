package service

import (
	"context"

	"github.com/MKhiriev/go-inbox-pilot/internal/logger"
	"github.com/MKhiriev/go-inbox-pilot/models"
)

// StorageDiagnoser is the slice of the storage layer the diagnostics
// service needs. *store.DB satisfies it.
type StorageDiagnoser interface {
	Diagnostics(ctx context.Context) models.StorageDiagnostics
}

// diagnosticsService is the concrete implementation of DiagnosticsService.
type diagnosticsService struct {
	storage StorageDiagnoser
	logger  *logger.Logger
}

// NewDiagnosticsService constructs a DiagnosticsService reporting on the
// given storage backend.
func NewDiagnosticsService(storage StorageDiagnoser, logger *logger.Logger) DiagnosticsService {
	return &diagnosticsService{
		storage: storage,
		logger:  logger,
	}
}

// Report probes the storage backend and returns its current health.
// The report always comes back; a broken backend shows up in the statuses
// rather than as an error.
func (s *diagnosticsService) Report(ctx context.Context) models.StorageDiagnostics {
	return s.storage.Diagnostics(ctx)
}
