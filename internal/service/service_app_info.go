package service

import (
	"context"

	"github.com/MKhiriev/go-inbox-pilot/internal/config"
	"github.com/MKhiriev/go-inbox-pilot/internal/logger"
)

// appInfoService is the concrete implementation of AppInfoService.
// The version string is fixed at construction and served as-is.
type appInfoService struct {
	appVersion string

	logger *logger.Logger
}

// NewAppInfoService constructs an AppInfoService from the application
// configuration. A missing version is a startup error rather than an empty
// response body later.
func NewAppInfoService(cfg config.App, logger *logger.Logger) (AppInfoService, error) {
	if cfg.Version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	return &appInfoService{
		appVersion: cfg.Version,
		logger:     logger,
	}, nil
}

// GetAppVersion returns the configured application version.
func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	return s.appVersion
}
