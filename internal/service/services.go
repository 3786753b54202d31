package service

import (
	"github.com/MKhiriev/go-inbox-pilot/internal/config"
	"github.com/MKhiriev/go-inbox-pilot/internal/crypto"
	"github.com/MKhiriev/go-inbox-pilot/internal/logger"
	"github.com/MKhiriev/go-inbox-pilot/internal/store"
	"github.com/MKhiriev/go-inbox-pilot/internal/validators"
)

// Services aggregates every application service behind a single injection
// point for the transport layer.
type Services struct {
	AuthService        AuthService
	SettingsService    SettingsService
	AppInfoService     AppInfoService
	DiagnosticsService DiagnosticsService
}

// NewServices wires all services to the given storages and configuration.
func NewServices(storages *store.Storages, cfg *config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	hasher := crypto.NewPasswordHasher(cfg.App.BcryptCost)

	return &Services{
		AuthService:        NewAuthService(storages.UserRepository, storages.SettingsRepository, hasher, validators.NewCredentialsValidator(), cfg.App, logger),
		SettingsService:    NewSettingsService(storages.SettingsRepository, validators.NewSettingsValidator(), logger),
		AppInfoService:     appInfoService,
		DiagnosticsService: NewDiagnosticsService(storages.DB, logger),
	}, nil
}
