package service

import (
	"context"

	"github.com/MKhiriev/go-inbox-pilot/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AuthService covers the account lifecycle: registration, credential
// checks and bearer-token issue/verification.
type AuthService interface {
	// Register creates a new account from the given payload and returns
	// the stored user. The email is lowercased before any storage access.
	Register(ctx context.Context, request models.RegisterRequest) (models.User, error)
	// Login verifies the credentials and returns the matching user.
	// Unknown email and wrong password are indistinguishable to the caller.
	Login(ctx context.Context, request models.LoginRequest) (models.User, error)
	// CreateToken issues a signed bearer token for an already
	// authenticated user.
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	// Authenticate verifies a bearer token and resolves it to the current
	// user record. The token is only as good as the account behind it:
	// a deleted or deactivated user invalidates an otherwise valid token.
	Authenticate(ctx context.Context, tokenString string) (models.User, error)
}

// SettingsService serves the per-user settings document.
type SettingsService interface {
	// GetSettings returns the user's settings document, materializing
	// the defaults on first access.
	GetSettings(ctx context.Context, user models.User) (models.Settings, error)
	// UpdateSettings applies a partial update and returns the full
	// document as stored afterwards. An invalid patch leaves the stored
	// document untouched.
	UpdateSettings(ctx context.Context, user models.User, update models.SettingsUpdate) (models.Settings, error)
}

// AppInfoService exposes build metadata of the running server.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// DiagnosticsService reports the health of the storage backend.
type DiagnosticsService interface {
	Report(ctx context.Context) models.StorageDiagnostics
}
