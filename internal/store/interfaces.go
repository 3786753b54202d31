package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"
	"time"

	"github.com/MKhiriev/go-inbox-pilot/models"
)

// UserRepository persists and retrieves user accounts.
type UserRepository interface {

	// CreateUser inserts a new account and returns it with server-assigned
	// fields populated. Returns [ErrEmailAlreadyExists] when the canonical
	// email is already taken.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByEmail looks up an account by its canonical (lowercase) email.
	// Returns [ErrNoUserWasFound] when no such account exists.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
}

// SettingsRepository persists and retrieves per-user settings documents.
type SettingsRepository interface {

	// GetSettings returns the settings document owned by userID.
	// Returns [ErrSettingsNotFound] when the document has not been
	// materialized yet.
	GetSettings(ctx context.Context, userID int64) (models.Settings, error)

	// InsertSettings stores a freshly built settings document. Inserting a
	// document for a user that already has one is a silent no-op, so
	// concurrent first reads cannot clobber each other.
	InsertSettings(ctx context.Context, settings models.Settings) error

	// UpdateSettings applies the non-nil fields of update to the document
	// owned by userID, stamps updated_at with now, and returns the full
	// updated document. Returns [ErrSettingsNotFound] when the document
	// does not exist.
	UpdateSettings(ctx context.Context, userID int64, update models.SettingsUpdate, now time.Time) (models.Settings, error)
}

// ErrorClassificator decides whether a failed database operation is worth
// retrying. Implementations inspect driver-specific error values.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
