package models

import "time"

// DefaultUserRole is assigned to every account created through the public
// registration endpoint. Elevated roles are provisioned out of band.
const DefaultUserRole = "user"

// User represents an account entity used for authentication and authorization.
// It contains identity attributes and credential-related data.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the internal unique identifier of the user.
	// It is not exposed via JSON and is used only at the persistence layer.
	UserID int64 `json:"-"`

	// Email is the unique user identifier in canonical (lowercase) form.
	// All lookups and uniqueness checks operate on this value.
	Email string `json:"email"`

	// Name is the display name of the user.
	// Defaults to the local part of the email when not provided at registration.
	Name string `json:"name"`

	// PasswordHash stores the user's password representation.
	// This value MUST be a derived value (bcrypt output), never plaintext.
	// It is never exposed via JSON and must never be logged.
	PasswordHash string `json:"-"`

	// Role is the authorization role carried into issued tokens.
	Role string `json:"role"`

	// IsActive reports whether the account may authenticate.
	// Deactivated accounts keep their data but are refused login.
	IsActive bool `json:"is_active"`

	// CreatedAt is the timestamp when the user account was created.
	// Used for auditing and lifecycle management.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is the timestamp of the last modification of the account.
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "authuser"
}

// LocalPart returns the part of the user's email before the '@'.
// Used as a display-name fallback when the account has no explicit name.
func (u User) LocalPart() string {
	for i := 0; i < len(u.Email); i++ {
		if u.Email[i] == '@' {
			return u.Email[:i]
		}
	}
	return u.Email
}
