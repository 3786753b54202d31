package models

import "strconv"

// TokenResponse is returned by the registration and login endpoints.
// It carries the signed access token in the shape expected by the web client.
type TokenResponse struct {
	// AccessToken is the compact JWS serialization of the issued token.
	AccessToken string `json:"access_token"`

	// TokenType is always "bearer"; clients put the token into the
	// Authorization header as "Bearer <access_token>".
	TokenType string `json:"token_type"`
}

// NewTokenResponse wraps a signed token string into a bearer token response.
func NewTokenResponse(token *Token) TokenResponse {
	return TokenResponse{
		AccessToken: token.String(),
		TokenType:   "bearer",
	}
}

// MeResponse is the public projection of the authenticated user.
// It exposes identity attributes only, never credential data.
type MeResponse struct {
	// ID is the stringified user identifier.
	ID string `json:"id"`

	// Email is the canonical account email.
	Email string `json:"email"`

	// Name is the display name of the user.
	Name string `json:"name"`

	// Role is the authorization role of the account.
	Role string `json:"role"`
}

// NewMeResponse builds the public projection of a user account.
func NewMeResponse(user User) MeResponse {
	return MeResponse{
		ID:    strconv.FormatInt(user.UserID, 10),
		Email: user.Email,
		Name:  user.Name,
		Role:  user.Role,
	}
}

// MessageResponse is a minimal informational payload used by liveness and
// greeting endpoints.
type MessageResponse struct {
	Message string `json:"message"`
}

// StorageDiagnostics reports the backend and database health snapshot served
// by the diagnostics endpoint. Status strings are human-readable and include
// a leading state marker so the frontend can render them directly.
type StorageDiagnostics struct {
	Backend          string   `json:"backend"`
	Database         string   `json:"database"`
	DatabaseURL      string   `json:"database_url"`
	DatabaseName     string   `json:"database_name"`
	ConnectionStatus string   `json:"connection_status"`
	Collections      []string `json:"collections"`
}
