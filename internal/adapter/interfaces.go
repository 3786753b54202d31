// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the outbound API client for a running inbox-pilot
// backend.
//
// The primary abstraction is [ServerAdapter], which hides the wire protocol
// from callers. The package ships an HTTP/REST implementation
// ([NewHTTPServerAdapter]) used by the smoke client and end-to-end checks.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrUnauthorized] for 401, [ErrForbidden] for 403).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-inbox-pilot/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter is the client-side view of the backend API. Implementations
// own serialization, bearer-token management, and the mapping of transport
// failures to the sentinel errors of this package.
type ServerAdapter interface {
	// SetToken stores the bearer token attached to all subsequent
	// authenticated requests. Register and Login call it automatically on
	// success.
	SetToken(token string)

	// Token returns the bearer token currently held by the adapter, or an
	// empty string when no token has been set yet.
	Token() string

	// Register creates a new account. On success the returned bearer token
	// is stored via SetToken, so the adapter is immediately authenticated.
	Register(ctx context.Context, request models.RegisterRequest) error

	// Login authenticates an existing account and stores the returned
	// bearer token via SetToken.
	Login(ctx context.Context, request models.LoginRequest) error

	// Me returns the profile of the account behind the stored token.
	Me(ctx context.Context) (models.MeResponse, error)

	// GetSettings fetches the full settings document of the current user.
	GetSettings(ctx context.Context) (models.Settings, error)

	// UpdateSettings applies a partial update and returns the full
	// document as stored afterwards.
	UpdateSettings(ctx context.Context, update models.SettingsUpdate) (models.Settings, error)

	// ServerVersion returns the version string the backend reports.
	ServerVersion(ctx context.Context) (string, error)

	// Hello fetches the API greeting. Cheap liveness probe.
	Hello(ctx context.Context) (string, error)

	// Diagnostics returns the storage health report of the backend.
	Diagnostics(ctx context.Context) (models.StorageDiagnostics, error)
}
