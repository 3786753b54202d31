package client

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-inbox-pilot/internal/adapter"
	"github.com/MKhiriev/go-inbox-pilot/internal/logger"
	"github.com/MKhiriev/go-inbox-pilot/models"
)

// Credentials identifies the account the smoke flow runs under.
// Password lives in memory only and never reaches the logs.
type Credentials struct {
	Email    string
	Password string
	Name     string
}

// App exercises every public endpoint of the backend in sequence and reports
// the results through its logger. It is the runtime behind the smoke client
// binary.
type App struct {
	server adapter.ServerAdapter
	creds  Credentials
	logger *logger.Logger
}

// NewApp wires a smoke client around the given server adapter.
func NewApp(server adapter.ServerAdapter, creds Credentials, log *logger.Logger) (*App, error) {
	if server == nil {
		return nil, errors.New("client app error: server adapter is nil")
	}
	if strings.TrimSpace(creds.Email) == "" || creds.Password == "" {
		return nil, errors.New("client app error: email and password are required")
	}

	return &App{server: server, creds: creds, logger: log}, nil
}

// Run walks the endpoints end to end: greeting, version, register (or login
// when the email is already taken), identity, settings read, a no-op settings
// update, and the diagnostics snapshot. The first failing step aborts the run.
func (a *App) Run(ctx context.Context) error {
	greeting, err := a.server.Hello(ctx)
	if err != nil {
		return fmt.Errorf("hello: %w", err)
	}
	a.logger.Info().Str("greeting", greeting).Msg("backend reachable")

	version, err := a.server.ServerVersion(ctx)
	if err != nil {
		return fmt.Errorf("server version: %w", err)
	}
	a.logger.Info().Str("version", version).Msg("backend version")

	if err = a.signIn(ctx); err != nil {
		return err
	}

	me, err := a.server.Me(ctx)
	if err != nil {
		return fmt.Errorf("me: %w", err)
	}
	a.logger.Info().
		Str("id", me.ID).
		Str("email", me.Email).
		Str("role", me.Role).
		Msg("authenticated")

	settings, err := a.server.GetSettings(ctx)
	if err != nil {
		return fmt.Errorf("get settings: %w", err)
	}
	a.logger.Info().
		Str("workspace", settings.WorkspaceName).
		Int("tone", settings.Tone).
		Msg("settings loaded")

	// Re-sending the current tone checks the update path without altering
	// the stored document.
	updated, err := a.server.UpdateSettings(ctx, models.SettingsUpdate{Tone: &settings.Tone})
	if err != nil {
		return fmt.Errorf("update settings: %w", err)
	}
	if updated.Tone != settings.Tone {
		return fmt.Errorf("update settings: tone changed from %d to %d on a no-op update", settings.Tone, updated.Tone)
	}
	a.logger.Info().Msg("settings update round-trip ok")

	report, err := a.server.Diagnostics(ctx)
	if err != nil {
		return fmt.Errorf("diagnostics: %w", err)
	}
	a.logger.Info().
		Str("backend", report.Backend).
		Str("database", report.Database).
		Str("connection", report.ConnectionStatus).
		Msg("diagnostics collected")

	return nil
}

// signIn registers the account and falls back to login when registration is
// rejected; both paths leave the adapter holding a fresh access token.
func (a *App) signIn(ctx context.Context) error {
	err := a.server.Register(ctx, models.RegisterRequest{
		Email:    a.creds.Email,
		Password: a.creds.Password,
		Name:     a.creds.Name,
	})
	if err == nil {
		a.logger.Info().Str("email", a.creds.Email).Msg("account registered")
		return nil
	}
	if !errors.Is(err, adapter.ErrBadRequest) {
		return fmt.Errorf("register: %w", err)
	}

	// A duplicate email answers with a bad request, so the account most
	// likely exists already.
	if err = a.server.Login(ctx, models.LoginRequest{Email: a.creds.Email, Password: a.creds.Password}); err != nil {
		return fmt.Errorf("login: %w", err)
	}
	a.logger.Info().Str("email", a.creds.Email).Msg("logged in to existing account")

	return nil
}
