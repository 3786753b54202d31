package adapter

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-inbox-pilot/internal/config"
	"github.com/MKhiriev/go-inbox-pilot/internal/logger"
	"github.com/MKhiriev/go-inbox-pilot/internal/utils"
	"github.com/MKhiriev/go-inbox-pilot/models"
)

// httpServerAdapter is the HTTP/REST implementation of [ServerAdapter].
// The bearer token is guarded by a mutex so one adapter can be shared
// across goroutines.
type httpServerAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP implementation of [ServerAdapter]
// pointed at cfg.BaseURL. A bare "host:port" value is accepted and coerced
// to an http URL.
//
// Returns an error if cfg.BaseURL is empty or cannot be parsed.
func NewHTTPServerAdapter(cfg config.Adapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter base url: %w", err)
	}

	client := utils.NewHTTPClient()
	client.
		SetBaseURL(baseURL).
		SetTimeout(cfg.RequestTimeout)

	logger.Debug().Str("base_url", baseURL).Msg("http server adapter created")

	return &httpServerAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", errors.New("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", errors.New("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [ServerAdapter]. The token is stored
// whitespace-trimmed; an empty value clears the authentication state.
func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [ServerAdapter].
func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Register implements [ServerAdapter]. It POSTs the payload to
// /auth/register and stores the bearer token from the response body, so a
// successful call leaves the adapter authenticated as the new account.
func (h *httpServerAdapter) Register(ctx context.Context, request models.RegisterRequest) error {
	var tokenResp models.TokenResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(request).
		SetResult(&tokenResp).
		Post("/auth/register")
	if err != nil {
		return fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	if tokenResp.AccessToken == "" {
		return errors.New("register response carries no access token")
	}

	h.SetToken(tokenResp.AccessToken)
	return nil
}

// Login implements [ServerAdapter]. It POSTs the credentials to /auth/login
// and stores the bearer token from the response body.
func (h *httpServerAdapter) Login(ctx context.Context, request models.LoginRequest) error {
	var tokenResp models.TokenResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(request).
		SetResult(&tokenResp).
		Post("/auth/login")
	if err != nil {
		return fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	if tokenResp.AccessToken == "" {
		return errors.New("login response carries no access token")
	}

	h.SetToken(tokenResp.AccessToken)
	return nil
}

// Me implements [ServerAdapter]. It GETs /auth/me with the stored token.
func (h *httpServerAdapter) Me(ctx context.Context) (models.MeResponse, error) {
	var me models.MeResponse

	resp, err := h.authedRequest(ctx).
		SetResult(&me).
		Get("/auth/me")
	if err != nil {
		return models.MeResponse{}, fmt.Errorf("me request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.MeResponse{}, err
	}

	return me, nil
}

// GetSettings implements [ServerAdapter]. It GETs /settings and decodes the
// full settings document.
func (h *httpServerAdapter) GetSettings(ctx context.Context) (models.Settings, error) {
	var settings models.Settings

	resp, err := h.authedRequest(ctx).
		SetResult(&settings).
		Get("/settings")
	if err != nil {
		return models.Settings{}, fmt.Errorf("get settings request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Settings{}, err
	}

	return settings, nil
}

// UpdateSettings implements [ServerAdapter]. It PUTs the partial update to
// /settings and decodes the document the server stored. Nil fields travel
// as JSON null, which the server reads as "leave unchanged".
func (h *httpServerAdapter) UpdateSettings(ctx context.Context, update models.SettingsUpdate) (models.Settings, error) {
	var settings models.Settings

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(update).
		SetResult(&settings).
		Put("/settings")
	if err != nil {
		return models.Settings{}, fmt.Errorf("update settings request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Settings{}, err
	}

	return settings, nil
}

// ServerVersion implements [ServerAdapter]. The endpoint answers plain
// text, not JSON.
func (h *httpServerAdapter) ServerVersion(ctx context.Context) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get("/api/version")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(string(resp.Body())), nil
}

// Hello implements [ServerAdapter].
func (h *httpServerAdapter) Hello(ctx context.Context) (string, error) {
	var greeting models.MessageResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&greeting).
		Get("/api/hello")
	if err != nil {
		return "", fmt.Errorf("hello request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return greeting.Message, nil
}

// Diagnostics implements [ServerAdapter]. It GETs the storage health report
// from /test.
func (h *httpServerAdapter) Diagnostics(ctx context.Context) (models.StorageDiagnostics, error) {
	var report models.StorageDiagnostics

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&report).
		Get("/test")
	if err != nil {
		return models.StorageDiagnostics{}, fmt.Errorf("diagnostics request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.StorageDiagnostics{}, err
	}

	return report, nil
}

// authedRequest returns a request with the stored bearer token attached.
// Requests without a token are still sent; the server answers 401 and
// mapHTTPError surfaces it as [ErrUnauthorized].
func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}
