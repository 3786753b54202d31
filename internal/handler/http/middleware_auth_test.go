package http

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-inbox-pilot/internal/logger"
	"github.com/MKhiriev/go-inbox-pilot/internal/mock"
	"github.com/MKhiriev/go-inbox-pilot/internal/service"
	"github.com/MKhiriev/go-inbox-pilot/internal/store"
	"github.com/MKhiriev/go-inbox-pilot/internal/utils"
	"github.com/MKhiriev/go-inbox-pilot/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// ---- Helpers ----

func newHandlerWithAuthService(authSvc service.AuthService) *Handler {
	return &Handler{
		logger: logger.Nop(),
		services: &service.Services{
			AuthService: authSvc,
		},
	}
}

// injectNopLogger puts a nop logger into the request context so middleware
// logging stays silent in tests.
func injectNopLogger(r *http.Request) *http.Request {
	nop := logger.Nop()
	ctx := nop.Logger.WithContext(r.Context())
	return r.WithContext(ctx)
}

func executeAuth(h *Handler, authHeader string, next http.Handler) *httptest.ResponseRecorder {
	middleware := h.auth(next)
	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	req = injectNopLogger(req)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rr := httptest.NewRecorder()
	middleware.ServeHTTP(rr, req)
	return rr
}

// ---- getTokenFromAuthHeader unit tests ----

func TestGetTokenFromAuthHeader_TableTest(t *testing.T) {
	tests := []struct {
		name      string
		header    string
		wantToken string
		wantErr   error
	}{
		{
			name:      "valid Bearer token",
			header:    "Bearer my-jwt-token",
			wantToken: "my-jwt-token",
		},
		{
			name:      "scheme is matched case-insensitively",
			header:    "bearer my-jwt-token",
			wantToken: "my-jwt-token",
		},
		{
			name:    "missing token part",
			header:  "Bearer",
			wantErr: ErrInvalidAuthorizationHeader,
		},
		{
			name:    "empty header",
			header:  "",
			wantErr: ErrInvalidAuthorizationHeader,
		},
		{
			name:    "non-Bearer scheme is rejected",
			header:  "Basic dXNlcjpwYXNz",
			wantErr: ErrInvalidAuthorizationHeader,
		},
		{
			name:    "only spaces",
			header:  " ",
			wantErr: ErrInvalidAuthorizationHeader,
		},
		{
			name:    "scheme followed by empty token",
			header:  "Bearer ",
			wantErr: ErrEmptyToken,
		},
		{
			name:      "extra parts: second part is used",
			header:    "Bearer token extra-part",
			wantToken: "token",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := getTokenFromAuthHeader(tt.header)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, token)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.wantToken, token)
			}
		})
	}
}

// ---- auth middleware table test ----

func TestAuth_Middleware_TableTest(t *testing.T) {
	tests := []struct {
		name           string
		authHeader     string
		authenticate   func(m *mock.MockAuthService) // nil means Authenticate must not be called
		expectedStatus int
		expectedBody   string
		nextCalled     bool
	}{
		{
			name:           "empty Authorization header",
			authHeader:     "",
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   "Not authenticated",
			nextCalled:     false,
		},
		{
			name:           "header without Bearer scheme",
			authHeader:     "BearerTokenWithoutSpace",
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   "Not authenticated",
			nextCalled:     false,
		},
		{
			name:           "empty token after scheme",
			authHeader:     "Bearer ",
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   "Not authenticated",
			nextCalled:     false,
		},
		{
			name:       "valid token",
			authHeader: "Bearer valid-token",
			authenticate: func(m *mock.MockAuthService) {
				m.EXPECT().
					Authenticate(gomock.Any(), "valid-token").
					Return(activeAlice, nil)
			},
			expectedStatus: http.StatusOK,
			nextCalled:     true,
		},
		{
			name:       "expired token",
			authHeader: "Bearer expired-token",
			authenticate: func(m *mock.MockAuthService) {
				m.EXPECT().
					Authenticate(gomock.Any(), "expired-token").
					Return(models.User{}, fmt.Errorf("%w: exp passed", service.ErrTokenIsExpired))
			},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   "Token expired",
			nextCalled:     false,
		},
		{
			name:       "invalid token",
			authHeader: "Bearer garbage-token",
			authenticate: func(m *mock.MockAuthService) {
				m.EXPECT().
					Authenticate(gomock.Any(), "garbage-token").
					Return(models.User{}, fmt.Errorf("%w: bad signature", service.ErrTokenIsInvalid))
			},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   "Invalid token",
			nextCalled:     false,
		},
		{
			name:       "token user no longer exists",
			authHeader: "Bearer orphan-token",
			authenticate: func(m *mock.MockAuthService) {
				m.EXPECT().
					Authenticate(gomock.Any(), "orphan-token").
					Return(models.User{}, fmt.Errorf("resolving token user: %w", store.ErrNoUserWasFound))
			},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   "User not found",
			nextCalled:     false,
		},
		{
			name:       "token user deactivated",
			authHeader: "Bearer inactive-token",
			authenticate: func(m *mock.MockAuthService) {
				m.EXPECT().
					Authenticate(gomock.Any(), "inactive-token").
					Return(models.User{}, service.ErrUserIsInactive)
			},
			expectedStatus: http.StatusForbidden,
			expectedBody:   "User is inactive",
			nextCalled:     false,
		},
		{
			name:       "unexpected authentication error",
			authHeader: "Bearer any-token",
			authenticate: func(m *mock.MockAuthService) {
				m.EXPECT().
					Authenticate(gomock.Any(), "any-token").
					Return(models.User{}, errors.New("store gone"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   "internal server error",
			nextCalled:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			authSvc := mock.NewMockAuthService(ctrl)
			if tt.authenticate != nil {
				tt.authenticate(authSvc)
			}

			h := newHandlerWithAuthService(authSvc)

			nextCalled := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				w.WriteHeader(http.StatusOK)
			})

			rr := executeAuth(h, tt.authHeader, next)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.Equal(t, tt.nextCalled, nextCalled)
			if tt.expectedBody != "" {
				assert.Contains(t, rr.Body.String(), tt.expectedBody)
			}
		})
	}
}

// ---- Resolved user is bound to the context ----

func TestAuth_UserInContext(t *testing.T) {
	ctrl := gomock.NewController(t)
	authSvc := mock.NewMockAuthService(ctrl)
	authSvc.EXPECT().
		Authenticate(gomock.Any(), "some-token").
		Return(activeAlice, nil)

	h := newHandlerWithAuthService(authSvc)

	var gotUser models.User
	var found bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUser, found = utils.GetUserFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	rr := executeAuth(h, "Bearer some-token", next)

	require.Equal(t, http.StatusOK, rr.Code)
	require.True(t, found, "authenticated user must be present in context")
	assert.Equal(t, activeAlice, gotUser)
}

// ---- Downstream sees the live account, not the token snapshot ----

func TestAuth_LiveAccountWinsOverTokenClaims(t *testing.T) {
	// The account was renamed after the token was issued; the middleware
	// must hand the current record to the handler.
	renamed := activeAlice
	renamed.Name = "Alice Renamed"

	ctrl := gomock.NewController(t)
	authSvc := mock.NewMockAuthService(ctrl)
	authSvc.EXPECT().
		Authenticate(gomock.Any(), gomock.Any()).
		Return(renamed, nil)

	h := newHandlerWithAuthService(authSvc)

	var gotUser models.User
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUser, _ = utils.GetUserFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	rr := executeAuth(h, "Bearer stale-claims-token", next)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "Alice Renamed", gotUser.Name)
}

// ---- Original request context is not mutated ----

func TestAuth_OriginalRequestNotMutated(t *testing.T) {
	ctrl := gomock.NewController(t)
	authSvc := mock.NewMockAuthService(ctrl)
	authSvc.EXPECT().
		Authenticate(gomock.Any(), gomock.Any()).
		Return(activeAlice, nil)

	h := newHandlerWithAuthService(authSvc)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	middleware := h.auth(next)
	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	req = injectNopLogger(req)
	req.Header.Set("Authorization", "Bearer token")
	originalCtx := req.Context()

	rr := httptest.NewRecorder()
	middleware.ServeHTTP(rr, req)

	assert.Equal(t, originalCtx, req.Context(), "original request context must not be mutated")
}

// ---- Concurrent requests: no races ----

func TestAuth_ConcurrentRequests(t *testing.T) {
	ctrl := gomock.NewController(t)
	authSvc := mock.NewMockAuthService(ctrl)
	authSvc.EXPECT().
		Authenticate(gomock.Any(), "concurrent-token").
		Return(activeAlice, nil).
		AnyTimes()

	h := newHandlerWithAuthService(authSvc)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	middleware := h.auth(next)

	const n = 50
	done := make(chan int, n)

	for i := 0; i < n; i++ {
		go func() {
			req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
			req = injectNopLogger(req)
			req.Header.Set("Authorization", "Bearer concurrent-token")
			rr := httptest.NewRecorder()
			middleware.ServeHTTP(rr, req)
			done <- rr.Code
		}()
	}

	for i := 0; i < n; i++ {
		code := <-done
		assert.Equal(t, http.StatusOK, code)
	}
}
