package http

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-inbox-pilot/internal/app"
	"github.com/MKhiriev/go-inbox-pilot/internal/logger"
	"github.com/MKhiriev/go-inbox-pilot/internal/service"
	"github.com/MKhiriev/go-inbox-pilot/internal/store"
	"github.com/MKhiriev/go-inbox-pilot/internal/utils"
)

// auth is an HTTP middleware that enforces JWT-based authentication.
//
// It inspects the incoming "Authorization" header, extracts the bearer
// token, resolves it to a live user record via
// [service.AuthService.Authenticate], and stores that user in the request
// context under [utils.UserCtxKey] before delegating to the next handler.
// Downstream handlers therefore never re-parse the token and always act on
// the account as it exists now, not as it existed when the token was
// issued.
//
// Rejections and their responses:
//   - No "Authorization" header: 401, "Not authenticated".
//   - Malformed header or empty token: 401, "Not authenticated".
//   - Expired token: 401, "Token expired".
//   - Invalid token (bad signature, malformed, missing claims): 401,
//     "Invalid token".
//   - Token user no longer exists: 401, "User not found".
//   - Token user deactivated: 403, "User is inactive".
//
// All rejection events are logged using the context-scoped logger obtained
// via [logger.FromRequest].
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Warn().Err(ErrEmptyAuthorizationHeader).Send()
			http.Error(w, app.MsgNotAuthenticated, http.StatusUnauthorized)
			return
		}

		tokenString, err := getTokenFromAuthHeader(authHeader)
		if err != nil {
			log.Warn().Err(err).Send()
			http.Error(w, app.MsgNotAuthenticated, http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		user, err := h.services.AuthService.Authenticate(ctx, tokenString)
		if err != nil {
			switch {
			case errors.Is(err, service.ErrTokenIsExpired):
				log.Warn().Err(err).Msg("token expired")
				http.Error(w, app.MsgTokenExpired, http.StatusUnauthorized)
			case errors.Is(err, service.ErrTokenIsInvalid):
				log.Warn().Err(err).Msg("invalid token")
				http.Error(w, app.MsgInvalidToken, http.StatusUnauthorized)
			case errors.Is(err, store.ErrNoUserWasFound):
				log.Warn().Err(err).Msg("token user no longer exists")
				http.Error(w, app.MsgUserNotFound, http.StatusUnauthorized)
			case errors.Is(err, service.ErrUserIsInactive):
				log.Warn().Err(err).Msg("token user is inactive")
				http.Error(w, app.MsgUserIsInactive, http.StatusForbidden)
			default:
				log.Err(err).Msg("error occurred during token authentication")
				http.Error(w, app.MsgInternalServerError, statusFromError(err))
			}
			return
		}

		// Bind the resolved user so downstream handlers act on the live
		// account without another lookup.
		ctx = context.WithValue(ctx, utils.UserCtxKey, user)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// getTokenFromAuthHeader extracts the bearer token string from a raw
// "Authorization" HTTP header value.
//
// The header is expected to follow the standard format:
//
//	Authorization: Bearer <token>
//
// The scheme is matched case-insensitively. It returns the following
// sentinel errors:
//   - [ErrInvalidAuthorizationHeader] when the value does not split into a
//     scheme and a token, or the scheme is not "Bearer".
//   - [ErrEmptyToken] when the scheme is present but the token part is an
//     empty string.
func getTokenFromAuthHeader(authHeader string) (string, error) {
	parts := strings.Split(authHeader, " ")
	if len(parts) < 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", ErrInvalidAuthorizationHeader
	}

	tokenString := parts[1]
	if tokenString == "" {
		return "", ErrEmptyToken
	}

	return tokenString, nil
}
