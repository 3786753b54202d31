package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-inbox-pilot/internal/app"
	"github.com/MKhiriev/go-inbox-pilot/internal/logger"
	"github.com/MKhiriev/go-inbox-pilot/internal/service"
	"github.com/MKhiriev/go-inbox-pilot/internal/store"
	"github.com/MKhiriev/go-inbox-pilot/internal/utils"
	"github.com/MKhiriev/go-inbox-pilot/models"
)

// register creates a new account and answers with a bearer token, so the
// client is logged in right after signing up.
func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	registeredUser, err := h.services.AuthService.Register(ctx, request)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrEmailAlreadyExists):
			log.Err(err).Msg("email already registered")
			http.Error(w, app.MsgEmailAlreadyRegistered, http.StatusBadRequest)
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		default:
			log.Err(err).Msg("unexpected error occurred during user registration")
			http.Error(w, app.MsgRegistrationFailed, statusFromError(err))
		}
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, registeredUser)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		http.Error(w, app.MsgInternalServerError, http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, models.NewTokenResponse(&token), http.StatusOK)
}

// login verifies credentials and answers with a fresh bearer token.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, request)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		case errors.Is(err, service.ErrInvalidCredentials):
			log.Warn().Str("email", request.Email).Msg("invalid credentials")
			http.Error(w, app.MsgInvalidCredentials, http.StatusUnauthorized)
		case errors.Is(err, service.ErrUserIsInactive):
			log.Warn().Str("email", request.Email).Msg("login attempt for inactive user")
			http.Error(w, app.MsgUserIsInactive, http.StatusForbidden)
		default:
			log.Err(err).Msg("unexpected error occurred during user login")
			http.Error(w, app.MsgLoginFailed, statusFromError(err))
		}
		return
	}

	log.Debug().Int64("userID", foundUser.UserID).Msg("user successfully logged in")

	token, err := h.services.AuthService.CreateToken(ctx, foundUser)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		http.Error(w, app.MsgInternalServerError, http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, models.NewTokenResponse(&token), http.StatusOK)
}

// me returns the public projection of the authenticated user bound to the
// request context by the auth middleware.
func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	user, found := utils.GetUserFromContext(r.Context())
	if !found {
		log.Error().Str("func", "*Handler.me").Msg("no authenticated user in request context")
		http.Error(w, app.MsgNotAuthenticated, http.StatusUnauthorized)
		return
	}

	utils.WriteJSON(w, models.NewMeResponse(user), http.StatusOK)
}
