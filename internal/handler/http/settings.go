package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-inbox-pilot/internal/app"
	"github.com/MKhiriev/go-inbox-pilot/internal/logger"
	"github.com/MKhiriev/go-inbox-pilot/internal/service"
	"github.com/MKhiriev/go-inbox-pilot/internal/utils"
	"github.com/MKhiriev/go-inbox-pilot/models"
)

// getSettings serves the full settings document of the authenticated user,
// materializing the defaults on first access.
func (h *Handler) getSettings(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	user, found := utils.GetUserFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.getSettings").Msg("no authenticated user in request context")
		http.Error(w, app.MsgNotAuthenticated, http.StatusUnauthorized)
		return
	}

	settings, err := h.services.SettingsService.GetSettings(ctx, user)
	if err != nil {
		log.Err(err).Int64("userID", user.UserID).Msg("error getting user settings")
		http.Error(w, app.MsgInternalServerError, statusFromError(err))
		return
	}

	utils.WriteJSON(w, settings, http.StatusOK)
}

// updateSettings applies a partial update to the settings document and
// answers with the full document as stored afterwards. Unknown JSON keys
// are ignored; absent keys leave their fields untouched.
func (h *Handler) updateSettings(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	user, found := utils.GetUserFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.updateSettings").Msg("no authenticated user in request context")
		http.Error(w, app.MsgNotAuthenticated, http.StatusUnauthorized)
		return
	}

	var update models.SettingsUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	settings, err := h.services.SettingsService.UpdateSettings(ctx, user, update)
	if err != nil {
		if errors.Is(err, service.ErrInvalidDataProvided) {
			log.Err(err).Int64("userID", user.UserID).Msg("invalid settings update provided")
			http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
			return
		}
		log.Err(err).Int64("userID", user.UserID).Msg("error updating user settings")
		http.Error(w, app.MsgInternalServerError, statusFromError(err))
		return
	}

	utils.WriteJSON(w, settings, http.StatusOK)
}
