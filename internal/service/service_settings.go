package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-inbox-pilot/internal/logger"
	"github.com/MKhiriev/go-inbox-pilot/internal/store"
	"github.com/MKhiriev/go-inbox-pilot/internal/validators"
	"github.com/MKhiriev/go-inbox-pilot/models"
)

// settingsService is the concrete implementation of SettingsService.
// It owns the lazy-materialization rule: a settings document exists from
// the caller's point of view as soon as the account does, even if no row
// has been written yet.
type settingsService struct {
	// settingsRepository is the data-access layer for settings documents.
	settingsRepository store.SettingsRepository

	// validator checks partial updates before anything is written.
	validator validators.Validator

	// now supplies the current time. Kept as a field so tests can freeze it.
	now func() time.Time

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewSettingsService constructs a SettingsService on top of the given
// repository and validator.
func NewSettingsService(settingsRepository store.SettingsRepository, validator validators.Validator, logger *logger.Logger) SettingsService {
	return &settingsService{
		settingsRepository: settingsRepository,
		validator:          validator,
		now:                time.Now,
		logger:             logger,
	}
}

// GetSettings returns the settings document owned by user.
//
// On first access the document does not exist yet; it is materialized from
// the defaults and re-read, so two concurrent first reads both see the one
// document that won the insert.
func (s *settingsService) GetSettings(ctx context.Context, user models.User) (models.Settings, error) {
	log := logger.FromContext(ctx)

	settings, err := s.settingsRepository.GetSettings(ctx, user.UserID)
	if err == nil {
		return settings, nil
	}
	if !errors.Is(err, store.ErrSettingsNotFound) {
		log.Err(err).Int64("userID", user.UserID).Msg("settings lookup ended with error")
		return models.Settings{}, fmt.Errorf("settings lookup ended with error: %w", err)
	}

	// First access: seed the defaults. The insert is a no-op when a
	// concurrent request got there first; the re-read below returns
	// whichever document won.
	defaults := models.DefaultSettings(user, s.now().UTC())
	if err := s.settingsRepository.InsertSettings(ctx, defaults); err != nil {
		log.Err(err).Int64("userID", user.UserID).Msg("default settings creation ended with error")
		return models.Settings{}, fmt.Errorf("default settings creation ended with error: %w", err)
	}

	settings, err = s.settingsRepository.GetSettings(ctx, user.UserID)
	if err != nil {
		log.Err(err).Int64("userID", user.UserID).Msg("settings lookup after creation ended with error")
		return models.Settings{}, fmt.Errorf("settings lookup after creation ended with error: %w", err)
	}

	return settings, nil
}

// UpdateSettings applies the non-nil fields of update to the user's
// settings document and returns the document as stored afterwards.
//
// Members that omit a role receive the default role before validation,
// mirroring how roles are filled at document creation. An invalid patch is
// rejected as a whole: nothing is written, and the stored document keeps
// its previous state. Updating a document that was never read first
// behaves like updating the defaults.
func (s *settingsService) UpdateSettings(ctx context.Context, user models.User, update models.SettingsUpdate) (models.Settings, error) {
	log := logger.FromContext(ctx)

	normalizeMemberRoles(update.Members)

	if err := s.validator.Validate(ctx, update); err != nil {
		log.Error().Err(err).Int64("userID", user.UserID).Msg("invalid settings update provided")
		return models.Settings{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	// Materialize the document before patching it so the patch always has
	// something to land on.
	if _, err := s.GetSettings(ctx, user); err != nil {
		return models.Settings{}, err
	}

	updated, err := s.settingsRepository.UpdateSettings(ctx, user.UserID, update, s.now().UTC())
	if err != nil {
		log.Err(err).Int64("userID", user.UserID).Msg("settings update ended with error")
		return models.Settings{}, fmt.Errorf("settings update ended with error: %w", err)
	}

	return updated, nil
}

// normalizeMemberRoles fills the default role on members that omit it.
func normalizeMemberRoles(members *models.Members) {
	if members == nil {
		return
	}

	for i := range *members {
		if (*members)[i].Role == "" {
			(*members)[i].Role = models.DefaultMemberRole
		}
	}
}
