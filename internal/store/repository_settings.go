package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-inbox-pilot/internal/logger"
	"github.com/MKhiriev/go-inbox-pilot/models"
)

// settingsRepository is the SQL-backed implementation of [SettingsRepository].
// It reads and writes the one-row-per-user settings documents in the
// "settings" table through the dialect-aware query builder of the embedded
// [*DB].
type settingsRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewSettingsRepository constructs a [SettingsRepository] backed by the
// provided database connection and logger.
func NewSettingsRepository(db *DB, logger *logger.Logger) SettingsRepository {
	logger.Debug().Msg("creating settings repository")
	return &settingsRepository{
		db:     db,
		logger: logger,
	}
}

// GetSettings returns the settings document owned by userID.
//
// Error handling:
//   - empty result set → [ErrSettingsNotFound].
//   - transient driver failure → wrapped with [ErrStoreUnavailable].
func (r *settingsRepository) GetSettings(ctx context.Context, userID int64) (models.Settings, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.queries.buildGetSettingsQuery(userID)
	if err != nil {
		log.Err(err).Str("func", "*settingsRepository.GetSettings").Msg("error: failed to build select query")
		return models.Settings{}, err
	}

	row := r.db.QueryRowContext(ctx, query, args...)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*settingsRepository.GetSettings").Int64("user_id", userID).Msg("error: query failed")
		return models.Settings{}, r.db.wrapRetryable(fmt.Errorf("%w: %w", ErrExecutingQuery, err))
	}

	settings, err := scanSettingsRow(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Settings{}, ErrSettingsNotFound
		}
		log.Err(err).Str("func", "*settingsRepository.GetSettings").Int64("user_id", userID).Msg("error: scanning error")
		return models.Settings{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return settings, nil
}

// InsertSettings stores a freshly materialized settings document.
//
// The INSERT carries an ON CONFLICT DO NOTHING clause: when a concurrent
// request has materialized the document first, the statement affects zero
// rows and the method returns nil, so the earlier document always wins.
func (r *settingsRepository) InsertSettings(ctx context.Context, settings models.Settings) error {
	log := logger.FromContext(ctx)

	query, args, err := r.db.queries.buildInsertSettingsQuery(settings)
	if err != nil {
		log.Err(err).Str("func", "*settingsRepository.InsertSettings").Msg("error: failed to build insert query")
		return err
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*settingsRepository.InsertSettings").Int64("user_id", settings.UserID).Msg("error: insert failed")
		return r.db.wrapRetryable(fmt.Errorf("%w: %w", ErrExecutingStatement, err))
	}

	if affected, _ := result.RowsAffected(); affected == 0 {
		log.Debug().
			Str("func", "*settingsRepository.InsertSettings").
			Int64("user_id", settings.UserID).
			Msg("settings document already exists, insert skipped")
	}

	return nil
}

// UpdateSettings applies the non-nil fields of update to the document owned
// by userID, stamps updated_at with now, and returns the full updated row.
//
// An empty patch still refreshes updated_at. Returns [ErrSettingsNotFound]
// when no document exists for userID.
func (r *settingsRepository) UpdateSettings(ctx context.Context, userID int64, update models.SettingsUpdate, now time.Time) (models.Settings, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.queries.buildUpdateSettingsQuery(userID, update, now)
	if err != nil {
		log.Err(err).Str("func", "*settingsRepository.UpdateSettings").Msg("error: failed to build update query")
		return models.Settings{}, err
	}

	row := r.db.QueryRowContext(ctx, query, args...)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*settingsRepository.UpdateSettings").Int64("user_id", userID).Msg("error: update failed")
		return models.Settings{}, r.db.wrapRetryable(fmt.Errorf("%w: %w", ErrExecutingStatement, err))
	}

	settings, err := scanSettingsRow(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Settings{}, ErrSettingsNotFound
		}
		log.Err(err).Str("func", "*settingsRepository.UpdateSettings").Int64("user_id", userID).Msg("error: scanning error")
		return models.Settings{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return settings, nil
}

// scanSettingsRow scans one settings row in [settingsColumns] order.
func scanSettingsRow(row *sql.Row) (models.Settings, error) {
	var s models.Settings
	err := row.Scan(
		&s.UserID,
		&s.Name,
		&s.Email,
		&s.Timezone,
		&s.NotifNew,
		&s.NotifVIP,
		&s.NotifAI,
		&s.TwoFA,
		&s.WorkspaceName,
		&s.Members,
		&s.Tone,
		&s.BrandVoice,
		&s.ExampleReplies,
		&s.AvoidWords,
		&s.AIAutoReply,
		&s.MaxReplyLen,
		&s.ProfanityFilter,
		&s.Keywords,
		&s.Integrations,
		&s.Plan,
		&s.BillingCycle,
		&s.PaymentMethod,
		&s.DarkMode,
		&s.Language,
		&s.DateTimeFormat,
		&s.DefaultView,
		&s.CreatedAt,
		&s.UpdatedAt,
	)

	return s, err
}
