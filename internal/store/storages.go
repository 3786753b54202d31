package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-inbox-pilot/internal/config"
	"github.com/MKhiriev/go-inbox-pilot/internal/logger"
)

// DefaultSQLiteDSN is the development fallback database file used when no
// DSN is configured.
const DefaultSQLiteDSN = "inbox_pilot.db"

// Storages bundles every repository of the persistence layer together with
// the shared database handle used for migrations and diagnostics.
type Storages struct {
	UserRepository     UserRepository
	SettingsRepository SettingsRepository
	DB                 *DB
}

// NewStorages connects to the database selected by the DSN, applies pending
// migrations and constructs all repositories.
//
// Backend selection: a "postgres://" or "postgresql://" DSN opens PostgreSQL
// through pgx; any other non-empty value is treated as an SQLite file path.
// An empty DSN falls back to [DefaultSQLiteDSN] so a bare binary starts up
// for local development.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	dsn := cfg.DB.DSN
	if dsn == "" {
		log.Warn().
			Str("func", "NewStorages").
			Str("dsn", DefaultSQLiteDSN).
			Msg("no database DSN configured, falling back to a local SQLite file")
		dsn = DefaultSQLiteDSN
	}

	var (
		db  *DB
		err error
	)
	if isPostgresDSN(dsn) {
		db, err = NewConnectPostgres(ctx, config.DB{DSN: dsn}, log)
	} else {
		db, err = NewConnectSQLite(ctx, config.DB{DSN: dsn}, log)
	}
	if err != nil {
		return nil, err
	}

	if err := db.Migrate(); err != nil {
		log.Err(err).Str("func", "NewStorages").Msg("error applying database migrations")
		return nil, fmt.Errorf("error applying database migrations: %w", err)
	}

	return &Storages{
		UserRepository:     NewUserRepository(db, log),
		SettingsRepository: NewSettingsRepository(db, log),
		DB:                 db,
	}, nil
}

// isPostgresDSN reports whether the DSN selects the PostgreSQL backend.
func isPostgresDSN(dsn string) bool {
	return strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://")
}
