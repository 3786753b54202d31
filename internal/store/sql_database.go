package store

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/go-inbox-pilot/internal/logger"
	"github.com/MKhiriev/go-inbox-pilot/migrations"
	"github.com/MKhiriev/go-inbox-pilot/models"
)

// Dialect identifies the SQL backend a [DB] is connected to. It selects the
// migration set, the placeholder format and the driver-specific error mapping.
type Dialect string

const (
	DialectPostgres Dialect = "postgres"
	DialectSQLite   Dialect = "sqlite3"
)

// DB wraps a database connection together with the dialect-specific helpers
// the repositories need: a query builder with the right placeholder format
// and an error classifier for retryability decisions.
type DB struct {
	*sql.DB
	dialect            Dialect
	dsn                string
	errorClassificator ErrorClassificator
	queries            queries
	logger             *logger.Logger
}

// Migrate applies all pending schema migrations for the connected dialect.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, string(db.dialect))
}

// Dialect returns the SQL dialect of the underlying connection.
func (db *DB) Dialect() Dialect {
	return db.dialect
}

// isUniqueViolation reports whether err is a unique constraint violation
// from either supported driver.
func isUniqueViolation(err error) bool {
	return postgresUniqueViolation(err) || sqliteUniqueViolation(err)
}

// wrapRetryable marks errors the classifier reports as transient with
// [ErrStoreUnavailable] so upper layers can map them to 5xx responses.
// Non-transient errors pass through unchanged.
func (db *DB) wrapRetryable(err error) error {
	if err == nil {
		return nil
	}
	if db.errorClassificator != nil && db.errorClassificator.Classify(err) == Retryable {
		return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}
	return err
}

// Diagnostics probes the database connection and reports its state in the
// shape served by the GET /test endpoint. Status strings carry leading state
// markers the frontend renders directly; error texts are truncated to keep
// the payload compact.
//
// The method never returns an error: every failure mode is folded into the
// report itself.
func (db *DB) Diagnostics(ctx context.Context) models.StorageDiagnostics {
	diag := models.StorageDiagnostics{
		Backend:          "✅ Running",
		Database:         "❌ Not Available",
		DatabaseURL:      "❌ Not Set",
		DatabaseName:     "❌ Not Set",
		ConnectionStatus: "Not Connected",
		Collections:      []string{},
	}

	if db == nil || db.DB == nil {
		diag.Database = "⚠️  Available but not initialized"
		return diag
	}

	if db.dsn != "" {
		diag.DatabaseURL = "✅ Set"
	}
	if databaseName(db.dsn, db.dialect) != "" {
		diag.DatabaseName = "✅ Set"
	}

	if err := db.PingContext(ctx); err != nil {
		diag.Database = "❌ Error: " + truncateError(err, 50)
		return diag
	}

	diag.Database = "✅ Available"
	diag.ConnectionStatus = "Connected"

	tables, err := db.listTables(ctx)
	if err != nil {
		diag.Database = "⚠️  Connected but Error: " + truncateError(err, 50)
		return diag
	}

	if len(tables) > 10 {
		tables = tables[:10]
	}
	diag.Collections = tables
	diag.Database = "✅ Connected & Working"

	return diag
}

// listTables returns the user-visible table names of the connected database,
// sorted alphabetically.
func (db *DB) listTables(ctx context.Context) ([]string, error) {
	var query string
	switch db.dialect {
	case DialectPostgres:
		query = `SELECT tablename FROM pg_tables WHERE schemaname = 'public' ORDER BY tablename;`
	default:
		query = `SELECT name FROM sqlite_master WHERE type = 'table' AND name NOT LIKE 'sqlite_%' ORDER BY name;`
	}

	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	tables := make([]string, 0, 8)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		tables = append(tables, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return tables, nil
}

// databaseName extracts a human-readable database name from the DSN:
// the path component of a postgres URI, or the file name of an SQLite path.
func databaseName(dsn string, dialect Dialect) string {
	if dsn == "" {
		return ""
	}

	if dialect == DialectPostgres {
		u, err := url.Parse(dsn)
		if err != nil {
			return ""
		}
		return strings.TrimPrefix(u.Path, "/")
	}

	return filepath.Base(dsn)
}

// truncateError renders err and cuts the text down to at most limit runes.
func truncateError(err error, limit int) string {
	msg := err.Error()
	runes := []rune(msg)
	if len(runes) <= limit {
		return msg
	}
	return string(runes[:limit])
}
