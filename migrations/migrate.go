// Package migrations applies the embedded goose schema migrations.
// Each supported dialect keeps its own migration set in a subdirectory,
// so PostgreSQL and SQLite schemas can diverge where the SQL has to.
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed postgres/*.sql sqlite/*.sql
var embedMigrations embed.FS

// dialectSet binds a store dialect name to the goose driver dialect and the
// directory holding its migration files.
type dialectSet struct {
	gooseDialect string
	dir          string
}

var dialectSets = map[string]dialectSet{
	"postgres": {gooseDialect: "pgx", dir: "postgres"},
	"sqlite3":  {gooseDialect: "sqlite3", dir: "sqlite"},
}

// Migrate applies all pending migrations of the given dialect to db.
// Supported dialects are "postgres" and "sqlite3".
func Migrate(db *sql.DB, dialect string) error {
	if db == nil {
		return errors.New("migration error: db is nil")
	}

	set, ok := dialectSets[dialect]
	if !ok {
		return fmt.Errorf("migration error: unsupported dialect %q", dialect)
	}

	goose.SetBaseFS(embedMigrations)

	if err := goose.SetDialect(set.gooseDialect); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, set.dir); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
