package journal

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS expansion_runs (
		id              TEXT PRIMARY KEY,
		question        TEXT NOT NULL,
		tag             TEXT NOT NULL,
		source          TEXT NOT NULL CHECK(source IN ('api','manual')),
		patterns_added  INTEGER NOT NULL DEFAULT 0,
		responses_added INTEGER NOT NULL DEFAULT 0,
		created_tag     INTEGER NOT NULL DEFAULT 0,
		dataset_path    TEXT NOT NULL,
		backup_path     TEXT NOT NULL DEFAULT '',
		created_at      TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_expansion_runs_created_at ON expansion_runs(created_at)`,
	`CREATE INDEX IF NOT EXISTS idx_expansion_runs_tag ON expansion_runs(tag)`,
}

// OpenDB opens the journal database at path, creating its directory.
// ":memory:" opens an in-memory database. Migrations run automatically.
func OpenDB(path string) (*sql.DB, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return nil, fmt.Errorf("creating journal directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening journal: %w", err)
	}
	if path == ":memory:" {
		// Each pooled connection would otherwise get its own empty database.
		db.SetMaxOpenConns(1)
	} else if _, err := db.Exec("PRAGMA journal_mode = WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("setting WAL mode: %w", err)
	}

	if err := migrate(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}
	return db, nil
}

func migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}
