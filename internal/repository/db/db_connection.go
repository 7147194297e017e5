package db

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// InitDB opens or creates the SQLite file at path and ensures the schema exists.
func InitDB(path string) (*sql.DB, error) {
	db, err := sql.Open(sqliteDriverName, path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite at %q: %w", path, err)
	}

	// Conservative pool settings for SQLite
	db.SetMaxOpenConns(1) // SQLite is not great with many writers
	db.SetMaxIdleConns(1)

	// Pragmas to improve reliability
	if _, err := db.Exec("PRAGMA journal_mode = WAL;"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("set PRAGMA journal_mode=WAL: %w", err)
	}
	if _, err := db.Exec("PRAGMA foreign_keys = ON;"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("set PRAGMA foreign_keys=ON: %w", err)
	}
	if _, err := db.Exec("PRAGMA busy_timeout = 5000;"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("set PRAGMA busy_timeout=5000: %w", err)
	}

	if err := ensureSchema(db); err != nil {
		_ = db.Close()
		return nil, err
	}

	// Fail fast if the DB cannot be reached
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}

	return db, nil
}

const sqliteDriverName = "sqlite"

const schemaCitySaves = `
CREATE TABLE IF NOT EXISTS city_saves (
    slot TEXT PRIMARY KEY,
    day INTEGER NOT NULL CHECK (day >= 0),
    budget INTEGER NOT NULL,
    families INTEGER NOT NULL CHECK (families >= 0),
    satisfaction INTEGER NOT NULL,
    tax_rate REAL NOT NULL,
    vat_rate REAL NOT NULL,
    daily_income INTEGER NOT NULL,
    daily_expenses INTEGER NOT NULL,
    events TEXT NOT NULL,
    seed INTEGER NOT NULL DEFAULT 0,
    saved_at TIMESTAMP NOT NULL
);
`

const schemaCityBuildings = `
CREATE TABLE IF NOT EXISTS city_buildings (
    slot TEXT NOT NULL REFERENCES city_saves(slot) ON DELETE CASCADE,
    id INTEGER NOT NULL,
    type TEXT NOT NULL,
    capacity INTEGER NOT NULL,
    condition INTEGER NOT NULL,
    PRIMARY KEY (slot, id)
);
`

const schemaHighscores = `
CREATE TABLE IF NOT EXISTS highscores (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL,
    score INTEGER NOT NULL,
    day INTEGER NOT NULL,
    recorded_at TIMESTAMP NOT NULL
);
`

const indexHighscores = `
CREATE INDEX IF NOT EXISTS idx_highscores_rank ON highscores (score DESC, day ASC);
`

const schemaMayors = `
CREATE TABLE IF NOT EXISTS mayors (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL UNIQUE COLLATE NOCASE,
    password_hash TEXT NOT NULL,
    created_at TIMESTAMP NOT NULL
);
`

func ensureSchema(db *sql.DB) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("begin schema transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for i, stmt := range []string{
		schemaCitySaves,
		schemaCityBuildings,
		schemaHighscores,
		indexHighscores,
		schemaMayors,
	} {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("apply schema statement %d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit schema transaction: %w", err)
	}
	return nil
}
