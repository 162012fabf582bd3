package database

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// NewDBConnection opens (or creates) the SQLite file at path, verifies it with
// a ping and makes sure the schema exists.
func NewDBConnection(path string) (*sql.DB, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	// SQLite allows one writer at a time; a single connection avoids
	// SQLITE_BUSY under the low concurrency this tool sees.
	db.SetMaxOpenConns(1)
	db.SetConnMaxLifetime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, err
	}

	if err := initSchema(ctx, db); err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}

func initSchema(ctx context.Context, db *sql.DB) error {
	schema := `
	CREATE TABLE IF NOT EXISTS leads (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		company_name TEXT UNIQUE,
		source_app TEXT,
		city TEXT,
		category TEXT,
		website TEXT,
		email TEXT,
		phone TEXT,
		last_contacted DATE,
		times_contacted INTEGER DEFAULT 0,
		opportunity_score INTEGER
	);

	CREATE TABLE IF NOT EXISTS collab_submissions (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT,
		idea_type TEXT,
		description TEXT,
		priority TEXT,
		timestamp DATETIME DEFAULT CURRENT_TIMESTAMP
	);
	`

	_, err := db.ExecContext(ctx, schema)
	return err
}
