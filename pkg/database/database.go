package database

import (
	"database/sql"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

const schema = `
CREATE TABLE IF NOT EXISTS reports (
	id TEXT PRIMARY KEY,
	repo_owner TEXT NOT NULL,
	repo_name TEXT NOT NULL,
	username TEXT NOT NULL,
	days INTEGER NOT NULL,
	report TEXT NOT NULL,
	created_at TIMESTAMP NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_reports_created_at ON reports(created_at);
`

// New opens the SQLite database at the given path and ensures the schema exists
func New(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_synchronous=NORMAL&_busy_timeout=30000&_foreign_keys=ON")
	if err != nil {
		return nil, err
	}

	// Configure connection pool
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(time.Hour)

	// Test the connection
	if err = db.Ping(); err != nil {
		db.Close()
		return nil, err
	}

	if _, err = db.Exec(schema); err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}
