package db

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite" // pure go sqlite driver
)

const schema = `
CREATE TABLE IF NOT EXISTS categories (
	name TEXT PRIMARY KEY,
	CHECK (length(trim(name)) >= 1)
);

CREATE TABLE IF NOT EXISTS products (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	price INTEGER NOT NULL,
	category_name TEXT NOT NULL
		REFERENCES categories(name) ON DELETE CASCADE ON UPDATE CASCADE,
	CHECK (length(trim(id)) >= 1),
	CHECK (length(trim(name)) >= 1),
	CHECK (length(trim(category_name)) >= 1),
	CHECK (price >= 0)
);
`

// Connect opens the SQLite database at path, applies the pragmas the service
// relies on (WAL, foreign key enforcement, a bounded busy timeout) and creates
// the schema when missing. The pool is capped at a single connection; SQLite
// serializes writers, and contention surfaces as SQLITE_BUSY.
func Connect(path string, busyTimeoutMS int) (*sql.DB, error) {
	if path == "" {
		return nil, fmt.Errorf("database path cannot be empty")
	}

	dsn := fmt.Sprintf(
		"file:%s?_pragma=journal_mode(WAL)&_pragma=busy_timeout(%d)&_pragma=foreign_keys(1)",
		path, busyTimeoutMS,
	)

	conn, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	conn.SetMaxOpenConns(1)

	if err := conn.Ping(); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("database ping failed: %w", err)
	}

	if _, err := conn.Exec(schema); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	return conn, nil
}
