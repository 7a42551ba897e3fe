// Package db opens vff's SQLite history database.
package db

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/VoxDroid/vff/internal/config"
)

// busyTimeoutMS is how long a connection waits for a lock held by another
// vff process before failing.
const busyTimeoutMS = 5000

// InitDB opens the database at config.DBPath.
func InitDB() (*sql.DB, error) {
	p, err := config.DBPath()
	if err != nil {
		return nil, err
	}
	return Open(p)
}

// Open creates the parent directory of path if needed, opens the SQLite file
// and applies the schema. Searches are written one at a time, so the pool is
// limited to a single connection.
func Open(path string) (*sql.DB, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	conn.SetMaxOpenConns(1)
	if _, err := conn.Exec(fmt.Sprintf("PRAGMA busy_timeout = %d", busyTimeoutMS)); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("set busy timeout: %w", err)
	}
	if err := ApplyMigrations(conn); err != nil {
		_ = conn.Close()
		return nil, err
	}
	return conn, nil
}
