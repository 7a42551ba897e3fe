package db

import (
	"database/sql"
	_ "embed"
	"fmt"
)

//go:embed schema.sql
var schemaSQL string

// SchemaVersion is stored in PRAGMA user_version once the schema is applied.
const SchemaVersion = 1

// ApplyMigrations creates the tables, indexes and triggers that do not exist
// yet and records SchemaVersion. It is safe to run on every open.
func ApplyMigrations(conn *sql.DB) error {
	if _, err := conn.Exec(schemaSQL); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	if _, err := conn.Exec(fmt.Sprintf("PRAGMA user_version = %d", SchemaVersion)); err != nil {
		return fmt.Errorf("record schema version: %w", err)
	}
	return nil
}

// UserVersion returns the schema version stored in conn.
func UserVersion(conn *sql.DB) (int, error) {
	var v int
	if err := conn.QueryRow("PRAGMA user_version").Scan(&v); err != nil {
		return 0, err
	}
	return v, nil
}
