package db

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/VoxDroid/vff/internal/config"
)

func TestInitDBCreatesFileAndSchema(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv(config.EnvVFFHome, tmp)
	t.Setenv(config.EnvVFFDB, "")

	db, err := InitDB()
	if err != nil {
		t.Fatalf("InitDB() error: %v", err)
	}
	defer func() { _ = db.Close() }()

	if _, err := os.Stat(filepath.Join(tmp, "vff.db")); err != nil {
		t.Fatalf("db file not created: %v", err)
	}

	var count int
	r := db.QueryRow("SELECT count(*) FROM sqlite_master WHERE type='table' AND name='searches'")
	if err := r.Scan(&count); err != nil {
		t.Fatalf("query schema: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected table 'searches' to exist")
	}

	if _, err := db.Exec("INSERT INTO searches (target, algorithm, line_count, complete_count, duration_us, created_at) VALUES (?, ?, ?, ?, ?, datetime('now'))", "greek", "refined", 3, 1, 42); err != nil {
		t.Fatalf("insert search failed: %v", err)
	}
	if v, err := UserVersion(db); err != nil || v != SchemaVersion {
		t.Fatalf("UserVersion() = %d, %v; want %d", v, err, SchemaVersion)
	}
}

func TestOpenCreatesNestedDirAndReopens(t *testing.T) {
	p := filepath.Join(t.TempDir(), "a", "b", "history.db")
	for i := 0; i < 2; i++ {
		db, err := Open(p)
		if err != nil {
			t.Fatalf("Open (run %d): %v", i+1, err)
		}
		if _, err := db.Exec("INSERT INTO searches (target, algorithm, line_count, complete_count, created_at) VALUES ('x', 'simple', 1, 1, datetime('now'))"); err != nil {
			t.Fatalf("insert (run %d): %v", i+1, err)
		}
		_ = db.Close()
	}

	db, err := Open(p)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer db.Close()
	var n, dur int
	if err := db.QueryRow("SELECT count(*), max(duration_us) FROM searches").Scan(&n, &dur); err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 2 || dur != 0 {
		t.Fatalf("expected 2 rows with default duration, got n=%d duration=%d", n, dur)
	}
}

func TestRejectBlobTargetInsert(t *testing.T) {
	db, err := Open(filepath.Join(t.TempDir(), "blob.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer db.Close()
	if _, err := db.Exec("INSERT INTO searches (target, algorithm, line_count, complete_count, created_at) VALUES (?, 'refined', 0, 0, datetime('now'))", []byte{0xff, 0xfe}); err == nil {
		t.Fatalf("expected blob insert to be rejected by trigger")
	}
}
