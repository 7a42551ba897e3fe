package config

import (
	"errors"
	"os"
	"testing"

	"github.com/VoxDroid/vff/internal/distance"
)

func TestLoadSettingsMissingFileReturnsDefaults(t *testing.T) {
	t.Setenv(EnvVFFHome, t.TempDir())

	s, err := LoadSettings()
	if err != nil {
		t.Fatalf("LoadSettings(): %v", err)
	}
	if s.Algorithm != "refined" || !s.GroupComplete() || s.Color != "auto" || s.MaxResults != 0 || s.Record {
		t.Fatalf("unexpected defaults: %+v", s)
	}
}

func TestSaveAndLoadSettings(t *testing.T) {
	t.Setenv(EnvVFFHome, t.TempDir())

	s := Defaults()
	for k, v := range map[string]string{
		"algorithm":   "Simple",
		"max_results": "5",
		"group":       "false",
		"color":       "never",
		"record":      "true",
	} {
		if err := s.Set(k, v); err != nil {
			t.Fatalf("Set(%q, %q): %v", k, v, err)
		}
	}
	if err := SaveSettings(s); err != nil {
		t.Fatalf("SaveSettings(): %v", err)
	}

	got, err := LoadSettings()
	if err != nil {
		t.Fatalf("LoadSettings(): %v", err)
	}
	if got.Algorithm != "simple" || got.MaxResults != 5 || got.GroupComplete() || got.Color != "never" || !got.Record {
		t.Fatalf("unexpected settings after round trip: %+v", got)
	}

	if err := ResetSettings(); err != nil {
		t.Fatalf("ResetSettings(): %v", err)
	}
	if err := ResetSettings(); err != nil {
		t.Fatalf("second ResetSettings(): %v", err)
	}
	got, err = LoadSettings()
	if err != nil {
		t.Fatalf("LoadSettings() after reset: %v", err)
	}
	if !got.GroupComplete() || got.Algorithm != "refined" {
		t.Fatalf("expected defaults after reset, got %+v", got)
	}
}

func TestLoadSettingsPartialFileKeepsDefaults(t *testing.T) {
	t.Setenv(EnvVFFHome, t.TempDir())
	p, _ := SettingsPath()
	if _, err := EnsureDataDir(); err != nil {
		t.Fatalf("EnsureDataDir(): %v", err)
	}
	if err := os.WriteFile(p, []byte(`{"max_results": 3}`), 0o644); err != nil {
		t.Fatalf("write settings: %v", err)
	}
	s, err := LoadSettings()
	if err != nil {
		t.Fatalf("LoadSettings(): %v", err)
	}
	if s.MaxResults != 3 || !s.GroupComplete() || s.Algorithm != "refined" {
		t.Fatalf("unexpected settings: %+v", s)
	}
}

func TestLoadSettingsRejectsBadFiles(t *testing.T) {
	t.Setenv(EnvVFFHome, t.TempDir())
	p, _ := SettingsPath()
	if _, err := EnsureDataDir(); err != nil {
		t.Fatalf("EnsureDataDir(): %v", err)
	}

	if err := os.WriteFile(p, []byte(`{not json`), 0o644); err != nil {
		t.Fatalf("write settings: %v", err)
	}
	if _, err := LoadSettings(); err == nil {
		t.Fatalf("expected error for malformed settings")
	}

	if err := os.WriteFile(p, []byte(`{"algorithm": "soundex"}`), 0o644); err != nil {
		t.Fatalf("write settings: %v", err)
	}
	if _, err := LoadSettings(); !errors.Is(err, distance.ErrUnknownAlgorithm) {
		t.Fatalf("expected ErrUnknownAlgorithm, got %v", err)
	}
}

func TestSetRejectsInvalidValues(t *testing.T) {
	s := Defaults()
	bad := map[string]string{
		"algorithm":   "soundex",
		"max_results": "-1",
		"group":       "maybe",
		"color":       "purple",
		"record":      "often",
		"unknown":     "x",
	}
	for k, v := range bad {
		if err := s.Set(k, v); err == nil {
			t.Fatalf("Set(%q, %q) should fail", k, v)
		}
	}
}

func TestSaveSettingsReportsWriteFailure(t *testing.T) {
	t.Setenv(EnvVFFHome, t.TempDir())
	p, _ := SettingsPath()
	// a directory in place of the file makes the write fail
	if err := os.MkdirAll(p, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := SaveSettings(Defaults()); err == nil {
		t.Fatalf("expected SaveSettings to fail when %s is a directory", p)
	}
}
