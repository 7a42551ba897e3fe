// Package config resolves vff's data locations and persisted defaults.
package config

import (
	"os"
	"path/filepath"
)

const (
	// EnvVFFHome overrides the data directory.
	EnvVFFHome = "VFF_HOME"
	// EnvVFFDB overrides the SQLite database path.
	EnvVFFDB = "VFF_DB"
)

// DataDir returns the directory used to store vff data.
func DataDir() (string, error) {
	if d := os.Getenv(EnvVFFHome); d != "" {
		return d, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".vff"), nil
}

// EnsureDataDir returns DataDir after creating it if needed.
func EnsureDataDir() (string, error) {
	d, err := DataDir()
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(d, 0o755); err != nil {
		return "", err
	}
	return d, nil
}

// DBPath returns the full path to the SQLite database file.
func DBPath() (string, error) {
	if p := os.Getenv(EnvVFFDB); p != "" {
		return p, nil
	}
	d, err := DataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(d, "vff.db"), nil
}

// SettingsPath returns the path of the JSON settings file.
func SettingsPath() (string, error) {
	d, err := DataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(d, "config.json"), nil
}
