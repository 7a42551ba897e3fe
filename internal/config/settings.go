package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/VoxDroid/vff/internal/distance"
	"github.com/VoxDroid/vff/internal/render"
)

// Settings holds persisted defaults for the search command. Flags given on
// the command line take precedence.
type Settings struct {
	Algorithm  string `json:"algorithm,omitempty"`
	MaxResults int    `json:"max_results,omitempty"`
	Group      *bool  `json:"group,omitempty"`
	Color      string `json:"color,omitempty"`
	Record     bool   `json:"record,omitempty"`
}

// Keys lists the settings accepted by Set, in display order.
var Keys = []string{"algorithm", "max_results", "group", "color", "record"}

// Defaults returns the built-in settings.
func Defaults() Settings {
	group := true
	return Settings{
		Algorithm: string(distance.DefaultAlgorithm),
		Group:     &group,
		Color:     string(render.ColorAuto),
	}
}

// GroupComplete reports the effective group setting.
func (s Settings) GroupComplete() bool {
	return s.Group == nil || *s.Group
}

// Validate checks that every field holds an accepted value.
func (s Settings) Validate() error {
	if _, err := distance.Lookup(s.Algorithm); err != nil {
		return err
	}
	if _, err := render.ParseColorMode(s.Color); err != nil {
		return err
	}
	if s.MaxResults < 0 {
		return fmt.Errorf("max_results must not be negative, got %d", s.MaxResults)
	}
	return nil
}

// Set assigns value to the setting named key.
func (s *Settings) Set(key, value string) error {
	value = strings.TrimSpace(value)
	switch key {
	case "algorithm":
		if _, err := distance.Lookup(value); err != nil {
			return err
		}
		s.Algorithm = strings.ToLower(value)
	case "max_results":
		n, err := strconv.Atoi(value)
		if err != nil || n < 0 {
			return fmt.Errorf("max_results must be a non-negative integer, got %q", value)
		}
		s.MaxResults = n
	case "group":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("group must be true or false, got %q", value)
		}
		s.Group = &b
	case "color":
		m, err := render.ParseColorMode(value)
		if err != nil {
			return err
		}
		s.Color = string(m)
	case "record":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("record must be true or false, got %q", value)
		}
		s.Record = b
	default:
		return fmt.Errorf("unknown setting %q (want one of %s)", key, strings.Join(Keys, ", "))
	}
	return nil
}

// LoadSettings reads the settings file. A missing file yields Defaults;
// fields absent from the file keep their default values.
func LoadSettings() (Settings, error) {
	s := Defaults()
	p, err := SettingsPath()
	if err != nil {
		return s, err
	}
	b, err := os.ReadFile(p)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return s, err
	}
	if err := json.Unmarshal(b, &s); err != nil {
		return Defaults(), fmt.Errorf("parse %s: %w", p, err)
	}
	if err := s.Validate(); err != nil {
		return Defaults(), fmt.Errorf("invalid %s: %w", p, err)
	}
	return s, nil
}

// SaveSettings writes s to the settings file.
func SaveSettings(s Settings) (err error) {
	if _, err := EnsureDataDir(); err != nil {
		return err
	}
	p, err := SettingsPath()
	if err != nil {
		return err
	}
	f, err := os.Create(p)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(s)
}

// ResetSettings removes the settings file. It is not an error if none exists.
func ResetSettings() error {
	p, err := SettingsPath()
	if err != nil {
		return err
	}
	if err := os.Remove(p); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
