// Package config loads and saves the pick settings file.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"
)

const configFile = ".pick/config.json"

// DefaultDBPath is the catalog location relative to the base directory.
const DefaultDBPath = ".pick/catalog.db"

// Settings is the on-disk configuration. Zero values mean "use the
// built-in default"; call WithDefaults before handing them to a dropdown.
type Settings struct {
	Placeholder  string `json:"placeholder,omitempty"`
	LoadingLabel string `json:"loading_label,omitempty"`
	EmptyLabel   string `json:"empty_label,omitempty"`
	Width        int    `json:"width,omitempty"`
	MaxVisible   int    `json:"max_visible,omitempty"`
	Filter       bool   `json:"filter,omitempty"`
	DBPath       string `json:"db_path,omitempty"`
	LatencyMS    int    `json:"latency_ms,omitempty"`

	// LastPicks maps a catalog list name to the id picked last.
	LastPicks map[string]string `json:"last_picks,omitempty"`
}

// Latency returns the simulated fetch latency.
func (s Settings) Latency() time.Duration {
	return time.Duration(s.LatencyMS) * time.Millisecond
}

// WithDefaults returns a copy with empty fields filled in.
func (s Settings) WithDefaults() Settings {
	if s.Placeholder == "" {
		s.Placeholder = "Select..."
	}
	if s.LoadingLabel == "" {
		s.LoadingLabel = "Loading"
	}
	if s.EmptyLabel == "" {
		s.EmptyLabel = "No items"
	}
	if s.Width <= 0 {
		s.Width = 32
	}
	if s.MaxVisible <= 0 {
		s.MaxVisible = 6
	}
	if s.DBPath == "" {
		s.DBPath = DefaultDBPath
	}
	return s
}

// Load reads the settings from disk
func Load(baseDir string) (*Settings, error) {
	configPath := filepath.Join(baseDir, configFile)

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return &Settings{}, nil
		}
		return nil, err
	}

	var cfg Settings
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Save writes the settings to disk
func Save(baseDir string, cfg *Settings) error {
	configPath := filepath.Join(baseDir, configFile)

	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0644)
}

// SetLastPick records the id picked from a list
func SetLastPick(baseDir, list, id string) error {
	cfg, err := Load(baseDir)
	if err != nil {
		return err
	}

	if id == "" {
		delete(cfg.LastPicks, list)
	} else {
		if cfg.LastPicks == nil {
			cfg.LastPicks = make(map[string]string)
		}
		cfg.LastPicks[list] = id
	}
	return Save(baseDir, cfg)
}

// GetLastPick returns the id picked last from a list
func GetLastPick(baseDir, list string) (string, error) {
	cfg, err := Load(baseDir)
	if err != nil {
		return "", err
	}
	return cfg.LastPicks[list], nil
}

// ClearLastPick forgets the last pick for a list
func ClearLastPick(baseDir, list string) error {
	return SetLastPick(baseDir, list, "")
}
