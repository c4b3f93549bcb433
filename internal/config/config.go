// Package config persists application settings as a JSON file under
// the user config directory.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/adrg/xdg"
)

const (
	appName  = "budgetcli"
	fileName = "config.json"

	// KeySpreadsheetID holds the id of the spreadsheet all data
	// lives in.
	KeySpreadsheetID = "spreadsheet_id"
	// KeyClientSecret holds the path to the copied OAuth client
	// secret file.
	KeyClientSecret = "client_secret"

	// EnvSpreadsheetID overrides the configured spreadsheet id.
	EnvSpreadsheetID = "BUDGETCLI_SPREADSHEET_ID"
)

// Dir returns the application config directory, creating it if needed.
func Dir() (string, error) {
	dir := filepath.Join(xdg.ConfigHome, appName)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating config dir: %w", err)
	}
	return dir, nil
}

// Store reads and writes the key-value config file. Managers read it
// at construction and never rely on it changing mid-session.
type Store struct {
	mu   sync.Mutex
	path string
}

// Open returns the store at the default config path.
func Open() (*Store, error) {
	dir, err := Dir()
	if err != nil {
		return nil, err
	}
	return NewStore(filepath.Join(dir, fileName)), nil
}

// NewStore returns a store bound to an explicit file path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the config file path.
func (s *Store) Path() string {
	return s.path
}

// Load reads all settings. ok is false when no config file exists yet.
func (s *Store) Load() (map[string]string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

func (s *Store) load() (map[string]string, bool) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, false
	}
	var cfg map[string]string
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, false
	}
	return cfg, true
}

// Get returns one setting; ok is false when the file or key is absent.
func (s *Store) Get(key string) (string, bool) {
	cfg, ok := s.Load()
	if !ok {
		return "", false
	}
	v, ok := cfg[key]
	return v, ok && v != ""
}

// Update writes one setting, creating the file when absent.
func (s *Store) Update(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cfg, ok := s.load()
	if !ok {
		cfg = map[string]string{}
	}
	cfg[key] = value
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// SpreadsheetID resolves the spreadsheet id, letting the environment
// override the config file.
func (s *Store) SpreadsheetID() (string, bool) {
	if v := os.Getenv(EnvSpreadsheetID); v != "" {
		return v, true
	}
	return s.Get(KeySpreadsheetID)
}
