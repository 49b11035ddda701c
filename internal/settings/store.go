package settings

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/iburimskiy/cursorglow/internal/config"
)

// Store keeps the settings record in a single JSON file.
type Store struct {
	path string
}

// DefaultPath is <user config dir>/cursorglow/settings.json.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate config dir: %w", err)
	}
	return filepath.Join(dir, config.SettingsDir, config.SettingsFile), nil
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

func (s *Store) Path() string {
	return s.path
}

// Load reads the settings file. A missing file is not an error and yields
// the defaults. Any other error still comes with a usable record: the
// defaults when the file could not be read, or the decoded record with the
// rejected fields reset when only some keys were bad.
func (s *Store) Load() (Record, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return Defaults(), nil
	}
	if err != nil {
		return Defaults(), fmt.Errorf("failed to read settings: %w", err)
	}
	return Decode(data, Defaults())
}

// Save writes r, creating the settings directory if needed.
func (s *Store) Save(r Record) error {
	data, err := Encode(r)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("failed to create settings dir: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	return nil
}
