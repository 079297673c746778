// Package settings provides TOML file persistence for plugin settings.
package settings

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/pelletier/go-toml/v2"

	"github.com/runoshun/jira-note/internal/domain"
)

// Ensure Store implements domain.SettingsStore.
var _ domain.SettingsStore = (*Store)(nil)

// Store implements domain.SettingsStore on a single TOML file.
type Store struct {
	filePath string
}

// NewStore creates a store for the settings file at path.
func NewStore(path string) *Store {
	return &Store{filePath: path}
}

// NewStoreFromDefault creates a store in the default global directory.
func NewStoreFromDefault() (*Store, error) {
	dir := DefaultDir()
	if dir == "" {
		return nil, domain.ErrSettingsDirUnavailable
	}
	return NewStore(domain.SettingsPath(dir)), nil
}

// DefaultDir returns the global application directory
// ($XDG_CONFIG_HOME/jira-note or ~/.config/jira-note).
// Returns empty string if the home directory cannot be determined.
func DefaultDir() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return domain.GlobalDir(configHome)
}

// Path returns the settings file path.
func (s *Store) Path() string {
	return s.filePath
}

// Load reads the settings file and merges it over the defaults.
// A missing file yields the defaults.
func (s *Store) Load() (*domain.Settings, error) {
	base := domain.DefaultSettings()

	data, err := os.ReadFile(s.filePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return base, nil
		}
		return nil, fmt.Errorf("read settings: %w", err)
	}

	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrSettingsFileCorrupted, err)
	}

	var file domain.Settings
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrSettingsFileCorrupted, err)
	}

	merged := mergeSettings(base, &file)
	merged.Warnings = unknownKeys(raw)
	return merged, nil
}

// Save writes settings to the file, creating its directory if needed.
func (s *Store) Save(settings *domain.Settings) error {
	// Ensure directory exists with proper permissions (0700)
	dir := filepath.Dir(s.filePath)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("create settings directory: %w", err)
	}

	data, err := toml.Marshal(settings)
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}

	// Write to temp file first, then rename for atomicity.
	// The token lives here, so user read/write only.
	tmpPath := s.filePath + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o600); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := os.Rename(tmpPath, s.filePath); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}

// mergeSettings overlays the non-empty values of override onto base.
func mergeSettings(base, override *domain.Settings) *domain.Settings {
	result := *base
	if override.Host != "" {
		result.Host = override.Host
	}
	if override.Token != "" {
		result.Token = override.Token
	}
	if override.TemplateFilePath != "" {
		result.TemplateFilePath = override.TemplateFilePath
	}
	if override.Vault != "" {
		result.Vault = override.Vault
	}
	if override.LogLevel != "" {
		result.LogLevel = override.LogLevel
	}
	if override.InsecureSkipVerify {
		result.InsecureSkipVerify = true
	}
	return &result
}

// unknownKeys returns a warning for every key that is not a known setting.
func unknownKeys(raw map[string]any) []string {
	known := make(map[string]bool)
	for _, k := range domain.SettingKeys() {
		known[k] = true
	}

	var warnings []string
	for k := range raw {
		if !known[k] {
			warnings = append(warnings, "unknown key in settings: "+k)
		}
	}
	sort.Strings(warnings)
	return warnings
}
