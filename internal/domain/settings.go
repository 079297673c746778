package domain

import (
	"fmt"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

// Settings file locations.
const (
	AppName          = "jira-note"
	SettingsFileName = "config.toml"
	LogsDirName      = "logs"
	LogFileName      = "jira-note.log"
)

// Setting keys as they appear in the settings file.
const (
	SettingHost               = "host"
	SettingToken              = "token"
	SettingTemplateFilePath   = "template_file_path"
	SettingVault              = "vault"
	SettingInsecureSkipVerify = "insecure_skip_verify"
	SettingLogLevel           = "log_level"
)

// Settings holds the persisted plugin settings.
// Fields are ordered to minimize memory padding.
type Settings struct {
	Host               string   `toml:"host"`
	Token              string   `toml:"token"`
	TemplateFilePath   string   `toml:"template_file_path"`
	Vault              string   `toml:"vault,omitempty"`
	LogLevel           string   `toml:"log_level,omitempty"`
	Warnings           []string `toml:"-"`
	InsecureSkipVerify bool     `toml:"insecure_skip_verify,omitempty"`
}

// DefaultSettings returns settings with every value at its default.
func DefaultSettings() *Settings {
	return &Settings{
		LogLevel: "info",
	}
}

// SettingKeys returns every known setting key in sorted order.
func SettingKeys() []string {
	keys := []string{
		SettingHost,
		SettingToken,
		SettingTemplateFilePath,
		SettingVault,
		SettingInsecureSkipVerify,
		SettingLogLevel,
	}
	sort.Strings(keys)
	return keys
}

// Get returns the string form of the setting named key.
func (s *Settings) Get(key string) (string, error) {
	switch key {
	case SettingHost:
		return s.Host, nil
	case SettingToken:
		return s.Token, nil
	case SettingTemplateFilePath:
		return s.TemplateFilePath, nil
	case SettingVault:
		return s.Vault, nil
	case SettingInsecureSkipVerify:
		return strconv.FormatBool(s.InsecureSkipVerify), nil
	case SettingLogLevel:
		return s.LogLevel, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownSetting, key)
	}
}

// Set assigns value to the setting named key.
func (s *Settings) Set(key, value string) error {
	switch key {
	case SettingHost:
		s.Host = strings.TrimSpace(value)
	case SettingToken:
		s.Token = strings.TrimSpace(value)
	case SettingTemplateFilePath:
		s.TemplateFilePath = strings.TrimSpace(value)
	case SettingVault:
		s.Vault = strings.TrimSpace(value)
	case SettingInsecureSkipVerify:
		b, err := strconv.ParseBool(strings.TrimSpace(value))
		if err != nil {
			return fmt.Errorf("%w: %s must be true or false", ErrInvalidSettingValue, key)
		}
		s.InsecureSkipVerify = b
	case SettingLogLevel:
		level := strings.ToLower(strings.TrimSpace(value))
		if !isLogLevel(level) {
			return fmt.Errorf("%w: %s must be one of debug, info, warn, error", ErrInvalidSettingValue, key)
		}
		s.LogLevel = level
	default:
		return fmt.Errorf("%w: %s", ErrUnknownSetting, key)
	}
	return nil
}

func isLogLevel(level string) bool {
	switch level {
	case "debug", "info", "warn", "error":
		return true
	}
	return false
}

// MaskedToken returns the token with all but the last four characters hidden.
func (s *Settings) MaskedToken() string {
	if s.Token == "" {
		return ""
	}
	if len(s.Token) <= 4 {
		return strings.Repeat("*", len(s.Token))
	}
	return strings.Repeat("*", len(s.Token)-4) + s.Token[len(s.Token)-4:]
}

// BaseURL returns the tracker site URL for the configured host.
// A bare host name is served over https.
func (s *Settings) BaseURL() string {
	host := strings.TrimRight(s.Host, "/")
	if host == "" {
		return ""
	}
	if strings.HasPrefix(host, "http://") || strings.HasPrefix(host, "https://") {
		return host
	}
	return "https://" + host
}

// VaultRoot returns the vault directory, falling back to cwd.
func (s *Settings) VaultRoot(cwd string) string {
	if s.Vault == "" {
		return cwd
	}
	if filepath.IsAbs(s.Vault) {
		return s.Vault
	}
	return filepath.Join(cwd, s.Vault)
}

// GlobalDir returns the application directory under configHome.
func GlobalDir(configHome string) string {
	return filepath.Join(configHome, AppName)
}

// SettingsPath returns the settings file path inside dir.
func SettingsPath(dir string) string {
	return filepath.Join(dir, SettingsFileName)
}

// LogPath returns the log file path inside dir.
func LogPath(dir string) string {
	return filepath.Join(dir, LogsDirName, LogFileName)
}
