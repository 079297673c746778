// Package testutil provides shared test utilities and mock implementations.
package testutil

import (
	"context"
	"fmt"
	"strings"

	"github.com/runoshun/jira-note/internal/domain"
)

// MockIssueFetcher is a test double for domain.IssueFetcher.
// Fields are ordered to minimize memory padding.
type MockIssueFetcher struct {
	Issues    map[string]*domain.Issue
	GetErr    error
	Requested []string
}

// NewMockIssueFetcher creates a new MockIssueFetcher with an initialized map.
func NewMockIssueFetcher() *MockIssueFetcher {
	return &MockIssueFetcher{
		Issues: make(map[string]*domain.Issue),
	}
}

// GetIssue returns the configured issue, or ErrIssueNotFound.
func (m *MockIssueFetcher) GetIssue(_ context.Context, key string) (*domain.Issue, error) {
	m.Requested = append(m.Requested, key)
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	issue, ok := m.Issues[key]
	if !ok {
		return nil, domain.ErrIssueNotFound
	}
	return issue, nil
}

// Factory returns an IssueFetcherFactory that always yields m.
func (m *MockIssueFetcher) Factory() domain.IssueFetcherFactory {
	return func(_ *domain.Settings) (domain.IssueFetcher, error) {
		return m, nil
	}
}

// MockSettingsStore is a test double for domain.SettingsStore.
// Fields are ordered to minimize memory padding.
type MockSettingsStore struct {
	Settings  *domain.Settings
	LoadErr   error
	SaveErr   error
	FilePath  string
	SaveCount int
}

// NewMockSettingsStore creates a new MockSettingsStore holding the defaults.
func NewMockSettingsStore() *MockSettingsStore {
	return &MockSettingsStore{
		Settings: domain.DefaultSettings(),
		FilePath: "/home/test/.config/jira-note/config.toml",
	}
}

// Load returns a copy of the stored settings.
func (m *MockSettingsStore) Load() (*domain.Settings, error) {
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	s := *m.Settings
	return &s, nil
}

// Save stores a copy of settings.
func (m *MockSettingsStore) Save(settings *domain.Settings) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}
	s := *settings
	m.Settings = &s
	m.SaveCount++
	return nil
}

// Path returns the configured path.
func (m *MockSettingsStore) Path() string {
	return m.FilePath
}

// MockVault is an in-memory domain.Vault.
// Fields are ordered to minimize memory padding.
type MockVault struct {
	Files      map[string]string
	WriteErr   error
	RootDir    string
	WriteCount int
}

// NewMockVault creates a new MockVault rooted at root.
func NewMockVault(root string) *MockVault {
	return &MockVault{
		Files:   make(map[string]string),
		RootDir: root,
	}
}

// Factory returns a VaultFactory that always yields m.
func (m *MockVault) Factory() domain.VaultFactory {
	return func(_ string) domain.Vault {
		return m
	}
}

// ReadTemplate returns the template content.
func (m *MockVault) ReadTemplate(path string) (string, error) {
	if path == "" {
		return "", domain.ErrTemplateNotConfigured
	}
	content, ok := m.Files[path]
	if !ok {
		return "", fmt.Errorf("%w: %s", domain.ErrTemplateNotFound, path)
	}
	return content, nil
}

// ReadNote returns the note content.
func (m *MockVault) ReadNote(path string) (string, error) {
	content, ok := m.Files[path]
	if !ok {
		return "", fmt.Errorf("%w: %s", domain.ErrNoteNotFound, path)
	}
	return content, nil
}

// WriteNote replaces the note content.
func (m *MockVault) WriteNote(path, content string) error {
	if m.WriteErr != nil {
		return m.WriteErr
	}
	if _, ok := m.Files[path]; !ok {
		return fmt.Errorf("%w: %s", domain.ErrNoteNotFound, path)
	}
	m.Files[path] = content
	m.WriteCount++
	return nil
}

// Root returns the vault root.
func (m *MockVault) Root() string {
	return m.RootDir
}

// MockLogger records log lines for assertions.
type MockLogger struct {
	Lines []string
}

// Debug records a debug line.
func (m *MockLogger) Debug(key, category, msg string) {
	m.record("DEBUG", key, category, msg)
}

// Info records an info line.
func (m *MockLogger) Info(key, category, msg string) {
	m.record("INFO", key, category, msg)
}

// Warn records a warning line.
func (m *MockLogger) Warn(key, category, msg string) {
	m.record("WARN", key, category, msg)
}

// Error records an error line.
func (m *MockLogger) Error(key, category, msg string) {
	m.record("ERROR", key, category, msg)
}

func (m *MockLogger) record(level, key, category, msg string) {
	m.Lines = append(m.Lines, fmt.Sprintf("%s [%s] [%s] %s", level, key, category, msg))
}

// Contains reports whether any recorded line contains substr.
func (m *MockLogger) Contains(substr string) bool {
	for _, l := range m.Lines {
		if strings.Contains(l, substr) {
			return true
		}
	}
	return false
}

// SampleIssue returns issue ABC-1 with a summary and description.
func SampleIssue() *domain.Issue {
	return &domain.Issue{
		ID:   "1",
		Key:  "ABC-1",
		Self: "https://h/rest/api/2/issue/1",
		Fields: map[string]any{
			"summary":     "Fix bug",
			"description": "...",
			"status":      map[string]any{"name": "Open"},
		},
		Extra: map[string]any{},
	}
}
