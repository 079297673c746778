package domain

import "context"

// IssueFetcher retrieves issues from the tracker.
type IssueFetcher interface {
	// GetIssue retrieves an issue by key.
	// Returns ErrIssueNotFound, ErrTrackerAuth or ErrTrackerUnavailable on failure.
	GetIssue(ctx context.Context, key string) (*Issue, error)
}

// IssueFetcherFactory builds an IssueFetcher from the current settings.
type IssueFetcherFactory func(settings *Settings) (IssueFetcher, error)

// SettingsStore persists Settings.
type SettingsStore interface {
	// Load returns the stored settings merged over DefaultSettings.
	Load() (*Settings, error)

	// Save writes settings to disk.
	Save(settings *Settings) error

	// Path returns the settings file location.
	Path() string
}

// Vault gives access to the files of a notes vault.
type Vault interface {
	// ReadTemplate reads a template file. Returns ErrTemplateNotFound if missing.
	ReadTemplate(path string) (string, error)

	// ReadNote reads a note. Returns ErrNoteNotFound if missing.
	ReadNote(path string) (string, error)

	// WriteNote replaces the whole content of an existing note.
	WriteNote(path, content string) error

	// Root returns the vault directory.
	Root() string
}

// VaultFactory opens the vault located at root.
type VaultFactory func(root string) Vault

// TemplateRenderer hydrates templates.
type TemplateRenderer interface {
	// Render executes tmpl against data.
	Render(tmpl string, data map[string]any) (string, error)
}

// Logger records developer diagnostics.
// key is the issue key the message relates to, or "" for none.
type Logger interface {
	Debug(key, category, msg string)
	Info(key, category, msg string)
	Warn(key, category, msg string)
	Error(key, category, msg string)
}

// NopLogger discards all messages.
type NopLogger struct{}

// Debug does nothing.
func (NopLogger) Debug(_, _, _ string) {}

// Info does nothing.
func (NopLogger) Info(_, _, _ string) {}

// Warn does nothing.
func (NopLogger) Warn(_, _, _ string) {}

// Error does nothing.
func (NopLogger) Error(_, _, _ string) {}
