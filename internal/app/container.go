// Package app provides the dependency injection container for the application.
package app

import (
	"io"
	"log/slog"
	"path/filepath"

	"github.com/runoshun/jira-note/internal/domain"
	"github.com/runoshun/jira-note/internal/infra/jira"
	"github.com/runoshun/jira-note/internal/infra/logging"
	"github.com/runoshun/jira-note/internal/infra/settings"
	"github.com/runoshun/jira-note/internal/infra/template"
	"github.com/runoshun/jira-note/internal/infra/vault"
	"github.com/runoshun/jira-note/internal/usecase"
)

// Options controls how the container is built.
// Fields are ordered to minimize memory padding.
type Options struct {
	LogMirror    io.Writer // Receives a copy of log output (--verbose), may be nil
	Cwd          string    // Working directory; relative vault paths resolve against it
	SettingsPath string    // Overrides the default settings file (--config)
	Vault        string    // Overrides the vault setting (--vault)
}

// Config holds the resolved application paths.
type Config struct {
	Cwd          string // Working directory
	AppDir       string // Directory holding settings and logs
	SettingsPath string // Path to config.toml
}

// Container provides dependency injection for the application.
// It holds all port implementations and provides factory methods for use cases.
type Container struct {
	// Ports (interfaces bound to implementations)
	SettingsStore domain.SettingsStore
	Fetchers      domain.IssueFetcherFactory
	Vaults        domain.VaultFactory
	Renderer      domain.TemplateRenderer
	Logger        domain.Logger

	// Settings loaded at startup; use cases receive it explicitly.
	Settings *domain.Settings

	// Pointer fields
	logger *logging.Logger

	// Configuration
	Config        Config
	vaultOverride string
}

// New creates a new Container and loads the settings.
func New(opts Options) (*Container, error) {
	cfg := Config{Cwd: opts.Cwd}

	var store *settings.Store
	if opts.SettingsPath != "" {
		store = settings.NewStore(opts.SettingsPath)
	} else {
		var err error
		store, err = settings.NewStoreFromDefault()
		if err != nil {
			return nil, err
		}
	}
	cfg.SettingsPath = store.Path()
	cfg.AppDir = filepath.Dir(store.Path())

	loaded, err := store.Load()
	if err != nil {
		return nil, err
	}

	logger := logging.New(cfg.AppDir, logging.ParseLevel(loaded.LogLevel))
	if opts.LogMirror != nil {
		logger.WithMirror(opts.LogMirror)
	}
	slogger := logger.Slog()
	fetchers := func(s *domain.Settings) (domain.IssueFetcher, error) {
		client, err := jira.NewFromSettings(s, slogger)
		if err != nil {
			return nil, err
		}
		return client, nil
	}

	return &Container{
		SettingsStore: store,
		Fetchers:      fetchers,
		Vaults:        vault.Open,
		Renderer:      template.New(),
		Logger:        logger,
		Settings:      loaded,
		logger:        logger,
		Config:        cfg,
		vaultOverride: opts.Vault,
	}, nil
}

// NewWithDeps creates a new Container with custom dependencies for testing.
func NewWithDeps(cfg Config, store domain.SettingsStore, s *domain.Settings, fetchers domain.IssueFetcherFactory, vaults domain.VaultFactory) *Container {
	return &Container{
		SettingsStore: store,
		Fetchers:      fetchers,
		Vaults:        vaults,
		Renderer:      template.New(),
		Logger:        domain.NopLogger{},
		Settings:      s,
		Config:        cfg,
	}
}

// Close releases the log file.
func (c *Container) Close() error {
	if c.logger == nil {
		return nil
	}
	return c.logger.Close()
}

// Slog returns the structured logger backing the developer log.
func (c *Container) Slog() *slog.Logger {
	if c.logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return c.logger.Slog()
}

// VaultRoot returns the vault directory: --vault, then the vault setting,
// then the working directory.
func (c *Container) VaultRoot() string {
	if c.vaultOverride != "" {
		if filepath.IsAbs(c.vaultOverride) {
			return c.vaultOverride
		}
		return filepath.Join(c.Config.Cwd, c.vaultOverride)
	}
	return c.Settings.VaultRoot(c.Config.Cwd)
}

// UseCase factory methods

// RenderIssueUseCase returns a new RenderIssue use case.
func (c *Container) RenderIssueUseCase() *usecase.RenderIssue {
	return usecase.NewRenderIssue(c.Fetchers, c.Vaults, c.Renderer, c.Logger)
}

// HydrateNoteUseCase returns a new HydrateNote use case.
func (c *Container) HydrateNoteUseCase() *usecase.HydrateNote {
	return usecase.NewHydrateNote(c.RenderIssueUseCase(), c.Vaults, c.Logger)
}

// FetchIssueUseCase returns a new FetchIssue use case.
func (c *Container) FetchIssueUseCase() *usecase.FetchIssue {
	return usecase.NewFetchIssue(c.Fetchers)
}

// ShowSettingsUseCase returns a new ShowSettings use case.
func (c *Container) ShowSettingsUseCase() *usecase.ShowSettings {
	return usecase.NewShowSettings(c.SettingsStore)
}

// UpdateSettingsUseCase returns a new UpdateSettings use case.
func (c *Container) UpdateSettingsUseCase() *usecase.UpdateSettings {
	return usecase.NewUpdateSettings(c.SettingsStore, c.Logger)
}
