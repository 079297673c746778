package usecase

import (
	"context"
	"os"

	"github.com/runoshun/jira-note/internal/domain"
)

// ShowSettingsInput contains the parameters for showing settings.
type ShowSettingsInput struct{}

// ShowSettingsOutput contains the effective settings.
type ShowSettingsOutput struct {
	Settings *domain.Settings
	Path     string
	Exists   bool // Whether the settings file exists on disk
}

// ShowSettings is the use case for displaying settings.
type ShowSettings struct {
	store domain.SettingsStore
}

// NewShowSettings creates a new ShowSettings use case.
func NewShowSettings(store domain.SettingsStore) *ShowSettings {
	return &ShowSettings{
		store: store,
	}
}

// Execute loads the settings.
func (uc *ShowSettings) Execute(_ context.Context, _ ShowSettingsInput) (*ShowSettingsOutput, error) {
	settings, err := uc.store.Load()
	if err != nil {
		return nil, err
	}

	path := uc.store.Path()
	_, statErr := os.Stat(path)

	return &ShowSettingsOutput{
		Settings: settings,
		Path:     path,
		Exists:   statErr == nil,
	}, nil
}
