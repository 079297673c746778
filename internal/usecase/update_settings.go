package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/jira-note/internal/domain"
)

// UpdateSettingsInput contains the parameters for changing one setting.
type UpdateSettingsInput struct {
	Settings *domain.Settings // Settings to change in place (required)
	Key      string           // Setting key (required)
	Value    string
}

// UpdateSettingsOutput contains the result of changing a setting.
type UpdateSettingsOutput struct {
	Path string // Settings file that was written
}

// UpdateSettings changes one setting and persists the result immediately.
type UpdateSettings struct {
	store  domain.SettingsStore
	logger domain.Logger
}

// NewUpdateSettings creates a new UpdateSettings use case.
func NewUpdateSettings(store domain.SettingsStore, logger domain.Logger) *UpdateSettings {
	if logger == nil {
		logger = domain.NopLogger{}
	}
	return &UpdateSettings{
		store:  store,
		logger: logger,
	}
}

// Execute applies the change to in.Settings and saves it.
// On a save failure in.Settings keeps its previous value.
func (uc *UpdateSettings) Execute(_ context.Context, in UpdateSettingsInput) (*UpdateSettingsOutput, error) {
	if in.Settings == nil {
		return nil, fmt.Errorf("update %s: no settings loaded", in.Key)
	}

	previous := *in.Settings
	if err := in.Settings.Set(in.Key, in.Value); err != nil {
		return nil, err
	}

	if err := uc.store.Save(in.Settings); err != nil {
		*in.Settings = previous
		return nil, fmt.Errorf("save settings: %w", err)
	}

	uc.logger.Debug("", "settings", "updated "+in.Key)
	return &UpdateSettingsOutput{Path: uc.store.Path()}, nil
}
