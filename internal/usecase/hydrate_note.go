package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/jira-note/internal/domain"
)

// HydrateNoteInput contains the parameters for hydrating a note.
type HydrateNoteInput struct {
	Settings  *domain.Settings // Effective settings (required)
	VaultRoot string           // Vault directory
	NotePath  string           // Note to rewrite, relative to VaultRoot or absolute (required)
	Key       string           // Issue key; derived from the note name when empty
}

// HydrateNoteOutput contains the result of hydrating a note.
type HydrateNoteOutput struct {
	Issue    *domain.Issue
	NotePath string
	Key      string
	Link     string
	Bytes    int // Size of the written note
}

// HydrateNote replaces a note with its issue rendered through the template.
// This is the "Add Jira issue info" command.
type HydrateNote struct {
	render *RenderIssue
	vaults domain.VaultFactory
	logger domain.Logger
}

// NewHydrateNote creates a new HydrateNote use case.
func NewHydrateNote(render *RenderIssue, vaults domain.VaultFactory, logger domain.Logger) *HydrateNote {
	if logger == nil {
		logger = domain.NopLogger{}
	}
	return &HydrateNote{
		render: render,
		vaults: vaults,
		logger: logger,
	}
}

// Execute fetches the issue, hydrates the template and writes the note.
// The note is left untouched unless every stage succeeds.
func (uc *HydrateNote) Execute(ctx context.Context, in HydrateNoteInput) (*HydrateNoteOutput, error) {
	key := in.Key
	if key == "" {
		key = domain.IssueKeyFromFilename(in.NotePath)
	}

	vault := uc.vaults(in.VaultRoot)
	if _, err := vault.ReadNote(in.NotePath); err != nil {
		uc.logger.Error(key, string(domain.StageConfig), err.Error())
		return nil, domain.NewStageError(domain.StageConfig, key, err)
	}

	rendered, err := uc.render.Execute(ctx, RenderIssueInput{
		Settings:  in.Settings,
		VaultRoot: in.VaultRoot,
		Key:       key,
	})
	if err != nil {
		return nil, err
	}

	if err := vault.WriteNote(in.NotePath, rendered.Content); err != nil {
		uc.logger.Error(key, string(domain.StageWrite), err.Error())
		return nil, domain.NewStageError(domain.StageWrite, key, err)
	}

	uc.logger.Info(key, "hydrate", fmt.Sprintf("wrote %d bytes to %s", len(rendered.Content), in.NotePath))

	return &HydrateNoteOutput{
		Issue:    rendered.Issue,
		NotePath: in.NotePath,
		Key:      rendered.Issue.Key,
		Link:     rendered.Issue.Link(),
		Bytes:    len(rendered.Content),
	}, nil
}
