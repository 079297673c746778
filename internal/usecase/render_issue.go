// Package usecase contains the application use cases.
package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/jira-note/internal/domain"
)

// RenderIssueInput contains the parameters for rendering an issue.
type RenderIssueInput struct {
	Settings     *domain.Settings // Effective settings (required)
	VaultRoot    string           // Vault directory templates are resolved against
	Key          string           // Issue key (required)
	TemplatePath string           // Overrides Settings.TemplateFilePath when set
}

// RenderIssueOutput contains the result of rendering an issue.
type RenderIssueOutput struct {
	Issue   *domain.Issue
	Content string // Hydrated template
}

// RenderIssue fetches an issue and hydrates the note template with it.
// Fields are ordered to minimize memory padding.
type RenderIssue struct {
	fetchers domain.IssueFetcherFactory
	vaults   domain.VaultFactory
	renderer domain.TemplateRenderer
	logger   domain.Logger
}

// NewRenderIssue creates a new RenderIssue use case.
func NewRenderIssue(fetchers domain.IssueFetcherFactory, vaults domain.VaultFactory, renderer domain.TemplateRenderer, logger domain.Logger) *RenderIssue {
	if logger == nil {
		logger = domain.NopLogger{}
	}
	return &RenderIssue{
		fetchers: fetchers,
		vaults:   vaults,
		renderer: renderer,
		logger:   logger,
	}
}

// Execute runs fetch, read template and render in that order.
// Any failure is returned as a *domain.StageError.
func (uc *RenderIssue) Execute(ctx context.Context, in RenderIssueInput) (*RenderIssueOutput, error) {
	key := in.Key
	if err := domain.ValidateIssueKey(key); err != nil {
		return nil, uc.fail(domain.StageConfig, key, err)
	}

	fetcher, err := uc.fetchers(in.Settings)
	if err != nil {
		return nil, uc.fail(domain.StageConfig, key, err)
	}

	issue, err := fetcher.GetIssue(ctx, key)
	if err != nil {
		return nil, uc.fail(domain.StageFetch, key, err)
	}
	uc.logger.Debug(key, "fetch", fmt.Sprintf("status: %s", issue.StatusName()))

	templatePath := in.TemplatePath
	if templatePath == "" {
		templatePath = in.Settings.TemplateFilePath
	}
	tmpl, err := uc.vaults(in.VaultRoot).ReadTemplate(templatePath)
	if err != nil {
		return nil, uc.fail(domain.StageTemplate, key, err)
	}

	content, err := uc.renderer.Render(tmpl, domain.NewTemplateContext(issue))
	if err != nil {
		return nil, uc.fail(domain.StageRender, key, err)
	}

	return &RenderIssueOutput{
		Issue:   issue,
		Content: content,
	}, nil
}

// fail logs err and wraps it with the stage it happened in.
func (uc *RenderIssue) fail(stage domain.Stage, key string, err error) error {
	uc.logger.Error(key, string(stage), err.Error())
	return domain.NewStageError(stage, key, err)
}
