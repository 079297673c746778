package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runoshun/jira-note/internal/domain"
	"github.com/runoshun/jira-note/internal/infra/template"
	"github.com/runoshun/jira-note/internal/testutil"
	"github.com/runoshun/jira-note/internal/usecase"
)

func TestRenderIssue_Execute(t *testing.T) {
	newUseCase := func() (*usecase.RenderIssue, *testutil.MockIssueFetcher, *testutil.MockVault) {
		fetcher := testutil.NewMockIssueFetcher()
		fetcher.Issues["ABC-1"] = testutil.SampleIssue()
		vault := testutil.NewMockVault("/vault")
		vault.Files["templates/jira.md"] = "# {{it.link}}\n{{it.fields.summary}}"
		vault.Files["templates/alt.md"] = "{{it.key}} ({{it.fields.status.name}})"
		return usecase.NewRenderIssue(fetcher.Factory(), vault.Factory(), template.New(), nil), fetcher, vault
	}

	t.Run("renders configured template", func(t *testing.T) {
		uc, _, vault := newUseCase()

		out, err := uc.Execute(context.Background(), usecase.RenderIssueInput{
			Settings: hydrateSettings(),
			Key:      "ABC-1",
		})

		require.NoError(t, err)
		assert.Equal(t, "# https://h/browse/ABC-1\nFix bug", out.Content)
		assert.Equal(t, "ABC-1", out.Issue.Key)
		assert.Zero(t, vault.WriteCount)
	})

	t.Run("template override", func(t *testing.T) {
		uc, _, _ := newUseCase()

		out, err := uc.Execute(context.Background(), usecase.RenderIssueInput{
			Settings:     hydrateSettings(),
			Key:          "ABC-1",
			TemplatePath: "templates/alt.md",
		})

		require.NoError(t, err)
		assert.Equal(t, "ABC-1 (Open)", out.Content)
	})

	t.Run("template not configured", func(t *testing.T) {
		uc, _, _ := newUseCase()
		settings := hydrateSettings()
		settings.TemplateFilePath = ""

		_, err := uc.Execute(context.Background(), usecase.RenderIssueInput{
			Settings: settings,
			Key:      "ABC-1",
		})

		assert.ErrorIs(t, err, domain.ErrTemplateNotConfigured)
		assert.Equal(t, domain.StageTemplate, stageOf(t, err))
	})

	t.Run("invalid key makes no request", func(t *testing.T) {
		uc, fetcher, _ := newUseCase()

		_, err := uc.Execute(context.Background(), usecase.RenderIssueInput{
			Settings: hydrateSettings(),
			Key:      "",
		})

		assert.ErrorIs(t, err, domain.ErrEmptyIssueKey)
		assert.Equal(t, domain.StageConfig, stageOf(t, err))
		assert.Empty(t, fetcher.Requested)
	})

	t.Run("fetcher construction failure", func(t *testing.T) {
		vault := testutil.NewMockVault("/vault")
		failing := func(_ *domain.Settings) (domain.IssueFetcher, error) {
			return nil, domain.ErrHostNotConfigured
		}
		uc := usecase.NewRenderIssue(failing, vault.Factory(), template.New(), nil)

		_, err := uc.Execute(context.Background(), usecase.RenderIssueInput{
			Settings: domain.DefaultSettings(),
			Key:      "ABC-1",
		})

		assert.ErrorIs(t, err, domain.ErrHostNotConfigured)
		assert.Equal(t, domain.StageConfig, stageOf(t, err))
	})
}
