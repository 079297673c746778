package usecase

import (
	"context"

	"github.com/runoshun/jira-note/internal/domain"
)

// FetchIssueInput contains the parameters for fetching an issue.
type FetchIssueInput struct {
	Settings *domain.Settings // Effective settings (required)
	Key      string           // Issue key (required)
}

// FetchIssueOutput contains the fetched issue.
type FetchIssueOutput struct {
	Issue *domain.Issue
	Link  string
}

// FetchIssue is the use case for retrieving a single issue.
type FetchIssue struct {
	fetchers domain.IssueFetcherFactory
}

// NewFetchIssue creates a new FetchIssue use case.
func NewFetchIssue(fetchers domain.IssueFetcherFactory) *FetchIssue {
	return &FetchIssue{
		fetchers: fetchers,
	}
}

// Execute retrieves the issue.
func (uc *FetchIssue) Execute(ctx context.Context, in FetchIssueInput) (*FetchIssueOutput, error) {
	if err := domain.ValidateIssueKey(in.Key); err != nil {
		return nil, err
	}

	fetcher, err := uc.fetchers(in.Settings)
	if err != nil {
		return nil, domain.NewStageError(domain.StageConfig, in.Key, err)
	}

	issue, err := fetcher.GetIssue(ctx, in.Key)
	if err != nil {
		return nil, domain.NewStageError(domain.StageFetch, in.Key, err)
	}

	return &FetchIssueOutput{
		Issue: issue,
		Link:  issue.Link(),
	}, nil
}
