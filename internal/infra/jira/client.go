// Package jira provides the issue tracker adapter built on go-jira.
package jira

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	jira "github.com/andygrunwald/go-jira"

	"github.com/runoshun/jira-note/internal/domain"
)

// Ensure Client implements domain.IssueFetcher.
var _ domain.IssueFetcher = (*Client)(nil)

// DefaultTimeout bounds a single tracker request.
const DefaultTimeout = 30 * time.Second

// issuePath is the REST API v2 issue endpoint, relative to the site URL.
const issuePath = "rest/api/2/issue/"

// Options configures a Client.
// Fields are ordered to minimize memory padding.
type Options struct {
	Transport          http.RoundTripper // Base transport; defaults to a clone of http.DefaultTransport
	Logger             *slog.Logger
	BaseURL            string
	Token              string
	Timeout            time.Duration
	InsecureSkipVerify bool
}

// Client fetches issues from a Jira server with a bearer token.
type Client struct {
	jira   *jira.Client
	logger *slog.Logger
}

// New creates a Client for the given options.
func New(opts Options) (*Client, error) {
	if opts.BaseURL == "" {
		return nil, domain.ErrHostNotConfigured
	}
	if opts.Token == "" {
		return nil, domain.ErrTokenNotConfigured
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	base := opts.Transport
	if base == nil {
		t := http.DefaultTransport.(*http.Transport).Clone()
		if opts.InsecureSkipVerify {
			logger.Warn("TLS certificate verification is disabled", "host", opts.BaseURL)
			t.TLSClientConfig = &tls.Config{InsecureSkipVerify: true} //nolint:gosec // Explicit opt-in for self-signed hosts
		}
		base = t
	}

	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	auth := jira.BearerAuthTransport{
		Token:     opts.Token,
		Transport: base,
	}
	httpClient := auth.Client()
	httpClient.Timeout = timeout

	jc, err := jira.NewClient(httpClient, opts.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("create jira client: %w", err)
	}

	return &Client{jira: jc, logger: logger}, nil
}

// NewFromSettings creates a Client from persisted settings.
func NewFromSettings(settings *domain.Settings, logger *slog.Logger) (*Client, error) {
	return New(Options{
		BaseURL:            settings.BaseURL(),
		Token:              settings.Token,
		InsecureSkipVerify: settings.InsecureSkipVerify,
		Logger:             logger,
	})
}

// GetIssue retrieves the issue identified by key.
func (c *Client) GetIssue(ctx context.Context, key string) (*domain.Issue, error) {
	if err := domain.ValidateIssueKey(key); err != nil {
		return nil, err
	}

	req, err := c.jira.NewRequestWithContext(ctx, http.MethodGet, issuePath+key, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: build request: %v", domain.ErrTrackerUnavailable, err)
	}

	var raw map[string]any
	resp, err := c.jira.Do(req, &raw)
	if err != nil {
		return nil, classify(resp, err)
	}

	issue := issueFromRaw(raw)
	if issue.Key == "" {
		return nil, fmt.Errorf("%w: response for %s has no key", domain.ErrTrackerUnavailable, key)
	}

	c.logger.Debug("fetched issue", "key", issue.Key, "status", issue.StatusName())
	return issue, nil
}

// classify maps a failed request to a domain error.
func classify(resp *jira.Response, err error) error {
	if resp == nil || resp.Response == nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return fmt.Errorf("%w: %w", domain.ErrTrackerUnavailable, err)
		}
		return fmt.Errorf("%w: %v", domain.ErrTrackerUnavailable, err)
	}

	switch resp.StatusCode {
	case http.StatusOK:
		return fmt.Errorf("%w: decode response: %v", domain.ErrTrackerUnavailable, err)
	case http.StatusNotFound:
		return domain.ErrIssueNotFound
	case http.StatusUnauthorized, http.StatusForbidden:
		return fmt.Errorf("%w (status %d)", domain.ErrTrackerAuth, resp.StatusCode)
	default:
		return fmt.Errorf("%w: status %d", domain.ErrTrackerUnavailable, resp.StatusCode)
	}
}

// issueFromRaw converts a decoded issue document into a domain.Issue.
func issueFromRaw(raw map[string]any) *domain.Issue {
	issue := &domain.Issue{
		Fields: map[string]any{},
		Extra:  map[string]any{},
	}
	for k, v := range raw {
		switch k {
		case "id":
			issue.ID = stringValue(v)
		case "key":
			issue.Key = stringValue(v)
		case "self":
			issue.Self = stringValue(v)
		case "fields":
			if m, ok := v.(map[string]any); ok {
				issue.Fields = m
			}
		default:
			issue.Extra[k] = v
		}
	}
	return issue
}

func stringValue(v any) string {
	switch s := v.(type) {
	case string:
		return s
	case nil:
		return ""
	default:
		return fmt.Sprint(s)
	}
}
