package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/runoshun/jira-note/internal/domain"
)

// hints suggests a next step for well-known failures.
var hints = []struct {
	err  error
	hint string
}{
	{domain.ErrIssueNotFound, "Check that the note is named after an existing issue (ABC-1.md), or pass --key."},
	{domain.ErrTrackerAuth, "Generate a new token under Profile -> Personal Access Tokens and run 'jira-note settings set token <token>'."},
	{domain.ErrTrackerUnavailable, "Check the host setting and your network connection."},
	{domain.ErrTemplateNotFound, "Check template_file_path; relative paths are resolved against the vault directory."},
	{domain.ErrEmptyRender, "The template produced no text for this issue."},
	{domain.ErrTemplateInvalid, "Fix the template syntax; issue data is available as {{it.key}}, {{it.link}} and {{it.fields.<name>}}."},
	{domain.ErrSettingsFileCorrupted, "Fix or remove the settings file (see 'jira-note settings path')."},
}

// stageTitles describes each hydrate stage for users.
var stageTitles = map[domain.Stage]string{
	domain.StageConfig:   "Configuration problem",
	domain.StageFetch:    "Could not fetch issue",
	domain.StageTemplate: "Could not read template",
	domain.StageRender:   "Could not render template",
	domain.StageWrite:    "Could not write note",
}

// Notice formats err as the single message shown to the user.
func Notice(err error) string {
	if err == nil {
		return ""
	}

	var b strings.Builder
	var se *domain.StageError
	if errors.As(err, &se) {
		title := stageTitles[se.Stage]
		if title == "" {
			title = "Error"
		}
		if se.Key != "" {
			fmt.Fprintf(&b, "%s %s: %v", title, se.Key, se.Err)
		} else {
			fmt.Fprintf(&b, "%s: %v", title, se.Err)
		}
	} else {
		fmt.Fprintf(&b, "Error: %v", err)
	}

	for _, h := range hints {
		if errors.Is(err, h.err) {
			b.WriteString("\nHint: ")
			b.WriteString(h.hint)
			break
		}
	}
	return b.String()
}
