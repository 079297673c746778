package domain

import (
	"path/filepath"
	"strings"
	"unicode"
)

// restMarker separates the site URL from the REST path in an issue's self URL.
const restMarker = "/rest/"

// NoteExt is the extension of vault notes.
const NoteExt = ".md"

// Issue is the in-memory form of one tracker issue.
// It lives for a single fetch/render cycle.
// Fields are ordered to minimize memory padding.
type Issue struct {
	Fields map[string]any // Tracker fields keyed by their JSON names (summary, description, ...)
	Extra  map[string]any // Other top-level properties of the tracker document (expand, ...)
	ID     string
	Key    string
	Self   string // REST URL of the issue
}

// Summary returns the summary field, or "" when absent.
func (i *Issue) Summary() string {
	s, _ := i.Fields["summary"].(string)
	return s
}

// StatusName returns fields.status.name, or "" when absent.
func (i *Issue) StatusName() string {
	status, ok := i.Fields["status"].(map[string]any)
	if !ok {
		return ""
	}
	name, _ := status["name"].(string)
	return name
}

// BrowseLink returns the web UI link of the issue.
// The site URL is self truncated at the first "/rest/" marker.
// If self has no marker it is used as the site URL.
func BrowseLink(self, key string) string {
	site := self
	if idx := strings.Index(self, restMarker); idx >= 0 {
		site = self[:idx]
	}
	return strings.TrimRight(site, "/") + "/browse/" + key
}

// Link returns the browse link of the issue.
func (i *Issue) Link() string {
	return BrowseLink(i.Self, i.Key)
}

// NewTemplateContext builds the value a note template is executed against.
//
// Derived fields are set first and tracker properties second, so a tracker
// property with the same name as a derived field wins.
func NewTemplateContext(issue *Issue) map[string]any {
	ctx := map[string]any{
		"link": issue.Link(),
	}

	for k, v := range issue.Extra {
		ctx[k] = v
	}
	ctx["id"] = issue.ID
	ctx["key"] = issue.Key
	ctx["self"] = issue.Self
	fields := issue.Fields
	if fields == nil {
		fields = map[string]any{}
	}
	ctx["fields"] = fields

	return ctx
}

// IssueKeyFromFilename derives the issue key a note is named after.
// "notes/ABC-1.md" -> "ABC-1".
func IssueKeyFromFilename(path string) string {
	name := filepath.Base(path)
	return strings.TrimSuffix(name, NoteExt)
}

// ValidateIssueKey checks that key can be used as a path segment of the
// tracker's issue endpoint.
func ValidateIssueKey(key string) error {
	if key == "" {
		return ErrEmptyIssueKey
	}
	for _, r := range key {
		if unicode.IsSpace(r) || r == '/' || r == '?' || r == '#' {
			return ErrInvalidIssueKey
		}
	}
	return nil
}
