// Package template hydrates note templates with issue data.
package template

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	"github.com/microcosm-cc/bluemonday"
	"gopkg.in/yaml.v3"

	"github.com/runoshun/jira-note/internal/domain"
)

// Ensure Renderer implements domain.TemplateRenderer.
var _ domain.TemplateRenderer = (*Renderer)(nil)

// Renderer executes text/template templates.
//
// Besides dot, the data is reachable through the "it" function so
// templates may write {{it.fields.summary}} as well as {{.fields.summary}}.
type Renderer struct {
	ugc    *bluemonday.Policy
	strict *bluemonday.Policy
}

// New creates a Renderer.
func New() *Renderer {
	return &Renderer{
		ugc:    bluemonday.UGCPolicy(),
		strict: bluemonday.StrictPolicy(),
	}
}

// Render executes tmpl against data.
func (r *Renderer) Render(tmpl string, data map[string]any) (string, error) {
	t, err := template.New("note").
		Option("missingkey=zero").
		Funcs(r.funcs(data)).
		Parse(tmpl)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrTemplateInvalid, err)
	}

	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrTemplateInvalid, err)
	}

	// Missing map keys print as "<no value>" even with missingkey=zero.
	out := strings.ReplaceAll(buf.String(), "<no value>", "")
	if strings.TrimSpace(out) == "" {
		return "", domain.ErrEmptyRender
	}
	return out, nil
}

func (r *Renderer) funcs(data map[string]any) template.FuncMap {
	return template.FuncMap{
		"it": func() map[string]any {
			return data
		},
		"yaml":     toYAML,
		"sanitize": r.ugc.Sanitize,
		"strip":    r.strict.Sanitize,
		"default":  defaultValue,
		"join":     join,
		"upper":    strings.ToUpper,
		"lower":    strings.ToLower,
		"trim":     strings.TrimSpace,
	}
}

// toYAML marshals v into a YAML document without the trailing newline.
func toYAML(v any) (string, error) {
	out, err := yaml.Marshal(v)
	if err != nil {
		return "", err
	}
	return strings.TrimSuffix(string(out), "\n"), nil
}

// defaultValue returns def when v is nil or an empty string.
func defaultValue(def, v any) any {
	switch s := v.(type) {
	case nil:
		return def
	case string:
		if s == "" {
			return def
		}
	}
	return v
}

// join concatenates the string form of every element of list.
func join(sep string, list any) string {
	items, ok := list.([]any)
	if !ok {
		if list == nil {
			return ""
		}
		return fmt.Sprint(list)
	}
	parts := make([]string, 0, len(items))
	for _, item := range items {
		if m, ok := item.(map[string]any); ok {
			if name, ok := m["name"].(string); ok {
				parts = append(parts, name)
				continue
			}
		}
		parts = append(parts, fmt.Sprint(item))
	}
	return strings.Join(parts, sep)
}
