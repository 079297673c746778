package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/runoshun/jira-note/internal/app"
	"github.com/runoshun/jira-note/internal/domain"
	"github.com/runoshun/jira-note/internal/usecase"
)

// Output formats for issue show.
const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
	formatTOML = "toml"
)

// newIssueCommand creates the issue command.
func newIssueCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "issue",
		Short: "Inspect Jira issues",
		Long:  `Inspect the data a template receives for an issue.`,
		// No RunE: shows subcommand list when called without arguments
	}

	cmd.AddCommand(newIssueShowCommand(c))

	return cmd
}

// newIssueShowCommand creates the issue show subcommand.
func newIssueShowCommand(c *app.Container) *cobra.Command {
	var format, color string

	cmd := &cobra.Command{
		Use:   "show <KEY>",
		Short: "Display an issue",
		Long: `Display an issue as the template sees it.

The json, yaml and toml formats print the complete template context,
including the derived link and every tracker field. They are colored
when printed to a terminal.

Examples:
  jira-note issue show ABC-1
  jira-note issue show ABC-1 --format yaml
  jira-note issue show ABC-1 --format json --color never | jq .fields`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			uc := c.FetchIssueUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.FetchIssueInput{
				Settings: c.Settings,
				Key:      args[0],
			})
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			colored, err := useColor(w, color)
			if err != nil {
				return err
			}
			if !colored || format == formatText {
				return writeIssue(w, out.Issue, format)
			}

			var buf bytes.Buffer
			if err := writeIssue(&buf, out.Issue, format); err != nil {
				return err
			}
			return writeHighlighted(w, buf.String(), format)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", formatText, "Output format (text, json, yaml, toml)")
	cmd.Flags().StringVar(&color, "color", colorAuto, "Color structured output (auto, always, never)")

	return cmd
}

// writeIssue prints issue in the requested format.
func writeIssue(w io.Writer, issue *domain.Issue, format string) error {
	data := domain.NewTemplateContext(issue)

	switch format {
	case formatText:
		return writeIssueText(w, issue)
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(data)
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(data); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	case formatTOML:
		if err := toml.NewEncoder(w).Encode(dropNulls(data)); err != nil {
			return fmt.Errorf("encode toml: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("unknown format %q (want text, json, yaml or toml)", format)
	}
}

func writeIssueText(w io.Writer, issue *domain.Issue) error {
	_, _ = fmt.Fprintf(w, "%s: %s\n", issue.Key, issue.Summary())
	_, _ = fmt.Fprintf(w, "Link: %s\n", issue.Link())
	if status := issue.StatusName(); status != "" {
		_, _ = fmt.Fprintf(w, "Status: %s\n", status)
	}

	names := make([]string, 0, len(issue.Fields))
	for name, v := range issue.Fields {
		if v == nil {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)
	_, _ = fmt.Fprintf(w, "Fields: %d set\n", len(names))
	for _, name := range names {
		_, _ = fmt.Fprintf(w, "  %s\n", name)
	}

	if desc, ok := issue.Fields["description"].(string); ok && desc != "" {
		_, _ = fmt.Fprintf(w, "\n%s\n", desc)
	}
	return nil
}

// dropNulls removes nil values, which TOML cannot represent.
func dropNulls(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			if val == nil {
				continue
			}
			out[k] = dropNulls(val)
		}
		return out
	case []any:
		out := make([]any, 0, len(t))
		for _, val := range t {
			if val == nil {
				continue
			}
			out = append(out, dropNulls(val))
		}
		return out
	default:
		return v
	}
}
