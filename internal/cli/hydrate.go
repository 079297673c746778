package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/runoshun/jira-note/internal/app"
	"github.com/runoshun/jira-note/internal/usecase"
)

// newHydrateCommand creates the hydrate command.
func newHydrateCommand(c *app.Container) *cobra.Command {
	var key string

	cmd := &cobra.Command{
		Use:     "hydrate <note>",
		Aliases: []string{"add"},
		Short:   "Add Jira issue info to a note",
		Long: `Replace the contents of a note with its Jira issue rendered
through the configured template.

The issue key is the note's file name without the .md extension,
unless --key is given. Relative note paths are resolved against the
vault directory.

The note is only written when every step succeeds: fetching the issue,
reading the template and rendering it.

Examples:
  # Fill ABC-1.md with issue ABC-1
  jira-note hydrate ABC-1.md

  # Fill a note with a different issue
  jira-note hydrate meeting.md --key ABC-7`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			uc := c.HydrateNoteUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.HydrateNoteInput{
				Settings:  c.Settings,
				VaultRoot: c.VaultRoot(),
				NotePath:  args[0],
				Key:       key,
			})
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if summary := out.Issue.Summary(); summary != "" {
				_, _ = fmt.Fprintf(w, "Added %s (%s) to %s\n", out.Key, summary, out.NotePath)
			} else {
				_, _ = fmt.Fprintf(w, "Added %s to %s\n", out.Key, out.NotePath)
			}
			_, _ = fmt.Fprintln(w, out.Link)
			return nil
		},
	}

	cmd.Flags().StringVarP(&key, "key", "k", "", "Issue key (default: note file name without .md)")

	return cmd
}
