package cli

import (
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/runoshun/jira-note/internal/app"
	"github.com/runoshun/jira-note/internal/usecase"
)

// newRenderCommand creates the render command.
func newRenderCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Template string
		Style    string
		Pretty   bool
	}

	cmd := &cobra.Command{
		Use:   "render <KEY>",
		Short: "Preview an issue rendered through the template",
		Long: `Render an issue through the note template and print the result
without writing any file.

Examples:
  # Preview with the configured template
  jira-note render ABC-1

  # Try another template
  jira-note render ABC-1 --template templates/bug.md

  # Format the markdown for the terminal
  jira-note render ABC-1 --pretty`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			uc := c.RenderIssueUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.RenderIssueInput{
				Settings:     c.Settings,
				VaultRoot:    c.VaultRoot(),
				Key:          args[0],
				TemplatePath: opts.Template,
			})
			if err != nil {
				return err
			}

			content := out.Content
			if opts.Pretty {
				style := opts.Style
				if style == "" {
					style = markdownStyle(cmd.OutOrStdout())
				}
				content, err = glamour.Render(content, style)
				if err != nil {
					return fmt.Errorf("format markdown: %w", err)
				}
			}
			_, _ = fmt.Fprint(cmd.OutOrStdout(), content)
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.Template, "template", "t", "", "Template file (default: template_file_path setting)")
	cmd.Flags().BoolVarP(&opts.Pretty, "pretty", "p", false, "Format the markdown for the terminal")
	cmd.Flags().StringVar(&opts.Style, "style", "", "Markdown style for --pretty (dark, light, notty, ascii; default: detected)")

	return cmd
}
