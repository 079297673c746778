package cli

import (
	"context"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"github.com/runoshun/jira-note/internal/app"
	"github.com/runoshun/jira-note/internal/domain"
	"github.com/runoshun/jira-note/internal/tui/settings"
	"github.com/runoshun/jira-note/internal/usecase"
)

// launchSettingsTUIFunc runs the settings form. Replaced in tests.
var launchSettingsTUIFunc = launchSettingsTUI

// newSettingsCommand creates the settings command with subcommands.
func newSettingsCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "settings",
		Aliases: []string{"config"},
		Short:   "Manage settings",
		Long: `Manage the jira-note settings file.

Settings:
  host                  Jira host name, e.g. jira.example.com
  token                 Jira personal access token
  template_file_path    Note template, relative to the vault
  vault                 Vault directory (default: current directory)
  insecure_skip_verify  Disable TLS certificate checks (true/false)
  log_level             debug, info, warn or error

Every change is written to the settings file immediately.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSettingsShow(cmd.Context(), cmd.OutOrStdout(), c)
		},
	}

	cmd.AddCommand(
		newSettingsShowCommand(c),
		newSettingsGetCommand(c),
		newSettingsSetCommand(c),
		newSettingsPathCommand(c),
		newSettingsEditCommand(c),
	)

	return cmd
}

// newSettingsShowCommand creates the settings show subcommand.
func newSettingsShowCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Display the effective settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSettingsShow(cmd.Context(), cmd.OutOrStdout(), c)
		},
	}
}

func runSettingsShow(ctx context.Context, w io.Writer, c *app.Container) error {
	out, err := c.ShowSettingsUseCase().Execute(ctx, usecase.ShowSettingsInput{})
	if err != nil {
		return err
	}

	status := ""
	if !out.Exists {
		status = " (not created yet)"
	}
	_, _ = fmt.Fprintf(w, "# %s%s\n", out.Path, status)

	keys := domain.SettingKeys()
	width := 0
	for _, key := range keys {
		width = max(width, runewidth.StringWidth(key))
	}
	for _, key := range keys {
		value, _ := out.Settings.Get(key)
		if key == domain.SettingToken {
			value = out.Settings.MaskedToken()
		}
		_, _ = fmt.Fprintf(w, "%s  %s\n", runewidth.FillRight(key, width), value)
	}
	return nil
}

// newSettingsGetCommand creates the settings get subcommand.
func newSettingsGetCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "get <key>",
		Short: "Print one setting",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			value, err := c.Settings.Get(args[0])
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), value)
			return nil
		},
	}
}

// newSettingsSetCommand creates the settings set subcommand.
func newSettingsSetCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Change one setting",
		Long: `Change one setting and save the settings file.

Examples:
  jira-note settings set host jira.example.com
  jira-note settings set template_file_path templates/jira.md
  jira-note settings set insecure_skip_verify true`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := c.UpdateSettingsUseCase().Execute(cmd.Context(), usecase.UpdateSettingsInput{
				Settings: c.Settings,
				Key:      args[0],
				Value:    args[1],
			})
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Saved %s to %s\n", args[0], out.Path)
			if args[0] == domain.SettingInsecureSkipVerify && c.Settings.InsecureSkipVerify {
				_, _ = fmt.Fprintln(cmd.ErrOrStderr(), "Warning: TLS certificate verification is disabled for the Jira host")
			}
			return nil
		},
	}
}

// newSettingsPathCommand creates the settings path subcommand.
func newSettingsPathCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the settings file path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), c.SettingsStore.Path())
			return nil
		},
	}
}

// newSettingsEditCommand creates the settings edit subcommand.
func newSettingsEditCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "edit",
		Short: "Edit settings in an interactive form",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return launchSettingsTUIFunc(c)
		},
	}
}

// launchSettingsTUI runs the settings form until the user quits.
func launchSettingsTUI(c *app.Container) error {
	model := settings.New(c.Settings, c.UpdateSettingsUseCase(), c.SettingsStore.Path())
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
