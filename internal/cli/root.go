// Package cli provides the command-line interface for jira-note.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/runoshun/jira-note/internal/app"
)

// Command group IDs.
const (
	groupNotes    = "notes"
	groupSettings = "settings"
)

// Global flag names.
const (
	flagConfig  = "config"
	flagVault   = "vault"
	flagVerbose = "verbose"
)

// GlobalOptions holds the persistent flags that must be known before the
// container is built.
type GlobalOptions struct {
	ConfigPath string
	Vault      string
	Verbose    bool
}

// ParseGlobalOptions extracts the persistent flags from args.
// Unknown flags and positional arguments are ignored.
func ParseGlobalOptions(args []string) (GlobalOptions, error) {
	var opts GlobalOptions
	fs := pflag.NewFlagSet("global", pflag.ContinueOnError)
	fs.ParseErrorsWhitelist.UnknownFlags = true
	fs.Usage = func() {}
	addGlobalFlags(fs, &opts)
	// Help is handled by cobra.
	fs.BoolP("help", "h", false, "")
	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	return opts, nil
}

func addGlobalFlags(fs *pflag.FlagSet, opts *GlobalOptions) {
	fs.StringVar(&opts.ConfigPath, flagConfig, "", "Settings file (default $XDG_CONFIG_HOME/jira-note/config.toml)")
	fs.StringVar(&opts.Vault, flagVault, "", "Vault directory (default: vault setting, then current directory)")
	fs.BoolVarP(&opts.Verbose, flagVerbose, "V", false, "Copy log output to stderr")
}

// NewRootCommand creates the root command for jira-note.
// It receives the container for dependency injection and version for display.
func NewRootCommand(c *app.Container, version string) *cobra.Command {
	var global GlobalOptions

	root := &cobra.Command{
		Use:   "jira-note",
		Short: "Fill notes with Jira issue details",
		Long: `jira-note fetches a Jira issue and renders it into a note
using a template from your notes vault.

A note named after its issue (ABC-1.md) is rewritten with the
hydrated template:

  jira-note settings set host jira.example.com
  jira-note settings set token <personal access token>
  jira-note settings set template_file_path templates/jira.md
  jira-note hydrate ABC-1.md`,
		Version: version,
		// SilenceUsage prevents usage from being printed on errors
		SilenceUsage: true,
		// SilenceErrors prevents Cobra from printing errors (we handle it in main)
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip if container is nil (e.g. in tests)
			if c == nil {
				return nil
			}
			for _, w := range c.Settings.Warnings {
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %s\n", w)
			}
			return nil
		},
	}

	addGlobalFlags(root.PersistentFlags(), &global)

	// Define command groups
	root.AddGroup(
		&cobra.Group{ID: groupNotes, Title: "Notes:"},
		&cobra.Group{ID: groupSettings, Title: "Settings:"},
	)

	hydrateCmd := newHydrateCommand(c)
	hydrateCmd.GroupID = groupNotes

	renderCmd := newRenderCommand(c)
	renderCmd.GroupID = groupNotes

	issueCmd := newIssueCommand(c)
	issueCmd.GroupID = groupNotes

	settingsCmd := newSettingsCommand(c)
	settingsCmd.GroupID = groupSettings

	root.AddCommand(
		hydrateCmd,
		renderCmd,
		issueCmd,
		settingsCmd,
	)

	return root
}
