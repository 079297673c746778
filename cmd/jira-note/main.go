// Package main is the entry point for the jira-note CLI.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/runoshun/jira-note/internal/app"
	"github.com/runoshun/jira-note/internal/cli"
	"github.com/runoshun/jira-note/internal/domain"
)

// version is set at build time using -ldflags.
var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, cli.Notice(err))
		os.Exit(1)
	}
}

func run() error {
	args := os.Args[1:]

	global, err := cli.ParseGlobalOptions(args)
	if err != nil {
		return err
	}

	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get current directory: %w", err)
	}

	var mirror io.Writer
	if global.Verbose {
		mirror = os.Stderr
	}

	// Create dependency injection container
	container, err := app.New(app.Options{
		Cwd:          cwd,
		SettingsPath: global.ConfigPath,
		Vault:        global.Vault,
		LogMirror:    mirror,
	})
	if err != nil {
		// Help and version still work with a broken settings file
		if errors.Is(err, domain.ErrSettingsFileCorrupted) && canRunWithoutSettings(args) {
			return cli.NewRootCommand(nil, version).Execute()
		}
		return fmt.Errorf("failed to initialize: %w", err)
	}
	defer func() { _ = container.Close() }()

	// Create and execute root command
	rootCmd := cli.NewRootCommand(container, version)
	return rootCmd.Execute()
}

func canRunWithoutSettings(args []string) bool {
	if len(args) == 0 {
		return true
	}
	if args[0] == "help" {
		return true
	}
	for _, arg := range args {
		if arg == "--version" || arg == "-v" || arg == "--help" || arg == "-h" {
			return true
		}
	}
	return false
}
