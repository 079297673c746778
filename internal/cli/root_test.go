package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRootCommand_WithHelp_ShowsGroups(t *testing.T) {
	root := NewRootCommand(nil, "test-version")
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"--help"})

	err := root.Execute()

	require.NoError(t, err)
	assert.Contains(t, out.String(), "Notes:")
	assert.Contains(t, out.String(), "Settings:")
	assert.Contains(t, out.String(), "hydrate")
}

func TestNewRootCommand_Version(t *testing.T) {
	root := NewRootCommand(nil, "1.2.3")
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"--version"})

	require.NoError(t, root.Execute())
	assert.Contains(t, out.String(), "1.2.3")
}

func TestNewRootCommand_PrintsSettingsWarnings(t *testing.T) {
	env := newTestEnv(t)
	env.container.Settings.Warnings = []string{`unknown setting "hots"`}

	_, errOut, err := env.run("settings", "path")

	require.NoError(t, err)
	assert.Contains(t, errOut, `Warning: unknown setting "hots"`)
}

func TestParseGlobalOptions(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want GlobalOptions
	}{
		{
			name: "no flags",
			args: []string{"hydrate", "ABC-1.md"},
			want: GlobalOptions{},
		},
		{
			name: "all globals mixed with command flags",
			args: []string{"--config", "/tmp/c.toml", "render", "ABC-1", "--pretty", "--vault=/notes", "-V"},
			want: GlobalOptions{ConfigPath: "/tmp/c.toml", Vault: "/notes", Verbose: true},
		},
		{
			name: "unknown flag with value",
			args: []string{"issue", "show", "ABC-1", "--format", "json", "--vault", "/v"},
			want: GlobalOptions{Vault: "/v"},
		},
		{
			name: "help",
			args: []string{"--help"},
			want: GlobalOptions{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseGlobalOptions(tt.args)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
