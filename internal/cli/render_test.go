package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runoshun/jira-note/internal/domain"
)

func TestRenderCommand_PrintsWithoutWriting(t *testing.T) {
	env := newTestEnv(t)

	out, _, err := env.run("render", "ABC-1")

	require.NoError(t, err)
	assert.Equal(t, "# ABC-1 Fix bug\nhttps://h/browse/ABC-1\n", out)
	assert.Equal(t, "placeholder", env.vault.Files["ABC-1.md"])
	assert.Zero(t, env.vault.WriteCount)
}

func TestRenderCommand_TemplateFlag(t *testing.T) {
	env := newTestEnv(t)
	env.vault.Files["alt.md"] = "{{it.fields.status.name}}"

	out, _, err := env.run("render", "ABC-1", "--template", "alt.md")

	require.NoError(t, err)
	assert.Equal(t, "Open", out)
}

func TestRenderCommand_Pretty(t *testing.T) {
	env := newTestEnv(t)

	out, _, err := env.run("render", "ABC-1", "--pretty", "--style", "notty")

	require.NoError(t, err)
	assert.Contains(t, out, "ABC-1 Fix bug")
	assert.NotEqual(t, "# ABC-1 Fix bug\nhttps://h/browse/ABC-1\n", out)
}

func TestRenderCommand_EmptyRender(t *testing.T) {
	env := newTestEnv(t)
	env.vault.Files["blank.md"] = "{{it.fields.nothing}}  \n"

	_, _, err := env.run("render", "ABC-1", "-t", "blank.md")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrEmptyRender)
}

func TestRenderCommand_PrettyDetectsPlainOutput(t *testing.T) {
	env := newTestEnv(t)

	out, _, err := env.run("render", "ABC-1", "--pretty")

	require.NoError(t, err)
	assert.NotContains(t, out, "\x1b[")
	assert.Contains(t, out, "ABC-1 Fix bug")
}
