package settings

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runoshun/jira-note/internal/domain"
)

func TestStore_Load(t *testing.T) {
	t.Run("returns defaults when file does not exist", func(t *testing.T) {
		store := NewStore(filepath.Join(t.TempDir(), "config.toml"))

		s, err := store.Load()

		require.NoError(t, err)
		assert.Equal(t, domain.DefaultSettings(), s)
	})

	t.Run("merges file over defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.toml")
		content := `host = "jira.example.com"
token = "secret"
template_file_path = "templates/jira.md"
`
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		s, err := NewStore(path).Load()

		require.NoError(t, err)
		assert.Equal(t, "jira.example.com", s.Host)
		assert.Equal(t, "secret", s.Token)
		assert.Equal(t, "templates/jira.md", s.TemplateFilePath)
		assert.Equal(t, "info", s.LogLevel)
		assert.False(t, s.InsecureSkipVerify)
		assert.Empty(t, s.Warnings)
	})

	t.Run("warns about unknown keys", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.toml")
		require.NoError(t, os.WriteFile(path, []byte("host = \"h\"\nfoo = 1\n"), 0o600))

		s, err := NewStore(path).Load()

		require.NoError(t, err)
		assert.Equal(t, []string{"unknown key in settings: foo"}, s.Warnings)
	})

	t.Run("returns error for corrupted file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.toml")
		require.NoError(t, os.WriteFile(path, []byte("host = "), 0o600))

		_, err := NewStore(path).Load()

		assert.ErrorIs(t, err, domain.ErrSettingsFileCorrupted)
	})
}

func TestStore_Save(t *testing.T) {
	t.Run("round trips settings", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "nested", "config.toml")
		store := NewStore(path)
		in := &domain.Settings{
			Host:               "jira.example.com",
			Token:              "secret",
			TemplateFilePath:   "templates/jira.md",
			Vault:              "/vault",
			LogLevel:           "debug",
			InsecureSkipVerify: true,
		}

		require.NoError(t, store.Save(in))
		out, err := store.Load()

		require.NoError(t, err)
		assert.Equal(t, in, out)
	})

	t.Run("writes owner-only file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.toml")
		require.NoError(t, NewStore(path).Save(domain.DefaultSettings()))

		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

		_, err = os.Stat(path + ".tmp")
		assert.True(t, os.IsNotExist(err))
	})
}

func TestDefaultDir(t *testing.T) {
	t.Run("uses XDG_CONFIG_HOME", func(t *testing.T) {
		t.Setenv("XDG_CONFIG_HOME", "/xdg")
		assert.Equal(t, filepath.Join("/xdg", "jira-note"), DefaultDir())
	})

	t.Run("falls back to home", func(t *testing.T) {
		home := t.TempDir()
		t.Setenv("XDG_CONFIG_HOME", "")
		t.Setenv("HOME", home)
		assert.Equal(t, filepath.Join(home, ".config", "jira-note"), DefaultDir())
	})

	t.Run("store uses default dir", func(t *testing.T) {
		t.Setenv("XDG_CONFIG_HOME", "/xdg")
		store, err := NewStoreFromDefault()
		require.NoError(t, err)
		assert.Equal(t, filepath.Join("/xdg", "jira-note", "config.toml"), store.Path())
	})
}
