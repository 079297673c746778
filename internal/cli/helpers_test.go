package cli

import (
	"bytes"
	"testing"

	"github.com/runoshun/jira-note/internal/app"
	"github.com/runoshun/jira-note/internal/domain"
	"github.com/runoshun/jira-note/internal/testutil"
)

const testTemplate = "# {{it.key}} {{it.fields.summary}}\n{{it.link}}\n"

// testEnv bundles a container wired to in-memory doubles.
type testEnv struct {
	container *app.Container
	fetcher   *testutil.MockIssueFetcher
	store     *testutil.MockSettingsStore
	vault     *testutil.MockVault
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	fetcher := testutil.NewMockIssueFetcher()
	fetcher.Issues["ABC-1"] = testutil.SampleIssue()

	vault := testutil.NewMockVault("/vault")
	vault.Files["templates/jira.md"] = testTemplate
	vault.Files["ABC-1.md"] = "placeholder"

	store := testutil.NewMockSettingsStore()
	s := domain.DefaultSettings()
	s.Host = "jira.example.com"
	s.Token = "secret-token-1234"
	s.TemplateFilePath = "templates/jira.md"

	c := app.NewWithDeps(app.Config{Cwd: "/vault", SettingsPath: store.FilePath}, store, s, fetcher.Factory(), vault.Factory())

	return &testEnv{
		container: c,
		fetcher:   fetcher,
		store:     store,
		vault:     vault,
	}
}

// run executes the root command with args and returns stdout and stderr.
func (e *testEnv) run(args ...string) (string, string, error) {
	root := NewRootCommand(e.container, "test-version")
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), errOut.String(), err
}
