package settings

import (
	"context"
	"errors"
	"sync"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runoshun/jira-note/internal/domain"
	"github.com/runoshun/jira-note/internal/usecase"
)

type fakeUpdater struct {
	err   error
	saved []domain.Settings
	mu    sync.Mutex
}

func (f *fakeUpdater) Execute(_ context.Context, in usecase.UpdateSettingsInput) (*usecase.UpdateSettingsOutput, error) {
	if err := in.Settings.Set(in.Key, in.Value); err != nil {
		return nil, err
	}
	if f.err != nil {
		return nil, f.err
	}
	f.mu.Lock()
	f.saved = append(f.saved, *in.Settings)
	f.mu.Unlock()
	return &usecase.UpdateSettingsOutput{Path: "/cfg/config.toml"}, nil
}

// savedMsgs runs cmd, including batched commands, and returns the MsgSaved results.
func savedMsgs(cmd tea.Cmd) []MsgSaved {
	if cmd == nil {
		return nil
	}
	switch msg := cmd().(type) {
	case MsgSaved:
		return []MsgSaved{msg}
	case tea.BatchMsg:
		var (
			mu  sync.Mutex
			wg  sync.WaitGroup
			out []MsgSaved
		)
		for _, c := range msg {
			wg.Add(1)
			go func(c tea.Cmd) {
				defer wg.Done()
				found := savedMsgs(c)
				mu.Lock()
				out = append(out, found...)
				mu.Unlock()
			}(c)
		}
		wg.Wait()
		return out
	default:
		return nil
	}
}

func typeText(m *Model, text string) tea.Cmd {
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
	return cmd
}

func pressKey(m *Model, t tea.KeyType) tea.Cmd {
	_, cmd := m.Update(tea.KeyMsg{Type: t})
	return cmd
}

func TestModel_TypingPersistsImmediately(t *testing.T) {
	s := domain.DefaultSettings()
	up := &fakeUpdater{}
	m := New(s, up, "/cfg/config.toml")

	msgs := savedMsgs(typeText(m, "jira.example.com"))
	require.Len(t, msgs, 1)
	assert.Equal(t, domain.SettingHost, msgs[0].Key)
	assert.NoError(t, msgs[0].Err)

	m.Update(msgs[0])

	assert.Equal(t, "jira.example.com", s.Host)
	require.Len(t, up.saved, 1)
	assert.Equal(t, "jira.example.com", up.saved[0].Host)
	assert.Contains(t, m.View(), "Saved host")
}

func TestModel_NoSaveWithoutChange(t *testing.T) {
	m := New(domain.DefaultSettings(), &fakeUpdater{}, "/cfg/config.toml")

	// Left arrow moves the cursor but leaves the value unchanged.
	msgs := savedMsgs(pressKey(m, tea.KeyLeft))

	assert.Empty(t, msgs)
	assert.False(t, m.saving)
}

func TestModel_SavesDoNotOverlap(t *testing.T) {
	s := domain.DefaultSettings()
	up := &fakeUpdater{}
	m := New(s, up, "/cfg/config.toml")

	first := typeText(m, "a")
	require.True(t, m.saving)

	// A change while saving is queued, not started.
	second := typeText(m, "b")
	assert.Empty(t, savedMsgs(second))
	assert.Equal(t, domain.SettingHost, m.pending)

	msgs := savedMsgs(first)
	require.Len(t, msgs, 1)
	_, next := m.Update(msgs[0])
	require.NotNil(t, next)

	msgs = savedMsgs(next)
	require.Len(t, msgs, 1)
	m.Update(msgs[0])

	assert.Equal(t, "ab", s.Host)
	require.Len(t, up.saved, 2)
	assert.Equal(t, "ab", up.saved[1].Host)
	assert.False(t, m.saving)
}

func TestModel_ToggleInsecureSkipVerify(t *testing.T) {
	s := domain.DefaultSettings()
	m := New(s, &fakeUpdater{}, "/cfg/config.toml")

	// Focus moves down to the toggle row.
	for range len(m.fields) - 1 {
		pressKey(m, tea.KeyTab)
	}
	require.True(t, m.fields[m.focus].toggle)

	msgs := savedMsgs(pressKey(m, tea.KeySpace))
	require.Len(t, msgs, 1)
	assert.Equal(t, domain.SettingInsecureSkipVerify, msgs[0].Key)
	m.Update(msgs[0])

	assert.True(t, s.InsecureSkipVerify)
	view := m.View()
	assert.Contains(t, view, "[x]")
	assert.Contains(t, view, "TLS verification disabled")
}

func TestModel_FocusWraps(t *testing.T) {
	m := New(domain.DefaultSettings(), &fakeUpdater{}, "/cfg/config.toml")

	pressKey(m, tea.KeyShiftTab)

	assert.Equal(t, len(m.fields)-1, m.focus)
	pressKey(m, tea.KeyTab)
	assert.Equal(t, 0, m.focus)
}

func TestModel_SaveErrorShown(t *testing.T) {
	s := domain.DefaultSettings()
	m := New(s, &fakeUpdater{err: errors.New("disk full")}, "/cfg/config.toml")

	msgs := savedMsgs(typeText(m, "h"))
	require.Len(t, msgs, 1)
	m.Update(msgs[0])

	assert.Empty(t, s.Host)
	assert.Contains(t, m.View(), "disk full")
}

func TestModel_TokenMasked(t *testing.T) {
	s := domain.DefaultSettings()
	s.Token = "super-secret-token"
	m := New(s, &fakeUpdater{}, "/cfg/config.toml")

	assert.NotContains(t, m.View(), "super-secret-token")
}

func TestModel_Quit(t *testing.T) {
	m := New(domain.DefaultSettings(), &fakeUpdater{}, "/cfg/config.toml")

	cmd := pressKey(m, tea.KeyEsc)

	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}
