// Package settings provides the interactive settings form.
package settings

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"

	"github.com/runoshun/jira-note/internal/domain"
	"github.com/runoshun/jira-note/internal/usecase"
)

const (
	appPadding   = 4
	defaultWidth = 80
	inputLimit   = 500
)

// Updater persists a single setting change.
type Updater interface {
	Execute(ctx context.Context, in usecase.UpdateSettingsInput) (*usecase.UpdateSettingsOutput, error)
}

// field is one row of the form.
type field struct {
	key         string
	label       string
	description string
	input       textinput.Model
	toggle      bool // Rendered as a checkbox instead of a text input
}

// Model is the settings form model.
// Fields are ordered to minimize memory padding.
type Model struct {
	// Dependencies
	updater  Updater
	settings *domain.Settings

	// State
	inflight *domain.Settings // Snapshot being saved
	err      error
	path     string
	lastKey  string
	pending  string // Key changed while a save was in flight
	fields   []field

	// Components
	keys   KeyMap
	styles Styles
	help   help.Model

	// Numeric state
	focus  int
	width  int
	height int

	// Boolean state
	insecure bool
	saving   bool
	saved    bool
}

// New creates a settings form editing s. Changes are persisted through updater.
func New(s *domain.Settings, updater Updater, path string) *Model {
	m := &Model{
		updater:  updater,
		settings: s,
		path:     path,
		keys:     DefaultKeyMap(),
		styles:   DefaultStyles(),
		help:     help.New(),
		insecure: s.InsecureSkipVerify,
	}

	m.fields = []field{
		newTextField(domain.SettingHost, "Host", "Jira host name, e.g. jira.example.com", s.Host),
		newTextField(domain.SettingToken, "Jira PAT", "Personal access token used as bearer credential", s.Token),
		newTextField(domain.SettingTemplateFilePath, "Issue Template", "Template file, relative to the vault", s.TemplateFilePath),
		newTextField(domain.SettingVault, "Vault", "Vault directory (empty: current directory)", s.Vault),
		{
			key:         domain.SettingInsecureSkipVerify,
			label:       "Skip TLS verification",
			description: "Accept self-signed certificates from the Jira host",
			toggle:      true,
		},
	}
	m.fields[1].input.EchoMode = textinput.EchoPassword
	m.fields[1].input.EchoCharacter = '•'
	m.fields[0].input.Focus()

	return m
}

func newTextField(settingKey, label, description, value string) field {
	ti := textinput.New()
	ti.CharLimit = inputLimit
	ti.Prompt = ""
	ti.SetValue(value)
	return field{
		key:         settingKey,
		label:       label,
		description: description,
		input:       ti,
	}
}

// Init initializes the model.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = m.contentWidth()
		return m, nil

	case MsgSaved:
		return m, m.handleSaved(msg)
	}

	return m, nil
}

// handleKey handles key events.
func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	current := &m.fields[m.focus]

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Next):
		m.moveFocus(1)
		return m, nil

	case key.Matches(msg, m.keys.Prev):
		m.moveFocus(-1)
		return m, nil

	case current.toggle && key.Matches(msg, m.keys.Toggle):
		m.insecure = !m.insecure
		return m, m.queueSave(current.key)
	}

	if current.toggle {
		return m, nil
	}

	before := current.input.Value()
	var cmd tea.Cmd
	current.input, cmd = current.input.Update(msg)
	if current.input.Value() == before {
		return m, cmd
	}
	return m, tea.Batch(cmd, m.queueSave(current.key))
}

// moveFocus moves the focus by delta, wrapping around.
func (m *Model) moveFocus(delta int) {
	m.fields[m.focus].input.Blur()
	m.focus = (m.focus + delta + len(m.fields)) % len(m.fields)
	if !m.fields[m.focus].toggle {
		m.fields[m.focus].input.Focus()
	}
}

// queueSave saves the form now, or after the save in flight finishes.
// Saves never overlap so the file always ends with the latest values.
func (m *Model) queueSave(settingKey string) tea.Cmd {
	if m.saving {
		m.pending = settingKey
		return nil
	}
	return m.save(settingKey)
}

// save returns a command persisting the current form values.
func (m *Model) save(settingKey string) tea.Cmd {
	snapshot := m.snapshot()
	value, err := snapshot.Get(settingKey)
	if err != nil {
		m.err = err
		return nil
	}

	m.inflight = snapshot
	m.saving = true
	m.saved = false
	m.lastKey = settingKey
	updater := m.updater

	return func() tea.Msg {
		_, err := updater.Execute(context.Background(), usecase.UpdateSettingsInput{
			Settings: snapshot,
			Key:      settingKey,
			Value:    value,
		})
		return MsgSaved{Key: settingKey, Err: err}
	}
}

// handleSaved records a finished save and starts the pending one.
func (m *Model) handleSaved(msg MsgSaved) tea.Cmd {
	m.saving = false
	if msg.Err != nil {
		m.err = msg.Err
		m.saved = false
	} else {
		m.err = nil
		m.saved = true
		if m.inflight != nil {
			*m.settings = *m.inflight
		}
	}
	m.inflight = nil

	if m.pending == "" {
		return nil
	}
	next := m.pending
	m.pending = ""
	return m.save(next)
}

// snapshot returns a copy of the settings with the form values applied.
func (m *Model) snapshot() *domain.Settings {
	s := *m.settings
	for _, f := range m.fields {
		if f.toggle {
			continue
		}
		// Text settings accept any value.
		_ = s.Set(f.key, f.input.Value())
	}
	s.InsecureSkipVerify = m.insecure
	return &s
}

// contentWidth returns the available content width.
func (m *Model) contentWidth() int {
	if m.width == 0 {
		return defaultWidth
	}
	w := m.width - appPadding
	if w < 0 {
		w = 0
	}
	return w
}

// View renders the form.
func (m *Model) View() string {
	width := m.contentWidth()

	var b strings.Builder
	b.WriteString(m.styles.Title.Render("jira-note settings"))
	b.WriteString("\n")
	b.WriteString(m.styles.Path.Render(truncate.StringWithTail(m.path, uint(width), "…")))
	b.WriteString("\n")

	for i, f := range m.fields {
		b.WriteString(m.viewField(f, i == m.focus, width))
		b.WriteString("\n")
	}

	b.WriteString(m.viewStatus())
	b.WriteString("\n")
	b.WriteString(m.viewHelp())

	return m.styles.App.Render(b.String())
}

// viewField renders a single form row.
func (m *Model) viewField(f field, focused bool, width int) string {
	label := m.styles.Label.Render(f.label)
	if focused {
		label = m.styles.LabelFocus.Render(f.label)
	}

	if f.toggle {
		box := "[ ]"
		if m.insecure {
			box = "[x]"
		}
		if focused {
			box = m.styles.LabelFocus.Render(box)
		}
		desc := m.styles.Description.Render(f.description)
		return lipgloss.JoinVertical(lipgloss.Left, box+" "+label, desc)
	}

	inputStyle := m.styles.Input
	if focused {
		inputStyle = m.styles.InputFocus
	}
	// Border and padding take four columns.
	inputWidth := width - 4
	if inputWidth < 1 {
		inputWidth = 1
	}
	input := inputStyle.Width(inputWidth).Render(f.input.View())
	desc := m.styles.Description.Render(f.description)

	return lipgloss.JoinVertical(lipgloss.Left, label, desc, input)
}

// viewStatus renders the save status line.
func (m *Model) viewStatus() string {
	switch {
	case m.err != nil:
		return m.styles.Error.Render("Error: " + m.err.Error())
	case m.saving:
		return m.styles.Saving.Render("Saving...")
	case m.saved:
		msg := fmt.Sprintf("Saved %s", m.lastKey)
		if m.insecure {
			msg += " (TLS verification disabled)"
		}
		return m.styles.Saved.Render(msg)
	default:
		return ""
	}
}

// viewHelp renders the key hints.
func (m *Model) viewHelp() string {
	return m.styles.Help.Render(m.help.View(m.keys))
}
