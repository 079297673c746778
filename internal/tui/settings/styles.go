package settings

import "github.com/charmbracelet/lipgloss"

// Colors used in the settings form.
var (
	ColorPrimary = lipgloss.Color("#7C3AED") // Purple
	ColorSuccess = lipgloss.Color("#10B981") // Green
	ColorWarning = lipgloss.Color("#F59E0B") // Amber
	ColorError   = lipgloss.Color("#EF4444") // Red
	ColorMuted   = lipgloss.Color("#9CA3AF") // Light gray
)

// Styles holds the styles for the settings form.
type Styles struct {
	App         lipgloss.Style
	Title       lipgloss.Style
	Path        lipgloss.Style
	Label       lipgloss.Style
	LabelFocus  lipgloss.Style
	Description lipgloss.Style
	Input       lipgloss.Style
	InputFocus  lipgloss.Style
	Saved       lipgloss.Style
	Saving      lipgloss.Style
	Error       lipgloss.Style
	Help        lipgloss.Style
}

// DefaultStyles returns the default styles.
func DefaultStyles() Styles {
	return Styles{
		App: lipgloss.NewStyle().
			Padding(1, 2),
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary),
		Path: lipgloss.NewStyle().
			Foreground(ColorMuted).
			Italic(true).
			MarginBottom(1),
		Label: lipgloss.NewStyle().
			Bold(true),
		LabelFocus: lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary),
		Description: lipgloss.NewStyle().
			Foreground(ColorMuted),
		Input: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(ColorMuted).
			Padding(0, 1),
		InputFocus: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(ColorPrimary).
			Padding(0, 1),
		Saved: lipgloss.NewStyle().
			Foreground(ColorSuccess),
		Saving: lipgloss.NewStyle().
			Foreground(ColorWarning).
			Italic(true),
		Error: lipgloss.NewStyle().
			Foreground(ColorError).
			Bold(true),
		Help: lipgloss.NewStyle().
			MarginTop(1),
	}
}
