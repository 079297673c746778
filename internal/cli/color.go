package cli

import (
	"fmt"
	"io"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/muesli/termenv"
)

// Color modes for --color.
const (
	colorAuto   = "auto"
	colorAlways = "always"
	colorNever  = "never"
)

// highlightStyle is the chroma style used for structured output.
const highlightStyle = "jira-note"

func init() {
	// Matches the palette of the settings form.
	styles.Register(chroma.MustNewStyle(highlightStyle, chroma.StyleEntries{
		chroma.Text:          "#E5E7EB",
		chroma.Error:         "#EF4444",
		chroma.Comment:       "#9CA3AF italic",
		chroma.Keyword:       "#7C3AED bold",
		chroma.Punctuation:   "#9CA3AF",
		chroma.NameTag:       "#A78BFA",
		chroma.NameAttribute: "#A78BFA",
		chroma.Literal:       "#E5E7EB",
		chroma.LiteralNumber: "#F59E0B",
		chroma.LiteralString: "#10B981",
		chroma.Background:    "",
	}))
}

// useColor reports whether output to w should be colored for mode.
func useColor(w io.Writer, mode string) (bool, error) {
	switch mode {
	case colorAlways:
		return true, nil
	case colorNever:
		return false, nil
	case colorAuto, "":
		return termenv.NewOutput(w).ColorProfile() != termenv.Ascii, nil
	default:
		return false, fmt.Errorf("unknown color mode %q (want auto, always or never)", mode)
	}
}

// writeHighlighted writes src to w, colored with the lexer for language.
func writeHighlighted(w io.Writer, src, language string) error {
	lexer := lexers.Get(language)
	if lexer == nil {
		lexer = lexers.Fallback
	}
	iterator, err := chroma.Coalesce(lexer).Tokenise(nil, src)
	if err != nil {
		return fmt.Errorf("highlight %s: %w", language, err)
	}
	formatter := formatters.Get("terminal256")
	if formatter == nil {
		formatter = formatters.Fallback
	}
	return formatter.Format(w, styles.Get(highlightStyle), iterator)
}

// markdownStyle picks the glamour style for w when none was requested.
func markdownStyle(w io.Writer) string {
	out := termenv.NewOutput(w)
	if out.ColorProfile() == termenv.Ascii {
		return "notty"
	}
	if out.HasDarkBackground() {
		return "dark"
	}
	return "light"
}
