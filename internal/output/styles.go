package output

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// Color palette — named constants for the ANSI 256 colors used in the CLI.
// These are the single source of truth; never use inline lipgloss.Color
// literals.
var (
	// ColorCyan is used for identifiable nouns: module paths and names.
	ColorCyan = lipgloss.Color("14")

	// ColorRed is used for failure summaries.
	ColorRed = lipgloss.Color("196")

	// ColorGreenCheck is used for success confirmations.
	ColorGreenCheck = lipgloss.Color("10")

	// ColorDimGray is used for structural chrome.
	ColorDimGray = lipgloss.Color("240")
)

// Semantic styles — map domain concepts to visual presentation.
var (
	// StyleNoun styles identifiable nouns (module paths, config paths).
	StyleNoun = lipgloss.NewStyle().Foreground(ColorCyan)

	// StyleHeading styles section headings in informational output.
	StyleHeading = lipgloss.NewStyle().Bold(true)

	// StyleDim styles structural chrome (separators, build identifiers).
	StyleDim = lipgloss.NewStyle().Foreground(ColorDimGray)

	// StyleOK styles success confirmations.
	StyleOK = lipgloss.NewStyle().Foreground(ColorGreenCheck)

	// StyleFail styles failure summaries.
	StyleFail = lipgloss.NewStyle().Foreground(ColorRed)
)

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// Styled renders s with style when f is a terminal, and returns s unchanged
// otherwise so redirected output stays free of escape sequences.
func Styled(f *os.File, style lipgloss.Style, s string) string {
	if !IsTerminal(f) {
		return s
	}
	return style.Render(s)
}
