package theme

import "github.com/charmbracelet/lipgloss"

// Chrome colors use the terminal's 16-color ANSI palette so the UI around the
// swatches follows the user's terminal theme. Swatches themselves are drawn
// in true color (see swatch.go).
//   0-7: Normal colors (black, red, green, yellow, blue, magenta, cyan, white)
//   8-15: Bright colors (bright versions of the above)
var (
	ColorPrimary   = lipgloss.Color("13") // Bright Magenta - titles, selection
	ColorSecondary = lipgloss.Color("12") // Bright Blue - section headers
	ColorAccent    = lipgloss.Color("14") // Bright Cyan - values
	ColorSuccess   = lipgloss.Color("10") // Bright Green - passing contrast
	ColorWarning   = lipgloss.Color("11") // Bright Yellow - locks, warnings
	ColorError     = lipgloss.Color("9")  // Bright Red - failing contrast, errors
	ColorMuted     = lipgloss.Color("8")  // Bright Black (Gray) - help text
	ColorBorder    = lipgloss.Color("8")  // Bright Black (Gray) - borders
)
