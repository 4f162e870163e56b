package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Justice-Caban/Iroai/internal/tui/theme"
)

// Status styles
var (
	StatusBarStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("230")).
			Background(lipgloss.Color("236")).
			Padding(0, 1)

	statusViewStyle = lipgloss.NewStyle().
			Foreground(theme.ColorPrimary).
			Bold(true)
)

// GetStatusBarText formats a status bar message
func GetStatusBarText(items ...string) string {
	return StatusBarStyle.Render(strings.Join(items, " │ "))
}
