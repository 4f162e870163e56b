package theme

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/Justice-Caban/Iroai/internal/colorconv"
)

// SwatchStyle paints hex as the background with black or white text,
// whichever reads better on it.
func SwatchStyle(hex string) lipgloss.Style {
	return lipgloss.NewStyle().
		Background(lipgloss.Color(hex)).
		Foreground(lipgloss.Color(colorconv.ContrastColor(hex)))
}

// Swatch renders a width x height block of hex with text centered in it.
func Swatch(hex string, width, height int, text string) string {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	return SwatchStyle(hex).
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(text)
}

// Pair renders text in fg on a bg block, as used by the contrast grid.
func Pair(bg, fg string, width int, text string) string {
	return lipgloss.NewStyle().
		Background(lipgloss.Color(bg)).
		Foreground(lipgloss.Color(fg)).
		Width(width).
		Align(lipgloss.Center).
		Render(text)
}

// Chip renders a small inline sample of hex.
func Chip(hex string) string {
	return lipgloss.NewStyle().Background(lipgloss.Color(hex)).Render("  ")
}
