package theme

import "github.com/charmbracelet/lipgloss"

// Common styles used across all TUI views

var (
	// Text Styles

	// TitleStyle is used for view titles and headers
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			MarginBottom(1)

	// SectionStyle is used for section headers within views
	SectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorSecondary).
			MarginTop(1)

	// HelpStyle is used for help text and keyboard shortcuts
	HelpStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			MarginTop(1)

	// MutedStyle is used for less important text
	MutedStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	// LabelStyle is used for the key side of key-value pairs
	LabelStyle = lipgloss.NewStyle().
			Foreground(ColorAccent).
			Width(16)

	// ValueStyle is used for displaying values in key-value pairs
	ValueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("15"))

	// Status Styles

	// SuccessStyle is used for success messages and indicators
	SuccessStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess)

	// ErrorStyle is used for error messages
	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorError)

	// WarningStyle is used for warnings and lock markers
	WarningStyle = lipgloss.NewStyle().
			Foreground(ColorWarning)

	// Container Styles

	// BoxStyle is a basic box with rounded borders
	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(1, 2)

	// Badge Styles

	// BadgeStyle is a base style for badges (can be customized per use)
	BadgeStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Foreground(lipgloss.Color("#000000"))

	// PassBadgeStyle marks a contrast pair meeting AA
	PassBadgeStyle = BadgeStyle.Background(ColorSuccess)

	// FailBadgeStyle marks a contrast pair below AA
	FailBadgeStyle = BadgeStyle.Background(ColorError)

	// InfoBadgeStyle for informational badges
	InfoBadgeStyle = BadgeStyle.Background(ColorSecondary)
)

// RenderKeyValue renders a key-value pair on one line
func RenderKeyValue(key, value string) string {
	return lipgloss.JoinHorizontal(
		lipgloss.Left,
		LabelStyle.Render(key+":"),
		ValueStyle.Render(value),
	)
}

// RenderBadge renders a badge with the given text and style
func RenderBadge(text string, style lipgloss.Style) string {
	return style.Render(text)
}

// RenderSection renders a section with a title and content
func RenderSection(title, content string) string {
	return SectionStyle.Render(title) + "\n" + content
}

// CenteredText centers text in the given width and height
func CenteredText(width, height int, text string) string {
	style := lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center)
	return style.Render(text)
}
