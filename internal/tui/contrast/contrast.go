package contrast

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Justice-Caban/Iroai/internal/palette"
	"github.com/Justice-Caban/Iroai/internal/tui/theme"
)

const (
	sampleWidth = 24
	emptyHeight = 5
)

// Model lists the background/text pairings of a palette, best first
type Model struct {
	width  int
	height int

	colors  palette.Palette
	showAll bool
	offset  int
}

// NewModel creates a contrast view over colors. Only AA pairs are listed
// until the user toggles the filter.
func NewModel(colors palette.Palette) Model {
	return Model{colors: append(palette.Palette(nil), colors...)}
}

// Init initializes the contrast model
func (m Model) Init() tea.Cmd {
	return nil
}

// Pairs returns the pairs currently listed
func (m Model) Pairs() []palette.Pair {
	threshold := palette.AAThreshold
	if m.showAll {
		threshold = 0
	}
	return palette.ContrastPairs(m.colors, threshold)
}

// Update handles messages for the contrast view
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "v":
			m.showAll = !m.showAll
			m.offset = 0
		case "up", "k":
			if m.offset > 0 {
				m.offset--
			}
		case "down", "j":
			if m.offset < len(m.Pairs())-1 {
				m.offset++
			}
		}
	}

	return m, nil
}

// View renders the contrast view
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(theme.TitleStyle.Render("Contrast"))
	b.WriteString("\n")

	pairs := m.Pairs()
	filter := "AA pairs (4.5:1 and above)"
	if m.showAll {
		filter = "all pairs"
	}
	b.WriteString(theme.MutedStyle.Render(fmt.Sprintf("%d %s", len(pairs), filter)))
	b.WriteString("\n\n")

	switch {
	case len(m.colors) < 2:
		b.WriteString(theme.CenteredText(m.width, emptyHeight, theme.MutedStyle.Render("A single color has nothing to pair with.\nAdd a color in the studio with a.")))
		b.WriteString("\n")
	case len(pairs) == 0:
		b.WriteString(theme.WarningStyle.Render("No pair in this palette reaches AA. Press v to list all pairs."))
		b.WriteString("\n")
	}

	visible := m.visibleRows()
	end := min(m.offset+visible, len(pairs))
	for _, p := range pairs[m.offset:end] {
		b.WriteString(m.renderPair(p))
		b.WriteString("\n")
	}

	b.WriteString(theme.HelpStyle.Render(strings.Join([]string{
		"v: toggle AA only / all",
		"↑/↓: scroll",
		"Esc: back",
	}, " • ")))
	return b.String()
}

func (m Model) visibleRows() int {
	if m.height == 0 {
		return 12
	}
	return max(m.height-10, 3)
}

func (m Model) renderPair(p palette.Pair) string {
	bg, fg := m.colors[p.Background], m.colors[p.Text]

	badge := theme.RenderBadge("AA", theme.PassBadgeStyle)
	if p.Ratio < palette.AAThreshold {
		badge = theme.RenderBadge("fail", theme.FailBadgeStyle)
	}

	return lipgloss.JoinHorizontal(
		lipgloss.Center,
		theme.Pair(bg, fg, sampleWidth, "Aa The quick fox"),
		"  ",
		theme.ValueStyle.Render(fmt.Sprintf("%s on %s  %5.2f:1 ", fg, bg, p.Ratio)),
		badge,
	)
}
