package details

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Justice-Caban/Iroai/internal/colorconv"
	"github.com/Justice-Caban/Iroai/internal/cvd"
	"github.com/Justice-Caban/Iroai/internal/palette"
	"github.com/Justice-Caban/Iroai/internal/tui/theme"
)

// Model shows every representation of one palette color and lets the user
// type a replacement hex
type Model struct {
	width  int
	height int

	colors palette.Palette
	index  int

	editing bool
	input   string
	err     error
}

// NewModel creates a details view over colors, opened on slot index
func NewModel(colors palette.Palette, index int) Model {
	if index < 0 || index >= len(colors) {
		index = 0
	}
	return Model{
		colors: append(palette.Palette(nil), colors...),
		index:  index,
	}
}

// Init initializes the details model
func (m Model) Init() tea.Cmd {
	return nil
}

// Editing reports whether a hex is being typed, in which case esc cancels
// the edit rather than leaving the view
func (m Model) Editing() bool {
	return m.editing
}

// Index returns the slot being shown
func (m Model) Index() int {
	return m.index
}

// Color returns the hex being shown
func (m Model) Color() string {
	if len(m.colors) == 0 {
		return ""
	}
	return m.colors[m.index]
}

// Update handles messages for the details view
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if m.editing {
			return m.handleEditKey(msg)
		}

		switch msg.String() {
		case "left":
			if m.index > 0 {
				m.index--
			}
		case "right":
			if m.index < len(m.colors)-1 {
				m.index++
			}
		case "i":
			m.editing = true
			m.input = "#"
			m.err = nil
		}
	}

	return m, nil
}

func (m Model) handleEditKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.editing = false
		m.input = ""
		return m, nil

	case tea.KeyBackspace:
		if len(m.input) > 0 {
			m.input = m.input[:len(m.input)-1]
		}
		return m, nil

	case tea.KeyEnter:
		hex, err := colorconv.Normalize(m.input)
		if err != nil {
			m.err = err
			return m, nil
		}
		m.colors[m.index] = hex
		m.editing = false
		m.input = ""
		m.err = nil
		idx := m.index
		return m, func() tea.Msg { return ColorEditedMsg{Index: idx, Hex: hex} }

	case tea.KeyRunes:
		for _, r := range msg.Runes {
			if isHexRune(r) && len(m.input) < 7 {
				m.input += string(r)
			}
		}
	}

	return m, nil
}

func isHexRune(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}

// View renders the details view
func (m Model) View() string {
	hex := m.Color()
	if hex == "" {
		return theme.MutedStyle.Render("No color selected")
	}

	var b strings.Builder

	b.WriteString(theme.TitleStyle.Render(fmt.Sprintf("Color %d of %d", m.index+1, len(m.colors))))
	b.WriteString("\n")
	b.WriteString(theme.Swatch(hex, 30, 5, hex+"\n"+colorconv.Name(hex)))
	b.WriteString("\n")

	b.WriteString(theme.RenderSection("Values", ""))
	b.WriteString(theme.RenderKeyValue("HEX", hex) + "\n")
	b.WriteString(theme.RenderKeyValue("RGB", colorconv.FormatRGB(colorconv.HexToRGB(hex))) + "\n")
	b.WriteString(theme.RenderKeyValue("HSL", colorconv.FormatHSL(colorconv.HexToHSL(hex))) + "\n")
	b.WriteString(theme.RenderKeyValue("CMYK", colorconv.FormatCMYK(colorconv.HexToCMYK(hex))) + "\n")
	b.WriteString(theme.RenderKeyValue("Name", colorconv.Name(hex)) + "\n")

	b.WriteString(theme.RenderSection("Contrast", ""))
	b.WriteString(renderRatio("on white", hex, colorconv.White))
	b.WriteString(renderRatio("on black", hex, colorconv.Black))
	b.WriteString(theme.RenderKeyValue("Text color", colorconv.ContrastColor(hex)) + "\n")

	b.WriteString(theme.RenderSection("Color vision", ""))
	for _, t := range cvd.Types() {
		sim := cvd.SimulateColor(hex, t)
		b.WriteString(theme.RenderKeyValue(string(t), theme.Chip(sim)+" "+sim) + "\n")
	}

	if m.editing {
		b.WriteString("\n")
		b.WriteString(theme.LabelStyle.Render("New hex:"))
		b.WriteString(theme.ValueStyle.Render(m.input + "▏"))
		if m.err != nil {
			b.WriteString("\n")
			b.WriteString(theme.ErrorStyle.Render(m.err.Error()))
		}
	}

	b.WriteString("\n")
	b.WriteString(m.renderFooter())
	return b.String()
}

func renderRatio(label, fg, bg string) string {
	ratio := colorconv.ContrastRatio(fg, bg)
	badge := theme.RenderBadge("AA", theme.PassBadgeStyle)
	if ratio < palette.AAThreshold {
		badge = theme.RenderBadge("fail", theme.FailBadgeStyle)
	}
	return theme.RenderKeyValue(label, fmt.Sprintf("%.2f:1 ", ratio)) + badge + "\n"
}

func (m Model) renderFooter() string {
	controls := []string{"←/→: color", "i: edit hex", "Esc: back"}
	if m.editing {
		controls = []string{"enter: apply", "Esc: cancel"}
	}
	return theme.HelpStyle.Render(strings.Join(controls, " • "))
}

// Messages

// ColorEditedMsg is sent when the user replaces a slot's color
type ColorEditedMsg struct {
	Index int
	Hex   string
}
