package studio

import (
	"fmt"
	"log/slog"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Justice-Caban/Iroai/internal/adjust"
	"github.com/Justice-Caban/Iroai/internal/colorconv"
	"github.com/Justice-Caban/Iroai/internal/config"
	"github.com/Justice-Caban/Iroai/internal/cvd"
	"github.com/Justice-Caban/Iroai/internal/palette"
	"github.com/Justice-Caban/Iroai/internal/share"
	"github.com/Justice-Caban/Iroai/internal/tui/theme"
)

// Model represents the palette studio view
type Model struct {
	width  int
	height int

	config   *config.Config
	session  Session
	selected int
	preview  cvd.Type
	status   string
}

// NewModel creates a studio over gen, drawing the first palette from the
// configured generator settings
func NewModel(cfg *config.Config, gen *palette.Generator) Model {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	return Model{
		config:  cfg,
		session: NewSession(gen, cfg.Generator),
		preview: cfg.Preferences.CVDType(),
	}
}

// Init initializes the studio model
func (m Model) Init() tea.Cmd {
	return nil
}

// Session returns the current palette state
func (m Model) Session() Session {
	return m.session
}

// Selected returns the index of the selected slot
func (m Model) Selected() int {
	return m.selected
}

// Preview returns the active color vision preview
func (m Model) Preview() cvd.Type {
	return m.preview
}

// Status returns the last status line message
func (m Model) Status() string {
	return m.status
}

// Restore loads a shared palette into the studio
func (m *Model) Restore(st share.State) {
	m.session.Restore(st)
	m.clampSelection()
}

// SetColor replaces slot i, as done from the details view
func (m *Model) SetColor(i int, hex string) error {
	if err := m.session.SetColor(i, hex); err != nil {
		return err
	}
	m.status = fmt.Sprintf("Slot %d set to %s", i+1, m.session.Base[i])
	return nil
}

// SetConfig swaps in a reloaded configuration. Generator settings apply
// from the next generate; the palette itself is kept.
func (m *Model) SetConfig(cfg *config.Config) {
	if cfg == nil {
		return
	}
	m.config = cfg
	m.session.Brightness = cfg.Generator.Brightness
	m.session.Hues = cfg.Generator.HueRange()
	m.session.Harmony = cfg.Generator.HarmonyStyle()
	m.preview = cfg.Preferences.CVDType()
}

// Update handles messages for the studio view
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case " ", "space", "g":
		m.session.Generate()
		m.status = "Generated"

	case "left":
		if m.selected > 0 {
			m.selected--
		}
	case "right":
		if m.selected < len(m.session.Base)-1 {
			m.selected++
		}

	case "l":
		m.session.ToggleLock(m.selected)
		if m.session.Locks.Locked(m.selected) {
			m.status = fmt.Sprintf("Locked slot %d", m.selected+1)
		} else {
			m.status = fmt.Sprintf("Unlocked slot %d", m.selected+1)
		}

	case "a":
		if m.session.Add() {
			m.selected = len(m.session.Base) - 1
			m.status = "Added a color"
		} else {
			m.status = fmt.Sprintf("A palette holds at most %d colors", palette.MaxSlots)
		}
	case "x":
		if m.session.Remove(m.selected) {
			m.clampSelection()
			m.status = "Removed a color"
		} else {
			m.status = "A palette needs at least one color"
		}

	case "[":
		if m.selected > 0 {
			m.session.Move(m.selected, m.selected-1)
			m.selected--
		}
	case "]":
		if m.selected < len(m.session.Base)-1 {
			m.session.Move(m.selected, m.selected+1)
			m.selected++
		}

	case "+", "=":
		m.session.SetBrightness(m.session.Brightness + brightnessStep)
		m.session.Generate()
		m.status = fmt.Sprintf("Brightness %d", m.session.Brightness)
	case "-":
		m.session.SetBrightness(m.session.Brightness - brightnessStep)
		m.session.Generate()
		m.status = fmt.Sprintf("Brightness %d", m.session.Brightness)

	case "m":
		m.session.Harmony = m.session.Harmony.Next()
		m.session.Generate()
		m.status = "Harmony " + string(m.session.Harmony)

	case "h":
		m.nudge(adjust.Values{H: -hueStep})
	case "H":
		m.nudge(adjust.Values{H: hueStep})
	case "s":
		m.nudge(adjust.Values{S: -adjustStep})
	case "S":
		m.nudge(adjust.Values{S: adjustStep})
	case "b":
		m.nudge(adjust.Values{B: -adjustStep})
	case "B":
		m.nudge(adjust.Values{B: adjustStep})
	case "t":
		m.nudge(adjust.Values{T: -adjustStep})
	case "T":
		m.nudge(adjust.Values{T: adjustStep})
	case "0":
		m.session.ResetAdjustments()
		m.status = "Adjustments reset"

	case "c":
		m.preview = m.preview.Next()
		m.status = "Preview " + string(m.preview)

	case "enter":
		idx := m.selected
		return m, func() tea.Msg { return OpenDetailsMsg{Index: idx} }
	case "k":
		return m, func() tea.Msg { return OpenContrastMsg{} }

	case "e":
		return m, m.export()
	case "u":
		m.share()
	}

	return m, nil
}

func (m *Model) nudge(d adjust.Values) {
	m.session.Nudge(d)
	m.status = "Adjust " + m.session.Adj.String()
}

func (m *Model) clampSelection() {
	if m.selected >= len(m.session.Base) {
		m.selected = len(m.session.Base) - 1
	}
	if m.selected < 0 {
		m.selected = 0
	}
}

func (m *Model) share() {
	link, err := share.URL(m.config.Preferences.ShareBaseURL, m.session.ShareState())
	if err != nil {
		slog.Warn("share link failed", "error", err)
		m.status = "Share failed: " + err.Error()
		return
	}
	slog.Info("share link created", "url", link)
	m.status = link
}

func (m Model) export() tea.Cmd {
	dir := m.config.Paths.ExportDir
	st := m.session.ExportState()
	return func() tea.Msg {
		path, err := share.ExportFile(dir, st)
		return ExportedMsg{Path: path, Err: err}
	}
}

// View renders the studio view
func (m Model) View() string {
	width, height := m.width, m.height
	if width == 0 {
		width = 80
	}
	if height == 0 {
		height = 24
	}

	var b strings.Builder

	b.WriteString(theme.TitleStyle.Render("色合い IROAI"))
	b.WriteString("\n")
	b.WriteString(m.renderControls())
	b.WriteString("\n\n")

	footer := m.renderFooter()
	swatchHeight := height - lipgloss.Height(b.String()) - lipgloss.Height(footer) - 3
	b.WriteString(m.renderSwatches(width, swatchHeight))
	b.WriteString("\n")
	b.WriteString(footer)

	return b.String()
}

func (m Model) renderControls() string {
	s := m.session
	items := []string{
		theme.MutedStyle.Render("harmony ") + theme.ValueStyle.Render(string(s.Harmony)),
		theme.MutedStyle.Render("brightness ") + theme.ValueStyle.Render(fmt.Sprintf("%d", s.Brightness)),
		theme.MutedStyle.Render("hues ") + theme.ValueStyle.Render(fmt.Sprintf("%.0f°–%.0f°", s.Hues.Min, s.Hues.Max)),
		theme.MutedStyle.Render("adjust ") + theme.ValueStyle.Render(s.Adj.String()),
	}
	if m.preview != cvd.None {
		items = append(items, theme.WarningStyle.Render("preview "+string(m.preview)))
	}
	return strings.Join(items, theme.MutedStyle.Render(" • "))
}

func (m Model) renderSwatches(width, height int) string {
	colors := m.session.Colors()
	if len(colors) == 0 {
		return theme.MutedStyle.Render("No colors")
	}
	shown := cvd.Simulate(colors, m.preview)

	colWidth := max(width/len(colors), 9)
	blockHeight := max(height-2, 3)

	cols := make([]string, len(colors))
	for i, hex := range colors {
		var label strings.Builder
		label.WriteString(hex)
		if m.config.Preferences.ShowNames {
			label.WriteString("\n" + colorconv.Name(hex))
		}
		if m.session.Locks.Locked(i) {
			label.WriteString("\n🔒")
		}

		block := theme.Swatch(shown[i], colWidth, blockHeight, label.String())

		marker := strings.Repeat(" ", colWidth)
		if i == m.selected {
			marker = lipgloss.NewStyle().
				Width(colWidth).
				Align(lipgloss.Center).
				Foreground(theme.ColorPrimary).
				Bold(true).
				Render("▲")
		}
		cols[i] = lipgloss.JoinVertical(lipgloss.Left, block, marker)
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, cols...)
}

func (m Model) renderFooter() string {
	var b strings.Builder
	if m.status != "" {
		b.WriteString(theme.ValueStyle.Render(m.status))
		b.WriteString("\n")
	}

	controls := []string{
		"space: generate",
		"←/→: select",
		"l: lock",
		"a/x: add/remove",
		"[/]: move",
		"+/-: brightness",
		"m: harmony",
		"h s b t (shift +): adjust",
		"0: reset",
		"c: preview",
		"enter: details",
		"k: contrast",
		"e: export",
		"u: share",
		",: settings",
		"q: quit",
	}
	b.WriteString(theme.HelpStyle.Render(strings.Join(controls, " • ")))
	return b.String()
}

// Messages

// OpenDetailsMsg asks the app to show the details view for a slot
type OpenDetailsMsg struct {
	Index int
}

// OpenContrastMsg asks the app to show the contrast view
type OpenContrastMsg struct{}

// ExportedMsg reports the outcome of a JSON export
type ExportedMsg struct {
	Path string
	Err  error
}
