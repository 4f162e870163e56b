package settings

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Justice-Caban/Iroai/internal/config"
	"github.com/Justice-Caban/Iroai/internal/tui/theme"
)

// Loader reads the configuration; config.Load in the application
type Loader func() (*config.Config, error)

// Saver writes the configuration; config.Save in the application
type Saver func(*config.Config) error

// Model represents the settings view model
type Model struct {
	width  int
	height int

	config     *config.Config
	configPath string
	load       Loader
	save       Saver

	// studio holds the controls of the running session, which "w" saves
	studio *config.GeneratorConfig

	status string
	failed bool
}

// NewModel creates a new settings model
func NewModel(cfg *config.Config, configPath string, load Loader, save Saver) Model {
	if load == nil {
		load = config.Load
	}
	if save == nil {
		save = config.Save
	}
	return Model{
		config:     cfg,
		configPath: configPath,
		load:       load,
		save:       save,
	}
}

// Init initializes the settings model
func (m Model) Init() tea.Cmd {
	return nil
}

// Config returns the configuration being shown
func (m Model) Config() *config.Config {
	return m.config
}

// ConfigPath returns the file the configuration is read from
func (m Model) ConfigPath() string {
	return m.configPath
}

// SetStudio records the controls of the running session
func (m *Model) SetStudio(g config.GeneratorConfig) {
	m.studio = &g
}

// Update handles messages for the settings view
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "r", "R":
			// Reload configuration
			cfg, err := m.load()
			if err != nil {
				m.setStatus(fmt.Sprintf("Reload failed: %v", err), true)
				return m, nil
			}
			m.config = cfg
			m.setStatus("Configuration reloaded", false)
			return m, func() tea.Msg { return ConfigReloadedMsg{Config: cfg} }

		case "w", "W":
			// Save the studio controls as the new defaults
			if m.config == nil || m.studio == nil {
				return m, nil
			}
			cfg := *m.config
			cfg.Generator = *m.studio
			if err := m.save(&cfg); err != nil {
				m.setStatus(fmt.Sprintf("Save failed: %v", err), true)
				return m, nil
			}
			m.config = &cfg
			m.setStatus("Studio settings saved as defaults", false)
			return m, func() tea.Msg { return ConfigSavedMsg{Config: &cfg} }
		}
	}

	return m, nil
}

// View renders the settings view
func (m Model) View() string {
	var b strings.Builder

	// Header
	b.WriteString(theme.TitleStyle.Render("⚙️  Settings"))
	b.WriteString("\n")

	if m.config == nil {
		b.WriteString(theme.MutedStyle.Render("No configuration loaded"))
		b.WriteString("\n")
		b.WriteString(m.renderFooter())
		return b.String()
	}

	b.WriteString(m.renderGenerator())
	b.WriteString(m.renderPreferences())
	b.WriteString(m.renderPaths())
	b.WriteString(m.renderStatus())
	b.WriteString(m.renderFooter())

	return b.String()
}

// renderGenerator renders the generator defaults section
func (m Model) renderGenerator() string {
	g := m.config.Generator

	var b strings.Builder
	b.WriteString(theme.RenderSection("Generator", ""))
	b.WriteString(m.renderConfigLine("Colors", fmt.Sprintf("%d", g.Count)))
	b.WriteString(m.renderConfigLine("Brightness", fmt.Sprintf("%d", g.Brightness)))
	b.WriteString(m.renderConfigLine("Hue range", fmt.Sprintf("%.0f° to %.0f°", g.HueMin, g.HueMax)))
	b.WriteString(m.renderConfigLine("Harmony", string(g.HarmonyStyle())))
	if m.studio != nil && *m.studio != g {
		s := m.studio
		b.WriteString(m.renderConfigLine("Studio now", fmt.Sprintf("%d colors, brightness %d, %s (w to save)", s.Count, s.Brightness, s.Harmony)))
	}
	return b.String()
}

// renderPreferences renders the display preferences section
func (m Model) renderPreferences() string {
	p := m.config.Preferences

	names := "No"
	if p.ShowNames {
		names = "Yes"
	}

	var b strings.Builder
	b.WriteString(theme.RenderSection("Preferences", ""))
	b.WriteString(m.renderConfigLine("CVD preview", string(p.CVDType())))
	b.WriteString(m.renderConfigLine("Color names", names))
	b.WriteString(m.renderConfigLine("Share URL", p.ShareBaseURL))
	return b.String()
}

// renderPaths renders the file locations section
func (m Model) renderPaths() string {
	p := m.config.Paths

	debugLog := p.DebugLog
	if debugLog == "" {
		debugLog = "off"
	}

	var b strings.Builder
	b.WriteString(theme.RenderSection("Paths", ""))
	b.WriteString(m.renderConfigLine("Config file", m.configPath))
	b.WriteString(m.renderConfigLine("Exports", p.ExportDir))
	b.WriteString(m.renderConfigLine("Debug log", debugLog))
	return b.String()
}

func (m *Model) setStatus(text string, failed bool) {
	m.status = text
	m.failed = failed
}

// renderStatus renders the outcome of the last reload or save
func (m Model) renderStatus() string {
	switch {
	case m.status == "":
		return ""
	case m.failed:
		return "\n" + theme.ErrorStyle.Render("✗ "+m.status) + "\n"
	}
	return "\n" + theme.SuccessStyle.Render("✓ "+m.status) + "\n"
}

// renderConfigLine renders a configuration line
func (m Model) renderConfigLine(label, value string) string {
	return theme.RenderKeyValue(label, value) + "\n"
}

// renderFooter renders the footer with controls
func (m Model) renderFooter() string {
	controls := []string{
		"r: reload config",
		"w: save studio as defaults",
		"Esc: back",
	}

	return theme.HelpStyle.Render(strings.Join(controls, " • "))
}

// Messages

// ConfigReloadedMsg carries a configuration read back from disk
type ConfigReloadedMsg struct {
	Config *config.Config
}

// ConfigSavedMsg carries the configuration just written to disk
type ConfigSavedMsg struct {
	Config *config.Config
}
