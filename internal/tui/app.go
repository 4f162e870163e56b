package tui

import (
	"fmt"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Justice-Caban/Iroai/internal/config"
	"github.com/Justice-Caban/Iroai/internal/palette"
	"github.com/Justice-Caban/Iroai/internal/share"
	"github.com/Justice-Caban/Iroai/internal/tui/contrast"
	"github.com/Justice-Caban/Iroai/internal/tui/details"
	"github.com/Justice-Caban/Iroai/internal/tui/settings"
	"github.com/Justice-Caban/Iroai/internal/tui/studio"
)

// ViewType represents the current active view
type ViewType string

const (
	ViewStudio   ViewType = "studio"
	ViewDetails  ViewType = "details"
	ViewContrast ViewType = "contrast"
	ViewSettings ViewType = "settings"
)

// AppModel is the root model for the entire TUI application
type AppModel struct {
	currentView ViewType
	ready       bool
	width       int
	height      int

	// Dependencies
	config        *config.Config
	notifications ErrorNotificationList

	// View models
	studioModel   studio.Model
	settingsModel settings.Model
	detailsModel  *details.Model
	contrastModel *contrast.Model
}

// NewAppModel creates a new application model. A cfgErr from loading cfg is
// shown as a warning and the defaults are used. firstRun reports that the
// config file was only just created. A non-empty shared value, either a
// share URL or its bare blob, restores that palette; an unreadable one falls
// back to a fresh palette.
func NewAppModel(cfg *config.Config, cfgErr error, firstRun bool, shared string) AppModel {
	return newAppModel(appDeps{
		cfgPath: config.GetConfigPath(),
		load:    config.Load,
		save:    config.Save,
		gen:     palette.NewGenerator(nil),
	}, cfg, cfgErr, firstRun, shared)
}

// appDeps are the collaborators tests replace
type appDeps struct {
	cfgPath string
	load    settings.Loader
	save    settings.Saver
	gen     *palette.Generator
}

func newAppModel(deps appDeps, cfg *config.Config, cfgErr error, firstRun bool, shared string) AppModel {
	cfgPath := deps.cfgPath
	var notes ErrorNotificationList
	switch {
	case cfgErr != nil || cfg == nil:
		// Use default config if loading fails
		cfg = config.DefaultConfig()
		msg := "configuration could not be loaded"
		if cfgErr != nil {
			msg = cfgErr.Error()
			slog.Warn("config load failed, using defaults", "error", cfgErr)
		}
		notes.AddError("Config Error", msg, "Using defaults. Fix or remove "+cfgPath, SeverityWarning)
	case firstRun:
		notes.AddError("Welcome to Iroai", "Created a default config at "+cfgPath, "Press , in the studio to view settings", SeverityInfo)
	}

	studioModel := studio.NewModel(cfg, deps.gen)
	if shared != "" {
		fresh := studioModel.Session().ShareState()
		st, used := share.Restore(share.FromURL(shared), func() share.State { return fresh })
		if used {
			studioModel.Restore(st)
			slog.Info("restored shared palette", "colors", st.Palette)
		} else {
			slog.Info("shared palette unreadable, generated a new one")
		}
	}

	return AppModel{
		currentView:   ViewStudio,
		config:        cfg,
		notifications: notes,
		studioModel:   studioModel,
		settingsModel: settings.NewModel(cfg, cfgPath, deps.load, deps.save),
	}
}

// Init initializes the application
func (m AppModel) Init() tea.Cmd {
	return nil
}

// Update handles all messages and routes them appropriately
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case studio.OpenDetailsMsg:
		dm := details.NewModel(m.studioModel.Session().Colors(), msg.Index)
		dm, _ = dm.Update(m.sizeMsg())
		m.detailsModel = &dm
		m.currentView = ViewDetails
		return m, nil

	case studio.OpenContrastMsg:
		cm := contrast.NewModel(m.studioModel.Session().Colors())
		cm, _ = cm.Update(m.sizeMsg())
		m.contrastModel = &cm
		m.currentView = ViewContrast
		return m, nil

	case details.ColorEditedMsg:
		if err := m.studioModel.SetColor(msg.Index, msg.Hex); err != nil {
			m.notifications.AddError("Edit Failed", err.Error(), "", SeverityError)
		}
		return m, nil

	case studio.ExportedMsg:
		if msg.Err != nil {
			slog.Error("export failed", "error", msg.Err)
			m.notifications.AddError("Export Failed", msg.Err.Error(), "Check paths.export_dir in the config file", SeverityError)
		} else {
			slog.Info("palette exported", "path", msg.Path)
			m.notifications.AddError("Exported", msg.Path, "", SeverityInfo)
		}
		return m, nil

	case settings.ConfigReloadedMsg:
		m.config = msg.Config
		m.studioModel.SetConfig(msg.Config)
		m.settingsModel.SetStudio(m.studioModel.Session().GeneratorConfig())
		return m, nil

	case settings.ConfigSavedMsg:
		slog.Info("studio settings saved", "path", m.settingsModel.ConfigPath(), "generator", msg.Config.Generator)
		m.config = msg.Config
		m.studioModel.SetConfig(msg.Config)
		return m, nil

	case tea.KeyMsg:
		// Any key acknowledges pending notifications
		m.notifications.Dismiss()

		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

		// Text entry in the details view gets every other key
		if m.currentView == ViewDetails && m.detailsModel != nil && m.detailsModel.Editing() {
			break
		}

		switch msg.String() {
		case "q", "esc":
			if m.currentView == ViewStudio {
				return m, tea.Quit
			}
			m.goHome()
			return m, nil

		case ",":
			if m.currentView == ViewStudio {
				m.currentView = ViewSettings
				m.settingsModel.SetStudio(m.studioModel.Session().GeneratorConfig())
				m.settingsModel, cmd = m.settingsModel.Update(m.sizeMsg())
				return m, cmd
			}
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true

		m.studioModel, _ = m.studioModel.Update(msg)
		m.settingsModel, _ = m.settingsModel.Update(msg)
		if m.detailsModel != nil {
			updated, _ := m.detailsModel.Update(msg)
			m.detailsModel = &updated
		}
		if m.contrastModel != nil {
			updated, _ := m.contrastModel.Update(msg)
			m.contrastModel = &updated
		}
		return m, nil
	}

	// Route messages to active view
	switch m.currentView {
	case ViewStudio:
		m.studioModel, cmd = m.studioModel.Update(msg)
		return m, cmd

	case ViewSettings:
		m.settingsModel, cmd = m.settingsModel.Update(msg)
		return m, cmd

	case ViewDetails:
		if m.detailsModel != nil {
			updated, cmd := m.detailsModel.Update(msg)
			m.detailsModel = &updated
			return m, cmd
		}

	case ViewContrast:
		if m.contrastModel != nil {
			updated, cmd := m.contrastModel.Update(msg)
			m.contrastModel = &updated
			return m, cmd
		}
	}

	return m, nil
}

func (m *AppModel) goHome() {
	m.currentView = ViewStudio
	m.detailsModel = nil
	m.contrastModel = nil
}

func (m AppModel) sizeMsg() tea.WindowSizeMsg {
	return tea.WindowSizeMsg{Width: m.width, Height: m.height}
}

// View renders the current view
func (m AppModel) View() string {
	if !m.ready {
		return "Initializing Iroai..."
	}

	var content string

	// Render the appropriate view based on currentView
	switch m.currentView {
	case ViewDetails:
		if m.detailsModel != nil {
			content = m.detailsModel.View()
		}
	case ViewContrast:
		if m.contrastModel != nil {
			content = m.contrastModel.View()
		}
	case ViewSettings:
		content = m.settingsModel.View()
	default:
		content = m.studioModel.View()
	}

	if m.notifications.HasErrors() {
		content = lipgloss.JoinVertical(lipgloss.Left, m.notifications.Render(m.width), content)
	}

	// Render status bar
	statusBar := m.renderStatusBar()

	// Combine content and status bar
	mainContent := lipgloss.NewStyle().
		Width(m.width).
		MaxHeight(m.height - lipgloss.Height(statusBar)).
		Render(content)

	return lipgloss.JoinVertical(lipgloss.Left, mainContent, statusBar)
}

// renderStatusBar renders the bottom status bar
func (m AppModel) renderStatusBar() string {
	s := m.studioModel.Session()
	viewName := statusViewStyle.Render(string(m.currentView))
	colors := fmt.Sprintf("%d colors", len(s.Base))
	harmony := fmt.Sprintf("harmony: %s", s.Harmony)
	preview := fmt.Sprintf("preview: %s", m.studioModel.Preview())

	return GetStatusBarText(viewName, colors, harmony, preview)
}

// CurrentView returns the active view
func (m AppModel) CurrentView() ViewType {
	return m.currentView
}

// Studio returns the palette studio model
func (m AppModel) Studio() studio.Model {
	return m.studioModel
}
