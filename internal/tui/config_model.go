package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/diogo/agentdash/internal/config"
	"github.com/diogo/agentdash/internal/render"
)

// configView represents the current view in the config menu
type configView int

const (
	viewMain configView = iota
	viewMarkdownSelect
	viewTUIThemeSelect
)

// settingKind says how a menu entry is edited
type settingKind int

const (
	settingToggle settingKind = iota // flips a bool
	settingCycle                     // steps through preset values
	settingSelect                    // opens a sub-menu
	settingExit
)

// setting is one row of the main menu
type setting struct {
	label string
	key   string // config key passed to config.Set
	kind  settingKind
	steps []string
	view  configView
}

// menu is the main menu, in display order
var menu = []setting{
	{label: "Copy to Clipboard", key: "copy_to_clipboard", kind: settingToggle},
	{label: "File Poll Interval", key: "file_poll_interval", kind: settingCycle, steps: []string{"5", "10", "30", "60"}},
	{label: "Health Interval", key: "health_interval", kind: settingCycle, steps: []string{"0", "15", "30", "60"}},
	{label: "Request Timeout", key: "request_timeout", kind: settingCycle, steps: []string{"0", "30", "60", "120"}},
	{label: "Markdown Theme", key: "markdown.style", kind: settingSelect, view: viewMarkdownSelect},
	{label: "TUI Theme", key: "tui_theme", kind: settingSelect, view: viewTUIThemeSelect},
	{label: "Exit", kind: settingExit},
}

// feedbackClearMsg is sent to clear feedback messages
type feedbackClearMsg struct{}

// ConfigModel is the interactive settings menu
type ConfigModel struct {
	config     config.Config
	configPath string

	// Navigation
	view        configView
	cursor      int
	styleCursor int
	themeCursor int

	// Feedback
	feedback        string
	feedbackTimeout time.Duration

	// Dimensions
	width  int
	height int
	ready  bool
}

// NewConfigModel creates a settings menu editing the file at configPath
func NewConfigModel(cfg config.Config, configPath string) ConfigModel {
	if cfg.TUITheme != "" && render.SetTUITheme(cfg.TUITheme) {
		UpdateTheme()
	}

	return ConfigModel{
		config:          cfg,
		configPath:      configPath,
		view:            viewMain,
		styleCursor:     indexOf(render.MarkdownStyles(), cfg.Markdown.Style),
		themeCursor:     indexOf(render.TUIThemeNames(), cfg.TUITheme),
		feedbackTimeout: 2 * time.Second,
	}
}

func indexOf(list []string, value string) int {
	for i, v := range list {
		if v == value {
			return i
		}
	}
	return 0
}

// Init initializes the model
func (m ConfigModel) Init() tea.Cmd {
	return nil
}

// clearFeedback returns a command that clears the feedback message after a delay
func clearFeedback(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return feedbackClearMsg{}
	})
}

// Update handles messages and updates the model
func (m ConfigModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true

	case feedbackClearMsg:
		m.feedback = ""

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit

		case "esc", "q":
			if m.view != viewMain {
				m.view = viewMain
				return m, nil
			}
			return m, tea.Quit

		case "up", "k":
			m.move(-1)

		case "down", "j":
			m.move(1)

		case "enter", " ":
			return m.handleSelect()
		}
	}

	return m, nil
}

// move steps the cursor of the current view, wrapping around
func (m *ConfigModel) move(delta int) {
	wrap := func(i, n int) int { return ((i+delta)%n + n) % n }

	switch m.view {
	case viewMain:
		m.cursor = wrap(m.cursor, len(menu))
	case viewMarkdownSelect:
		m.styleCursor = wrap(m.styleCursor, len(render.MarkdownStyles()))
	case viewTUIThemeSelect:
		m.themeCursor = wrap(m.themeCursor, len(render.TUIThemeNames()))
	}
}

// handleSelect handles menu item selection
func (m ConfigModel) handleSelect() (tea.Model, tea.Cmd) {
	switch m.view {
	case viewMarkdownSelect:
		m.view = viewMain
		return m.apply("markdown.style", render.MarkdownStyles()[m.styleCursor])

	case viewTUIThemeSelect:
		m.view = viewMain
		name := render.TUIThemeNames()[m.themeCursor]
		render.SetTUITheme(name)
		UpdateTheme()
		return m.apply("tui_theme", name)
	}

	item := menu[m.cursor]
	switch item.kind {
	case settingToggle:
		return m.apply(item.key, strconv.FormatBool(!m.boolValue(item.key)))
	case settingCycle:
		return m.apply(item.key, nextStep(item.steps, m.value(item.key)))
	case settingSelect:
		m.view = item.view
		return m, nil
	case settingExit:
		return m, tea.Quit
	}
	return m, nil
}

// apply sets one key and persists the whole config
func (m ConfigModel) apply(key, value string) (tea.Model, tea.Cmd) {
	if err := config.Set(&m.config, key, value); err != nil {
		m.feedback = fmt.Sprintf("Error: %v", err)
		return m, clearFeedback(m.feedbackTimeout)
	}
	if err := config.SaveConfigTo(m.configPath, m.config); err != nil {
		m.feedback = fmt.Sprintf("Error: %v", err)
	} else {
		m.feedback = fmt.Sprintf("%s set to %s", key, m.value(key))
	}
	return m, clearFeedback(m.feedbackTimeout)
}

// nextStep returns the preset following current, or the first one
func nextStep(steps []string, current string) string {
	for i, s := range steps {
		if s == current {
			return steps[(i+1)%len(steps)]
		}
	}
	return steps[0]
}

// value returns the displayed value of a config key
func (m ConfigModel) value(key string) string {
	switch key {
	case "copy_to_clipboard":
		return strconv.FormatBool(m.config.CopyToClipboard)
	case "file_poll_interval":
		return strconv.Itoa(m.config.FilePollInterval)
	case "health_interval":
		return strconv.Itoa(m.config.HealthInterval)
	case "request_timeout":
		return strconv.Itoa(m.config.RequestTimeout)
	case "markdown.style":
		return m.config.Markdown.Style
	case "tui_theme":
		return m.config.TUITheme
	}
	return ""
}

func (m ConfigModel) boolValue(key string) bool {
	return m.value(key) == "true"
}

// View renders the TUI
func (m ConfigModel) View() string {
	if !m.ready {
		return loadingStyle.Render("  Initializing...")
	}

	contentWidth := m.width - 4
	if contentWidth < 40 {
		contentWidth = 40
	}

	var sections []string
	sections = append(sections, configHeaderStyle.Width(contentWidth).Render(configTitleStyle.Render("✦ Configuration")))

	server := lipgloss.JoinVertical(lipgloss.Left,
		configSectionTitleStyle.Render("🔌 Server"),
		fmt.Sprintf("   URL:     %s", configValueStyle.Render(m.config.ServerURL)),
		fmt.Sprintf("   Config:  %s", configPathStyle.Render(m.configPath)),
		fmt.Sprintf("   Log:     %s", configPathStyle.Render(m.config.LogFile)),
	)
	sections = append(sections, configPanelStyle.Width(contentWidth).Render(server))

	var settings string
	switch m.view {
	case viewMain:
		settings = m.renderMainMenu()
	case viewMarkdownSelect:
		settings = m.renderChoice("🎨 Select Markdown Theme", render.MarkdownStyles(), m.styleCursor, m.config.Markdown.Style)
	case viewTUIThemeSelect:
		settings = m.renderChoice("🎨 Select TUI Theme", render.TUIThemeNames(), m.themeCursor, m.config.TUITheme)
	}
	sections = append(sections, configPanelStyle.Width(contentWidth).Render(settings))

	if m.feedback != "" {
		sections = append(sections, configFeedbackStyle.Render("✓ "+m.feedback))
	}

	sections = append(sections, m.renderStatusBar(contentWidth))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderMainMenu renders the main settings menu
func (m ConfigModel) renderMainMenu() string {
	lines := []string{configSectionTitleStyle.Render("⚙ Settings"), ""}

	for i, item := range menu {
		cursor := "  "
		style := configMenuItemStyle
		if m.cursor == i {
			cursor = configCursorStyle.Render("▸ ")
			style = configMenuSelectedStyle
		}

		if item.kind == settingExit {
			lines = append(lines, "", cursor+style.Render(item.label))
			continue
		}

		var value string
		switch item.kind {
		case settingToggle:
			value = m.renderBoolValue(m.boolValue(item.key))
		case settingCycle:
			value = configValueStyle.Render(m.value(item.key) + "s")
		default:
			value = configValueStyle.Render(m.value(item.key))
		}

		padding := 22 - len(item.label)
		if padding < 1 {
			padding = 1
		}
		lines = append(lines, cursor+style.Render(item.label)+strings.Repeat(" ", padding)+value)
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// renderChoice renders a selection sub-menu
func (m ConfigModel) renderChoice(title string, options []string, cursor int, current string) string {
	lines := []string{configSectionTitleStyle.Render(title), ""}

	for i, option := range options {
		prefix := "  "
		style := configMenuItemStyle
		if cursor == i {
			prefix = configCursorStyle.Render("▸ ")
			style = configMenuSelectedStyle
		}

		marker := ""
		if option == current {
			marker = configStatusOkStyle.Render(" (current)")
		}
		lines = append(lines, prefix+style.Render(option)+marker)
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// renderBoolValue renders a boolean value with appropriate styling
func (m ConfigModel) renderBoolValue(value bool) string {
	if value {
		return configEnabledStyle.Render("enabled")
	}
	return configDisabledStyle.Render("disabled")
}

// renderStatusBar renders the bottom status bar
func (m ConfigModel) renderStatusBar(width int) string {
	back := "Exit"
	if m.view != viewMain {
		back = "Back"
	}

	items := []string{
		statusKeyStyle.Render("↑↓") + statusDescStyle.Render(" Navigate"),
		statusKeyStyle.Render("Enter") + statusDescStyle.Render(" Select"),
		statusKeyStyle.Render("Esc") + statusDescStyle.Render(" "+back),
	}

	return configStatusBarStyle.Width(width).Align(lipgloss.Center).Render(strings.Join(items, "  │  "))
}

// RunConfig starts the settings menu
func RunConfig(cfg config.Config, configPath string) error {
	p := tea.NewProgram(
		NewConfigModel(cfg, configPath),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
