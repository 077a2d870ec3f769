package tui

import (
	"io"
	"log"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/diogo/agentdash/internal/api"
	"github.com/diogo/agentdash/internal/config"
	"github.com/diogo/agentdash/internal/dashboard"
	"github.com/diogo/agentdash/internal/models"
	"github.com/diogo/agentdash/internal/render"
)

// focus is the panel receiving keys when no overlay is shown
type focus int

const (
	focusChat focus = iota
	focusFiles
)

// Model is the dashboard TUI: chat on the left, files on the right and the
// health indicator in the header. Requests run as tea.Cmds and their
// results come back as messages, so Update is the only place state changes.
type Model struct {
	client api.ClientInterface
	cfg    config.Config
	logger *log.Logger

	keys    dashboard.KeyMap
	actions map[dashboard.Action]actionFunc

	now            func() time.Time
	writeClipboard func(string) error

	// UI components
	viewport  viewport.Model
	modalView viewport.Model
	textarea  textarea.Model
	spinner   spinner.Model

	// State
	chat    dashboard.ChatSession
	files   dashboard.FileRegistry
	modal   dashboard.Modal
	pending dashboard.PendingDelete
	health  models.HealthStatus
	probed  bool
	alert   string
	notice  string
	focus   focus

	ready          bool
	animationFrame int

	// Dimensions
	width  int
	height int
}

// NewModel creates the dashboard model
func NewModel(client api.ClientInterface, cfg config.Config, logger *log.Logger) Model {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}

	ta := textarea.New()
	ta.Placeholder = "Ask the agent to create, read or list files..."
	ta.CharLimit = 4000
	ta.ShowLineNumbers = false
	ta.SetHeight(2)
	ta.Focus()

	ta.FocusedStyle.CursorLine = lipgloss.NewStyle()
	ta.FocusedStyle.Base = lipgloss.NewStyle().Foreground(colorText)
	ta.FocusedStyle.Placeholder = lipgloss.NewStyle().Foreground(colorTextDim)
	ta.BlurredStyle = ta.FocusedStyle

	s := spinner.New()
	s.Spinner = spinner.Points
	s.Style = loadingStyle

	return Model{
		client:         client,
		cfg:            cfg,
		logger:         logger,
		keys:           dashboard.DefaultKeyMap(),
		actions:        newActionTable(),
		now:            time.Now,
		writeClipboard: clipboard.WriteAll,
		textarea:       ta,
		spinner:        s,
		chat:           dashboard.NewChatSession(),
		health:         models.HealthDisconnected,
		focus:          focusChat,
	}
}

// Init probes health and loads the files, then starts the timers
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		textarea.Blink,
		checkHealth(m.client),
		loadFiles(m.client),
		schedulePoll(m.cfg.FilePollEvery()),
	}
	if every := m.cfg.HealthEvery(); every > 0 {
		cmds = append(cmds, scheduleHealth(every))
	}
	return tea.Batch(cmds...)
}

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		m.updateViewport()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case healthMsg:
		m.health = dashboard.ClassifyHealth(msg.report, msg.err)
		m.probed = true
		if msg.err != nil {
			m.logger.Printf("health probe failed: %v", msg.err)
		}
		return m, nil

	case healthTickMsg:
		return m, tea.Batch(checkHealth(m.client), scheduleHealth(m.cfg.HealthEvery()))

	case filePollTickMsg:
		return m, tea.Batch(loadFiles(m.client), schedulePoll(m.cfg.FilePollEvery()))

	case refreshFilesMsg:
		return m, loadFiles(m.client)

	case filesMsg:
		if msg.err != nil {
			// Keep the previous listing
			m.logger.Printf("file poll failed: %v", msg.err)
			return m, nil
		}
		m.files = m.files.Replace(msg.files)
		return m, nil

	case chatReplyMsg:
		now := m.now()
		if msg.err != nil {
			m.logger.Printf("chat failed: %v", msg.err)
			m.chat = m.chat.Fail(msg.err, now)
		} else {
			m.chat = m.chat.Complete(msg.reply.Response, now)
			cmds = append(cmds, scheduleRefresh(m.cfg.RefreshDelay()))
		}
		m.updateViewport()
		m.viewport.GotoBottom()
		if m.focus == focusChat {
			m.textarea.Focus()
			cmds = append(cmds, textarea.Blink)
		}
		return m, tea.Batch(cmds...)

	case fileContentMsg:
		if msg.err != nil {
			m.logger.Printf("view %s failed: %v", msg.name, msg.err)
			m.alert = dashboard.ViewFailureText(msg.err)
			return m, nil
		}
		m.modal = m.modal.Open(*msg.content)
		m.notice = ""
		m.resizeModal()
		m.modalView.GotoTop()
		return m, nil

	case fileDeletedMsg:
		if msg.err != nil {
			m.logger.Printf("delete %s failed: %v", msg.name, msg.err)
			m.alert = dashboard.DeleteFailureText(msg.err)
			return m, nil
		}
		m.logger.Printf("deleted %s", msg.name)
		return m, loadFiles(m.client)

	case clipboardMsg:
		if msg.err != nil {
			m.notice = "Failed to copy: " + msg.err.Error()
		} else {
			m.notice = "Copied to clipboard"
		}
		return m, nil

	case spinner.TickMsg:
		if m.chat.Sending() {
			m.spinner, cmd = m.spinner.Update(msg)
			m.updateViewport()
			return m, cmd
		}
		return m, nil

	case animationTickMsg:
		if m.chat.Sending() {
			m.animationFrame++
			return m, animationTick()
		}
		return m, nil
	}

	// Cursor blink and other component messages
	if !m.chat.Sending() {
		m.textarea, cmd = m.textarea.Update(msg)
		cmds = append(cmds, cmd)
	}
	return m, tea.Batch(cmds...)
}

// context returns which part of the dashboard receives keys
func (m Model) context() dashboard.Context {
	switch {
	case m.alert != "":
		return dashboard.ContextAlert
	case m.pending.Active():
		return dashboard.ContextConfirm
	case m.modal.IsOpen():
		return dashboard.ContextModal
	case m.focus == focusFiles:
		return dashboard.ContextFiles
	default:
		return dashboard.ContextChat
	}
}

// handleKey resolves a key to an action and dispatches it. Unbound keys go
// to the modal's viewport or to the input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	ctx := m.context()
	if action, ok := m.keys.Resolve(ctx, msg.String()); ok {
		if handler, ok := m.actions[action]; ok {
			return handler(m)
		}
	}

	var cmd tea.Cmd
	switch {
	case ctx == dashboard.ContextModal:
		m.modalView, cmd = m.modalView.Update(msg)
	case ctx.Blocking():
	case ctx == dashboard.ContextChat && !m.chat.Sending():
		m.textarea, cmd = m.textarea.Update(msg)
	case ctx == dashboard.ContextChat:
		// Transcript scrolling while a reply is pending
		m.viewport, cmd = m.viewport.Update(msg)
	}
	return m, cmd
}

// handleMouse scrolls the panels and closes the modal on a click outside it
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	if m.modal.IsOpen() && !m.pending.Active() && m.alert == "" {
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			x, y, w, h := m.modalBounds()
			if msg.X < x || msg.X >= x+w || msg.Y < y || msg.Y >= y+h {
				m.modal = m.modal.Close()
				m.notice = ""
				return m, nil
			}
		}
		m.modalView, cmd = m.modalView.Update(msg)
		return m, cmd
	}

	if m.context().Blocking() {
		return m, nil
	}
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// Layout constants
const (
	headerHeight = 4 // Header panel with border and margin
	inputHeight  = 6 // Input panel with border and margin
	statusHeight = 2 // Status bar with margin
	minFilesW    = 32
)

// chatWidth returns the outer width of the chat column
func (m Model) chatWidth() int {
	w := m.width * 2 / 3
	if m.width-w < minFilesW {
		w = m.width - minFilesW
	}
	if w < 20 {
		w = 20
	}
	return w
}

// filesWidth returns the outer width of the file panel
func (m Model) filesWidth() int {
	w := m.width - m.chatWidth()
	if w < minFilesW {
		w = minFilesW
	}
	return w
}

// bodyHeight returns the height shared by the chat column and the file panel
func (m Model) bodyHeight() int {
	h := m.height - headerHeight - statusHeight
	if h < inputHeight+7 {
		h = inputHeight + 7
	}
	return h
}

func (m *Model) resize() {
	contentWidth := m.chatWidth() - 4
	vpHeight := m.bodyHeight() - inputHeight - 4
	if vpHeight < 3 {
		vpHeight = 3
	}

	if !m.ready {
		m.viewport = viewport.New(contentWidth, vpHeight)
		m.ready = true
	} else {
		m.viewport.Width = contentWidth
		m.viewport.Height = vpHeight
	}
	m.textarea.SetWidth(contentWidth - 4)
	m.resizeModal()
}

func (m *Model) resizeModal() {
	w, h := m.modalSize()
	if m.modalView.Width == 0 && m.modalView.Height == 0 {
		m.modalView = viewport.New(w, h)
	}
	m.modalView.Width = w
	m.modalView.Height = h
	if file, ok := m.modal.File(); ok {
		m.modalView.SetContent(wrapContent(file.Content, w))
	}
}

// modalSize returns the content size of the file modal
func (m Model) modalSize() (int, int) {
	w := m.width - 12
	if w > 100 {
		w = 100
	}
	if w < 20 {
		w = 20
	}
	h := m.height - 10
	if h < 3 {
		h = 3
	}
	return w, h
}

// RunDashboard starts the dashboard TUI
func RunDashboard(client api.ClientInterface, cfg config.Config, logger *log.Logger) error {
	if cfg.TUITheme != "" && render.SetTUITheme(cfg.TUITheme) {
		UpdateTheme()
	}
	render.SetDefaultOptions(render.OptionsFromConfig(cfg))

	m := NewModel(client, cfg, logger)

	p := tea.NewProgram(
		m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}
