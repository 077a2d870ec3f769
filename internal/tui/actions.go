package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/diogo/agentdash/internal/dashboard"
)

// actionFunc runs one named action against the model
type actionFunc func(m Model) (tea.Model, tea.Cmd)

// newActionTable returns the dispatch table for every dashboard action
func newActionTable() map[dashboard.Action]actionFunc {
	return map[dashboard.Action]actionFunc{
		dashboard.ActionSend:          Model.send,
		dashboard.ActionInsertNewline: Model.insertNewline,
		dashboard.ActionClearInput:    Model.clearInput,
		dashboard.ActionClearChat:     Model.clearChat,
		dashboard.ActionRefresh:       Model.refresh,
		dashboard.ActionFocusNext:     Model.focusNext,
		dashboard.ActionCursorUp:      Model.cursorUp,
		dashboard.ActionCursorDown:    Model.cursorDown,
		dashboard.ActionViewFile:      Model.openFile,
		dashboard.ActionDeleteFile:    Model.requestDelete,
		dashboard.ActionConfirmDelete: Model.confirmDelete,
		dashboard.ActionCancelDelete:  Model.cancelDelete,
		dashboard.ActionCloseModal:    Model.closeModal,
		dashboard.ActionCopyFile:      Model.copyFile,
		dashboard.ActionDismissAlert:  Model.dismissAlert,
		dashboard.ActionQuit:          Model.quit,
	}
}

// send starts a chat exchange. Blank input or a pending reply is a no-op.
func (m Model) send() (tea.Model, tea.Cmd) {
	next, message, ok := m.chat.Begin(m.textarea.Value(), m.now())
	if !ok {
		return m, nil
	}

	m.chat = next
	m.textarea.Reset()
	m.textarea.Blur()
	m.animationFrame = 0
	m.updateViewport()
	m.viewport.GotoBottom()

	return m, tea.Batch(
		sendChat(m.client, message),
		m.spinner.Tick,
		animationTick(),
	)
}

// insertNewline breaks the input line; enter alone sends
func (m Model) insertNewline() (tea.Model, tea.Cmd) {
	if m.chat.Sending() {
		return m, nil
	}
	m.textarea.InsertString("\n")
	return m, nil
}

func (m Model) clearInput() (tea.Model, tea.Cmd) {
	m.textarea.Reset()
	return m, nil
}

func (m Model) clearChat() (tea.Model, tea.Cmd) {
	m.chat = m.chat.Reset()
	m.updateViewport()
	m.viewport.GotoTop()
	return m, nil
}

func (m Model) refresh() (tea.Model, tea.Cmd) {
	return m, tea.Batch(checkHealth(m.client), loadFiles(m.client))
}

// focusNext moves the keyboard focus between the input and the file panel
func (m Model) focusNext() (tea.Model, tea.Cmd) {
	if m.focus == focusChat {
		m.focus = focusFiles
		m.textarea.Blur()
		return m, nil
	}

	m.focus = focusChat
	if m.chat.Sending() {
		return m, nil
	}
	return m, m.textarea.Focus()
}

func (m Model) cursorUp() (tea.Model, tea.Cmd) {
	m.files = m.files.MoveUp()
	return m, nil
}

func (m Model) cursorDown() (tea.Model, tea.Cmd) {
	m.files = m.files.MoveDown()
	return m, nil
}

// openFile loads the selected file into the modal
func (m Model) openFile() (tea.Model, tea.Cmd) {
	file, ok := m.files.Selected()
	if !ok {
		return m, nil
	}
	return m, loadFile(m.client, file.Name)
}

// requestDelete asks for confirmation; nothing is sent until it is given
func (m Model) requestDelete() (tea.Model, tea.Cmd) {
	file, ok := m.files.Selected()
	if !ok {
		return m, nil
	}
	m.pending = m.pending.Request(file.Name)
	return m, nil
}

func (m Model) confirmDelete() (tea.Model, tea.Cmd) {
	pending, name, ok := m.pending.Confirm()
	m.pending = pending
	if !ok {
		return m, nil
	}
	return m, deleteFile(m.client, name)
}

func (m Model) cancelDelete() (tea.Model, tea.Cmd) {
	m.pending = m.pending.Cancel()
	return m, nil
}

func (m Model) closeModal() (tea.Model, tea.Cmd) {
	m.modal = m.modal.Close()
	m.notice = ""
	return m, nil
}

func (m Model) copyFile() (tea.Model, tea.Cmd) {
	file, ok := m.modal.File()
	if !ok {
		return m, nil
	}
	return m, copyText(m.writeClipboard, file.Content)
}

func (m Model) dismissAlert() (tea.Model, tea.Cmd) {
	m.alert = ""
	return m, nil
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	return m, tea.Quit
}
