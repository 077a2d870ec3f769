package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/diogo/agentdash/internal/dashboard"
	"github.com/diogo/agentdash/internal/models"
	"github.com/diogo/agentdash/internal/render"
)

// View renders the TUI
func (m Model) View() string {
	if !m.ready {
		return loadingStyle.Render("  Initializing...")
	}

	switch m.context() {
	case dashboard.ContextAlert:
		return m.place(m.renderAlert())
	case dashboard.ContextConfirm:
		return m.place(m.renderConfirm())
	case dashboard.ContextModal:
		return m.place(m.renderModal())
	}

	header := m.renderHeader()

	chatColumn := lipgloss.JoinVertical(
		lipgloss.Left,
		m.renderChat(),
		m.renderInput(),
	)
	body := lipgloss.JoinHorizontal(lipgloss.Top, chatColumn, m.renderFiles())

	return lipgloss.JoinVertical(lipgloss.Left, header, body, m.renderStatusBar())
}

// place centers an overlay on the screen
func (m Model) place(box string) string {
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}

// renderHeader renders the title, the server and the health indicator
func (m Model) renderHeader() string {
	status := m.renderHealth()

	left := lipgloss.JoinHorizontal(
		lipgloss.Center,
		titleStyle.Render("🤖 Agent Dashboard"),
		hintStyle.Render("  •  "),
		subtitleStyle.Render(m.client.BaseURL()),
	)

	inner := m.width - 6
	gap := inner - lipgloss.Width(left) - lipgloss.Width(status)
	if gap < 2 {
		gap = 2
	}

	return headerStyle.Width(m.width - 2).Render(left + strings.Repeat(" ", gap) + status)
}

// renderHealth renders the tri-state indicator
func (m Model) renderHealth() string {
	if !m.probed {
		return hintStyle.Render("○ Checking...")
	}
	switch m.health {
	case models.HealthConnected:
		return statusConnectedStyle.Render("● " + m.health.Label())
	case models.HealthNotReady:
		return statusNotReadyStyle.Render("● " + m.health.Label())
	default:
		return statusDisconnectedStyle.Render("● " + m.health.Label())
	}
}

// renderChat renders the transcript panel
func (m Model) renderChat() string {
	return messagesAreaStyle.
		Width(m.chatWidth() - 2).
		Height(m.viewport.Height).
		Render(m.viewport.View())
}

// renderInput renders the input panel, or the loading animation while a
// reply is pending
func (m Model) renderInput() string {
	var content string
	if m.chat.Sending() {
		content = lipgloss.JoinVertical(lipgloss.Left, "", m.renderLoadingAnimation())
	} else {
		content = lipgloss.JoinVertical(
			lipgloss.Left,
			inputLabelStyle.Render("You"),
			m.textarea.View(),
		)
	}
	return inputPanelStyle.Width(m.chatWidth() - 2).Render(content)
}

// renderLoadingAnimation renders a colorful animated loading indicator
func (m Model) renderLoadingAnimation() string {
	barChars := []string{"█", "█", "█", "█", "█", "█", "▓", "▒", "░"}
	frame := m.animationFrame

	barWidth := 16
	var bar strings.Builder
	for i := 0; i < barWidth; i++ {
		colorIdx := (i + frame) % len(gradientColors)
		charIdx := (i + frame/2) % len(barChars)
		style := lipgloss.NewStyle().Foreground(gradientColors[colorIdx])
		bar.WriteString(style.Render(barChars[charIdx]))
	}

	text := lipgloss.NewStyle().Foreground(colorText).Render(" Waiting for the agent ")
	return fmt.Sprintf("%s %s", bar.String(), text)
}

// updateViewport refreshes the transcript from the chat session
func (m *Model) updateViewport() {
	if !m.ready {
		return
	}

	view := dashboard.BuildTranscriptView(m.chat)
	bubbleWidth := m.viewport.Width - 6

	var content strings.Builder
	if view.Welcome {
		content.WriteString(m.renderWelcome(view))
		content.WriteString("\n")
	}

	for i, entry := range view.Entries {
		if i > 0 {
			content.WriteString("\n")
		}

		stamp := timeStyle.Render(" " + entry.Time)
		if entry.Sender == models.SenderUser {
			label := userLabelStyle.Render("⬤ "+entry.Label) + stamp
			bubble := userBubbleStyle.Width(bubbleWidth).Render(entry.Text)
			content.WriteString(label + "\n" + bubble)
		} else {
			label := assistantLabelStyle.Render("✦ "+entry.Label) + stamp
			rendered, err := render.MarkdownWithWidth(entry.Text, bubbleWidth-4)
			if err != nil {
				rendered = entry.Text
			}
			rendered = strings.TrimRight(rendered, "\n")
			bubble := assistantBubbleStyle.Width(bubbleWidth).Render(rendered)
			content.WriteString(label + "\n" + bubble)
		}
		content.WriteString("\n")
	}

	if view.Typing {
		content.WriteString("\n")
		content.WriteString(assistantLabelStyle.Render("✦ " + dashboard.AgentLabel))
		content.WriteString("\n")
		content.WriteString(typingStyle.Render(m.spinner.View() + " " + dashboard.TypingText))
		content.WriteString("\n")
	}

	m.viewport.SetContent(content.String())
}

// renderWelcome renders the welcome panel with the example prompts
func (m Model) renderWelcome(view dashboard.TranscriptView) string {
	lines := []string{
		welcomeTitleStyle.Render(dashboard.WelcomeTitle),
		dashboard.WelcomeIntro,
		"",
	}
	for _, example := range view.Examples {
		lines = append(lines, welcomeItemStyle.Render("  • "+example))
	}

	width := m.viewport.Width - 4
	if width < 20 {
		width = 20
	}
	return welcomeStyle.Width(width).Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

// renderFiles renders the file panel
func (m Model) renderFiles() string {
	view := dashboard.BuildFileListView(m.files, m.now())
	width := m.filesWidth() - 2
	height := m.bodyHeight() - 2
	inner := width - 2

	countLabel := "files"
	if view.Count == 1 {
		countLabel = "file"
	}
	lines := []string{
		filesTitleStyle.Render("📁 Files"),
		filesStatsStyle.Render(fmt.Sprintf("%d %s • %s", view.Count, countLabel, view.TotalSize)),
	}

	switch {
	case !m.files.Loaded():
		lines = append(lines, hintStyle.Render("Loading files..."))
	case view.Empty:
		empty := lipgloss.JoinVertical(
			lipgloss.Center,
			dashboard.EmptyFilesIcon,
			emptyStateTitleStyle.Render(dashboard.EmptyFilesTitle),
			dashboard.EmptyFilesHint,
		)
		lines = append(lines, emptyStateStyle.Width(inner).Render(empty))
	default:
		lines = append(lines, m.renderFileRows(view, inner, height-len(lines))...)
	}

	style := filesPanelStyle
	if m.focus == focusFiles {
		style = filesPanelFocusStyle
	}
	return style.Width(width).Height(height).Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

// renderFileRows renders the window of rows around the cursor. Each row
// takes two lines: name, then size and age.
func (m Model) renderFileRows(view dashboard.FileListView, width, height int) []string {
	visible := height / 2
	if visible < 1 {
		visible = 1
	}

	start := 0
	if cursor := m.files.Cursor(); cursor >= visible {
		start = cursor - visible + 1
	}
	end := start + visible
	if end > len(view.Rows) {
		end = len(view.Rows)
	}

	var lines []string
	for _, row := range view.Rows[start:end] {
		name := truncate(row.Name, width-6)
		if row.Selected && m.focus == focusFiles {
			lines = append(lines, fileSelectedStyle.Render("› "+row.Icon+" "+name))
		} else {
			lines = append(lines, fileNameStyle.Render("  "+row.Icon+" "+name))
		}
		lines = append(lines, fileMetaStyle.Render(row.Meta()))
	}
	return lines
}

// renderStatusBar renders the bottom status bar with shortcuts
func (m Model) renderStatusBar() string {
	shortcuts := []struct {
		key  string
		desc string
	}{
		{"Enter", "Send"},
		{"^J", "Newline"},
		{"Esc", "Clear"},
		{"Tab", "Files"},
		{"^L", "Clear chat"},
		{"^R", "Refresh"},
		{"^C", "Quit"},
	}
	if m.focus == focusFiles {
		shortcuts = []struct {
			key  string
			desc string
		}{
			{"↑↓", "Select"},
			{"Enter/v", "View"},
			{"d", "Delete"},
			{"Tab", "Chat"},
			{"^R", "Refresh"},
			{"^C", "Quit"},
		}
	}

	var items []string
	for _, s := range shortcuts {
		items = append(items, statusKeyStyle.Render(s.key)+statusDescStyle.Render(" "+s.desc))
	}

	return statusBarStyle.Width(m.width).Align(lipgloss.Center).Render(strings.Join(items, "  │  "))
}

// renderModal renders the file viewer
func (m Model) renderModal() string {
	file, _ := m.modal.File()
	w, _ := m.modalSize()

	footer := hintStyle.Render("Esc/q close  •  y copy  •  ↑↓ scroll")
	if m.notice != "" {
		footer = noticeStyle.Render(m.notice) + hintStyle.Render("  •  Esc close")
	}

	content := lipgloss.JoinVertical(
		lipgloss.Left,
		modalTitleStyle.Render(render.FileIcon(file.Filename)+" "+truncate(file.Filename, w-4)),
		m.modalView.View(),
		"",
		footer,
	)
	return modalStyle.Width(w + 2).Render(content)
}

// wrapContent soft-wraps file content to the modal width, breaking words
// longer than a line.
func wrapContent(content string, width int) string {
	if width <= 0 {
		return content
	}
	return lipgloss.NewStyle().Width(width).Render(content)
}

// modalBounds returns the screen rectangle of the centered modal
func (m Model) modalBounds() (x, y, w, h int) {
	box := m.renderModal()
	w = lipgloss.Width(box)
	h = lipgloss.Height(box)
	x = (m.width - w) / 2
	y = (m.height - h) / 2
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}
	return x, y, w, h
}

// renderConfirm renders the delete confirmation
func (m Model) renderConfirm() string {
	keys := dialogKeyStyle.Render("[y]") + " Yes    " + dialogKeyStyle.Render("[n]") + " No"
	return dialogStyle.Render(lipgloss.JoinVertical(lipgloss.Center, m.pending.Prompt(), "", keys))
}

// renderAlert renders a blocking error
func (m Model) renderAlert() string {
	ok := dialogKeyStyle.Render("[Enter]") + " OK"
	return alertStyle.Render(lipgloss.JoinVertical(lipgloss.Center, "⚠ "+m.alert, "", ok))
}

// truncate shortens s to at most n runes, marking the cut with an ellipsis
func truncate(s string, n int) string {
	runes := []rune(s)
	if n <= 1 || len(runes) <= n {
		return s
	}
	return string(runes[:n-1]) + "…"
}
