package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/diogo/agentdash/internal/api"
	"github.com/diogo/agentdash/internal/models"
)

// Message types for the TUI
type (
	healthMsg struct {
		report *models.HealthReport
		err    error
	}
	filesMsg struct {
		files []models.FileSummary
		err   error
	}
	chatReplyMsg struct {
		reply *models.ChatReply
		err   error
	}
	fileContentMsg struct {
		name    string
		content *models.FileContent
		err     error
	}
	fileDeletedMsg struct {
		name   string
		result *models.DeleteResult
		err    error
	}
	clipboardMsg struct {
		err error
	}

	// Timers
	healthTickMsg    time.Time
	filePollTickMsg  time.Time
	refreshFilesMsg  struct{}
	animationTickMsg time.Time
)

// checkHealth probes the server once
func checkHealth(client api.ClientInterface) tea.Cmd {
	return func() tea.Msg {
		report, err := client.Health(context.Background())
		return healthMsg{report: report, err: err}
	}
}

// loadFiles polls the file listing once
func loadFiles(client api.ClientInterface) tea.Cmd {
	return func() tea.Msg {
		files, err := client.ListFiles(context.Background())
		return filesMsg{files: files, err: err}
	}
}

// sendChat posts one message to the agent
func sendChat(client api.ClientInterface, message string) tea.Cmd {
	return func() tea.Msg {
		reply, err := client.Chat(context.Background(), message)
		return chatReplyMsg{reply: reply, err: err}
	}
}

// loadFile fetches one file for the modal
func loadFile(client api.ClientInterface, name string) tea.Cmd {
	return func() tea.Msg {
		content, err := client.GetFile(context.Background(), name)
		return fileContentMsg{name: name, content: content, err: err}
	}
}

// deleteFile removes one file
func deleteFile(client api.ClientInterface, name string) tea.Cmd {
	return func() tea.Msg {
		result, err := client.DeleteFile(context.Background(), name)
		return fileDeletedMsg{name: name, result: result, err: err}
	}
}

// copyText writes text to the clipboard
func copyText(write func(string) error, text string) tea.Cmd {
	return func() tea.Msg {
		return clipboardMsg{err: write(text)}
	}
}

// schedulePoll fires the next file poll
func schedulePoll(every time.Duration) tea.Cmd {
	return tea.Tick(every, func(t time.Time) tea.Msg {
		return filePollTickMsg(t)
	})
}

// scheduleHealth fires the next health probe
func scheduleHealth(every time.Duration) tea.Cmd {
	if every <= 0 {
		return nil
	}
	return tea.Tick(every, func(t time.Time) tea.Msg {
		return healthTickMsg(t)
	})
}

// scheduleRefresh fires the one-shot file refresh after a chat exchange
func scheduleRefresh(delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return refreshFilesMsg{}
	})
}

// animationTick returns a command that sends animation tick messages
func animationTick() tea.Cmd {
	return tea.Tick(time.Millisecond*80, func(t time.Time) tea.Msg {
		return animationTickMsg(t)
	})
}
