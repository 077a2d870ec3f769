package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/diogo/agentdash/internal/config"
	"github.com/diogo/agentdash/internal/render"
)

func newTestConfigModel(t *testing.T) (ConfigModel, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	m := NewConfigModel(config.DefaultConfig(), path)
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return updated.(ConfigModel), path
}

func keyPress(key string) tea.KeyMsg {
	switch key {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case "ctrl+l":
		return tea.KeyMsg{Type: tea.KeyCtrlL}
	case "ctrl+r":
		return tea.KeyMsg{Type: tea.KeyCtrlR}
	case "ctrl+j":
		return tea.KeyMsg{Type: tea.KeyCtrlJ}
	case "alt+enter":
		return tea.KeyMsg{Type: tea.KeyEnter, Alt: true}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
	}
}

func pressConfig(t *testing.T, m ConfigModel, keys ...string) (ConfigModel, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, k := range keys {
		var updated tea.Model
		updated, cmd = m.Update(keyPress(k))
		m = updated.(ConfigModel)
	}
	return m, cmd
}

func TestNewConfigModel(t *testing.T) {
	m, _ := newTestConfigModel(t)

	if m.view != viewMain || m.cursor != 0 {
		t.Errorf("view = %v, cursor = %d", m.view, m.cursor)
	}
	if m.feedbackTimeout != 2*time.Second {
		t.Errorf("feedbackTimeout = %v, want 2s", m.feedbackTimeout)
	}
	if m.Init() != nil {
		t.Error("Init should return nil command")
	}
}

func TestConfigModel_ToggleClipboardPersists(t *testing.T) {
	m, path := newTestConfigModel(t)

	m, cmd := pressConfig(t, m, "enter")
	if cmd == nil {
		t.Error("expected a feedback clear command")
	}
	if !m.config.CopyToClipboard {
		t.Error("copy_to_clipboard not toggled")
	}

	saved, err := config.LoadConfigFrom(path)
	if err != nil {
		t.Fatalf("LoadConfigFrom() error: %v", err)
	}
	if !saved.CopyToClipboard {
		t.Error("toggle was not saved")
	}
	if !strings.Contains(m.feedback, "copy_to_clipboard") {
		t.Errorf("feedback = %q", m.feedback)
	}
}

func TestConfigModel_CycleValues(t *testing.T) {
	m, _ := newTestConfigModel(t)

	// File poll interval: 10 -> 30
	m, _ = pressConfig(t, m, "down", "enter")
	if m.config.FilePollInterval != 30 {
		t.Errorf("FilePollInterval = %d, want 30", m.config.FilePollInterval)
	}

	// Request timeout: 0 -> 30
	m, _ = pressConfig(t, m, "down", "down", "enter")
	if m.config.RequestTimeout != 30 {
		t.Errorf("RequestTimeout = %d, want 30", m.config.RequestTimeout)
	}
}

func TestNextStep(t *testing.T) {
	steps := []string{"5", "10", "30"}
	tests := map[string]string{"5": "10", "30": "5", "7": "5"}
	for current, want := range tests {
		if got := nextStep(steps, current); got != want {
			t.Errorf("nextStep(%s) = %s, want %s", current, got, want)
		}
	}
}

func TestConfigModel_SelectTUITheme(t *testing.T) {
	m, _ := newTestConfigModel(t)
	defer func() {
		render.SetTUITheme("tokyonight")
		UpdateTheme()
	}()

	// Cursor to "TUI Theme" (index 5)
	for i := 0; i < 5; i++ {
		m, _ = pressConfig(t, m, "down")
	}
	m, _ = pressConfig(t, m, "enter")
	if m.view != viewTUIThemeSelect {
		t.Fatalf("view = %v, want theme select", m.view)
	}

	m, _ = pressConfig(t, m, "down", "enter")
	if m.view != viewMain {
		t.Errorf("view = %v, want main after selection", m.view)
	}
	if m.config.TUITheme != "catppuccin" {
		t.Errorf("TUITheme = %s, want catppuccin", m.config.TUITheme)
	}
}

func TestConfigModel_EscNavigation(t *testing.T) {
	m, _ := newTestConfigModel(t)

	m.view = viewMarkdownSelect
	m, cmd := pressConfig(t, m, "esc")
	if m.view != viewMain || cmd != nil {
		t.Errorf("esc in sub-menu should go back, view = %v", m.view)
	}

	_, cmd = pressConfig(t, m, "esc")
	if cmd == nil {
		t.Fatal("esc in main view should quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
}

func TestConfigModel_CursorWraps(t *testing.T) {
	m, _ := newTestConfigModel(t)

	m, _ = pressConfig(t, m, "up")
	if m.cursor != len(menu)-1 {
		t.Errorf("cursor = %d, want %d", m.cursor, len(menu)-1)
	}
	m, _ = pressConfig(t, m, "down")
	if m.cursor != 0 {
		t.Errorf("cursor = %d, want 0", m.cursor)
	}
}

func TestConfigModel_View(t *testing.T) {
	m, _ := newTestConfigModel(t)

	view := m.View()
	for _, want := range []string{"Configuration", "http://localhost:8000", "Config:", "Copy to Clipboard", "Request Timeout"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}

	var notReady ConfigModel
	if !strings.Contains(notReady.View(), "Initializing") {
		t.Error("view before sizing should show Initializing")
	}
}
