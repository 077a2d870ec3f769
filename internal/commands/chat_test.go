package commands

import (
	"errors"
	"strings"
	"testing"

	apierrors "github.com/diogo/agentdash/internal/errors"
	"github.com/diogo/agentdash/internal/models"
)

func TestChat_Argument(t *testing.T) {
	env := newTestEnv(t)
	env.client.ChatVal = &models.ChatReply{Success: true, Response: "Created notes.txt"}

	if err := env.run("chat", "  create notes.txt  "); err != nil {
		t.Fatalf("chat error = %v", err)
	}
	if env.client.LastMessage != "create notes.txt" {
		t.Errorf("sent %q, want trimmed message", env.client.LastMessage)
	}
	if env.stdout.String() != "Created notes.txt\n" {
		t.Errorf("stdout = %q", env.stdout.String())
	}
}

func TestChat_Stdin(t *testing.T) {
	env := newTestEnv(t)
	env.client.ChatVal = &models.ChatReply{Success: true, Response: "ok"}
	env.deps.StdinIsTerminal = func() bool { return false }
	env.deps.Stdin = strings.NewReader("What files do I have?\n")

	if err := env.run("chat"); err != nil {
		t.Fatalf("chat error = %v", err)
	}
	if env.client.LastMessage != "What files do I have?" {
		t.Errorf("sent %q", env.client.LastMessage)
	}
}

func TestChat_EmptyMessage(t *testing.T) {
	tests := []struct {
		name  string
		args  []string
		stdin string
		piped bool
	}{
		{"no args on a terminal", []string{"chat"}, "", false},
		{"blank argument", []string{"chat", "   "}, "", false},
		{"blank stdin", []string{"chat"}, "\n\n", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			env.deps.StdinIsTerminal = func() bool { return !tt.piped }
			env.deps.Stdin = strings.NewReader(tt.stdin)

			if err := env.run(tt.args...); err == nil {
				t.Fatal("expected an error for an empty message")
			}
			_, chat, _, _, _ := env.client.Calls()
			if chat != 0 {
				t.Errorf("chat calls = %d, want 0", chat)
			}
		})
	}
}

func TestChat_Failure(t *testing.T) {
	env := newTestEnv(t)
	env.client.ChatErr = apierrors.NewNetworkError("/api/chat", errors.New("connection refused"))

	err := env.run("chat", "hello")
	if !apierrors.IsNetworkError(err) {
		t.Fatalf("err = %v, want NetworkError", err)
	}
	if env.stdout.Len() != 0 {
		t.Errorf("nothing should be printed on failure, got %q", env.stdout.String())
	}
}

func TestChat_Copy(t *testing.T) {
	env := newTestEnv(t)
	env.client.ChatVal = &models.ChatReply{Success: true, Response: "copied text"}

	if err := env.run("chat", "--copy", "hi"); err != nil {
		t.Fatalf("chat error = %v", err)
	}
	if env.clipboard != "copied text" {
		t.Errorf("clipboard = %q", env.clipboard)
	}
	if !strings.Contains(env.stderr.String(), "Copied to clipboard") {
		t.Errorf("stderr = %q", env.stderr.String())
	}
}

func TestChat_DecoratedOnTerminal(t *testing.T) {
	env := newTestEnv(t)
	env.client.ChatVal = &models.ChatReply{Success: true, Response: "**done**"}
	env.deps.StdoutIsTerminal = func() bool { return true }

	if err := env.run("chat", "hi"); err != nil {
		t.Fatalf("chat error = %v", err)
	}
	out := env.stdout.String()
	if !strings.Contains(out, "Agent") || !strings.Contains(out, "done") {
		t.Errorf("decorated output = %q", out)
	}
}

func TestChat_RawOnTerminal(t *testing.T) {
	env := newTestEnv(t)
	env.client.ChatVal = &models.ChatReply{Success: true, Response: "**done**"}
	env.deps.StdoutIsTerminal = func() bool { return true }

	if err := env.run("chat", "--raw", "hi"); err != nil {
		t.Fatalf("chat error = %v", err)
	}
	if env.stdout.String() != "**done**\n" {
		t.Errorf("raw output = %q", env.stdout.String())
	}
}
