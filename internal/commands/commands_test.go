package commands

import (
	"bytes"
	"log"
	"path/filepath"
	"strings"
	"testing"

	"github.com/diogo/agentdash/internal/api"
	"github.com/diogo/agentdash/internal/config"
)

// testEnv wires the commands to a mock client and in-memory streams
type testEnv struct {
	deps   *Dependencies
	client *api.MockClient
	stdout *bytes.Buffer
	stderr *bytes.Buffer

	cfg           config.Config
	clipboard     string
	dashboardRuns int
	configRuns    int
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)

	env := &testEnv{
		client: &api.MockClient{},
		stdout: &bytes.Buffer{},
		stderr: &bytes.Buffer{},
	}
	env.deps = &Dependencies{
		NewClient: func(cfg config.Config, _ *log.Logger) (api.ClientInterface, error) {
			env.cfg = cfg
			env.client.URL = cfg.ServerURL
			return env.client, nil
		},
		RunDashboard: func(api.ClientInterface, config.Config, *log.Logger) error {
			env.dashboardRuns++
			return nil
		},
		RunConfig: func(config.Config, string) error {
			env.configRuns++
			return nil
		},
		WriteClipboard: func(s string) error {
			env.clipboard = s
			return nil
		},
		ConfigPath:       filepath.Join(home, ".agentdash", "config.json"),
		Stdin:            strings.NewReader(""),
		Stdout:           env.stdout,
		Stderr:           env.stderr,
		StdoutIsTerminal: func() bool { return false },
		StdinIsTerminal:  func() bool { return true },
		TerminalWidth:    func() int { return 80 },
	}
	return env
}

func (e *testEnv) run(args ...string) error {
	cmd := NewRootCmd(e.deps)
	cmd.SetArgs(args)
	return cmd.Execute()
}

func TestRootCommand_Help(t *testing.T) {
	cmd := NewRootCmd(newTestEnv(t).deps)
	if cmd.Use != "agentdash" {
		t.Errorf("Expected use 'agentdash', got %s", cmd.Use)
	}
	if cmd.Short == "" || cmd.Long == "" {
		t.Error("descriptions should not be empty")
	}

	for _, name := range []string{"chat", "files", "health", "config"} {
		if sub, _, err := cmd.Find([]string{name}); err != nil || sub.Name() != name {
			t.Errorf("subcommand %q not registered", name)
		}
	}
}

func TestRootCommand_RunsDashboard(t *testing.T) {
	env := newTestEnv(t)

	if err := env.run(); err != nil {
		t.Fatalf("run() error = %v", err)
	}
	if env.dashboardRuns != 1 {
		t.Errorf("dashboard runs = %d, want 1", env.dashboardRuns)
	}
	if env.cfg.ServerURL != "http://localhost:8000" {
		t.Errorf("ServerURL = %s, want default", env.cfg.ServerURL)
	}
}

func TestRootCommand_ServerFlag(t *testing.T) {
	env := newTestEnv(t)

	if err := env.run("--server", "http://10.0.0.5:9000/"); err != nil {
		t.Fatalf("run() error = %v", err)
	}
	if env.cfg.ServerURL != "http://10.0.0.5:9000" {
		t.Errorf("ServerURL = %s, want override", env.cfg.ServerURL)
	}
}

func TestRootCommand_InvalidServer(t *testing.T) {
	env := newTestEnv(t)

	if err := env.run("-s", "localhost:8000"); err == nil {
		t.Fatal("expected an error for a URL without scheme")
	}
	if env.dashboardRuns != 0 {
		t.Error("dashboard must not start with an invalid server")
	}
}

func TestRootCommand_Version(t *testing.T) {
	env := newTestEnv(t)

	if err := env.run("--version"); err != nil {
		t.Fatalf("run() error = %v", err)
	}
	if !strings.Contains(env.stdout.String(), "agentdash "+Version) {
		t.Errorf("version output = %q", env.stdout.String())
	}
	if env.dashboardRuns != 0 {
		t.Error("--version must not start the dashboard")
	}
}

func TestRootCommand_RejectsArgs(t *testing.T) {
	env := newTestEnv(t)
	if err := env.run("unknown-thing"); err == nil {
		t.Error("expected an error for a positional argument")
	}
}

func TestSpinnerLifecycle(t *testing.T) {
	var out bytes.Buffer
	s := newSpinner(&out, "Agent is typing")
	s.start()
	s.stopWithSuccess("done")
	// Second stop must not panic
	s.stopWithError()

	if !strings.Contains(out.String(), "done") {
		t.Errorf("spinner output = %q", out.String())
	}
}

func TestBubbleWidth(t *testing.T) {
	tests := map[int]int{20: 40, 80: 76, 300: 120}
	for term, want := range tests {
		if got := bubbleWidth(term); got != want {
			t.Errorf("bubbleWidth(%d) = %d, want %d", term, got, want)
		}
	}
}
