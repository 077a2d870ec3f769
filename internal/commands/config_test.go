package commands

import (
	"strings"
	"testing"

	"github.com/diogo/agentdash/internal/config"
)

func TestConfigSet(t *testing.T) {
	env := newTestEnv(t)

	if err := env.run("config", "set", "file_poll_interval", "5"); err != nil {
		t.Fatalf("config set error = %v", err)
	}

	cfg, err := config.LoadConfigFrom(env.deps.ConfigPath)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.FilePollInterval != 5 {
		t.Errorf("FilePollInterval = %d, want 5", cfg.FilePollInterval)
	}
}

func TestConfigSet_IgnoresServerOverride(t *testing.T) {
	env := newTestEnv(t)

	if err := env.run("-s", "http://elsewhere:1", "config", "set", "health_interval", "30"); err != nil {
		t.Fatalf("config set error = %v", err)
	}

	cfg, _ := config.LoadConfigFrom(env.deps.ConfigPath)
	if cfg.ServerURL != config.DefaultConfig().ServerURL {
		t.Errorf("ServerURL = %s, the flag must not be saved", cfg.ServerURL)
	}
	if cfg.HealthInterval != 30 {
		t.Errorf("HealthInterval = %d, want 30", cfg.HealthInterval)
	}
}

func TestConfigSet_Invalid(t *testing.T) {
	env := newTestEnv(t)

	if err := env.run("config", "set", "nope", "1"); err == nil {
		t.Error("expected an error for an unknown key")
	}
	if err := env.run("config", "set", "file_poll_interval"); err == nil {
		t.Error("expected an error for a missing value")
	}
}

func TestConfigShow(t *testing.T) {
	env := newTestEnv(t)

	if err := env.run("config", "show"); err != nil {
		t.Fatalf("config show error = %v", err)
	}
	out := env.stdout.String()
	if !strings.Contains(out, `"server_url": "http://localhost:8000"`) {
		t.Errorf("output = %s", out)
	}
	if !strings.Contains(out, env.deps.ConfigPath) {
		t.Error("output should name the config file")
	}
}

func TestConfig_InteractiveOnTerminal(t *testing.T) {
	env := newTestEnv(t)
	env.deps.StdoutIsTerminal = func() bool { return true }

	if err := env.run("config"); err != nil {
		t.Fatalf("config error = %v", err)
	}
	if env.configRuns != 1 {
		t.Errorf("config menu runs = %d, want 1", env.configRuns)
	}
}

func TestConfig_PrintsWhenPiped(t *testing.T) {
	env := newTestEnv(t)

	if err := env.run("config"); err != nil {
		t.Fatalf("config error = %v", err)
	}
	if env.configRuns != 0 {
		t.Error("config menu must not start without a terminal")
	}
	if !strings.Contains(env.stdout.String(), "file_poll_interval") {
		t.Errorf("output = %s", env.stdout.String())
	}
}
