// Package config handles configuration for agentdash.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/diogo/agentdash/internal/models"
)

// MarkdownConfig configures markdown rendering of agent replies
type MarkdownConfig struct {
	Style            string `json:"style"` // "dark", "light", "dracula", "tokyo-night", "notty" or path to JSON theme
	EnableEmoji      bool   `json:"enable_emoji"` // Convert :emoji: to unicode
	PreserveNewLines bool   `json:"preserve_newlines"` // Preserve original line breaks
	TableWrap        bool   `json:"table_wrap"` // Enable word wrap in table cells
	InlineTableLinks bool   `json:"inline_table_links"` // Render links inline in tables
}

// Config represents the user configuration
type Config struct {
	// ServerURL is the base URL of the agent server.
	ServerURL string `json:"server_url"`
	// FilePollInterval is the number of seconds between file listing polls.
	FilePollInterval int `json:"file_poll_interval"`
	// HealthInterval is the number of seconds between health probes.
	// Zero probes once at startup and on manual refresh only.
	HealthInterval int `json:"health_interval"`
	// RefreshDelayMs is the delay before the file refresh that follows a
	// successful chat exchange.
	RefreshDelayMs int `json:"refresh_delay_ms"`
	// RequestTimeout bounds every API call in seconds. Zero means no timeout:
	// a hung chat request keeps the input locked until restart.
	RequestTimeout  int            `json:"request_timeout"`
	TUITheme        string         `json:"tui_theme,omitempty"`
	LogFile         string         `json:"log_file,omitempty"` // "off" disables logging
	CopyToClipboard bool           `json:"copy_to_clipboard"`
	Markdown        MarkdownConfig `json:"markdown,omitempty"`
}

// DefaultMarkdownConfig returns the default markdown configuration
func DefaultMarkdownConfig() MarkdownConfig {
	return MarkdownConfig{
		Style:            "dark",
		EnableEmoji:      true,
		PreserveNewLines: true,
		TableWrap:        true,
		InlineTableLinks: false,
	}
}

// DefaultConfig returns the default configuration
func DefaultConfig() Config {
	homeDir, _ := os.UserHomeDir()
	return Config{
		ServerURL:        "http://localhost:8000",
		FilePollInterval: models.DefaultFilePollSeconds,
		HealthInterval:   0,
		RefreshDelayMs:   models.DefaultRefreshDelayMs,
		RequestTimeout:   0,
		TUITheme:         "tokyonight",
		LogFile:          filepath.Join(homeDir, ".agentdash", "agentdash.log"),
		CopyToClipboard:  false,
		Markdown:         DefaultMarkdownConfig(),
	}
}

// FilePollEvery returns the file poll interval as a duration
func (c Config) FilePollEvery() time.Duration {
	if c.FilePollInterval <= 0 {
		return models.DefaultFilePollSeconds * time.Second
	}
	return time.Duration(c.FilePollInterval) * time.Second
}

// HealthEvery returns the health probe interval, or 0 when probing is manual
func (c Config) HealthEvery() time.Duration {
	if c.HealthInterval <= 0 {
		return 0
	}
	return time.Duration(c.HealthInterval) * time.Second
}

// RefreshDelay returns the delay of the post-chat file refresh
func (c Config) RefreshDelay() time.Duration {
	if c.RefreshDelayMs < 0 {
		return models.DefaultRefreshDelayMs * time.Millisecond
	}
	return time.Duration(c.RefreshDelayMs) * time.Millisecond
}

// Timeout returns the request timeout, or 0 for none
func (c Config) Timeout() time.Duration {
	if c.RequestTimeout <= 0 {
		return 0
	}
	return time.Duration(c.RequestTimeout) * time.Second
}

// GetConfigDir returns the configuration directory path
func GetConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	return filepath.Join(home, ".agentdash"), nil
}

// EnsureConfigDir creates the configuration directory if it doesn't exist
func EnsureConfigDir() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(configDir, 0o700); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}

	return configDir, nil
}

// GetConfigPath returns the path to the config file
func GetConfigPath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "config.json"), nil
}

// LoadConfig loads the configuration from disk
func LoadConfig() (Config, error) {
	configPath, err := GetConfigPath()
	if err != nil {
		return DefaultConfig(), err
	}
	return LoadConfigFrom(configPath)
}

// LoadConfigFrom loads the configuration from the given file, falling back to
// defaults when it does not exist
func LoadConfigFrom(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := json.Unmarshal(data, &cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("failed to parse config file: %w", err)
	}

	return cfg, nil
}

// SaveConfig saves the configuration to disk
func SaveConfig(cfg Config) error {
	configDir, err := EnsureConfigDir()
	if err != nil {
		return err
	}
	return SaveConfigTo(filepath.Join(configDir, "config.json"), cfg)
}

// SaveConfigTo writes the configuration to the given file
func SaveConfigTo(path string, cfg Config) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// setters maps config keys to functions applying a string value
var setters = map[string]func(cfg *Config, value string) error{
	"server_url": func(cfg *Config, v string) error {
		if !strings.HasPrefix(v, "http://") && !strings.HasPrefix(v, "https://") {
			return fmt.Errorf("server_url must start with http:// or https://")
		}
		cfg.ServerURL = strings.TrimRight(v, "/")
		return nil
	},
	"file_poll_interval": intSetter(func(cfg *Config, n int) { cfg.FilePollInterval = n }, 1),
	"health_interval":    intSetter(func(cfg *Config, n int) { cfg.HealthInterval = n }, 0),
	"refresh_delay_ms":   intSetter(func(cfg *Config, n int) { cfg.RefreshDelayMs = n }, 0),
	"request_timeout":    intSetter(func(cfg *Config, n int) { cfg.RequestTimeout = n }, 0),
	"tui_theme": func(cfg *Config, v string) error {
		cfg.TUITheme = v
		return nil
	},
	"log_file": func(cfg *Config, v string) error {
		cfg.LogFile = v
		return nil
	},
	"copy_to_clipboard": func(cfg *Config, v string) error {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("copy_to_clipboard must be true or false")
		}
		cfg.CopyToClipboard = b
		return nil
	},
	"markdown.style": func(cfg *Config, v string) error {
		cfg.Markdown.Style = v
		return nil
	},
}

func intSetter(apply func(cfg *Config, n int), minimum int) func(cfg *Config, value string) error {
	return func(cfg *Config, v string) error {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("expected an integer, got %q", v)
		}
		if n < minimum {
			return fmt.Errorf("value must be >= %d", minimum)
		}
		apply(cfg, n)
		return nil
	}
}

// Set applies a single key=value change to cfg
func Set(cfg *Config, key, value string) error {
	setter, ok := setters[key]
	if !ok {
		return fmt.Errorf("unknown config key %q (available: %s)", key, strings.Join(Keys(), ", "))
	}
	return setter(cfg, value)
}

// Keys returns the settable config keys in sorted order
func Keys() []string {
	keys := make([]string, 0, len(setters))
	for k := range setters {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
