package commands

import (
	"io"
	"log"
	"os"

	"github.com/atotto/clipboard"
	"golang.org/x/term"

	"github.com/diogo/agentdash/internal/api"
	"github.com/diogo/agentdash/internal/config"
	"github.com/diogo/agentdash/internal/tui"
)

// Dependencies holds the external dependencies for the commands.
// This allows for dependency injection and easier testing.
type Dependencies struct {
	// NewClient builds the API client for the effective configuration.
	NewClient func(cfg config.Config, logger *log.Logger) (api.ClientInterface, error)

	// RunDashboard and RunConfig start the full-screen programs.
	RunDashboard func(client api.ClientInterface, cfg config.Config, logger *log.Logger) error
	RunConfig    func(cfg config.Config, configPath string) error

	WriteClipboard func(text string) error

	// ConfigPath overrides ~/.agentdash/config.json when set.
	ConfigPath string

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	// StdoutIsTerminal and StdinIsTerminal gate decorations and prompts.
	StdoutIsTerminal func() bool
	StdinIsTerminal  func() bool
	TerminalWidth    func() int
}

// NewDependencies creates a new Dependencies struct with default implementations.
func NewDependencies() *Dependencies {
	return &Dependencies{
		NewClient: func(cfg config.Config, logger *log.Logger) (api.ClientInterface, error) {
			return api.NewClient(cfg.ServerURL, api.WithTimeout(cfg.Timeout()), api.WithLogger(logger))
		},
		RunDashboard:     tui.RunDashboard,
		RunConfig:        tui.RunConfig,
		WriteClipboard:   clipboard.WriteAll,
		Stdin:            os.Stdin,
		Stdout:           os.Stdout,
		Stderr:           os.Stderr,
		StdoutIsTerminal: func() bool { return term.IsTerminal(int(os.Stdout.Fd())) },
		StdinIsTerminal:  func() bool { return term.IsTerminal(int(os.Stdin.Fd())) },
		TerminalWidth:    getTerminalWidth,
	}
}

// getTerminalWidth returns the terminal width or a default value
func getTerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 80
	}
	return width
}

// configPath returns the config file the commands read and write
func (d *Dependencies) configPath() (string, error) {
	if d.ConfigPath != "" {
		return d.ConfigPath, nil
	}
	return config.GetConfigPath()
}

// connection is the state shared by commands that talk to the server
type connection struct {
	cfg    config.Config
	path   string
	logger *log.Logger
	client api.ClientInterface
}

// loadConfig reads the config file and applies the --server override
func (d *Dependencies) loadConfig(server string) (config.Config, string, error) {
	path, err := d.configPath()
	if err != nil {
		return config.DefaultConfig(), "", err
	}

	cfg, err := config.LoadConfigFrom(path)
	if err != nil {
		return cfg, path, err
	}

	if server != "" {
		if err := config.Set(&cfg, "server_url", server); err != nil {
			return cfg, path, err
		}
	}
	return cfg, path, nil
}

// connect loads the configuration and builds a client. Logs go to the log
// file only; stdout and stderr carry command output.
func (d *Dependencies) connect(server string) (*connection, error) {
	cfg, path, err := d.loadConfig(server)
	if err != nil {
		return nil, err
	}

	logger := config.SetupLogger(cfg.LogFile, false)
	client, err := d.NewClient(cfg, logger)
	if err != nil {
		return nil, err
	}

	return &connection{cfg: cfg, path: path, logger: logger, client: client}, nil
}
