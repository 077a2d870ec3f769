package config

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
)

// LogPrefix is prepended to every log line
const LogPrefix = "[agentdash] "

// SetupLogger creates a logger writing to logFilePath. When withStderr is set
// the lines are also copied to stderr; the TUI passes false because stderr
// belongs to the alternate screen. An empty path, "off" or "none" disables the
// file; with no writer left the logger discards everything.
func SetupLogger(logFilePath string, withStderr bool) *log.Logger {
	var writers []io.Writer

	lower := strings.ToLower(logFilePath)
	if logFilePath != "" && lower != "off" && lower != "none" {
		if err := os.MkdirAll(filepath.Dir(logFilePath), 0o700); err == nil {
			f, err := os.OpenFile(logFilePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
			if err == nil {
				writers = append(writers, f)
			} else if withStderr {
				fmt.Fprintf(os.Stderr, "%sWarning: cannot open log file %s: %v\n", LogPrefix, logFilePath, err)
			}
		} else if withStderr {
			fmt.Fprintf(os.Stderr, "%sWarning: cannot create log dir %s: %v\n", LogPrefix, filepath.Dir(logFilePath), err)
		}
	}

	if withStderr {
		writers = append(writers, os.Stderr)
	}

	if len(writers) == 0 {
		return log.New(io.Discard, LogPrefix, 0)
	}
	return log.New(io.MultiWriter(writers...), LogPrefix, log.LstdFlags|log.Lshortfile)
}
