package tui

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
)

// DefaultLogPath returns ~/.ghostcatcher/ghostcatcher.log, or a path in the
// working directory when the home directory is unknown.
func DefaultLogPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "ghostcatcher.log"
	}
	return filepath.Join(home, ".ghostcatcher", "ghostcatcher.log")
}

// OpenLogFile returns a logger that appends to path, creating its directory.
// Local play logs here because the alt screen owns stdout and stderr.
// The caller closes the returned file when the program exits.
func OpenLogFile(path string, level log.Level) (*log.Logger, *os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("log: cannot create directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("log: %w", err)
	}
	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "ghostcatcher",
		Level:           level,
	})
	return logger, f, nil
}
