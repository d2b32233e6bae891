package app

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
)

// setupLogging moves the standard logger off the terminal while the TUI owns
// it: into logFile when one is configured, otherwise nowhere. The returned
// func restores stderr.
func setupLogging(logFile string) (func(), error) {
	if logFile == "" {
		log.SetOutput(io.Discard)
		return restoreStderr, nil
	}

	if err := os.MkdirAll(filepath.Dir(logFile), 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}
	f, err := tea.LogToFile(logFile, "vmgrid")
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return func() {
		_ = f.Close()
		restoreStderr()
	}, nil
}

func restoreStderr() {
	log.SetOutput(os.Stderr)
	log.SetPrefix("")
}
