// Package applog builds the process logger. The terminal belongs to the game
// screen, so records go to a file under the XDG state directory.
package applog

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// New returns the process logger and a func that closes its output.
// Without verbose everything is discarded.
func New(verbose bool) (*slog.Logger, func() error, error) {
	if !verbose {
		return slog.New(slog.DiscardHandler), func() error { return nil }, nil
	}
	dir, err := logDir()
	if err != nil {
		return nil, nil, fmt.Errorf("log dir: %w", err)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, nil, fmt.Errorf("create log dir: %w", err)
	}
	f, err := os.OpenFile(filepath.Join(dir, "maze.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log: %w", err)
	}
	h := slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug})
	return slog.New(h), f.Close, nil
}

// logDir returns $XDG_STATE_HOME/terminal-maze, defaulting to
// ~/.local/state/terminal-maze.
func logDir() (string, error) {
	stateHome := os.Getenv("XDG_STATE_HOME")
	if stateHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		stateHome = filepath.Join(home, ".local", "state")
	}
	return filepath.Join(stateHome, "terminal-maze"), nil
}
