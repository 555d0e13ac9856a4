package game

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// RunLog records one game: its maze parameters and how it went.
type RunLog struct {
	ID         string    `json:"id"`
	Timestamp  time.Time `json:"timestamp"`
	Rows       int       `json:"rows"`
	Columns    int       `json:"columns"`
	Seed       int64     `json:"seed"`
	Escaped    bool      `json:"escaped"`
	DurationMS int64     `json:"duration_ms"`
	Steps      int       `json:"steps"`
	Keypresses int       `json:"keypresses"`
}

// newRunLog starts a record for a game beginning at ts.
func newRunLog(ts time.Time, rows, columns int, seed int64) RunLog {
	return RunLog{
		ID:        uuid.NewString(),
		Timestamp: ts,
		Rows:      rows,
		Columns:   columns,
		Seed:      seed,
	}
}

// saveRunLog appends the completed game as a single JSON line to runs.jsonl.
// Errors are logged but never interrupt play.
func saveRunLog(rl RunLog, logger *slog.Logger) {
	dir, err := runLogDir()
	if err != nil {
		logger.Warn("run log: cannot determine data dir", "error", err)
		return
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		logger.Warn("run log: cannot create data dir", "error", err)
		return
	}
	f, err := os.OpenFile(filepath.Join(dir, "runs.jsonl"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		logger.Warn("run log: cannot open file", "error", err)
		return
	}
	defer f.Close()
	data, err := json.Marshal(rl)
	if err != nil {
		logger.Warn("run log: cannot marshal JSON", "error", err)
		return
	}
	if _, err := f.Write(append(data, '\n')); err != nil {
		logger.Warn("run log: cannot write", "error", err)
	}
}

// runLogDir returns the directory where run logs are stored.
// Follows XDG Base Directory spec: $XDG_DATA_HOME/terminal-maze,
// defaulting to ~/.local/share/terminal-maze.
func runLogDir() (string, error) {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "terminal-maze"), nil
}
