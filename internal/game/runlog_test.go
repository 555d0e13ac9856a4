package game

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestRunLogDirXDGEnvOverride(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("XDG_DATA_HOME", tmp)

	dir, err := runLogDir()
	if err != nil {
		t.Fatalf("runLogDir returned error: %v", err)
	}
	want := filepath.Join(tmp, "terminal-maze")
	if dir != want {
		t.Errorf("dir = %q; want %q", dir, want)
	}
}

func TestRunLogDirDefaultFallback(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "") // force the fallback path

	dir, err := runLogDir()
	if err != nil {
		t.Skip("skipping: no user home directory available in test environment")
	}
	suffix := filepath.Join(".local", "share", "terminal-maze")
	if !strings.HasSuffix(dir, suffix) {
		t.Errorf("dir %q does not end with %q", dir, suffix)
	}
}

func TestSaveRunLog(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("XDG_DATA_HOME", tmp)

	rl := newRunLog(time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC), 9, 16, 42)
	rl.Escaped = true
	rl.Steps = 31
	rl.DurationMS = 12500
	saveRunLog(rl, slog.New(slog.DiscardHandler))

	data, err := os.ReadFile(filepath.Join(tmp, "terminal-maze", "runs.jsonl"))
	if err != nil {
		t.Fatalf("runs.jsonl not created: %v", err)
	}
	if !strings.HasSuffix(string(data), "\n") {
		t.Errorf("log entry should end with newline; got: %q", data)
	}
	var got RunLog
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("entry is not JSON: %v", err)
	}
	if got.ID == "" || got.ID != rl.ID {
		t.Errorf("id = %q; want %q", got.ID, rl.ID)
	}
	if got.Rows != 9 || got.Columns != 16 || got.Seed != 42 || !got.Escaped || got.Steps != 31 {
		t.Errorf("entry = %+v", got)
	}
}

func TestSaveRunLogAppendsMultiple(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("XDG_DATA_HOME", tmp)

	for i := range 3 {
		saveRunLog(newRunLog(time.Now(), i+1, i+1, 0), slog.New(slog.DiscardHandler))
	}

	data, err := os.ReadFile(filepath.Join(tmp, "terminal-maze", "runs.jsonl"))
	if err != nil {
		t.Fatalf("runs.jsonl not found: %v", err)
	}
	// Each call appends one JSON line; count the newlines.
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	if len(lines) != 3 {
		t.Errorf("expected 3 log lines, got %d", len(lines))
	}
}

func TestNewRunLogUniqueIDs(t *testing.T) {
	a := newRunLog(time.Now(), 1, 1, 0)
	b := newRunLog(time.Now(), 1, 1, 0)
	if a.ID == b.ID {
		t.Errorf("ids should differ, both %q", a.ID)
	}
}
