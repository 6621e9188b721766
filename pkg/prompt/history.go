package prompt

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// History is an append-only line log of entries the user accepted at
// the prompt, scoped to one config file. It only feeds input recall:
// the credential store never reads values back out of it.
type History struct {
	path    string
	entries []string
}

// HistoryPath derives the history file for a config file: a
// dot-prefixed sibling with a .history suffix, e.g. config.json
// becomes .config.json.history in the same directory.
func HistoryPath(configPath string) string {
	return filepath.Join(filepath.Dir(configPath), "."+filepath.Base(configPath)+".history")
}

// NewHistory opens the history at path, loading any lines recorded by
// earlier runs. A missing or unreadable file simply starts empty.
func NewHistory(path string) *History {
	h := &History{path: path}
	data, err := os.ReadFile(path)
	if err != nil {
		return h
	}
	for _, line := range strings.Split(string(data), "\n") {
		if line = strings.TrimRight(line, "\r"); line != "" {
			h.entries = append(h.entries, line)
		}
	}
	return h
}

// Entries returns the recorded lines, oldest first.
func (h *History) Entries() []string {
	out := make([]string, len(h.entries))
	copy(out, h.entries)
	return out
}

// Append records one accepted line, in memory and on disk. A disk
// failure costs only durable recall, never the run: it is logged and
// the line still serves suggestions for the current session.
func (h *History) Append(line string) {
	if line == "" {
		return
	}
	h.entries = append(h.entries, line)

	f, err := os.OpenFile(h.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		slog.Warn("prompt history unavailable", "path", h.path, "error", err)
		return
	}
	defer f.Close()
	if _, err := f.WriteString(line + "\n"); err != nil {
		slog.Warn("prompt history write failed", "path", h.path, "error", err)
	}
}
