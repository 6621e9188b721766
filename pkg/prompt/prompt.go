// Package prompt implements the terminal prompter used to collect
// credentials: one huh input form per field, with validation feedback
// in place and input recall backed by a per-config history file.
package prompt

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/nextlevelbuilder/teleconf/pkg/teleconf"
)

var hintStyle = lipgloss.NewStyle().Faint(true)

// Session prompts on the terminal. One Session serves one resolution
// pass and shares one recall history across all of its fields.
type Session struct {
	history *History
	out     io.Writer
}

// NewSession creates a terminal prompter around an existing history.
func NewSession(h *History) *Session {
	return &Session{history: h, out: os.Stdout}
}

// ForConfigFile creates a terminal prompter whose history lives next
// to the given config file (see HistoryPath).
func ForConfigFile(configPath string) *Session {
	return NewSession(NewHistory(HistoryPath(configPath)))
}

// Line runs a single-input form until validate accepts the entry.
// A non-empty hint is printed once above the form. The accepted line
// is returned raw and recorded in the session history; callers do
// their own trimming. Aborting the form reports teleconf.ErrCanceled.
func (s *Session) Line(title, description, hint string, validate func(string) error) (string, error) {
	if hint != "" {
		fmt.Fprintln(s.out, hintStyle.Render(hint))
	}

	var value string
	inp := huh.NewInput().
		Title(title).
		Value(&value)

	if description != "" {
		inp = inp.Description(description)
	}
	if validate != nil {
		inp = inp.Validate(validate)
	}
	if recall := s.recall(); len(recall) > 0 {
		inp = inp.Suggestions(recall)
	}

	if err := huh.NewForm(huh.NewGroup(inp)).WithShowHelp(true).Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return "", teleconf.ErrCanceled
		}
		return "", fmt.Errorf("prompt %q: %w", title, err)
	}

	s.history.Append(value)
	return value, nil
}

// recall returns history entries for suggestions, most recent first,
// duplicates removed.
func (s *Session) recall() []string {
	entries := s.history.Entries()
	seen := make(map[string]bool, len(entries))
	out := make([]string, 0, len(entries))
	for i := len(entries) - 1; i >= 0; i-- {
		if e := entries[i]; !seen[e] {
			seen[e] = true
			out = append(out, e)
		}
	}
	return out
}
