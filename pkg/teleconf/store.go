// Package teleconf collects and persists the credentials a Telegram
// application needs: the numeric API ID, the API hash, the bot token
// and optionally a phone number. Each requested field is reused from a
// JSON config file when already stored, or solicited interactively
// with per-field validation, and the resolved record is written back
// for the next run.
//
// Typical use:
//
//	session := prompt.ForConfigFile(teleconf.DefaultConfigFile)
//	store := teleconf.New(teleconf.DefaultConfigFile, session)
//	if err := store.Resolve(teleconf.DefaultOptions()); err != nil {
//		// errors.Is(err, teleconf.ErrCanceled) → user aborted, nothing written
//	}
//	bot, err := telego.NewBot(store.BotToken)
package teleconf

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// DefaultConfigFile is used when New is given an empty path.
const DefaultConfigFile = "config.json"

// Keys of the persisted record.
const (
	keyAPIID       = "api_id"
	keyAPIHash     = "api_hash"
	keyBotToken    = "bot_token"
	keyPhoneNumber = "phone_number"
)

// persistedKeys are the fields that ever reach the config file, in
// resolution order. A resolved phone number stays in memory only.
var persistedKeys = []string{keyAPIID, keyAPIHash, keyBotToken}

// ErrCanceled reports that the user aborted an interactive prompt.
// A canceled pass writes nothing.
var ErrCanceled = errors.New("input canceled by user")

// SaveError wraps a failure to persist the record, the one error a
// resolution pass does not recover from. Callers match it with
// errors.As to tell persistence trouble from prompt trouble.
type SaveError struct {
	Err error
}

func (e *SaveError) Error() string { return e.Err.Error() }
func (e *SaveError) Unwrap() error { return e.Err }

// telegramAppHint is shown before the API ID and API Hash prompts.
// Both values come from the same place, so both prompts share it.
const telegramAppHint = "Tip: To obtain your API ID and API Hash, log in to your Telegram account at: https://my.telegram.org/auth?to=apps"

// Prompter solicits one line of input from the user, re-prompting in
// place until validate accepts the entry. Implementations return the
// raw entered line (the store does its own trimming) and ErrCanceled
// when the user aborts.
type Prompter interface {
	Line(title, description, hint string, validate func(string) error) (string, error)
}

// Store resolves, holds and persists the credential record for one
// config file. The exported fields are populated by Resolve for the
// fields that were requested; everything else keeps its zero value.
type Store struct {
	APIID       int
	APIHash     string
	BotToken    string
	PhoneNumber string

	path     string
	prompter Prompter
	outcome  LoadOutcome
	resolved map[string]any
}

// New creates a store for the config file at path. An empty path
// selects DefaultConfigFile. The prompter handles interactive entry;
// a pass that finds every requested field already stored never
// invokes it.
func New(path string, p Prompter) *Store {
	if path == "" {
		path = DefaultConfigFile
	}
	return &Store{path: path, prompter: p}
}

// Path returns the config file path the store reads and writes.
func (s *Store) Path() string { return s.path }

// Outcome reports how the config file read went during the last
// Resolve: LoadLoaded, LoadAbsent or LoadCorrupt. Absent and corrupt
// files both resolve from an empty record by design.
func (s *Store) Outcome() LoadOutcome { return s.outcome }

// Record returns a copy of the record as persisted by the last
// Resolve: the subset of api_id, api_hash and bot_token that was
// resolved during that pass.
func (s *Store) Record() map[string]any {
	out := make(map[string]any, len(persistedKeys))
	for _, key := range persistedKeys {
		if v, ok := s.resolved[key]; ok {
			out[key] = v
		}
	}
	return out
}

// Resolve loads the stored record, reuses or prompts for each
// requested field in the fixed order api_id, api_hash, bot_token,
// phone_number, and overwrites the config file with the fields
// resolved during this pass. Fields whose flag is not set are dropped
// from the file even if a prior run stored them.
//
// A stored value is reused verbatim, without re-validation, unless
// opts.ForceUpdate is set. Cancellation surfaces as ErrCanceled and
// leaves the file untouched; a failed write surfaces as *SaveError.
func (s *Store) Resolve(opts Options) error {
	loaded, outcome := Load(s.path)
	s.outcome = outcome
	s.resolved = make(map[string]any, 4)

	if opts.APIID {
		if err := s.resolveAPIID(loaded, opts.ForceUpdate); err != nil {
			return err
		}
	}
	if opts.APIHash {
		if err := s.resolveAPIHash(loaded, opts.ForceUpdate); err != nil {
			return err
		}
	}
	if opts.BotToken {
		if err := s.resolveBotToken(loaded, opts.ForceUpdate); err != nil {
			return err
		}
	}
	if opts.PhoneNumber {
		if err := s.resolvePhoneNumber(loaded, opts.ForceUpdate); err != nil {
			return err
		}
	}

	if err := s.save(); err != nil {
		return &SaveError{Err: err}
	}
	return nil
}

func (s *Store) resolveAPIID(loaded map[string]any, force bool) error {
	if v, ok := loaded[keyAPIID]; ok && !force {
		s.resolved[keyAPIID] = v
		s.APIID = asInt(v)
		return nil
	}
	text, err := s.promptLine("Telegram API ID", "Numeric application ID", telegramAppHint, ValidateAPIID)
	if err != nil {
		return err
	}
	id, err := strconv.Atoi(text)
	if err != nil {
		return fmt.Errorf("api_id out of range: %w", err)
	}
	s.APIID = id
	s.resolved[keyAPIID] = id
	return nil
}

func (s *Store) resolveAPIHash(loaded map[string]any, force bool) error {
	if v, ok := loaded[keyAPIHash]; ok && !force {
		s.resolved[keyAPIHash] = v
		s.APIHash = asString(v)
		return nil
	}
	text, err := s.promptLine("Telegram API Hash", "Application hash from the same page", telegramAppHint, ValidateAPIHash)
	if err != nil {
		return err
	}
	s.APIHash = text
	s.resolved[keyAPIHash] = text
	return nil
}

func (s *Store) resolveBotToken(loaded map[string]any, force bool) error {
	if v, ok := loaded[keyBotToken]; ok && !force {
		s.resolved[keyBotToken] = v
		s.BotToken = asString(v)
		return nil
	}
	text, err := s.promptLine("Telegram Bot Token", "Get from @BotFather on Telegram", "", ValidateBotToken)
	if err != nil {
		return err
	}
	s.BotToken = text
	s.resolved[keyBotToken] = text
	return nil
}

func (s *Store) resolvePhoneNumber(loaded map[string]any, force bool) error {
	if v, ok := loaded[keyPhoneNumber]; ok && !force {
		s.resolved[keyPhoneNumber] = v
		s.PhoneNumber = asString(v)
		return nil
	}
	text, err := s.promptLine("Phone Number", "International format, e.g. +15551234567", "", ValidatePhoneNumber)
	if err != nil {
		return err
	}
	s.PhoneNumber = text
	s.resolved[keyPhoneNumber] = text
	return nil
}

// promptLine runs one solicitation and trims the accepted entry.
func (s *Store) promptLine(title, description, hint string, validate func(string) error) (string, error) {
	if s.prompter == nil {
		return "", fmt.Errorf("field %q needs input but no prompter is configured", title)
	}
	text, err := s.prompter.Line(title, description, hint, validate)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(text), nil
}

// save overwrites the config file with the fields resolved this run.
// The record carries only api_id, api_hash and bot_token; see Record.
// Indented JSON, UTF-8, no HTML escaping, secrets-safe file mode.
func (s *Store) save() error {
	out := make(map[string]any, len(persistedKeys))
	for _, key := range persistedKeys {
		if v, ok := s.resolved[key]; ok {
			out[key] = v
		}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0700); err != nil {
			return fmt.Errorf("create config dir: %w", err)
		}
	}
	if err := os.WriteFile(s.path, buf.Bytes(), 0600); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	slog.Debug("config saved", "path", s.path, "fields", len(out))
	return nil
}

// asInt converts a reused stored value to int where possible. A value
// that is not a whole number (or a numeric string) leaves the typed
// accessor at zero; the raw value still round-trips to disk as-is.
func asInt(v any) int {
	switch n := v.(type) {
	case int:
		return n
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return int(i)
		}
	case float64:
		if n == float64(int(n)) {
			return int(n)
		}
	case string:
		if i, err := strconv.Atoi(strings.TrimSpace(n)); err == nil {
			return i
		}
	}
	return 0
}

// asString renders a reused stored value for the typed accessors.
func asString(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case json.Number:
		return t.String()
	case nil:
		return ""
	default:
		return fmt.Sprintf("%v", t)
	}
}
