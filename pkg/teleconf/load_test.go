package teleconf

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

func TestLoad_AbsentFile(t *testing.T) {
	rec, outcome := Load(filepath.Join(t.TempDir(), "config.json"))
	if outcome != LoadAbsent {
		t.Errorf("outcome = %v, want %v", outcome, LoadAbsent)
	}
	if len(rec) != 0 {
		t.Errorf("record = %v, want empty", rec)
	}
}

func TestLoad_CorruptFile(t *testing.T) {
	rec, outcome := Load(writeConfig(t, "{not json"))
	if outcome != LoadCorrupt {
		t.Errorf("outcome = %v, want %v", outcome, LoadCorrupt)
	}
	if len(rec) != 0 {
		t.Errorf("record = %v, want empty", rec)
	}
}

func TestLoad_TrailingGarbage(t *testing.T) {
	// A stale record followed by extra data must not be reused.
	for _, content := range []string{
		`{"bot_token": "stale-token"} trailing garbage`,
		`{"bot_token": "a"} {"bot_token": "b"}`,
		`{"api_id": 1}]`,
	} {
		rec, outcome := Load(writeConfig(t, content))
		if outcome != LoadCorrupt {
			t.Errorf("Load(%s) outcome = %v, want %v", content, outcome, LoadCorrupt)
		}
		if len(rec) != 0 {
			t.Errorf("Load(%s) record = %v, want empty", content, rec)
		}
	}

	// Trailing whitespace is still a clean load.
	if _, outcome := Load(writeConfig(t, "{\"api_id\": 12345}\n")); outcome != LoadLoaded {
		t.Errorf("outcome = %v, want %v for a trailing newline", outcome, LoadLoaded)
	}
}

func TestLoad_NonObjectJSON(t *testing.T) {
	for _, content := range []string{`[1, 2]`, `"text"`, `42`, `null`} {
		if _, outcome := Load(writeConfig(t, content)); outcome != LoadCorrupt {
			t.Errorf("Load(%s) outcome = %v, want %v", content, outcome, LoadCorrupt)
		}
	}
}

func TestLoad_PartialRecord(t *testing.T) {
	rec, outcome := Load(writeConfig(t, `{"api_id": 12345}`))
	if outcome != LoadLoaded {
		t.Fatalf("outcome = %v, want %v", outcome, LoadLoaded)
	}
	n, ok := rec["api_id"].(json.Number)
	if !ok {
		t.Fatalf("api_id = %T(%v), want json.Number", rec["api_id"], rec["api_id"])
	}
	if n.String() != "12345" {
		t.Errorf("api_id = %s, want 12345", n)
	}
}

func TestLoad_WrongTypePreserved(t *testing.T) {
	// A mistyped stored value is not rejected at load time.
	rec, outcome := Load(writeConfig(t, `{"api_id": "abc", "bot_token": 7}`))
	if outcome != LoadLoaded {
		t.Fatalf("outcome = %v, want %v", outcome, LoadLoaded)
	}
	if v, ok := rec["api_id"].(string); !ok || v != "abc" {
		t.Errorf("api_id = %T(%v), want string abc", rec["api_id"], rec["api_id"])
	}
	if _, ok := rec["bot_token"].(json.Number); !ok {
		t.Errorf("bot_token = %T(%v), want json.Number", rec["bot_token"], rec["bot_token"])
	}
}

func TestLoadOutcome_String(t *testing.T) {
	tests := []struct {
		outcome LoadOutcome
		want    string
	}{
		{LoadNone, "none"},
		{LoadLoaded, "loaded"},
		{LoadAbsent, "absent"},
		{LoadCorrupt, "corrupt"},
	}
	for _, tt := range tests {
		if got := tt.outcome.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
