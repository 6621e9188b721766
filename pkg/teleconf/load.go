package teleconf

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"os"
)

// LoadOutcome reports how reading the config file went. Absent and
// corrupt files both recover to an empty record so a resolution pass
// can proceed; the outcome keeps the two cases distinguishable.
type LoadOutcome int

const (
	// LoadNone means no load has happened yet.
	LoadNone LoadOutcome = iota
	// LoadLoaded means the file existed and parsed as a JSON object.
	LoadLoaded
	// LoadAbsent means no file existed at the path.
	LoadAbsent
	// LoadCorrupt means the file existed but was unreadable or not a
	// JSON object; its contents are ignored.
	LoadCorrupt
)

func (o LoadOutcome) String() string {
	switch o {
	case LoadLoaded:
		return "loaded"
	case LoadAbsent:
		return "absent"
	case LoadCorrupt:
		return "corrupt"
	default:
		return "none"
	}
}

// Load reads the config file at path as a flat JSON object. Numbers
// decode as json.Number so stored values round-trip to disk untouched.
// There is no error return: an absent or corrupt file yields an empty
// record and the matching outcome, and a corrupt one is also logged.
// A file holding anything beyond the one object counts as corrupt.
func Load(path string) (map[string]any, LoadOutcome) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]any{}, LoadAbsent
		}
		slog.Warn("config file unreadable, starting empty", "path", path, "error", err)
		return map[string]any{}, LoadCorrupt
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var rec map[string]any
	if err := dec.Decode(&rec); err != nil || rec == nil {
		slog.Warn("config file is not a JSON object, starting empty", "path", path, "error", err)
		return map[string]any{}, LoadCorrupt
	}
	if err := dec.Decode(new(any)); err != io.EOF {
		slog.Warn("config file has data after the record, starting empty", "path", path)
		return map[string]any{}, LoadCorrupt
	}
	return rec, LoadLoaded
}
