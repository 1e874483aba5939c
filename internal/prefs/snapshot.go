package prefs

import (
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/mcpconf/cli/internal/keys"
)

// Snapshot is an immutable view of the preference store. Keys are matched
// case-insensitively.
type Snapshot struct {
	values map[string]any
}

func NewSnapshot(values map[keys.Key]any) Snapshot {
	s := Snapshot{values: make(map[string]any, len(values))}
	for k, v := range values {
		s.values[fold(k)] = v
	}
	return s
}

func fold(k keys.Key) string {
	return strings.ToLower(string(k))
}

func (s Snapshot) Get(k keys.Key) (any, bool) {
	v, ok := s.values[fold(k)]
	return v, ok && v != nil
}

// Bool reads a flag. Strings are parsed with strconv.ParseBool because the
// environment layer only yields strings; any other value reads as absent.
func (s Snapshot) Bool(k keys.Key) (bool, bool) {
	raw, _ := s.Get(k)
	switch v := raw.(type) {
	case bool:
		return v, true
	case string:
		if b, err := strconv.ParseBool(strings.TrimSpace(v)); err == nil {
			return b, true
		}
	}
	return false, false
}

// String reads a string value; a value of any other type reads as absent.
func (s Snapshot) String(k keys.Key) (string, bool) {
	v, _ := s.Get(k)
	str, ok := v.(string)
	return str, ok
}

// Enabled reports whether a visibility flag is unset or not explicitly false.
func (s Snapshot) Enabled(k keys.Key) bool {
	b, ok := s.Bool(k)
	return !ok || b
}

// Settings returns the raw values keyed by lowercased name.
func (s Snapshot) Settings() map[string]any {
	return maps.Clone(s.values)
}

func (s Snapshot) Keys() []string {
	return slices.Sorted(maps.Keys(s.values))
}
