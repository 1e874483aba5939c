// Package keys derives the preference keys mcpconf reads for a client or
// editor id. Every function is a pure string transform.
package keys

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Key names a value in the preference store.
type Key string

const DefaultEditor Key = "defaultEditor"

// Set holds every key derived from a single id.
type Set struct {
	// Hides the whole list row when false.
	Visibility Key `json:"visibility" yaml:"visibility" toml:"visibility"`
	// Hides a single editor action when false.
	Action Key `json:"action" yaml:"action" toml:"action"`
	// Overrides the configuration file path.
	Path Key `json:"path" yaml:"path" toml:"path"`
}

// CamelCase deletes each hyphen and upper-cases the letter following it,
// so "claude-desktop-app" becomes "claudeDesktopApp". A hyphen not followed
// by a lowercase letter is kept.
func CamelCase(id string) string {
	var b strings.Builder
	b.Grow(len(id))
	for i := 0; i < len(id); i++ {
		if id[i] == '-' && i+1 < len(id) && 'a' <= id[i+1] && id[i+1] <= 'z' {
			b.WriteByte(id[i+1] - 'a' + 'A')
			i++
			continue
		}
		b.WriteByte(id[i])
	}
	return b.String()
}

func upperFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

// Path returns "<camel>Path", e.g. "claudeDesktopAppPath".
func Path(id string) Key {
	return Key(CamelCase(id) + "Path")
}

// Action returns "show<Camel>Action", e.g. "showVsCodeAction".
func Action(id string) Key {
	return Key("show" + upperFirst(CamelCase(id)) + "Action")
}

// Visibility returns "show<Camel>", e.g. "showClaudeDesktopApp".
func Visibility(id string) Key {
	return Key("show" + upperFirst(CamelCase(id)))
}

func Derive(id string) Set {
	return Set{
		Visibility: Visibility(id),
		Action:     Action(id),
		Path:       Path(id),
	}
}

// All lists the keys in a fixed order.
func (s Set) All() []Key {
	return []Key{s.Visibility, s.Action, s.Path}
}
