// Package editors enumerates the external editors a configuration file can
// be opened with.
package editors

import (
	"github.com/mcpconf/cli/internal/keys"
)

type Editor struct {
	// Value of the defaultEditor preference.
	ID string `json:"id" yaml:"id" toml:"id"`
	// Hyphenated id from which the action key is derived.
	Slug        string `json:"-" yaml:"-" toml:"-"`
	DisplayName string `json:"name" yaml:"name" toml:"name"`
	// Application name understood by macOS `open -a`.
	App string `json:"-" yaml:"-" toml:"-"`
	// Launcher binary on other platforms.
	Binary   string `json:"-" yaml:"-" toml:"-"`
	Shortcut string `json:"shortcut,omitempty" yaml:"shortcut,omitempty" toml:"shortcut,omitempty"`
}

func (e Editor) ActionKey() keys.Key {
	return keys.Action(e.Slug)
}

var (
	Cursor = Editor{
		ID:          "cursor",
		Slug:        "cursor",
		DisplayName: "Cursor",
		App:         "Cursor",
		Binary:      "cursor",
	}
	VSCode = Editor{
		ID:          "vscode",
		Slug:        "vs-code",
		DisplayName: "VS Code",
		App:         "Visual Studio Code",
		Binary:      "code",
		Shortcut:    "cmd+v",
	}
	Zed = Editor{
		ID:          "zed",
		Slug:        "zed",
		DisplayName: "Zed",
		App:         "Zed",
		Binary:      "zed",
		Shortcut:    "cmd+z",
	}
	Sublime = Editor{
		ID:          "sublime",
		Slug:        "sublime",
		DisplayName: "Sublime Text",
		App:         "Sublime Text",
		Binary:      "subl",
		Shortcut:    "cmd+s",
	}

	// Used when defaultEditor is unset.
	Fallback = Cursor
)

// All returns the editors in priority order.
func All() []Editor {
	return []Editor{Cursor, VSCode, Zed, Sublime}
}

func IDs() []string {
	all := All()
	ids := make([]string, len(all))
	for i, e := range all {
		ids[i] = e.ID
	}
	return ids
}

func Parse(id string) (Editor, bool) {
	for _, e := range All() {
		if e.ID == id {
			return e, true
		}
	}
	return Editor{}, false
}
