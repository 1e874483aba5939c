package resolve

import (
	"github.com/mcpconf/cli/internal/editors"
)

type Kind string

const (
	KindOpen     Kind = "open"
	KindCopyPath Kind = "copy-path"
	KindReveal   Kind = "reveal"
	KindSetPath  Kind = "set-path"
	KindDocs     Kind = "docs"
)

type Action struct {
	Kind     Kind            `json:"kind" yaml:"kind" toml:"kind"`
	Title    string          `json:"title" yaml:"title" toml:"title"`
	Editor   *editors.Editor `json:"editor,omitempty" yaml:"editor,omitempty" toml:"editor,omitempty"`
	Shortcut string          `json:"shortcut,omitempty" yaml:"shortcut,omitempty" toml:"shortcut,omitempty"`
}

func openAction(e editors.Editor) Action {
	return Action{
		Kind:     KindOpen,
		Title:    "Open in " + e.DisplayName,
		Editor:   &e,
		Shortcut: e.Shortcut,
	}
}

// An unconfigured client only offers to set its path, so a wrong location is
// never opened.
func buildActions(c ResolvedClient, ordered []editors.Editor) []Action {
	var result []Action
	if len(c.ExpandedPath) == 0 {
		result = append(result, Action{Kind: KindSetPath, Title: "Set Config Path…", Shortcut: "cmd+p"})
	} else {
		for _, e := range ordered {
			result = append(result, openAction(e))
		}
		result = append(result,
			Action{Kind: KindCopyPath, Title: "Copy File Path", Shortcut: "cmd+c"},
			Action{Kind: KindReveal, Title: "Show in File Browser", Shortcut: "cmd+f"},
		)
	}
	if len(c.DocURL) > 0 {
		result = append(result, Action{Kind: KindDocs, Title: "Open Documentation", Shortcut: "cmd+d"})
	}
	return result
}
