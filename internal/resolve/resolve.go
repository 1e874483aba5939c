// Package resolve assembles the render-ready client list from the registry
// and a preference snapshot.
package resolve

import (
	"strings"

	"github.com/mcpconf/cli/internal/editors"
	"github.com/mcpconf/cli/internal/keys"
	"github.com/mcpconf/cli/internal/pathutil"
	"github.com/mcpconf/cli/internal/prefs"
	"github.com/mcpconf/cli/internal/registry"
)

// ResolvedClient is recomputed on every render and never mutated.
type ResolvedClient struct {
	registry.Client `yaml:",inline"`
	// Trimmed path from preferences or the default; may be empty.
	RawPath string `json:"path" yaml:"path" toml:"path"`
	// Absolute form of RawPath; empty when RawPath is empty.
	ExpandedPath string   `json:"expanded_path,omitempty" yaml:"expanded_path,omitempty" toml:"expanded_path,omitempty"`
	Actions      []Action `json:"actions" yaml:"actions" toml:"actions"`
}

// Primary returns the first action offered for the item.
func (c ResolvedClient) Primary() (Action, bool) {
	if len(c.Actions) == 0 {
		return Action{}, false
	}
	return c.Actions[0], true
}

// Action returns the first action of the given kind.
func (c ResolvedClient) Action(kind Kind) (Action, bool) {
	for _, a := range c.Actions {
		if a.Kind == kind {
			return a, true
		}
	}
	return Action{}, false
}

// OpenAction returns the open action for an editor, if that editor is enabled.
func (c ResolvedClient) OpenAction(editorID string) (Action, bool) {
	for _, a := range c.Actions {
		if a.Kind == KindOpen && a.Editor != nil && a.Editor.ID == editorID {
			return a, true
		}
	}
	return Action{}, false
}

func (c ResolvedClient) Resolution() Resolution {
	return Resolution{Client: c.Client, Path: c.ExpandedPath}
}

// Assemble filters the registry by visibility, resolves every surviving
// client's path and derives its action set. Output order follows the
// registry.
func Assemble(reg registry.Registry, snap prefs.Snapshot, exp pathutil.Expander) []ResolvedClient {
	enabled := EnabledEditors(snap)
	primary, ok := PrimaryEditor(snap, enabled)
	ordered := orderEditors(enabled, primary, ok)
	var result []ResolvedClient
	for _, c := range reg.All() {
		set := keys.Derive(c.ID)
		if !snap.Enabled(set.Visibility) {
			continue
		}
		rc := ResolvedClient{Client: c, RawPath: rawPath(snap, set.Path, c.DefaultPath)}
		if len(rc.RawPath) > 0 {
			rc.ExpandedPath = exp.Expand(rc.RawPath)
		}
		rc.Actions = buildActions(rc, ordered)
		result = append(result, rc)
	}
	return result
}

func rawPath(snap prefs.Snapshot, key keys.Key, fallback string) string {
	if custom, ok := snap.String(key); ok {
		if trimmed := strings.TrimSpace(custom); len(trimmed) > 0 {
			return trimmed
		}
	}
	return strings.TrimSpace(fallback)
}

// Find returns the resolved client with the given id.
func Find(clients []ResolvedClient, id string) (ResolvedClient, bool) {
	for _, c := range clients {
		if c.ID == id {
			return c, true
		}
	}
	return ResolvedClient{}, false
}

// EnabledEditors returns the editors whose action flag is not disabled, in
// priority order.
func EnabledEditors(snap prefs.Snapshot) []editors.Editor {
	var result []editors.Editor
	for _, e := range editors.All() {
		if snap.Enabled(e.ActionKey()) {
			result = append(result, e)
		}
	}
	return result
}

// PrimaryEditor picks the preferred editor if it is enabled, otherwise the
// first enabled editor. It returns false when every editor is disabled.
func PrimaryEditor(snap prefs.Snapshot, enabled []editors.Editor) (editors.Editor, bool) {
	preferred := editors.Fallback.ID
	if id, ok := snap.String(keys.DefaultEditor); ok && len(strings.TrimSpace(id)) > 0 {
		preferred = strings.TrimSpace(id)
	}
	for _, e := range enabled {
		if e.ID == preferred {
			return e, true
		}
	}
	if len(enabled) > 0 {
		return enabled[0], true
	}
	return editors.Editor{}, false
}

func orderEditors(enabled []editors.Editor, primary editors.Editor, ok bool) []editors.Editor {
	if !ok {
		return nil
	}
	result := []editors.Editor{primary}
	for _, e := range enabled {
		if e.ID != primary.ID {
			result = append(result, e)
		}
	}
	return result
}
