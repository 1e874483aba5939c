package prefs

import (
	"fmt"
	"strings"

	"github.com/mcpconf/cli/internal/editors"
	"github.com/mcpconf/cli/internal/keys"
	"github.com/mcpconf/cli/internal/registry"
)

// Template renders a commented preference file listing every key.
func Template(reg registry.Registry) string {
	var b strings.Builder
	b.WriteString("# mcpconf preferences. Uncomment a line to override its default.\n\n")
	fmt.Fprintf(&b, "# One of: %s\n", strings.Join(editors.IDs(), ", "))
	fmt.Fprintf(&b, "# %s = %q\n\n", keys.DefaultEditor, editors.Fallback.ID)
	b.WriteString("# Editor actions\n")
	for _, e := range editors.All() {
		fmt.Fprintf(&b, "# %s = true\n", e.ActionKey())
	}
	for _, c := range reg.All() {
		set := keys.Derive(c.ID)
		fmt.Fprintf(&b, "\n# %s\n", c.DisplayName)
		fmt.Fprintf(&b, "# %s = true\n", set.Visibility)
		fmt.Fprintf(&b, "# %s = %q\n", set.Path, c.DefaultPath)
	}
	return b.String()
}
