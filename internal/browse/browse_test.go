package browse

import (
	"testing"

	"github.com/mcpconf/cli/internal/keys"
	"github.com/mcpconf/cli/internal/pathutil"
	"github.com/mcpconf/cli/internal/prefs"
	"github.com/mcpconf/cli/internal/registry"
	"github.com/mcpconf/cli/internal/resolve"
	"github.com/mcpconf/cli/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActionItems(t *testing.T) {
	reg := registry.New(
		registry.Client{ID: "kiro", DisplayName: "Kiro", Icon: registry.IconCode, DefaultPath: "~/.kiro/settings/mcp.json"},
		registry.Client{ID: "qoder", DisplayName: "Qoder", Icon: registry.IconCode},
	)
	snap := prefs.NewSnapshot(map[keys.Key]any{
		"defaultEditor":    "sublime",
		"showVsCodeAction": false,
		"showCursorAction": false,
	})
	clients := resolve.Assemble(reg, snap, pathutil.Expander{Home: "/home/me", WorkDir: "/"})
	require.Len(t, clients, 2)

	t.Run("lists configured actions in order", func(t *testing.T) {
		// Run test
		items := actionItems(clients[0])
		// Check result
		assert.Equal(t, []utils.PromptItem{
			{Summary: "Open in Sublime Text", Details: "cmd+s"},
			{Summary: "Open in Zed", Details: "cmd+z"},
			{Summary: "Copy File Path", Details: "cmd+c"},
			{Summary: "Show in File Browser", Details: "cmd+f"},
		}, items)
	})

	t.Run("offers only set path when unconfigured", func(t *testing.T) {
		// Run test
		items := actionItems(clients[1])
		// Check result
		assert.Equal(t, []utils.PromptItem{{Summary: "Set Config Path…", Details: "cmd+p"}}, items)
	})
}
