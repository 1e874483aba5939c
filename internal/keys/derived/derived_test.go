package derived

import (
	"bytes"
	"testing"

	"github.com/mcpconf/cli/internal/keys"
	"github.com/mcpconf/cli/internal/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRows(t *testing.T) {
	reg := registry.New(registry.Client{ID: "claude-desktop-app", DisplayName: "Claude Desktop", Icon: registry.IconCode})
	// Run test
	rows := Rows(reg)
	// Check result
	require.Len(t, rows, 5)
	assert.Equal(t, Row{Kind: "editor", ID: "vscode", Set: keys.Set{Action: "showVsCodeAction"}}, rows[1])
	assert.Equal(t, Row{Kind: "client", ID: "claude-desktop-app", Set: keys.Set{
		Visibility: "showClaudeDesktopApp",
		Path:       "claudeDesktopAppPath",
	}}, rows[4])
}

func TestRender(t *testing.T) {
	var out bytes.Buffer
	// Run test
	err := Render(&out, Rows(registry.Default()))
	// Check error
	assert.NoError(t, err)
	assert.Contains(t, out.String(), "showSublimeAction")
	assert.Contains(t, out.String(), "copilotVscodePath")
	assert.Contains(t, out.String(), "showFactoryCli")
}
