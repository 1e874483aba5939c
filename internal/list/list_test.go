package list

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/mcpconf/cli/internal/keys"
	"github.com/mcpconf/cli/internal/pathutil"
	"github.com/mcpconf/cli/internal/prefs"
	"github.com/mcpconf/cli/internal/registry"
	"github.com/mcpconf/cli/internal/resolve"
	"github.com/mcpconf/cli/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func testClients(values map[keys.Key]any) []resolve.ResolvedClient {
	reg := registry.New(
		registry.Client{ID: "cursor", DisplayName: "Cursor", Icon: registry.IconCode, DefaultPath: "~/.cursor/mcp.json"},
		registry.Client{ID: "warp", DisplayName: "Warp", Icon: registry.IconTerminal},
	)
	exp := pathutil.Expander{Home: "/home/user", WorkDir: "/work"}
	return resolve.Assemble(reg, prefs.NewSnapshot(values), exp)
}

func TestRender(t *testing.T) {
	clients := testClients(nil)

	t.Run("renders pretty table", func(t *testing.T) {
		var out bytes.Buffer
		// Run test
		err := Render(&out, utils.OutputPretty, clients)
		// Check error
		assert.NoError(t, err)
		assert.Contains(t, out.String(), "~/.cursor/mcp.json")
		assert.Contains(t, out.String(), "Open in Cursor")
		assert.Contains(t, out.String(), "Set path in preferences")
		assert.Contains(t, out.String(), "Set Config Path…")
	})

	t.Run("encodes json", func(t *testing.T) {
		var out bytes.Buffer
		// Run test
		err := Render(&out, utils.OutputJson, clients)
		// Check error
		require.NoError(t, err)
		var decoded []map[string]any
		require.NoError(t, json.Unmarshal(out.Bytes(), &decoded))
		require.Len(t, decoded, 2)
		assert.Equal(t, "cursor", decoded[0]["id"])
		assert.Equal(t, "/home/user/.cursor/mcp.json", decoded[0]["expanded_path"])
		assert.NotContains(t, decoded[1], "expanded_path")
	})

	t.Run("encodes yaml with inline client", func(t *testing.T) {
		var out bytes.Buffer
		// Run test
		err := Render(&out, utils.OutputYaml, clients)
		// Check error
		require.NoError(t, err)
		var decoded []map[string]any
		require.NoError(t, yaml.Unmarshal(out.Bytes(), &decoded))
		assert.Equal(t, "Warp", decoded[1]["name"])
	})

	t.Run("encodes toml", func(t *testing.T) {
		var out bytes.Buffer
		// Run test
		err := Render(&out, utils.OutputToml, clients)
		// Check error
		assert.NoError(t, err)
		assert.Contains(t, out.String(), "[[clients]]")
	})

	t.Run("encodes env with expanded paths", func(t *testing.T) {
		var out bytes.Buffer
		// Run test
		err := Render(&out, utils.OutputEnv, clients)
		// Check error
		assert.NoError(t, err)
		assert.Equal(t, "cursorPath=\"/home/user/.cursor/mcp.json\"\n", out.String())
	})

	t.Run("encodes empty list as array", func(t *testing.T) {
		var out bytes.Buffer
		// Run test
		err := Render(&out, utils.OutputJson, testClients(map[keys.Key]any{"showCursor": false, "showWarp": false}))
		// Check error
		assert.NoError(t, err)
		assert.Equal(t, "[]\n", out.String())
	})
}

func TestMakeTable(t *testing.T) {
	clients := testClients(map[keys.Key]any{"cursorPath": "~/a|b.json"})
	table := makeTable(clients)
	assert.Contains(t, table, "|`Cursor`|`cursor`|`~/a\\|b.json`|`Open in Cursor`|")
	assert.Contains(t, table, "|`Warp`|`warp`|`Set path in preferences`|`Set Config Path…`|")
}
