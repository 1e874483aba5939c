package prefs

import (
	"testing"

	"github.com/mcpconf/cli/internal/keys"
	"github.com/stretchr/testify/assert"
)

func TestSnapshot(t *testing.T) {
	snap := NewSnapshot(map[keys.Key]any{
		"showCursorAction": false,
		"showZedAction":    "FALSE",
		"showKiro":         "nope",
		"cursorPath":       " ~/.cursor/mcp.json ",
		"kiroPath":         42,
		"warpPath":         nil,
	})

	t.Run("reads bool flags", func(t *testing.T) {
		val, ok := snap.Bool("showCursorAction")
		assert.True(t, ok)
		assert.False(t, val)
	})

	t.Run("parses bool strings from env", func(t *testing.T) {
		val, ok := snap.Bool("showZedAction")
		assert.True(t, ok)
		assert.False(t, val)
	})

	t.Run("treats unparsable flag as absent", func(t *testing.T) {
		_, ok := snap.Bool("showKiro")
		assert.False(t, ok)
		assert.True(t, snap.Enabled("showKiro"))
	})

	t.Run("defaults unset flags to enabled", func(t *testing.T) {
		assert.True(t, snap.Enabled("showVsCodeAction"))
		assert.False(t, snap.Enabled("showCursorAction"))
	})

	t.Run("matches keys case insensitively", func(t *testing.T) {
		val, ok := snap.String("CURSORPATH")
		assert.True(t, ok)
		assert.Equal(t, " ~/.cursor/mcp.json ", val)
	})

	t.Run("treats non string value as absent", func(t *testing.T) {
		_, ok := snap.String("kiroPath")
		assert.False(t, ok)
		_, ok = snap.Get("warpPath")
		assert.False(t, ok)
	})

	t.Run("lists folded keys", func(t *testing.T) {
		assert.Equal(t, []string{"cursorpath", "kiropath", "showcursoraction", "showkiro", "showzedaction", "warppath"}, snap.Keys())
	})
}
