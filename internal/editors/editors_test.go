package editors

import (
	"testing"

	"github.com/mcpconf/cli/internal/keys"
	"github.com/stretchr/testify/assert"
)

func TestEditors(t *testing.T) {
	t.Run("derives action keys from slug", func(t *testing.T) {
		var actual []keys.Key
		for _, e := range All() {
			actual = append(actual, e.ActionKey())
		}
		assert.Equal(t, []keys.Key{
			"showCursorAction",
			"showVsCodeAction",
			"showZedAction",
			"showSublimeAction",
		}, actual)
	})

	t.Run("parses known editor", func(t *testing.T) {
		e, ok := Parse("vscode")
		assert.True(t, ok)
		assert.Equal(t, "Visual Studio Code", e.App)
	})

	t.Run("rejects unknown editor", func(t *testing.T) {
		_, ok := Parse("vs-code")
		assert.False(t, ok)
	})

	t.Run("falls back to first priority", func(t *testing.T) {
		assert.Equal(t, All()[0], Fallback)
		assert.Equal(t, []string{"cursor", "vscode", "zed", "sublime"}, IDs())
	})
}
