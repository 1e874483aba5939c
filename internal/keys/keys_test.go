package keys

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCamelCase(t *testing.T) {
	t.Run("merges hyphenated tokens", func(t *testing.T) {
		assert.Equal(t, "claudeDesktopApp", CamelCase("claude-desktop-app"))
		assert.Equal(t, "vsCode", CamelCase("vs-code"))
	})

	t.Run("leaves single token as is", func(t *testing.T) {
		assert.Equal(t, "cursor", CamelCase("cursor"))
		assert.Equal(t, "", CamelCase(""))
	})

	t.Run("keeps hyphen without following letter", func(t *testing.T) {
		assert.Equal(t, "a-1", CamelCase("a-1"))
		assert.Equal(t, "trailing-", CamelCase("trailing-"))
	})

	t.Run("is idempotent", func(t *testing.T) {
		once := CamelCase("gemini-cli")
		assert.Equal(t, once, CamelCase(once))
	})
}

func TestDerive(t *testing.T) {
	t.Run("derives keys for multi token id", func(t *testing.T) {
		set := Derive("claude-desktop-app")
		assert.Equal(t, Key("claudeDesktopAppPath"), set.Path)
		assert.Equal(t, Key("showClaudeDesktopAppAction"), set.Action)
		assert.Equal(t, Key("showClaudeDesktopApp"), set.Visibility)
	})

	t.Run("derives editor action keys", func(t *testing.T) {
		assert.Equal(t, Key("showCursorAction"), Action("cursor"))
		assert.Equal(t, Key("showVsCodeAction"), Action("vs-code"))
		assert.Equal(t, Key("showZedAction"), Action("zed"))
		assert.Equal(t, Key("showSublimeAction"), Action("sublime"))
	})

	t.Run("is deterministic", func(t *testing.T) {
		assert.Equal(t, Derive("copilot-cli"), Derive("copilot-cli"))
	})

	t.Run("lists keys in order", func(t *testing.T) {
		set := Derive("kiro")
		assert.Equal(t, []Key{"showKiro", "showKiroAction", "kiroPath"}, set.All())
	})
}
