package pathutil

import (
	"path/filepath"
	"testing"

	"github.com/mitchellh/go-homedir"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandHome(t *testing.T) {
	t.Run("expands tilde slash", func(t *testing.T) {
		assert.Equal(t, "/home/user/bar", ExpandHome("~/bar", "/home/user"))
	})

	t.Run("expands bare tilde", func(t *testing.T) {
		assert.Equal(t, "/home/user", ExpandHome("~", "/home/user"))
		assert.Equal(t, "/home/user/foo", ExpandHome("~foo", "/home/user"))
	})

	t.Run("leaves other paths untouched", func(t *testing.T) {
		assert.Equal(t, "a/~/b", ExpandHome("a/~/b", "/home/user"))
	})
}

func TestExpand(t *testing.T) {
	exp := Expander{Home: "/home/user", WorkDir: "/work/dir"}

	t.Run("expands home shorthand", func(t *testing.T) {
		assert.Equal(t, "/home/user/.cursor/mcp.json", exp.Expand("~/.cursor/mcp.json"))
	})

	t.Run("equals expansion of explicit home", func(t *testing.T) {
		assert.Equal(t, exp.Expand(exp.Home+"/a/b"), exp.Expand("~/a/b"))
	})

	t.Run("trims surrounding whitespace", func(t *testing.T) {
		assert.Equal(t, exp.Expand("~/x"), exp.Expand(" ~/x "))
		assert.Equal(t, "/etc/mcp.json", exp.Expand("\t/etc/mcp.json\n"))
	})

	t.Run("normalizes redundant segments", func(t *testing.T) {
		assert.Equal(t, "/home/user/b", exp.Expand("~/a/../b/./"))
		assert.Equal(t, "/etc/x", exp.Expand("//etc//x"))
	})

	t.Run("resolves relative to workdir", func(t *testing.T) {
		assert.Equal(t, "/work/dir/.mcp.json", exp.Expand(".mcp.json"))
		assert.Equal(t, "/work/other", exp.Expand("../other"))
	})

	t.Run("is idempotent on absolute paths", func(t *testing.T) {
		for _, p := range []string{"~/a", "/abs/./path", "rel/../x", " ~ "} {
			once := exp.Expand(p)
			assert.True(t, filepath.IsAbs(once))
			assert.Equal(t, once, exp.Expand(once))
		}
	})
}

func TestNewExpander(t *testing.T) {
	homedir.DisableCache = true
	t.Cleanup(func() { homedir.DisableCache = false })
	t.Setenv("HOME", "/tmp/home")
	// Run test
	exp, err := NewExpander()
	// Check error
	require.NoError(t, err)
	assert.Equal(t, "/tmp/home/x", exp.Expand("~/x"))
	assert.True(t, filepath.IsAbs(exp.WorkDir))
}
