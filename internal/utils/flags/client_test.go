package flags

import (
	"context"
	"os"
	"testing"

	"github.com/mcpconf/cli/internal/keys"
	"github.com/mcpconf/cli/internal/pathutil"
	"github.com/mcpconf/cli/internal/prefs"
	"github.com/mcpconf/cli/internal/resolve"
	"github.com/mcpconf/cli/internal/utils"
	"github.com/stretchr/testify/assert"
	"golang.org/x/term"
)

func TestParseClient(t *testing.T) {
	snap := prefs.NewSnapshot(map[keys.Key]any{"showWarp": false})
	clients := resolve.Assemble(Registry, snap, pathutil.Expander{Home: "/home/user", WorkDir: "/"})

	t.Run("finds visible client", func(t *testing.T) {
		c, err := ParseClient(context.Background(), clients, "cursor")
		assert.NoError(t, err)
		assert.Equal(t, "Cursor", c.DisplayName)
	})

	t.Run("throws error on hidden client", func(t *testing.T) {
		t.Cleanup(func() { utils.CmdSuggestion = "" })
		// Run test
		_, err := ParseClient(context.Background(), clients, "warp")
		// Check error
		assert.ErrorContains(t, err, "Client is hidden by preferences: warp")
		assert.Contains(t, utils.CmdSuggestion, "showWarp")
	})

	t.Run("throws error on unknown client", func(t *testing.T) {
		t.Cleanup(func() { utils.CmdSuggestion = "" })
		// Run test
		_, err := ParseClient(context.Background(), clients, "emacs")
		// Check error
		assert.ErrorContains(t, err, "Unknown client: emacs")
		assert.Contains(t, utils.CmdSuggestion, "claude-desktop-app")
	})

	t.Run("throws error on missing id without terminal", func(t *testing.T) {
		if term.IsTerminal(int(os.Stdin.Fd())) {
			t.Skip("stdin is a terminal")
		}
		_, err := ParseClient(context.Background(), clients, "")
		assert.ErrorIs(t, err, ErrMissingClient)
	})
}

func TestSubtitle(t *testing.T) {
	assert.Equal(t, "~/x", Subtitle(resolve.ResolvedClient{RawPath: "~/x"}))
	assert.Equal(t, "Set path in preferences", Subtitle(resolve.ResolvedClient{}))
}
