package browse

import (
	"context"

	"github.com/mcpconf/cli/internal/launch"
	"github.com/mcpconf/cli/internal/open"
	"github.com/mcpconf/cli/internal/prefs/edit"
	"github.com/mcpconf/cli/internal/resolve"
	"github.com/mcpconf/cli/internal/utils"
	"github.com/mcpconf/cli/internal/utils/flags"
	"github.com/spf13/afero"
)

// Run prompts for a client, then for one of its actions, and performs it.
func Run(ctx context.Context, fsys afero.Fs, l launch.Launcher) error {
	clients, err := flags.LoadClients(ctx, fsys)
	if err != nil {
		return err
	}
	c, err := flags.PromptClient(ctx, "Select an MCP client:", clients)
	if err != nil {
		return err
	}
	choice, err := utils.PromptChoice(ctx, c.DisplayName+" · "+flags.Subtitle(c), actionItems(c))
	if err != nil {
		return err
	}
	action := c.Actions[choice.Index]
	if action.Kind == resolve.KindSetPath {
		return edit.Run(ctx, fsys)
	}
	return open.Perform(ctx, l, launch.Host, c, action)
}

func actionItems(c resolve.ResolvedClient) []utils.PromptItem {
	items := make([]utils.PromptItem, len(c.Actions))
	for i, a := range c.Actions {
		items[i] = utils.PromptItem{Summary: a.Title, Details: a.Shortcut}
	}
	return items
}
