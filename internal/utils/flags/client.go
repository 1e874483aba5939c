package flags

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/go-errors/errors"
	"github.com/mcpconf/cli/internal/keys"
	"github.com/mcpconf/cli/internal/resolve"
	"github.com/mcpconf/cli/internal/utils"
	"golang.org/x/term"
)

var ErrMissingClient = errors.New("Client id not provided. Pass one of the ids listed by mcpconf list.")

// ParseClient selects a client by id, prompting for one on an interactive
// terminal when id is empty.
func ParseClient(ctx context.Context, clients []resolve.ResolvedClient, id string) (resolve.ResolvedClient, error) {
	if len(id) == 0 {
		if term.IsTerminal(int(os.Stdin.Fd())) {
			return PromptClient(ctx, "Select an MCP client:", clients)
		}
		return resolve.ResolvedClient{}, errors.New(ErrMissingClient)
	}
	if c, ok := resolve.Find(clients, id); ok {
		return c, nil
	}
	if _, ok := Registry.Lookup(id); ok {
		utils.CmdSuggestion = fmt.Sprintf("Remove %s from %s to show it again.", utils.Aqua(string(keys.Visibility(id))), utils.Bold(PreferencePath()))
		return resolve.ResolvedClient{}, errors.Errorf("Client is hidden by preferences: %s", id)
	}
	utils.CmdSuggestion = "Supported clients: " + strings.Join(Registry.IDs(), ", ")
	return resolve.ResolvedClient{}, errors.Errorf("Unknown client: %s", id)
}

func PromptClient(ctx context.Context, title string, clients []resolve.ResolvedClient) (resolve.ResolvedClient, error) {
	if len(clients) == 0 {
		return resolve.ResolvedClient{}, errors.New("every client is hidden by preferences")
	}
	items := make([]utils.PromptItem, len(clients))
	for i, c := range clients {
		items[i] = utils.PromptItem{Summary: c.DisplayName, Details: Subtitle(c)}
	}
	choice, err := utils.PromptChoice(ctx, title, items)
	if err != nil {
		return resolve.ResolvedClient{}, err
	}
	return clients[choice.Index], nil
}

// Subtitle is the configured path as typed, or a hint to configure one.
func Subtitle(c resolve.ResolvedClient) string {
	if len(c.RawPath) > 0 {
		return c.RawPath
	}
	return "Set path in preferences"
}
