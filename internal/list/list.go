package list

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/mcpconf/cli/internal/keys"
	"github.com/mcpconf/cli/internal/prefs"
	"github.com/mcpconf/cli/internal/resolve"
	"github.com/mcpconf/cli/internal/utils"
	"github.com/mcpconf/cli/internal/utils/flags"
	"github.com/spf13/afero"
)

func Run(ctx context.Context, fsys afero.Fs) error {
	clients, err := flags.LoadClients(ctx, fsys)
	if err != nil {
		return err
	}
	return Render(os.Stdout, utils.OutputFormat.Value, clients)
}

// Watch renders the list, then renders it again from a fresh snapshot
// every time the preference file changes.
func Watch(ctx context.Context, fsys afero.Fs) error {
	if err := Run(ctx, fsys); err != nil {
		return err
	}
	return prefs.Watch(ctx, flags.PreferencePath(), func() {
		fmt.Fprintln(os.Stderr, "Preferences changed, reloading...")
		if err := Run(ctx, fsys); err != nil {
			fmt.Fprintln(os.Stderr, utils.Red(err.Error()))
		}
	})
}

func Render(w io.Writer, format string, clients []resolve.ResolvedClient) error {
	switch format {
	case utils.OutputPretty:
		return utils.RenderTable(w, makeTable(clients))
	case utils.OutputEnv:
		return utils.EncodeOutput(format, w, envMap(clients))
	case utils.OutputToml:
		return utils.EncodeOutput(format, w, struct {
			Clients []resolve.ResolvedClient `toml:"clients"`
		}{
			Clients: clients,
		})
	}
	if clients == nil {
		clients = []resolve.ResolvedClient{}
	}
	return utils.EncodeOutput(format, w, clients)
}

func makeTable(clients []resolve.ResolvedClient) string {
	table := `|CLIENT|ID|CONFIG PATH|PRIMARY ACTION|
|-|-|-|-|
`
	for _, c := range clients {
		primary := "-"
		if a, ok := c.Primary(); ok {
			primary = a.Title
		}
		table += fmt.Sprintf(
			"|`%s`|`%s`|`%s`|`%s`|\n",
			utils.EscapeCell(c.DisplayName),
			c.ID,
			utils.EscapeCell(flags.Subtitle(c)),
			primary,
		)
	}
	return table
}

// Maps each path key to the expanded path, skipping unconfigured clients.
func envMap(clients []resolve.ResolvedClient) map[string]string {
	result := make(map[string]string, len(clients))
	for _, c := range clients {
		if len(c.ExpandedPath) > 0 {
			result[string(keys.Path(c.ID))] = c.ExpandedPath
		}
	}
	return result
}
