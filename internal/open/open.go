package open

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-errors/errors"
	"github.com/mcpconf/cli/internal/editors"
	"github.com/mcpconf/cli/internal/keys"
	"github.com/mcpconf/cli/internal/launch"
	"github.com/mcpconf/cli/internal/resolve"
	"github.com/mcpconf/cli/internal/utils"
	"github.com/mcpconf/cli/internal/utils/flags"
	"github.com/spf13/afero"
)

// Run opens the client's config file with editorID, or with the primary
// editor when editorID is empty.
func Run(ctx context.Context, fsys afero.Fs, id, editorID string, l launch.Launcher) error {
	c, err := loadClient(ctx, fsys, id)
	if err != nil {
		return err
	}
	action, err := findOpenAction(c, editorID)
	if err != nil {
		return err
	}
	return Perform(ctx, l, launch.Host, c, action)
}

func Reveal(ctx context.Context, fsys afero.Fs, id string, l launch.Launcher) error {
	return runKind(ctx, fsys, id, l, resolve.KindReveal)
}

func CopyPath(ctx context.Context, fsys afero.Fs, id string, l launch.Launcher) error {
	return runKind(ctx, fsys, id, l, resolve.KindCopyPath)
}

func Docs(ctx context.Context, fsys afero.Fs, id string, l launch.Launcher) error {
	return runKind(ctx, fsys, id, l, resolve.KindDocs)
}

func runKind(ctx context.Context, fsys afero.Fs, id string, l launch.Launcher, kind resolve.Kind) error {
	c, err := loadClient(ctx, fsys, id)
	if err != nil {
		return err
	}
	action, ok := c.Action(kind)
	if !ok {
		action = resolve.Action{Kind: kind}
	}
	return Perform(ctx, l, launch.Host, c, action)
}

func loadClient(ctx context.Context, fsys afero.Fs, id string) (resolve.ResolvedClient, error) {
	clients, err := flags.LoadClients(ctx, fsys)
	if err != nil {
		return resolve.ResolvedClient{}, err
	}
	return flags.ParseClient(ctx, clients, id)
}

func findOpenAction(c resolve.ResolvedClient, editorID string) (resolve.Action, error) {
	if len(editorID) == 0 {
		if a, ok := c.Primary(); ok && a.Kind == resolve.KindOpen {
			return a, nil
		}
		return resolve.Action{Kind: resolve.KindOpen}, nil
	}
	if a, ok := c.OpenAction(editorID); ok {
		return a, nil
	}
	e, ok := editors.Parse(editorID)
	if !ok {
		utils.CmdSuggestion = "Supported editors: " + strings.Join(editors.IDs(), ", ")
		return resolve.Action{}, errors.Errorf("Unknown editor: %s", editorID)
	}
	if len(c.ExpandedPath) == 0 {
		return resolve.Action{Kind: resolve.KindOpen, Editor: &e}, nil
	}
	utils.CmdSuggestion = fmt.Sprintf("Remove %s from %s to enable it.", utils.Aqua(string(e.ActionKey())), utils.Bold(flags.PreferencePath()))
	return resolve.Action{}, errors.Errorf("Editor is disabled by preferences: %s", e.DisplayName)
}

// Perform executes a single action for c and prints the outcome
// notification. A failed launch returns the failure title wrapping the
// underlying error.
func Perform(ctx context.Context, l launch.Launcher, b launch.Builder, c resolve.ResolvedClient, a resolve.Action) error {
	var outcome launch.Outcome
	switch a.Kind {
	case resolve.KindOpen, resolve.KindReveal:
		path, err := c.Resolution().Require()
		if err != nil {
			utils.CmdSuggestion = utils.SuggestEditPrefs()
			return err
		}
		if a.Kind == resolve.KindReveal {
			outcome = <-l.Start(ctx, b.Reveal(path))
		} else if a.Editor == nil {
			utils.CmdSuggestion = fmt.Sprintf("Remove %s from %s to enable an editor.", utils.Aqua(string(editors.Fallback.ActionKey())), utils.Bold(flags.PreferencePath()))
			return errors.New("Every editor is disabled by preferences.")
		} else {
			outcome = <-l.Start(ctx, b.OpenWith(*a.Editor, path))
		}
	case resolve.KindCopyPath:
		if _, err := c.Resolution().Require(); err != nil {
			utils.CmdSuggestion = utils.SuggestEditPrefs()
			return err
		}
		outcome = l.CopyPath(c.RawPath)
	case resolve.KindDocs:
		if len(c.DocURL) == 0 {
			return errors.Errorf("No documentation link for %s", c.DisplayName)
		}
		outcome = <-l.Start(ctx, b.Browse(c.DocURL))
	case resolve.KindSetPath:
		utils.CmdSuggestion = fmt.Sprintf("Set %s in %s.", utils.Aqua(string(keys.Path(c.ID))), utils.Bold(flags.PreferencePath()))
		return errors.Errorf("Set the config path for %s in preferences: %w", c.DisplayName, resolve.ErrUnconfigured)
	default:
		return errors.Errorf("Unsupported action: %s", a.Kind)
	}
	if outcome.Err != nil {
		return errors.Errorf("%s: %w", outcome.Title(), outcome.Err)
	}
	utils.Success("%s", outcome.Title())
	return nil
}
