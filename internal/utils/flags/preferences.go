package flags

import (
	"context"

	"github.com/mcpconf/cli/internal/pathutil"
	"github.com/mcpconf/cli/internal/prefs"
	"github.com/mcpconf/cli/internal/registry"
	"github.com/mcpconf/cli/internal/resolve"
	"github.com/spf13/afero"
	"github.com/spf13/viper"
)

// Constructed once at process start and never mutated.
var Registry = registry.Default()

// PreferencePath returns the --prefs flag, falling back to the XDG location.
func PreferencePath() string {
	if path := viper.GetString("PREFS"); len(path) > 0 {
		return path
	}
	return prefs.DefaultPath()
}

func LoadSnapshot(fsys afero.Fs) (prefs.Snapshot, error) {
	return prefs.Load(fsys, PreferencePath(), prefs.KnownKeys(Registry))
}

// LoadClients reads a fresh preference snapshot and assembles the client
// list from it.
func LoadClients(ctx context.Context, fsys afero.Fs) ([]resolve.ResolvedClient, error) {
	if err := Registry.Validate(ctx); err != nil {
		return nil, err
	}
	snap, err := LoadSnapshot(fsys)
	if err != nil {
		return nil, err
	}
	exp, err := pathutil.NewExpander()
	if err != nil {
		return nil, err
	}
	return resolve.Assemble(Registry, snap, exp), nil
}
