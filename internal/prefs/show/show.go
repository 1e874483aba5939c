package show

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/mcpconf/cli/internal/prefs"
	"github.com/mcpconf/cli/internal/utils"
	"github.com/mcpconf/cli/internal/utils/flags"
	"github.com/spf13/afero"
)

func Run(ctx context.Context, fsys afero.Fs) error {
	snap, err := flags.LoadSnapshot(fsys)
	if err != nil {
		return err
	}
	utils.Info(1, "Effective preferences from: %s", flags.PreferencePath())
	return Render(os.Stdout, utils.OutputFormat.Value, snap)
}

func Render(w io.Writer, format string, snap prefs.Snapshot) error {
	switch format {
	case utils.OutputPretty:
		return utils.RenderTable(w, makeTable(snap))
	case utils.OutputEnv:
		env := make(map[string]string, len(snap.Keys()))
		for k, v := range snap.Settings() {
			env[k] = fmt.Sprint(v)
		}
		return utils.EncodeOutput(format, w, env)
	}
	return utils.EncodeOutput(format, w, snap.Settings())
}

func makeTable(snap prefs.Snapshot) string {
	table := `|KEY|VALUE|
|-|-|
`
	settings := snap.Settings()
	for _, k := range snap.Keys() {
		table += fmt.Sprintf("|`%s`|`%s`|\n", k, utils.EscapeCell(fmt.Sprint(settings[k])))
	}
	return table
}
