package derived

import (
	"io"
	"os"

	"github.com/go-errors/errors"
	"github.com/mcpconf/cli/internal/editors"
	"github.com/mcpconf/cli/internal/keys"
	"github.com/mcpconf/cli/internal/registry"
	"github.com/mcpconf/cli/internal/utils"
	"github.com/mcpconf/cli/internal/utils/flags"
	"github.com/olekukonko/tablewriter"
)

// Row lists the preference keys read for a single id.
type Row struct {
	Kind string `json:"kind" yaml:"kind" toml:"kind"`
	ID   string `json:"id" yaml:"id" toml:"id"`
	keys.Set
}

func Run() error {
	rows := Rows(flags.Registry)
	if utils.OutputFormat.Value == utils.OutputPretty {
		return Render(os.Stdout, rows)
	}
	return utils.EncodeOutput(utils.OutputFormat.Value, os.Stdout, rows)
}

// Rows lists editors first, then clients in registry order. Editors only
// read their action key and clients never read theirs.
func Rows(reg registry.Registry) []Row {
	var result []Row
	for _, e := range editors.All() {
		result = append(result, Row{Kind: "editor", ID: e.ID, Set: keys.Set{Action: e.ActionKey()}})
	}
	for _, c := range reg.All() {
		set := keys.Derive(c.ID)
		set.Action = ""
		result = append(result, Row{Kind: "client", ID: c.ID, Set: set})
	}
	return result
}

func Render(w io.Writer, rows []Row) error {
	table := tablewriter.NewWriter(w)
	table.Header("KIND", "ID", "VISIBILITY", "ACTION", "PATH")
	for _, r := range rows {
		if err := table.Append([]string{r.Kind, r.ID, orDash(r.Visibility), orDash(r.Action), orDash(r.Path)}); err != nil {
			return errors.Errorf("failed to append row: %w", err)
		}
	}
	if err := table.Render(); err != nil {
		return errors.Errorf("failed to render table: %w", err)
	}
	return nil
}

func orDash(k keys.Key) string {
	if len(k) == 0 {
		return "-"
	}
	return string(k)
}
