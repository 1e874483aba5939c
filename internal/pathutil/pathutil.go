// Package pathutil expands user supplied configuration paths into absolute
// filesystem paths. Expansion is purely syntactic; nothing is stat'ed.
package pathutil

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/go-errors/errors"
	"github.com/mitchellh/go-homedir"
)

// Expander resolves paths against a fixed home and working directory, so
// the same input always yields the same output.
type Expander struct {
	Home    string
	WorkDir string
}

// NewExpander captures the current home and working directories.
func NewExpander() (Expander, error) {
	home, err := homedir.Dir()
	if err != nil {
		return Expander{}, errors.Errorf("failed to get $HOME directory: %w", err)
	}
	cwd, err := os.Getwd()
	if err != nil {
		return Expander{}, errors.Errorf("failed to get working directory: %w", err)
	}
	return Expander{Home: home, WorkDir: cwd}, nil
}

// ExpandHome replaces a leading "~/" or "~" with home. Paths like "~foo"
// are joined as home/foo.
func ExpandHome(orig, home string) string {
	s := strings.TrimSpace(orig)
	if rest, ok := strings.CutPrefix(s, "~/"); ok {
		return filepath.Join(home, rest)
	}
	if rest, ok := strings.CutPrefix(s, "~"); ok {
		return filepath.Join(home, rest)
	}
	return s
}

// Expand returns the absolute, cleaned form of raw. It never fails; the
// caller must not pass an empty path.
func (e Expander) Expand(raw string) string {
	s := ExpandHome(raw, e.Home)
	if filepath.IsAbs(s) {
		return filepath.Clean(s)
	}
	return filepath.Join(e.WorkDir, s)
}
