package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-errors/errors"
	"github.com/spf13/afero"
)

// Assigned at link time.
var Version string

var (
	SuggestDebugFlag = fmt.Sprintf("Try rerunning the command with %s to troubleshoot the error.", Aqua("--debug"))
	// Printed to stderr after the command finishes, successfully or not.
	CmdSuggestion string
)

func SuggestEditPrefs() string {
	return fmt.Sprintf("Run %s to set the config path.", Aqua("mcpconf prefs edit"))
}

func MkdirIfNotExistFS(fsys afero.Fs, path string) error {
	if err := fsys.MkdirAll(path, 0755); err != nil && !errors.Is(err, os.ErrExist) {
		return errors.Errorf("failed to mkdir: %w", err)
	}
	return nil
}

func WriteFile(path string, contents []byte, fsys afero.Fs) error {
	if err := MkdirIfNotExistFS(fsys, filepath.Dir(path)); err != nil {
		return err
	}
	if err := afero.WriteFile(fsys, path, contents, 0644); err != nil {
		return errors.Errorf("failed to write file: %w", err)
	}
	return nil
}

// Escapes pipes so the value can be embedded in a markdown table cell.
func EscapeCell(s string) string {
	return strings.ReplaceAll(s, "|", "\\|")
}
