package edit

import (
	"context"
	"os"
	"os/exec"

	"github.com/go-errors/errors"
	"github.com/mattn/go-shellwords"
	"github.com/mcpconf/cli/internal/prefs"
	"github.com/mcpconf/cli/internal/utils"
	"github.com/mcpconf/cli/internal/utils/flags"
	"github.com/spf13/afero"
)

var (
	lookPath = exec.LookPath
	// Runs the editor attached to the current terminal.
	runEditor = func(ctx context.Context, argv []string) error {
		// #nosec G204 -- the editor is chosen by the user
		cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
		cmd.Stdin = os.Stdin
		cmd.Stdout = os.Stdout
		cmd.Stderr = os.Stderr
		return cmd.Run()
	}
)

func Run(ctx context.Context, fsys afero.Fs) error {
	path := flags.PreferencePath()
	if err := writeTemplate(path, fsys); err != nil {
		return err
	}
	argv, err := Detect()
	if err != nil {
		return err
	}
	utils.Debug("Editing %s with %s", path, argv[0])
	if err := runEditor(ctx, append(argv, path)); err != nil {
		return errors.Errorf("failed to run editor: %w", err)
	}
	// Surface a malformed file while the user is still looking at it
	if _, err := flags.LoadSnapshot(fsys); err != nil {
		utils.CmdSuggestion = "Run mcpconf prefs edit again to fix the file."
		return err
	}
	utils.Success("Saved preferences to %s", utils.Bold(path))
	return nil
}

func writeTemplate(path string, fsys afero.Fs) error {
	if exists, err := afero.Exists(fsys, path); err != nil {
		return errors.Errorf("failed to check preferences: %w", err)
	} else if exists {
		return nil
	}
	utils.Info(1, "Creating preference file: %s", path)
	return utils.WriteFile(path, []byte(prefs.Template(flags.Registry)), fsys)
}

// Detect returns the argv of the first available editor among $VISUAL,
// $EDITOR, editor, vim and vi. Values may carry arguments, e.g.
// "code --wait".
func Detect() ([]string, error) {
	candidates := []string{
		os.Getenv("VISUAL"),
		os.Getenv("EDITOR"),
		"editor",
		"vim",
		"vi",
	}
	for _, c := range candidates {
		argv, err := shellwords.Parse(c)
		if err != nil {
			utils.Debug("Ignoring editor %q: %v", c, err)
			continue
		}
		if len(argv) == 0 {
			continue
		}
		if bin, err := lookPath(argv[0]); err == nil {
			argv[0] = bin
			return argv, nil
		}
	}
	return nil, errors.New("could not detect a text editor binary, try setting $EDITOR")
}
