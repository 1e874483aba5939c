// Package launch asks the operating system to open files and URLs with
// external applications.
package launch

import (
	"path/filepath"
	"runtime"

	"al.essio.dev/pkg/shellescape"
	"github.com/mcpconf/cli/internal/editors"
)

// Command is an external process invocation plus the notification titles
// shown for each outcome.
type Command struct {
	Name    string
	Args    []string
	Success string
	Failure string
}

func (c Command) String() string {
	return shellescape.QuoteCommand(append([]string{c.Name}, c.Args...))
}

// Builder constructs platform specific commands.
type Builder struct {
	GOOS string
}

var Host = Builder{GOOS: runtime.GOOS}

// OpenWith opens path in the editor.
func (b Builder) OpenWith(e editors.Editor, path string) Command {
	cmd := Command{
		Name:    e.Binary,
		Args:    []string{path},
		Success: "Opened in " + e.DisplayName,
		Failure: "Failed to open in " + e.DisplayName,
	}
	if b.GOOS == "darwin" {
		cmd.Name = "open"
		cmd.Args = []string{"-a", e.App, path}
	}
	return cmd
}

// Reveal shows path in the file browser. Without a way to select a file,
// other platforms open the containing directory.
func (b Builder) Reveal(path string) Command {
	cmd := Command{
		Name:    "xdg-open",
		Args:    []string{filepath.Dir(path)},
		Success: "Revealed " + filepath.Base(path),
		Failure: "Failed to show in file browser",
	}
	if b.GOOS == "darwin" {
		cmd.Name = "open"
		cmd.Args = []string{"-R", path}
	}
	return cmd
}

// Browse opens url in the default browser.
func (b Builder) Browse(url string) Command {
	cmd := Command{
		Name:    "xdg-open",
		Args:    []string{url},
		Success: "Opened documentation",
		Failure: "Failed to open documentation",
	}
	if b.GOOS == "darwin" {
		cmd.Name = "open"
	}
	return cmd
}
