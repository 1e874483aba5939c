package launch

import (
	"bytes"
	"context"
	"os/exec"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/go-errors/errors"
	"github.com/mcpconf/cli/internal/utils"
)

// Runner executes an external process to completion.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) error
}

type ExecRunner struct{}

func (ExecRunner) Run(ctx context.Context, name string, args ...string) error {
	// #nosec G204 -- arguments are passed without a shell
	cmd := exec.CommandContext(ctx, name, args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); len(msg) > 0 {
			return errors.Errorf("%s: %w", msg, err)
		}
		return errors.New(err)
	}
	return nil
}

// Outcome is delivered once per started command.
type Outcome struct {
	Command Command
	Err     error
}

func (o Outcome) Title() string {
	if o.Err != nil {
		return o.Command.Failure
	}
	return o.Command.Success
}

// Launcher runs commands without retry or deduplication: repeating an
// action starts another independent process.
type Launcher struct {
	Runner Runner
	// Upper bound for a single process, zero for none.
	Timeout time.Duration
	// Writes text to the system clipboard.
	Clipboard func(text string) error
}

func New(timeout time.Duration) Launcher {
	return Launcher{
		Runner:    ExecRunner{},
		Timeout:   timeout,
		Clipboard: clipboard.WriteAll,
	}
}

// Start runs cmd in the background. The returned channel receives exactly
// one outcome and is then closed.
func (l Launcher) Start(ctx context.Context, cmd Command) <-chan Outcome {
	ch := make(chan Outcome, 1)
	go func() {
		defer close(ch)
		ch <- l.Run(ctx, cmd)
	}()
	return ch
}

// Run executes cmd and waits for it to exit.
func (l Launcher) Run(ctx context.Context, cmd Command) Outcome {
	if l.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, l.Timeout)
		defer cancel()
	}
	utils.Debug("Running: %s", cmd)
	err := l.Runner.Run(ctx, cmd.Name, cmd.Args...)
	if err != nil && errors.Is(ctx.Err(), context.DeadlineExceeded) {
		err = errors.Errorf("timed out after %s: %w", l.Timeout, err)
	}
	return Outcome{Command: cmd, Err: err}
}

// CopyPath copies the raw, unexpanded path.
func (l Launcher) CopyPath(raw string) Outcome {
	cmd := Command{Success: "Copied file path", Failure: "Failed to copy file path"}
	if len(raw) == 0 {
		return Outcome{Command: cmd, Err: errors.New("path is empty")}
	}
	if err := l.Clipboard(raw); err != nil {
		return Outcome{Command: cmd, Err: errors.Errorf("failed to write clipboard: %w", err)}
	}
	return Outcome{Command: cmd}
}
