package resolve

import (
	"github.com/go-errors/errors"
	"github.com/mcpconf/cli/internal/registry"
)

var ErrUnconfigured = errors.New("config path is not set")

// Resolution is either a configured filesystem target or a client that
// still needs configuration.
type Resolution struct {
	Client registry.Client
	Path   string
}

func (r Resolution) Configured() bool {
	return len(r.Path) > 0
}

// Target returns the absolute path and whether one is configured.
func (r Resolution) Target() (string, bool) {
	return r.Path, r.Configured()
}

// Require returns the absolute path, or an error wrapping ErrUnconfigured.
func (r Resolution) Require() (string, error) {
	if !r.Configured() {
		return "", errors.Errorf("Set the config path for %s in preferences: %w", r.Client.DisplayName, ErrUnconfigured)
	}
	return r.Path, nil
}
