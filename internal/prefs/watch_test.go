package prefs

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatch(t *testing.T) {
	t.Run("notifies on write", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "preferences.toml")
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		changed := make(chan struct{}, 1)
		errCh := make(chan error, 1)
		go func() {
			errCh <- Watch(ctx, path, func() {
				select {
				case changed <- struct{}{}:
				default:
				}
			})
		}()
		// Give the watcher time to register
		time.Sleep(200 * time.Millisecond)
		require.NoError(t, os.WriteFile(path, []byte(`showZedAction = false`), 0644))
		// Check notification
		select {
		case <-changed:
		case <-time.After(5 * time.Second):
			t.Fatal("timed out waiting for change")
		}
		cancel()
		assert.NoError(t, <-errCh)
	})

	t.Run("throws error on missing directory", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "missing", "preferences.toml")
		// Run test
		err := Watch(context.Background(), path, func() {})
		// Check error
		assert.ErrorContains(t, err, "failed to watch directory")
	})
}
