// Package prefs loads the user's preference file into an immutable snapshot.
package prefs

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/go-errors/errors"
	"github.com/go-viper/mapstructure/v2"
	"github.com/mcpconf/cli/internal/editors"
	"github.com/mcpconf/cli/internal/keys"
	"github.com/mcpconf/cli/internal/registry"
	"github.com/mcpconf/cli/internal/utils"
	"github.com/spf13/afero"
	"github.com/spf13/viper"
)

const EnvPrefix = "MCPCONF"

type defaults struct {
	DefaultEditor string `mapstructure:"defaultEditor"`
}

// DefaultPath returns the preference file under the XDG config directory.
func DefaultPath() string {
	return filepath.Join(xdg.ConfigHome, "mcpconf", "preferences.toml")
}

// KnownKeys lists every key the resolver may read for the registry.
func KnownKeys(reg registry.Registry) []keys.Key {
	result := []keys.Key{keys.DefaultEditor}
	for _, e := range editors.All() {
		result = append(result, e.ActionKey())
	}
	for _, id := range reg.IDs() {
		set := keys.Derive(id)
		result = append(result, set.Visibility, set.Path)
	}
	return result
}

// Load reads the preference file at path, layering MCPCONF_* environment
// variables on top. A missing file yields defaults only.
func Load(fsys afero.Fs, path string, known []keys.Key) (Snapshot, error) {
	// Instantiate to avoid leaking preferences into global viper state
	v := viper.New()
	v.SetFs(fsys)
	v.SetConfigFile(path)
	v.SetConfigType("toml")
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	var defaultsMap map[string]any
	if err := mapstructure.Decode(defaults{DefaultEditor: editors.Fallback.ID}, &defaultsMap); err != nil {
		return Snapshot{}, errors.Errorf("failed to decode defaults: %w", err)
	}
	for k, val := range defaultsMap {
		v.SetDefault(k, val)
	}
	if err := v.ReadInConfig(); errors.Is(err, os.ErrNotExist) {
		utils.Debug("Preference file not found: %s", path)
	} else if err != nil {
		return Snapshot{}, errors.Errorf("failed to read preferences: %w", err)
	} else {
		utils.Debug("Loaded preferences from: %s", path)
	}
	values := map[keys.Key]any{}
	for _, k := range v.AllKeys() {
		values[keys.Key(k)] = v.Get(k)
	}
	// Env overrides are only visible by explicit lookup
	for _, k := range known {
		if v.IsSet(string(k)) {
			values[k] = v.Get(string(k))
		}
	}
	return NewSnapshot(values), nil
}
