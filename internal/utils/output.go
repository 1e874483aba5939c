package utils

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/BurntSushi/toml"
	"github.com/go-errors/errors"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	OutputEnv    = "env"
	OutputJson   = "json"
	OutputPretty = "pretty"
	OutputToml   = "toml"
	OutputYaml   = "yaml"
)

// Bound to the global --output flag.
var OutputFormat = OutputFlag(true)

func OutputFlag(allowEnv bool) EnumFlag {
	var allowed []string
	if allowEnv {
		allowed = append(allowed, OutputEnv)
	}
	allowed = append(
		allowed,
		OutputJson,
		OutputPretty,
		OutputToml,
		OutputYaml,
	)
	return EnumFlag{
		Allowed: allowed,
		Value:   OutputPretty,
	}
}

func EncodeOutput(format string, w io.Writer, value any) error {
	switch format {
	case OutputEnv:
		mapvalue, ok := value.(map[string]string)
		if !ok {
			return errors.New("value is not a map[string]string and can't be encoded as an environment file")
		}
		out, err := godotenv.Marshal(mapvalue)
		if err != nil {
			return errors.Errorf("failed to marshal env: %w", err)
		}
		_, err = fmt.Fprintln(w, out)
		return err
	case OutputJson:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(value)
	case OutputYaml:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		return enc.Encode(value)
	case OutputToml:
		return toml.NewEncoder(w).Encode(value)
	}
	return errors.Errorf("Unsupported output encoding %q", format)
}
