// Package config loads theme overrides from TOML or JSON files, the
// environment and command-line flags.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/jmylchreest/twtheme/internal/theme"
)

// EnvConfig names the environment variable holding the config file path.
const EnvConfig = "TWTHEME_CONFIG"

// DefaultFile is picked up from the working directory when present.
const DefaultFile = "twtheme.toml"

// Load reads theme options from path. The format is chosen by extension:
// .toml or .json.
func Load(path string) (theme.Options, error) {
	var opts theme.Options

	data, err := os.ReadFile(path)
	if err != nil {
		return opts, fmt.Errorf("failed to read config: %w", err)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		if err := toml.Unmarshal(data, &opts); err != nil {
			return opts, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	case ".json":
		if err := json.Unmarshal(data, &opts); err != nil {
			return opts, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	default:
		return opts, fmt.Errorf("unsupported config format %q (must be .toml or .json)", ext)
	}

	return opts, nil
}

// Path resolves the config file to load. Precedence: the flag value, then
// $TWTHEME_CONFIG, then twtheme.toml in the working directory. An empty
// result means no config file.
func Path(flag string) (string, error) {
	if flag != "" {
		return flag, nil
	}
	if env := os.Getenv(EnvConfig); env != "" {
		return env, nil
	}
	if _, err := os.Stat(DefaultFile); err == nil {
		return DefaultFile, nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return "", fmt.Errorf("failed to check %s: %w", DefaultFile, err)
	}
	return "", nil
}

// Resolve loads the options from the resolved config path, if any.
func Resolve(flag string) (theme.Options, string, error) {
	path, err := Path(flag)
	if err != nil || path == "" {
		return theme.Options{}, "", err
	}
	opts, err := Load(path)
	return opts, path, err
}

// ApplyOverrides layers command-line overrides on top of opts with a shallow,
// per-token merge. opts is not modified.
func ApplyOverrides(opts theme.Options, light, dark map[string]string) theme.Options {
	return theme.Options{
		LightColors: mergeOverrides(opts.LightColors, light),
		DarkColors:  mergeOverrides(opts.DarkColors, dark),
	}
}

func mergeOverrides(base theme.Overrides, extra map[string]string) theme.Overrides {
	if len(base) == 0 && len(extra) == 0 {
		return nil
	}
	merged := make(theme.Overrides, len(base)+len(extra))
	maps.Copy(merged, base)
	maps.Copy(merged, extra)
	return merged
}
