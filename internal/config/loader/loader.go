// Package loader loads configuration from TOML or YAML files with an
// environment-variable overlay. Precedence, lowest to highest:
// built-in defaults, config file, MARKSTORM_* environment variables.
package loader

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dshills/markstorm/internal/config"
)

// Load produces a configuration snapshot. An empty path skips the
// file layer; the defaults and environment overlay still apply.
func Load(path string) (config.Config, error) {
	cfg := config.Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return config.Config{}, fmt.Errorf("reading config file: %w", err)
		}
		switch strings.ToLower(filepath.Ext(path)) {
		case ".toml":
			if err := UnmarshalTOML(data, &cfg); err != nil {
				return config.Config{}, err
			}
		case ".yaml", ".yml":
			if err := UnmarshalYAML(data, &cfg); err != nil {
				return config.Config{}, err
			}
		default:
			return config.Config{}, fmt.Errorf("%w: %s", config.ErrUnsupportedFormat, filepath.Ext(path))
		}
	}

	ApplyEnv(&cfg, os.Getenv)

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}
