package loader

import (
	"fmt"

	"github.com/pelletier/go-toml/v2"

	"github.com/dshills/markstorm/internal/config"
)

// UnmarshalTOML decodes TOML data over an existing configuration.
// Absent keys keep their current values.
func UnmarshalTOML(data []byte, cfg *config.Config) error {
	if err := toml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("decoding TOML config: %w", err)
	}
	return nil
}
