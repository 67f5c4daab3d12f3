package loader

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/dshills/markstorm/internal/config"
)

// UnmarshalYAML decodes YAML data over an existing configuration.
// Absent keys keep their current values.
func UnmarshalYAML(data []byte, cfg *config.Config) error {
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("decoding YAML config: %w", err)
	}
	return nil
}
