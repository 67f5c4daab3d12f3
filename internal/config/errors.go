package config

import "errors"

// Errors returned by configuration handling.
var (
	// ErrInvalidConfig indicates a configuration value the application
	// cannot use.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrUnsupportedFormat indicates a config file extension with no
	// registered loader.
	ErrUnsupportedFormat = errors.New("unsupported config format")
)
