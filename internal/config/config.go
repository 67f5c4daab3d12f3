// Package config defines the application's configuration: the
// editor-behavior knobs the engines consume, logging settings, and
// keymap location. Configurations are immutable snapshots: loading
// produces a value, and hot reload swaps a whole new value into the
// engine rather than mutating shared state.
package config

import (
	"fmt"

	"github.com/dshills/markstorm/internal/markdown"
)

// Config is one complete configuration snapshot.
type Config struct {
	Editor Editor `toml:"editor" yaml:"editor"`
	Log    Log    `toml:"log" yaml:"log"`
	Keymap Keymap `toml:"keymap" yaml:"keymap"`
}

// Editor holds the knobs the editing engines consume.
type Editor struct {
	// TabWidth is the number of columns per tab stop. Must be > 0.
	TabWidth int `toml:"tab_width" yaml:"tab_width"`

	// InsertSpaces makes indent insert spaces instead of tab characters.
	InsertSpaces bool `toml:"insert_spaces" yaml:"insert_spaces"`

	// BulletCycling rotates bullet markers when indenting and
	// outdenting empty list items.
	BulletCycling bool `toml:"bullet_cycling" yaml:"bullet_cycling"`

	// AutoMatch enables paired-delimiter auto-insertion and skip-over.
	AutoMatch bool `toml:"auto_match" yaml:"auto_match"`

	// AutoMatchFilter overrides AutoMatch per opening character. Keys
	// are single-character strings; a missing key means enabled.
	AutoMatchFilter map[string]bool `toml:"auto_match_filter" yaml:"auto_match_filter"`

	// Hemingway disables Backspace and Delete entirely.
	Hemingway bool `toml:"hemingway" yaml:"hemingway"`
}

// Log holds logging settings.
type Log struct {
	// Level is one of debug, info, warn, error.
	Level string `toml:"level" yaml:"level"`

	// File is the log output path. The terminal owns the screen, so
	// logs never go to stderr while the editor runs. Empty disables
	// logging.
	File string `toml:"file" yaml:"file"`
}

// Keymap holds keymap settings.
type Keymap struct {
	// Path is a YAML keymap file merged over the default bindings.
	Path string `toml:"path" yaml:"path"`
}

// Default returns the built-in configuration.
func Default() Config {
	filter := make(map[string]bool, len(markdown.Openers()))
	for _, r := range markdown.Openers() {
		filter[string(r)] = true
	}
	return Config{
		Editor: Editor{
			TabWidth:        4,
			InsertSpaces:    true,
			BulletCycling:   true,
			AutoMatch:       true,
			AutoMatchFilter: filter,
		},
		Log: Log{
			Level: "info",
		},
	}
}

// Validate checks the configuration for values the engines cannot
// work with.
func (c Config) Validate() error {
	if c.Editor.TabWidth <= 0 {
		return fmt.Errorf("%w: tab_width must be positive, got %d", ErrInvalidConfig, c.Editor.TabWidth)
	}
	switch c.Log.Level {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: unknown log level %q", ErrInvalidConfig, c.Log.Level)
	}
	for k := range c.Editor.AutoMatchFilter {
		if len([]rune(k)) != 1 {
			return fmt.Errorf("%w: auto_match_filter key %q is not a single character", ErrInvalidConfig, k)
		}
	}
	return nil
}

// FilterFor reports whether auto-match is enabled for an opening
// character. Characters absent from the filter default to enabled.
func (e Editor) FilterFor(opener rune) bool {
	enabled, ok := e.AutoMatchFilter[string(opener)]
	if !ok {
		return true
	}
	return enabled
}

// TabUnit returns the text one indent step inserts at a line start:
// TabWidth spaces, or a single tab character.
func (e Editor) TabUnit() string {
	if e.InsertSpaces {
		unit := make([]byte, e.TabWidth)
		for i := range unit {
			unit[i] = ' '
		}
		return string(unit)
	}
	return "\t"
}
