package loader

import (
	"strconv"

	"github.com/dshills/markstorm/internal/config"
)

// Environment variables recognized by ApplyEnv.
const (
	EnvTabWidth      = "MARKSTORM_TAB_WIDTH"
	EnvInsertSpaces  = "MARKSTORM_INSERT_SPACES"
	EnvBulletCycling = "MARKSTORM_BULLET_CYCLING"
	EnvAutoMatch     = "MARKSTORM_AUTO_MATCH"
	EnvHemingway     = "MARKSTORM_HEMINGWAY"
	EnvLogLevel      = "MARKSTORM_LOG_LEVEL"
	EnvLogFile       = "MARKSTORM_LOG_FILE"
	EnvKeymapPath    = "MARKSTORM_KEYMAP"
)

// ApplyEnv overlays environment variables onto a configuration. The
// getenv indirection keeps the overlay testable; pass os.Getenv in
// production. Unparseable values are ignored, keeping the prior layer.
func ApplyEnv(cfg *config.Config, getenv func(string) string) {
	if v := getenv(EnvTabWidth); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Editor.TabWidth = n
		}
	}
	if v := getenv(EnvInsertSpaces); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Editor.InsertSpaces = b
		}
	}
	if v := getenv(EnvBulletCycling); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Editor.BulletCycling = b
		}
	}
	if v := getenv(EnvAutoMatch); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Editor.AutoMatch = b
		}
	}
	if v := getenv(EnvHemingway); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Editor.Hemingway = b
		}
	}
	if v := getenv(EnvLogLevel); v != "" {
		cfg.Log.Level = v
	}
	if v := getenv(EnvLogFile); v != "" {
		cfg.Log.File = v
	}
	if v := getenv(EnvKeymapPath); v != "" {
		cfg.Keymap.Path = v
	}
}
