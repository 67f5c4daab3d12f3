package config

import (
	"errors"
	"testing"
)

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Errorf("default config must validate: %v", err)
	}
}

func TestDefaultFilterCoversAllOpeners(t *testing.T) {
	cfg := Default()
	for _, opener := range []rune{'"', '\'', '(', '[', '{', '*', '_', '`', '<'} {
		if !cfg.Editor.FilterFor(opener) {
			t.Errorf("expected auto-match enabled for %q by default", opener)
		}
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"zero tab width", func(c *Config) { c.Editor.TabWidth = 0 }, true},
		{"negative tab width", func(c *Config) { c.Editor.TabWidth = -1 }, true},
		{"bad log level", func(c *Config) { c.Log.Level = "verbose" }, true},
		{"multi-rune filter key", func(c *Config) { c.Editor.AutoMatchFilter["ab"] = true }, true},
		{"empty log level", func(c *Config) { c.Log.Level = "" }, false},
		{"valid", func(c *Config) {}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr && !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("expected ErrInvalidConfig, got %v", err)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestFilterForMissingKeyDefaultsEnabled(t *testing.T) {
	e := Editor{AutoMatchFilter: map[string]bool{"(": false}}

	if e.FilterFor('(') {
		t.Error("expected '(' disabled")
	}
	if !e.FilterFor('[') {
		t.Error("expected missing key to default to enabled")
	}
}

func TestTabUnit(t *testing.T) {
	if got := (Editor{TabWidth: 4, InsertSpaces: true}).TabUnit(); got != "    " {
		t.Errorf("expected four spaces, got %q", got)
	}
	if got := (Editor{TabWidth: 4, InsertSpaces: false}).TabUnit(); got != "\t" {
		t.Errorf("expected tab character, got %q", got)
	}
}
