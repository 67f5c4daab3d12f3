package log

import (
	"strings"
	"testing"
)

func TestLevelFiltering(t *testing.T) {
	var buf strings.Builder
	l := New(&buf, LevelWarn)

	l.Debug("debug line")
	l.Info("info line")
	l.Warn("warn line")
	l.Error("error line")

	out := buf.String()
	if strings.Contains(out, "debug line") || strings.Contains(out, "info line") {
		t.Errorf("expected debug and info suppressed, got %q", out)
	}
	if !strings.Contains(out, "warn line") || !strings.Contains(out, "error line") {
		t.Errorf("expected warn and error logged, got %q", out)
	}
}

func TestFieldChaining(t *testing.T) {
	var buf strings.Builder
	l := New(&buf, LevelInfo).WithComponent("watcher").WithField("path", "a.toml")

	l.Info("reloaded")

	out := buf.String()
	if !strings.Contains(out, "component=watcher") {
		t.Errorf("expected component field, got %q", out)
	}
	if !strings.Contains(out, "path=a.toml") {
		t.Errorf("expected path field, got %q", out)
	}
}

func TestDerivedLoggerDoesNotMutateParent(t *testing.T) {
	var buf strings.Builder
	parent := New(&buf, LevelInfo)
	_ = parent.WithField("k", "v")

	parent.Info("plain")
	if strings.Contains(buf.String(), "k=v") {
		t.Errorf("parent logger picked up a derived field: %q", buf.String())
	}
}

func TestFormatArgs(t *testing.T) {
	var buf strings.Builder
	New(&buf, LevelInfo).Info("opened %s (%d lines)", "notes.md", 42)
	if !strings.Contains(buf.String(), "opened notes.md (42 lines)") {
		t.Errorf("expected formatted message, got %q", buf.String())
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want Level
	}{
		{"debug", LevelDebug},
		{"INFO", LevelInfo},
		{"warning", LevelWarn},
		{"error", LevelError},
		{"bogus", LevelInfo},
	}
	for _, tt := range tests {
		if got := ParseLevel(tt.in); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestDiscard(t *testing.T) {
	// Must not panic or write anywhere.
	Discard.Error("dropped")
	Discard.WithComponent("x").Info("dropped")
}
