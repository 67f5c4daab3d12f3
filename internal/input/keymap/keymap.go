// Package keymap resolves key chords to action names. A Map starts
// from the built-in defaults; a YAML keymap file merges over them, so
// users only list the bindings they change.
package keymap

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/dshills/markstorm/internal/input/key"
)

// Map holds chord-to-action bindings keyed by canonical chord strings.
type Map struct {
	bindings map[string]string
}

// New creates an empty keymap.
func New() *Map {
	return &Map{bindings: make(map[string]string)}
}

// Bind associates a chord with an action name, replacing any existing
// binding. The chord is validated and canonicalized.
func (m *Map) Bind(chord, action string) error {
	ev, err := key.Parse(chord)
	if err != nil {
		return fmt.Errorf("bind %q: %w", chord, err)
	}
	if action == "" {
		return fmt.Errorf("bind %q: empty action", chord)
	}
	m.bindings[ev.Chord()] = action
	return nil
}

// Unbind removes a chord's binding.
func (m *Map) Unbind(chord string) {
	ev, err := key.Parse(chord)
	if err != nil {
		return
	}
	delete(m.bindings, ev.Chord())
}

// Resolve returns the action bound to a key event, or "" when the
// event is unbound.
func (m *Map) Resolve(ev key.Event) string {
	return m.bindings[ev.Chord()]
}

// Len returns the number of bindings.
func (m *Map) Len() int {
	return len(m.bindings)
}

// Chords returns all bound chords, sorted. Used by the status line and
// tests.
func (m *Map) Chords() []string {
	chords := make([]string, 0, len(m.bindings))
	for c := range m.bindings {
		chords = append(chords, c)
	}
	sort.Strings(chords)
	return chords
}

// MergeFile loads a YAML keymap file and merges its bindings over the
// current ones. The file is a flat mapping of chord to action; binding
// a chord to the empty string or "none" removes it.
func (m *Map) MergeFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading keymap: %w", err)
	}
	return m.Merge(data)
}

// Merge applies YAML keymap data over the current bindings.
func (m *Map) Merge(data []byte) error {
	var entries map[string]string
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return fmt.Errorf("parsing keymap: %w", err)
	}
	for chord, action := range entries {
		if action == "" || action == "none" {
			m.Unbind(chord)
			continue
		}
		if err := m.Bind(chord, action); err != nil {
			return err
		}
	}
	return nil
}
