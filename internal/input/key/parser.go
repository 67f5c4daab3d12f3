package key

import (
	"fmt"
	"strings"
	"unicode"
)

// Parse converts a chord string into an Event. Accepted forms:
//
//	"enter", "tab", "ctrl+b", "ctrl+shift+k", "alt+up", "a", "space"
//
// Names are case-insensitive. A single non-name character is a rune
// key. The last '+'-separated token is the key; everything before it
// must be a modifier name.
func Parse(spec string) (Event, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return Event{}, fmt.Errorf("empty key spec")
	}

	// A literal "+" binding would split into empty tokens.
	if spec == "+" {
		return NewRune('+', ModNone), nil
	}

	parts := strings.Split(spec, "+")
	keyPart := parts[len(parts)-1]

	var mods Modifier
	for _, part := range parts[:len(parts)-1] {
		name := strings.ToLower(strings.TrimSpace(part))
		mod, ok := modifierNames[name]
		if !ok {
			return Event{}, fmt.Errorf("unknown modifier %q in %q", part, spec)
		}
		mods = mods.With(mod)
	}

	keyPart = strings.TrimSpace(keyPart)
	name := strings.ToLower(keyPart)

	if name == "space" {
		return NewRune(' ', mods), nil
	}
	if k, ok := keyNames[name]; ok && k != KeyRune {
		return NewSpecial(k, mods), nil
	}

	runes := []rune(keyPart)
	if len(runes) != 1 {
		return Event{}, fmt.Errorf("unknown key %q in %q", keyPart, spec)
	}
	return NewRune(unicode.ToLower(runes[0]), mods), nil
}

// MustParse is Parse for compile-time-known chords; it panics on error.
func MustParse(spec string) Event {
	ev, err := Parse(spec)
	if err != nil {
		panic(err)
	}
	return ev
}
