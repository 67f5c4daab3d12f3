package key

import (
	"strings"
	"unicode"
)

// Event represents a single key press.
type Event struct {
	// Key identifies the key pressed.
	Key Key

	// Rune is the character for KeyRune events.
	Rune rune

	// Mods contains the active modifier keys.
	Mods Modifier
}

// NewRune creates an event for a typed character.
func NewRune(r rune, mods Modifier) Event {
	return Event{Key: KeyRune, Rune: r, Mods: mods}
}

// NewSpecial creates an event for a non-character key.
func NewSpecial(k Key, mods Modifier) Event {
	return Event{Key: k, Mods: mods}
}

// IsRune returns true for character key events.
func (e Event) IsRune() bool {
	return e.Key == KeyRune && e.Rune != 0
}

// IsChar returns true for printable characters with no modifier that
// would change their meaning. Shift is part of the character itself.
func (e Event) IsChar() bool {
	return e.IsRune() && unicode.IsPrint(e.Rune) &&
		e.Mods&(ModCtrl|ModAlt|ModMeta) == 0
}

// Chord returns the canonical chord string used for keymap lookup:
// lowercase modifier names joined with '+', then the key name, e.g.
// "ctrl+enter", "shift+tab", "ctrl+b". Plain printable runes return
// the character itself.
func (e Event) Chord() string {
	var b strings.Builder
	if mods := e.chordMods(); mods != "" {
		b.WriteString(mods)
		b.WriteByte('+')
	}
	switch {
	case e.Key == KeyRune && e.Rune == ' ':
		b.WriteString("space")
	case e.Key == KeyRune:
		b.WriteRune(unicode.ToLower(e.Rune))
	default:
		b.WriteString(e.Key.chordName())
	}
	return b.String()
}

// chordMods returns the modifier prefix for Chord. Shift is dropped for
// character keys since it is already folded into the rune.
func (e Event) chordMods() string {
	mods := e.Mods
	if e.Key == KeyRune && e.Rune != ' ' {
		mods &^= ModShift
	}
	return mods.String()
}

// Equals returns true if two events represent the same key press.
func (e Event) Equals(other Event) bool {
	return e.Key == other.Key && e.Rune == other.Rune && e.Mods == other.Mods
}

// String returns the chord representation.
func (e Event) String() string {
	return e.Chord()
}
