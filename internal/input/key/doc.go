// Package key provides key event types and chord parsing for the input
// system.
//
// A chord string is the canonical lowercase form used in keymap files:
// modifier names joined with '+', then the key name or character, e.g.
// "ctrl+enter", "shift+tab", "ctrl+b", "a". Event.Chord produces this
// form and Parse consumes it, so terminal events and keymap entries
// meet on the same representation.
package key
