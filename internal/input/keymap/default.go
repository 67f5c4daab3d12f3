package keymap

import "github.com/dshills/markstorm/internal/input"

// defaultBindings covers the whole action surface. Chords follow
// common editor conventions; anything can be rebound from the keymap
// file or Lua.
var defaultBindings = map[string]string{
	"enter":            input.ActionNewline,
	"shift+enter":      input.ActionLineBreak,
	"ctrl+enter":       input.ActionHardNewline,
	"ctrl+shift+enter": input.ActionHardLineBreak,
	"tab":              input.ActionIndent,
	// Backtab arrives from the terminal already normalized to shift+tab.
	"shift+tab": input.ActionOutdent,
	"backspace":        input.ActionBackspace,
	"delete":           input.ActionDeleteForward,

	"ctrl+b":       input.ActionBold,
	"ctrl+i":       input.ActionItalic,
	"ctrl+k":       input.ActionStrikethrough,
	"ctrl+/":       input.ActionComment,
	"ctrl+u":       input.ActionBulletList,
	"ctrl+o":       input.ActionNumberedList,
	"ctrl+t":       input.ActionTaskList,
	"ctrl+.":       input.ActionBlockquote,
	"ctrl+,":       input.ActionRemoveBlockquote,
	"ctrl+d":       input.ActionToggleTask,
	"ctrl+h":       input.ActionToggleHemingway,
	"ctrl+z":       input.ActionUndo,
	"ctrl+y":       input.ActionRedo,
	"ctrl+shift+z": input.ActionRedo,
	"ctrl+a":       input.ActionSelectAll,

	"left":        input.ActionCursorLeft,
	"right":       input.ActionCursorRight,
	"up":          input.ActionCursorUp,
	"down":        input.ActionCursorDown,
	"home":        input.ActionCursorLineStart,
	"end":         input.ActionCursorLineEnd,
	"ctrl+home":   input.ActionCursorDocStart,
	"ctrl+end":    input.ActionCursorDocEnd,
	"shift+left":  input.ActionSelectLeft,
	"shift+right": input.ActionSelectRight,
	"shift+up":    input.ActionSelectUp,
	"shift+down":  input.ActionSelectDown,
	"shift+home":  input.ActionSelectLineStart,
	"shift+end":   input.ActionSelectLineEnd,

	"ctrl+s": input.ActionSave,
	"ctrl+q": input.ActionQuit,
}

// Default returns the built-in keymap.
func Default() *Map {
	m := New()
	for chord, action := range defaultBindings {
		// Binding tables are compile-time data; a bad chord is a bug.
		if err := m.Bind(chord, action); err != nil {
			panic(err)
		}
	}
	return m
}
