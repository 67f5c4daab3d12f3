package app

import (
	"github.com/gdamore/tcell/v2"

	"github.com/dshills/markstorm/internal/input/key"
)

// translateKey converts a tcell key event into the editor's key event.
// Returns false for keys the editor has no representation for.
func translateKey(ev *tcell.EventKey) (key.Event, bool) {
	mods := translateMods(ev.Modifiers())

	switch ev.Key() {
	case tcell.KeyRune:
		return key.NewRune(ev.Rune(), mods), true
	case tcell.KeyEnter:
		return key.NewSpecial(key.KeyEnter, mods), true
	case tcell.KeyTab:
		return key.NewSpecial(key.KeyTab, mods), true
	case tcell.KeyBacktab:
		// Terminals deliver Shift+Tab as Backtab.
		return key.NewSpecial(key.KeyTab, mods|key.ModShift), true
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return key.NewSpecial(key.KeyBackspace, mods), true
	case tcell.KeyDelete:
		return key.NewSpecial(key.KeyDelete, mods), true
	case tcell.KeyEscape:
		return key.NewSpecial(key.KeyEscape, mods), true
	case tcell.KeyHome:
		return key.NewSpecial(key.KeyHome, mods), true
	case tcell.KeyEnd:
		return key.NewSpecial(key.KeyEnd, mods), true
	case tcell.KeyPgUp:
		return key.NewSpecial(key.KeyPageUp, mods), true
	case tcell.KeyPgDn:
		return key.NewSpecial(key.KeyPageDown, mods), true
	case tcell.KeyUp:
		return key.NewSpecial(key.KeyUp, mods), true
	case tcell.KeyDown:
		return key.NewSpecial(key.KeyDown, mods), true
	case tcell.KeyLeft:
		return key.NewSpecial(key.KeyLeft, mods), true
	case tcell.KeyRight:
		return key.NewSpecial(key.KeyRight, mods), true
	}

	// Control characters arrive as dedicated key codes; recover the
	// letter. Tab, Enter, and Backspace aliases were handled above.
	if ev.Key() >= tcell.KeyCtrlA && ev.Key() <= tcell.KeyCtrlZ {
		r := rune('a' + ev.Key() - tcell.KeyCtrlA)
		return key.NewRune(r, mods|key.ModCtrl), true
	}

	return key.Event{}, false
}

func translateMods(m tcell.ModMask) key.Modifier {
	var mods key.Modifier
	if m&tcell.ModShift != 0 {
		mods |= key.ModShift
	}
	if m&tcell.ModCtrl != 0 {
		mods |= key.ModCtrl
	}
	if m&tcell.ModAlt != 0 {
		mods |= key.ModAlt
	}
	if m&tcell.ModMeta != 0 {
		mods |= key.ModMeta
	}
	return mods
}
