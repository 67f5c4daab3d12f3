package key

import "testing"

func TestParseChords(t *testing.T) {
	tests := []struct {
		spec string
		want Event
	}{
		{"enter", NewSpecial(KeyEnter, ModNone)},
		{"shift+enter", NewSpecial(KeyEnter, ModShift)},
		{"ctrl+enter", NewSpecial(KeyEnter, ModCtrl)},
		{"ctrl+shift+enter", NewSpecial(KeyEnter, ModCtrl|ModShift)},
		{"tab", NewSpecial(KeyTab, ModNone)},
		{"shift+tab", NewSpecial(KeyTab, ModShift)},
		{"backtab", NewSpecial(KeyBacktab, ModNone)},
		{"backspace", NewSpecial(KeyBackspace, ModNone)},
		{"ctrl+b", NewRune('b', ModCtrl)},
		{"Ctrl+B", NewRune('b', ModCtrl)},
		{"a", NewRune('a', ModNone)},
		{"space", NewRune(' ', ModNone)},
		{"ctrl+space", NewRune(' ', ModCtrl)},
		{"alt+up", NewSpecial(KeyUp, ModAlt)},
		{"+", NewRune('+', ModNone)},
	}
	for _, tt := range tests {
		got, err := Parse(tt.spec)
		if err != nil {
			t.Errorf("Parse(%q): %v", tt.spec, err)
			continue
		}
		if !got.Equals(tt.want) {
			t.Errorf("Parse(%q) = %#v, want %#v", tt.spec, got, tt.want)
		}
	}
}

func TestParseErrors(t *testing.T) {
	for _, spec := range []string{"", "bogus+x", "notakey", "ctrl+"} {
		if _, err := Parse(spec); err == nil {
			t.Errorf("Parse(%q): expected error", spec)
		}
	}
}

func TestChordRoundTrip(t *testing.T) {
	specs := []string{
		"enter", "shift+enter", "ctrl+enter", "tab", "shift+tab",
		"ctrl+b", "ctrl+shift+k", "alt+up", "a", "space", "backspace",
	}
	for _, spec := range specs {
		ev, err := Parse(spec)
		if err != nil {
			t.Fatalf("Parse(%q): %v", spec, err)
		}
		back, err := Parse(ev.Chord())
		if err != nil {
			t.Fatalf("Parse(Chord(%q)) = Parse(%q): %v", spec, ev.Chord(), err)
		}
		if !back.Equals(ev) {
			t.Errorf("chord round trip for %q: %q -> %#v", spec, ev.Chord(), back)
		}
	}
}

func TestChordDropsShiftForRunes(t *testing.T) {
	ev := NewRune('B', ModShift)
	if got := ev.Chord(); got != "b" {
		t.Errorf("expected shift folded into the rune, got %q", got)
	}
	sp := NewSpecial(KeyTab, ModShift)
	if got := sp.Chord(); got != "shift+tab" {
		t.Errorf("expected %q, got %q", "shift+tab", got)
	}
}

func TestIsChar(t *testing.T) {
	if !NewRune('x', ModShift).IsChar() {
		t.Error("shifted rune is still a character")
	}
	if NewRune('x', ModCtrl).IsChar() {
		t.Error("ctrl+x is not a plain character")
	}
	if NewSpecial(KeyEnter, ModNone).IsChar() {
		t.Error("enter is not a character")
	}
}
