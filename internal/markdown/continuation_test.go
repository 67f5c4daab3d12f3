package markdown

import "testing"

func TestContinuationAtEndOfLine(t *testing.T) {
	tests := []struct {
		name   string
		line   string
		insert string
	}{
		{"numbered increments", "1. first", "2. "},
		{"numbered preserves spacing", "2.  wide", "3.  "},
		{"numbered paren", "7) x", "8) "},
		{"numbered indented", "  3. x", "  4. "},
		{"bullet repeats marker", "* item", "* "},
		{"bullet dash", "- item", "- "},
		{"bullet keeps indent", "   + item", "   + "},
		{"task unchecks", "- [x] done", "- [ ] "},
		{"task stays unchecked", "- [ ] open", "- [ ] "},
		{"quote repeats", "> words", "> "},
		{"quote nested", "> > words", "> > "},
		{"plain indent", "    code", "    "},
		{"plain none", "text", ""},
		{"fence behaves plain", "  ```", "  "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			col := len([]rune(tt.line))
			cont := ContinuationFor(tt.line, col)
			if cont.Terminate {
				t.Fatalf("unexpected termination for %q", tt.line)
			}
			if cont.Insert != tt.insert {
				t.Errorf("ContinuationFor(%q) insert = %q, want %q", tt.line, cont.Insert, tt.insert)
			}
		})
	}
}

func TestContinuationTerminatesEmptyItems(t *testing.T) {
	tests := []string{"1. ", "* ", "- ", "+ ", "- [ ] ", "- [x] ", "  2) "}

	for _, line := range tests {
		cont := ContinuationFor(line, len([]rune(line)))
		if !cont.Terminate {
			t.Errorf("expected termination for empty item %q", line)
		}
	}
}

func TestContinuationEmptyQuoteDoesNotTerminate(t *testing.T) {
	cont := ContinuationFor("> ", 2)
	if cont.Terminate {
		t.Fatal("blockquote must not terminate on an empty quoted line")
	}
	if cont.Insert != "> " {
		t.Errorf("expected quote prefix, got %q", cont.Insert)
	}
}

func TestContinuationMidLine(t *testing.T) {
	tests := []struct {
		name   string
		line   string
		col    int
		insert string
	}{
		{"mid list keeps no marker", "1. item", 4, ""},
		{"mid indented line", "    text", 6, "    "},
		{"cursor inside indent truncates", "    text", 2, "  "},
		{"cursor at line start", "  x", 0, ""},
		{"mid bullet content", "  * item", 5, "  "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cont := ContinuationFor(tt.line, tt.col)
			if cont.Terminate {
				t.Fatalf("unexpected termination for %q", tt.line)
			}
			if cont.Insert != tt.insert {
				t.Errorf("ContinuationFor(%q, %d) = %q, want %q", tt.line, tt.col, cont.Insert, tt.insert)
			}
		})
	}
}
