package cursor

import (
	"testing"

	"github.com/dshills/markstorm/internal/engine/buffer"
)

func TestAtCollapsed(t *testing.T) {
	s := At(5)

	if !s.IsEmpty() {
		t.Error("cursor should have no extent")
	}
	if s.Cursor() != 5 {
		t.Errorf("expected head 5, got %d", s.Cursor())
	}
}

func TestAtNegativeClamps(t *testing.T) {
	s := At(-3)
	if s.Head != 0 {
		t.Errorf("expected clamp to 0, got %d", s.Head)
	}
}

func TestSelectionBounds(t *testing.T) {
	tests := []struct {
		name       string
		sel        Selection
		start, end Offset
		forward    bool
	}{
		{"forward", New(2, 7), 2, 7, true},
		{"backward", New(7, 2), 2, 7, false},
		{"empty", New(4, 4), 4, 4, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.sel.Start() != tt.start {
				t.Errorf("expected start %d, got %d", tt.start, tt.sel.Start())
			}
			if tt.sel.End() != tt.end {
				t.Errorf("expected end %d, got %d", tt.end, tt.sel.End())
			}
			if tt.sel.IsForward() != tt.forward {
				t.Errorf("expected forward=%v", tt.forward)
			}
		})
	}
}

func TestSelectionInvariant(t *testing.T) {
	// anchor == head exactly when there is no selection
	if !New(3, 3).IsEmpty() {
		t.Error("anchor == head must mean no selection")
	}
	if New(3, 4).IsEmpty() {
		t.Error("anchor != head must mean a selection exists")
	}
}

func TestCollapse(t *testing.T) {
	s := New(2, 7)

	if got := s.Collapse(); got.Cursor() != 7 || !got.IsEmpty() {
		t.Errorf("Collapse: expected cursor at 7, got %v", got)
	}
	if got := s.CollapseToStart(); got.Cursor() != 2 {
		t.Errorf("CollapseToStart: expected cursor at 2, got %v", got)
	}
	if got := s.CollapseToEnd(); got.Cursor() != 7 {
		t.Errorf("CollapseToEnd: expected cursor at 7, got %v", got)
	}
}

func TestMoveByAndClamp(t *testing.T) {
	s := New(2, 7).MoveBy(3)
	if s.Anchor != 5 || s.Head != 10 {
		t.Errorf("expected (5,10), got %v", s)
	}
	s = s.Clamp(8)
	if s.Head != 8 {
		t.Errorf("expected head clamped to 8, got %d", s.Head)
	}
}

func TestLineRange(t *testing.T) {
	b := buffer.FromString("one\ntwo\nthree")

	tests := []struct {
		name        string
		sel         Selection
		first, last int
	}{
		{"cursor", At(5), 1, 1},
		{"one line", New(4, 6), 1, 1},
		{"two lines", New(2, 6), 0, 1},
		{"all", New(0, 13), 0, 2},
		{"backward", New(6, 2), 0, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			first, last, err := tt.sel.LineRange(b)
			if err != nil {
				t.Fatalf("LineRange: %v", err)
			}
			if first != tt.first || last != tt.last {
				t.Errorf("expected lines %d..%d, got %d..%d", tt.first, tt.last, first, last)
			}
		})
	}
}

func TestSingleLine(t *testing.T) {
	b := buffer.FromString("one\ntwo")

	if line, ok := New(4, 7).SingleLine(b); !ok || line != 1 {
		t.Errorf("expected single line 1, got (%d, %v)", line, ok)
	}
	if _, ok := New(2, 5).SingleLine(b); ok {
		t.Error("selection across a newline must not report a single line")
	}
}

func TestBoundaries(t *testing.T) {
	if got := NextBoundary("abc", 0); got != 1 {
		t.Errorf("expected 1, got %d", got)
	}
	if got := PrevBoundary("abc", 2); got != 1 {
		t.Errorf("expected 1, got %d", got)
	}
	// Combining mark forms one grapheme cluster with its base.
	line := "éx" // é as e + combining acute
	if got := NextBoundary(line, 0); got != 2 {
		t.Errorf("expected cluster boundary at 2, got %d", got)
	}
	if got := PrevBoundary(line, 2); got != 0 {
		t.Errorf("expected cluster start at 0, got %d", got)
	}
}

func TestLeftRightAcrossLines(t *testing.T) {
	b := buffer.FromString("ab\ncd")

	if got := Right(b, 2); got != 3 {
		t.Errorf("Right across newline: expected 3, got %d", got)
	}
	if got := Left(b, 3); got != 2 {
		t.Errorf("Left across newline: expected 2, got %d", got)
	}
	if got := Right(b, 5); got != 5 {
		t.Errorf("Right at buffer end: expected 5, got %d", got)
	}
	if got := Left(b, 0); got != 0 {
		t.Errorf("Left at buffer start: expected 0, got %d", got)
	}
}

func TestVerticalKeepsColumn(t *testing.T) {
	b := buffer.FromString("long line\nab\nlonger line")

	// From column 7 on line 0, down clamps to line 1's end, down again
	// restores nothing (column memory is the caller's concern).
	down := Vertical(b, 7, 1)
	pos, _ := b.OffsetToPosition(down)
	if pos.Line != 1 || pos.Column != 2 {
		t.Errorf("expected (1:2), got %v", pos)
	}
	up := Vertical(b, down, -1)
	pos, _ = b.OffsetToPosition(up)
	if pos.Line != 0 || pos.Column != 2 {
		t.Errorf("expected (0:2), got %v", pos)
	}
}

func TestLineStartEnd(t *testing.T) {
	b := buffer.FromString("one\ntwo")

	if got := LineStart(b, 5); got != 4 {
		t.Errorf("expected 4, got %d", got)
	}
	if got := LineEnd(b, 5); got != 7 {
		t.Errorf("expected 7, got %d", got)
	}
}
