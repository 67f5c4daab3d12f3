package buffer

import (
	"errors"
	"testing"

	"github.com/dshills/markstorm/internal/markdown"
)

func TestNewBuffer(t *testing.T) {
	b := New()

	if b.LineCount() != 1 {
		t.Errorf("expected 1 line, got %d", b.LineCount())
	}
	if b.Len() != 0 {
		t.Errorf("expected length 0, got %d", b.Len())
	}
	if b.Text() != "" {
		t.Errorf("expected empty text, got %q", b.Text())
	}
}

func TestFromString(t *testing.T) {
	b := FromString("line1\nline2\nline3")

	if b.LineCount() != 3 {
		t.Errorf("expected 3 lines, got %d", b.LineCount())
	}
	for i, want := range []string{"line1", "line2", "line3"} {
		got, err := b.LineText(i)
		if err != nil {
			t.Fatalf("LineText(%d): %v", i, err)
		}
		if got != want {
			t.Errorf("line %d: expected %q, got %q", i, want, got)
		}
	}
}

func TestFromStringNormalizesLineEndings(t *testing.T) {
	b := FromString("a\r\nb\rc")

	if b.LineCount() != 3 {
		t.Errorf("expected 3 lines, got %d", b.LineCount())
	}
	if b.Text() != "a\nb\nc" {
		t.Errorf("expected %q, got %q", "a\nb\nc", b.Text())
	}
}

func TestLineTextOutOfRange(t *testing.T) {
	b := New()

	if _, err := b.LineText(1); !errors.Is(err, ErrLineOutOfRange) {
		t.Errorf("expected ErrLineOutOfRange, got %v", err)
	}
	if _, err := b.LineText(-1); !errors.Is(err, ErrLineOutOfRange) {
		t.Errorf("expected ErrLineOutOfRange, got %v", err)
	}
}

func TestLineIDStableAcrossEdits(t *testing.T) {
	b := FromString("hello")
	id, err := b.LineID(0)
	if err != nil {
		t.Fatalf("LineID: %v", err)
	}

	if err := b.ReplaceLine(0, "world"); err != nil {
		t.Fatalf("ReplaceLine: %v", err)
	}

	after, _ := b.LineID(0)
	if after != id {
		t.Errorf("line identity changed across edit: %d != %d", after, id)
	}
}

func TestLineInfoCachedAndInvalidated(t *testing.T) {
	b := FromString("1. item")

	info, err := b.LineInfo(0)
	if err != nil {
		t.Fatalf("LineInfo: %v", err)
	}
	if info.Type != markdown.BlockNumbered {
		t.Errorf("expected numbered list, got %v", info.Type)
	}

	if err := b.ReplaceLine(0, "plain"); err != nil {
		t.Fatalf("ReplaceLine: %v", err)
	}
	info, _ = b.LineInfo(0)
	if info.Type != markdown.BlockPlain {
		t.Errorf("expected plain after edit, got %v", info.Type)
	}
}

func TestOffsetPositionRoundTrip(t *testing.T) {
	b := FromString("ab\ncde\n")

	tests := []struct {
		off Offset
		pos Position
	}{
		{0, Position{0, 0}},
		{2, Position{0, 2}}, // end of first line
		{3, Position{1, 0}},
		{6, Position{1, 3}},
		{7, Position{2, 0}}, // final empty line
	}

	for _, tt := range tests {
		pos, err := b.OffsetToPosition(tt.off)
		if err != nil {
			t.Fatalf("OffsetToPosition(%d): %v", tt.off, err)
		}
		if pos != tt.pos {
			t.Errorf("offset %d: expected %v, got %v", tt.off, tt.pos, pos)
		}
		off, err := b.PositionToOffset(tt.pos)
		if err != nil {
			t.Fatalf("PositionToOffset(%v): %v", tt.pos, err)
		}
		if off != tt.off {
			t.Errorf("position %v: expected offset %d, got %d", tt.pos, tt.off, off)
		}
	}

	if _, err := b.OffsetToPosition(8); !errors.Is(err, ErrInvalidPosition) {
		t.Errorf("expected ErrInvalidPosition past end, got %v", err)
	}
}

func TestSplitAndMerge(t *testing.T) {
	b := FromString("hello world")

	if err := b.SplitLine(Position{Line: 0, Column: 5}); err != nil {
		t.Fatalf("SplitLine: %v", err)
	}
	if b.Text() != "hello\n world" {
		t.Errorf("expected %q, got %q", "hello\n world", b.Text())
	}

	if err := b.MergeLines(0); err != nil {
		t.Fatalf("MergeLines: %v", err)
	}
	if b.Text() != "hello world" {
		t.Errorf("expected %q, got %q", "hello world", b.Text())
	}
}

func TestInsertTextSingleLine(t *testing.T) {
	b := FromString("helloworld")

	end, err := b.InsertText(5, ", ")
	if err != nil {
		t.Fatalf("InsertText: %v", err)
	}
	if b.Text() != "hello, world" {
		t.Errorf("expected %q, got %q", "hello, world", b.Text())
	}
	if end != 7 {
		t.Errorf("expected end offset 7, got %d", end)
	}
}

func TestInsertTextMultiLine(t *testing.T) {
	b := FromString("ab")

	end, err := b.InsertText(1, "1\n2\n3")
	if err != nil {
		t.Fatalf("InsertText: %v", err)
	}
	if b.Text() != "a1\n2\n3b" {
		t.Errorf("expected %q, got %q", "a1\n2\n3b", b.Text())
	}
	pos, _ := b.OffsetToPosition(end)
	if pos != (Position{Line: 2, Column: 1}) {
		t.Errorf("expected end at (2:1), got %v", pos)
	}
}

func TestDeleteRangeSingleLine(t *testing.T) {
	b := FromString("hello, world")

	if err := b.DeleteRange(5, 7); err != nil {
		t.Fatalf("DeleteRange: %v", err)
	}
	if b.Text() != "helloworld" {
		t.Errorf("expected %q, got %q", "helloworld", b.Text())
	}
}

func TestDeleteRangeMultiLine(t *testing.T) {
	b := FromString("one\ntwo\nthree")

	// From after "o" on line 0 through "thr" on line 2.
	if err := b.DeleteRange(1, 11); err != nil {
		t.Fatalf("DeleteRange: %v", err)
	}
	if b.Text() != "oee" {
		t.Errorf("expected %q, got %q", "oee", b.Text())
	}
	if b.LineCount() != 1 {
		t.Errorf("expected 1 line, got %d", b.LineCount())
	}
}

func TestRuneAt(t *testing.T) {
	b := FromString("ab\nc")

	tests := []struct {
		off  Offset
		want rune
		ok   bool
	}{
		{0, 'a', true},
		{1, 'b', true},
		{2, '\n', true},
		{3, 'c', true},
		{4, 0, false},
	}
	for _, tt := range tests {
		got, ok := b.RuneAt(tt.off)
		if got != tt.want || ok != tt.ok {
			t.Errorf("RuneAt(%d): expected (%q, %v), got (%q, %v)", tt.off, tt.want, tt.ok, got, ok)
		}
	}
}

func TestTransactionGroupsChanges(t *testing.T) {
	b := FromString("a\nb\nc")
	before := b.Revision()

	b.Begin()
	if err := b.ReplaceLine(0, "\ta"); err != nil {
		t.Fatalf("ReplaceLine: %v", err)
	}
	if err := b.ReplaceLine(1, "\tb"); err != nil {
		t.Fatalf("ReplaceLine: %v", err)
	}
	if err := b.ReplaceLine(2, "\tc"); err != nil {
		t.Fatalf("ReplaceLine: %v", err)
	}
	tx, err := b.End()
	if err != nil {
		t.Fatalf("End: %v", err)
	}

	if len(tx.Changes) != 3 {
		t.Errorf("expected 3 recorded changes, got %d", len(tx.Changes))
	}
	if b.Revision() != before+1 {
		t.Errorf("expected one revision bump, got %d -> %d", before, b.Revision())
	}
}

func TestEmptyTransactionKeepsRevision(t *testing.T) {
	b := New()
	before := b.Revision()

	b.Begin()
	tx, err := b.End()
	if err != nil {
		t.Fatalf("End: %v", err)
	}

	if !tx.IsEmpty() {
		t.Error("expected empty transaction")
	}
	if b.Revision() != before {
		t.Errorf("empty transaction bumped revision: %d -> %d", before, b.Revision())
	}
}

func TestCancelRollsBack(t *testing.T) {
	b := FromString("a\nb\nc")

	b.Begin()
	if err := b.ReplaceLine(0, "\ta"); err != nil {
		t.Fatalf("ReplaceLine: %v", err)
	}
	if err := b.ReplaceLine(1, "\tb"); err != nil {
		t.Fatalf("ReplaceLine: %v", err)
	}
	if err := b.Cancel(); err != nil {
		t.Fatalf("Cancel: %v", err)
	}

	if b.Text() != "a\nb\nc" {
		t.Errorf("expected rollback to %q, got %q", "a\nb\nc", b.Text())
	}
}

func TestCancelRollsBackStructuralChanges(t *testing.T) {
	b := FromString("hello world\nnext")

	b.Begin()
	if err := b.SplitLine(Position{Line: 0, Column: 5}); err != nil {
		t.Fatalf("SplitLine: %v", err)
	}
	if err := b.InsertLine(1, "mid"); err != nil {
		t.Fatalf("InsertLine: %v", err)
	}
	if err := b.RemoveLine(3); err != nil {
		t.Fatalf("RemoveLine: %v", err)
	}
	if err := b.Cancel(); err != nil {
		t.Fatalf("Cancel: %v", err)
	}

	if b.Text() != "hello world\nnext" {
		t.Errorf("expected rollback, got %q", b.Text())
	}
}

func TestEndWithoutBegin(t *testing.T) {
	b := New()
	if _, err := b.End(); !errors.Is(err, ErrNoTransaction) {
		t.Errorf("expected ErrNoTransaction, got %v", err)
	}
	if err := b.Cancel(); !errors.Is(err, ErrNoTransaction) {
		t.Errorf("expected ErrNoTransaction, got %v", err)
	}
}

func TestApplyInvertedChangesUndoes(t *testing.T) {
	b := FromString("1. one\n2. two")

	b.Begin()
	if err := b.SplitLine(Position{Line: 1, Column: 6}); err != nil {
		t.Fatalf("SplitLine: %v", err)
	}
	if _, err := b.InsertText(13, "\n3. "); err != nil {
		t.Fatalf("InsertText: %v", err)
	}
	tx, err := b.End()
	if err != nil {
		t.Fatalf("End: %v", err)
	}
	changed := b.Text()

	inverted := make([]Change, 0, len(tx.Changes))
	for i := len(tx.Changes) - 1; i >= 0; i-- {
		inverted = append(inverted, tx.Changes[i].Invert())
	}
	if err := b.Apply(inverted); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if b.Text() != "1. one\n2. two" {
		t.Errorf("undo: expected original text, got %q", b.Text())
	}

	// Redo replays the recorded changes forward.
	if err := b.Apply(tx.Changes); err != nil {
		t.Fatalf("Apply redo: %v", err)
	}
	if b.Text() != changed {
		t.Errorf("redo: expected %q, got %q", changed, b.Text())
	}
}

func TestRemoveOnlyLine(t *testing.T) {
	b := New()
	if err := b.RemoveLine(0); !errors.Is(err, ErrLineOutOfRange) {
		t.Errorf("expected ErrLineOutOfRange removing only line, got %v", err)
	}
}

func TestTextRange(t *testing.T) {
	b := FromString("one\ntwo\nthree")

	got, err := b.TextRange(2, 9)
	if err != nil {
		t.Fatalf("TextRange: %v", err)
	}
	if got != "e\ntwo\nt" {
		t.Errorf("expected %q, got %q", "e\ntwo\nt", got)
	}
}
