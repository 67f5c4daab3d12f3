package history

import (
	"errors"
	"testing"

	"github.com/dshills/markstorm/internal/engine/buffer"
	"github.com/dshills/markstorm/internal/engine/cursor"
)

// change applies a transaction to the buffer and returns its record.
func change(t *testing.T, b *buffer.Buffer, before, after cursor.Selection, mutate func()) Record {
	t.Helper()
	b.Begin()
	mutate()
	tx, err := b.End()
	if err != nil {
		t.Fatalf("End: %v", err)
	}
	return Record{Changes: tx.Changes, Before: before, After: after}
}

func TestUndoRedoRoundTrip(t *testing.T) {
	b := buffer.FromString("hello")
	h := New(0)

	rec := change(t, b, cursor.At(5), cursor.At(7), func() {
		if _, err := b.InsertText(5, ", world"); err != nil {
			t.Fatalf("InsertText: %v", err)
		}
	})
	h.Push(rec)

	got, err := h.Undo(b)
	if err != nil {
		t.Fatalf("Undo: %v", err)
	}
	if b.Text() != "hello" {
		t.Errorf("expected %q after undo, got %q", "hello", b.Text())
	}
	if !got.Before.Equals(cursor.At(5)) {
		t.Errorf("expected before-selection at 5, got %v", got.Before)
	}

	got, err = h.Redo(b)
	if err != nil {
		t.Fatalf("Redo: %v", err)
	}
	if b.Text() != "hello, world" {
		t.Errorf("expected %q after redo, got %q", "hello, world", b.Text())
	}
	if !got.After.Equals(cursor.At(7)) {
		t.Errorf("expected after-selection at 7, got %v", got.After)
	}
}

func TestUndoMultiLineTransaction(t *testing.T) {
	b := buffer.FromString("a\nb\nc")
	h := New(0)

	rec := change(t, b, cursor.New(0, 5), cursor.New(0, 8), func() {
		for i := 0; i < 3; i++ {
			text, _ := b.LineText(i)
			if err := b.ReplaceLine(i, "\t"+text); err != nil {
				t.Fatalf("ReplaceLine: %v", err)
			}
		}
	})
	h.Push(rec)

	if _, err := h.Undo(b); err != nil {
		t.Fatalf("Undo: %v", err)
	}
	if b.Text() != "a\nb\nc" {
		t.Errorf("expected all three lines restored, got %q", b.Text())
	}
}

func TestUndoEmpty(t *testing.T) {
	h := New(0)
	if _, err := h.Undo(buffer.New()); !errors.Is(err, ErrNothingToUndo) {
		t.Errorf("expected ErrNothingToUndo, got %v", err)
	}
	if _, err := h.Redo(buffer.New()); !errors.Is(err, ErrNothingToRedo) {
		t.Errorf("expected ErrNothingToRedo, got %v", err)
	}
}

func TestPushClearsRedo(t *testing.T) {
	b := buffer.FromString("x")
	h := New(0)

	h.Push(change(t, b, cursor.At(1), cursor.At(2), func() {
		if _, err := b.InsertText(1, "y"); err != nil {
			t.Fatal(err)
		}
	}))
	if _, err := h.Undo(b); err != nil {
		t.Fatalf("Undo: %v", err)
	}
	if !h.CanRedo() {
		t.Fatal("expected redo available after undo")
	}

	h.Push(change(t, b, cursor.At(1), cursor.At(2), func() {
		if _, err := b.InsertText(1, "z"); err != nil {
			t.Fatal(err)
		}
	}))
	if h.CanRedo() {
		t.Error("push must clear the redo stack")
	}
}

func TestPushIgnoresEmptyRecord(t *testing.T) {
	h := New(0)
	h.Push(Record{})
	if h.CanUndo() {
		t.Error("empty record must not create an undo step")
	}
}

func TestMaxEntries(t *testing.T) {
	b := buffer.FromString("")
	h := New(2)

	for i := 0; i < 3; i++ {
		h.Push(change(t, b, cursor.At(0), cursor.At(1), func() {
			if _, err := b.InsertText(0, "a"); err != nil {
				t.Fatal(err)
			}
		}))
	}

	if h.UndoCount() != 2 {
		t.Errorf("expected undo stack capped at 2, got %d", h.UndoCount())
	}
}
