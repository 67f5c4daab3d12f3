// Package history provides undo/redo stacks over recorded buffer
// transactions. One committed transaction is one undo step: undo
// replays the transaction's inverted changes in reverse order, redo
// replays them forward. Each record also carries the selection from
// before and after the operation so undo restores the cursor to where
// the user was, and redo to where the operation left it.
//
// Like the rest of the engine, history is single-threaded; it is owned
// by the engine driving the editing session.
package history

import (
	"errors"
	"time"

	"github.com/dshills/markstorm/internal/engine/buffer"
	"github.com/dshills/markstorm/internal/engine/cursor"
)

// Errors returned by history operations.
var (
	ErrNothingToUndo = errors.New("nothing to undo")
	ErrNothingToRedo = errors.New("nothing to redo")
)

// Record is one undoable operation: the changes a transaction made and
// the selections bracketing it.
type Record struct {
	Changes []buffer.Change
	Before  cursor.Selection
	After   cursor.Selection
	At      time.Time
}

// History manages the undo and redo stacks for one document.
type History struct {
	undo []*Record
	redo []*Record

	maxEntries int
}

// New creates a history keeping at most maxEntries undo steps.
func New(maxEntries int) *History {
	if maxEntries <= 0 {
		maxEntries = 1000
	}
	return &History{maxEntries: maxEntries}
}

// Push records a completed operation and clears the redo stack. Empty
// records are ignored.
func (h *History) Push(rec Record) {
	if len(rec.Changes) == 0 {
		return
	}
	if rec.At.IsZero() {
		rec.At = time.Now()
	}
	h.undo = append(h.undo, &rec)
	h.redo = nil

	if len(h.undo) > h.maxEntries {
		excess := len(h.undo) - h.maxEntries
		h.undo = h.undo[excess:]
	}
}

// Undo reverts the most recent record against the buffer and returns
// it. The caller restores the record's Before selection.
func (h *History) Undo(b *buffer.Buffer) (Record, error) {
	if len(h.undo) == 0 {
		return Record{}, ErrNothingToUndo
	}
	rec := h.undo[len(h.undo)-1]

	inverted := make([]buffer.Change, 0, len(rec.Changes))
	for i := len(rec.Changes) - 1; i >= 0; i-- {
		inverted = append(inverted, rec.Changes[i].Invert())
	}
	if err := b.Apply(inverted); err != nil {
		return Record{}, err
	}

	h.undo = h.undo[:len(h.undo)-1]
	h.redo = append(h.redo, rec)
	return *rec, nil
}

// Redo reapplies the most recently undone record and returns it. The
// caller restores the record's After selection.
func (h *History) Redo(b *buffer.Buffer) (Record, error) {
	if len(h.redo) == 0 {
		return Record{}, ErrNothingToRedo
	}
	rec := h.redo[len(h.redo)-1]

	if err := b.Apply(rec.Changes); err != nil {
		return Record{}, err
	}

	h.redo = h.redo[:len(h.redo)-1]
	h.undo = append(h.undo, rec)
	return *rec, nil
}

// CanUndo returns true if an undo step is available.
func (h *History) CanUndo() bool {
	return len(h.undo) > 0
}

// CanRedo returns true if a redo step is available.
func (h *History) CanRedo() bool {
	return len(h.redo) > 0
}

// UndoCount returns the number of available undo steps.
func (h *History) UndoCount() int {
	return len(h.undo)
}

// RedoCount returns the number of available redo steps.
func (h *History) RedoCount() int {
	return len(h.redo)
}

// Clear drops all undo and redo state.
func (h *History) Clear() {
	h.undo = nil
	h.redo = nil
}
