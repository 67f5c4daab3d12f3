package engine

import (
	"errors"

	"github.com/dshills/markstorm/internal/engine/buffer"
	"github.com/dshills/markstorm/internal/engine/history"
)

// Undo reverts the most recent operation and restores the selection
// the user had before it. Returns nil when there is nothing to undo.
func (e *Engine) Undo() error {
	rec, err := e.doc.History.Undo(e.doc.Buffer)
	if err != nil {
		if errors.Is(err, history.ErrNothingToUndo) {
			return nil
		}
		return err
	}
	e.doc.Sel = rec.Before.Clamp(e.doc.Buffer.Len())

	inverted := make([]buffer.Change, 0, len(rec.Changes))
	for i := len(rec.Changes) - 1; i >= 0; i-- {
		inverted = append(inverted, rec.Changes[i].Invert())
	}
	e.publish(inverted)
	return nil
}

// Redo reapplies the most recently undone operation and restores the
// selection it produced. Returns nil when there is nothing to redo.
func (e *Engine) Redo() error {
	rec, err := e.doc.History.Redo(e.doc.Buffer)
	if err != nil {
		if errors.Is(err, history.ErrNothingToRedo) {
			return nil
		}
		return err
	}
	e.doc.Sel = rec.After.Clamp(e.doc.Buffer.Len())
	e.publish(rec.Changes)
	return nil
}

// CanUndo reports whether an undo step is available.
func (e *Engine) CanUndo() bool {
	return e.doc.History.CanUndo()
}

// CanRedo reports whether a redo step is available.
func (e *Engine) CanRedo() bool {
	return e.doc.History.CanRedo()
}
