package engine

import "github.com/dshills/markstorm/internal/engine/cursor"

// Cursor motion. Each move either collapses the selection to the new
// position or, with extend set (Shift held), keeps the anchor and
// moves only the head. Motions never mutate the buffer and publish no
// events.

func (e *Engine) move(target cursor.Offset, extend bool) {
	if extend {
		e.doc.Sel = e.doc.Sel.Extend(target)
		return
	}
	e.doc.Sel = cursor.At(target)
}

// MoveLeft moves one grapheme cluster left.
func (e *Engine) MoveLeft(extend bool) {
	e.move(cursor.Left(e.doc.Buffer, e.doc.Sel.Cursor()), extend)
}

// MoveRight moves one grapheme cluster right.
func (e *Engine) MoveRight(extend bool) {
	e.move(cursor.Right(e.doc.Buffer, e.doc.Sel.Cursor()), extend)
}

// MoveUp moves one line up, clamping to the target line's end.
func (e *Engine) MoveUp(extend bool) {
	e.move(cursor.Vertical(e.doc.Buffer, e.doc.Sel.Cursor(), -1), extend)
}

// MoveDown moves one line down, clamping to the target line's end.
func (e *Engine) MoveDown(extend bool) {
	e.move(cursor.Vertical(e.doc.Buffer, e.doc.Sel.Cursor(), 1), extend)
}

// MoveLineStart moves to the start of the cursor's line.
func (e *Engine) MoveLineStart(extend bool) {
	e.move(cursor.LineStart(e.doc.Buffer, e.doc.Sel.Cursor()), extend)
}

// MoveLineEnd moves to the end of the cursor's line.
func (e *Engine) MoveLineEnd(extend bool) {
	e.move(cursor.LineEnd(e.doc.Buffer, e.doc.Sel.Cursor()), extend)
}

// MoveDocStart moves to the start of the document.
func (e *Engine) MoveDocStart(extend bool) {
	e.move(0, extend)
}

// MoveDocEnd moves to the end of the document.
func (e *Engine) MoveDocEnd(extend bool) {
	e.move(e.doc.Buffer.Len(), extend)
}

// SelectAll selects the whole document with the head at the end.
func (e *Engine) SelectAll() {
	e.doc.Sel = cursor.New(0, e.doc.Buffer.Len())
}
