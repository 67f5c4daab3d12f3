package engine

import (
	"github.com/dshills/markstorm/internal/engine/buffer"
	"github.com/dshills/markstorm/internal/engine/cursor"
	"github.com/dshills/markstorm/internal/markdown"
)

// Newline handles Enter: split the line and continue the current
// markdown construct on the new line. An empty list item terminates
// the list instead.
func (e *Engine) Newline() error {
	return e.newline(false, false)
}

// LineBreak handles Shift+Enter: insert a markdown hard line break
// (two trailing spaces) before the newline, then continue as usual.
func (e *Engine) LineBreak() error {
	return e.newline(false, true)
}

// HardNewline handles Ctrl+Enter: a literal newline with no
// continuation. With markdownBreak, Shift composes and the two break
// spaces are still inserted first.
func (e *Engine) HardNewline(markdownBreak bool) error {
	return e.newline(true, markdownBreak)
}

func (e *Engine) newline(hard, markdownBreak bool) error {
	before := e.begin()

	// A selection disables continuation: the newline simply replaces
	// the selected text.
	if !e.doc.Sel.IsEmpty() {
		if err := e.deleteSelection(); err != nil {
			e.abort(before)
			return err
		}
		hard = true
	}

	if markdownBreak {
		end, err := e.doc.Buffer.InsertText(e.doc.Sel.Cursor(), "  ")
		if err != nil {
			e.abort(before)
			return err
		}
		e.doc.Sel = cursor.At(end)
	}

	pos := e.CursorPosition()
	if hard {
		if err := e.doc.Buffer.SplitLine(pos); err != nil {
			e.abort(before)
			return err
		}
		e.doc.Sel = cursor.At(e.lineStart(pos.Line + 1))
		return e.commit(before)
	}

	line := e.lineText(pos.Line)
	cont := markdown.ContinuationFor(line, pos.Column)

	if cont.Terminate {
		// Empty list item: strip the marker, leave only the item's
		// leading indentation, and start a plain line below it.
		ws := markdown.LeadingWhitespace(line)
		if err := e.doc.Buffer.ReplaceLine(pos.Line, ws); err != nil {
			e.abort(before)
			return err
		}
		split := buffer.Position{Line: pos.Line, Column: len([]rune(ws))}
		if err := e.doc.Buffer.SplitLine(split); err != nil {
			e.abort(before)
			return err
		}
		e.doc.Sel = cursor.At(e.lineStart(pos.Line + 1))
		return e.commit(before)
	}

	if err := e.doc.Buffer.SplitLine(pos); err != nil {
		e.abort(before)
		return err
	}
	newStart := e.lineStart(pos.Line + 1)
	end, err := e.doc.Buffer.InsertText(newStart, cont.Insert)
	if err != nil {
		e.abort(before)
		return err
	}
	e.doc.Sel = cursor.At(end)
	return e.commit(before)
}
