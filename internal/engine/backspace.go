package engine

import (
	"github.com/dshills/markstorm/internal/engine/cursor"
	"github.com/dshills/markstorm/internal/markdown"
)

// Backspace handles the Backspace key. A selection deletes as usual.
// On a list line with the cursor at or past the structural prefix the
// whole marker goes in one step; a marker-only blockquote line peels
// one quote level; an empty auto-matched delimiter pair collapses.
// Anything else deletes one grapheme cluster, merging lines at a line
// start. Disabled entirely in Hemingway mode.
func (e *Engine) Backspace() error {
	if e.cfg.Hemingway {
		return nil
	}

	before := e.begin()

	if !e.doc.Sel.IsEmpty() {
		if err := e.deleteSelection(); err != nil {
			e.abort(before)
			return err
		}
		return e.commit(before)
	}

	pos := e.CursorPosition()
	info, err := e.doc.Buffer.LineInfo(pos.Line)
	if err != nil {
		e.abort(before)
		return err
	}
	start := e.lineStart(pos.Line)

	// A single Backspace removes a whole list marker. The content
	// after the prefix survives; an empty item collapses to its
	// pre-marker indentation.
	if info.Type.IsList() && pos.Column >= info.PrefixLen() {
		from := start + info.MarkerIndex
		to := start + info.PrefixLen()
		if err := e.doc.Buffer.DeleteRange(from, to); err != nil {
			e.abort(before)
			return err
		}
		e.doc.Sel = cursor.At(from)
		return e.commit(before)
	}

	// A marker-only blockquote line loses its innermost '>' and the
	// trailing whitespace, keeping any outer quote levels.
	if info.Type == markdown.BlockQuote && info.Exact {
		from := start + info.MarkerIndex
		to := start + len([]rune(e.lineText(pos.Line)))
		if err := e.doc.Buffer.DeleteRange(from, to); err != nil {
			e.abort(before)
			return err
		}
		e.doc.Sel = cursor.At(from)
		return e.commit(before)
	}

	// Collapse an empty auto-inserted pair in one step.
	if e.cfg.AutoMatch {
		off := e.doc.Sel.Cursor()
		if prev, ok := e.doc.Buffer.RuneAt(off - 1); ok && off > 0 {
			if closer, isOpener := markdown.CloserFor(prev); isOpener {
				if next, ok := e.doc.Buffer.RuneAt(off); ok && next == closer {
					if err := e.doc.Buffer.DeleteRange(off-1, off+1); err != nil {
						e.abort(before)
						return err
					}
					e.doc.Sel = cursor.At(off - 1)
					return e.commit(before)
				}
			}
		}
	}

	// Ordinary deletion: one grapheme cluster, or the newline joining
	// this line to the previous one.
	off := e.doc.Sel.Cursor()
	prev := cursor.Left(e.doc.Buffer, off)
	if prev == off {
		e.abort(before)
		return nil
	}
	if err := e.doc.Buffer.DeleteRange(prev, off); err != nil {
		e.abort(before)
		return err
	}
	e.doc.Sel = cursor.At(prev)
	return e.commit(before)
}
