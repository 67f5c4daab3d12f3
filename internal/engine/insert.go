package engine

import (
	"github.com/dshills/markstorm/internal/engine/cursor"
	"github.com/dshills/markstorm/internal/markdown"
)

// InsertText inserts text at the cursor, replacing any active
// selection. The cursor ends just past the inserted text.
func (e *Engine) InsertText(text string) error {
	before := e.begin()
	if err := e.deleteSelection(); err != nil {
		e.abort(before)
		return err
	}
	end, err := e.doc.Buffer.InsertText(e.doc.Sel.Cursor(), text)
	if err != nil {
		e.abort(before)
		return err
	}
	e.doc.Sel = cursor.At(end)
	return e.commit(before)
}

// TypeRune handles one typed printable character, applying the
// paired-delimiter rules. Evaluation order: skip-over a matching
// closer, wrap a single-line selection, auto-insert a pair, otherwise
// plain insertion.
func (e *Engine) TypeRune(ch rune) error {
	sel := e.doc.Sel

	// Skip-over: typing a closer directly before the identical closer
	// moves the cursor instead of doubling it. Checked before pair
	// insertion so symmetric delimiters skip rather than nest.
	if e.cfg.AutoMatch && sel.IsEmpty() {
		if opener, ok := markdown.OpenerFor(ch); ok && e.cfg.FilterFor(opener) {
			if next, ok := e.doc.Buffer.RuneAt(sel.Cursor()); ok && next == ch {
				e.doc.Sel = cursor.At(sel.Cursor() + 1)
				return nil
			}
		}
	}

	// Wrap: an explicit action on a single-line selection; the enable
	// flags do not apply.
	if !sel.IsEmpty() {
		if _, single := sel.SingleLine(e.doc.Buffer); single {
			if closer, ok := markdown.CloserFor(ch); ok {
				return e.wrapSelection(string(ch), string(closer))
			}
		}
	}

	// Auto-insert the pair with the cursor between.
	if sel.IsEmpty() && e.cfg.AutoMatch {
		if closer, ok := markdown.CloserFor(ch); ok && e.cfg.FilterFor(ch) {
			before := e.begin()
			if _, err := e.doc.Buffer.InsertText(sel.Cursor(), string(ch)+string(closer)); err != nil {
				e.abort(before)
				return err
			}
			e.doc.Sel = cursor.At(sel.Cursor() + 1)
			return e.commit(before)
		}
	}

	return e.InsertText(string(ch))
}

// wrapSelection surrounds the selection with open/close markers and
// reselects exactly the original text.
func (e *Engine) wrapSelection(open, close string) error {
	before := e.begin()
	r := e.doc.Sel.Range()

	// Insert the closer first so the start offset stays valid.
	if _, err := e.doc.Buffer.InsertText(r.End, close); err != nil {
		e.abort(before)
		return err
	}
	if _, err := e.doc.Buffer.InsertText(r.Start, open); err != nil {
		e.abort(before)
		return err
	}

	n := len([]rune(open))
	if e.doc.Sel.IsForward() {
		e.doc.Sel = cursor.New(r.Start+n, r.End+n)
	} else {
		e.doc.Sel = cursor.New(r.End+n, r.Start+n)
	}
	return e.commit(before)
}

// DeleteForward removes the grapheme cluster after the cursor, or the
// selection if one is active. Disabled in Hemingway mode.
func (e *Engine) DeleteForward() error {
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

	off := e.doc.Sel.Cursor()
	next := cursor.Right(e.doc.Buffer, off)
	if next == off {
		e.abort(before)
		return nil
	}
	if err := e.doc.Buffer.DeleteRange(off, next); err != nil {
		e.abort(before)
		return err
	}
	return e.commit(before)
}
