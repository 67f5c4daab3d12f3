package engine

import (
	"github.com/dshills/markstorm/internal/engine/cursor"
)

// Formatting markup recognized by the editor actions.
const (
	MarkupBold          = "**"
	MarkupItalic        = "*"
	MarkupStrikethrough = "~~"
)

// WrapFormatting surrounds the selection with the given markup on both
// sides, leaving the selection covering exactly the original text. The
// wrap is position-based and may span lines. Without a selection the
// markup is inserted twice with the cursor between the pair.
func (e *Engine) WrapFormatting(markup string) error {
	if e.doc.Sel.IsEmpty() {
		before := e.begin()
		off := e.doc.Sel.Cursor()
		if _, err := e.doc.Buffer.InsertText(off, markup+markup); err != nil {
			e.abort(before)
			return err
		}
		e.doc.Sel = cursor.At(off + len([]rune(markup)))
		return e.commit(before)
	}
	return e.wrapSelection(markup, markup)
}

// InsertComment wraps the selection in an HTML comment, or inserts an
// empty comment with the cursor between the markers.
func (e *Engine) InsertComment() error {
	const open, close = "<!-- ", " -->"

	if !e.doc.Sel.IsEmpty() {
		before := e.begin()
		r := e.doc.Sel.Range()
		if _, err := e.doc.Buffer.InsertText(r.End, close); err != nil {
			e.abort(before)
			return err
		}
		if _, err := e.doc.Buffer.InsertText(r.Start, open); err != nil {
			e.abort(before)
			return err
		}
		e.doc.Sel = cursor.At(r.End + len([]rune(open)) + len([]rune(close)))
		return e.commit(before)
	}

	before := e.begin()
	off := e.doc.Sel.Cursor()
	if _, err := e.doc.Buffer.InsertText(off, open+close); err != nil {
		e.abort(before)
		return err
	}
	e.doc.Sel = cursor.At(off + len([]rune(open)))
	return e.commit(before)
}
