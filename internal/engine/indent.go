package engine

import (
	"strings"

	"github.com/dshills/markstorm/internal/engine/buffer"
	"github.com/dshills/markstorm/internal/engine/cursor"
	"github.com/dshills/markstorm/internal/markdown"
)

// Indent shifts every line covered by the selection one tab unit
// right, in a single transaction. Without a selection the behavior
// depends on the current line: an empty numbered item restarts its
// numbering at 1, an empty bullet item rotates its marker (cycling
// enabled), a list item with content takes a full tab unit at the
// cursor, and anything else gets space padding to the next tab stop.
func (e *Engine) Indent() error {
	before := e.begin()

	if !e.doc.Sel.IsEmpty() {
		if err := e.indentSelection(); err != nil {
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

	switch {
	case info.Type == markdown.BlockNumbered && info.Exact:
		// Nesting a numbered list restarts the numbering.
		if err := e.doc.Buffer.ReplaceLine(pos.Line, info.PrefixWithNumber(1)); err != nil {
			e.abort(before)
			return err
		}
		if err := e.indentLineStart(pos.Line); err != nil {
			e.abort(before)
			return err
		}

	case info.Type == markdown.BlockBullet && info.Exact:
		if e.cfg.BulletCycling {
			line := e.lineText(pos.Line)
			rotated := strings.ReplaceAll(line, string(info.Marker), string(markdown.CycleMarker(info.Marker)))
			if err := e.doc.Buffer.ReplaceLine(pos.Line, rotated); err != nil {
				e.abort(before)
				return err
			}
		}
		if err := e.indentLineStart(pos.Line); err != nil {
			e.abort(before)
			return err
		}

	case info.Type == markdown.BlockTask && info.Exact:
		if err := e.indentLineStart(pos.Line); err != nil {
			e.abort(before)
			return err
		}

	case info.Type == markdown.BlockNumbered || info.Type == markdown.BlockBullet || info.Type == markdown.BlockTask:
		// A list item with content after the marker takes a full tab
		// unit at the cursor, not tab-stop padding.
		end, err := e.doc.Buffer.InsertText(e.doc.Sel.Cursor(), e.cfg.TabUnit())
		if err != nil {
			e.abort(before)
			return err
		}
		e.doc.Sel = cursor.At(end)

	default:
		// Align to the next tab stop rather than inserting a fixed unit.
		var pad string
		if e.cfg.InsertSpaces {
			pad = strings.Repeat(" ", e.cfg.TabWidth-pos.Column%e.cfg.TabWidth)
		} else {
			pad = "\t"
		}
		end, err := e.doc.Buffer.InsertText(e.doc.Sel.Cursor(), pad)
		if err != nil {
			e.abort(before)
			return err
		}
		e.doc.Sel = cursor.At(end)
	}

	return e.commit(before)
}

// indentLineStart inserts one tab unit at the start of a line and
// parks the cursor just after it.
func (e *Engine) indentLineStart(line int) error {
	unit := e.cfg.TabUnit()
	start := e.lineStart(line)
	end, err := e.doc.Buffer.InsertText(start, unit)
	if err != nil {
		return err
	}
	e.doc.Sel = cursor.At(end)
	return nil
}

// indentSelection prepends one tab unit to every covered line and
// shifts the selection with the text.
func (e *Engine) indentSelection() error {
	first, last, err := e.doc.Sel.LineRange(e.doc.Buffer)
	if err != nil {
		return err
	}
	unit := e.cfg.TabUnit()
	n := len([]rune(unit))

	anchorPos, err := e.doc.Buffer.OffsetToPosition(e.doc.Sel.Anchor)
	if err != nil {
		return err
	}
	headPos, err := e.doc.Buffer.OffsetToPosition(e.doc.Sel.Head)
	if err != nil {
		return err
	}

	for i := first; i <= last; i++ {
		if err := e.doc.Buffer.ReplaceLine(i, unit+e.lineText(i)); err != nil {
			return err
		}
	}

	anchorPos.Column += n
	headPos.Column += n
	anchor, err := e.doc.Buffer.PositionToOffset(anchorPos)
	if err != nil {
		return err
	}
	head, err := e.doc.Buffer.PositionToOffset(headPos)
	if err != nil {
		return err
	}
	e.doc.Sel = cursor.New(anchor, head)
	return nil
}

// Outdent removes one leading tab unit from every covered line: a tab
// character if present, otherwise up to tabWidth leading spaces.
// Without a selection, an empty bullet item afterwards rotates its
// marker in reverse (cycling enabled).
func (e *Engine) Outdent() error {
	before := e.begin()
	hasSelection := !e.doc.Sel.IsEmpty()

	first, last, err := e.doc.Sel.LineRange(e.doc.Buffer)
	if err != nil {
		e.abort(before)
		return err
	}

	anchorPos, err := e.doc.Buffer.OffsetToPosition(e.doc.Sel.Anchor)
	if err != nil {
		e.abort(before)
		return err
	}
	headPos, err := e.doc.Buffer.OffsetToPosition(e.doc.Sel.Head)
	if err != nil {
		e.abort(before)
		return err
	}

	removed := make(map[int]int, last-first+1)
	for i := first; i <= last; i++ {
		runes := []rune(e.lineText(i))
		k := 0
		if len(runes) > 0 && runes[0] == '\t' {
			k = 1
		} else {
			for k < len(runes) && k < e.cfg.TabWidth && runes[k] == ' ' {
				k++
			}
		}
		if k == 0 {
			continue
		}
		if err := e.doc.Buffer.ReplaceLine(i, string(runes[k:])); err != nil {
			e.abort(before)
			return err
		}
		removed[i] = k
	}

	shift := func(pos buffer.Position) (buffer.Offset, error) {
		pos.Column -= removed[pos.Line]
		if pos.Column < 0 {
			pos.Column = 0
		}
		// PositionToOffset clamps the column to the shortened line.
		return e.doc.Buffer.PositionToOffset(pos)
	}

	anchor, err := shift(anchorPos)
	if err != nil {
		e.abort(before)
		return err
	}
	head, err := shift(headPos)
	if err != nil {
		e.abort(before)
		return err
	}
	e.doc.Sel = cursor.New(anchor, head)

	if !hasSelection && e.cfg.BulletCycling {
		info, err := e.doc.Buffer.LineInfo(first)
		if err == nil && info.Type == markdown.BlockBullet && info.Exact {
			line := e.lineText(first)
			rotated := strings.ReplaceAll(line, string(info.Marker), string(markdown.CycleMarkerReverse(info.Marker)))
			if err := e.doc.Buffer.ReplaceLine(first, rotated); err != nil {
				e.abort(before)
				return err
			}
		}
	}

	return e.commit(before)
}
