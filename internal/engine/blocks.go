package engine

import (
	"strconv"

	"github.com/dshills/markstorm/internal/engine/cursor"
	"github.com/dshills/markstorm/internal/markdown"
)

// PrefixBlocks inserts a structural prefix at the start of every line
// covered by the selection (or the cursor's line) in one transaction.
// Used for bullet markers, task markers, and blockquotes.
func (e *Engine) PrefixBlocks(prefix string) error {
	before := e.begin()
	if err := e.prefixLines(func(int) string { return prefix }); err != nil {
		e.abort(before)
		return err
	}
	return e.commit(before)
}

// CreateNumberedList turns every covered line into a numbered list
// item, counting up from 1. punct is the marker punctuation, '.'
// or ')'.
func (e *Engine) CreateNumberedList(punct rune) error {
	before := e.begin()
	n := 0
	err := e.prefixLines(func(int) string {
		n++
		return strconv.Itoa(n) + string(punct) + " "
	})
	if err != nil {
		e.abort(before)
		return err
	}
	return e.commit(before)
}

// prefixLines inserts prefixFor(i) at the start of each covered line
// and shifts the selection with the text.
func (e *Engine) prefixLines(prefixFor func(line int) string) error {
	first, last, err := e.doc.Sel.LineRange(e.doc.Buffer)
	if err != nil {
		return err
	}
	anchorPos, err := e.doc.Buffer.OffsetToPosition(e.doc.Sel.Anchor)
	if err != nil {
		return err
	}
	headPos, err := e.doc.Buffer.OffsetToPosition(e.doc.Sel.Head)
	if err != nil {
		return err
	}

	added := make(map[int]int, last-first+1)
	for i := first; i <= last; i++ {
		prefix := prefixFor(i)
		if prefix == "" {
			continue
		}
		if err := e.doc.Buffer.ReplaceLine(i, prefix+e.lineText(i)); err != nil {
			return err
		}
		added[i] = len([]rune(prefix))
	}

	anchorPos.Column += added[anchorPos.Line]
	headPos.Column += added[headPos.Line]
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

// RemoveBlockquote strips one leading '>' and any spaces immediately
// after it from every covered line that starts with '>'.
func (e *Engine) RemoveBlockquote() error {
	before := e.begin()

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
		if len(runes) == 0 || runes[0] != '>' {
			continue
		}
		k := 1
		for k < len(runes) && runes[k] == ' ' {
			k++
		}
		if err := e.doc.Buffer.ReplaceLine(i, string(runes[k:])); err != nil {
			e.abort(before)
			return err
		}
		removed[i] = k
	}

	shift := func(pos cursor.Position) (cursor.Offset, error) {
		pos.Column -= removed[pos.Line]
		if pos.Column < 0 {
			pos.Column = 0
		}
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
	return e.commit(before)
}

// ToggleTaskComplete flips the check mark of every covered line that
// matches the task item pattern.
func (e *Engine) ToggleTaskComplete() error {
	before := e.begin()

	first, last, err := e.doc.Sel.LineRange(e.doc.Buffer)
	if err != nil {
		e.abort(before)
		return err
	}

	for i := first; i <= last; i++ {
		info, err := e.doc.Buffer.LineInfo(i)
		if err != nil {
			e.abort(before)
			return err
		}
		if info.Type != markdown.BlockTask {
			continue
		}
		runes := []rune(e.lineText(i))
		mark := info.MarkerIndex + 3
		if info.Checked {
			runes[mark] = ' '
		} else {
			runes[mark] = 'x'
		}
		if err := e.doc.Buffer.ReplaceLine(i, string(runes)); err != nil {
			e.abort(before)
			return err
		}
	}

	return e.commit(before)
}

