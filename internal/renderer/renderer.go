// Package renderer draws the document into a tcell screen: a scrolling
// viewport over the buffer, a selection highlight, the hardware cursor,
// and a one-row status line.
package renderer

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/dshills/markstorm/internal/engine"
)

// State is the shell-owned display state the engine knows nothing
// about.
type State struct {
	// FileName is shown in the status line; empty means an unnamed
	// buffer.
	FileName string

	// Dirty marks unsaved changes with a dot in the status line.
	Dirty bool
}

// Renderer paints one engine document onto a screen.
type Renderer struct {
	screen tcell.Screen
	top    int // first visible buffer line

	textStyle   tcell.Style
	selStyle    tcell.Style
	statusStyle tcell.Style
}

// New creates a renderer for the given screen.
func New(screen tcell.Screen) *Renderer {
	return &Renderer{
		screen:      screen,
		textStyle:   tcell.StyleDefault,
		selStyle:    tcell.StyleDefault.Reverse(true),
		statusStyle: tcell.StyleDefault.Reverse(true),
	}
}

// Top returns the first visible buffer line. Used by tests.
func (r *Renderer) Top() int {
	return r.top
}

// Draw repaints the whole screen from the engine's document.
func (r *Renderer) Draw(eng *engine.Engine, st State) {
	r.screen.Clear()
	width, height := r.screen.Size()
	if width <= 0 || height <= 0 {
		return
	}

	textRows := height - 1
	if textRows < 1 {
		textRows = height
	}

	buf := eng.Buffer()
	cur := eng.CursorPosition()
	r.scrollTo(cur.Line, textRows)

	sel := eng.Selection()
	selStart, selEnd := sel.Start(), sel.End()
	hasSel := !sel.IsEmpty()

	for row := 0; row < textRows; row++ {
		line := r.top + row
		if line >= buf.LineCount() {
			break
		}
		text, err := buf.LineText(line)
		if err != nil {
			continue
		}
		lineStart, err := buf.LineStartOffset(line)
		if err != nil {
			continue
		}

		x := 0
		for i, ch := range []rune(text) {
			if x >= width {
				break
			}
			style := r.textStyle
			if hasSel {
				off := lineStart + i
				if off >= selStart && off < selEnd {
					style = r.selStyle
				}
			}
			r.screen.SetContent(x, row, ch, nil, style)
			x += cellWidth(ch)
		}
	}

	r.drawStatus(eng, st, width, height-1)

	if cur.Line >= r.top && cur.Line < r.top+textRows {
		text, _ := buf.LineText(cur.Line)
		x := columnX(text, cur.Column)
		if x < width {
			r.screen.ShowCursor(x, cur.Line-r.top)
		} else {
			r.screen.HideCursor()
		}
	} else {
		r.screen.HideCursor()
	}

	r.screen.Show()
}

// scrollTo adjusts the viewport so the cursor line is visible.
func (r *Renderer) scrollTo(line, rows int) {
	if line < r.top {
		r.top = line
	}
	if line >= r.top+rows {
		r.top = line - rows + 1
	}
	if r.top < 0 {
		r.top = 0
	}
}

// columnX converts a rune column into a screen column, accounting for
// wide runes before it.
func columnX(line string, col int) int {
	x := 0
	for i, ch := range []rune(line) {
		if i >= col {
			break
		}
		x += cellWidth(ch)
	}
	return x
}

// drawStatus paints the status line: file name, the block type under
// the cursor, line:col, and a pending-save dot.
func (r *Renderer) drawStatus(eng *engine.Engine, st State, width, row int) {
	if row < 0 {
		return
	}

	name := st.FileName
	if name == "" {
		name = "[no name]"
	}
	dirty := ""
	if st.Dirty {
		dirty = " ●"
	}

	pos := eng.CursorPosition()
	block := "plain"
	if info, err := eng.Buffer().LineInfo(pos.Line); err == nil {
		block = info.Type.String()
	}

	left := fmt.Sprintf(" %s%s", name, dirty)
	right := fmt.Sprintf("%s  %d:%d ", block, pos.Line+1, pos.Column+1)

	x := 0
	for _, ch := range left {
		if x >= width {
			break
		}
		r.screen.SetContent(x, row, ch, nil, r.statusStyle)
		x += cellWidth(ch)
	}
	for ; x < width-len([]rune(right)); x++ {
		r.screen.SetContent(x, row, ' ', nil, r.statusStyle)
	}
	for _, ch := range right {
		if x >= width {
			break
		}
		r.screen.SetContent(x, row, ch, nil, r.statusStyle)
		x += cellWidth(ch)
	}
}

// cellWidth returns the terminal cell width of a rune, minimum 1 so
// zero-width runes still advance.
func cellWidth(ch rune) int {
	w := runewidth.RuneWidth(ch)
	if w < 1 {
		w = 1
	}
	return w
}
