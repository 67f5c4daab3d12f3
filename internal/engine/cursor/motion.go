package cursor

import (
	"github.com/rivo/uniseg"

	"github.com/dshills/markstorm/internal/engine/buffer"
)

// NextBoundary returns the rune column of the next grapheme cluster
// boundary after col within line text. At or past the end of the line
// it returns the line length.
func NextBoundary(line string, col int) int {
	runes := []rune(line)
	if col >= len(runes) {
		return len(runes)
	}
	g := uniseg.NewGraphemes(string(runes[col:]))
	if g.Next() {
		return col + len(g.Runes())
	}
	return col + 1
}

// PrevBoundary returns the rune column of the grapheme cluster
// boundary before col within line text. At or before the start it
// returns 0.
func PrevBoundary(line string, col int) int {
	runes := []rune(line)
	if col <= 0 {
		return 0
	}
	if col > len(runes) {
		col = len(runes)
	}
	prev := 0
	g := uniseg.NewGraphemes(string(runes[:col]))
	for g.Next() {
		next := prev + len(g.Runes())
		if next >= col {
			return prev
		}
		prev = next
	}
	return prev
}

// Right returns the offset one grapheme cluster to the right of off,
// stepping onto the next line across a newline.
func Right(b *buffer.Buffer, off Offset) Offset {
	pos, err := b.OffsetToPosition(off)
	if err != nil {
		return b.Clamp(off)
	}
	text, _ := b.LineText(pos.Line)
	if pos.Column < len([]rune(text)) {
		o, _ := b.PositionToOffset(Position{Line: pos.Line, Column: NextBoundary(text, pos.Column)})
		return o
	}
	if pos.Line < b.LineCount()-1 {
		o, _ := b.PositionToOffset(Position{Line: pos.Line + 1, Column: 0})
		return o
	}
	return off
}

// Left returns the offset one grapheme cluster to the left of off,
// stepping onto the previous line across a newline.
func Left(b *buffer.Buffer, off Offset) Offset {
	pos, err := b.OffsetToPosition(off)
	if err != nil {
		return b.Clamp(off)
	}
	if pos.Column > 0 {
		text, _ := b.LineText(pos.Line)
		o, _ := b.PositionToOffset(Position{Line: pos.Line, Column: PrevBoundary(text, pos.Column)})
		return o
	}
	if pos.Line > 0 {
		prev, _ := b.LineLen(pos.Line - 1)
		o, _ := b.PositionToOffset(Position{Line: pos.Line - 1, Column: prev})
		return o
	}
	return off
}

// Vertical returns the offset delta lines away from off, keeping the
// column where the target line is long enough and clamping to the
// target line's end otherwise.
func Vertical(b *buffer.Buffer, off Offset, delta int) Offset {
	pos, err := b.OffsetToPosition(off)
	if err != nil {
		return b.Clamp(off)
	}
	target := pos.Line + delta
	if target < 0 {
		target = 0
	}
	if target > b.LineCount()-1 {
		target = b.LineCount() - 1
	}
	n, _ := b.LineLen(target)
	col := pos.Column
	if col > n {
		col = n
	}
	o, _ := b.PositionToOffset(Position{Line: target, Column: col})
	return o
}

// LineStart returns the offset of the start of off's line.
func LineStart(b *buffer.Buffer, off Offset) Offset {
	pos, err := b.OffsetToPosition(off)
	if err != nil {
		return 0
	}
	o, _ := b.LineStartOffset(pos.Line)
	return o
}

// LineEnd returns the offset of the end of off's line.
func LineEnd(b *buffer.Buffer, off Offset) Offset {
	pos, err := b.OffsetToPosition(off)
	if err != nil {
		return b.Clamp(off)
	}
	n, _ := b.LineLen(pos.Line)
	o, _ := b.PositionToOffset(Position{Line: pos.Line, Column: n})
	return o
}
