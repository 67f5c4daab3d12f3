package cursor

import (
	"fmt"

	"github.com/dshills/markstorm/internal/engine/buffer"
)

// Offset is an alias for buffer.Offset for convenience.
type Offset = buffer.Offset

// Position is an alias for buffer.Position for convenience.
type Position = buffer.Position

// Range is an alias for buffer.Range for convenience.
type Range = buffer.Range

// Selection is a range of selected text. Anchor is where the selection
// started; Head is the cursor position, where typing occurs. When
// Anchor == Head the selection is a bare cursor.
// Selection is an immutable value type.
type Selection struct {
	Anchor Offset
	Head   Offset
}

// At creates a collapsed selection (a cursor) at the given offset.
func At(offset Offset) Selection {
	if offset < 0 {
		offset = 0
	}
	return Selection{Anchor: offset, Head: offset}
}

// New creates a selection from anchor to head.
func New(anchor, head Offset) Selection {
	return Selection{Anchor: anchor, Head: head}
}

// IsEmpty returns true if the selection has no extent.
func (s Selection) IsEmpty() bool {
	return s.Anchor == s.Head
}

// Len returns the selection length in runes.
func (s Selection) Len() int {
	if s.Anchor <= s.Head {
		return s.Head - s.Anchor
	}
	return s.Anchor - s.Head
}

// Start returns the lower bound of the selection.
func (s Selection) Start() Offset {
	if s.Anchor <= s.Head {
		return s.Anchor
	}
	return s.Head
}

// End returns the upper bound of the selection.
func (s Selection) End() Offset {
	if s.Anchor >= s.Head {
		return s.Anchor
	}
	return s.Head
}

// Range returns the selection as a forward range.
func (s Selection) Range() Range {
	return Range{Start: s.Start(), End: s.End()}
}

// Cursor returns the head position.
func (s Selection) Cursor() Offset {
	return s.Head
}

// IsForward returns true if the selection extends forward.
func (s Selection) IsForward() bool {
	return s.Head >= s.Anchor
}

// MoveTo returns a new collapsed selection at the given offset.
func (s Selection) MoveTo(offset Offset) Selection {
	return At(offset)
}

// MoveBy returns a new selection with both ends shifted by delta.
func (s Selection) MoveBy(delta int) Selection {
	return Selection{Anchor: s.Anchor + delta, Head: s.Head + delta}
}

// Extend returns a new selection with the head moved to offset and the
// anchor fixed.
func (s Selection) Extend(offset Offset) Selection {
	if offset < 0 {
		offset = 0
	}
	return Selection{Anchor: s.Anchor, Head: offset}
}

// Collapse collapses the selection to a cursor at the head.
func (s Selection) Collapse() Selection {
	return At(s.Head)
}

// CollapseToStart collapses the selection to its start.
func (s Selection) CollapseToStart() Selection {
	return At(s.Start())
}

// CollapseToEnd collapses the selection to its end.
func (s Selection) CollapseToEnd() Selection {
	return At(s.End())
}

// Clamp returns a selection limited to [0, maxOffset].
func (s Selection) Clamp(maxOffset Offset) Selection {
	clamp := func(o Offset) Offset {
		if o < 0 {
			return 0
		}
		if o > maxOffset {
			return maxOffset
		}
		return o
	}
	return Selection{Anchor: clamp(s.Anchor), Head: clamp(s.Head)}
}

// Equals returns true if two selections have the same anchor and head.
func (s Selection) Equals(other Selection) bool {
	return s.Anchor == other.Anchor && s.Head == other.Head
}

// String returns a human-readable representation of the selection.
func (s Selection) String() string {
	if s.IsEmpty() {
		return fmt.Sprintf("Cursor(%d)", s.Head)
	}
	return fmt.Sprintf("Selection(%d..%d)", s.Anchor, s.Head)
}

// LineRange returns the indices of the first and last line touched by
// the selection, both inclusive. For a bare cursor both are the
// cursor's line. A selection ending at column 0 of a line still counts
// that line; the engines treat any touched line as covered.
func (s Selection) LineRange(b *buffer.Buffer) (first, last int, err error) {
	sp, err := b.OffsetToPosition(s.Start())
	if err != nil {
		return 0, 0, fmt.Errorf("selection start: %w", err)
	}
	ep, err := b.OffsetToPosition(s.End())
	if err != nil {
		return 0, 0, fmt.Errorf("selection end: %w", err)
	}
	return sp.Line, ep.Line, nil
}

// SingleLine reports whether the selection's extent lies within one
// line, and returns that line's index.
func (s Selection) SingleLine(b *buffer.Buffer) (int, bool) {
	first, last, err := s.LineRange(b)
	if err != nil || first != last {
		return 0, false
	}
	return first, true
}
