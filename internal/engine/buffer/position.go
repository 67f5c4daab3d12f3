package buffer

import "fmt"

// Offset is an absolute rune position in the buffer. Newlines between
// lines count as one rune each.
type Offset = int

// Position is a line and column location. Both are 0-indexed; Column
// is measured in runes from the start of the line.
type Position struct {
	Line   int
	Column int
}

// String returns a human-readable representation of the position.
func (p Position) String() string {
	return fmt.Sprintf("(%d:%d)", p.Line, p.Column)
}

// Compare returns -1 if p < other, 0 if p == other, 1 if p > other.
func (p Position) Compare(other Position) int {
	if p.Line != other.Line {
		if p.Line < other.Line {
			return -1
		}
		return 1
	}
	if p.Column != other.Column {
		if p.Column < other.Column {
			return -1
		}
		return 1
	}
	return 0
}

// Before returns true if p comes before other.
func (p Position) Before(other Position) bool {
	return p.Compare(other) < 0
}

// After returns true if p comes after other.
func (p Position) After(other Position) bool {
	return p.Compare(other) > 0
}

// Range is a half-open span of buffer offsets [Start, End).
type Range struct {
	Start Offset
	End   Offset
}

// Len returns the range length in runes.
func (r Range) Len() int {
	return r.End - r.Start
}

// IsEmpty returns true if the range covers no text.
func (r Range) IsEmpty() bool {
	return r.Start >= r.End
}

// Contains returns true if the offset lies within the range.
func (r Range) Contains(offset Offset) bool {
	return offset >= r.Start && offset < r.End
}

// String returns a human-readable representation of the range.
func (r Range) String() string {
	return fmt.Sprintf("[%d,%d)", r.Start, r.End)
}

// Revision identifies the buffer's content generation. Every committed
// transaction (and every bare mutation outside a transaction) produces
// a new revision.
type Revision uint64

// LineID is the stable identity of a line record. It survives in-place
// edits to the line's text and is never reused within a buffer.
type LineID uint64
