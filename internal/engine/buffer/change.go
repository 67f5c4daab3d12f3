package buffer

import "fmt"

// ChangeType categorizes a recorded buffer mutation.
type ChangeType uint8

const (
	ChangeReplaceLine ChangeType = iota // A line's text was replaced
	ChangeSplitLine                     // A line was split in two
	ChangeMergeLines                    // A line absorbed its successor
	ChangeInsertLine                    // A new line was inserted
	ChangeRemoveLine                    // A line was removed
)

// String returns a string representation of the change type.
func (t ChangeType) String() string {
	switch t {
	case ChangeReplaceLine:
		return "replace-line"
	case ChangeSplitLine:
		return "split-line"
	case ChangeMergeLines:
		return "merge-lines"
	case ChangeInsertLine:
		return "insert-line"
	case ChangeRemoveLine:
		return "remove-line"
	default:
		return "unknown"
	}
}

// Change is one recorded, invertible buffer mutation. A committed
// transaction carries the ordered list of changes it performed; undo
// replays the inversions in reverse order.
type Change struct {
	Type ChangeType

	// Line is the index the change applies to: the replaced, split,
	// inserted, or removed line, or the first of two merged lines.
	Line int

	// Column is the split point for ChangeSplitLine, and the length of
	// the first line before the join for ChangeMergeLines (so the
	// inverse split lands in the right place).
	Column int

	// OldText is the previous text for replace and remove changes.
	OldText string

	// NewText is the resulting text for replace and insert changes.
	NewText string
}

// Invert returns the change that undoes this one.
func (c Change) Invert() Change {
	switch c.Type {
	case ChangeReplaceLine:
		return Change{Type: ChangeReplaceLine, Line: c.Line, OldText: c.NewText, NewText: c.OldText}
	case ChangeSplitLine:
		return Change{Type: ChangeMergeLines, Line: c.Line, Column: c.Column}
	case ChangeMergeLines:
		return Change{Type: ChangeSplitLine, Line: c.Line, Column: c.Column}
	case ChangeInsertLine:
		return Change{Type: ChangeRemoveLine, Line: c.Line, OldText: c.NewText}
	case ChangeRemoveLine:
		return Change{Type: ChangeInsertLine, Line: c.Line, NewText: c.OldText}
	default:
		return c
	}
}

// String returns a human-readable representation of the change.
func (c Change) String() string {
	switch c.Type {
	case ChangeReplaceLine:
		return fmt.Sprintf("ReplaceLine(%d, %q→%q)", c.Line, c.OldText, c.NewText)
	case ChangeSplitLine:
		return fmt.Sprintf("SplitLine(%d:%d)", c.Line, c.Column)
	case ChangeMergeLines:
		return fmt.Sprintf("MergeLines(%d)", c.Line)
	case ChangeInsertLine:
		return fmt.Sprintf("InsertLine(%d, %q)", c.Line, c.NewText)
	case ChangeRemoveLine:
		return fmt.Sprintf("RemoveLine(%d)", c.Line)
	default:
		return "Change(unknown)"
	}
}

// Transaction is the committed result of a Begin/End pair: the ordered
// changes performed and the revision they produced. An empty
// transaction (no changes) commits without bumping the revision.
type Transaction struct {
	Changes  []Change
	Revision Revision
}

// IsEmpty returns true if the transaction recorded no changes.
func (tx Transaction) IsEmpty() bool {
	return len(tx.Changes) == 0
}
