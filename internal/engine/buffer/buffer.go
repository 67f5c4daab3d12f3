package buffer

import (
	"strings"

	"github.com/dshills/markstorm/internal/markdown"
)

// line is one line record. The text never contains a newline; the
// classification is computed on demand and dropped on any edit.
type line struct {
	id   LineID
	text []rune
	info *markdown.LineInfo
}

func (l *line) setText(text string) {
	l.text = []rune(text)
	l.info = nil
}

// Buffer is an ordered sequence of line records. A buffer always holds
// at least one line; the zero content is a single empty line.
type Buffer struct {
	lines    []*line
	nextID   LineID
	revision Revision

	txDepth   int
	txChanges []Change
}

// New creates an empty buffer: one empty line.
func New() *Buffer {
	b := &Buffer{}
	b.lines = []*line{b.newLine("")}
	return b
}

// FromString creates a buffer with initial content. Line endings are
// normalized to LF before splitting.
func FromString(s string) *Buffer {
	s = normalizeLineEndings(s)
	parts := strings.Split(s, "\n")
	b := &Buffer{lines: make([]*line, 0, len(parts))}
	for _, p := range parts {
		b.lines = append(b.lines, b.newLine(p))
	}
	return b
}

// normalizeLineEndings converts CRLF and bare CR to LF.
func normalizeLineEndings(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}

func (b *Buffer) newLine(text string) *line {
	b.nextID++
	return &line{id: b.nextID, text: []rune(text)}
}

// Read operations

// LineCount returns the number of lines. Always at least 1.
func (b *Buffer) LineCount() int {
	return len(b.lines)
}

// Revision returns the current content revision.
func (b *Buffer) Revision() Revision {
	return b.revision
}

// LineText returns the text of a line, without a trailing newline.
func (b *Buffer) LineText(i int) (string, error) {
	if i < 0 || i >= len(b.lines) {
		return "", ErrLineOutOfRange
	}
	return string(b.lines[i].text), nil
}

// LineLen returns the rune length of a line.
func (b *Buffer) LineLen(i int) (int, error) {
	if i < 0 || i >= len(b.lines) {
		return 0, ErrLineOutOfRange
	}
	return len(b.lines[i].text), nil
}

// LineID returns the stable identity of a line record.
func (b *Buffer) LineID(i int) (LineID, error) {
	if i < 0 || i >= len(b.lines) {
		return 0, ErrLineOutOfRange
	}
	return b.lines[i].id, nil
}

// LineInfo returns the markdown classification of a line. The result
// is cached per line and recomputed after any edit to that line.
func (b *Buffer) LineInfo(i int) (markdown.LineInfo, error) {
	if i < 0 || i >= len(b.lines) {
		return markdown.LineInfo{}, ErrLineOutOfRange
	}
	l := b.lines[i]
	if l.info == nil {
		info := markdown.Classify(string(l.text))
		l.info = &info
	}
	return *l.info, nil
}

// Text returns the full buffer content.
func (b *Buffer) Text() string {
	var sb strings.Builder
	for i, l := range b.lines {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(string(l.text))
	}
	return sb.String()
}

// Len returns the total buffer length in runes, counting one rune per
// newline between lines.
func (b *Buffer) Len() Offset {
	n := 0
	for _, l := range b.lines {
		n += len(l.text) + 1
	}
	return n - 1
}

// LineStartOffset returns the absolute offset of the start of a line.
func (b *Buffer) LineStartOffset(i int) (Offset, error) {
	if i < 0 || i >= len(b.lines) {
		return 0, ErrLineOutOfRange
	}
	off := 0
	for j := 0; j < i; j++ {
		off += len(b.lines[j].text) + 1
	}
	return off, nil
}

// OffsetToPosition converts an absolute offset to a line/column
// position. The offset at the very end of the buffer is valid.
func (b *Buffer) OffsetToPosition(off Offset) (Position, error) {
	if off < 0 {
		return Position{}, ErrInvalidPosition
	}
	rest := off
	for i, l := range b.lines {
		if rest <= len(l.text) {
			return Position{Line: i, Column: rest}, nil
		}
		rest -= len(l.text) + 1
	}
	return Position{}, ErrInvalidPosition
}

// PositionToOffset converts a line/column position to an absolute
// offset. The column is clamped to the line's length.
func (b *Buffer) PositionToOffset(pos Position) (Offset, error) {
	if pos.Line < 0 || pos.Line >= len(b.lines) || pos.Column < 0 {
		return 0, ErrInvalidPosition
	}
	start, err := b.LineStartOffset(pos.Line)
	if err != nil {
		return 0, err
	}
	col := pos.Column
	if n := len(b.lines[pos.Line].text); col > n {
		col = n
	}
	return start + col, nil
}

// Clamp returns off limited to the valid range [0, Len].
func (b *Buffer) Clamp(off Offset) Offset {
	if off < 0 {
		return 0
	}
	if max := b.Len(); off > max {
		return max
	}
	return off
}

// TextRange returns the text in [start, end), with newlines between
// lines rendered as LF.
func (b *Buffer) TextRange(start, end Offset) (string, error) {
	if start > end {
		return "", ErrInvalidRange
	}
	sp, err := b.OffsetToPosition(start)
	if err != nil {
		return "", ErrInvalidRange
	}
	ep, err := b.OffsetToPosition(end)
	if err != nil {
		return "", ErrInvalidRange
	}
	if sp.Line == ep.Line {
		return string(b.lines[sp.Line].text[sp.Column:ep.Column]), nil
	}
	var sb strings.Builder
	sb.WriteString(string(b.lines[sp.Line].text[sp.Column:]))
	for i := sp.Line + 1; i < ep.Line; i++ {
		sb.WriteByte('\n')
		sb.WriteString(string(b.lines[i].text))
	}
	sb.WriteByte('\n')
	sb.WriteString(string(b.lines[ep.Line].text[:ep.Column]))
	return sb.String(), nil
}

// RuneAt returns the rune at the given offset. Newlines between lines
// read as '\n'. The second result is false past the end of the buffer.
func (b *Buffer) RuneAt(off Offset) (rune, bool) {
	pos, err := b.OffsetToPosition(off)
	if err != nil {
		return 0, false
	}
	text := b.lines[pos.Line].text
	if pos.Column < len(text) {
		return text[pos.Column], true
	}
	if pos.Line < len(b.lines)-1 {
		return '\n', true
	}
	return 0, false
}

// Transactions

// Begin opens a transaction. Nested calls are counted; only the
// outermost End commits.
func (b *Buffer) Begin() {
	if b.txDepth == 0 {
		b.txChanges = nil
	}
	b.txDepth++
}

// End commits the current transaction and returns the recorded
// changes. A transaction with no changes commits without bumping the
// revision. Nested End calls return an empty transaction.
func (b *Buffer) End() (Transaction, error) {
	if b.txDepth == 0 {
		return Transaction{}, ErrNoTransaction
	}
	b.txDepth--
	if b.txDepth > 0 {
		return Transaction{}, nil
	}
	changes := b.txChanges
	b.txChanges = nil
	if len(changes) == 0 {
		return Transaction{Revision: b.revision}, nil
	}
	b.revision++
	return Transaction{Changes: changes, Revision: b.revision}, nil
}

// Cancel aborts the current transaction, rolling back every recorded
// change. The buffer is left exactly as it was at Begin; the revision
// does not advance.
func (b *Buffer) Cancel() error {
	if b.txDepth == 0 {
		return ErrNoTransaction
	}
	changes := b.txChanges
	b.txDepth = 0
	b.txChanges = nil
	for i := len(changes) - 1; i >= 0; i-- {
		if err := b.apply(changes[i].Invert()); err != nil {
			return err
		}
	}
	return nil
}

// InTransaction returns true while a transaction is open.
func (b *Buffer) InTransaction() bool {
	return b.txDepth > 0
}

// record notes a performed change; outside a transaction the change
// commits immediately as its own revision.
func (b *Buffer) record(c Change) {
	if b.txDepth > 0 {
		b.txChanges = append(b.txChanges, c)
		return
	}
	b.revision++
}

// Apply replays a list of changes without recording them. It is the
// mechanism behind undo and redo: replaying inverted changes in
// reverse order undoes a transaction. The revision advances once.
func (b *Buffer) Apply(changes []Change) error {
	for _, c := range changes {
		if err := b.apply(c); err != nil {
			return err
		}
	}
	if len(changes) > 0 {
		b.revision++
	}
	return nil
}

// apply performs one change without recording it.
func (b *Buffer) apply(c Change) error {
	switch c.Type {
	case ChangeReplaceLine:
		return b.replaceLineRaw(c.Line, c.NewText)
	case ChangeSplitLine:
		return b.splitLineRaw(Position{Line: c.Line, Column: c.Column})
	case ChangeMergeLines:
		return b.mergeLinesRaw(c.Line)
	case ChangeInsertLine:
		return b.insertLineRaw(c.Line, c.NewText)
	case ChangeRemoveLine:
		return b.removeLineRaw(c.Line)
	default:
		return nil
	}
}

// Write operations

// ReplaceLine replaces a line's text. The text must not contain a
// newline; use InsertText for multi-line content.
func (b *Buffer) ReplaceLine(i int, text string) error {
	if i < 0 || i >= len(b.lines) {
		return ErrLineOutOfRange
	}
	old := string(b.lines[i].text)
	if old == text {
		return nil
	}
	b.lines[i].setText(text)
	b.record(Change{Type: ChangeReplaceLine, Line: i, OldText: old, NewText: text})
	return nil
}

// SplitLine splits a line at a column. The tail becomes a new line
// record directly after it.
func (b *Buffer) SplitLine(pos Position) error {
	if pos.Line < 0 || pos.Line >= len(b.lines) {
		return ErrLineOutOfRange
	}
	if pos.Column < 0 || pos.Column > len(b.lines[pos.Line].text) {
		return ErrInvalidPosition
	}
	if err := b.splitLineRaw(pos); err != nil {
		return err
	}
	b.record(Change{Type: ChangeSplitLine, Line: pos.Line, Column: pos.Column})
	return nil
}

// MergeLines joins line i+1 onto the end of line i, destroying the
// second line record.
func (b *Buffer) MergeLines(i int) error {
	if i < 0 || i >= len(b.lines)-1 {
		return ErrLineOutOfRange
	}
	col := len(b.lines[i].text)
	if err := b.mergeLinesRaw(i); err != nil {
		return err
	}
	b.record(Change{Type: ChangeMergeLines, Line: i, Column: col})
	return nil
}

// InsertLine inserts a new line record at index i, shifting later
// lines down. i may equal LineCount to append.
func (b *Buffer) InsertLine(i int, text string) error {
	if i < 0 || i > len(b.lines) {
		return ErrLineOutOfRange
	}
	if err := b.insertLineRaw(i, text); err != nil {
		return err
	}
	b.record(Change{Type: ChangeInsertLine, Line: i, NewText: text})
	return nil
}

// RemoveLine deletes a line record. The last remaining line cannot be
// removed; a buffer always has at least one line.
func (b *Buffer) RemoveLine(i int) error {
	if i < 0 || i >= len(b.lines) || len(b.lines) == 1 {
		return ErrLineOutOfRange
	}
	old := string(b.lines[i].text)
	if err := b.removeLineRaw(i); err != nil {
		return err
	}
	b.record(Change{Type: ChangeRemoveLine, Line: i, OldText: old})
	return nil
}

// InsertText inserts text at an absolute offset and returns the offset
// just past the inserted text. Text may span multiple lines; line
// endings are normalized first.
func (b *Buffer) InsertText(off Offset, text string) (Offset, error) {
	pos, err := b.OffsetToPosition(off)
	if err != nil {
		return 0, err
	}
	if text == "" {
		return off, nil
	}
	text = normalizeLineEndings(text)

	parts := strings.Split(text, "\n")
	cur, _ := b.LineText(pos.Line)
	head, tail := string([]rune(cur)[:pos.Column]), string([]rune(cur)[pos.Column:])

	if len(parts) == 1 {
		if err := b.ReplaceLine(pos.Line, head+parts[0]+tail); err != nil {
			return 0, err
		}
		return off + len([]rune(parts[0])), nil
	}

	if err := b.SplitLine(pos); err != nil {
		return 0, err
	}
	if err := b.ReplaceLine(pos.Line, head+parts[0]); err != nil {
		return 0, err
	}
	li := pos.Line
	for _, mid := range parts[1 : len(parts)-1] {
		li++
		if err := b.InsertLine(li, mid); err != nil {
			return 0, err
		}
	}
	last := parts[len(parts)-1]
	if err := b.ReplaceLine(li+1, last+tail); err != nil {
		return 0, err
	}
	endOff, err := b.PositionToOffset(Position{Line: li + 1, Column: len([]rune(last))})
	if err != nil {
		return 0, err
	}
	return endOff, nil
}

// DeleteRange removes the text in [start, end), which may span
// multiple lines.
func (b *Buffer) DeleteRange(start, end Offset) error {
	if start > end {
		return ErrInvalidRange
	}
	sp, err := b.OffsetToPosition(start)
	if err != nil {
		return ErrInvalidRange
	}
	ep, err := b.OffsetToPosition(end)
	if err != nil {
		return ErrInvalidRange
	}
	if sp.Line == ep.Line {
		text := b.lines[sp.Line].text
		if sp.Column == ep.Column {
			return nil
		}
		return b.ReplaceLine(sp.Line, string(text[:sp.Column])+string(text[ep.Column:]))
	}

	first := b.lines[sp.Line].text
	last := b.lines[ep.Line].text
	if err := b.ReplaceLine(sp.Line, string(first[:sp.Column])); err != nil {
		return err
	}
	if err := b.ReplaceLine(ep.Line, string(last[ep.Column:])); err != nil {
		return err
	}
	for i := ep.Line - 1; i > sp.Line; i-- {
		if err := b.RemoveLine(i); err != nil {
			return err
		}
	}
	return b.MergeLines(sp.Line)
}

// Raw mutations: shared by the recording operations and Apply.

func (b *Buffer) replaceLineRaw(i int, text string) error {
	if i < 0 || i >= len(b.lines) {
		return ErrLineOutOfRange
	}
	b.lines[i].setText(text)
	return nil
}

func (b *Buffer) splitLineRaw(pos Position) error {
	if pos.Line < 0 || pos.Line >= len(b.lines) {
		return ErrLineOutOfRange
	}
	l := b.lines[pos.Line]
	if pos.Column < 0 || pos.Column > len(l.text) {
		return ErrInvalidPosition
	}
	tail := b.newLine(string(l.text[pos.Column:]))
	l.setText(string(l.text[:pos.Column]))
	b.lines = append(b.lines, nil)
	copy(b.lines[pos.Line+2:], b.lines[pos.Line+1:])
	b.lines[pos.Line+1] = tail
	return nil
}

func (b *Buffer) mergeLinesRaw(i int) error {
	if i < 0 || i >= len(b.lines)-1 {
		return ErrLineOutOfRange
	}
	l := b.lines[i]
	l.setText(string(l.text) + string(b.lines[i+1].text))
	b.lines = append(b.lines[:i+1], b.lines[i+2:]...)
	return nil
}

func (b *Buffer) insertLineRaw(i int, text string) error {
	if i < 0 || i > len(b.lines) {
		return ErrLineOutOfRange
	}
	nl := b.newLine(text)
	b.lines = append(b.lines, nil)
	copy(b.lines[i+1:], b.lines[i:])
	b.lines[i] = nl
	return nil
}

func (b *Buffer) removeLineRaw(i int) error {
	if i < 0 || i >= len(b.lines) || len(b.lines) == 1 {
		return ErrLineOutOfRange
	}
	b.lines = append(b.lines[:i], b.lines[i+1:]...)
	return nil
}
