package engine

import (
	"github.com/google/uuid"

	"github.com/dshills/markstorm/internal/config"
	"github.com/dshills/markstorm/internal/engine/buffer"
	"github.com/dshills/markstorm/internal/engine/cursor"
	"github.com/dshills/markstorm/internal/engine/history"
	"github.com/dshills/markstorm/internal/event"
)

// Document bundles the mutable editing state of one open text: its
// buffer, the current selection, and the undo history. Documents carry
// a stable identity so observers can tell change streams apart.
type Document struct {
	ID      uuid.UUID
	Buffer  *buffer.Buffer
	Sel     cursor.Selection
	History *history.History
}

// BufferChanged is the payload published on event.TopicBufferChanged
// after every committed transaction, including undo and redo.
type BufferChanged struct {
	DocumentID uuid.UUID
	Revision   buffer.Revision
	Changes    []buffer.Change
}

// Engine drives markdown-aware editing of a single document.
type Engine struct {
	doc *Document
	cfg config.Editor
	bus *event.Bus
}

// Option configures an Engine.
type Option func(*Engine)

// WithText sets the document's initial content.
func WithText(text string) Option {
	return func(e *Engine) {
		e.doc.Buffer = buffer.FromString(text)
	}
}

// WithConfig sets the editor configuration snapshot.
func WithConfig(cfg config.Editor) Option {
	return func(e *Engine) {
		e.cfg = cfg
	}
}

// WithBus sets the event bus buffer-change events are published on.
func WithBus(bus *event.Bus) Option {
	return func(e *Engine) {
		e.bus = bus
	}
}

// WithHistoryLimit caps the number of undo steps kept.
func WithHistoryLimit(n int) Option {
	return func(e *Engine) {
		e.doc.History = history.New(n)
	}
}

// New creates an engine over an empty document with the default
// configuration.
func New(opts ...Option) *Engine {
	e := &Engine{
		doc: &Document{
			ID:      uuid.New(),
			Buffer:  buffer.New(),
			History: history.New(0),
		},
		cfg: config.Default().Editor,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Document returns the engine's document.
func (e *Engine) Document() *Document {
	return e.doc
}

// Buffer returns the document's buffer for read access.
func (e *Engine) Buffer() *buffer.Buffer {
	return e.doc.Buffer
}

// Selection returns the current selection.
func (e *Engine) Selection() cursor.Selection {
	return e.doc.Sel
}

// SetSelection replaces the selection, clamped to the buffer.
func (e *Engine) SetSelection(sel cursor.Selection) {
	e.doc.Sel = sel.Clamp(e.doc.Buffer.Len())
}

// Config returns the current editor configuration snapshot.
func (e *Engine) Config() config.Editor {
	return e.cfg
}

// SetConfig swaps in a new configuration snapshot. It takes effect on
// the next operation.
func (e *Engine) SetConfig(cfg config.Editor) {
	e.cfg = cfg
}

// SetText replaces the whole document content and resets selection and
// history. Used when the front end opens a file.
func (e *Engine) SetText(text string) {
	e.doc.Buffer = buffer.FromString(text)
	e.doc.Sel = cursor.At(0)
	e.doc.History.Clear()
	e.publish(nil)
}

// CursorPosition returns the head of the selection as line/column.
func (e *Engine) CursorPosition() buffer.Position {
	pos, err := e.doc.Buffer.OffsetToPosition(e.doc.Sel.Cursor())
	if err != nil {
		return buffer.Position{}
	}
	return pos
}

// Transaction plumbing. begin opens the buffer transaction and
// captures the pre-operation selection; commit closes it, records the
// undo step, and publishes the change event; abort rolls everything
// back.

func (e *Engine) begin() cursor.Selection {
	e.doc.Buffer.Begin()
	return e.doc.Sel
}

func (e *Engine) commit(before cursor.Selection) error {
	tx, err := e.doc.Buffer.End()
	if err != nil {
		return err
	}
	if tx.IsEmpty() {
		return nil
	}
	e.doc.Sel = e.doc.Sel.Clamp(e.doc.Buffer.Len())
	e.doc.History.Push(history.Record{
		Changes: tx.Changes,
		Before:  before,
		After:   e.doc.Sel,
	})
	e.publish(tx.Changes)
	return nil
}

func (e *Engine) abort(before cursor.Selection) {
	_ = e.doc.Buffer.Cancel()
	e.doc.Sel = before
}

func (e *Engine) publish(changes []buffer.Change) {
	if e.bus == nil {
		return
	}
	e.bus.Publish(event.TopicBufferChanged, BufferChanged{
		DocumentID: e.doc.ID,
		Revision:   e.doc.Buffer.Revision(),
		Changes:    changes,
	})
}

// lineText reads a line the engine already knows is valid.
func (e *Engine) lineText(i int) string {
	text, _ := e.doc.Buffer.LineText(i)
	return text
}

// lineStart returns the absolute offset of a line's start.
func (e *Engine) lineStart(i int) buffer.Offset {
	off, _ := e.doc.Buffer.LineStartOffset(i)
	return off
}

// deleteSelection removes the selected text and collapses the
// selection to its start. No-op without a selection. Caller holds the
// transaction.
func (e *Engine) deleteSelection() error {
	if e.doc.Sel.IsEmpty() {
		return nil
	}
	r := e.doc.Sel.Range()
	if err := e.doc.Buffer.DeleteRange(r.Start, r.End); err != nil {
		return err
	}
	e.doc.Sel = cursor.At(r.Start)
	return nil
}
