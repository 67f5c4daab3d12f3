// Package engine implements the markdown-aware editing engine. It
// owns one document (buffer, selection, history) and a configuration
// snapshot, and exposes the editing operations the dispatcher invokes:
// newline continuation, indent/outdent, smart backspace, typed-rune
// pairing, formatting wraps, block prefixing, and undo/redo.
//
// Every operation runs inside exactly one buffer transaction, ends
// with the selection repositioned explicitly, pushes at most one
// history record, and publishes at most one buffer-change event. An
// operation that fails mid-way cancels its transaction, so observers
// never see a partially transformed buffer.
//
// The engine is single-threaded: it is driven from the application
// loop, one input event at a time, and holds no locks.
package engine
