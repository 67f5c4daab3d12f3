// Package buffer provides a line-indexed text buffer for markdown-aware
// editing. The buffer owns an ordered sequence of line records with
// stable identity across edits and exposes the mutation surface the
// editing engines need: line replacement, splits and merges, text
// insertion and range deletion, and position/offset conversion.
//
// All positions are measured in runes. A buffer always contains at
// least one line; an empty buffer is a single empty line.
//
// Mutations made between Begin and End are recorded as invertible
// Change values and grouped into a Transaction: one undo step, one
// revision bump, one change notification. Cancel rolls the recorded
// changes back, so an aborted multi-line operation leaves no partial
// state behind.
//
// Each line caches its markdown classification lazily; any edit to a
// line invalidates the cache. Classification depends only on the
// line's own text, so the cache never has to be invalidated across
// lines.
//
// The buffer is not safe for concurrent use. The editing engine owns
// it exclusively and drives it from a single thread of control, one
// input event at a time.
package buffer
