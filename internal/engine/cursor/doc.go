// Package cursor provides the cursor and selection model for the
// editing engine. A Selection is an immutable value pairing an anchor
// with a head position; when the two coincide it is a bare cursor.
// All offsets are rune offsets into the buffer.
//
// The package also provides grapheme-aware horizontal motion so that
// interactive cursor movement steps over full grapheme clusters, and
// helpers for computing the line range a selection covers, which is
// the unit every multi-line structural operation works on.
package cursor
