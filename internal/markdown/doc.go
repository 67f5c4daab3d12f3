// Package markdown implements the block-structure rules that drive
// markdown-aware editing: line classification, list continuation,
// marker cycling, and paired-delimiter tables.
//
// Everything in this package is a pure function over line text. A line
// is classified from its own text alone, never from neighboring lines
// or document state, so re-classification after any edit is always safe
// and cheap. The matchers are hand-written anchored scanners rather
// than regular expressions: the patterns are fixed and few.
//
// Positions and lengths are measured in runes throughout.
package markdown
