package markdown

// Continuation describes what pressing Enter should do to a line.
type Continuation struct {
	// Insert is the text to place after the newline so the construct
	// continues (a list prefix, quote prefix, or plain indentation).
	Insert string

	// Terminate reports an empty list item: the caller replaces the
	// line with its leading whitespace and inserts only the newline,
	// ending the list.
	Terminate bool
}

// ContinuationFor computes the Enter behavior for a line with the
// cursor at rune column col.
//
// Mid-line, the continuation is the line's leading whitespace truncated
// to at most col: splitting inside a marker never continues the list.
// At end of line the classification decides: list items repeat their
// prefix (numbered items increment, task items reset the check mark),
// an empty item terminates, and blockquotes repeat their prefix
// unconditionally, so a blank quoted line keeps quoting.
func ContinuationFor(line string, col int) Continuation {
	runes := []rune(line)

	if col < len(runes) {
		ws := []rune(LeadingWhitespace(line))
		if col < len(ws) {
			ws = ws[:col]
		}
		return Continuation{Insert: string(ws)}
	}

	info := Classify(line)
	switch info.Type {
	case BlockNumbered:
		if info.Exact {
			return Continuation{Terminate: true}
		}
		return Continuation{Insert: info.PrefixWithNumber(info.Number + 1)}
	case BlockTask:
		if info.Exact {
			return Continuation{Terminate: true}
		}
		return Continuation{Insert: info.UncheckedPrefix()}
	case BlockBullet:
		if info.Exact {
			return Continuation{Terminate: true}
		}
		return Continuation{Insert: info.Prefix}
	case BlockQuote:
		return Continuation{Insert: info.Prefix}
	default:
		return Continuation{Insert: LeadingWhitespace(line)}
	}
}
