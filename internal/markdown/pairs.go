package markdown

// openToClose maps each opening delimiter to its closing partner.
// Symmetric delimiters map to themselves.
var openToClose = map[rune]rune{
	'"':  '"',
	'\'': '\'',
	'(':  ')',
	'[':  ']',
	'{':  '}',
	'*':  '*',
	'_':  '_',
	'`':  '`',
	'<':  '>',
}

// closeToOpen is the reverse mapping, built once at init.
var closeToOpen = func() map[rune]rune {
	m := make(map[rune]rune, len(openToClose))
	for opener, closer := range openToClose {
		m[closer] = opener
	}
	return m
}()

// CloserFor returns the closing delimiter paired with an opener.
func CloserFor(opener rune) (rune, bool) {
	closer, ok := openToClose[opener]
	return closer, ok
}

// OpenerFor returns the opening delimiter paired with a closer.
func OpenerFor(closer rune) (rune, bool) {
	opener, ok := closeToOpen[closer]
	return opener, ok
}

// IsOpener reports whether r is a registered opening delimiter.
func IsOpener(r rune) bool {
	_, ok := openToClose[r]
	return ok
}

// IsCloser reports whether r is a registered closing delimiter.
func IsCloser(r rune) bool {
	_, ok := closeToOpen[r]
	return ok
}

// Openers returns all registered opening delimiters. The order is
// fixed so default configuration is deterministic.
func Openers() []rune {
	return []rune{'"', '\'', '(', '[', '{', '*', '_', '`', '<'}
}
