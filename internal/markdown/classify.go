package markdown

// BlockType identifies the markdown construct a line belongs to.
type BlockType uint8

const (
	BlockPlain     BlockType = iota // No recognized structure
	BlockNumbered                   // Ordered list item: "1. " or "1) "
	BlockBullet                     // Bullet list item: "* ", "- ", "+ "
	BlockTask                       // Task list item: "- [ ] " or "- [x] "
	BlockQuote                      // Blockquote: "> "
	BlockFence                      // Code fence: "```" or "~~~"
)

// String returns the name of the block type.
func (t BlockType) String() string {
	switch t {
	case BlockPlain:
		return "plain"
	case BlockNumbered:
		return "numbered-list"
	case BlockBullet:
		return "bullet-list"
	case BlockTask:
		return "task-item"
	case BlockQuote:
		return "blockquote"
	case BlockFence:
		return "code-fence"
	default:
		return "unknown"
	}
}

// IsList returns true for the three list item types.
func (t BlockType) IsList() bool {
	return t == BlockNumbered || t == BlockBullet || t == BlockTask
}

// LineInfo is the result of classifying one line of text.
// The zero value is a plain line.
type LineInfo struct {
	// Type is the recognized block construct.
	Type BlockType

	// Marker is the list marker character: '-', '*' or '+' for bullet
	// and task items, zero otherwise.
	Marker rune

	// Number is the captured numeric value of an ordered list item.
	Number int

	// Punct is the punctuation after the number, '.' or ')'.
	Punct rune

	// Checked reports whether a task item is marked complete.
	Checked bool

	// QuoteDepth is the number of '>' characters in a blockquote prefix.
	QuoteDepth int

	// Indent is the line's leading whitespace run.
	Indent string

	// Prefix is the full structural prefix, through the whitespace that
	// follows the marker. Empty for plain and fence lines.
	Prefix string

	// MarkerIndex is the rune index of the structural marker within the
	// line: the first digit for numbered lists, the bullet character for
	// bullets and tasks, the last '>' for blockquotes. -1 when there is
	// no marker.
	MarkerIndex int

	// Exact reports whether the line consists of exactly the prefix,
	// i.e. an empty item.
	Exact bool

	// Rune bounds of the digit run within Prefix (numbered lists).
	numberStart, numberEnd int

	// Rune index of the check mark within Prefix (task items).
	checkIndex int
}

// PrefixLen returns the prefix length in runes.
func (li LineInfo) PrefixLen() int {
	return len([]rune(li.Prefix))
}

// PrefixWithNumber returns the prefix with its digit run replaced by n,
// preserving surrounding spacing. Only meaningful for numbered lists.
func (li LineInfo) PrefixWithNumber(n int) string {
	if li.Type != BlockNumbered {
		return li.Prefix
	}
	runes := []rune(li.Prefix)
	out := make([]rune, 0, len(runes)+2)
	out = append(out, runes[:li.numberStart]...)
	out = append(out, []rune(itoa(n))...)
	out = append(out, runes[li.numberEnd:]...)
	return string(out)
}

// UncheckedPrefix returns the prefix with the check mark forced to a
// space. Only meaningful for task items.
func (li LineInfo) UncheckedPrefix() string {
	if li.Type != BlockTask {
		return li.Prefix
	}
	runes := []rune(li.Prefix)
	runes[li.checkIndex] = ' '
	return string(runes)
}

// Classify determines the block structure of a single line.
// Matching order (first match wins): blockquote, code fence, numbered
// list, task item, bullet list, plain. The task pattern must run before
// the bullet pattern since "- [ ]" also matches a bare bullet.
func Classify(line string) LineInfo {
	runes := []rune(line)

	if info, ok := classifyBlockquote(runes); ok {
		return info
	}
	if info, ok := classifyFence(runes); ok {
		return info
	}
	if info, ok := classifyNumbered(runes); ok {
		return info
	}
	if info, ok := classifyTask(runes); ok {
		return info
	}
	if info, ok := classifyBullet(runes); ok {
		return info
	}

	return LineInfo{
		Type:        BlockPlain,
		Indent:      string(runes[:countIndent(runes)]),
		MarkerIndex: -1,
	}
}

// LeadingWhitespace returns the run of spaces and tabs at the start of
// the line.
func LeadingWhitespace(line string) string {
	runes := []rune(line)
	return string(runes[:countIndent(runes)])
}

// isLineSpace reports whether r is horizontal whitespace. Lines never
// contain newlines, so space and tab are the only cases.
func isLineSpace(r rune) bool {
	return r == ' ' || r == '\t'
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// countIndent returns the number of leading whitespace runes.
func countIndent(runes []rune) int {
	i := 0
	for i < len(runes) && isLineSpace(runes[i]) {
		i++
	}
	return i
}

// classifyBlockquote matches up to 3 leading spaces, then one or more
// '>' each optionally followed by whitespace.
func classifyBlockquote(runes []rune) (LineInfo, bool) {
	i := 0
	for i < len(runes) && i < 3 && runes[i] == ' ' {
		i++
	}
	if i >= len(runes) || runes[i] != '>' {
		return LineInfo{}, false
	}

	indent := i
	depth := 0
	last := -1
	for i < len(runes) && runes[i] == '>' {
		depth++
		last = i
		i++
		for i < len(runes) && isLineSpace(runes[i]) {
			i++
		}
	}

	return LineInfo{
		Type:        BlockQuote,
		QuoteDepth:  depth,
		Indent:      string(runes[:indent]),
		Prefix:      string(runes[:i]),
		MarkerIndex: last,
		Exact:       i == len(runes),
	}, true
}

// classifyFence matches leading whitespace followed by at least three
// backticks or three tildes. Fence lines carry no structural prefix;
// the engines treat them like plain text, but they must never be taken
// for list items.
func classifyFence(runes []rune) (LineInfo, bool) {
	i := countIndent(runes)
	if i >= len(runes) {
		return LineInfo{}, false
	}
	fence := runes[i]
	if fence != '`' && fence != '~' {
		return LineInfo{}, false
	}
	n := 0
	for i+n < len(runes) && runes[i+n] == fence {
		n++
	}
	if n < 3 {
		return LineInfo{}, false
	}
	return LineInfo{
		Type:        BlockFence,
		Indent:      string(runes[:i]),
		MarkerIndex: -1,
	}, true
}

// classifyNumbered matches leading whitespace, a digit run, '.' or ')',
// and required trailing whitespace. The numeric value is captured.
func classifyNumbered(runes []rune) (LineInfo, bool) {
	i := countIndent(runes)
	digitStart := i
	for i < len(runes) && isDigit(runes[i]) {
		i++
	}
	if i == digitStart {
		return LineInfo{}, false
	}
	digitEnd := i
	if i >= len(runes) || (runes[i] != '.' && runes[i] != ')') {
		return LineInfo{}, false
	}
	punct := runes[i]
	i++
	wsStart := i
	for i < len(runes) && isLineSpace(runes[i]) {
		i++
	}
	if i == wsStart {
		return LineInfo{}, false
	}

	return LineInfo{
		Type:        BlockNumbered,
		Number:      atoi(runes[digitStart:digitEnd]),
		Punct:       punct,
		Indent:      string(runes[:digitStart]),
		Prefix:      string(runes[:i]),
		MarkerIndex: digitStart,
		Exact:       i == len(runes),
		numberStart: digitStart,
		numberEnd:   digitEnd,
	}, true
}

// classifyTask matches leading whitespace, "- [", 'x' or space, "]",
// and required trailing whitespace. Exactly one space separates the
// dash from the bracket.
func classifyTask(runes []rune) (LineInfo, bool) {
	i := countIndent(runes)
	marker := i
	if i+4 >= len(runes) {
		return LineInfo{}, false
	}
	if runes[i] != '-' || runes[i+1] != ' ' || runes[i+2] != '[' {
		return LineInfo{}, false
	}
	mark := runes[i+3]
	if mark != 'x' && mark != ' ' {
		return LineInfo{}, false
	}
	if runes[i+4] != ']' {
		return LineInfo{}, false
	}
	i += 5
	wsStart := i
	for i < len(runes) && isLineSpace(runes[i]) {
		i++
	}
	if i == wsStart {
		return LineInfo{}, false
	}

	return LineInfo{
		Type:        BlockTask,
		Marker:      '-',
		Checked:     mark == 'x',
		Indent:      string(runes[:marker]),
		Prefix:      string(runes[:i]),
		MarkerIndex: marker,
		Exact:       i == len(runes),
		checkIndex:  marker + 3,
	}, true
}

// classifyBullet matches leading whitespace, one of '+' '*' '-', and
// required trailing whitespace.
func classifyBullet(runes []rune) (LineInfo, bool) {
	i := countIndent(runes)
	if i >= len(runes) {
		return LineInfo{}, false
	}
	marker := runes[i]
	if marker != '+' && marker != '*' && marker != '-' {
		return LineInfo{}, false
	}
	i++
	wsStart := i
	for i < len(runes) && isLineSpace(runes[i]) {
		i++
	}
	if i == wsStart {
		return LineInfo{}, false
	}

	return LineInfo{
		Type:        BlockBullet,
		Marker:      marker,
		Indent:      string(runes[:wsStart-1]),
		Prefix:      string(runes[:i]),
		MarkerIndex: wsStart - 1,
		Exact:       i == len(runes),
	}, true
}

// atoi parses an unsigned digit run. Overflow collapses to 0.
func atoi(digits []rune) int {
	n := 0
	for _, d := range digits {
		n = n*10 + int(d-'0')
		if n < 0 {
			return 0
		}
	}
	return n
}

// itoa formats a non-negative integer.
func itoa(n int) string {
	if n <= 0 {
		return "0"
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	return string(buf[i:])
}
