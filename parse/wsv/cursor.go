package wsv

// =========================
// Codepoint Cursor
// =========================

// cursor is a position over one line's codepoint sequence. The line is
// decoded to runes up front so that every position is a whole Unicode scalar
// value; indexing bytes or UTF-16 units would split non-ASCII characters.
type cursor struct {
	chars []rune
	index int
	line  int
}

func newCursor(text string, lineIndex int) *cursor {
	return &cursor{chars: []rune(text), line: lineIndex}
}

func (c *cursor) atEnd() bool {
	return c.index >= len(c.chars)
}

func (c *cursor) current() rune {
	return c.chars[c.index]
}

// advance moves to the next position and reports whether one exists.
func (c *cursor) advance() bool {
	c.index++
	return c.index < len(c.chars)
}

func (c *cursor) is(ch rune) bool {
	return !c.atEnd() && c.chars[c.index] == ch
}

func (c *cursor) isWhitespace() bool {
	return !c.atEnd() && isWhitespace(c.chars[c.index])
}

// sliceSince returns the text from start up to the current position.
func (c *cursor) sliceSince(start int) string {
	return string(c.chars[start:c.index])
}

// errorAt captures the cursor's line index and current position. At end of
// line the position is one past the last codepoint.
func (c *cursor) errorAt(kind ErrorKind) *ParseError {
	return &ParseError{Kind: kind, Line: c.line, Pos: c.index}
}

// isWhitespace reports whether r is WSV whitespace. The set is fixed; there
// is no locale sensitivity. Line-feed (0x0A) is deliberately absent because
// it is the line separator, not inline whitespace.
func isWhitespace(r rune) bool {
	switch {
	case r == 0x09,
		r >= 0x0B && r <= 0x0D,
		r == 0x20,
		r == 0x85,
		r == 0xA0,
		r == 0x1680,
		r >= 0x2000 && r <= 0x200A,
		r == 0x2028,
		r == 0x2029,
		r == 0x202F,
		r == 0x205F,
		r == 0x3000:
		return true
	}
	return false
}
