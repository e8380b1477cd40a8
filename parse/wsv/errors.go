package wsv

import "fmt"

// =========================
// Errors
// =========================

// ErrorKind identifies a WSV parse failure.
type ErrorKind string

const (
	// InvalidDoubleQuoteInValue reports a bare quote inside an unquoted value.
	InvalidDoubleQuoteInValue ErrorKind = "invalid double quote in value"
	// StringNotClosed reports end of line inside a quoted value.
	StringNotClosed ErrorKind = "string not closed"
	// InvalidStringLineBreak reports a `"/` escape not followed by a quote.
	InvalidStringLineBreak ErrorKind = "invalid string line break"
	// InvalidCharacterAfterString reports a character other than whitespace,
	// `#`, or end of line directly after a closing quote.
	InvalidCharacterAfterString ErrorKind = "invalid character after string"
)

// ParseError is a positioned WSV parse failure. Line and Pos are zero-based;
// Pos counts codepoints, not bytes, and at end of line it is one past the
// last codepoint.
type ParseError struct {
	Kind ErrorKind
	Line int
	Pos  int
}

// Error renders the message with 1-based line and position coordinates.
func (e *ParseError) Error() string {
	return fmt.Sprintf("wsv: %s (%d, %d)", e.Kind, e.Line+1, e.Pos+1)
}
