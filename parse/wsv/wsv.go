package wsv

// Package wsv implements a production-grade WSV (whitespace separated values)
// parser and serializer with deterministic semantics and exact error
// positions.
//
// Scope:
// - Full WSV value grammar (unquoted values, quoted values, null marker)
// - Comment handling (unquoted `#` to end of line)
// - Codepoint-level scanning (never byte or UTF-16 unit level)
// - Deterministic, positioned errors
// - Canonical serialization (single-space joined, minimal quoting)
//
// Non-goals (by design):
// - Comment and whitespace preservation
// - Streaming or incremental parsing
// - Error recovery; parsing is fail-fast
//
// This implementation is suitable for production use as a data ingestion
// layer.

import (
	"encoding/json"
	"io"
	"strings"
)

// =========================
// Data Model
// =========================

// Value is a single WSV field: either a Unicode string or the null marker.
// The zero Value is the empty string.
type Value struct {
	Null bool
	Str  string
}

// NewString returns a string Value.
func NewString(s string) Value {
	return Value{Str: s}
}

// NewNull returns the null marker Value.
func NewNull() Value {
	return Value{Null: true}
}

// String returns the serialized form of the value, quoted if needed.
func (v Value) String() string {
	return SerializeValue(v)
}

// MarshalJSON renders the null marker as JSON null and a string value as a
// JSON string, so a Document marshals to a jagged array of string-or-null.
func (v Value) MarshalJSON() ([]byte, error) {
	if v.Null {
		return []byte("null"), nil
	}
	return json.Marshal(v.Str)
}

// UnmarshalJSON accepts JSON null or a JSON string.
func (v *Value) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*v = Value{Null: true}
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*v = Value{Str: s}
	return nil
}

// Line is one ordered sequence of values. Order is significant.
type Line []Value

// Document is an ordered sequence of lines. Order is significant.
type Document []Line

// =========================
// Public API
// =========================

// Parse parses WSV input from r and returns the Document.
func Parse(r io.Reader) (Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return ParseDocument(string(data))
}

// ParseDocument parses text as a whole WSV document. Lines are separated by
// line-feed characters only; a carriage return is ordinary whitespace and is
// never treated as a line separator. A trailing line-feed therefore yields a
// final empty line.
func ParseDocument(text string) (Document, error) {
	segments := strings.Split(text, "\n")
	doc := make(Document, 0, len(segments))
	for i, segment := range segments {
		line, err := parseLine(segment, i)
		if err != nil {
			return nil, err
		}
		doc = append(doc, line)
	}
	return doc, nil
}

// ParseLine parses text as a single WSV line. The caller must not pass text
// containing a raw line-feed; ParseLine does not split, and a line-feed is
// not whitespace, so it would be read as an ordinary value codepoint.
func ParseLine(text string) (Line, error) {
	return parseLine(text, 0)
}

// =========================
// Parser Implementation
// =========================

func parseLine(text string, lineIndex int) (Line, error) {
	c := newCursor(text, lineIndex)
	line := make(Line, 0)
	for {
		for !c.atEnd() && c.isWhitespace() {
			c.advance()
		}
		if c.atEnd() || c.is('#') {
			return line, nil
		}
		var v Value
		var err error
		if c.is('"') {
			v, err = parseQuotedValue(c)
		} else {
			v, err = parseValue(c)
		}
		if err != nil {
			return nil, err
		}
		line = append(line, v)
	}
}

// parseValue reads one unquoted value starting at the cursor. The delimiter
// (whitespace, `#`, or end of line) is left for the caller to re-examine.
// An unquoted `-` is the null marker.
func parseValue(c *cursor) (Value, error) {
	start := c.index
	for !c.atEnd() && !c.isWhitespace() && !c.is('#') {
		if c.is('"') {
			return Value{}, c.errorAt(InvalidDoubleQuoteInValue)
		}
		c.advance()
	}
	text := c.sliceSince(start)
	if text == "-" {
		return Value{Null: true}, nil
	}
	return Value{Str: text}, nil
}

// parseQuotedValue reads one quoted value; the cursor sits on the opening
// quote. Inside the value, `""` is a literal quote and `"/"` is a line-feed.
// The terminator after the closing quote (whitespace, `#`, or end of line)
// is left for the caller.
func parseQuotedValue(c *cursor) (Value, error) {
	var b strings.Builder
	for {
		if !c.advance() {
			return Value{}, c.errorAt(StringNotClosed)
		}
		if !c.is('"') {
			b.WriteRune(c.current())
			continue
		}
		if !c.advance() {
			return Value{Str: b.String()}, nil
		}
		switch {
		case c.is('"'):
			b.WriteRune('"')
		case c.is('/'):
			if !c.advance() || !c.is('"') {
				return Value{}, c.errorAt(InvalidStringLineBreak)
			}
			b.WriteRune('\n')
		case c.isWhitespace() || c.is('#'):
			return Value{Str: b.String()}, nil
		default:
			return Value{}, c.errorAt(InvalidCharacterAfterString)
		}
	}
}
