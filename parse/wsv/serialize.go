package wsv

import "strings"

// =========================
// Serialization
// =========================

// needsQuoting reports whether s cannot stand as an unquoted token. The empty
// string has no unquoted form, a bare `-` would read back as the null marker,
// and whitespace, quotes, `#`, and line-feeds all delimit or open tokens.
func needsQuoting(s string) bool {
	if s == "" || s == "-" {
		return true
	}
	for _, r := range s {
		if r == '\n' || r == '"' || r == '#' || isWhitespace(r) {
			return true
		}
	}
	return false
}

// SerializeValue returns the exact textual form of one value. It is total:
// every null or string input has a valid serialization.
func SerializeValue(v Value) string {
	if v.Null {
		return "-"
	}
	if !needsQuoting(v.Str) {
		return v.Str
	}
	var b strings.Builder
	b.WriteByte('"')
	for _, r := range v.Str {
		switch r {
		case '"':
			b.WriteString(`""`)
		case '\n':
			b.WriteString(`"/"`)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
	return b.String()
}

// SerializeLine joins the serialized values with single spaces. An empty line
// serializes to the empty string.
func SerializeLine(line Line) string {
	parts := make([]string, len(line))
	for i, v := range line {
		parts[i] = SerializeValue(v)
	}
	return strings.Join(parts, " ")
}

// SerializeDocument joins the serialized lines with line-feeds.
func SerializeDocument(doc Document) string {
	parts := make([]string, len(doc))
	for i, line := range doc {
		parts[i] = SerializeLine(line)
	}
	return strings.Join(parts, "\n")
}
