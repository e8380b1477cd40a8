package wsv

import (
	"testing"

	"github.com/smartystreets/goconvey/convey"
)

func parseError(t *testing.T, err error) *ParseError {
	t.Helper()
	pe, ok := err.(*ParseError)
	if !ok {
		t.Fatalf("expected *ParseError, got %v", err)
	}
	return pe
}

func TestStringNotClosed(t *testing.T) {
	convey.Convey("end of line inside a quoted value", t, func() {
		_, err := ParseLine(`"unterminated`)
		pe := parseError(t, err)
		convey.So(pe.Kind, convey.ShouldEqual, StringNotClosed)
		convey.So(pe.Line, convey.ShouldEqual, 0)
		convey.So(pe.Pos, convey.ShouldEqual, 13)
		convey.So(pe.Error(), convey.ShouldEqual, "wsv: string not closed (1, 14)")
	})
}

func TestInvalidDoubleQuoteInValue(t *testing.T) {
	convey.Convey("bare quote inside an unquoted value", t, func() {
		_, err := ParseLine(`a"b`)
		pe := parseError(t, err)
		convey.So(pe.Kind, convey.ShouldEqual, InvalidDoubleQuoteInValue)
		convey.So(pe.Line, convey.ShouldEqual, 0)
		convey.So(pe.Pos, convey.ShouldEqual, 1)
	})
}

func TestInvalidCharacterAfterString(t *testing.T) {
	convey.Convey("character glued to a closing quote", t, func() {
		_, err := ParseLine(`"a"x`)
		pe := parseError(t, err)
		convey.So(pe.Kind, convey.ShouldEqual, InvalidCharacterAfterString)
		convey.So(pe.Pos, convey.ShouldEqual, 3)
	})
}

func TestInvalidStringLineBreak(t *testing.T) {
	convey.Convey("slash escape not closed by a quote", t, func() {
		_, err := ParseLine(`"a"/x`)
		pe := parseError(t, err)
		convey.So(pe.Kind, convey.ShouldEqual, InvalidStringLineBreak)
		convey.So(pe.Pos, convey.ShouldEqual, 4)
	})
	convey.Convey("slash escape cut off by end of line", t, func() {
		_, err := ParseLine(`"a"/`)
		pe := parseError(t, err)
		convey.So(pe.Kind, convey.ShouldEqual, InvalidStringLineBreak)
		convey.So(pe.Pos, convey.ShouldEqual, 4)
	})
}

func TestDocumentErrorLineIndex(t *testing.T) {
	convey.Convey("errors carry the zero-based index of the failing line", t, func() {
		doc, err := ParseDocument("ok line\n\"bad\nnever reached")
		convey.So(doc, convey.ShouldBeNil)
		pe := parseError(t, err)
		convey.So(pe.Kind, convey.ShouldEqual, StringNotClosed)
		convey.So(pe.Line, convey.ShouldEqual, 1)
		convey.So(pe.Pos, convey.ShouldEqual, 4)
	})
}
