package textlen

import (
	"unicode/utf8"

	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
)

// Runes returns the number of UTF-8 runes in s. It is the measure behind the
// module's core StringLength.
func Runes(s string) int {
	return utf8.RuneCountInString(s)
}

// Graphemes returns the number of grapheme clusters in s, i.e. the number of
// user-perceived characters (UAX#29).
//
// A base character followed by combining marks counts as one grapheme but
// several runes.
func Graphemes(s string) int {
	if s == "" {
		return 0
	}
	gstr := grapheme.StringFromString(s)
	n := gstr.Len()
	tracer().Debugf("%q consists of %d grapheme(s)", s, n)
	return n
}

// Width returns the number of fixed-width terminal columns s occupies,
// following UAX#11 East Asian width rules.
//
// context resolves ambiguous-width characters; a nil context is interpreted
// as uax11.LatinContext.
func Width(s string, context *uax11.Context) int {
	if s == "" {
		return 0
	}
	if context == nil {
		context = uax11.LatinContext
	}
	gstr := grapheme.StringFromString(s)
	w := uax11.StringWidth(gstr, context)
	tracer().Debugf("%q occupies %d column(s)", s, w)
	return w
}
