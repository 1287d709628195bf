package textlen

import (
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/uax/uax11"
)

func TestRunes(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	if got := Runes("hello"); got != 5 {
		t.Errorf("rune count of 'hello' = %d, want 5", got)
	}
	if got := Runes(""); got != 0 {
		t.Errorf("rune count of '' = %d, want 0", got)
	}
}

func TestGraphemes(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	if got := Graphemes("hello"); got != 5 {
		t.Errorf("grapheme count of 'hello' = %d, want 5", got)
	}
	// 'e' + U+0301 combining acute: two runes, one grapheme
	combining := "é"
	if got := Runes(combining); got != 2 {
		t.Errorf("rune count of e+\\u0301 = %d, want 2", got)
	}
	if got := Graphemes(combining); got != 1 {
		t.Errorf("grapheme count of e+\\u0301 = %d, want 1", got)
	}
	// a trailing plain character is its own grapheme
	if got := Graphemes(combining + "x"); got != 2 {
		t.Errorf("grapheme count of e+\\u0301+x = %d, want 2", got)
	}
	if got := Graphemes(""); got != 0 {
		t.Errorf("grapheme count of '' = %d, want 0", got)
	}
}

func TestWidth(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	if got := Width("hello", nil); got != 5 {
		t.Errorf("width of 'hello' = %d, want 5", got)
	}
	// CJK ideographs are wide: two columns each
	if got := Width("世界", uax11.LatinContext); got != 4 {
		t.Errorf("width of '世界' = %d, want 4", got)
	}
	if got := Width("", nil); got != 0 {
		t.Errorf("width of '' = %d, want 0", got)
	}
}
