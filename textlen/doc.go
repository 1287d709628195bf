/*
Package textlen provides Unicode-aware length measures for strings.

The module's core StringLength counts runes, which is the least surprising
notion of "number of characters" for a Go string. That notion breaks down as
soon as combining marks or East-Asian wide characters show up: "é" may be one
rune or two, and "世" occupies two terminal columns. This package offers the
alternative measures — grapheme clusters and display columns — for hosts that
render results to people rather than protocols.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2025, the wasmhello authors

Please refer to the LICENSE file for details.
*/
package textlen

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'wasmhello'
func tracer() tracing.Trace {
	return tracing.Select("wasmhello")
}
