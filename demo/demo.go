/*
Package demo runs the module's fixed demonstration sequence.

The wasmrun example modules print a sample run on startup: a greeting,
fibonacci(10), factorial(5), a primality check for 17 and the square root of
25. That sequence is not part of any functional contract, but it is the
quickest way to see the module do something, so this package keeps it
available as a reusable routine with optional colored console output.
*/
package demo

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/uax/uax11"
	"golang.org/x/term"

	"github.com/anistark/wasmhello"
	"github.com/anistark/wasmhello/textlen"
)

// tracer writes to trace with key 'wasmhello'
func tracer() tracing.Trace {
	return tracing.Select("wasmhello")
}

// Style selects a color slot of a console's palette.
type Style int

// Styles used by the demonstration output.
const (
	HeaderStyle Style = iota
	LabelStyle
	ResultStyle
	ErrorStyle
)

// Console renders the demonstration sequence with a fixed-width layout and a
// style→color palette.
//
// Console output of the results is purely cosmetic; the demonstration calls
// themselves are ordinary library calls and trace through the module tracer
// like any other client's would.
type Console struct {
	colors map[Style]*color.Color
	width  int // line width in fixed-width 'en's
}

// NewConsole creates a console renderer for the demonstration sequence.
//
// colors maps styles to display colors and may cover just a subset of the
// styles; nil selects a default palette. The line width is taken from the
// current terminal, if stdout is interactive.
func NewConsole(colors map[Style]*color.Color) *Console {
	c := &Console{
		width: WidthFromTerminal(),
	}
	if colors == nil {
		c.colors = makeDefaultPalette()
	} else {
		c.colors = colors
	}
	return c
}

func makeDefaultPalette() map[Style]*color.Color {
	palette := map[Style]*color.Color{
		HeaderStyle: color.New(color.FgCyan, color.Bold),
		LabelStyle:  color.New(color.FgBlue),
		ResultStyle: color.New(color.FgGreen),
		ErrorStyle:  color.New(color.FgRed),
	}
	return palette
}

// WidthFromTerminal is a simple helper for sizing the demonstration output.
// It checks wether stdout is a terminal, and if so it reads the terminal's
// width. Non-interactive output gets a default of 65.
func WidthFromTerminal() int {
	if term.IsTerminal(0) {
		w, _, err := term.GetSize(0)
		if err == nil && w > 0 {
			if w > 65 {
				return 65
			}
			return w
		}
	}
	return 65
}

// errWriter wraps a writer and remembers the first write failure, so the
// renderer does not have to check every single Write call.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) Write(p []byte) (int, error) {
	if ew.err != nil {
		return 0, ew.err
	}
	n, err := ew.w.Write(p)
	if err != nil {
		ew.err = err
	}
	return n, err
}

// Run executes the fixed demonstration sequence and renders each step to w.
//
// The sequence is greet, fibonacci(10), factorial(5), is_prime(17),
// square_root(25.0), the example set's startup banner, followed by the array
// lifecycle and the string-length measures, so every operation of the module
// gets exercised once. The first error encountered — from a demonstration
// call or from writing to w — is returned.
func (c *Console) Run(out io.Writer) error {
	w := &errWriter{w: out}
	c.styled(HeaderStyle, w, "wasmhello module demo")
	c.newline(w)
	w.Write([]byte(strings.Repeat("-", c.width)))
	c.newline(w)

	c.step(w, "greet(\"World\")", wasmhello.Greet("World"))
	c.step(w, "fibonacci(10)", fmt.Sprintf("%d", wasmhello.Fibonacci(10)))
	c.step(w, "factorial(5)", fmt.Sprintf("%d", wasmhello.Factorial(5)))
	c.step(w, "is_prime(17)", fmt.Sprintf("%t", wasmhello.IsPrime(17)))
	c.step(w, "square_root(25.0)", fmt.Sprintf("%.6f", wasmhello.SquareRoot(25.0)))

	arr, err := wasmhello.CreateArray(5)
	if err != nil {
		c.styled(ErrorStyle, w, "create_array(5): "+err.Error())
		c.newline(w)
		return err
	}
	c.step(w, "create_array(5)", fmt.Sprintf("%v", arr.Values()))
	c.step(w, "sum_array", fmt.Sprintf("%d", wasmhello.SumArray(arr.Values())))
	wasmhello.FreeArray(arr)
	c.step(w, "free_array", "released")

	sample := "héllo, 世界"
	c.step(w, "string_length", fmt.Sprintf("%q has %d chars, %d graphemes, width %d",
		sample,
		wasmhello.StringLength(sample),
		textlen.Graphemes(sample),
		textlen.Width(sample, uax11.ContextFromEnvironment())))

	if w.err != nil {
		return w.err
	}
	tracer().Infof("demo sequence complete")
	return nil
}

// step renders one demonstration step as an aligned label/result pair.
func (c *Console) step(w io.Writer, label string, result string) {
	c.styled(LabelStyle, w, fmt.Sprintf("%-22s", label))
	w.Write([]byte(" = "))
	c.styled(ResultStyle, w, result)
	c.newline(w)
}

// styled outputs s using the palette color for the given style. Styles
// missing from the palette fall back to plain output.
func (c *Console) styled(style Style, w io.Writer, s string) {
	if col, ok := c.colors[style]; ok {
		col.Fprint(w, s)
		return
	}
	w.Write([]byte(s))
}

func (c *Console) newline(w io.Writer) {
	w.Write([]byte{'\n'})
}

// Print runs the demonstration sequence on stdout with the default palette.
func Print() error {
	return NewConsole(nil).Run(os.Stdout)
}
