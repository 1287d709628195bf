// Command wasmhello runs the module's fixed demonstration sequence on the
// console.
//
// With -v, every operation call is traced through the stdlib log, which is
// the merged form of the verbose example-module variant.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"

	"github.com/anistark/wasmhello/demo"
)

func main() {
	verbose := flag.Bool("v", false, "trace every operation call")
	flag.Parse()
	//
	gtrace.CoreTracer = gologadapter.New()
	if *verbose {
		gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	} else {
		gtrace.CoreTracer.SetTraceLevel(tracing.LevelInfo)
	}
	if err := demo.Print(); err != nil {
		fmt.Fprintf(os.Stderr, "demo failed: %v\n", err)
		os.Exit(1)
	}
}
