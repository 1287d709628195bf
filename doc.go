/*
Package wasmhello is a small demonstration function module.

It collects the handful of operations which the wasmrun example modules
export to their host environment: a greeting, a naive Fibonacci, array
summation, factorial, a primality test, string length, a heap-array
allocate/release pair, and a square root. Every operation is independently
callable and stateless with respect to the others; only the array pair
models a (trivial) resource lifecycle.

The wasmrun example modules exist in two variants which differ only in
diagnostic verbosity. This package keeps one canonical definition per
operation and routes the verbose variant's diagnostics through an injectable
tracer instead: clients who want the chatty behavior select a tracing
adapter and set the trace level to Debug, everyone else gets silence.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2025, the wasmhello authors

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

*/
package wasmhello

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'wasmhello'
func tracer() tracing.Trace {
	return tracing.Select("wasmhello")
}

// HelloError is an error type for the wasmhello module
type HelloError string

func (e HelloError) Error() string {
	return string(e)
}

// ErrInvalidSize is flagged when an array size parameter is negative.
const ErrInvalidSize = HelloError("invalid array size")

// ErrReleased is flagged when a released array handle is accessed.
const ErrReleased = HelloError("array has been released")

// ErrIndexOutOfBounds is flagged whenever an array position is outside the
// bounds of the array.
const ErrIndexOutOfBounds = HelloError("index out of bounds")
