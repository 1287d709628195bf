//go:build wasip1

// Command wasmmod builds the module as a WebAssembly binary whose exports
// mirror the C example module's host surface.
//
// Build with:
//
//	GOOS=wasip1 GOARCH=wasm go build -o wasmhello.wasm ./cmd/wasmmod
//
// String and array parameters cross the host boundary as (pointer, length)
// pairs into linear memory, as they do for any C-style wasm module. The
// array handle returned by create_array is an opaque id managed on the Go
// side, so the host never holds a raw pointer it could double-free.
package main

import (
	"fmt"
	"unsafe"

	"github.com/anistark/wasmhello"
)

// arrays maps handle ids to live array handles. No synchronization: wasm
// modules built this way are single-threaded.
var arrays = map[uint32]*wasmhello.IntArray{}
var nextID uint32

//go:wasmexport greet
func greet(ptr, size uint32) {
	name := hostString(ptr, size)
	fmt.Println(wasmhello.Greet(name))
}

//go:wasmexport fibonacci
func fibonacci(n int32) int32 {
	return int32(wasmhello.Fibonacci(int(n)))
}

//go:wasmexport sum_array
func sumArray(ptr, length uint32) int32 {
	raw := unsafe.Slice((*int32)(unsafe.Pointer(uintptr(ptr))), int(length))
	values := make([]int, len(raw))
	for i, v := range raw {
		values[i] = int(v)
	}
	return int32(wasmhello.SumArray(values))
}

//go:wasmexport factorial
func factorial(n int32) int64 {
	return wasmhello.Factorial(int(n))
}

//go:wasmexport is_prime
func isPrime(n int32) int32 {
	if wasmhello.IsPrime(int(n)) {
		return 1
	}
	return 0
}

//go:wasmexport string_length
func stringLength(ptr, size uint32) int32 {
	return int32(wasmhello.StringLength(hostString(ptr, size)))
}

//go:wasmexport create_array
func createArray(size int32) uint32 {
	arr, err := wasmhello.CreateArray(int(size))
	if err != nil {
		return 0 // null handle; the host must check
	}
	id := allocID()
	arrays[id] = arr
	return id
}

// allocID hands out the next free handle id. Id 0 stays reserved as the
// null handle, also after the counter wraps, and ids still held by the host
// are never reissued.
func allocID() uint32 {
	for {
		nextID++
		if nextID == 0 {
			continue
		}
		if _, live := arrays[nextID]; !live {
			return nextID
		}
	}
}

//go:wasmexport free_array
func freeArray(id uint32) {
	if arr, ok := arrays[id]; ok {
		arr.Free()
		delete(arrays, id)
	}
	// unknown ids, including 0, are a no-op
}

//go:wasmexport square_root
func squareRoot(x float64) float64 {
	return wasmhello.SquareRoot(x)
}

func hostString(ptr, size uint32) string {
	if size == 0 {
		return ""
	}
	return unsafe.String((*byte)(unsafe.Pointer(uintptr(ptr))), int(size))
}

// main runs the example modules' startup banner when the wasm binary is
// invoked as a command instead of as a library.
func main() {
	fmt.Println(wasmhello.Greet("World"))
	fmt.Printf("fibonacci(10) = %d\n", wasmhello.Fibonacci(10))
	fmt.Printf("factorial(5) = %d\n", wasmhello.Factorial(5))
	fmt.Printf("is_prime(17) = %t\n", wasmhello.IsPrime(17))
	fmt.Printf("sqrt(25.0) = %.6f\n", wasmhello.SquareRoot(25.0))
}
