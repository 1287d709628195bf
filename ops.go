package wasmhello

import (
	"fmt"
	"math"
	"unicode/utf8"
)

// Greet formats a greeting for name and returns it.
//
// There is no validation; an empty name produces "Hello, !". The greeting is
// additionally written to the module tracer: greet is the canonical
// "module is alive" call of the example set.
func Greet(name string) string {
	greeting := fmt.Sprintf("Hello, %s! This is a wasmhello example.", name)
	tracer().Debugf("greet(%q) = %q", name, greeting)
	return greeting
}

// Fibonacci returns the n-th Fibonacci number, computed by naive recursion.
//
// n ≤ 1 returns n. The exponential running time is intentional: the function
// exists to give a host environment something expensive and recursive to call,
// not to compute Fibonacci numbers efficiently. Do not add memoization here.
func Fibonacci(n int) int {
	if n <= 1 {
		return n
	}
	result := Fibonacci(n-1) + Fibonacci(n-2)
	tracer().Debugf("fibonacci(%d) = %d", n, result)
	return result
}

// SumArray returns the sum of all elements of values.
//
// The C example's surface takes a pointer plus an explicit length; in Go the
// slice header carries the length, so no bounds handling is needed.
// An empty (or nil) slice sums to 0.
func SumArray(values []int) int {
	sum := 0
	for _, v := range values {
		sum += v
	}
	tracer().Debugf("sum_array of %d values = %d", len(values), sum)
	return sum
}

// Factorial returns n! as a 64-bit integer.
//
// n ≤ 1 returns 1. There is no overflow check: for n > 20 the product wraps
// silently, which matches the C example's long-long semantics and is a
// documented behavior, not a defect.
func Factorial(n int) int64 {
	if n <= 1 {
		return 1
	}
	result := int64(1)
	for i := 2; i <= n; i++ {
		result *= int64(i)
	}
	tracer().Debugf("factorial(%d) = %d", n, result)
	return result
}

// IsPrime reports whether n is prime, using trial division by 6k±1 up to √n.
//
// n ≤ 1 is not prime, 2 and 3 are, and any larger multiple of 2 or 3 is not.
// All remaining candidates are checked against divisors of the form 6k±1.
func IsPrime(n int) bool {
	if n <= 1 {
		return false
	}
	if n <= 3 {
		return true
	}
	if n%2 == 0 || n%3 == 0 {
		return false
	}
	for i := 5; i*i <= n; i += 6 {
		if n%i == 0 || n%(i+2) == 0 {
			return false
		}
	}
	tracer().Debugf("%d is prime", n)
	return true
}

// StringLength returns the number of characters in s, i.e. the rune count.
//
// For strings of unclear provenance this is the least surprising notion of
// "length"; clients needing grapheme clusters or display columns should use
// package textlen instead.
func StringLength(s string) int {
	length := utf8.RuneCountInString(s)
	tracer().Debugf("length of %q: %d", s, length)
	return length
}

// SquareRoot returns the non-negative square root of x.
//
// It follows math.Sqrt semantics: a negative input yields NaN, which is the
// documented result, not an error condition. No error is ever returned.
func SquareRoot(x float64) float64 {
	result := math.Sqrt(x)
	tracer().Debugf("sqrt(%.2f) = %.6f", x, result)
	return result
}
