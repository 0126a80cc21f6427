// Package fibonacci resolves loosely typed inputs into Fibonacci indices and
// computes Fibonacci pairs for them.
//
// A pair for index i is (F(i+1), F(i)) under the seed Fib(0) = (1, 0), so the
// resolved results for i = 0, 1, 2, 3, 4, 5 are 1, 1, 2, 3, 5, 8.
//
// All arithmetic is done in native int and wraps silently on overflow, like
// any fixed-width signed integer in Go. Indices are bounded by MaxIndex so the
// recursive algorithm never exhausts the stack.
package fibonacci
