package fibonacci

// Pair holds two consecutive Fibonacci values. Current is the value at the
// requested index and Previous the one immediately before it.
type Pair struct {
	Current  int
	Previous int
}

// Seed is the pair for index 0.
var Seed = Pair{Current: 1, Previous: 0}

// Next returns the pair for the following index.
func (p Pair) Next() Pair {
	return Pair{Current: p.Current + p.Previous, Previous: p.Current}
}

// Fib computes the pair for index i by recursion on i-1. The caller must
// guarantee 0 <= i <= MaxIndex; use CheckIndex first.
func Fib(i int) Pair {
	if i == 0 {
		return Seed
	}
	return Fib(i - 1).Next()
}
