//go:generate mockgen -source=calculator.go -destination=mocks/mock_calculator.go -package=mocks

package fibonacci

import (
	"context"
	"math/bits"
)

// Calculator computes the Fibonacci pair for an index. Implementations must
// agree on every valid index, including indices whose values wrap.
type Calculator interface {
	// Name returns the registry name of the algorithm (e.g., "recursive").
	Name() string
	// Calculate returns the pair for n. It fails with *IndexError when n is
	// outside [0, MaxIndex] and with ctx.Err() when ctx is already done.
	Calculate(ctx context.Context, n int) (Pair, error)
}

// precheck holds the validation shared by all calculators.
func precheck(ctx context.Context, n int) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return CheckIndex(n)
}

// Recursive computes pairs with Fib, one stack frame per index step.
type Recursive struct{}

// Name returns "recursive".
func (Recursive) Name() string { return "recursive" }

// Calculate returns Fib(n).
func (Recursive) Calculate(ctx context.Context, n int) (Pair, error) {
	if err := precheck(ctx, n); err != nil {
		return Pair{}, err
	}
	return Fib(n), nil
}

// Iterative advances the seed pair n times in a loop.
type Iterative struct{}

// Name returns "iterative".
func (Iterative) Name() string { return "iterative" }

// Calculate returns the pair for n in constant stack space.
func (Iterative) Calculate(ctx context.Context, n int) (Pair, error) {
	if err := precheck(ctx, n); err != nil {
		return Pair{}, err
	}
	p := Seed
	for i := 0; i < n; i++ {
		p = p.Next()
	}
	return p, nil
}

// Doubling uses the fast doubling identities
//
//	F(2k)   = F(k) * (2*F(k+1) - F(k))
//	F(2k+1) = F(k)² + F(k+1)²
//
// in wrapping int arithmetic. Wraparound is arithmetic modulo 2^w, where the
// identities still hold, so results match the linear algorithms bit for bit.
type Doubling struct{}

// Name returns "doubling".
func (Doubling) Name() string { return "doubling" }

// Calculate returns (F(n+1), F(n)) in O(log n) steps.
func (Doubling) Calculate(ctx context.Context, n int) (Pair, error) {
	if err := precheck(ctx, n); err != nil {
		return Pair{}, err
	}
	fk, fk1 := 0, 1 // F(k), F(k+1) with k = 0
	u := uint(n)
	for i := bits.Len(u) - 1; i >= 0; i-- {
		f2k := fk * (2*fk1 - fk)
		f2k1 := fk*fk + fk1*fk1
		fk, fk1 = f2k, f2k1
		if (u>>uint(i))&1 == 1 {
			fk, fk1 = fk1, fk+fk1
		}
	}
	return Pair{Current: fk1, Previous: fk}, nil
}
