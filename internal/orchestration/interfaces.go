package orchestration

import (
	"time"

	"github.com/agbru/tryfib/internal/fibonacci"
)

// CalculationResult encapsulates the outcome of a single calculation.
type CalculationResult struct {
	// Name is the registry name of the algorithm used (e.g., "recursive").
	Name string
	// Pair is the computed pair. It is the zero Pair if an error occurred.
	Pair fibonacci.Pair
	// Duration is the time taken to complete the calculation.
	Duration time.Duration
	// Err contains any error that occurred during the calculation.
	Err error
}

// Observer receives the outcome of every calculation. Implementations must
// be safe for concurrent use.
type Observer interface {
	ObserveCalculation(algorithm string, d time.Duration, err error)
}

// NullObserver discards observations.
type NullObserver struct{}

// ObserveCalculation does nothing.
func (NullObserver) ObserveCalculation(string, time.Duration, error) {}
