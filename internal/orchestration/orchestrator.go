package orchestration

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	apperrors "github.com/agbru/tryfib/internal/errors"
	"github.com/agbru/tryfib/internal/fibonacci"
)

const tracerName = "github.com/agbru/tryfib/internal/orchestration"

// ErrNoResult is returned by AnalyzeResults when no calculation succeeded.
var ErrNoResult = errors.New("no algorithm could complete the calculation")

// ExecuteCalculations runs the calculators concurrently for index n and
// returns their results in input order. Each calculation gets its own span.
// Failures are reported in the results as apperrors.CalculationError, never
// as an early abort: one calculator failing does not cancel the others.
func ExecuteCalculations(ctx context.Context, calculators []fibonacci.Calculator, n int, observer Observer) []CalculationResult {
	if observer == nil {
		observer = NullObserver{}
	}
	tracer := otel.Tracer(tracerName)
	results := make([]CalculationResult, len(calculators))

	var g errgroup.Group
	for i, calc := range calculators {
		idx, calculator := i, calc
		g.Go(func() error {
			name := calculator.Name()
			spanCtx, span := tracer.Start(ctx, "fibonacci.calculate", trace.WithAttributes(
				attribute.String("fibonacci.algorithm", name),
				attribute.Int("fibonacci.index", n),
			))
			defer span.End()

			start := time.Now()
			pair, err := calculator.Calculate(spanCtx, n)
			elapsed := time.Since(start)
			if err != nil {
				span.RecordError(err)
				span.SetStatus(codes.Error, err.Error())
				err = apperrors.CalculationError{Cause: err}
			}
			observer.ObserveCalculation(name, elapsed, err)
			results[idx] = CalculationResult{Name: name, Pair: pair, Duration: elapsed, Err: err}
			return nil
		})
	}
	_ = g.Wait()

	return results
}

// AnalyzeResults picks the fastest successful result and checks that every
// successful result agrees with it. It returns an error wrapping ErrNoResult
// (and the first failure) when nothing succeeded, and an
// apperrors.MismatchError when two algorithms disagree. results is sorted in
// place: successes first, then by duration.
func AnalyzeResults(results []CalculationResult, n int) (CalculationResult, error) {
	sort.SliceStable(results, func(i, j int) bool {
		if (results[i].Err == nil) != (results[j].Err == nil) {
			return results[i].Err == nil
		}
		return results[i].Duration < results[j].Duration
	})

	if len(results) == 0 {
		return CalculationResult{}, ErrNoResult
	}
	best := results[0]
	if best.Err != nil {
		return CalculationResult{}, fmt.Errorf("%w: %w", ErrNoResult, best.Err)
	}

	for _, res := range results[1:] {
		if res.Err == nil && res.Pair != best.Pair {
			return CalculationResult{}, apperrors.MismatchError{Index: n, First: best.Name, Second: res.Name}
		}
	}
	return best, nil
}
