package orchestration

import "github.com/agbru/tryfib/internal/fibonacci"

// AlgoAll selects every registered calculator.
const AlgoAll = "all"

// GetCalculatorsToRun determines which calculators should be executed for
// the given algorithm selection. "all" returns every registered calculator
// in alphabetical order; an unknown name returns nil.
func GetCalculatorsToRun(algo string, factory fibonacci.CalculatorFactory) []fibonacci.Calculator {
	if algo == AlgoAll {
		keys := factory.List() // List() returns sorted keys
		calculators := make([]fibonacci.Calculator, 0, len(keys))
		for _, k := range keys {
			if calc, err := factory.Get(k); err == nil {
				calculators = append(calculators, calc)
			}
		}
		return calculators
	}
	if calc, err := factory.Get(algo); err == nil {
		return []fibonacci.Calculator{calc}
	}
	return nil
}
