package fibonacci

import (
	"fmt"
	"sort"
	"sync"
)

// CalculatorFactory looks up calculators by name.
type CalculatorFactory interface {
	// Register adds or replaces a calculator under name.
	Register(name string, calc Calculator)
	// Get returns the calculator registered under name.
	Get(name string) (Calculator, error)
	// MustGet is Get that panics on unknown names.
	MustGet(name string) Calculator
	// List returns registered names in sorted order.
	List() []string
	// GetAll returns every calculator keyed by name.
	GetAll() map[string]Calculator
}

// DefaultFactory is a concurrency-safe CalculatorFactory backed by a map.
type DefaultFactory struct {
	mu          sync.RWMutex
	calculators map[string]Calculator
}

// NewFactory returns an empty factory.
func NewFactory() *DefaultFactory {
	return &DefaultFactory{calculators: make(map[string]Calculator)}
}

// NewDefaultFactory returns a factory with the built-in algorithms
// registered under their Name.
func NewDefaultFactory() *DefaultFactory {
	f := NewFactory()
	for _, c := range []Calculator{Recursive{}, Iterative{}, Doubling{}} {
		f.Register(c.Name(), c)
	}
	return f
}

var (
	globalFactory     *DefaultFactory
	globalFactoryOnce sync.Once
)

// GlobalFactory returns a process-wide default factory.
func GlobalFactory() *DefaultFactory {
	globalFactoryOnce.Do(func() {
		globalFactory = NewDefaultFactory()
	})
	return globalFactory
}

// Register adds or replaces a calculator.
func (f *DefaultFactory) Register(name string, calc Calculator) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calculators[name] = calc
}

// Get returns the calculator registered under name, or an error wrapping
// ErrUnknownCalculator.
func (f *DefaultFactory) Get(name string) (Calculator, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	calc, ok := f.calculators[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCalculator, name)
	}
	return calc, nil
}

// MustGet is Get that panics on unknown names.
func (f *DefaultFactory) MustGet(name string) Calculator {
	calc, err := f.Get(name)
	if err != nil {
		panic(err)
	}
	return calc
}

// List returns the registered names, sorted.
func (f *DefaultFactory) List() []string {
	f.mu.RLock()
	defer f.mu.RUnlock()
	names := make([]string, 0, len(f.calculators))
	for name := range f.calculators {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// GetAll returns a copy of the registry.
func (f *DefaultFactory) GetAll() map[string]Calculator {
	f.mu.RLock()
	defer f.mu.RUnlock()
	all := make(map[string]Calculator, len(f.calculators))
	for name, calc := range f.calculators {
		all[name] = calc
	}
	return all
}
