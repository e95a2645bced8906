package fibonacci

import (
	"fmt"
	"sort"
	"sync"
)

// Calculator is a named Fibonacci variant that can be timed and compared
// against the others.
type Calculator interface {
	// Name returns a human-readable identifier, e.g. "Fibonacci (recursive)".
	Name() string
	// Calculate returns the n-th term of the sequence.
	Calculate(n uint64) uint64
}

// FuncCalculator adapts a plain function to the Calculator interface.
type FuncCalculator struct {
	name string
	fn   func(uint64) uint64
}

// NewCalculator wraps fn as a Calculator with the given display name.
func NewCalculator(name string, fn func(uint64) uint64) Calculator {
	return &FuncCalculator{name: name, fn: fn}
}

// Name returns the display name of the variant.
func (c *FuncCalculator) Name() string { return c.name }

// Calculate delegates to the wrapped function.
func (c *FuncCalculator) Calculate(n uint64) uint64 { return c.fn(n) }

// CalculatorFactory provides access to registered Calculator variants by key.
type CalculatorFactory interface {
	// Get returns the calculator registered under name.
	Get(name string) (Calculator, error)
	// List returns the registered keys in sorted order.
	List() []string
	// Register adds or replaces a calculator under name.
	Register(name string, calc Calculator)
}

// DefaultFactory is a concurrency-safe CalculatorFactory.
type DefaultFactory struct {
	mu          sync.RWMutex
	calculators map[string]Calculator
}

// NewDefaultFactory returns a factory pre-populated with the recursive,
// iterative and memoized variants.
func NewDefaultFactory() *DefaultFactory {
	f := &DefaultFactory{calculators: make(map[string]Calculator)}
	f.Register("recursive", NewCalculator("Fibonacci (recursive)", FibonacciRecursive))
	f.Register("iterative", NewCalculator("Fibonacci (iterative)", FibonacciIterative))
	f.Register("memoized", NewCalculator("Fibonacci (memoized)", FibonacciMemoized))
	return f
}

// Register adds or replaces a calculator under name.
func (f *DefaultFactory) Register(name string, calc Calculator) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calculators[name] = calc
}

// Get returns the calculator registered under name.
func (f *DefaultFactory) Get(name string) (Calculator, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	calc, ok := f.calculators[name]
	if !ok {
		return nil, fmt.Errorf("unknown fibonacci algorithm %q", name)
	}
	return calc, nil
}

// List returns the registered keys in sorted order.
func (f *DefaultFactory) List() []string {
	f.mu.RLock()
	defer f.mu.RUnlock()
	keys := make([]string, 0, len(f.calculators))
	for k := range f.calculators {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Verify interface compliance.
var _ CalculatorFactory = (*DefaultFactory)(nil)
