package orchestration

import (
	"slices"
	"time"

	"github.com/agbru/recbench/internal/fibonacci"
	"github.com/agbru/recbench/internal/quicksort"
)

// Algorithm families. Results are only compared within a family.
const (
	FamilyFibonacci = "fibonacci"
	FamilyQuicksort = "quicksort"
)

// Output is what a single run produced: term N of the sequence for the
// Fibonacci family, a sorted slice for the quicksort family.
type Output struct {
	N      uint64
	Term   uint64
	Sorted []int
}

// Equal reports whether two outputs carry the same value.
func (o Output) Equal(other Output) bool {
	return o.Term == other.Term && slices.Equal(o.Sorted, other.Sorted)
}

// Benchmark is one algorithm variant bound to its input.
type Benchmark interface {
	Name() string
	Family() string
	// Run executes the variant once. It must not mutate shared input.
	Run() Output
}

// RunResult is the outcome of one timed run.
type RunResult struct {
	Name   string
	Family string
	Output Output
	// Duration is the wall-clock time of Run, excluding setup.
	Duration time.Duration
	// Allocated is the heap bytes allocated while the run executed.
	Allocated uint64
	Err       error
}

type fibonacciBenchmark struct {
	calc fibonacci.Calculator
	n    uint64
}

// NewFibonacciBenchmark binds calc to the term index n.
func NewFibonacciBenchmark(calc fibonacci.Calculator, n uint64) Benchmark {
	return &fibonacciBenchmark{calc: calc, n: n}
}

func (b *fibonacciBenchmark) Name() string   { return b.calc.Name() }
func (b *fibonacciBenchmark) Family() string { return FamilyFibonacci }
func (b *fibonacciBenchmark) Run() Output    { return Output{N: b.n, Term: b.calc.Calculate(b.n)} }

type sortBenchmark struct {
	sorter quicksort.Sorter
	input  []int
}

// NewSortBenchmark binds sorter to input. Every run sorts its own copy, so
// input keeps its loaded order and several variants can share it.
func NewSortBenchmark(sorter quicksort.Sorter, input []int) Benchmark {
	return &sortBenchmark{sorter: sorter, input: input}
}

func (b *sortBenchmark) Name() string   { return b.sorter.Name() }
func (b *sortBenchmark) Family() string { return FamilyQuicksort }

func (b *sortBenchmark) Run() Output {
	a := slices.Clone(b.input)
	b.sorter.Sort(a)
	return Output{Sorted: a}
}
