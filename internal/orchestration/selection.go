package orchestration

import (
	"github.com/agbru/recbench/internal/config"
	"github.com/agbru/recbench/internal/fibonacci"
	"github.com/agbru/recbench/internal/quicksort"
)

// BuildBenchmarks selects the benchmarks a configuration asks for, in
// sorted key order within each family. input is the loaded list for the
// quicksort family and may be nil in fib mode.
func BuildBenchmarks(cfg config.AppConfig, fibs fibonacci.CalculatorFactory, sorts *quicksort.Factory, input []int) ([]Benchmark, error) {
	var benches []Benchmark

	if cfg.Mode == config.ModeFib || cfg.Mode == config.ModeBench {
		keys := selectKeys(cfg, fibs.List())
		for _, k := range keys {
			calc, err := fibs.Get(k)
			if err != nil {
				return nil, err
			}
			benches = append(benches, NewFibonacciBenchmark(calc, cfg.N))
		}
	}

	if cfg.Mode == config.ModeSort || cfg.Mode == config.ModeBench {
		keys := selectKeys(cfg, sorts.List())
		for _, k := range keys {
			sorter, err := sorts.Get(k)
			if err != nil {
				return nil, err
			}
			benches = append(benches, NewSortBenchmark(sorter, input))
		}
	}
	return benches, nil
}

func selectKeys(cfg config.AppConfig, available []string) []string {
	if cfg.Compares() {
		return available
	}
	return []string{cfg.Algo}
}

// Catalog reports the registered variant keys of both factories.
func Catalog(fibs fibonacci.CalculatorFactory, sorts *quicksort.Factory) config.Catalog {
	return config.Catalog{Fibonacci: fibs.List(), Quicksort: sorts.List()}
}
