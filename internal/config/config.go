// Package config defines the application configuration and parses it from
// command-line flags and RECBENCH_* environment variables.
package config

import (
	"flag"
	"fmt"
	"io"
	"slices"
	"strings"
	"time"

	apperrors "github.com/agbru/recbench/internal/errors"
)

// EnvPrefix is prepended to every environment variable override.
const EnvPrefix = "RECBENCH_"

// Modes of operation.
const (
	ModeSort  = "sort"
	ModeFib   = "fib"
	ModeBench = "bench"
)

// AlgoAll selects every registered variant of a family.
const AlgoAll = "all"

// Defaults applied when neither a flag nor an environment variable is set.
const (
	DefaultFile     = "vec10.txt"
	DefaultAlgo     = "iterative"
	DefaultN        = 30
	DefaultTimeout  = 5 * time.Minute
	DefaultParallel = 1
	DefaultGC       = "default"
)

// AppConfig aggregates the application's configuration parameters.
type AppConfig struct {
	// Mode selects what to run: sort, fib or bench.
	Mode string
	// Algo is the variant key, or "all" to compare every variant.
	Algo string
	// File is the list file sorted in sort and bench modes.
	File string
	// N is the Fibonacci term index used in fib and bench modes.
	N uint64
	// Timeout bounds the whole run.
	Timeout time.Duration
	// Parallel is the number of benchmark runs allowed at once.
	Parallel int
	// MaxStack, when positive, replaces the runtime's maximum goroutine
	// stack size in bytes before any algorithm runs.
	MaxStack int
	// GC is the collector mode during runs: "default" or "disabled".
	GC string
	// MetricsOut, when set, is where the prometheus text file is written.
	MetricsOut string
	Quiet      bool
	Verbose    bool
	NoColor    bool
	TUI        bool
}

// Catalog lists the variant keys registered for each algorithm family.
type Catalog struct {
	Fibonacci []string
	Quicksort []string
}

// ParseConfig parses args into an AppConfig, applies environment overrides
// for unset flags, and validates the result against the catalog.
//
// It returns flag.ErrHelp (wrapped) when -h or --help was given.
func ParseConfig(programName string, args []string, errWriter io.Writer, catalog Catalog) (AppConfig, error) {
	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errWriter)

	var cfg AppConfig
	fs.StringVar(&cfg.Mode, "mode", ModeSort, "What to run: sort, fib or bench.")
	fs.StringVar(&cfg.Algo, "algo", DefaultAlgo, "Variant to run: recursive, iterative, memoized (fib only) or all.")
	fs.StringVar(&cfg.File, "file", DefaultFile, "Bracketed integer list file to sort.")
	fs.Uint64Var(&cfg.N, "n", DefaultN, "Fibonacci term index (n >= 1).")
	fs.DurationVar(&cfg.Timeout, "timeout", DefaultTimeout, "Maximum duration of the whole run.")
	fs.IntVar(&cfg.Parallel, "parallel", DefaultParallel, "Number of benchmark runs allowed at once. Above 1, allocation figures are process-wide and reported as n/a.")
	fs.IntVar(&cfg.MaxStack, "max-stack", 0, "Maximum goroutine stack size in bytes (0 keeps the runtime default).")
	fs.StringVar(&cfg.GC, "gc", DefaultGC, "Garbage collector during runs: default or disabled.")
	fs.StringVar(&cfg.MetricsOut, "metrics-out", "", "Write prometheus metrics in text format to this file.")
	fs.BoolVar(&cfg.Quiet, "quiet", false, "Print results only.")
	fs.BoolVar(&cfg.Quiet, "q", false, "Shorthand for -quiet.")
	fs.BoolVar(&cfg.Verbose, "verbose", false, "Enable debug logging.")
	fs.BoolVar(&cfg.Verbose, "v", false, "Shorthand for -verbose.")
	fs.BoolVar(&cfg.NoColor, "no-color", false, "Disable colored output.")
	fs.BoolVar(&cfg.TUI, "tui", false, "Show an interactive dashboard while benchmarks run.")

	fs.Usage = func() {
		fmt.Fprintf(errWriter, "Usage: %s [flags]\n\n", programName)
		fmt.Fprintf(errWriter, "With no flags, loads %s, prints it, sorts it with the iterative quicksort and prints it again.\n\n", DefaultFile)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return AppConfig{}, err
	}

	applyEnvOverrides(&cfg, fs)

	cfg.Mode = strings.ToLower(cfg.Mode)
	cfg.Algo = strings.ToLower(cfg.Algo)
	cfg.GC = strings.ToLower(cfg.GC)
	if err := cfg.Validate(catalog); err != nil {
		fmt.Fprintf(errWriter, "Error: %v\n", err)
		return AppConfig{}, err
	}
	return cfg, nil
}

// Validate checks the configuration for consistency.
func (c AppConfig) Validate(catalog Catalog) error {
	switch c.Mode {
	case ModeSort:
		if c.Algo != AlgoAll && !slices.Contains(catalog.Quicksort, c.Algo) {
			return apperrors.NewConfigError("unknown quicksort algorithm %q (available: %s, all)", c.Algo, strings.Join(catalog.Quicksort, ", "))
		}
	case ModeFib:
		if c.Algo != AlgoAll && !slices.Contains(catalog.Fibonacci, c.Algo) {
			return apperrors.NewConfigError("unknown fibonacci algorithm %q (available: %s, all)", c.Algo, strings.Join(catalog.Fibonacci, ", "))
		}
	case ModeBench:
		// bench always runs every variant.
	default:
		return apperrors.NewConfigError("unknown mode %q (available: sort, fib, bench)", c.Mode)
	}

	if c.Mode != ModeSort && c.N < 1 {
		return apperrors.NewConfigError("-n must be at least 1, got %d", c.N)
	}
	if c.Timeout <= 0 {
		return apperrors.NewConfigError("-timeout must be positive, got %s", c.Timeout)
	}
	if c.Parallel < 1 {
		return apperrors.NewConfigError("-parallel must be at least 1, got %d", c.Parallel)
	}
	if c.MaxStack < 0 {
		return apperrors.NewConfigError("-max-stack must not be negative, got %d", c.MaxStack)
	}
	if c.GC != "default" && c.GC != "disabled" {
		return apperrors.NewConfigError("unknown -gc mode %q (available: default, disabled)", c.GC)
	}
	if c.TUI && c.Quiet {
		return apperrors.NewConfigError("-tui and -quiet cannot be combined")
	}
	return nil
}

// Compares reports whether the run times several variants against each other
// rather than executing a single one.
func (c AppConfig) Compares() bool {
	return c.Mode == ModeBench || c.Algo == AlgoAll
}
