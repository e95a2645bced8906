package fibonacci

// ─────────────────────────────────────────────────────────────────────────────
// Term Index Constants
// ─────────────────────────────────────────────────────────────────────────────

const (
	// DefaultTerm is the term index used by the CLI when -n is not given.
	// The naive recursive variant needs on the order of F(n) calls, so the
	// default stays small enough to finish in well under a second.
	DefaultTerm = 30

	// BenchmarkTerm is the fixed term index used by the benchmark hooks.
	BenchmarkTerm = 50

	// MaxExactTerm is the largest n for which the sequence value fits in a
	// uint64. Beyond it every variant wraps modulo 2^64 identically.
	MaxExactTerm = 93
)
