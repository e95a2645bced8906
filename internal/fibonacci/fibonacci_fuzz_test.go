package fibonacci

import "testing"

// FuzzMemoizedConsistency verifies that the memoized variant agrees with the
// iterative one for arbitrary term indices.
func FuzzMemoizedConsistency(f *testing.F) {
	f.Add(uint64(0))
	f.Add(uint64(1))
	f.Add(uint64(2))
	f.Add(uint64(10))
	f.Add(uint64(50))
	f.Add(uint64(92))
	f.Add(uint64(93)) // Largest term that fits in uint64
	f.Add(uint64(94))
	f.Add(uint64(1000))

	f.Fuzz(func(t *testing.T, n uint64) {
		// The memo table is n+1 words; keep it small.
		if n > 100000 {
			return
		}
		if got, want := FibonacciMemoized(n), FibonacciIterative(n); got != want {
			t.Errorf("n=%d: memoized=%d iterative=%d", n, got, want)
		}
	})
}
