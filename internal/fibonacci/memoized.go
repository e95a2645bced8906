package fibonacci

// FibonacciMemoized returns the n-th term using recursion over a memo table
// sized n+1. A zero entry means "not computed yet", which is safe because
// no term of the sequence is zero.
func FibonacciMemoized(n uint64) uint64 {
	if n <= 2 {
		return 1
	}
	memo := make([]uint64, n+1)
	return memoizedTerm(n, memo)
}

func memoizedTerm(n uint64, memo []uint64) uint64 {
	if n <= 2 {
		return 1
	}
	if memo[n] != 0 {
		return memo[n]
	}
	memo[n] = memoizedTerm(n-1, memo) + memoizedTerm(n-2, memo)
	return memo[n]
}
