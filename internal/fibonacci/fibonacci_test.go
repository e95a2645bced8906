package fibonacci

import "testing"

func TestKnownTerms(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		n    uint64
		want uint64
	}{
		{"F(0) conflated base case", 0, 1},
		{"F(1) base case", 1, 1},
		{"F(2) base case", 2, 1},
		{"F(3)", 3, 2},
		{"F(10)", 10, 55},
		{"F(20)", 20, 6765},
		{"F(30)", 30, 832040},
	}

	variants := map[string]func(uint64) uint64{
		"recursive": FibonacciRecursive,
		"iterative": FibonacciIterative,
		"memoized":  FibonacciMemoized,
	}

	for name, fn := range variants {
		for _, tt := range tests {
			t.Run(name+"/"+tt.name, func(t *testing.T) {
				t.Parallel()
				if got := fn(tt.n); got != tt.want {
					t.Errorf("%s(%d) = %d, want %d", name, tt.n, got, tt.want)
				}
			})
		}
	}
}

func TestLargeTerms(t *testing.T) {
	t.Parallel()
	tests := []struct {
		n    uint64
		want uint64
	}{
		{50, 12586269025},
		{92, 7540113804746346429},
		{MaxExactTerm, 12200160415121876738},
	}
	for _, tt := range tests {
		if got := FibonacciIterative(tt.n); got != tt.want {
			t.Errorf("FibonacciIterative(%d) = %d, want %d", tt.n, got, tt.want)
		}
		if got := FibonacciMemoized(tt.n); got != tt.want {
			t.Errorf("FibonacciMemoized(%d) = %d, want %d", tt.n, got, tt.want)
		}
	}
}

func TestRecursiveMatchesIterative(t *testing.T) {
	t.Parallel()
	for n := uint64(1); n <= 30; n++ {
		rec, iter := FibonacciRecursive(n), FibonacciIterative(n)
		if rec != iter {
			t.Errorf("n=%d: recursive=%d iterative=%d", n, rec, iter)
		}
	}
}

func TestWrapsPastMaxExactTerm(t *testing.T) {
	t.Parallel()
	// F(94) overflows uint64; all variants must wrap identically.
	n := uint64(MaxExactTerm + 1)
	want := FibonacciIterative(n-1) + FibonacciIterative(n-2)
	if got := FibonacciIterative(n); got != want {
		t.Errorf("FibonacciIterative(%d) = %d, want wrapped %d", n, got, want)
	}
	if got := FibonacciMemoized(n); got != want {
		t.Errorf("FibonacciMemoized(%d) = %d, want wrapped %d", n, got, want)
	}
}

func TestDefaultFactory(t *testing.T) {
	t.Parallel()
	f := NewDefaultFactory()

	want := []string{"iterative", "memoized", "recursive"}
	got := f.List()
	if len(got) != len(want) {
		t.Fatalf("List() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("List()[%d] = %q, want %q", i, got[i], want[i])
		}
	}

	calc, err := f.Get("iterative")
	if err != nil {
		t.Fatalf("Get(iterative) error: %v", err)
	}
	if calc.Name() != "Fibonacci (iterative)" {
		t.Errorf("Name() = %q", calc.Name())
	}
	if v := calc.Calculate(10); v != 55 {
		t.Errorf("Calculate(10) = %d, want 55", v)
	}

	if _, err := f.Get("binet"); err == nil {
		t.Error("Get(binet) should fail for an unregistered variant")
	}
}

func TestDefaultFactory_Register(t *testing.T) {
	t.Parallel()
	f := NewDefaultFactory()
	f.Register("constant", NewCalculator("constant", func(uint64) uint64 { return 7 }))

	calc, err := f.Get("constant")
	if err != nil {
		t.Fatalf("Get(constant) error: %v", err)
	}
	if calc.Calculate(100) != 7 {
		t.Error("registered calculator not returned")
	}
	if len(f.List()) != 4 {
		t.Errorf("List() length = %d, want 4", len(f.List()))
	}
}
