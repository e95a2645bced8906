package dataset

import (
	"fmt"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Value bounds for generated vectors, inclusive.
const (
	MinValue = -99
	MaxValue = 99
)

// Format renders values as a bracketed list, e.g. "[3, 1, 4]".
func Format(values []int) string {
	var b strings.Builder
	b.WriteByte('[')
	for i, v := range values {
		if i > 0 {
			b.WriteString(Separator)
		}
		b.WriteString(strconv.Itoa(v))
	}
	b.WriteByte(']')
	return b.String()
}

// Generate returns n values drawn uniformly from [MinValue, MaxValue].
func Generate(rng *rand.Rand, n int) []int {
	values := make([]int, n)
	for i := range values {
		values[i] = MinValue + rng.IntN(MaxValue-MinValue+1)
	}
	return values
}

// FileName returns the conventional name for a vector of n values.
func FileName(n int) string {
	return fmt.Sprintf("vec%d.txt", n)
}

// WriteFile writes values in Format form to dir/vec<len>.txt and returns the
// path written.
func WriteFile(dir string, values []int) (string, error) {
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", fmt.Errorf("failed to create directory: %w", err)
		}
	}
	path := filepath.Join(dir, FileName(len(values)))
	if err := os.WriteFile(path, []byte(Format(values)), 0o644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}
	return path, nil
}

// VectorSizes returns start, start*10, ... up to and including end. The
// sequence stops before a multiplication would overflow int.
func VectorSizes(start, end int) []int {
	var sizes []int
	for n := start; n > 0 && n <= end; n *= 10 {
		sizes = append(sizes, n)
		if n > end/10 {
			break
		}
	}
	return sizes
}

// GenerateFiles writes random vectors of size start, start*10, ... up to
// and including end, returning the paths in order of increasing size.
func GenerateFiles(rng *rand.Rand, dir string, start, end int) ([]string, error) {
	if start <= 0 {
		return nil, fmt.Errorf("start size must be positive, got %d", start)
	}
	var paths []string
	for _, n := range VectorSizes(start, end) {
		path, err := WriteFile(dir, Generate(rng, n))
		if err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}
