package dataset

import (
	"errors"
	"io"
	"os"
	"strconv"
	"strings"

	apperrors "github.com/agbru/recbench/internal/errors"
)

// Separator splits values in a list file.
const Separator = ", "

// Load reads the list file at path and returns the integers between its
// first and last segments (see the package documentation).
//
// A missing file yields a *apperrors.DatasetError satisfying
// errors.Is(err, fs.ErrNotExist); a segment that is not an integer yields a
// *apperrors.DatasetError wrapping the *strconv.NumError.
func Load(path string) ([]int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &apperrors.DatasetError{Path: path, Segment: -1, Cause: err}
	}
	defer f.Close()

	content, err := io.ReadAll(f)
	if err != nil {
		return nil, &apperrors.DatasetError{Path: path, Segment: -1, Cause: apperrors.WrapError(err, "reading list")}
	}

	values, err := Parse(string(content))
	var dsErr *apperrors.DatasetError
	if errors.As(err, &dsErr) {
		dsErr.Path = path
	}
	return values, err
}

// Parse applies the list-file contract to text held in memory. Text with
// fewer than three segments yields an empty, non-nil slice.
func Parse(text string) ([]int, error) {
	segments := strings.Split(text, Separator)
	if len(segments) < 3 {
		return []int{}, nil
	}
	inner := segments[1 : len(segments)-1]

	values := make([]int, len(inner))
	for i, seg := range inner {
		v, err := strconv.Atoi(strings.TrimSpace(seg))
		if err != nil {
			return nil, &apperrors.DatasetError{Segment: i, Cause: err}
		}
		values[i] = v
	}
	return values, nil
}
