// Command generate-vectors writes the vec<N>.txt fixtures read by recbench:
// bracketed lists of random integers in [-99, 99] whose sizes grow tenfold
// from -start to -end.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"math/rand/v2"
	"os"

	"github.com/agbru/recbench/internal/dataset"
	apperrors "github.com/agbru/recbench/internal/errors"
	"github.com/agbru/recbench/internal/logging"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stderr))
}

func run(args []string, errOut io.Writer) int {
	fs := flag.NewFlagSet("generate-vectors", flag.ContinueOnError)
	fs.SetOutput(errOut)
	dir := fs.String("dir", "testdata", "Directory to write the vectors into.")
	start := fs.Int("start", 10, "Size of the smallest vector.")
	end := fs.Int("end", 10000, "Largest vector size to generate.")
	seed := fs.Uint64("seed", 1010, "Random seed; the same seed reproduces the same files.")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return apperrors.ExitSuccess
		}
		return apperrors.ExitErrorConfig
	}

	logger := logging.NewLogger(errOut, "generate-vectors", true)

	if *start <= 0 || *end < *start {
		logger.Error("invalid size range", fmt.Errorf("start %d, end %d", *start, *end))
		return apperrors.ExitErrorConfig
	}

	rng := rand.New(rand.NewPCG(*seed, *seed))
	paths, err := dataset.GenerateFiles(rng, *dir, *start, *end)
	for _, p := range paths {
		logger.Info("vector written", logging.String("path", p))
	}
	if err != nil {
		logger.Error("generation failed", err)
		return apperrors.ExitErrorGeneric
	}
	logger.Info("vectors generated", logging.Int("count", len(paths)))
	return apperrors.ExitSuccess
}
