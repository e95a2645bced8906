package orchestration

import (
	"context"
	"fmt"
	"io"
	"sort"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	apperrors "github.com/agbru/recbench/internal/errors"
	"github.com/agbru/recbench/internal/logging"
	"github.com/agbru/recbench/internal/metrics"
)

var tracer = otel.Tracer("github.com/agbru/recbench/internal/orchestration")

// ProgressBufferMultiplier defines the buffer size multiplier for the progress
// channel. Each benchmark sends two updates, so a multiplier of at least two
// means runs never block on a slow reporter.
const ProgressBufferMultiplier = 5

// Options controls how benchmarks are executed.
type Options struct {
	// Parallelism caps the number of runs executing at once. Values below 1
	// mean sequential execution.
	Parallelism int
	// Recorder, when set, receives every finished run.
	Recorder *metrics.Recorder
	// Logger, when set, receives a debug entry per run.
	Logger logging.Logger
	// GCMode controls the garbage collector for the whole batch.
	GCMode metrics.GCMode
}

// ExecuteBenchmarks runs each benchmark once and returns the results in the
// order of benches.
//
// Runs are sequential unless opts.Parallelism allows more. A run still in
// progress when ctx ends is reported with ctx's error; its goroutine keeps
// computing in the background because the algorithms cannot be interrupted.
func ExecuteBenchmarks(ctx context.Context, benches []Benchmark, opts Options, progressReporter ProgressReporter, out io.Writer) []RunResult {
	g, ctx := errgroup.WithContext(ctx)
	limit := opts.Parallelism
	if limit < 1 {
		limit = 1
	}
	g.SetLimit(limit)

	results := make([]RunResult, len(benches))
	progressChan := make(chan ProgressUpdate, len(benches)*ProgressBufferMultiplier)

	var displayWg sync.WaitGroup
	displayWg.Add(1)
	go progressReporter.DisplayProgress(&displayWg, progressChan, len(benches), out)

	gc := metrics.NewGCController(opts.GCMode)
	if opts.Logger != nil {
		gc.SetLogger(opts.Logger)
	}
	gc.Begin()
	defer gc.End()

	for i, bench := range benches {
		g.Go(func() error {
			progressChan <- ProgressUpdate{Index: i, Name: bench.Name()}
			results[i] = runBenchmark(ctx, bench, opts)
			progressChan <- ProgressUpdate{Index: i, Name: bench.Name(), Done: true, Err: results[i].Err}
			return nil
		})
	}

	g.Wait()
	close(progressChan)
	displayWg.Wait()

	return results
}

type runOutcome struct {
	output    Output
	duration  time.Duration
	allocated uint64
}

func runBenchmark(ctx context.Context, bench Benchmark, opts Options) RunResult {
	ctx, span := tracer.Start(ctx, "benchmark.run", trace.WithAttributes(
		attribute.String("benchmark.name", bench.Name()),
		attribute.String("benchmark.family", bench.Family()),
	))
	defer span.End()

	result := RunResult{Name: bench.Name(), Family: bench.Family()}
	start := time.Now()

	if err := ctx.Err(); err != nil {
		result.Err = err
	} else {
		done := make(chan runOutcome, 1)
		go func() {
			before := metrics.ReadHeap()
			runStart := time.Now()
			output := bench.Run()
			elapsed := time.Since(runStart)
			done <- runOutcome{output: output, duration: elapsed, allocated: metrics.ReadHeap().AllocatedSince(before)}
		}()

		select {
		case o := <-done:
			result.Output = o.output
			result.Duration = o.duration
			result.Allocated = o.allocated
		case <-ctx.Done():
			result.Err = ctx.Err()
			result.Duration = time.Since(start)
		}
	}

	span.SetAttributes(attribute.Int64("benchmark.duration_ns", result.Duration.Nanoseconds()))
	if result.Err != nil {
		span.RecordError(result.Err)
		span.SetStatus(codes.Error, result.Err.Error())
	}
	if opts.Recorder != nil {
		opts.Recorder.Observe(result.Family, result.Name, result.Duration, result.Allocated, result.Err)
	}
	if opts.Logger != nil {
		switch {
		case apperrors.IsContextError(result.Err):
			opts.Logger.Debug("benchmark abandoned",
				logging.String("algorithm", result.Name),
				logging.String("reason", result.Err.Error()))
		case result.Err != nil:
			opts.Logger.Error("benchmark failed", result.Err, logging.String("algorithm", result.Name))
		default:
			opts.Logger.Debug("benchmark finished",
				logging.String("algorithm", result.Name),
				logging.Duration("duration", result.Duration),
				logging.Uint64("allocated_bytes", result.Allocated))
		}
	}
	return result
}

// AnalyzeComparisonResults sorts results (successes first, fastest first),
// presents the comparison table and checks that every successful run of a
// family produced the same output.
//
// Returns:
//   - int: ExitSuccess when at least one run succeeded and all successful
//     runs agree, ExitErrorMismatch on disagreement, or the presenter's exit
//     code for the first error when every run failed.
func AnalyzeComparisonResults(results []RunResult, presenter ResultPresenter, out io.Writer) int {
	sort.SliceStable(results, func(i, j int) bool {
		if (results[i].Err == nil) != (results[j].Err == nil) {
			return results[i].Err == nil
		}
		return results[i].Duration < results[j].Duration
	})

	var firstError error
	fastest := make(map[string]*RunResult)
	var families []string
	for i := range results {
		if results[i].Err != nil {
			if firstError == nil {
				firstError = results[i].Err
			}
			continue
		}
		if _, seen := fastest[results[i].Family]; !seen {
			fastest[results[i].Family] = &results[i]
			families = append(families, results[i].Family)
		}
	}

	presenter.PresentComparisonTable(results, out)

	if len(fastest) == 0 {
		presenter.PresentStatus(false, "No variant completed.", out)
		return presenter.HandleError(firstError, out)
	}

	for _, res := range results {
		if res.Err == nil && !res.Output.Equal(fastest[res.Family].Output) {
			presenter.PresentStatus(false, fmt.Sprintf("%s disagrees with %s.", res.Name, fastest[res.Family].Name), out)
			return apperrors.ExitErrorMismatch
		}
	}

	presenter.PresentStatus(true, "All completed variants agree.", out)
	sort.Strings(families)
	for _, family := range families {
		presenter.PresentResult(*fastest[family], out)
	}
	return apperrors.ExitSuccess
}
