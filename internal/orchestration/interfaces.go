package orchestration

import (
	"io"
	"sync"
)

// ProgressUpdate reports that a benchmark started (Done false) or finished
// (Done true).
type ProgressUpdate struct {
	// Index is the benchmark's position in the slice given to ExecuteBenchmarks.
	Index int
	Name  string
	Done  bool
	Err   error
}

// ProgressReporter defines the interface for displaying run progress.
// This interface decouples the orchestration layer from the presentation layer.
type ProgressReporter interface {
	// DisplayProgress consumes updates until progressChan is closed, then
	// calls wg.Done.
	//
	// Parameters:
	//   - wg: A WaitGroup to signal when display is complete.
	//   - progressChan: Channel receiving progress updates.
	//   - numBenchmarks: The number of benchmarks being tracked.
	//   - out: The writer for progress output.
	DisplayProgress(wg *sync.WaitGroup, progressChan <-chan ProgressUpdate, numBenchmarks int, out io.Writer)
}

// ProgressReporterFunc is a function adapter that implements ProgressReporter.
type ProgressReporterFunc func(wg *sync.WaitGroup, progressChan <-chan ProgressUpdate, numBenchmarks int, out io.Writer)

// DisplayProgress calls the underlying function.
func (f ProgressReporterFunc) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan ProgressUpdate, numBenchmarks int, out io.Writer) {
	f(wg, progressChan, numBenchmarks, out)
}

// NullProgressReporter is a no-op implementation of ProgressReporter.
// It drains the progress channel without displaying anything.
type NullProgressReporter struct{}

// DisplayProgress drains the channel without output.
func (NullProgressReporter) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan ProgressUpdate, _ int, _ io.Writer) {
	defer wg.Done()
	DrainChannel(progressChan)
}

// DrainChannel reads all updates from the channel without processing.
func DrainChannel(progressChan <-chan ProgressUpdate) {
	for range progressChan {
	}
}

// ResultPresenter defines the interface for presenting run results.
type ResultPresenter interface {
	// PresentComparisonTable displays the comparison summary table.
	PresentComparisonTable(results []RunResult, out io.Writer)

	// PresentStatus displays the overall verdict of a comparison.
	PresentStatus(ok bool, message string, out io.Writer)

	// PresentResult displays the value produced by the fastest run of a family.
	PresentResult(result RunResult, out io.Writer)

	// HandleError reports a failure and returns the exit code for it.
	HandleError(err error, out io.Writer) int
}
