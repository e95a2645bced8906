package orchestration

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log"
	"runtime/debug"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"

	apperrors "github.com/agbru/recbench/internal/errors"
	"github.com/agbru/recbench/internal/logging"
	"github.com/agbru/recbench/internal/metrics"
)

// MockResultPresenter records what AnalyzeComparisonResults asked it to show.
type MockResultPresenter struct {
	mu        sync.Mutex
	tables    int
	presented []RunResult
	handled   []error
}

func (m *MockResultPresenter) PresentComparisonTable(results []RunResult, out io.Writer) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tables++
}

func (m *MockResultPresenter) PresentStatus(ok bool, message string, out io.Writer) {}

func (m *MockResultPresenter) PresentResult(result RunResult, out io.Writer) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.presented = append(m.presented, result)
}

func (m *MockResultPresenter) HandleError(err error, out io.Writer) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.handled = append(m.handled, err)
	return apperrors.ExitCodeFor(err)
}

// MockBenchmark is a Benchmark driven by a function.
type MockBenchmark struct {
	name   string
	family string
	run    func() Output
}

func (m *MockBenchmark) Name() string   { return m.name }
func (m *MockBenchmark) Family() string { return m.family }
func (m *MockBenchmark) Run() Output    { return m.run() }

func constantBenchmark(name, family string, term uint64) *MockBenchmark {
	return &MockBenchmark{name: name, family: family, run: func() Output { return Output{Term: term} }}
}

func TestExecuteBenchmarks(t *testing.T) {
	t.Parallel()
	benches := []Benchmark{
		constantBenchmark("A", FamilyFibonacci, 55),
		constantBenchmark("B", FamilyFibonacci, 55),
		&MockBenchmark{name: "C", family: FamilyQuicksort, run: func() Output { return Output{Sorted: []int{1, 2}} }},
	}

	results := ExecuteBenchmarks(context.Background(), benches, Options{}, NullProgressReporter{}, io.Discard)
	if len(results) != len(benches) {
		t.Fatalf("expected %d results, got %d", len(benches), len(results))
	}
	for i, res := range results {
		if res.Err != nil {
			t.Errorf("result %d: unexpected error: %v", i, res.Err)
		}
		if res.Name != benches[i].Name() || res.Family != benches[i].Family() {
			t.Errorf("result %d: got %s/%s, want %s/%s", i, res.Family, res.Name, benches[i].Family(), benches[i].Name())
		}
	}
	if results[0].Output.Term != 55 {
		t.Errorf("expected term 55, got %d", results[0].Output.Term)
	}
	if !results[2].Output.Equal(Output{Sorted: []int{1, 2}}) {
		t.Errorf("unexpected sorted output %v", results[2].Output.Sorted)
	}
}

func TestExecuteBenchmarksSequentialByDefault(t *testing.T) {
	t.Parallel()
	var running, maxRunning atomic.Int32
	run := func() Output {
		n := running.Add(1)
		for {
			m := maxRunning.Load()
			if n <= m || maxRunning.CompareAndSwap(m, n) {
				break
			}
		}
		time.Sleep(5 * time.Millisecond)
		running.Add(-1)
		return Output{Term: 1}
	}
	benches := make([]Benchmark, 4)
	for i := range benches {
		benches[i] = &MockBenchmark{name: "seq", family: FamilyFibonacci, run: run}
	}

	ExecuteBenchmarks(context.Background(), benches, Options{}, NullProgressReporter{}, io.Discard)
	if got := maxRunning.Load(); got != 1 {
		t.Errorf("expected at most 1 concurrent run, observed %d", got)
	}
}

func TestExecuteBenchmarksCanceled(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results := ExecuteBenchmarks(ctx, []Benchmark{constantBenchmark("A", FamilyFibonacci, 1)}, Options{}, NullProgressReporter{}, io.Discard)
	if !errors.Is(results[0].Err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", results[0].Err)
	}
}

func TestExecuteBenchmarksLogsRuns(t *testing.T) {
	t.Parallel()
	canceled, cancel := context.WithCancel(context.Background())
	cancel()

	tests := []struct {
		name    string
		ctx     context.Context
		want    string
		notWant string
	}{
		{"finished run", context.Background(), "[DEBUG] benchmark finished algorithm=A duration=", "[ERROR]"},
		{"abandoned run", canceled, "[DEBUG] benchmark abandoned algorithm=A reason=context canceled", "[ERROR]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			opts := Options{Logger: logging.NewStdLoggerAdapter(log.New(&buf, "", 0), true)}
			ExecuteBenchmarks(tt.ctx, []Benchmark{constantBenchmark("A", FamilyFibonacci, 1)}, opts, NullProgressReporter{}, io.Discard)

			if !strings.Contains(buf.String(), tt.want) {
				t.Errorf("expected %q in log %q", tt.want, buf.String())
			}
			if strings.Contains(buf.String(), tt.notWant) {
				t.Errorf("did not expect %q in log %q", tt.notWant, buf.String())
			}
		})
	}
}

func TestExecuteBenchmarksTimeout(t *testing.T) {
	t.Parallel()
	release := make(chan struct{})
	defer close(release)
	slow := &MockBenchmark{name: "slow", family: FamilyFibonacci, run: func() Output {
		<-release
		return Output{}
	}}

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	results := ExecuteBenchmarks(ctx, []Benchmark{slow}, Options{}, NullProgressReporter{}, io.Discard)
	if !errors.Is(results[0].Err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline exceeded, got %v", results[0].Err)
	}
	if apperrors.ExitCodeFor(results[0].Err) != apperrors.ExitErrorTimeout {
		t.Errorf("expected timeout exit code")
	}
}

func TestExecuteBenchmarksReportsProgress(t *testing.T) {
	t.Parallel()
	var mu sync.Mutex
	var updates []ProgressUpdate
	reporter := ProgressReporterFunc(func(wg *sync.WaitGroup, ch <-chan ProgressUpdate, n int, out io.Writer) {
		defer wg.Done()
		for u := range ch {
			mu.Lock()
			updates = append(updates, u)
			mu.Unlock()
		}
	})

	ExecuteBenchmarks(context.Background(), []Benchmark{
		constantBenchmark("A", FamilyFibonacci, 1),
		constantBenchmark("B", FamilyFibonacci, 1),
	}, Options{}, reporter, io.Discard)

	mu.Lock()
	defer mu.Unlock()
	if len(updates) != 4 {
		t.Fatalf("expected 4 updates, got %d", len(updates))
	}
	done := 0
	for _, u := range updates {
		if u.Done {
			done++
		}
	}
	if done != 2 {
		t.Errorf("expected 2 completion updates, got %d", done)
	}
}

func TestExecuteBenchmarksRecordsMetrics(t *testing.T) {
	t.Parallel()
	rec := metrics.NewRecorder()
	ExecuteBenchmarks(context.Background(), []Benchmark{
		constantBenchmark("A", FamilyFibonacci, 1),
		constantBenchmark("B", FamilyFibonacci, 1),
	}, Options{Parallelism: 2, Recorder: rec}, NullProgressReporter{}, io.Discard)

	got, err := testutil.GatherAndCount(rec.Gatherer(), "recbench_runs_total")
	if err != nil {
		t.Fatalf("gather: %v", err)
	}
	if got != 2 {
		t.Errorf("expected 2 run series, got %d", got)
	}
}

func TestAnalyzeComparisonResults(t *testing.T) {
	t.Parallel()
	failure := errors.New("fail")
	tests := []struct {
		name           string
		results        []RunResult
		expectedStatus int
		presented      int
	}{
		{
			name: "All success",
			results: []RunResult{
				{Name: "A", Family: FamilyFibonacci, Output: Output{Term: 5}, Duration: time.Millisecond},
				{Name: "B", Family: FamilyFibonacci, Output: Output{Term: 5}, Duration: 2 * time.Millisecond},
			},
			expectedStatus: apperrors.ExitSuccess,
			presented:      1,
		},
		{
			name: "Mismatch",
			results: []RunResult{
				{Name: "A", Family: FamilyQuicksort, Output: Output{Sorted: []int{1, 2}}, Duration: time.Millisecond},
				{Name: "B", Family: FamilyQuicksort, Output: Output{Sorted: []int{2, 1}}, Duration: time.Millisecond},
			},
			expectedStatus: apperrors.ExitErrorMismatch,
		},
		{
			name: "Families compared separately",
			results: []RunResult{
				{Name: "F", Family: FamilyFibonacci, Output: Output{Term: 5}, Duration: time.Millisecond},
				{Name: "Q", Family: FamilyQuicksort, Output: Output{Sorted: []int{1}}, Duration: time.Millisecond},
			},
			expectedStatus: apperrors.ExitSuccess,
			presented:      2,
		},
		{
			name: "All failure",
			results: []RunResult{
				{Name: "A", Family: FamilyFibonacci, Err: failure},
				{Name: "B", Family: FamilyFibonacci, Err: failure},
			},
			expectedStatus: apperrors.ExitErrorGeneric,
		},
		{
			name: "All timed out",
			results: []RunResult{
				{Name: "A", Family: FamilyFibonacci, Err: context.DeadlineExceeded},
			},
			expectedStatus: apperrors.ExitErrorTimeout,
		},
		{
			name: "Mixed success/failure",
			results: []RunResult{
				{Name: "B", Family: FamilyFibonacci, Err: failure},
				{Name: "A", Family: FamilyFibonacci, Output: Output{Term: 5}, Duration: time.Millisecond},
			},
			expectedStatus: apperrors.ExitSuccess,
			presented:      1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			presenter := &MockResultPresenter{}
			status := AnalyzeComparisonResults(tt.results, presenter, io.Discard)
			if status != tt.expectedStatus {
				t.Errorf("expected status %d, got %d", tt.expectedStatus, status)
			}
			if presenter.tables != 1 {
				t.Errorf("expected the table to be presented once, got %d", presenter.tables)
			}
			if len(presenter.presented) != tt.presented {
				t.Errorf("expected %d presented results, got %d", tt.presented, len(presenter.presented))
			}
		})
	}
}

func TestAnalyzeComparisonResultsOrdering(t *testing.T) {
	t.Parallel()
	results := []RunResult{
		{Name: "failed", Family: FamilyFibonacci, Err: errors.New("x")},
		{Name: "slow", Family: FamilyFibonacci, Output: Output{Term: 1}, Duration: time.Second},
		{Name: "fast", Family: FamilyFibonacci, Output: Output{Term: 1}, Duration: time.Millisecond},
	}
	presenter := &MockResultPresenter{}
	AnalyzeComparisonResults(results, presenter, io.Discard)

	want := []string{"fast", "slow", "failed"}
	for i, name := range want {
		if results[i].Name != name {
			t.Errorf("position %d: expected %s, got %s", i, name, results[i].Name)
		}
	}
	if presenter.presented[0].Name != "fast" {
		t.Errorf("expected the fastest run to be presented, got %s", presenter.presented[0].Name)
	}
}

// Not parallel: the batch changes process-wide collector settings.
func TestExecuteBenchmarksGCDisabled(t *testing.T) {
	gcPercent := -2
	gcReader := &MockBenchmark{name: "gc reader", family: FamilyFibonacci, run: func() Output {
		gcPercent = debug.SetGCPercent(-1)
		debug.SetGCPercent(gcPercent)
		return Output{Term: 1}
	}}

	results := ExecuteBenchmarks(context.Background(), []Benchmark{gcReader}, Options{GCMode: metrics.GCModeDisabled}, NullProgressReporter{}, io.Discard)
	if results[0].Err != nil {
		t.Fatalf("unexpected error: %v", results[0].Err)
	}
	if gcPercent != -1 {
		t.Errorf("expected the collector to be off during the run, percent was %d", gcPercent)
	}
	if after := debug.SetGCPercent(100); after == -1 {
		t.Error("expected the collector to be restored after the batch")
	} else {
		debug.SetGCPercent(after)
	}
}
