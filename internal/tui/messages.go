package tui

import (
	"time"

	"github.com/agbru/recbench/internal/orchestration"
)

// RunStartedMsg is sent when a benchmark begins.
type RunStartedMsg struct {
	Index      int
	Name       string
	Generation uint64
}

// RunFinishedMsg is sent when a benchmark ends, successfully or not.
type RunFinishedMsg struct {
	Index      int
	Name       string
	Err        error
	Generation uint64
}

// ProgressDoneMsg is sent once the progress channel is closed.
type ProgressDoneMsg struct{}

// ComparisonResultsMsg carries the sorted results of every run.
type ComparisonResultsMsg struct {
	Results []orchestration.RunResult
}

// StatusMsg carries the comparison verdict.
type StatusMsg struct {
	OK      bool
	Message string
}

// FinalResultMsg carries the fastest run of one family.
type FinalResultMsg struct {
	Result orchestration.RunResult
}

// ErrorMsg reports that every run failed.
type ErrorMsg struct {
	Err error
}

// TickMsg drives periodic heap sampling.
type TickMsg time.Time

// MemStatsMsg carries one heap sample.
type MemStatsMsg struct {
	HeapAlloc uint64
	NumGC     uint32
}

// CompleteMsg is sent when the orchestration returns.
type CompleteMsg struct {
	ExitCode   int
	Generation uint64
}

// ContextCancelledMsg is sent when the run context ends.
type ContextCancelledMsg struct {
	Err        error
	Generation uint64
}
