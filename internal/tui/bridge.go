package tui

import (
	"io"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	apperrors "github.com/agbru/recbench/internal/errors"
	"github.com/agbru/recbench/internal/orchestration"
)

// messageSender is the part of *tea.Program the bridge uses.
type messageSender interface {
	Send(msg tea.Msg)
}

// programRef is a shared reference to the running program.
// Because bubbletea copies the model on every Update, we need a pointer
// that survives copies so the bridge goroutines can send messages.
type programRef struct {
	mu      sync.RWMutex
	program messageSender
}

// SetProgram sets the program reference (thread-safe).
func (r *programRef) SetProgram(p messageSender) {
	r.mu.Lock()
	r.program = p
	r.mu.Unlock()
}

// Send sends a message to the program (thread-safe). It is a no-op until
// SetProgram has been called.
func (r *programRef) Send(msg tea.Msg) {
	r.mu.RLock()
	p := r.program
	r.mu.RUnlock()
	if p != nil {
		p.Send(msg)
	}
}

// TUIProgressReporter implements orchestration.ProgressReporter.
// It drains the progress channel and forwards updates as bubbletea messages.
type TUIProgressReporter struct {
	ref        *programRef
	generation uint64
}

// Verify interface compliance.
var _ orchestration.ProgressReporter = (*TUIProgressReporter)(nil)

// DisplayProgress forwards every update until the channel is closed.
func (t *TUIProgressReporter) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan orchestration.ProgressUpdate, _ int, _ io.Writer) {
	defer wg.Done()
	for update := range progressChan {
		if update.Done {
			t.ref.Send(RunFinishedMsg{Index: update.Index, Name: update.Name, Err: update.Err, Generation: t.generation})
		} else {
			t.ref.Send(RunStartedMsg{Index: update.Index, Name: update.Name, Generation: t.generation})
		}
	}
	t.ref.Send(ProgressDoneMsg{})
}

// TUIResultPresenter implements orchestration.ResultPresenter.
// It sends result messages to the dashboard instead of writing to stdout.
type TUIResultPresenter struct {
	ref *programRef
}

// Verify interface compliance.
var _ orchestration.ResultPresenter = (*TUIResultPresenter)(nil)

// PresentComparisonTable sends the sorted results to the dashboard.
func (t *TUIResultPresenter) PresentComparisonTable(results []orchestration.RunResult, _ io.Writer) {
	t.ref.Send(ComparisonResultsMsg{Results: results})
}

// PresentStatus sends the comparison verdict to the dashboard.
func (t *TUIResultPresenter) PresentStatus(ok bool, message string, _ io.Writer) {
	t.ref.Send(StatusMsg{OK: ok, Message: message})
}

// PresentResult sends the fastest run of a family to the dashboard.
func (t *TUIResultPresenter) PresentResult(result orchestration.RunResult, _ io.Writer) {
	t.ref.Send(FinalResultMsg{Result: result})
}

// HandleError sends an error message to the dashboard and returns the exit code.
func (t *TUIResultPresenter) HandleError(err error, _ io.Writer) int {
	t.ref.Send(ErrorMsg{Err: err})
	return apperrors.ExitCodeFor(err)
}
