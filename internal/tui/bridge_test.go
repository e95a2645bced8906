package tui

import (
	"context"
	"errors"
	"sync"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	apperrors "github.com/agbru/recbench/internal/errors"
	"github.com/agbru/recbench/internal/orchestration"
)

// recordingSender collects every message sent through a programRef.
type recordingSender struct {
	mu   sync.Mutex
	msgs []tea.Msg
}

func (r *recordingSender) Send(msg tea.Msg) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.msgs = append(r.msgs, msg)
}

func TestTUIProgressReporter_ForwardsUpdates(t *testing.T) {
	t.Parallel()
	sender := &recordingSender{}
	ref := &programRef{}
	ref.SetProgram(sender)
	reporter := &TUIProgressReporter{ref: ref, generation: 3}

	ch := make(chan orchestration.ProgressUpdate, 4)
	ch <- orchestration.ProgressUpdate{Index: 0, Name: "A"}
	ch <- orchestration.ProgressUpdate{Index: 0, Name: "A", Done: true, Err: errors.New("x")}
	close(ch)

	var wg sync.WaitGroup
	wg.Add(1)
	reporter.DisplayProgress(&wg, ch, 1, nil)
	wg.Wait()

	if len(sender.msgs) != 3 {
		t.Fatalf("expected 3 messages, got %d", len(sender.msgs))
	}
	started, ok := sender.msgs[0].(RunStartedMsg)
	if !ok || started.Name != "A" || started.Generation != 3 {
		t.Errorf("unexpected first message %#v", sender.msgs[0])
	}
	finished, ok := sender.msgs[1].(RunFinishedMsg)
	if !ok || finished.Err == nil {
		t.Errorf("unexpected second message %#v", sender.msgs[1])
	}
	if _, ok := sender.msgs[2].(ProgressDoneMsg); !ok {
		t.Errorf("expected ProgressDoneMsg, got %#v", sender.msgs[2])
	}
}

func TestTUIProgressReporter_NilProgram(t *testing.T) {
	t.Parallel()
	reporter := &TUIProgressReporter{ref: &programRef{}}
	ch := make(chan orchestration.ProgressUpdate, 1)
	ch <- orchestration.ProgressUpdate{Index: 0, Name: "A"}
	close(ch)

	var wg sync.WaitGroup
	wg.Add(1)
	go reporter.DisplayProgress(&wg, ch, 1, nil)
	wg.Wait()
}

func TestTUIResultPresenter(t *testing.T) {
	t.Parallel()
	sender := &recordingSender{}
	ref := &programRef{}
	ref.SetProgram(sender)
	presenter := &TUIResultPresenter{ref: ref}

	presenter.PresentComparisonTable([]orchestration.RunResult{{Name: "A"}}, nil)
	presenter.PresentResult(orchestration.RunResult{Name: "A"}, nil)
	presenter.PresentStatus(true, "agree", nil)
	code := presenter.HandleError(context.DeadlineExceeded, nil)

	if code != apperrors.ExitErrorTimeout {
		t.Errorf("expected timeout exit code, got %d", code)
	}
	if len(sender.msgs) != 4 {
		t.Fatalf("expected 4 messages, got %d", len(sender.msgs))
	}
	if _, ok := sender.msgs[0].(ComparisonResultsMsg); !ok {
		t.Errorf("expected ComparisonResultsMsg, got %#v", sender.msgs[0])
	}
	if _, ok := sender.msgs[1].(FinalResultMsg); !ok {
		t.Errorf("expected FinalResultMsg, got %#v", sender.msgs[1])
	}
	if msg, ok := sender.msgs[2].(StatusMsg); !ok || !msg.OK || msg.Message != "agree" {
		t.Errorf("expected StatusMsg, got %#v", sender.msgs[2])
	}
	if msg, ok := sender.msgs[3].(ErrorMsg); !ok || !errors.Is(msg.Err, context.DeadlineExceeded) {
		t.Errorf("expected ErrorMsg, got %#v", sender.msgs[3])
	}
}

func TestStartRunsCmd(t *testing.T) {
	t.Parallel()
	sender := &recordingSender{}
	ref := &programRef{}
	ref.SetProgram(sender)

	benches := testBenchmarks()
	msg := startRunsCmd(ref, context.Background(), benches, orchestration.Options{}, 7)()
	complete, ok := msg.(CompleteMsg)
	if !ok {
		t.Fatalf("expected CompleteMsg, got %#v", msg)
	}
	if complete.ExitCode != apperrors.ExitSuccess || complete.Generation != 7 {
		t.Errorf("unexpected completion %#v", complete)
	}
}
