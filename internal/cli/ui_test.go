package cli

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/briandowns/spinner"
	"github.com/golang/mock/gomock"

	"github.com/agbru/recbench/internal/cli/mocks"
	"github.com/agbru/recbench/internal/orchestration"
)

func TestRealSpinner(t *testing.T) {
	t.Parallel()
	s := spinner.New(spinner.CharSets[11], 100*time.Millisecond, spinner.WithWriter(io.Discard))
	rs := &realSpinner{s}

	rs.Start()
	rs.UpdateSuffix(" test")
	rs.Stop()
	if s.Suffix != " test" {
		t.Errorf("expected suffix %q, got %q", " test", s.Suffix)
	}
}

func TestProgressState(t *testing.T) {
	t.Parallel()
	ps := NewProgressState(3)
	ps.Update(orchestration.ProgressUpdate{Index: 0, Name: "A"})
	if !strings.HasSuffix(ps.Suffix(), "0/3 A") {
		t.Errorf("unexpected suffix %q", ps.Suffix())
	}

	ps.Update(orchestration.ProgressUpdate{Index: 0, Name: "A", Done: true})
	ps.Update(orchestration.ProgressUpdate{Index: 0, Name: "A", Done: true})
	ps.Update(orchestration.ProgressUpdate{Index: 1, Name: "B", Done: true, Err: errors.New("x")})
	ps.Update(orchestration.ProgressUpdate{Index: 7, Name: "out of range", Done: true})

	if got := ps.Completed(); got != 2 {
		t.Errorf("expected 2 completed, got %d", got)
	}
	if ps.failed != 1 {
		t.Errorf("expected 1 failure, got %d", ps.failed)
	}
	if got := ps.Fraction(); got < 0.66 || got > 0.67 {
		t.Errorf("expected fraction 2/3, got %f", got)
	}
	if got := NewProgressState(0).Fraction(); got != 0 {
		t.Errorf("expected 0 for an empty state, got %f", got)
	}
}

func TestProgressBar(t *testing.T) {
	t.Parallel()
	tests := []struct {
		progress float64
		want     string
	}{
		{0, "░░░░"},
		{0.5, "██░░"},
		{1, "████"},
		{1.5, "████"},
		{-1, "░░░░"},
	}
	for _, tt := range tests {
		if got := progressBar(tt.progress, 4); got != tt.want {
			t.Errorf("progressBar(%v) = %q, want %q", tt.progress, got, tt.want)
		}
	}
}

func TestDisplayProgress(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockS := mocks.NewMockSpinner(ctrl)
	gomock.InOrder(
		mockS.EXPECT().UpdateSuffix(gomock.Any()),
		mockS.EXPECT().Start(),
		mockS.EXPECT().Stop(),
	)
	mockS.EXPECT().UpdateSuffix(gomock.Any()).AnyTimes()

	originalNewSpinner := newSpinner
	defer func() { newSpinner = originalNewSpinner }()
	newSpinner = func(options ...spinner.Option) Spinner { return mockS }

	var wg sync.WaitGroup
	wg.Add(1)
	progressChan := make(chan orchestration.ProgressUpdate)
	go func() {
		progressChan <- orchestration.ProgressUpdate{Index: 0, Name: "A"}
		progressChan <- orchestration.ProgressUpdate{Index: 0, Name: "A", Done: true}
		close(progressChan)
	}()

	var buf bytes.Buffer
	DisplayProgress(&wg, progressChan, 1, &buf)
	wg.Wait()

	if !strings.Contains(buf.String(), "Completed 1/1 runs") {
		t.Errorf("expected a completion summary, got %q", buf.String())
	}
}

func TestDisplayProgressZeroBenchmarks(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockS := mocks.NewMockSpinner(ctrl)

	originalNewSpinner := newSpinner
	defer func() { newSpinner = originalNewSpinner }()
	newSpinner = func(options ...spinner.Option) Spinner { return mockS }

	var wg sync.WaitGroup
	wg.Add(1)
	progressChan := make(chan orchestration.ProgressUpdate)
	close(progressChan)

	DisplayProgress(&wg, progressChan, 0, io.Discard)
	wg.Wait()
}
