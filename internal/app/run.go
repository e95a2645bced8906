package app

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/agbru/recbench/internal/cli"
	apperrors "github.com/agbru/recbench/internal/errors"
	"github.com/agbru/recbench/internal/orchestration"
)

// runSingle executes one variant. In sort mode it prints the loaded list
// followed by the sorted list.
func (a *Application) runSingle(ctx context.Context, bench orchestration.Benchmark, input []int, opts orchestration.Options, out io.Writer) int {
	results := orchestration.ExecuteBenchmarks(ctx, []orchestration.Benchmark{bench}, opts, orchestration.NullProgressReporter{}, io.Discard)
	res := results[0]
	if res.Err != nil {
		return cli.HandleError(a.describeTimeout(res), a.ErrWriter)
	}

	switch {
	case a.Config.Quiet:
		fmt.Fprintln(out, cli.FormatQuietResult(res))
	case res.Family == orchestration.FamilyQuicksort:
		cli.DisplaySortRun(input, res, a.Config.Verbose, out)
	default:
		cli.DisplayResult(res, out)
	}
	return apperrors.ExitSuccess
}

// runComparison times every selected variant and reports whether they agree.
func (a *Application) runComparison(ctx context.Context, benches []orchestration.Benchmark, opts orchestration.Options, out io.Writer) int {
	if !a.Config.Quiet {
		cli.PrintExecutionConfig(a.Config, out)
		cli.PrintExecutionMode(benches, a.Config.Parallel, out)
	}

	var progressReporter orchestration.ProgressReporter = orchestration.ProgressReporterFunc(cli.DisplayProgress)
	progressOut := out
	if a.Config.Quiet {
		progressReporter = orchestration.NullProgressReporter{}
		progressOut = io.Discard
	}

	results := orchestration.ExecuteBenchmarks(ctx, benches, opts, progressReporter, progressOut)
	return orchestration.AnalyzeComparisonResults(results, cli.CLIResultPresenter{Quiet: a.Config.Quiet, SharedAllocations: a.Config.Parallel > 1}, out)
}

// describeTimeout turns a deadline error into a TimeoutError naming the run.
func (a *Application) describeTimeout(res orchestration.RunResult) error {
	if errors.Is(res.Err, context.DeadlineExceeded) {
		return apperrors.TimeoutError{Operation: res.Name, Limit: a.Config.Timeout}
	}
	return res.Err
}
