package app

import (
	"context"
	"fmt"
	"io"
	"os/signal"
	"syscall"
	"time"

	"github.com/agbru/arraykit/internal/arrays"
	"github.com/agbru/arraykit/internal/cli"
	apperrors "github.com/agbru/arraykit/internal/errors"
	"github.com/agbru/arraykit/internal/logging"
	"github.com/agbru/arraykit/internal/metrics"
	"github.com/agbru/arraykit/internal/orchestration"
)

// runDemo compares the selected sorters on the input, then prints the
// demonstration lines: the original sequence, its merge-sorted copy, the
// sequence after in-place quicksort, and both search indices.
func (a *Application) runDemo(ctx context.Context, out io.Writer) int {
	ctx, cancelTimeout := context.WithTimeout(ctx, a.Config.Timeout)
	defer cancelTimeout()
	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	start := time.Now()
	sorters := orchestration.GetSortersToRun(a.Config.Algo, a.Factory)
	input := arrays.Some(a.Config.Input)

	if !a.Config.Quiet {
		cli.PrintExecutionConfig(a.Config, out)
		cli.PrintExecutionMode(sorters, out)
	}

	var progressReporter orchestration.ProgressReporter = cli.CLIProgressReporter{}
	reportOut := out
	if a.Config.Quiet {
		progressReporter = orchestration.NullProgressReporter{}
		reportOut = io.Discard
	}

	if len(sorters) > 0 {
		results := orchestration.ExecuteSorts(ctx, sorters, input, a.execOptions(), progressReporter, reportOut)
		presOpts := orchestration.PresentationOptions{
			Input:   input,
			Verbose: a.Config.Verbose,
			Quiet:   a.Config.Quiet,
		}
		presenter := cli.CLIResultPresenter{}
		if code := orchestration.AnalyzeComparisonResults(results, presOpts, presenter, presenter, reportOut); code != apperrors.ExitSuccess {
			return code
		}
		if a.Config.CheckSorted {
			if code := a.checkSorterOutputs(results); code != apperrors.ExitSuccess {
				return code
			}
		}
		if !a.Config.Quiet {
			fmt.Fprintln(out)
		}
	}

	if err := ctx.Err(); err != nil {
		return apperrors.HandleSortError(err, time.Since(start), out, cli.CLIColorProvider{})
	}

	code := a.demonstrate(input, out)
	if code != apperrors.ExitSuccess {
		return code
	}

	if a.Config.Verbose {
		snap := metrics.NewMemoryCollector().Snapshot()
		cli.DisplayMemoryStats(snap.HeapAlloc, snap.TotalAlloc, snap.NumGC, out)
	}
	if a.Config.Metrics {
		fmt.Fprintln(out)
		if err := a.recorder.WriteText(out); err != nil {
			a.Logger.Error("writing metrics failed", err)
			return apperrors.ExitErrorGeneric
		}
	}

	a.Logger.Debug("demonstration finished", logging.Duration("elapsed", time.Since(start)))
	return apperrors.ExitSuccess
}

// checkSorterOutputs fails the run when a successful sorter returned a
// sequence that is not ascending. A lone sorter has nothing to disagree
// with, so the comparison alone cannot catch it.
func (a *Application) checkSorterOutputs(results []orchestration.SortResult) int {
	for _, res := range results {
		if res.Err != nil || arrays.IsSortedAscending(res.Result) {
			continue
		}
		return a.rejectUnsorted(apperrors.ValidationError{
			Field:   res.Key,
			Message: "sorter output is not in ascending order",
		})
	}
	return apperrors.ExitSuccess
}

func (a *Application) rejectUnsorted(err apperrors.ValidationError) int {
	a.Logger.Error("sortedness check failed", err, logging.String("field", err.Field))
	fmt.Fprintf(a.ErrWriter, "Error: %v\n", err)
	return apperrors.ExitErrorConfig
}

// demonstrate prints the five demonstration lines. Quicksort runs on the
// caller's own sequence, so input is sorted when it returns. The binary
// search uses --binary-input as given when set, else the merge output.
func (a *Application) demonstrate(input arrays.Sequence, out io.Writer) int {
	original := input.Clone()
	merged := arrays.MergeSort(input)
	arrays.QuickSortInPlace(input)

	searched, source := merged, ""
	if a.Config.BinaryInput != nil {
		searched, source = arrays.Some(a.Config.BinaryInput), "input"
	}
	if a.Config.CheckSorted && !arrays.IsSortedAscending(searched) {
		return a.rejectUnsorted(apperrors.ValidationError{
			Field:   "binary-input",
			Message: "sequence is not in ascending order",
		})
	}

	report := cli.DemoReport{
		Original:     original,
		Merged:       merged,
		QuickSorted:  input,
		LinearTarget: a.Config.LinearTarget,
		LinearIndex:  arrays.LinearSearch(arrays.Some(a.Config.LinearInput), a.Config.LinearTarget),
		BinaryTarget: a.Config.BinaryTarget,
		BinaryIndex:  arrays.BinarySearch(searched, a.Config.BinaryTarget),
		BinarySource: source,
	}
	a.recorder.ObserveSearch("linear", report.LinearIndex)
	a.recorder.ObserveSearch("binary", report.BinaryIndex)

	cli.DisplayDemo(report, out)
	return apperrors.ExitSuccess
}
