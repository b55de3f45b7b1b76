package orchestration

import (
	"cmp"
	"context"
	"fmt"
	"io"
	"slices"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/agbru/arraykit/internal/arrays"
	apperrors "github.com/agbru/arraykit/internal/errors"
	"github.com/agbru/arraykit/internal/logging"
	"github.com/agbru/arraykit/internal/metrics"
)

// TracerName identifies the spans emitted around sorter runs.
const TracerName = "arraykit/orchestration"

// progressUpdatesPerSorter is the number of updates a run emits: one when
// it starts and one when it ends. The channel is sized to hold all of them.
const progressUpdatesPerSorter = 2

// ExecOptions carries the optional collaborators of ExecuteSorts. Zero
// values disable the corresponding concern.
type ExecOptions struct {
	Logger   logging.Logger
	Recorder *metrics.Recorder
	Memory   *metrics.MemoryCollector
	Tracer   trace.Tracer
}

func (o ExecOptions) withDefaults() ExecOptions {
	if o.Logger == nil {
		o.Logger = logging.NewNopLogger()
	}
	if o.Tracer == nil {
		o.Tracer = otel.Tracer(TracerName)
	}
	return o
}

// ExecuteSorts runs each sorter, one after the other, on its own clone of
// input. The caller's input is never modified.
//
// The context is checked before every run; once it is done the remaining
// runs are skipped and their results carry a SortError wrapping the context
// error. A run itself is not interruptible.
//
// Parameters:
//   - ctx: Cancellation and deadline for the whole batch.
//   - sorters: The sorters to run, in order.
//   - input: The sequence every sorter receives a copy of.
//   - opts: Logging, metrics and tracing collaborators.
//   - progressReporter: Displays progress (NullProgressReporter for quiet mode).
//   - out: Destination for progress output.
//
// Returns:
//   - []SortResult: One result per sorter, in the order given.
func ExecuteSorts(ctx context.Context, sorters []arrays.Sorter, input arrays.Sequence, opts ExecOptions, progressReporter ProgressReporter, out io.Writer) []SortResult {
	opts = opts.withDefaults()
	results := make([]SortResult, len(sorters))
	progressChan := make(chan ProgressUpdate, len(sorters)*progressUpdatesPerSorter)

	var displayWg sync.WaitGroup
	displayWg.Add(1)
	go progressReporter.DisplayProgress(&displayWg, progressChan, len(sorters), out)

	for i, sorter := range sorters {
		if err := ctx.Err(); err != nil {
			results[i] = SortResult{
				Name: sorter.Name(),
				Key:  sorter.Key(),
				Err:  apperrors.SortError{Sorter: sorter.Name(), Cause: err},
			}
			opts.Logger.Debug("sorter skipped", logging.String("sorter", sorter.Key()), logging.Err(err))
			continue
		}
		progressChan <- ProgressUpdate{SorterIndex: i, Value: 0}
		results[i] = runSorter(ctx, sorter, input, opts)
		progressChan <- ProgressUpdate{SorterIndex: i, Value: 1}
	}

	close(progressChan)
	displayWg.Wait()
	return results
}

func runSorter(ctx context.Context, sorter arrays.Sorter, input arrays.Sequence, opts ExecOptions) (res SortResult) {
	key := sorter.Key()
	res = SortResult{Name: sorter.Name(), Key: key}

	_, span := opts.Tracer.Start(ctx, "sort."+key, trace.WithAttributes(
		attribute.String("sorter.key", key),
		attribute.Int("sequence.length", input.Len()),
	))
	defer span.End()

	var before metrics.MemorySnapshot
	if opts.Memory != nil {
		before = opts.Memory.Snapshot()
	}
	start := time.Now()

	defer func() {
		res.Duration = time.Since(start)
		if r := recover(); r != nil {
			res.Result = arrays.None()
			res.Err = apperrors.SortError{Sorter: res.Name, Cause: fmt.Errorf("panic: %v", r)}
		}
		if opts.Memory != nil {
			res.AllocBytes = opts.Memory.Snapshot().Since(before).Bytes
		}

		if res.Err != nil {
			span.RecordError(res.Err)
			span.SetStatus(codes.Error, res.Err.Error())
			opts.Logger.Error("sorter failed", res.Err, logging.String("sorter", key))
			return
		}
		span.SetAttributes(attribute.Int64("sort.duration_ns", res.Duration.Nanoseconds()))
		opts.Logger.Debug("sorter finished",
			logging.String("sorter", key),
			logging.Int("length", input.Len()),
			logging.Duration("elapsed", res.Duration),
			logging.Uint64("alloc_bytes", res.AllocBytes),
		)
		if opts.Recorder != nil {
			opts.Recorder.ObserveSort(key, input.Len(), res.Duration)
		}
	}()

	res.Result = sorter.Sort(input.Clone())
	return res
}

// AnalyzeComparisonResults orders the results (successes first, then by
// duration), presents the comparison table and checks that every successful
// run produced the same sequence.
//
// Returns:
//   - int: ExitSuccess, ExitErrorMismatch, or the errHandler's code when no
//     run succeeded.
func AnalyzeComparisonResults(results []SortResult, opts PresentationOptions, presenter ResultPresenter, errHandler ErrorHandler, out io.Writer) int {
	slices.SortStableFunc(results, func(a, b SortResult) int {
		if (a.Err == nil) != (b.Err == nil) {
			if a.Err == nil {
				return -1
			}
			return 1
		}
		return cmp.Compare(a.Duration, b.Duration)
	})

	var firstValid *SortResult
	var firstError error
	for i := range results {
		if results[i].Err != nil {
			if firstError == nil {
				firstError = results[i].Err
			}
		} else if firstValid == nil {
			firstValid = &results[i]
		}
	}

	presenter.PresentComparisonTable(results, out)

	if firstValid == nil {
		fmt.Fprintf(out, "\nGlobal Status: Failure. No sorter completed.\n")
		if firstError == nil {
			return apperrors.ExitErrorGeneric
		}
		return errHandler.HandleError(firstError, 0, out)
	}

	for _, res := range results {
		if res.Err == nil && !res.Result.Equal(firstValid.Result) {
			fmt.Fprintf(out, "\nGlobal Status: CRITICAL ERROR! %s and %s disagree.\n", firstValid.Name, res.Name)
			return apperrors.ExitErrorMismatch
		}
	}

	fmt.Fprintf(out, "\nGlobal Status: Success. All sorters agree.\n")
	presenter.PresentResult(*firstValid, opts, out)
	return apperrors.ExitSuccess
}
