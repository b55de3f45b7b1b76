package orchestration

import (
	"io"
	"sync"
	"time"

	"github.com/agbru/arraykit/internal/arrays"
)

// SortResult is the outcome of one sorter run.
type SortResult struct {
	// Name is the sorter's display name.
	Name string
	// Key is the sorter's registry key.
	Key string
	// Result is the sorted output. It is absent if Err is set.
	Result arrays.Sequence
	// Duration is the wall-clock time of the run.
	Duration time.Duration
	// AllocBytes is the heap allocated during the run, when measured.
	AllocBytes uint64
	// Err is set when the run did not happen or did not complete.
	Err error
}

// ProgressUpdate reports the completion fraction of one sorter run.
type ProgressUpdate struct {
	SorterIndex int
	Value       float64
}

// PresentationOptions configures how results are presented.
type PresentationOptions struct {
	Input   arrays.Sequence
	Verbose bool
	Quiet   bool
}

// ProgressReporter displays progress updates. DisplayProgress runs in its
// own goroutine, must call wg.Done when it returns, and must consume the
// channel until it is closed.
type ProgressReporter interface {
	DisplayProgress(wg *sync.WaitGroup, progressChan <-chan ProgressUpdate, numSorters int, out io.Writer)
}

// ProgressReporterFunc adapts a function to ProgressReporter.
type ProgressReporterFunc func(wg *sync.WaitGroup, progressChan <-chan ProgressUpdate, numSorters int, out io.Writer)

// DisplayProgress calls f.
func (f ProgressReporterFunc) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan ProgressUpdate, numSorters int, out io.Writer) {
	f(wg, progressChan, numSorters, out)
}

// NullProgressReporter drains the channel without output. Used in quiet
// mode and tests.
type NullProgressReporter struct{}

// DisplayProgress drains the channel.
func (NullProgressReporter) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan ProgressUpdate, _ int, _ io.Writer) {
	defer wg.Done()
	DrainChannel(progressChan)
}

// ResultPresenter renders comparison results.
type ResultPresenter interface {
	// PresentComparisonTable displays one row per sorter run.
	PresentComparisonTable(results []SortResult, out io.Writer)
	// PresentResult displays the retained result.
	PresentResult(result SortResult, opts PresentationOptions, out io.Writer)
}

// DurationFormatter formats durations for display.
type DurationFormatter interface {
	FormatDuration(d time.Duration) string
}

// ErrorHandler maps a run error to an exit code, printing a diagnostic.
type ErrorHandler interface {
	HandleError(err error, duration time.Duration, out io.Writer) int
}
