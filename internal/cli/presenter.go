package cli

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	apperrors "github.com/agbru/arraykit/internal/errors"
	"github.com/agbru/arraykit/internal/format"
	"github.com/agbru/arraykit/internal/orchestration"
	"github.com/agbru/arraykit/internal/ui"
)

// CLIProgressReporter renders progress with a spinner and a progress bar.
type CLIProgressReporter struct{}

var _ orchestration.ProgressReporter = CLIProgressReporter{}

// DisplayProgress delegates to DisplayProgress.
func (CLIProgressReporter) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan orchestration.ProgressUpdate, numSorters int, out io.Writer) {
	DisplayProgress(wg, progressChan, numSorters, out)
}

// CLIColorProvider supplies theme colors to apperrors.HandleSortError.
type CLIColorProvider struct{}

var _ apperrors.ColorProvider = CLIColorProvider{}

func (CLIColorProvider) Red() string    { return ui.ColorRed() }
func (CLIColorProvider) Yellow() string { return ui.ColorYellow() }
func (CLIColorProvider) Reset() string  { return ui.ColorReset() }

// CLIResultPresenter renders comparison results as colored text.
type CLIResultPresenter struct{}

var (
	_ orchestration.ResultPresenter   = CLIResultPresenter{}
	_ orchestration.DurationFormatter = CLIResultPresenter{}
	_ orchestration.ErrorHandler      = CLIResultPresenter{}
)

// PresentComparisonTable prints one row per run with its duration,
// allocations and status. Columns are padded by hand because the cells
// carry ANSI codes.
func (p CLIResultPresenter) PresentComparisonTable(results []orchestration.SortResult, out io.Writer) {
	fmt.Fprintf(out, "\n--- Comparison Summary ---\n")

	nameWidth, durWidth, allocWidth := len("Sorter"), len("Duration"), len("Allocated")
	for _, res := range results {
		nameWidth = max(nameWidth, len(res.Name))
		durWidth = max(durWidth, len(p.FormatDuration(res.Duration)))
		allocWidth = max(allocWidth, len(format.FormatBytes(res.AllocBytes)))
	}

	header := func(label string, width int) string {
		return ui.ColorUnderline() + label + ui.ColorReset() + padRight("", width-len(label))
	}
	fmt.Fprintf(out, "%s   %s   %s   %s\n",
		header("Sorter", nameWidth), header("Duration", durWidth), header("Allocated", allocWidth), header("Status", 0))

	for _, res := range results {
		status := ui.Colorize(ui.ColorGreen(), "OK")
		if res.Err != nil {
			status = ui.Colorize(ui.ColorRed(), fmt.Sprintf("FAILED (%v)", res.Err))
		}
		duration := p.FormatDuration(res.Duration)
		alloc := format.FormatBytes(res.AllocBytes)
		fmt.Fprintf(out, "%s%s   %s%s   %s%s   %s\n",
			ui.Colorize(ui.ColorBlue(), res.Name), padRight("", nameWidth-len(res.Name)),
			ui.Colorize(ui.ColorYellow(), duration), padRight("", durWidth-len(duration)),
			alloc, padRight("", allocWidth-len(alloc)),
			status)
	}
}

// padRight appends length spaces to s.
func padRight(s string, length int) string {
	if length <= 0 {
		return s
	}
	return s + strings.Repeat(" ", length)
}

// PresentResult prints the retained sorted sequence.
func (p CLIResultPresenter) PresentResult(result orchestration.SortResult, opts orchestration.PresentationOptions, out io.Writer) {
	fmt.Fprintf(out, "Fastest: %s in %s\n", ui.Colorize(ui.ColorGreen(), result.Name), p.FormatDuration(result.Duration))
	if opts.Verbose {
		fmt.Fprintf(out, "Result (%s elements): %s\n", format.FormatInt(result.Result.Len()), FormatSequence(result.Result))
	}
}

// FormatDuration formats a run duration; zero renders as "< 1µs".
func (CLIResultPresenter) FormatDuration(d time.Duration) string {
	if d == 0 {
		return "< 1µs"
	}
	return format.FormatExecutionDuration(d)
}

// HandleError maps a run error to an exit code.
func (CLIResultPresenter) HandleError(err error, duration time.Duration, out io.Writer) int {
	return apperrors.HandleSortError(err, duration, out, CLIColorProvider{})
}

// DisplayMemoryStats prints process-wide allocation figures.
func DisplayMemoryStats(heapAlloc, totalAlloc uint64, numGC uint32, out io.Writer) {
	fmt.Fprintf(out, "\nMemory Stats:\n")
	fmt.Fprintf(out, "  Heap in use:     %s\n", format.FormatBytes(heapAlloc))
	fmt.Fprintf(out, "  Total allocated: %s\n", format.FormatBytes(totalAlloc))
	fmt.Fprintf(out, "  GC cycles:       %d\n", numGC)
}
