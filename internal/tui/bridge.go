package tui

import (
	"io"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	apperrors "github.com/agbru/arraykit/internal/errors"
	"github.com/agbru/arraykit/internal/format"
	"github.com/agbru/arraykit/internal/orchestration"
)

// programRef is a shared reference to the tea.Program.
// bubbletea copies the model on every Update, so the bridge holds a pointer
// that survives the copies.
type programRef struct {
	mu      sync.RWMutex
	program *tea.Program
}

// SetProgram sets the tea.Program reference (thread-safe).
func (r *programRef) SetProgram(p *tea.Program) {
	r.mu.Lock()
	r.program = p
	r.mu.Unlock()
}

// Send sends a message to the program. It is a no-op until SetProgram.
func (r *programRef) Send(msg tea.Msg) {
	r.mu.RLock()
	p := r.program
	r.mu.RUnlock()
	if p != nil {
		p.Send(msg)
	}
}

// TUIProgressReporter implements orchestration.ProgressReporter by
// forwarding updates as bubbletea messages tagged with the run generation.
type TUIProgressReporter struct {
	ref        *programRef
	generation uint64
}

var _ orchestration.ProgressReporter = (*TUIProgressReporter)(nil)

// DisplayProgress drains the progress channel and sends ProgressMsg to the TUI.
func (t *TUIProgressReporter) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan orchestration.ProgressUpdate, numSorters int, _ io.Writer) {
	defer wg.Done()

	agg := orchestration.NewProgressAggregator(numSorters)
	if agg == nil {
		orchestration.DrainChannel(progressChan)
		return
	}

	for update := range progressChan {
		ap := agg.Update(update)
		t.ref.Send(ProgressMsg{
			SorterIndex:     ap.SorterIndex,
			Value:           ap.Value,
			AverageProgress: ap.AverageProgress,
			ETA:             ap.ETA,
			Generation:      t.generation,
		})
	}
	t.ref.Send(ProgressDoneMsg{Generation: t.generation})
}

// TUIResultPresenter implements orchestration.ResultPresenter.
// It sends result messages to the TUI instead of writing to stdout.
type TUIResultPresenter struct {
	ref        *programRef
	generation uint64
}

var (
	_ orchestration.ResultPresenter   = (*TUIResultPresenter)(nil)
	_ orchestration.DurationFormatter = (*TUIResultPresenter)(nil)
	_ orchestration.ErrorHandler      = (*TUIResultPresenter)(nil)
)

// PresentComparisonTable sends comparison results to the TUI.
func (t *TUIResultPresenter) PresentComparisonTable(results []orchestration.SortResult, _ io.Writer) {
	t.ref.Send(ComparisonResultsMsg{Results: results, Generation: t.generation})
}

// PresentResult sends the retained result to the TUI.
func (t *TUIResultPresenter) PresentResult(result orchestration.SortResult, _ orchestration.PresentationOptions, _ io.Writer) {
	t.ref.Send(FinalResultMsg{Result: result, Generation: t.generation})
}

// FormatDuration formats d like the CLI does.
func (t *TUIResultPresenter) FormatDuration(d time.Duration) string {
	return format.FormatExecutionDuration(d)
}

// HandleError sends an error message to the TUI and returns the exit code.
func (t *TUIResultPresenter) HandleError(err error, duration time.Duration, _ io.Writer) int {
	t.ref.Send(ErrorMsg{Err: err, Duration: duration, Generation: t.generation})
	return apperrors.HandleSortError(err, duration, io.Discard, plainColors{})
}

// plainColors is a ColorProvider for output that is discarded.
type plainColors struct{}

func (plainColors) Red() string    { return "" }
func (plainColors) Yellow() string { return "" }
func (plainColors) Reset() string  { return "" }
