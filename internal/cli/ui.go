//go:generate mockgen -source=ui.go -destination=mocks/mock_ui.go -package=mocks

package cli

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/briandowns/spinner"

	"github.com/agbru/arraykit/internal/format"
	"github.com/agbru/arraykit/internal/orchestration"
)

const (
	// TruncationLimit is the element count above which a sequence is
	// abbreviated on standard output.
	TruncationLimit = 32
	// DisplayEdges is the number of elements shown at each end of an
	// abbreviated sequence.
	DisplayEdges = 8
	// ProgressRefreshRate is the spinner and progress bar refresh period.
	ProgressRefreshRate = 100 * time.Millisecond
	// ProgressBarWidth is the width in characters of the progress bar.
	ProgressBarWidth = 30
)

// Spinner abstracts a terminal spinner so DisplayProgress can be tested
// without a terminal.
type Spinner interface {
	// Start begins the spinner animation.
	Start()
	// Stop halts the spinner animation.
	Stop()
	// UpdateSuffix sets the text displayed after the spinner.
	UpdateSuffix(suffix string)
}

// realSpinner adapts spinner.Spinner to Spinner.
type realSpinner struct {
	s *spinner.Spinner
}

func (rs *realSpinner) Start() { rs.s.Start() }

func (rs *realSpinner) Stop() { rs.s.Stop() }

// UpdateSuffix holds the spinner's lock since the animation goroutine reads
// the suffix concurrently.
func (rs *realSpinner) UpdateSuffix(suffix string) {
	rs.s.Lock()
	rs.s.Suffix = suffix
	rs.s.Unlock()
}

var newSpinner = func(options ...spinner.Option) Spinner {
	s := spinner.New(spinner.CharSets[14], ProgressRefreshRate, options...)
	return &realSpinner{s}
}

// DisplayProgress shows a spinner followed by the aggregated progress bar
// and completion estimate until progressChan is closed. With no sorters to
// track it only drains the channel.
//
// Parameters:
//   - wg: Marked done when the display has stopped.
//   - progressChan: Updates emitted by orchestration.ExecuteSorts.
//   - numSorters: The number of runs being tracked.
//   - out: The writer the spinner renders to.
func DisplayProgress(wg *sync.WaitGroup, progressChan <-chan orchestration.ProgressUpdate, numSorters int, out io.Writer) {
	defer wg.Done()
	agg := orchestration.NewProgressAggregator(numSorters)
	if agg == nil {
		orchestration.DrainChannel(progressChan)
		return
	}

	s := newSpinner(spinner.WithWriter(out), spinner.WithHiddenCursor(true))
	render := func() {
		label := "Sorting"
		if agg.IsMultiSorter() {
			label = fmt.Sprintf("Sorting with %d sorters", agg.NumSorters())
		}
		s.UpdateSuffix(fmt.Sprintf(" %s %s", label, format.FormatProgressBarWithETA(agg.CalculateAverage(), agg.GetETA(), ProgressBarWidth)))
	}
	render()
	s.Start()
	defer s.Stop()

	ticker := time.NewTicker(ProgressRefreshRate)
	defer ticker.Stop()
	for {
		select {
		case update, ok := <-progressChan:
			if !ok {
				return
			}
			agg.Update(update)
			render()
		case <-ticker.C:
			render()
		}
	}
}
