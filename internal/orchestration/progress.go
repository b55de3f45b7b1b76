package orchestration

import (
	"time"

	"github.com/agbru/arraykit/internal/format"
)

// ProgressAggregator folds per-sorter updates into an overall fraction and
// a completion estimate. The CLI and the TUI both consume it.
type ProgressAggregator struct {
	state      *format.ProgressWithETA
	numSorters int
}

// NewProgressAggregator returns nil when numSorters <= 0.
func NewProgressAggregator(numSorters int) *ProgressAggregator {
	if numSorters <= 0 {
		return nil
	}
	return &ProgressAggregator{
		state:      format.NewProgressWithETA(numSorters),
		numSorters: numSorters,
	}
}

// AggregatedProgress is the aggregator's view after one update.
type AggregatedProgress struct {
	SorterIndex     int
	Value           float64
	AverageProgress float64
	ETA             time.Duration
}

// Update applies one update and returns the new aggregate.
func (a *ProgressAggregator) Update(update ProgressUpdate) AggregatedProgress {
	avg, eta := a.state.UpdateWithETA(update.SorterIndex, update.Value)
	return AggregatedProgress{
		SorterIndex:     update.SorterIndex,
		Value:           update.Value,
		AverageProgress: avg,
		ETA:             eta,
	}
}

// CalculateAverage returns the current average without updating.
func (a *ProgressAggregator) CalculateAverage() float64 {
	return a.state.CalculateAverage()
}

// GetETA returns the current estimate without updating.
func (a *ProgressAggregator) GetETA() time.Duration {
	return a.state.GetETA()
}

// NumSorters returns the number of tracked runs.
func (a *ProgressAggregator) NumSorters() int {
	return a.numSorters
}

// IsMultiSorter reports whether more than one run is tracked.
func (a *ProgressAggregator) IsMultiSorter() bool {
	return a.numSorters > 1
}

// DrainChannel discards every update until the channel is closed.
func DrainChannel(progressChan <-chan ProgressUpdate) {
	for range progressChan {
	}
}
