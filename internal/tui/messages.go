package tui

import (
	"time"

	"github.com/agbru/arraykit/internal/orchestration"
)

// ProgressMsg carries one aggregated progress update.
type ProgressMsg struct {
	SorterIndex     int
	Value           float64
	AverageProgress float64
	ETA             time.Duration
	Generation      uint64
}

// ProgressDoneMsg signals that the progress channel was closed.
type ProgressDoneMsg struct {
	Generation uint64
}

// ComparisonResultsMsg carries every sorter result of a run.
type ComparisonResultsMsg struct {
	Results    []orchestration.SortResult
	Generation uint64
}

// FinalResultMsg carries the retained result once all sorters agree.
type FinalResultMsg struct {
	Result     orchestration.SortResult
	Generation uint64
}

// ErrorMsg reports a failed run.
type ErrorMsg struct {
	Err        error
	Duration   time.Duration
	Generation uint64
}

// SortCompleteMsg marks the end of the run started for Generation.
type SortCompleteMsg struct {
	ExitCode   int
	Generation uint64
}

// ContextCancelledMsg is sent when the session context ends.
type ContextCancelledMsg struct{}

// TickMsg refreshes the elapsed timer.
type TickMsg time.Time
