package format

import (
	"fmt"
	"strings"
	"sync"
	"time"
)

// maxETA caps estimates produced from very slow progress rates.
const maxETA = 24 * time.Hour

// ProgressState tracks the completion fraction of a fixed number of sorter
// runs. Out-of-range indices are ignored.
type ProgressState struct {
	mu         sync.Mutex
	numSorters int
	progresses []float64
}

// NewProgressState returns a tracker for numSorters runs, all at zero.
func NewProgressState(numSorters int) *ProgressState {
	return &ProgressState{
		numSorters: numSorters,
		progresses: make([]float64, max(numSorters, 0)),
	}
}

// Update records the completion fraction of run index, clamped to [0, 1].
func (ps *ProgressState) Update(index int, value float64) {
	ps.mu.Lock()
	defer ps.mu.Unlock()
	if index < 0 || index >= len(ps.progresses) {
		return
	}
	ps.progresses[index] = clamp01(value)
}

// CalculateAverage returns the mean completion over all runs.
func (ps *ProgressState) CalculateAverage() float64 {
	ps.mu.Lock()
	defer ps.mu.Unlock()
	if len(ps.progresses) == 0 {
		return 0
	}
	var sum float64
	for _, p := range ps.progresses {
		sum += p
	}
	return sum / float64(len(ps.progresses))
}

// ProgressWithETA extends ProgressState with a completion-rate estimate.
type ProgressWithETA struct {
	*ProgressState
	startTime    time.Time
	progressRate float64 // average progress per second
}

// NewProgressWithETA returns a tracker for numSorters runs started now.
func NewProgressWithETA(numSorters int) *ProgressWithETA {
	return &ProgressWithETA{
		ProgressState: NewProgressState(numSorters),
		startTime:     time.Now(),
	}
}

// UpdateWithETA records a run's progress and returns the new average and the
// estimated time remaining.
func (p *ProgressWithETA) UpdateWithETA(index int, value float64) (float64, time.Duration) {
	p.Update(index, value)
	avg := p.CalculateAverage()
	if elapsed := time.Since(p.startTime).Seconds(); elapsed > 0 && avg > 0 {
		p.progressRate = avg / elapsed
	}
	return avg, p.GetETA()
}

// GetETA returns the estimated time remaining, or 0 while no rate is known.
func (p *ProgressWithETA) GetETA() time.Duration {
	if p.progressRate <= 0 {
		return 0
	}
	remaining := 1 - p.CalculateAverage()
	if remaining <= 0 {
		return 0
	}
	secs := remaining / p.progressRate
	if secs > maxETA.Seconds() {
		return maxETA
	}
	return time.Duration(secs * float64(time.Second))
}

// FormatETA renders an estimate as "45s", "2m30s", "1h15m" or "< 1s".
func FormatETA(eta time.Duration) string {
	switch {
	case eta <= 0:
		return "calculating..."
	case eta < time.Second:
		return "< 1s"
	case eta < time.Minute:
		return fmt.Sprintf("%ds", int(eta.Seconds()))
	case eta < time.Hour:
		m, s := int(eta.Minutes()), int(eta.Seconds())%60
		if s == 0 {
			return fmt.Sprintf("%dm", m)
		}
		return fmt.Sprintf("%dm%ds", m, s)
	default:
		h, m := int(eta.Hours()), int(eta.Minutes())%60
		if m == 0 {
			return fmt.Sprintf("%dh", h)
		}
		return fmt.Sprintf("%dh%dm", h, m)
	}
}

// ProgressBar renders a bar of the given length using full and light blocks.
func ProgressBar(progress float64, length int) string {
	if length <= 0 {
		return ""
	}
	filled := int(clamp01(progress) * float64(length))
	return strings.Repeat("█", filled) + strings.Repeat("░", length-filled)
}

// FormatProgressBarWithETA renders "[bar] 50.0% ETA: 30s".
func FormatProgressBarWithETA(progress float64, eta time.Duration, width int) string {
	return fmt.Sprintf("[%s] %5.1f%% ETA: %s", ProgressBar(progress, width), clamp01(progress)*100, FormatETA(eta))
}

func clamp01(v float64) float64 {
	return min(max(v, 0), 1)
}
