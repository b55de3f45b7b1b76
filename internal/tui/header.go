package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/arraykit/internal/format"
)

// HeaderModel renders the top bar: title, version, run number and elapsed
// time of the current run.
type HeaderModel struct {
	startTime time.Time
	endTime   time.Time
	version   string
	run       uint64
	width     int
}

// NewHeaderModel creates a header whose timer starts now.
func NewHeaderModel(version string) HeaderModel {
	return HeaderModel{
		startTime: time.Now(),
		version:   version,
		run:       1,
	}
}

// SetDone freezes the elapsed timer.
func (h *HeaderModel) SetDone() {
	h.endTime = time.Now()
}

// Reset restarts the timer for the given run number.
func (h *HeaderModel) Reset(run uint64) {
	h.startTime = time.Now()
	h.endTime = time.Time{}
	h.run = run
}

// SetWidth updates the available width.
func (h *HeaderModel) SetWidth(w int) {
	h.width = w
}

// Elapsed returns the duration of the current run.
func (h HeaderModel) Elapsed() time.Duration {
	if !h.endTime.IsZero() {
		return h.endTime.Sub(h.startTime)
	}
	return time.Since(h.startTime)
}

// View renders the header.
func (h HeaderModel) View() string {
	titleText := "arraykit"
	if h.version != "" && h.version != "dev" {
		titleText += " " + h.version
	}
	pipe := dimStyle.Render(" | ")
	row := titleStyle.Render(titleText) +
		pipe + dimStyle.Render(fmt.Sprintf("Run #%d", h.run)) +
		pipe + elapsedStyle.Render("Elapsed: "+format.FormatExecutionDuration(h.Elapsed()))

	if gap := h.width - 2 - lipgloss.Width(row); gap > 0 {
		row += spaces(gap)
	}
	return headerStyle.Render(row)
}

func spaces(n int) string {
	if n <= 0 {
		return ""
	}
	b := make([]byte, n)
	for i := range b {
		b[i] = ' '
	}
	return string(b)
}
