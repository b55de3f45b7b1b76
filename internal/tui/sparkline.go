package tui

// sparkRunes maps levels 0..7 to the block elements ▁▂▃▄▅▆▇█.
var sparkRunes = [8]rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// historySize is the number of runs kept in the duration history.
const historySize = 32

// RingBuffer keeps the most recent samples up to a fixed capacity.
type RingBuffer struct {
	data  []float64
	head  int
	count int
}

// NewRingBuffer creates a ring buffer holding at least one sample.
func NewRingBuffer(capacity int) *RingBuffer {
	if capacity <= 0 {
		capacity = 1
	}
	return &RingBuffer{data: make([]float64, capacity)}
}

// Push appends v, dropping the oldest sample when full.
func (r *RingBuffer) Push(v float64) {
	r.data[r.head] = v
	r.head = (r.head + 1) % len(r.data)
	if r.count < len(r.data) {
		r.count++
	}
}

// Len returns the number of samples held.
func (r *RingBuffer) Len() int { return r.count }

// Cap returns the buffer capacity.
func (r *RingBuffer) Cap() int { return len(r.data) }

// Last returns the newest sample, or 0 when empty.
func (r *RingBuffer) Last() float64 {
	if r.count == 0 {
		return 0
	}
	return r.data[(r.head-1+len(r.data))%len(r.data)]
}

// Slice returns the samples oldest first, or nil when empty.
func (r *RingBuffer) Slice() []float64 {
	if r.count == 0 {
		return nil
	}
	out := make([]float64, r.count)
	start := (r.head - r.count + len(r.data)) % len(r.data)
	for i := range r.count {
		out[i] = r.data[(start+i)%len(r.data)]
	}
	return out
}

// Reset drops every sample.
func (r *RingBuffer) Reset() {
	r.head = 0
	r.count = 0
}

// ScaleToPercent maps values onto 0..100 relative to their maximum.
// All-zero or empty input maps to zeros.
func ScaleToPercent(values []float64) []float64 {
	out := make([]float64, len(values))
	peak := 0.0
	for _, v := range values {
		peak = max(peak, v)
	}
	if peak <= 0 {
		return out
	}
	for i, v := range values {
		out[i] = max(v, 0) / peak * 100
	}
	return out
}

// RenderSparkline draws values in 0..100 as one block element each.
// Out-of-range values are clamped.
func RenderSparkline(values []float64) string {
	if len(values) == 0 {
		return ""
	}
	runes := make([]rune, len(values))
	for i, v := range values {
		v = min(max(v, 0), 100)
		level := min(int(v/100*7), 7)
		runes[i] = sparkRunes[level]
	}
	return string(runes)
}
