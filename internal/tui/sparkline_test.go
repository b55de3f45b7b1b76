package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRingBuffer_PushAndSlice(t *testing.T) {
	t.Parallel()
	rb := NewRingBuffer(3)
	rb.Push(1)
	rb.Push(2)

	assert.Equal(t, []float64{1, 2}, rb.Slice())
	assert.Equal(t, 2, rb.Len())
	assert.Equal(t, 3, rb.Cap())
}

func TestRingBuffer_Overflow(t *testing.T) {
	t.Parallel()
	rb := NewRingBuffer(3)
	for _, v := range []float64{1, 2, 3, 4} {
		rb.Push(v)
	}

	assert.Equal(t, []float64{2, 3, 4}, rb.Slice())
	assert.Equal(t, 4.0, rb.Last())
}

func TestRingBuffer_EmptyAndReset(t *testing.T) {
	t.Parallel()
	rb := NewRingBuffer(0)
	assert.Equal(t, 1, rb.Cap())
	assert.Zero(t, rb.Last())
	assert.Nil(t, rb.Slice())

	rb.Push(42)
	assert.Equal(t, 42.0, rb.Last())
	rb.Reset()
	assert.Zero(t, rb.Len())
	assert.Nil(t, rb.Slice())
}

func TestScaleToPercent(t *testing.T) {
	t.Parallel()
	assert.Equal(t, []float64{25, 50, 100}, ScaleToPercent([]float64{1, 2, 4}))
	assert.Equal(t, []float64{0, 0}, ScaleToPercent([]float64{0, 0}))
	assert.Empty(t, ScaleToPercent(nil))
}

func TestRenderSparkline(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name   string
		values []float64
		want   string
	}{
		{"empty", nil, ""},
		{"floor", []float64{0, 0}, "▁▁"},
		{"ceiling", []float64{100}, "█"},
		{"clamped", []float64{-10, 150}, "▁█"},
		{"middle", []float64{50}, "▄"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, RenderSparkline(tt.values))
		})
	}
}
