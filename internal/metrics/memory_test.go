package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var sink []int

func TestSnapshotReadsRuntimeStats(t *testing.T) {
	snap := NewMemoryCollector().Snapshot()

	assert.NotZero(t, snap.HeapAlloc)
	assert.NotZero(t, snap.Sys)
	assert.GreaterOrEqual(t, snap.TotalAlloc, snap.HeapAlloc)
}

func TestSinceCountsAllocations(t *testing.T) {
	const n = 1 << 16
	mc := NewMemoryCollector()

	before := mc.Snapshot()
	sink = make([]int, n)
	delta := mc.Snapshot().Since(before)

	assert.GreaterOrEqual(t, delta.Bytes, uint64(8*n))
	assert.NotZero(t, delta.Objects)
}

func TestSinceOfIdenticalSnapshotsIsZero(t *testing.T) {
	snap := MemorySnapshot{TotalAlloc: 10, Mallocs: 2, NumGC: 1}
	assert.Equal(t, AllocDelta{}, snap.Since(snap))
}
