package metrics

import "runtime"

// MemorySnapshot holds a point-in-time memory reading.
type MemorySnapshot struct {
	HeapAlloc   uint64 // bytes in use by application
	TotalAlloc  uint64 // cumulative bytes allocated
	Mallocs     uint64 // cumulative heap objects allocated
	Sys         uint64 // total bytes obtained from OS
	NumGC       uint32 // number of completed GC cycles
	HeapObjects uint64 // number of live heap objects
}

// AllocDelta is the allocation activity between two snapshots.
type AllocDelta struct {
	Bytes   uint64
	Objects uint64
	GCs     uint32
}

// MemoryCollector reads runtime memory statistics.
type MemoryCollector struct{}

// NewMemoryCollector creates a new memory collector.
func NewMemoryCollector() *MemoryCollector {
	return &MemoryCollector{}
}

// Snapshot reads current memory statistics.
func (mc *MemoryCollector) Snapshot() MemorySnapshot {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return MemorySnapshot{
		HeapAlloc:   m.HeapAlloc,
		TotalAlloc:  m.TotalAlloc,
		Mallocs:     m.Mallocs,
		Sys:         m.Sys,
		NumGC:       m.NumGC,
		HeapObjects: m.HeapObjects,
	}
}

// Since returns the allocations made between before and s. Cumulative
// counters never decrease, so the delta is always well defined.
func (s MemorySnapshot) Since(before MemorySnapshot) AllocDelta {
	return AllocDelta{
		Bytes:   s.TotalAlloc - before.TotalAlloc,
		Objects: s.Mallocs - before.Mallocs,
		GCs:     s.NumGC - before.NumGC,
	}
}
