package orchestration

import (
	"io"
	"sync"
	"testing"
)

func TestNewProgressAggregator(t *testing.T) {
	t.Parallel()
	if NewProgressAggregator(0) != nil {
		t.Error("expected nil aggregator for zero sorters")
	}
	a := NewProgressAggregator(2)
	if a.NumSorters() != 2 || !a.IsMultiSorter() {
		t.Errorf("unexpected aggregator state: %d sorters", a.NumSorters())
	}
	if NewProgressAggregator(1).IsMultiSorter() {
		t.Error("single sorter is not multi-sorter")
	}
}

func TestProgressAggregator_Update(t *testing.T) {
	t.Parallel()
	a := NewProgressAggregator(2)

	got := a.Update(ProgressUpdate{SorterIndex: 0, Value: 1})
	if got.AverageProgress != 0.5 || got.SorterIndex != 0 || got.Value != 1 {
		t.Errorf("unexpected aggregate: %+v", got)
	}
	got = a.Update(ProgressUpdate{SorterIndex: 1, Value: 1})
	if got.AverageProgress != 1 || got.ETA != 0 {
		t.Errorf("complete aggregate = %+v", got)
	}
	if a.CalculateAverage() != 1 || a.GetETA() != 0 {
		t.Error("accessors disagree with last update")
	}
}

func TestNullProgressReporter_Drains(t *testing.T) {
	t.Parallel()
	ch := make(chan ProgressUpdate, 3)
	for i := range 3 {
		ch <- ProgressUpdate{SorterIndex: i}
	}
	close(ch)

	var wg sync.WaitGroup
	wg.Add(1)
	NullProgressReporter{}.DisplayProgress(&wg, ch, 3, nil)
	wg.Wait()
	if len(ch) != 0 {
		t.Errorf("%d updates left in channel", len(ch))
	}
}

func TestProgressReporterFunc(t *testing.T) {
	t.Parallel()
	called := false
	var r ProgressReporter = ProgressReporterFunc(func(wg *sync.WaitGroup, ch <-chan ProgressUpdate, n int, _ io.Writer) {
		defer wg.Done()
		called = n == 4
		DrainChannel(ch)
	})
	ch := make(chan ProgressUpdate)
	close(ch)
	var wg sync.WaitGroup
	wg.Add(1)
	r.DisplayProgress(&wg, ch, 4, nil)
	wg.Wait()
	if !called {
		t.Error("adapter did not forward the call")
	}
}
