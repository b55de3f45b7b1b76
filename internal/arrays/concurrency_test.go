package arrays

import (
	"fmt"
	"slices"
	"testing"

	"golang.org/x/sync/errgroup"
)

// TestIndependentCallers_NoSharedState runs many callers at once, each on its
// own sequence. Run with -race to catch hidden package-level state.
func TestIndependentCallers_NoSharedState(t *testing.T) {
	t.Parallel()
	const callers = 16

	shared := randomInts(2_000, 3)
	want := slices.Clone(shared)
	slices.Sort(want)

	var g errgroup.Group
	for c := range callers {
		g.Go(func() error {
			merged, _ := MergeSort(Some(shared)).Get()
			if !slices.Equal(merged, want) {
				return fmt.Errorf("caller %d: MergeSort produced a wrong result", c)
			}

			own := randomInts(2_000, int64(c))
			QuickSortInPlace(Some(own))
			if !isNonDecreasing(own) {
				return fmt.Errorf("caller %d: QuickSortInPlace left data unsorted", c)
			}

			sorted := Some(merged)
			for _, v := range shared[:50] {
				if idx := BinarySearch(sorted, v); idx == NotFound || merged[idx] != v {
					return fmt.Errorf("caller %d: BinarySearch(%d) = %d", c, v, idx)
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		t.Fatal(err)
	}
}
