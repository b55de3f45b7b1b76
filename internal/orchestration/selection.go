package orchestration

import "github.com/agbru/arraykit/internal/arrays"

// AllSorters selects every registered sorter.
const AllSorters = "all"

// GetSortersToRun resolves an --algo value against the factory. "all"
// returns every registered sorter in key order, a known key returns that
// sorter alone, and anything else returns nil.
func GetSortersToRun(algo string, factory arrays.SorterFactory) []arrays.Sorter {
	if algo == AllSorters {
		keys := factory.List()
		sorters := make([]arrays.Sorter, 0, len(keys))
		for _, k := range keys {
			if s, err := factory.Get(k); err == nil {
				sorters = append(sorters, s)
			}
		}
		return sorters
	}
	if s, err := factory.Get(algo); err == nil {
		return []arrays.Sorter{s}
	}
	return nil
}
