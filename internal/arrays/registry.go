//go:generate mockgen -source=registry.go -destination=mocks/mock_registry.go -package=mocks

package arrays

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// ErrUnknownSorter is returned by SorterFactory.Get for unregistered keys.
var ErrUnknownSorter = errors.New("unknown sorter")

// ErrDuplicateSorter is returned by SorterFactory.Register when the key is
// already taken.
var ErrDuplicateSorter = errors.New("sorter already registered")

// Sorter is a named sorting strategy that can be selected at runtime.
type Sorter interface {
	// Name is the human-readable algorithm name (e.g., "Merge Sort").
	Name() string
	// Key is the short identifier used on the command line (e.g., "merge").
	Key() string
	// InPlace reports whether Sort mutates the storage of its argument.
	InPlace() bool
	// Sort returns seq's elements in non-decreasing order.
	Sort(seq Sequence) Sequence
}

// MergeSorter adapts MergeSort to the Sorter interface.
type MergeSorter struct{}

func (MergeSorter) Name() string  { return "Merge Sort (stable, copy)" }
func (MergeSorter) Key() string   { return "merge" }
func (MergeSorter) InPlace() bool { return false }

// Sort returns MergeSort(seq); seq is left untouched.
func (MergeSorter) Sort(seq Sequence) Sequence { return MergeSort(seq) }

// QuickSorter adapts QuickSortInPlace to the Sorter interface.
type QuickSorter struct{}

func (QuickSorter) Name() string  { return "Quicksort (Hoare, in-place)" }
func (QuickSorter) Key() string   { return "quick" }
func (QuickSorter) InPlace() bool { return true }

// Sort sorts seq in place and returns it.
func (QuickSorter) Sort(seq Sequence) Sequence {
	QuickSortInPlace(seq)
	return seq
}

// SorterFactory provides lookup of registered sorters by key.
type SorterFactory interface {
	// List returns the registered keys in ascending order.
	List() []string
	// Get returns the sorter registered under key.
	Get(key string) (Sorter, error)
	// GetAll returns a snapshot of every registered sorter keyed by Key().
	GetAll() map[string]Sorter
	// Register adds a sorter under its Key().
	Register(s Sorter) error
}

// DefaultFactory is a thread-safe SorterFactory.
type DefaultFactory struct {
	mu      sync.RWMutex
	sorters map[string]Sorter
}

// NewDefaultFactory returns a factory with the merge and quick sorters
// registered.
func NewDefaultFactory() *DefaultFactory {
	f := &DefaultFactory{sorters: make(map[string]Sorter)}
	for _, s := range []Sorter{MergeSorter{}, QuickSorter{}} {
		f.sorters[s.Key()] = s
	}
	return f
}

func (f *DefaultFactory) List() []string {
	f.mu.RLock()
	defer f.mu.RUnlock()
	keys := make([]string, 0, len(f.sorters))
	for k := range f.sorters {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (f *DefaultFactory) Get(key string) (Sorter, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	s, ok := f.sorters[key]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSorter, key)
	}
	return s, nil
}

func (f *DefaultFactory) GetAll() map[string]Sorter {
	f.mu.RLock()
	defer f.mu.RUnlock()
	all := make(map[string]Sorter, len(f.sorters))
	for k, s := range f.sorters {
		all[k] = s
	}
	return all
}

func (f *DefaultFactory) Register(s Sorter) error {
	if s == nil {
		return errors.New("cannot register nil sorter")
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, exists := f.sorters[s.Key()]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateSorter, s.Key())
	}
	f.sorters[s.Key()] = s
	return nil
}
