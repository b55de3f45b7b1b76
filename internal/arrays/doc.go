// Package arrays implements the sorting and searching toolkit over integer
// sequences: a stable merge sort that returns a new sequence, an in-place
// Hoare-partition quicksort, a linear search and a binary search.
//
// Absent input is modelled by the Sequence type rather than a nil slice, so
// the "no data" case is an explicit branch: sorting an absent sequence yields
// an absent sequence, and searching one yields NotFound.
//
// Both sorts are iterative and keep their pending windows on an explicit
// stack, so adversarial quicksort inputs cannot exhaust the goroutine stack.
// The package holds no global state; every function may be called from any
// goroutine provided the caller does not share a sequence that is being
// sorted in place.
package arrays
