package arrays

import "cmp"

// window is a pending [low, high] range on a sort work stack. merged marks a
// merge sort window whose halves are already sorted.
type window struct {
	low, high int
	merged    bool
}

// midpoint returns floor((low+high)/2) for non-negative indices without
// overflowing.
func midpoint(low, high int) int {
	return int(uint(low+high) >> 1)
}

// MergeSort returns a new sequence holding the elements of seq in
// non-decreasing order. The input is never modified.
//
// The sort is stable: equal elements keep their relative input order. An
// absent input yields an absent result, and inputs of length 0 or 1 yield a
// direct copy.
func MergeSort(seq Sequence) Sequence {
	values, ok := seq.Get()
	if !ok {
		return None()
	}
	a := cloneInts(values)
	if len(a) <= 1 {
		return Some(a)
	}

	sortStable(a, cmp.Compare[int])
	return Some(a)
}

// sortStable is the iterative top-down merge sort behind MergeSort. It is
// generic over the element type so stability can be observed on elements that
// compare equal but are distinguishable.
func sortStable[E any](a []E, compare func(x, y E) int) {
	if len(a) <= 1 {
		return
	}
	tmp := make([]E, len(a))
	stack := []window{{low: 0, high: len(a) - 1}}
	for len(stack) > 0 {
		w := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if w.low >= w.high {
			continue
		}
		mid := midpoint(w.low, w.high)
		if w.merged {
			merge(a, tmp, w.low, mid, w.high, compare)
			continue
		}
		// Popped in reverse: left half, right half, then the merge.
		stack = append(stack,
			window{low: w.low, high: w.high, merged: true},
			window{low: mid + 1, high: w.high},
			window{low: w.low, high: mid},
		)
	}
}

// merge combines the sorted runs a[low..mid] and a[mid+1..high] through tmp
// and copies the merged window back into a at the same offsets. Ties take the
// left run first.
func merge[E any](a, tmp []E, low, mid, high int, compare func(x, y E) int) {
	i, j, k := low, mid+1, low
	for i <= mid && j <= high {
		if compare(a[i], a[j]) <= 0 {
			tmp[k] = a[i]
			i++
		} else {
			tmp[k] = a[j]
			j++
		}
		k++
	}
	k += copy(tmp[k:], a[i:mid+1])
	copy(tmp[k:], a[j:high+1])
	copy(a[low:high+1], tmp[low:high+1])
}

// QuickSortInPlace sorts the elements wrapped by seq in non-decreasing order,
// mutating the caller's storage. No copy is made and the sort is not stable.
// Absent sequences and sequences of length 0 or 1 are left untouched.
//
// The caller must hold exclusive access to the wrapped slice for the duration
// of the call: no other goroutine may read or write it concurrently.
//
// Partitioning follows Hoare's scheme with the pivot read from the midpoint of
// each window. Average cost is O(n log n) and worst case O(n²); the pending
// window stack stays within O(log n) entries.
func QuickSortInPlace(seq Sequence) {
	a, ok := seq.Get()
	if !ok || len(a) <= 1 {
		return
	}

	stack := []window{{low: 0, high: len(a) - 1}}
	for len(stack) > 0 {
		w := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		i, j := partition(a, w.low, w.high)

		larger := window{low: w.low, high: j}
		smaller := window{low: i, high: w.high}
		if j-w.low < w.high-i {
			larger, smaller = smaller, larger
		}
		// The smaller window goes on top so it is processed next.
		if larger.low < larger.high {
			stack = append(stack, larger)
		}
		if smaller.low < smaller.high {
			stack = append(stack, smaller)
		}
	}
}

// partition runs one Hoare partitioning pass over a[low..high] and returns
// the crossed cursors: every element of a[low..j] is <= every element of
// a[i..high], with low < i and j < high.
func partition(a []int, low, high int) (i, j int) {
	i, j = low, high
	pivot := a[midpoint(low, high)]
	for i <= j {
		for a[i] < pivot {
			i++
		}
		for a[j] > pivot {
			j--
		}
		if i <= j {
			a[i], a[j] = a[j], a[i]
			i++
			j--
		}
	}
	return i, j
}
