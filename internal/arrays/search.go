package arrays

// NotFound is returned by LinearSearch and BinarySearch when the sequence is
// absent or does not contain the target.
const NotFound = -1

// LinearSearch returns the lowest index of seq whose element equals target,
// or NotFound. The sequence may be in any order.
func LinearSearch(seq Sequence, target int) int {
	values, ok := seq.Get()
	if !ok {
		return NotFound
	}
	for i, v := range values {
		if v == target {
			return i
		}
	}
	return NotFound
}

// BinarySearch returns an index of sorted holding target, or NotFound.
//
// sorted must be in ascending order. This is not checked: on unsorted input
// the result is unspecified (possibly NotFound or an unrelated index) but the
// call never panics. Use IsSortedAscending to validate input beforehand.
// When target occurs more than once, any matching index may be returned.
func BinarySearch(sorted Sequence, target int) int {
	values, ok := sorted.Get()
	if !ok || len(values) == 0 {
		return NotFound
	}
	low, high := 0, len(values)-1
	for low <= high {
		mid := midpoint(low, high)
		switch v := values[mid]; {
		case v == target:
			return mid
		case v < target:
			low = mid + 1
		default:
			high = mid - 1
		}
	}
	return NotFound
}

// IsSortedAscending reports whether seq is in non-decreasing order. Absent and
// empty sequences are considered sorted.
func IsSortedAscending(seq Sequence) bool {
	values, _ := seq.Get()
	for i := 1; i < len(values); i++ {
		if values[i] < values[i-1] {
			return false
		}
	}
	return true
}
