package arrays

import (
	"slices"
	"strconv"
	"strings"
)

// Sequence is an optional, ordered, fixed-length collection of signed
// integers. The zero value is an absent sequence.
//
// A present Sequence wraps a caller-owned slice without copying it; in-place
// operations such as QuickSortInPlace are therefore visible through the
// caller's slice.
type Sequence struct {
	values  []int
	present bool
}

// Some returns a present sequence wrapping values. A nil slice yields a
// present, empty sequence.
func Some(values []int) Sequence {
	return Sequence{values: values, present: true}
}

// None returns an absent sequence.
func None() Sequence {
	return Sequence{}
}

// FromSlice maps a nil slice to None and anything else to Some.
func FromSlice(values []int) Sequence {
	if values == nil {
		return None()
	}
	return Some(values)
}

// Get returns the wrapped slice and whether the sequence is present.
func (s Sequence) Get() ([]int, bool) {
	return s.values, s.present
}

// IsNone reports whether the sequence is absent.
func (s Sequence) IsNone() bool {
	return !s.present
}

// Len returns the number of elements. Absent sequences have length 0.
func (s Sequence) Len() int {
	return len(s.values)
}

// Clone returns a present sequence backed by a fresh copy of the values, or
// None if s is absent.
func (s Sequence) Clone() Sequence {
	if !s.present {
		return None()
	}
	return Some(cloneInts(s.values))
}

// Equal reports whether both sequences have the same presence and the same
// elements in the same order.
func (s Sequence) Equal(other Sequence) bool {
	if s.present != other.present {
		return false
	}
	return slices.Equal(s.values, other.values)
}

// String formats the sequence as "[7, 3, 9]". Absent sequences format as
// "<absent>".
func (s Sequence) String() string {
	if !s.present {
		return "<absent>"
	}
	var b strings.Builder
	b.Grow(len(s.values)*4 + 2)
	b.WriteByte('[')
	for i, v := range s.values {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(strconv.Itoa(v))
	}
	b.WriteByte(']')
	return b.String()
}

// cloneInts copies src into a new slice that never aliases it. Unlike
// slices.Clone, an empty input yields a non-nil empty slice.
func cloneInts(src []int) []int {
	dst := make([]int, len(src))
	copy(dst, src)
	return dst
}
