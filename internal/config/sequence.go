package config

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"
)

// ParseIntList parses signed integers separated by commas and/or whitespace.
// An empty or blank string yields an empty, non-nil slice.
func ParseIntList(s string) ([]int, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ';' || r == ' ' || r == '\t' || r == '\n'
	})
	values := make([]int, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("%q is not an integer", f)
		}
		values = append(values, v)
	}
	return values, nil
}

// GenerateSequence returns size pseudo-random integers in
// [-bound, bound] where bound is max(100, 10*size). The same seed always
// produces the same sequence.
func GenerateSequence(size int, seed int64) []int {
	if size <= 0 {
		return []int{}
	}
	bound := max(100, 10*size)
	rng := rand.New(rand.NewSource(seed))
	values := make([]int, size)
	for i := range values {
		values[i] = rng.Intn(2*bound+1) - bound
	}
	return values
}
