package config

import (
	"slices"
	"testing"
)

func TestParseIntList(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		in      string
		want    []int
		wantErr bool
	}{
		{"commas", "7,3,9", []int{7, 3, 9}, false},
		{"spaces", "7 3  9", []int{7, 3, 9}, false},
		{"mixed with negatives", " -1, 0 ,+4", []int{-1, 0, 4}, false},
		{"empty", "", []int{}, false},
		{"blank", "  , ", []int{}, false},
		{"not a number", "1,a", nil, true},
		{"overflow", "99999999999999999999", nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := ParseIntList(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseIntList(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if got == nil || !slices.Equal(got, tt.want) {
				t.Errorf("ParseIntList(%q) = %#v, want %#v", tt.in, got, tt.want)
			}
		})
	}
}

func TestGenerateSequence(t *testing.T) {
	t.Parallel()
	a := GenerateSequence(1000, 1)
	b := GenerateSequence(1000, 1)
	if !slices.Equal(a, b) {
		t.Fatal("same seed produced different sequences")
	}
	if slices.Equal(a, GenerateSequence(1000, 2)) {
		t.Error("different seeds produced identical sequences")
	}
	bound := 10 * 1000
	for _, v := range a {
		if v < -bound || v > bound {
			t.Fatalf("value %d outside [-%d, %d]", v, bound, bound)
		}
	}
	if got := GenerateSequence(0, 1); got == nil || len(got) != 0 {
		t.Errorf("GenerateSequence(0) = %#v, want empty non-nil slice", got)
	}
}
