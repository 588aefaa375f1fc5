package tennis

import (
	"reflect"
	"testing"
)

func TestDigitSegments(t *testing.T) {
	tests := []struct {
		digit int
		want  [7]bool
	}{
		{0, [7]bool{true, true, true, true, true, true, false}},
		{1, [7]bool{false, true, true, false, false, false, false}},
		{7, [7]bool{true, true, true, false, false, false, false}},
		{8, [7]bool{true, true, true, true, true, true, true}},
	}

	for _, tt := range tests {
		got, ok := DigitSegments(tt.digit)
		if !ok {
			t.Errorf("DigitSegments(%d) not ok", tt.digit)
			continue
		}
		if got != tt.want {
			t.Errorf("DigitSegments(%d) = %v, want %v", tt.digit, got, tt.want)
		}
	}

	for _, d := range []int{-1, 10} {
		segs, ok := DigitSegments(d)
		if ok || segs != [7]bool{} {
			t.Errorf("DigitSegments(%d) = %v, %v; want all off, false", d, segs, ok)
		}
	}
}

func TestDigitSegmentCounts(t *testing.T) {
	// Lit segment count per digit on a standard display
	want := [10]int{6, 2, 5, 5, 4, 5, 6, 3, 7, 6}
	for d := 0; d <= 9; d++ {
		segs, _ := DigitSegments(d)
		n := 0
		for _, on := range segs {
			if on {
				n++
			}
		}
		if n != want[d] {
			t.Errorf("digit %d lights %d segments, want %d", d, n, want[d])
		}
	}
}

func TestScoreDigits(t *testing.T) {
	tests := []struct {
		n    int
		want []int
	}{
		{0, []int{0}},
		{7, []int{7}},
		{11, []int{1, 1}},
		{105, []int{1, 0, 5}},
		{-3, []int{0}},
	}

	for _, tt := range tests {
		if got := ScoreDigits(tt.n); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("ScoreDigits(%d) = %v, want %v", tt.n, got, tt.want)
		}
	}
}
