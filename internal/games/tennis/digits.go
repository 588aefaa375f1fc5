package tennis

// Seven-segment patterns in segment order a, b, c, d, e, f, g:
//
//	 aaa
//	f   b
//	 ggg
//	e   c
//	 ddd
var digitSegments = [10][7]bool{
	{true, true, true, true, true, true, false},     // 0
	{false, true, true, false, false, false, false}, // 1
	{true, true, false, true, true, false, true},    // 2
	{true, true, true, true, false, false, true},    // 3
	{false, true, true, false, false, true, true},   // 4
	{true, false, true, true, false, true, true},    // 5
	{true, false, true, true, true, true, true},     // 6
	{true, true, true, false, false, false, false},  // 7
	{true, true, true, true, true, true, true},      // 8
	{true, true, true, true, false, true, true},     // 9
}

// Segment indices into a DigitSegments result.
const (
	SegA = iota
	SegB
	SegC
	SegD
	SegE
	SegF
	SegG
)

// DigitSegments returns which of the seven segments are lit for digit d.
// ok is false, with every segment off, when d is not 0-9.
func DigitSegments(d int) (segments [7]bool, ok bool) {
	if d < 0 || d > 9 {
		return segments, false
	}
	return digitSegments[d], true
}

// ScoreDigits splits a non-negative score into decimal digits, most
// significant first. Negative scores render as 0.
func ScoreDigits(n int) []int {
	if n <= 0 {
		return []int{0}
	}
	var digits []int
	for ; n > 0; n /= 10 {
		digits = append([]int{n % 10}, digits...)
	}
	return digits
}
