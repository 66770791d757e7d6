package misc

import "math"

// ClampUint8 truncates v toward zero and clamps it to [0, 255]. The second return value
// is false when v had to be clamped, which for a well-formed palette never happens.
func ClampUint8(v float64) (uint8, bool) {
	switch {
	case math.IsNaN(v):
		return 0, false
	case v < 0:
		return 0, false
	case v >= 256:
		return 255, false
	}
	return uint8(v), true
}

// Padding returns how many bytes must follow rowBytes to reach the next multiple of
// alignment.
func Padding(rowBytes int, alignment int) int {
	return (alignment - rowBytes%alignment) % alignment
}
