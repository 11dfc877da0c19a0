package algorithms

import "math"

// addSaturating returns a+b, clamped to math.MaxUint64. The flag reports
// whether clamping happened.
func addSaturating(a, b uint64) (uint64, bool) {
	sum := a + b
	if sum < a {
		return math.MaxUint64, true
	}
	return sum, false
}
