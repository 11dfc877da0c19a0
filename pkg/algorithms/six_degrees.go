package algorithms

// SixDegrees is the separation threshold of the six-degrees hypothesis.
const SixDegrees = 6.0

// ValidateSixDegrees reports whether an average path length supports the
// six-degrees-of-separation hypothesis.
func ValidateSixDegrees(averagePathLength float64) bool {
	return ValidateSeparation(averagePathLength, SixDegrees)
}

// ValidateSeparation reports whether averagePathLength <= threshold.
// NaN never validates.
func ValidateSeparation(averagePathLength, threshold float64) bool {
	return averagePathLength <= threshold
}
