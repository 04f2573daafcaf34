package vmath

// Clamp restricts v to [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Lerp interpolates between a and b by t without clamping
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
