package core

import "math"

const (
	// Precision pads interval tests and hemisphere checks against roundoff
	Precision = 1.0e-8

	// Infinity is the open upper bound used for scene queries
	Infinity = math.MaxFloat64
)

// IsInside reports whether v lies in [min+Precision, max-Precision]
func IsInside(v, min, max float64) bool {
	return min+Precision <= v && v <= max-Precision
}

// Clamp limits x to [lo, hi]
func Clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
