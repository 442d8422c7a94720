package utils

import "math"

// FormatFloat rounds f to the given number of decimal places, keeping NaN and Inf as is.
func FormatFloat(f float64, round int32) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return f
	}
	pow := math.Pow(10, float64(round))
	return math.Round(f*pow) / pow
}

func IntMin(i1, i2 int) int {
	if i1 < i2 {
		return i1
	}
	return i2
}
