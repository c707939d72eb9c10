// Package fmath holds the small float32 helpers shared by the layout passes.
package fmath

import "math"

// Clamp restricts v to [minVal, maxVal]. If minVal > maxVal, minVal wins.
func Clamp(v, minVal, maxVal float32) float32 {
	if v < minVal {
		return minVal
	}
	if maxVal >= minVal && v > maxVal {
		return maxVal
	}
	return v
}

// Round rounds half away from zero, the rounding used for centering offsets.
func Round(v float32) float32 {
	return float32(math.Round(float64(v)))
}

// Floor returns the largest integer value <= v.
func Floor(v float32) float32 {
	return float32(math.Floor(float64(v)))
}

// Ceil returns the smallest integer value >= v.
func Ceil(v float32) float32 {
	return float32(math.Ceil(float64(v)))
}
