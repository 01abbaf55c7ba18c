package utils

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// MinMax returns the extrema of a float64 slice, or (0,0) when empty
func MinMax(s []float64) (min, max float64) {
	if len(s) == 0 {
		return 0, 0
	}
	min, max = s[0], s[0]
	for _, v := range s[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	return min, max
}

// MatrixMinMax extracts the minimum and maximum values from a matrix
func MatrixMinMax(m mat.Matrix) (min, max float64) {
	if m == nil {
		return 0, 0
	}
	r, c := m.Dims()
	if r == 0 || c == 0 {
		return 0, 0
	}
	min = m.At(0, 0)
	max = min
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			val := m.At(i, j)
			if val < min {
				min = val
			}
			if val > max {
				max = val
			}
		}
	}
	return min, max
}

// AllFinite reports whether a slice is free of NaN and Inf values
func AllFinite(s []float64) bool {
	for _, v := range s {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// MaxAbsDiff returns the largest absolute elementwise difference between
// two equal-length slices
func MaxAbsDiff(a, b []float64) (d float64) {
	for i := range a {
		if ad := math.Abs(a[i] - b[i]); ad > d {
			d = ad
		}
	}
	return
}
