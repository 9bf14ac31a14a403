package gmuon

import "math"

// Test helper functions shared across the package test files

// almostEqual reports whether a and b agree to relative tolerance tol
// (absolute near zero).
func almostEqual(a, b, tol float64) bool {
	if a == b {
		return true
	}
	diff := math.Abs(a - b)
	if a == 0 || b == 0 {
		return diff < tol
	}
	return diff/math.Max(math.Abs(a), math.Abs(b)) < tol
}
