package vmath

import (
	"math"

	"gonum.org/v1/gonum/floats/scalar"
)

// Tau is a full turn in radians
const Tau = 2 * math.Pi

// Wrap returns i modulo n in [0, n) for any sign of i; n must be positive
func Wrap(i, n int) int {
	return ((i % n) + n) % n
}

// NearlyEqual compares with absolute tolerance near zero and relative tolerance elsewhere
func NearlyEqual(a, b, tol float64) bool {
	return scalar.EqualWithinAbsOrRel(a, b, tol, tol)
}

// Lerp interpolates between a and b by t
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
