package vmath

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Normalize returns unit vector and original length, zero-safe
// Vectors shorter than minLen return the zero vector and ok=false
func Normalize(v r2.Vec, minLen float64) (u r2.Vec, length float64, ok bool) {
	length = r2.Norm(v)
	if !(length >= minLen) || length == 0 {
		return r2.Vec{}, length, false
	}
	return r2.Scale(1/length, v), length, true
}

// PerpendicularCW returns vector rotated 90° clockwise in y-up coordinates
// For a counter-clockwise tangent this is the outward normal
func PerpendicularCW(v r2.Vec) r2.Vec {
	return r2.Vec{X: v.Y, Y: -v.X}
}

// Clamp limits x to [-limit, limit]; limit <= 0 disables
func Clamp(x, limit float64) float64 {
	if limit <= 0 {
		return x
	}
	if x > limit {
		return limit
	}
	if x < -limit {
		return -limit
	}
	return x
}

// ClampVec clamps each axis independently
func ClampVec(v r2.Vec, limit float64) r2.Vec {
	return r2.Vec{X: Clamp(v.X, limit), Y: Clamp(v.Y, limit)}
}

// Fraction limits a per-step decay factor to [0, 1] so damping never overshoots
func Fraction(f float64) float64 {
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}

// Finite reports whether v is neither NaN nor ±Inf
func Finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// FiniteVec reports whether both components are finite
func FiniteVec(v r2.Vec) bool {
	return Finite(v.X) && Finite(v.Y)
}
