package vmath

import (
	"math"
)

// Tolerances for float64 geometry
const (
	// Epsilon is the default distance under which two features are treated as coincident
	Epsilon = 1e-9
	// AreaEpsilon is the smallest polygon area treated as non-degenerate
	AreaEpsilon = 1e-12
)

// --- Scalar helpers ---

// ApproxEqual reports whether |a-b| <= eps
func ApproxEqual(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}

// IsFinite reports whether f is neither NaN nor ±Inf
func IsFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

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

// Snap returns 0 for |v| <= eps, v otherwise
// Used to strip float noise from results that should be exactly zero
func Snap(v, eps float64) float64 {
	if math.Abs(v) <= eps {
		return 0
	}
	return v
}

// Sign returns -1, 0, or 1 with a dead zone of eps around zero
func Sign(v, eps float64) int {
	if v > eps {
		return 1
	}
	if v < -eps {
		return -1
	}
	return 0
}
