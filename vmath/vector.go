package vmath

import (
	"math"
)

// Vec2 is a float64 2D vector
// Used both for positions (polygon vertices, segment endpoints) and for directions
type Vec2 struct {
	X, Y float64
}

// V2 is shorthand for Vec2{x, y}
func V2(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

func V2Add(a, b Vec2) Vec2 {
	return Vec2{a.X + b.X, a.Y + b.Y}
}

func V2Sub(a, b Vec2) Vec2 {
	return Vec2{a.X - b.X, a.Y - b.Y}
}

func V2Scale(v Vec2, s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

func V2Neg(v Vec2) Vec2 {
	return Vec2{-v.X, -v.Y}
}

// V2Dot returns a.X*b.X + a.Y*b.Y
func V2Dot(a, b Vec2) float64 {
	return a.X*b.X + a.Y*b.Y
}

// V2Cross returns the z component of the 3D cross product (a.X*b.Y - a.Y*b.X)
// Positive when b is counter-clockwise from a
func V2Cross(a, b Vec2) float64 {
	return a.X*b.Y - a.Y*b.X
}

// V2Perp returns vector rotated 90° counter-clockwise
func V2Perp(v Vec2) Vec2 {
	return Vec2{-v.Y, v.X}
}

func V2MagSq(v Vec2) float64 {
	return v.X*v.X + v.Y*v.Y
}

func V2Mag(v Vec2) float64 {
	return math.Hypot(v.X, v.Y)
}

// V2Dist returns the Euclidean distance between two points
func V2Dist(a, b Vec2) float64 {
	return V2Mag(V2Sub(a, b))
}

// V2Normalize returns unit vector, zero-safe
func V2Normalize(v Vec2) Vec2 {
	mag := V2Mag(v)
	if mag == 0 {
		return Vec2{}
	}
	inv := 1.0 / mag
	return Vec2{v.X * inv, v.Y * inv}
}

// V2NormalizeChecked returns unit vector and false if v is zero or non-finite
func V2NormalizeChecked(v Vec2) (Vec2, bool) {
	if !V2IsFinite(v) {
		return Vec2{}, false
	}
	mag := V2Mag(v)
	if mag == 0 || !IsFinite(mag) {
		return Vec2{}, false
	}
	inv := 1.0 / mag
	return Vec2{v.X * inv, v.Y * inv}, true
}

// V2Lerp returns a + (b-a)*t
func V2Lerp(a, b Vec2, t float64) Vec2 {
	return Vec2{a.X + (b.X-a.X)*t, a.Y + (b.Y-a.Y)*t}
}

// V2IsFinite reports whether both components are finite
func V2IsFinite(v Vec2) bool {
	return IsFinite(v.X) && IsFinite(v.Y)
}

// V2IsZero reports whether both components are exactly zero
func V2IsZero(v Vec2) bool {
	return v.X == 0 && v.Y == 0
}

// V2Approx reports component-wise equality within eps
func V2Approx(a, b Vec2, eps float64) bool {
	return ApproxEqual(a.X, b.X, eps) && ApproxEqual(a.Y, b.Y, eps)
}

// V2Snap zeroes components with |c| <= eps
func V2Snap(v Vec2, eps float64) Vec2 {
	return Vec2{Snap(v.X, eps), Snap(v.Y, eps)}
}

// V2ClampMagnitude limits vector to maxMag while preserving direction
// Returns unchanged vector if magnitude <= maxMag
func V2ClampMagnitude(v Vec2, maxMag float64) Vec2 {
	mag := V2Mag(v)
	if mag <= maxMag || mag == 0 {
		return v
	}
	return V2Scale(v, maxMag/mag)
}

// Orient returns the signed doubled area of triangle (a, b, c)
// Positive for counter-clockwise order
func Orient(a, b, c Vec2) float64 {
	return V2Cross(V2Sub(b, a), V2Sub(c, a))
}
