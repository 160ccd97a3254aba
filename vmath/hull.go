package vmath

import (
	"slices"
)

// ConvexHull returns the convex hull of points in counter-clockwise order
// Output starts at the lowest-y vertex (lowest x on ties), contains no collinear
// or duplicate vertices, and does not repeat the first vertex at the end
// Fewer than 3 distinct non-collinear points return the distinct extremes (len < 3)
func ConvexHull(points []Vec2) []Vec2 {
	pts := slices.Clone(points)
	slices.SortFunc(pts, func(a, b Vec2) int {
		if a.X != b.X {
			if a.X < b.X {
				return -1
			}
			return 1
		}
		if a.Y < b.Y {
			return -1
		}
		if a.Y > b.Y {
			return 1
		}
		return 0
	})
	pts = slices.Compact(pts)

	if len(pts) < 3 {
		return pts
	}

	// Andrew's monotone chain
	hull := make([]Vec2, 0, 2*len(pts))
	for _, p := range pts {
		for len(hull) >= 2 && Orient(hull[len(hull)-2], hull[len(hull)-1], p) <= 0 {
			hull = hull[:len(hull)-1]
		}
		hull = append(hull, p)
	}
	lower := len(hull) + 1
	for i := len(pts) - 2; i >= 0; i-- {
		p := pts[i]
		for len(hull) >= lower && Orient(hull[len(hull)-2], hull[len(hull)-1], p) <= 0 {
			hull = hull[:len(hull)-1]
		}
		hull = append(hull, p)
	}
	// Last point repeats the first
	hull = hull[:len(hull)-1]

	if len(hull) < 3 {
		return hull
	}

	// Rotate to start at lowest-y, lowest-x
	start := 0
	for i, p := range hull {
		s := hull[start]
		if p.Y < s.Y || (p.Y == s.Y && p.X < s.X) {
			start = i
		}
	}
	out := make([]Vec2, 0, len(hull))
	out = append(out, hull[start:]...)
	out = append(out, hull[:start]...)
	return out
}

// PolygonArea returns the signed area of a closed polygon
// Positive for counter-clockwise winding
func PolygonArea(points []Vec2) float64 {
	n := len(points)
	if n < 3 {
		return 0
	}
	var sum float64
	for i := 0; i < n; i++ {
		sum += V2Cross(points[i], points[(i+1)%n])
	}
	return sum / 2
}

// IsConvex reports whether points form a convex polygon in either winding
// Collinear consecutive edges are permitted; fewer than 3 points or all-collinear input is not convex
func IsConvex(points []Vec2, eps float64) bool {
	n := len(points)
	if n < 3 {
		return false
	}
	var positive, negative int
	for i := 0; i < n; i++ {
		cross := Orient(points[i], points[(i+1)%n], points[(i+2)%n])
		switch Sign(cross, eps) {
		case 1:
			positive++
		case -1:
			negative++
		}
	}
	if positive == 0 && negative == 0 {
		return false
	}
	return positive == 0 || negative == 0
}
