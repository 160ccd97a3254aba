package collision

import (
	"fmt"

	"github.com/elle-trudgett/luna/vmath"
)

// Sweep returns the convex region covered by polygon while it translates along displacement
// The result is the convex hull of the starting and translated vertex sets, counter-clockwise,
// starting at the lowest-y (then lowest-x) vertex, with no repeated closing vertex
// A zero displacement yields the hull of polygon itself
func Sweep(polygon Polygon, displacement vmath.Vec2) (Polygon, error) {
	if err := polygon.Validate(); err != nil {
		return nil, fmt.Errorf("sweep: %w", err)
	}
	if !vmath.V2IsFinite(displacement) {
		return nil, fmt.Errorf("sweep: displacement (%v, %v): %w", displacement.X, displacement.Y, ErrInvalidInput)
	}
	return sweep(polygon, displacement), nil
}

// sweep assumes validated input
func sweep(polygon Polygon, displacement vmath.Vec2) Polygon {
	points := make([]vmath.Vec2, 0, 2*len(polygon))
	points = append(points, polygon...)
	if !vmath.V2IsZero(displacement) {
		for _, v := range polygon {
			points = append(points, vmath.V2Add(v, displacement))
		}
	}
	return Polygon(vmath.ConvexHull(points))
}
