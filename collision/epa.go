package collision

import (
	"fmt"
	"math"
	"slices"

	"github.com/elle-trudgett/luna/vmath"
)

// epa expands the enclosing simplex over the Minkowski difference a - b
// Returns the point of the difference's boundary closest to the origin; translating a by its
// negation leaves the shapes touching
func epa(a, b Shape, s *simplex, tol float64, maxIter int) (vmath.Vec2, error) {
	poly, ok := initialPolytope(a, b, s)
	if !ok {
		// Origin lies on the boundary of a - b: already touching
		return vmath.Vec2{}, nil
	}

	for i := 0; i < maxIter; i++ {
		idx, normal, dist := closestEdge(poly)
		p := minkowskiSupport(a, b, normal)
		if vmath.V2Dot(p, normal)-dist <= tol {
			return vmath.V2Scale(normal, dist), nil
		}
		poly = slices.Insert(poly, idx+1, p)
	}
	return vmath.Vec2{}, fmt.Errorf("epa after %d iterations: %w", maxIter, ErrNonConvergent)
}

// initialPolytope turns the GJK simplex into a counter-clockwise triangle around the origin
// Returns false when the difference has no area around the origin
func initialPolytope(a, b Shape, s *simplex) ([]vmath.Vec2, bool) {
	pts := slices.Clone(s.slice())

	switch len(pts) {
	case 1:
		return nil, false
	case 2:
		// Origin on a segment: grow towards either side
		perp := vmath.V2Perp(vmath.V2Sub(pts[1], pts[0]))
		if vmath.V2MagSq(perp) == 0 {
			return nil, false
		}
		third := minkowskiSupport(a, b, perp)
		if vmath.Orient(pts[0], pts[1], third) == 0 {
			third = minkowskiSupport(a, b, vmath.V2Neg(perp))
		}
		if vmath.Orient(pts[0], pts[1], third) == 0 {
			return nil, false
		}
		pts = append(pts, third)
	}

	if vmath.Orient(pts[0], pts[1], pts[2]) < 0 {
		pts[1], pts[2] = pts[2], pts[1]
	}
	return pts, true
}

// closestEdge returns the polytope edge nearest the origin as (index, outward unit normal, distance)
func closestEdge(poly []vmath.Vec2) (int, vmath.Vec2, float64) {
	bestIdx := 0
	bestDist := math.Inf(1)
	var bestNormal vmath.Vec2

	for i := range poly {
		p := poly[i]
		q := poly[(i+1)%len(poly)]
		e := vmath.V2Sub(q, p)
		// Outward normal for counter-clockwise winding
		normal, ok := vmath.V2NormalizeChecked(vmath.Vec2{X: e.Y, Y: -e.X})
		if !ok {
			continue
		}
		d := vmath.V2Dot(normal, p)
		if d < bestDist {
			bestIdx, bestDist, bestNormal = i, d, normal
		}
	}
	return bestIdx, bestNormal, math.Max(bestDist, 0)
}
