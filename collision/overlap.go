package collision

import (
	"github.com/elle-trudgett/luna/vmath"
)

// Overlaps reports whether the interiors of a and b intersect by more than eps
// Shapes that merely touch along a boundary point or edge do not overlap
// A segment overlaps a polygon when it crosses the polygon interior; two segments never overlap
func Overlaps(a, b Shape, eps float64) bool {
	if a.Kind == ShapeSegment && b.Kind == ShapeSegment {
		return false
	}
	for _, s := range [2]Shape{a, b} {
		for i := 0; i < s.EdgeCount(); i++ {
			p, q := s.Edge(i)
			axis, ok := vmath.V2NormalizeChecked(vmath.V2Perp(vmath.V2Sub(q, p)))
			if !ok {
				continue
			}
			aLo, aHi := a.Project(axis)
			bLo, bHi := b.Project(axis)
			if !(aHi > bLo+eps && bHi > aLo+eps) {
				return false
			}
		}
	}
	return true
}

// Contains reports whether inner lies within outer and reaches into its interior
// Every vertex of inner must be inside outer (boundary within eps allowed), and the
// centre of inner must be at least eps inside, so a segment lying on the boundary is not contained
func Contains(outer Polygon, inner Shape, eps float64) bool {
	for _, v := range inner.Vertices() {
		if !outer.ContainsPoint(v, eps) {
			return false
		}
	}
	return outer.ContainsPoint(inner.Center(), -eps)
}
