package collision

import (
	"math"

	"github.com/elle-trudgett/luna/vmath"
)

// CastRay intersects the segment [origin, origin+dir] with s
// Returns the distance from origin to the nearest point of the intersection
// An origin already inside s (or within eps of its boundary) hits at distance 0
func CastRay(origin, dir vmath.Vec2, s Shape, eps float64) (float64, bool) {
	if s.ContainsPoint(origin, eps) {
		return 0, true
	}
	length := vmath.V2Mag(dir)
	if length == 0 {
		return 0, false
	}
	end := vmath.V2Add(origin, dir)
	best := math.Inf(1)
	for i := 0; i < s.EdgeCount(); i++ {
		p, q := s.Edge(i)
		if t, _, ok := vmath.SegmentIntersection(origin, end, p, q, eps); ok {
			best = math.Min(best, t*length)
		}
	}
	if math.IsInf(best, 1) {
		return 0, false
	}
	return best, true
}
