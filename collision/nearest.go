package collision

import (
	"math"

	"github.com/elle-trudgett/luna/vmath"
)

// NearestPoints returns the pair of boundary points realizing the minimum distance between a and b
// pa lies on the boundary of a, pb on the boundary of b; ties resolve to the first edge pair in vertex order
// Overlapping shapes report a crossing point with dist 0
func NearestPoints(a, b Shape) (pa, pb vmath.Vec2, dist float64) {
	best := math.Inf(1)
	for i := 0; i < a.EdgeCount(); i++ {
		a0, a1 := a.Edge(i)
		for j := 0; j < b.EdgeCount(); j++ {
			b0, b1 := b.Edge(j)
			c1, c2, d := vmath.SegmentClosestPoints(a0, a1, b0, b1)
			if d < best {
				best, pa, pb = d, c1, c2
			}
		}
	}
	return pa, pb, math.Sqrt(best)
}
