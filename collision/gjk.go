package collision

import (
	"fmt"

	"github.com/elle-trudgett/luna/vmath"
)

// simplex holds 1-3 points of the Minkowski difference a - b; the newest point is last
type simplex struct {
	points [3]vmath.Vec2
	count  int
}

func (s *simplex) push(p vmath.Vec2) {
	s.points[s.count] = p
	s.count++
}

func (s *simplex) set(pts ...vmath.Vec2) {
	s.count = copy(s.points[:], pts)
}

func (s *simplex) slice() []vmath.Vec2 {
	return s.points[:s.count]
}

// minkowskiSupport returns the support point of a - b in direction dir
func minkowskiSupport(a, b Shape, dir vmath.Vec2) vmath.Vec2 {
	return vmath.V2Sub(a.Support(dir), b.Support(vmath.V2Neg(dir)))
}

// gjk reports whether a - b contains the origin
// On true the simplex encloses the origin (or has it on one of its features)
// maxIter bounds the loop; exceeding it yields ErrNonConvergent
func gjk(a, b Shape, s *simplex, maxIter int) (bool, error) {
	dir := vmath.V2Sub(b.Center(), a.Center())
	if vmath.V2MagSq(dir) == 0 {
		dir = vmath.Vec2{X: 1}
	}

	s.set(minkowskiSupport(a, b, dir))
	dir = vmath.V2Neg(s.points[0])

	for i := 0; i < maxIter; i++ {
		// Origin coincides with the current feature
		if vmath.V2MagSq(dir) == 0 {
			return true, nil
		}

		p := minkowskiSupport(a, b, dir)
		// New point does not pass the origin: separated (or touching)
		if vmath.V2Dot(p, dir) <= 0 {
			return false, nil
		}
		s.push(p)

		if refineSimplex(s, &dir) {
			return true, nil
		}
	}
	return false, fmt.Errorf("gjk after %d iterations: %w", maxIter, ErrNonConvergent)
}

// refineSimplex reduces the simplex to the feature nearest the origin and updates the search direction
// Returns true when the origin is enclosed
func refineSimplex(s *simplex, dir *vmath.Vec2) bool {
	switch s.count {
	case 2:
		return refineLine(s, dir)
	case 3:
		return refineTriangle(s, dir)
	}
	return false
}

func refineLine(s *simplex, dir *vmath.Vec2) bool {
	a := s.points[1]
	b := s.points[0]
	ab := vmath.V2Sub(b, a)
	ao := vmath.V2Neg(a)

	if vmath.V2MagSq(ab) == 0 || vmath.V2Dot(ab, ao) <= 0 {
		s.set(a)
		*dir = ao
		return false
	}

	perp := vmath.V2Perp(ab)
	side := vmath.V2Dot(perp, ao)
	if side == 0 {
		// Origin on the segment
		return true
	}
	if side < 0 {
		perp = vmath.V2Neg(perp)
	}
	*dir = perp
	return false
}

func refineTriangle(s *simplex, dir *vmath.Vec2) bool {
	a := s.points[2]
	b := s.points[1]
	c := s.points[0]
	ab := vmath.V2Sub(b, a)
	ac := vmath.V2Sub(c, a)
	ao := vmath.V2Neg(a)

	// Collinear triangle: fall back to the newest edge
	if vmath.V2Cross(ab, ac) == 0 {
		s.set(b, a)
		return refineLine(s, dir)
	}

	// Edge normals pointing away from the opposite vertex
	abPerp := vmath.V2Perp(ab)
	if vmath.V2Dot(abPerp, ac) > 0 {
		abPerp = vmath.V2Neg(abPerp)
	}
	acPerp := vmath.V2Perp(ac)
	if vmath.V2Dot(acPerp, ab) > 0 {
		acPerp = vmath.V2Neg(acPerp)
	}

	if vmath.V2Dot(abPerp, ao) > 0 {
		s.set(b, a)
		*dir = abPerp
		return false
	}
	if vmath.V2Dot(acPerp, ao) > 0 {
		s.set(c, a)
		*dir = acPerp
		return false
	}
	return true
}
