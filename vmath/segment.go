package vmath

import (
	"math"
)

// ClosestPointOnSegment returns the point of segment [a, b] nearest to p and its parameter t in [0, 1]
// Degenerate segments (a == b) return a with t = 0
func ClosestPointOnSegment(p, a, b Vec2) (Vec2, float64) {
	ab := V2Sub(b, a)
	lenSq := V2MagSq(ab)
	if lenSq == 0 {
		return a, 0
	}
	t := Clamp(V2Dot(V2Sub(p, a), ab)/lenSq, 0, 1)
	return V2Add(a, V2Scale(ab, t)), t
}

// SegmentClosestPoints returns the closest pair of points between segments [p1, q1] and [p2, q2]
// c1 lies on the first segment, c2 on the second, distSq is |c1-c2|²
// Handles degenerate (point) segments and parallel segments
func SegmentClosestPoints(p1, q1, p2, q2 Vec2) (c1, c2 Vec2, distSq float64) {
	d1 := V2Sub(q1, p1)
	d2 := V2Sub(q2, p2)
	r := V2Sub(p1, p2)
	a := V2MagSq(d1)
	e := V2MagSq(d2)
	f := V2Dot(d2, r)

	var s, t float64

	switch {
	case a == 0 && e == 0:
		// Both segments are points
		return p1, p2, V2MagSq(V2Sub(p1, p2))
	case a == 0:
		s = 0
		t = Clamp(f/e, 0, 1)
	default:
		c := V2Dot(d1, r)
		if e == 0 {
			t = 0
			s = Clamp(-c/a, 0, 1)
		} else {
			b := V2Dot(d1, d2)
			denom := a*e - b*b
			// Parallel segments pick s = 0 and let the clamp below resolve t
			if denom > 0 {
				s = Clamp((b*f-c*e)/denom, 0, 1)
			}
			t = (b*s + f) / e
			if t < 0 {
				t = 0
				s = Clamp(-c/a, 0, 1)
			} else if t > 1 {
				t = 1
				s = Clamp((b-c)/a, 0, 1)
			}
		}
	}

	c1 = V2Add(p1, V2Scale(d1, s))
	c2 = V2Add(p2, V2Scale(d2, t))
	return c1, c2, V2MagSq(V2Sub(c1, c2))
}

// SegmentIntersection intersects segment [p1, q1] with segment [p2, q2]
// Returns the parameter interval [t0, t1] along the first segment covered by the intersection
// A proper crossing yields t0 == t1; collinear overlap yields the overlapping span
// eps is a distance tolerance that lets exactly-touching features register as intersecting
func SegmentIntersection(p1, q1, p2, q2 Vec2, eps float64) (t0, t1 float64, ok bool) {
	r := V2Sub(q1, p1)
	s := V2Sub(q2, p2)
	rLen := V2Mag(r)
	sLen := V2Mag(s)
	qp := V2Sub(p2, p1)

	if rLen == 0 {
		// First segment is a point: intersects if it lies on the second
		c, _ := ClosestPointOnSegment(p1, p2, q2)
		if V2Dist(c, p1) <= eps {
			return 0, 0, true
		}
		return 0, 0, false
	}

	epsT := eps / rLen
	denom := V2Cross(r, s)

	if sLen == 0 || math.Abs(denom) <= eps*rLen*sLen {
		// Parallel (or second segment is a point): must be collinear within eps
		if math.Abs(V2Cross(qp, r))/rLen > eps {
			return 0, 0, false
		}
		invLenSq := 1.0 / (rLen * rLen)
		a := V2Dot(qp, r) * invLenSq
		b := V2Dot(V2Sub(q2, p1), r) * invLenSq
		if a > b {
			a, b = b, a
		}
		lo := math.Max(a, 0)
		hi := math.Min(b, 1)
		if lo > hi+epsT {
			return 0, 0, false
		}
		if lo > hi {
			lo = hi
		}
		return Clamp(lo, 0, 1), Clamp(hi, 0, 1), true
	}

	t := V2Cross(qp, s) / denom
	u := V2Cross(qp, r) / denom
	epsU := eps / sLen
	if t < -epsT || t > 1+epsT || u < -epsU || u > 1+epsU {
		return 0, 0, false
	}
	t = Clamp(t, 0, 1)
	return t, t, true
}
