package collision

import (
	"fmt"

	"github.com/elle-trudgett/luna/vmath"
)

// MinimumTranslation returns the smallest vector that, applied to a, removes its overlap with b
// Only meaningful for overlapping shapes; separated or touching input yields the zero vector
func MinimumTranslation(a, b Shape) (vmath.Vec2, error) {
	return DefaultResolver.MinimumTranslationToward(a, b, vmath.Vec2{})
}

// MinimumTranslationToward is MinimumTranslation with a tie-break hint:
// among corrections of equal depth, the one pointing most against hint wins
func MinimumTranslationToward(a, b Shape, hint vmath.Vec2) (vmath.Vec2, error) {
	return DefaultResolver.MinimumTranslationToward(a, b, hint)
}

// MinimumTranslationToward runs 2D GJK then EPA over a - b
// The EPA result is checked against the edge normals of both shapes, which fixes the
// choice among equal-depth faces and absorbs EPA's convergence slack
func (r Resolver) MinimumTranslationToward(a, b Shape, hint vmath.Vec2) (vmath.Vec2, error) {
	if err := a.Validate(); err != nil {
		return vmath.Vec2{}, fmt.Errorf("minimum translation: %w", err)
	}
	if err := b.Validate(); err != nil {
		return vmath.Vec2{}, fmt.Errorf("minimum translation: %w", err)
	}
	if !vmath.V2IsFinite(hint) {
		return vmath.Vec2{}, fmt.Errorf("minimum translation: hint: %w", ErrInvalidInput)
	}
	return r.minimumTranslation(a, b, hint)
}

// minimumTranslation assumes validated input
func (r Resolver) minimumTranslation(a, b Shape, hint vmath.Vec2) (vmath.Vec2, error) {
	tol := r.Tolerances.Epsilon

	var s simplex
	hit, err := gjk(a, b, &s, r.Tolerances.MaxIterations)
	if err != nil {
		return vmath.Vec2{}, err
	}
	if !hit {
		return vmath.Vec2{}, nil
	}

	closest, err := epa(a, b, &s, tol, r.Tolerances.MaxIterations)
	if err != nil {
		return vmath.Vec2{}, err
	}

	best := vmath.V2Neg(closest)
	bestDepth := vmath.V2Mag(closest)
	bestScore := vmath.V2Dot(best, hint)

	for _, sh := range [2]Shape{a, b} {
		for i := 0; i < sh.EdgeCount(); i++ {
			p, q := sh.Edge(i)
			axis, ok := vmath.V2NormalizeChecked(vmath.V2Perp(vmath.V2Sub(q, p)))
			if !ok {
				continue
			}
			for _, m := range [2]vmath.Vec2{axis, vmath.V2Neg(axis)} {
				depth := vmath.V2Dot(minkowskiSupport(a, b, m), m)
				if depth < 0 {
					continue
				}
				candidate := vmath.V2Scale(m, -depth)
				score := vmath.V2Dot(candidate, hint)
				switch {
				case depth < bestDepth-tol:
					best, bestDepth, bestScore = candidate, depth, score
				case depth <= bestDepth+tol && score < bestScore-tol:
					best, bestScore = candidate, score
				}
			}
		}
	}

	if !vmath.V2IsFinite(best) {
		return vmath.Vec2{}, fmt.Errorf("minimum translation: non-finite result: %w", ErrInvalidInput)
	}
	return vmath.V2Snap(best, tol), nil
}
