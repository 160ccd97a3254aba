package collision

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elle-trudgett/luna/vmath"
)

func TestMinimumTranslation(t *testing.T) {
	tests := []struct {
		name string
		a, b Shape
		hint vmath.Vec2
		want vmath.Vec2
	}{
		{
			name: "Shallow horizontal overlap",
			a:    PolygonShape(unitSquare),
			b:    PolygonShape(Rect(0.8, -1, 3, 2)),
			want: v(-0.2, 0),
		},
		{
			name: "Shallow vertical overlap",
			a:    PolygonShape(unitSquare),
			b:    PolygonShape(Rect(-2, 0.9, 3, 4)),
			want: v(0, -0.1),
		},
		{
			name: "Equal depth broken against hint",
			a:    PolygonShape(unitSquare),
			b:    PolygonShape(Rect(0.5, 0.5, 1.5, 1.5)),
			hint: v(1, 0),
			want: v(-0.5, 0),
		},
		{
			name: "Equal depth, vertical hint",
			a:    PolygonShape(unitSquare),
			b:    PolygonShape(Rect(0.5, 0.5, 1.5, 1.5)),
			hint: v(0, 1),
			want: v(0, -0.5),
		},
		{
			name: "Sunk into floor",
			a:    PolygonShape(Rect(0, -0.25, 1, 1.75)),
			b:    PolygonShape(Rect(-10, -5, 10, 0)),
			hint: v(0, -1),
			want: v(0, 0.25),
		},
		{
			name: "Triangle against slope",
			a:    PolygonShape(Rect(0, 0, 1, 1)),
			b:    PolygonShape(Polygon{v(0, -1), v(2, -1), v(0, 1)}),
			want: v(0.5, 0.5),
		},
		{
			name: "Segment through polygon",
			a:    PolygonShape(unitSquare),
			b:    SegmentShape(v(0.75, -1), v(0.75, 2)),
			want: v(-0.25, 0),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := MinimumTranslationToward(tt.a, tt.b, tt.hint)
			require.NoError(t, err)
			assertVec(t, tt.want, got)

			// Applying the correction leaves the shapes touching, not overlapping
			moved := tt.a.Translate(got)
			assert.False(t, Overlaps(moved, tt.b, 1e-9))
		})
	}
}

func TestMinimumTranslationSeparated(t *testing.T) {
	got, err := MinimumTranslation(PolygonShape(unitSquare), PolygonShape(Rect(3, 3, 4, 4)))
	require.NoError(t, err)
	assert.Equal(t, vmath.Vec2{}, got)

	got, err = MinimumTranslation(PolygonShape(unitSquare), PolygonShape(Rect(1, 0, 2, 1)))
	require.NoError(t, err)
	assert.InDelta(t, 0, vmath.V2Mag(got), 1e-9, "touching needs no correction")
}

func TestMinimumTranslationErrors(t *testing.T) {
	_, err := MinimumTranslation(PolygonShape(Polygon{v(0, 0), v(1, 1)}), PolygonShape(unitSquare))
	assert.True(t, errors.Is(err, ErrDegenerateShape))

	_, err = MinimumTranslationToward(PolygonShape(unitSquare), PolygonShape(Rect(0.5, 0.5, 2, 2)), v(math.NaN(), 0))
	assert.True(t, errors.Is(err, ErrInvalidInput))
}

func TestMinimumTranslationSeparatesRandomPairs(t *testing.T) {
	rng := rand.New(rand.NewSource(5))

	checked := 0
	for i := 0; i < 500; i++ {
		a := PolygonShape(randomConvex(rng, v(0, 0), 1+rng.Float64()))
		b := PolygonShape(randomConvex(rng, v(rng.Float64()*2-1, rng.Float64()*2-1), 1+rng.Float64()))
		if !Overlaps(a, b, vmath.Epsilon) {
			continue
		}
		checked++

		mtv, err := MinimumTranslation(a, b)
		require.NoError(t, err, "iteration %d", i)
		assert.False(t, Overlaps(a.Translate(mtv), b, 1e-6), "iteration %d: still overlapping after %v", i, mtv)

		// No edge axis of either shape separates them with a shorter push
		depth := vmath.V2Mag(mtv)
		for _, s := range []Shape{a, b} {
			for e := 0; e < s.EdgeCount(); e++ {
				p, q := s.Edge(e)
				axis := vmath.V2Normalize(vmath.V2Perp(vmath.V2Sub(q, p)))
				for _, m := range []vmath.Vec2{axis, vmath.V2Neg(axis)} {
					alt := vmath.V2Dot(minkowskiSupport(a, b, m), m)
					assert.GreaterOrEqual(t, alt, depth-1e-9, "iteration %d", i)
				}
			}
		}
	}
	assert.Greater(t, checked, 100)
}
