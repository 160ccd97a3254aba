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

func TestMoveInto(t *testing.T) {
	tests := []struct {
		name          string
		moving        Polygon
		displacement  vmath.Vec2
		obstacle      Shape
		wantCollision bool
		want          vmath.Vec2
	}{
		{
			name:          "Blocked by square ahead",
			moving:        unitSquare,
			displacement:  v(10, 0),
			obstacle:      PolygonShape(Polygon{v(2, 0), v(2, 1), v(3, 1), v(3, 0)}),
			wantCollision: true,
			want:          v(1, 0),
		},
		{
			name:          "Square out of path",
			moving:        unitSquare,
			displacement:  v(10, 0),
			obstacle:      PolygonShape(Polygon{v(0, 5), v(0, 6), v(1, 6), v(1, 5)}),
			wantCollision: false,
			want:          v(10, 0),
		},
		{
			name:          "Already overlapping",
			moving:        unitSquare,
			displacement:  v(1, 0),
			obstacle:      PolygonShape(Polygon{v(0.5, 0.5), v(0.5, 1.5), v(1.5, 1.5), v(1.5, 0.5)}),
			wantCollision: true,
			want:          v(-0.5, 0),
		},
		{
			name:          "Touching and separating",
			moving:        unitSquare,
			displacement:  v(-1, 0),
			obstacle:      PolygonShape(Polygon{v(1, 0), v(1, 1), v(2, 1), v(2, 0)}),
			wantCollision: false,
			want:          v(-1, 0),
		},
		{
			name:          "Raised neighbour, separating",
			moving:        unitSquare,
			displacement:  v(-1, 0),
			obstacle:      PolygonShape(Polygon{v(1, 0.1), v(1, 1.1), v(2, 1.1), v(2, 0.1)}),
			wantCollision: false,
			want:          v(-1, 0),
		},
		{
			name:          "Moving along ground",
			moving:        unitSquare,
			displacement:  v(2, 0),
			obstacle:      PolygonShape(Polygon{v(0, 0), v(10, 0), v(10, -1), v(0, -1)}),
			wantCollision: false,
			want:          v(2, 0),
		},
		{
			name:          "Touching and converging",
			moving:        unitSquare,
			displacement:  v(0.1, 0),
			obstacle:      PolygonShape(Polygon{v(1, 0.1), v(1, 1.1), v(2, 1.1), v(2, 0.1)}),
			wantCollision: true,
			want:          v(0, 0),
		},
		{
			name:          "Angled hit on triangle face",
			moving:        unitSquare,
			displacement:  v(6, 8),
			obstacle:      PolygonShape(Polygon{v(2, 6), v(7, 6), v(6, 4)}),
			wantCollision: true,
			want:          v(3, 4),
		},
		{
			name:          "Small triangle between edge rays",
			moving:        unitSquare,
			displacement:  v(10, 0),
			obstacle:      PolygonShape(Polygon{v(3, 0.5), v(4, 0.75), v(4, 0.25)}),
			wantCollision: true,
			want:          v(2, 0),
		},
		{
			name:          "Corner meets corner",
			moving:        unitSquare,
			displacement:  v(4, 4),
			obstacle:      PolygonShape(Rect(3, 3, 4, 4)),
			wantCollision: true,
			want:          v(2, 2),
		},
		{
			name:          "Stops short of contact",
			moving:        unitSquare,
			displacement:  v(0.5, 0),
			obstacle:      PolygonShape(Rect(2, 0, 3, 1)),
			wantCollision: false,
			want:          v(0.5, 0),
		},
		{
			name:          "Zero displacement apart",
			moving:        unitSquare,
			displacement:  v(0, 0),
			obstacle:      PolygonShape(Rect(2, 0, 3, 1)),
			wantCollision: false,
			want:          v(0, 0),
		},
		{
			name:          "Zero displacement touching",
			moving:        unitSquare,
			displacement:  v(0, 0),
			obstacle:      PolygonShape(Rect(1, 0, 2, 1)),
			wantCollision: false,
			want:          v(0, 0),
		},
		{
			name:          "Falling onto segment floor",
			moving:        Rect(0, 2, 1, 3),
			displacement:  v(0, -5),
			obstacle:      SegmentShape(v(-5, 0), v(5, 0)),
			wantCollision: true,
			want:          v(0, -2),
		},
		{
			name:          "Segment wall",
			moving:        unitSquare,
			displacement:  v(10, 0),
			obstacle:      SegmentShape(v(3, -1), v(3, 2)),
			wantCollision: true,
			want:          v(2, 0),
		},
		{
			name:          "Short segment inside path",
			moving:        unitSquare,
			displacement:  v(10, 0),
			obstacle:      SegmentShape(v(4, 0.25), v(4.5, 0.75)),
			wantCollision: true,
			want:          v(3, 0),
		},
		{
			name:          "Sliding along segment floor",
			moving:        unitSquare,
			displacement:  v(1, 0),
			obstacle:      SegmentShape(v(-1, 0), v(2, 0)),
			wantCollision: false,
			want:          v(1, 0),
		},
		{
			name:          "Segment through interior",
			moving:        unitSquare,
			displacement:  v(1, 0),
			obstacle:      SegmentShape(v(0.5, -1), v(0.5, 2)),
			wantCollision: true,
			want:          v(-0.5, 0),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := MoveInto(tt.moving, tt.displacement, tt.obstacle)
			require.NoError(t, err)
			assert.Equal(t, tt.wantCollision, res.Collision)
			if !tt.wantCollision {
				assert.Equal(t, tt.displacement, res.Displacement, "unchanged when clear")
				return
			}
			assertVec(t, tt.want, res.Displacement)
		})
	}
}

func TestMoveIntoErrors(t *testing.T) {
	tests := []struct {
		name         string
		moving       Polygon
		displacement vmath.Vec2
		obstacle     Shape
		want         error
	}{
		{"Moving has two vertices", Polygon{v(0, 0), v(1, 0)}, v(1, 0), PolygonShape(unitSquare), ErrDegenerateShape},
		{"Moving has zero area", Polygon{v(0, 0), v(1, 0), v(2, 0)}, v(1, 0), PolygonShape(unitSquare), ErrDegenerateShape},
		{"Obstacle has zero area", unitSquare, v(1, 0), PolygonShape(Polygon{v(3, 3), v(3, 3), v(3, 3)}), ErrDegenerateShape},
		{"Zero-length segment", unitSquare, v(1, 0), SegmentShape(v(3, 0), v(3, 0)), ErrDegenerateShape},
		{"NaN displacement", unitSquare, v(math.NaN(), 0), PolygonShape(Rect(2, 0, 3, 1)), ErrInvalidInput},
		{"Infinite vertex", Polygon{v(0, 0), v(math.Inf(1), 0), v(0, 1)}, v(1, 0), PolygonShape(Rect(2, 0, 3, 1)), ErrInvalidInput},
		{"Unknown obstacle kind", unitSquare, v(1, 0), Shape{Kind: ShapeKind(5)}, ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := MoveInto(tt.moving, tt.displacement, tt.obstacle)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
		})
	}
}

func TestMoveIntoNonConvergent(t *testing.T) {
	r, err := NewResolver(Tolerances{Epsilon: vmath.Epsilon, MaxIterations: 1})
	require.NoError(t, err)

	_, err = r.MoveInto(unitSquare, v(1, 0), PolygonShape(Rect(0.5, 0.5, 1.5, 1.5)))
	assert.True(t, errors.Is(err, ErrNonConvergent), "got %v", err)
}

func TestNewResolverRejectsBadTolerances(t *testing.T) {
	_, err := NewResolver(Tolerances{Epsilon: 0, MaxIterations: 10})
	assert.True(t, errors.Is(err, ErrInvalidInput))

	_, err = NewResolver(Tolerances{Epsilon: math.NaN(), MaxIterations: 10})
	assert.True(t, errors.Is(err, ErrInvalidInput))

	_, err = NewResolver(Tolerances{Epsilon: 1e-9, MaxIterations: 0})
	assert.True(t, errors.Is(err, ErrInvalidInput))
}

func TestMoveIntoDoesNotMutateInput(t *testing.T) {
	moving := Polygon{v(0, 0), v(0, 1), v(1, 1), v(1, 0)}
	obstacle := Polygon{v(2, 0), v(2, 1), v(3, 1), v(3, 0)}

	_, err := MoveInto(moving, v(10, 0), PolygonShape(obstacle))
	require.NoError(t, err)
	assert.Equal(t, unitSquare, moving)
	assert.Equal(t, Polygon{v(2, 0), v(2, 1), v(3, 1), v(3, 0)}, obstacle)
}

func TestMoveIntoIdempotent(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 100; i++ {
		moving := randomConvex(rng, v(0, 0), 1)
		obstacle := PolygonShape(randomConvex(rng, v(rng.Float64()*6-3, rng.Float64()*6-3), 1+rng.Float64()))
		d := v((rng.Float64()*2-1)*6, (rng.Float64()*2-1)*6)

		first, err1 := MoveInto(moving, d, obstacle)
		second, err2 := MoveInto(moving, d, obstacle)
		assert.Equal(t, err1, err2)
		assert.Equal(t, first, second)
	}
}

// Random separated pairs: a clear result echoes the request exactly, a blocked one
// never lengthens or turns it and never ends inside the obstacle
func TestMoveIntoProperties(t *testing.T) {
	rng := rand.New(rand.NewSource(11))

	checked := 0
	for i := 0; i < 1000; i++ {
		moving := randomConvex(rng, v(0, 0), 1+rng.Float64())
		var obstacle Shape
		center := v(rng.Float64()*12-6, rng.Float64()*12-6)
		if i%4 == 0 {
			obstacle = SegmentShape(center, vmath.V2Add(center, v(rng.Float64()*4-2, rng.Float64()*4-2)))
		} else {
			obstacle = PolygonShape(randomConvex(rng, center, 0.5+rng.Float64()*2))
		}
		if obstacle.Validate() != nil || Overlaps(PolygonShape(moving), obstacle, vmath.Epsilon) {
			continue
		}
		d := v((rng.Float64()*2-1)*10, (rng.Float64()*2-1)*10)

		res, err := MoveInto(moving, d, obstacle)
		require.NoError(t, err, "iteration %d", i)
		checked++

		if !res.Collision {
			assert.Equal(t, d, res.Displacement, "iteration %d", i)
		} else {
			assert.LessOrEqual(t, vmath.V2Mag(res.Displacement), vmath.V2Mag(d)+1e-9, "iteration %d", i)
			assert.InDelta(t, 0, vmath.V2Cross(res.Displacement, d)/vmath.V2Mag(d), 1e-9, "iteration %d: turned", i)
			assert.GreaterOrEqual(t, vmath.V2Dot(res.Displacement, d), 0.0, "iteration %d: reversed", i)
		}

		moved := PolygonShape(moving.Translate(res.Displacement))
		assert.False(t, Overlaps(moved, obstacle, 1e-6), "iteration %d: ends inside obstacle", i)
	}
	assert.Greater(t, checked, 500)
}

func TestMoveIntoTraced(t *testing.T) {
	t.Run("Contact", func(t *testing.T) {
		res, trace, err := MoveIntoTraced(unitSquare, v(10, 0), PolygonShape(Rect(2, 0, 3, 1)))
		require.NoError(t, err)
		assert.True(t, res.Collision)
		assert.Equal(t, CaseContact, trace.Case)
		assert.Equal(t, Polygon{v(0, 0), v(11, 0), v(11, 1), v(0, 1)}, trace.Swept)
		assert.InDelta(t, 1.0, trace.NearestDistance, 1e-12)
		// Two nearest-point rays plus one per vertex of each shape
		assert.Len(t, trace.Rays, 2+4+4)

		shortest := math.Inf(1)
		for _, r := range trace.Rays {
			if r.Hit {
				shortest = math.Min(shortest, r.Distance)
			}
		}
		assert.InDelta(t, 1.0, shortest, 1e-9)
	})

	t.Run("Overlapping", func(t *testing.T) {
		_, trace, err := MoveIntoTraced(unitSquare, v(1, 0), PolygonShape(Rect(0.5, 0.5, 1.5, 1.5)))
		require.NoError(t, err)
		assert.Equal(t, CaseOverlapping, trace.Case)
		assertVec(t, v(-0.5, 0), trace.Correction)
		assert.Nil(t, trace.Swept)
	})

	t.Run("Clear", func(t *testing.T) {
		res, trace, err := MoveIntoTraced(unitSquare, v(10, 0), PolygonShape(Rect(0, 5, 1, 6)))
		require.NoError(t, err)
		assert.False(t, res.Collision)
		assert.Equal(t, CaseClear, trace.Case)
		assert.Empty(t, trace.Rays)
	})

	t.Run("Same result as untraced", func(t *testing.T) {
		obstacle := PolygonShape(Polygon{v(2, 6), v(7, 6), v(6, 4)})
		plain, err := MoveInto(unitSquare, v(6, 8), obstacle)
		require.NoError(t, err)
		traced, _, err := MoveIntoTraced(unitSquare, v(6, 8), obstacle)
		require.NoError(t, err)
		assert.Equal(t, plain, traced)
	})
}

func TestCaseString(t *testing.T) {
	assert.Equal(t, "clear", CaseClear.String())
	assert.Equal(t, "overlapping", CaseOverlapping.String())
	assert.Equal(t, "contact", CaseContact.String())
}
