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

func TestSweepSquare(t *testing.T) {
	swept, err := Sweep(unitSquare, v(5, 5))
	require.NoError(t, err)

	assert.Len(t, swept, 6)
	assert.ElementsMatch(t, []vmath.Vec2{v(0, 0), v(0, 1), v(5, 6), v(6, 6), v(6, 5), v(1, 0)}, []vmath.Vec2(swept))
	assert.Equal(t, v(0, 0), swept[0], "starts at lowest vertex")
	assert.Greater(t, vmath.PolygonArea(swept), 0.0, "counter-clockwise")
}

func TestSweepAxisAligned(t *testing.T) {
	swept, err := Sweep(unitSquare, v(10, 0))
	require.NoError(t, err)
	assert.Equal(t, Polygon{v(0, 0), v(11, 0), v(11, 1), v(0, 1)}, swept)
}

func TestSweepZeroDisplacement(t *testing.T) {
	swept, err := Sweep(unitSquare, vmath.Vec2{})
	require.NoError(t, err)
	assert.Equal(t, Polygon{v(0, 0), v(1, 0), v(1, 1), v(0, 1)}, swept)
}

func TestSweepErrors(t *testing.T) {
	_, err := Sweep(Polygon{v(0, 0), v(1, 0)}, v(1, 1))
	assert.True(t, errors.Is(err, ErrDegenerateShape))

	_, err = Sweep(unitSquare, v(math.NaN(), 0))
	assert.True(t, errors.Is(err, ErrInvalidInput))

	_, err = Sweep(unitSquare, v(0, math.Inf(-1)))
	assert.True(t, errors.Is(err, ErrInvalidInput))
}

func randomConvex(rng *rand.Rand, center vmath.Vec2, radius float64) Polygon {
	for {
		n := 3 + rng.Intn(6)
		pts := make([]vmath.Vec2, n)
		for i := range pts {
			pts[i] = vmath.V2Add(center, v((rng.Float64()*2-1)*radius, (rng.Float64()*2-1)*radius))
		}
		p := Polygon(vmath.ConvexHull(pts))
		if p.Validate() == nil && p.Area() > 0.01 {
			return p
		}
	}
}

func TestSweepProperties(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for i := 0; i < 300; i++ {
		p := randomConvex(rng, v(rng.Float64()*10, rng.Float64()*10), 1+rng.Float64()*3)
		d := v((rng.Float64()*2-1)*10, (rng.Float64()*2-1)*10)

		swept, err := Sweep(p, d)
		require.NoError(t, err)
		require.True(t, vmath.IsConvex(swept, vmath.Epsilon), "iteration %d: not convex", i)

		for _, vert := range p {
			assert.True(t, swept.ContainsPoint(vert, 1e-9), "iteration %d: misses %v", i, vert)
			moved := vmath.V2Add(vert, d)
			assert.True(t, swept.ContainsPoint(moved, 1e-9), "iteration %d: misses %v", i, moved)
		}

		still, err := Sweep(p, vmath.Vec2{})
		require.NoError(t, err)
		assert.Equal(t, Polygon(vmath.ConvexHull(p)), still)
	}
}
