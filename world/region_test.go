package world

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elle-trudgett/luna/collision"
)

func TestParseRegionKind(t *testing.T) {
	tests := []struct {
		input string
		want  RegionKind
	}{
		{"ground", RegionGround},
		{"death_zone", RegionDeathZone},
		{"Platform", RegionPlatform},
		{" wall ", RegionWall},
		{"CEILING", RegionCeiling},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseRegionKind(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)

			text, err := got.MarshalText()
			require.NoError(t, err)
			var back RegionKind
			require.NoError(t, back.UnmarshalText(text))
			assert.Equal(t, got, back)
		})
	}

	_, err := ParseRegionKind("lava")
	assert.Error(t, err)
	assert.Equal(t, "RegionKind(42)", RegionKind(42).String())
}

func TestRegionKindBehaviour(t *testing.T) {
	assert.False(t, RegionDeathZone.Blocking())
	assert.True(t, RegionPlatform.Blocking())
	assert.Equal(t, 1.0, RegionGround.DefaultFriction())
	assert.Equal(t, 0.8, RegionWall.DefaultFriction())
	assert.Zero(t, RegionDeathZone.DefaultFriction())
}

func TestNewObstacle(t *testing.T) {
	a, err := NewObstacle(RegionGround, collision.PolygonShape(collision.Rect(0, 0, 1, 1)))
	require.NoError(t, err)
	b, err := NewObstacle(RegionGround, collision.PolygonShape(collision.Rect(0, 0, 1, 1)))
	require.NoError(t, err)

	assert.NotEqual(t, a.ID, b.ID)
	assert.Equal(t, 1.0, a.Friction)
	assert.Equal(t, collision.AABB{Max: collision.Rect(0, 0, 1, 1)[2]}, a.Bounds())

	_, err = NewObstacle(RegionWall, collision.SegmentShape(collision.Rect(0, 0, 1, 1)[0], collision.Rect(0, 0, 1, 1)[0]))
	assert.True(t, errors.Is(err, collision.ErrDegenerateShape))
}
