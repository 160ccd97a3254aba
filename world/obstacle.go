package world

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/elle-trudgett/luna/collision"
)

// Obstacle is a static shape with identity and designation
type Obstacle struct {
	ID       uuid.UUID
	Kind     RegionKind
	Shape    collision.Shape
	Friction float64
}

// NewObstacle validates shape and assigns a fresh ID and the kind's default friction
func NewObstacle(kind RegionKind, shape collision.Shape) (Obstacle, error) {
	if err := shape.Validate(); err != nil {
		return Obstacle{}, fmt.Errorf("obstacle %s: %w", kind, err)
	}
	return Obstacle{
		ID:       uuid.New(),
		Kind:     kind,
		Shape:    shape,
		Friction: kind.DefaultFriction(),
	}, nil
}

// Bounds returns the obstacle's bounding box
func (o Obstacle) Bounds() collision.AABB {
	return o.Shape.Bounds()
}
