package world

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/elle-trudgett/luna/collision"
	"github.com/elle-trudgett/luna/vmath"
)

// Point is a YAML-friendly [x, y] pair
type Point [2]float64

// Vec converts to vmath.Vec2
func (p Point) Vec() vmath.Vec2 {
	return vmath.Vec2{X: p[0], Y: p[1]}
}

// Scene describes a level: the player's starting hitbox and the static obstacles
type Scene struct {
	Name      string        `yaml:"name"`
	Player    PlayerDef     `yaml:"player"`
	Obstacles []ObstacleDef `yaml:"obstacles"`
}

// PlayerDef places the player; Position is the bottom-centre of the hitbox
type PlayerDef struct {
	Position Point   `yaml:"position"`
	Width    float64 `yaml:"width"`
	Height   float64 `yaml:"height"`
}

// ObstacleDef is one obstacle; exactly one of Polygon or Segment must be set
type ObstacleDef struct {
	Kind     RegionKind `yaml:"kind"`
	Friction *float64   `yaml:"friction,omitempty"`
	Polygon  []Point    `yaml:"polygon,omitempty"`
	Segment  []Point    `yaml:"segment,omitempty"`
}

// LoadScene reads and parses a scene file
func LoadScene(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scene: %w", err)
	}
	return ParseScene(data)
}

// ParseScene decodes a YAML scene and validates it; unknown fields are rejected
func ParseScene(data []byte) (*Scene, error) {
	var s Scene
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode scene: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate checks the player hitbox and every obstacle shape
func (s *Scene) Validate() error {
	if s.Player.Width <= 0 || s.Player.Height <= 0 {
		return fmt.Errorf("scene %q: player hitbox %vx%v must be positive", s.Name, s.Player.Width, s.Player.Height)
	}
	for i, o := range s.Obstacles {
		if _, err := o.Shape(); err != nil {
			return fmt.Errorf("scene %q: obstacle %d: %w", s.Name, i, err)
		}
	}
	return nil
}

// Shape converts the definition to a validated collision shape
func (o ObstacleDef) Shape() (collision.Shape, error) {
	var shape collision.Shape
	switch {
	case len(o.Polygon) > 0 && len(o.Segment) > 0:
		return shape, fmt.Errorf("both polygon and segment set")
	case len(o.Polygon) > 0:
		poly := make(collision.Polygon, len(o.Polygon))
		for i, p := range o.Polygon {
			poly[i] = p.Vec()
		}
		shape = collision.PolygonShape(poly)
	case len(o.Segment) == 2:
		shape = collision.SegmentShape(o.Segment[0].Vec(), o.Segment[1].Vec())
	case len(o.Segment) > 0:
		return shape, fmt.Errorf("segment needs 2 points, got %d", len(o.Segment))
	default:
		return shape, fmt.Errorf("neither polygon nor segment set")
	}
	if err := shape.Validate(); err != nil {
		return shape, err
	}
	return shape, nil
}

// Build creates the obstacle set; every call assigns fresh IDs
func (s *Scene) Build() (*StaticSet, error) {
	obstacles := make([]Obstacle, 0, len(s.Obstacles))
	for i, def := range s.Obstacles {
		shape, err := def.Shape()
		if err != nil {
			return nil, fmt.Errorf("scene %q: obstacle %d: %w", s.Name, i, err)
		}
		o, err := NewObstacle(def.Kind, shape)
		if err != nil {
			return nil, fmt.Errorf("scene %q: obstacle %d: %w", s.Name, i, err)
		}
		if def.Friction != nil {
			o.Friction = *def.Friction
		}
		obstacles = append(obstacles, o)
	}
	return NewStaticSet(obstacles...), nil
}
