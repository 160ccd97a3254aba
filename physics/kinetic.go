package physics

import (
	"math"

	"github.com/google/uuid"

	"github.com/elle-trudgett/luna/collision"
	"github.com/elle-trudgett/luna/vmath"
	"github.com/elle-trudgett/luna/world"
)

// queryMargin pads the broad-phase query so touching obstacles are returned
const queryMargin = 1e-3

// Body is a kinematic platformer body with an axis-aligned hitbox
// Position is the bottom-centre of the hitbox; Y points up
type Body struct {
	Position vmath.Vec2
	Velocity vmath.Vec2
	Width    float64
	Height   float64

	// Input is the horizontal control in [-1, 1]
	Input    float64
	OnGround bool
	// GroundFriction is the friction of the surface last landed on
	GroundFriction float64

	Profile MovementProfile

	jumpQueued bool
}

// StepReport describes one Body.Step
type StepReport struct {
	Horizontal StepResult
	Vertical   StepResult
	Landed     bool
	Died       bool
	// Err is the first kernel error of the step; motion on that axis was cancelled
	Err error
}

// NewBody places a body with the given hitbox and profile
func NewBody(position vmath.Vec2, width, height float64, profile MovementProfile) *Body {
	return &Body{
		Position: position,
		Width:    width,
		Height:   height,
		Profile:  profile,
	}
}

// Hitbox returns the current hitbox polygon
func (b *Body) Hitbox() collision.Polygon {
	return b.hitboxAt(b.Position)
}

func (b *Body) hitboxAt(pos vmath.Vec2) collision.Polygon {
	half := b.Width / 2
	return collision.Rect(pos.X-half, pos.Y, pos.X+half, pos.Y+b.Height)
}

// SetInput sets horizontal control, clamped to [-1, 1]
func (b *Body) SetInput(h float64) {
	b.Input = vmath.Clamp(h, -1, 1)
}

// Jump queues a jump for the next step; ignored unless grounded at that time
func (b *Body) Jump() {
	b.jumpQueued = true
}

// Integrate applies gravity, the queued jump and the speed caps: v = v + a*dt
func (b *Body) Integrate(dt float64) {
	if b.jumpQueued && b.OnGround {
		b.Velocity.Y += b.Profile.JumpStrength
		b.OnGround = false
	}
	b.jumpQueued = false

	b.Velocity.Y += b.Profile.Gravity * dt

	b.Velocity.X = vmath.Clamp(b.Velocity.X, -b.Profile.MaxSpeed, b.Profile.MaxSpeed)
	if b.Velocity.Y < b.Profile.TerminalVelocity {
		b.Velocity.Y = b.Profile.TerminalVelocity
	}
}

// Step advances the body by dt against obstacles from src
// Motion resolves horizontally then vertically so walls and ground constrain independently
func (b *Body) Step(dt float64, src world.Source, m *Mover) StepReport {
	var report StepReport

	b.Integrate(dt)
	displacement := vmath.V2Scale(b.Velocity, dt)

	hitbox := b.Hitbox()
	bounds := hitbox.Translate(displacement)
	query := collision.BoundsOf(hitbox).Union(collision.BoundsOf(bounds)).Expand(queryMargin)
	candidates := src.Query(query)

	// Horizontal pass
	report.Horizontal = m.Resolve(hitbox, vmath.Vec2{X: displacement.X}, b.blockers(candidates, 0))
	b.Position = vmath.V2Add(b.Position, report.Horizontal.Displacement)
	if report.Horizontal.Collision {
		b.Velocity.X = 0
	}
	if report.Horizontal.Err != nil {
		report.Err = report.Horizontal.Err
	}

	// Vertical pass
	report.Vertical = m.Resolve(b.Hitbox(), vmath.Vec2{Y: displacement.Y}, b.blockers(candidates, displacement.Y))
	b.Position = vmath.V2Add(b.Position, report.Vertical.Displacement)
	if report.Vertical.Err != nil && report.Err == nil {
		report.Err = report.Vertical.Err
	}

	wasGrounded := b.OnGround
	b.OnGround = false
	if report.Vertical.Collision {
		if displacement.Y <= 0 {
			b.OnGround = true
			b.GroundFriction = b.surfaceFriction(candidates, report.Vertical.Blocking)
		}
		b.Velocity.Y = 0
	}
	report.Landed = b.OnGround && !wasGrounded

	b.applyInput(dt)
	report.Died = b.touchesDeathZone(candidates)
	return report
}

// blockers filters candidates to those that can stop motion with vertical component vy
// Platforms block only bodies falling onto them from above
func (b *Body) blockers(candidates []world.Obstacle, vy float64) []world.Obstacle {
	out := make([]world.Obstacle, 0, len(candidates))
	feet := b.Position.Y
	for _, o := range candidates {
		if !o.Kind.Blocking() {
			continue
		}
		if o.Kind == world.RegionPlatform && (vy >= 0 || feet < o.Bounds().Max.Y-queryMargin) {
			continue
		}
		out = append(out, o)
	}
	return out
}

func (b *Body) surfaceFriction(candidates []world.Obstacle, blocking []uuid.UUID) float64 {
	for i := len(blocking) - 1; i >= 0; i-- {
		for _, o := range candidates {
			if o.ID == blocking[i] {
				return o.Friction
			}
		}
	}
	return b.Profile.AirFriction
}

// applyInput accelerates from input and decelerates without it, scaled by friction
func (b *Body) applyInput(dt float64) {
	friction := b.Profile.AirFriction
	if b.OnGround {
		friction = b.GroundFriction
	}
	rate := friction * b.Profile.Acceleration * dt

	if b.Input != 0 {
		b.Velocity.X += b.Input * rate
		b.Velocity.X = vmath.Clamp(b.Velocity.X, -b.Profile.MaxSpeed, b.Profile.MaxSpeed)
		return
	}
	if math.Abs(b.Velocity.X) <= rate {
		b.Velocity.X = 0
		return
	}
	b.Velocity.X -= math.Copysign(rate, b.Velocity.X)
}

func (b *Body) touchesDeathZone(candidates []world.Obstacle) bool {
	hitbox := collision.PolygonShape(b.Hitbox())
	for _, o := range candidates {
		if o.Kind != world.RegionDeathZone {
			continue
		}
		if collision.Overlaps(hitbox, o.Shape, 0) {
			return true
		}
		if _, _, d := collision.NearestPoints(hitbox, o.Shape); d <= queryMargin {
			return true
		}
	}
	return false
}
