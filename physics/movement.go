package physics

import (
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/elle-trudgett/luna/collision"
	"github.com/elle-trudgett/luna/vmath"
	"github.com/elle-trudgett/luna/world"
)

// CapSpeed limits the velocity vector magnitude to maxSpeed
// Returns true if velocity was clamped
func CapSpeed(vel *vmath.Vec2, maxSpeed float64) bool {
	if vmath.V2MagSq(*vel) <= maxSpeed*maxSpeed {
		return false
	}
	*vel = vmath.V2ClampMagnitude(*vel, maxSpeed)
	return true
}

// StepResult is the outcome of resolving one displacement against a list of obstacles
type StepResult struct {
	Collision    bool
	Displacement vmath.Vec2
	// Blocking lists, in resolution order, the obstacles that shortened or corrected the move
	Blocking []uuid.UUID
	// Traces holds one entry per obstacle tested when the mover has tracing enabled
	Traces []collision.Trace
	// Err is the kernel error that forced a fail-safe result
	Err error
}

// Mover resolves displacements against several obstacles in sequence
// Each obstacle sees the residual displacement left by the previous one; corners
// constrained by two obstacles are therefore approximated, not solved jointly
type Mover struct {
	Resolver collision.Resolver
	Logger   *zap.Logger
	// Trace collects per-obstacle diagnostics into StepResult.Traces
	Trace bool
}

// NewMover returns a mover; a nil logger discards output
func NewMover(resolver collision.Resolver, logger *zap.Logger) *Mover {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Mover{Resolver: resolver, Logger: logger}
}

// Resolve applies every obstacle in order to displacement
// Kernel errors fail safe: zero displacement, collision asserted, error kept in StepResult.Err
func (m *Mover) Resolve(moving collision.Polygon, displacement vmath.Vec2, obstacles []world.Obstacle) StepResult {
	res := StepResult{Displacement: displacement}

	for _, o := range obstacles {
		var (
			r     collision.MovementResult
			trace collision.Trace
			err   error
		)
		if m.Trace {
			r, trace, err = m.Resolver.MoveIntoTraced(moving, res.Displacement, o.Shape)
			res.Traces = append(res.Traces, trace)
		} else {
			r, err = m.Resolver.MoveInto(moving, res.Displacement, o.Shape)
		}

		if err != nil {
			m.Logger.Warn("movement failed safe",
				zap.Stringer("obstacle", o.ID),
				zap.Stringer("kind", o.Kind),
				zap.Error(err),
			)
			res.Collision = true
			res.Displacement = vmath.Vec2{}
			res.Blocking = append(res.Blocking, o.ID)
			res.Err = err
			return res
		}
		if !r.Collision {
			continue
		}

		m.Logger.Debug("movement constrained",
			zap.Stringer("obstacle", o.ID),
			zap.Stringer("kind", o.Kind),
			zap.Float64("requested_x", res.Displacement.X),
			zap.Float64("requested_y", res.Displacement.Y),
			zap.Float64("resolved_x", r.Displacement.X),
			zap.Float64("resolved_y", r.Displacement.Y),
		)
		res.Collision = true
		res.Displacement = r.Displacement
		res.Blocking = append(res.Blocking, o.ID)
	}
	return res
}
