package collision

import (
	"fmt"
	"math"

	"github.com/elle-trudgett/luna/vmath"
)

// Tolerances tune the numeric behaviour of the resolver
type Tolerances struct {
	// Epsilon is the distance under which features count as coincident
	Epsilon float64 `yaml:"epsilon"`
	// MaxIterations bounds the GJK and EPA loops
	MaxIterations int `yaml:"max_iterations"`
}

// DefaultTolerances suit coordinates in the unit-to-thousands range
var DefaultTolerances = Tolerances{
	Epsilon:       1e-9,
	MaxIterations: 64,
}

// Validate rejects non-positive or non-finite settings
func (t Tolerances) Validate() error {
	if !vmath.IsFinite(t.Epsilon) || t.Epsilon <= 0 {
		return fmt.Errorf("epsilon %v must be positive and finite: %w", t.Epsilon, ErrInvalidInput)
	}
	if t.MaxIterations <= 0 {
		return fmt.Errorf("max iterations %d must be positive: %w", t.MaxIterations, ErrInvalidInput)
	}
	return nil
}

// Resolver carries tolerances; the zero value is not usable, start from DefaultResolver or NewResolver
type Resolver struct {
	Tolerances Tolerances
}

// DefaultResolver backs the package-level functions
var DefaultResolver = Resolver{Tolerances: DefaultTolerances}

// NewResolver validates tolerances and returns a resolver using them
func NewResolver(t Tolerances) (Resolver, error) {
	if err := t.Validate(); err != nil {
		return Resolver{}, err
	}
	return Resolver{Tolerances: t}, nil
}

// MovementResult is the outcome of one MoveInto call
// Without collision, Displacement is the requested displacement unchanged
// With collision it is either the safe prefix of the request or, when the shapes
// already overlapped, a separating correction
type MovementResult struct {
	Collision    bool
	Displacement vmath.Vec2
}

// Case identifies which branch of MoveInto produced a result
type Case uint8

const (
	// CaseClear means no contact anywhere along the path
	CaseClear Case = iota
	// CaseOverlapping means the shapes overlapped before moving and a correction was returned
	CaseOverlapping
	// CaseContact means the path was shortened at the first blocking feature
	CaseContact
)

func (c Case) String() string {
	switch c {
	case CaseClear:
		return "clear"
	case CaseOverlapping:
		return "overlapping"
	case CaseContact:
		return "contact"
	default:
		return fmt.Sprintf("Case(%d)", uint8(c))
	}
}

// RayKind identifies where a probe ray started
type RayKind uint8

const (
	// RayNearest starts at one of the nearest boundary points
	RayNearest RayKind = iota
	// RayVertex starts at a vertex
	RayVertex
)

// Ray is one probe cast during contact resolution
type Ray struct {
	Kind RayKind
	// FromObstacle rays start on the obstacle and travel against the displacement
	FromObstacle bool
	Origin       vmath.Vec2
	Direction    vmath.Vec2
	Hit          bool
	Distance     float64
}

// Trace is the optional diagnostic record of one MoveInto call
type Trace struct {
	Case Case
	// Swept is the swept moving polygon; nil when the overlap or zero-motion branch returned early
	Swept           Polygon
	NearestMoving   vmath.Vec2
	NearestObstacle vmath.Vec2
	NearestDistance float64
	Rays            []Ray
	// Correction is the separating vector of the overlapping branch
	Correction vmath.Vec2
}

// MoveInto resolves moving translating by displacement against obstacle using DefaultResolver
func MoveInto(moving Polygon, displacement vmath.Vec2, obstacle Shape) (MovementResult, error) {
	return DefaultResolver.moveInto(moving, displacement, obstacle, nil)
}

// MoveIntoTraced is MoveInto that also returns diagnostics
func MoveIntoTraced(moving Polygon, displacement vmath.Vec2, obstacle Shape) (MovementResult, Trace, error) {
	return DefaultResolver.MoveIntoTraced(moving, displacement, obstacle)
}

// MoveInto resolves moving translating by displacement against obstacle
//
// Branches, in order:
//  1. interiors already overlap: collision with the minimum translation as displacement,
//     ties broken against the requested motion
//  2. zero displacement, or the swept polygon neither overlaps nor contains the obstacle:
//     no collision, displacement returned unchanged
//  3. otherwise probe rays are cast from the nearest boundary points and from every vertex
//     of both shapes; the shortest hit bounds the motion
func (r Resolver) MoveInto(moving Polygon, displacement vmath.Vec2, obstacle Shape) (MovementResult, error) {
	return r.moveInto(moving, displacement, obstacle, nil)
}

// MoveIntoTraced is MoveInto that also returns diagnostics
func (r Resolver) MoveIntoTraced(moving Polygon, displacement vmath.Vec2, obstacle Shape) (MovementResult, Trace, error) {
	var trace Trace
	res, err := r.moveInto(moving, displacement, obstacle, &trace)
	return res, trace, err
}

func (r Resolver) moveInto(moving Polygon, displacement vmath.Vec2, obstacle Shape, trace *Trace) (MovementResult, error) {
	if err := moving.Validate(); err != nil {
		return MovementResult{}, fmt.Errorf("move into: moving: %w", err)
	}
	if err := obstacle.Validate(); err != nil {
		return MovementResult{}, fmt.Errorf("move into: obstacle: %w", err)
	}
	if !vmath.V2IsFinite(displacement) {
		return MovementResult{}, fmt.Errorf("move into: displacement (%v, %v): %w",
			displacement.X, displacement.Y, ErrInvalidInput)
	}

	eps := r.Tolerances.Epsilon
	movingShape := PolygonShape(moving)
	clear := MovementResult{Collision: false, Displacement: displacement}

	// 1. Already overlapping
	if Overlaps(movingShape, obstacle, eps) {
		mtv, err := r.minimumTranslation(movingShape, obstacle, displacement)
		if err != nil {
			return MovementResult{}, fmt.Errorf("move into: %w", err)
		}
		if trace != nil {
			trace.Case = CaseOverlapping
			trace.Correction = mtv
		}
		return MovementResult{Collision: true, Displacement: mtv}, nil
	}

	// 2. No potential contact
	if vmath.V2IsZero(displacement) {
		return clear, nil
	}
	swept := sweep(moving, displacement)
	if trace != nil {
		trace.Swept = swept
	}
	if !Overlaps(PolygonShape(swept), obstacle, eps) && !Contains(swept, obstacle, eps) {
		return clear, nil
	}

	// 3. Potential contact
	dir, ok := vmath.V2NormalizeChecked(displacement)
	if !ok {
		return MovementResult{}, fmt.Errorf("move into: normalize displacement: %w", ErrInvalidInput)
	}
	length := vmath.V2Mag(displacement)
	back := vmath.V2Neg(displacement)

	minDist := math.Inf(1)
	cast := func(kind RayKind, fromObstacle bool, origin, ray vmath.Vec2, target Shape) {
		dist, hit := CastRay(origin, ray, target, eps)
		if hit {
			minDist = math.Min(minDist, dist)
		}
		if trace != nil {
			trace.Rays = append(trace.Rays, Ray{
				Kind:         kind,
				FromObstacle: fromObstacle,
				Origin:       origin,
				Direction:    ray,
				Hit:          hit,
				Distance:     dist,
			})
		}
	}

	pa, pb, nearest := NearestPoints(movingShape, obstacle)
	if trace != nil {
		trace.NearestMoving = pa
		trace.NearestObstacle = pb
		trace.NearestDistance = nearest
	}
	cast(RayNearest, false, pa, displacement, obstacle)
	cast(RayNearest, true, pb, back, movingShape)
	for _, v := range moving {
		cast(RayVertex, false, v, displacement, obstacle)
	}
	for _, v := range obstacle.Vertices() {
		cast(RayVertex, true, v, back, movingShape)
	}

	if math.IsInf(minDist, 1) {
		return clear, nil
	}

	if trace != nil {
		trace.Case = CaseContact
	}
	if minDist <= eps {
		return MovementResult{Collision: true}, nil
	}
	safe := vmath.V2Scale(dir, math.Min(minDist, length))
	if !vmath.V2IsFinite(safe) {
		return MovementResult{}, fmt.Errorf("move into: non-finite displacement: %w", ErrInvalidInput)
	}
	return MovementResult{Collision: true, Displacement: safe}, nil
}
