package collision

import (
	"fmt"
	"math"

	"github.com/elle-trudgett/luna/vmath"
)

// Polygon is an ordered convex vertex loop; edge i joins vertex i to vertex (i+1) mod n
// Winding may be clockwise or counter-clockwise; the kernel never mutates it
type Polygon []vmath.Vec2

// Segment is a bare edge obstacle, e.g. a level boundary
type Segment struct {
	A, B vmath.Vec2
}

// ShapeKind tags the active member of Shape
type ShapeKind uint8

const (
	// ShapePolygon is a filled convex region
	ShapePolygon ShapeKind = iota
	// ShapeSegment is a line segment with no interior
	ShapeSegment
)

func (k ShapeKind) String() string {
	switch k {
	case ShapePolygon:
		return "polygon"
	case ShapeSegment:
		return "segment"
	default:
		return fmt.Sprintf("ShapeKind(%d)", uint8(k))
	}
}

// Shape is an obstacle geometry: exactly one of Polygon or Segment is meaningful, selected by Kind
type Shape struct {
	Kind    ShapeKind
	Polygon Polygon
	Segment Segment
}

// PolygonShape wraps a polygon as a Shape
func PolygonShape(p Polygon) Shape {
	return Shape{Kind: ShapePolygon, Polygon: p}
}

// SegmentShape wraps segment [a, b] as a Shape
func SegmentShape(a, b vmath.Vec2) Shape {
	return Shape{Kind: ShapeSegment, Segment: Segment{A: a, B: b}}
}

// Rect returns the axis-aligned rectangle [minX, maxX] x [minY, maxY] in counter-clockwise order
func Rect(minX, minY, maxX, maxY float64) Polygon {
	return Polygon{
		{X: minX, Y: minY},
		{X: maxX, Y: minY},
		{X: maxX, Y: maxY},
		{X: minX, Y: maxY},
	}
}

// --- Validation ---

// Validate checks vertex count, finiteness and area
func (p Polygon) Validate() error {
	if len(p) < 3 {
		return fmt.Errorf("polygon with %d vertices: %w", len(p), ErrDegenerateShape)
	}
	for i, v := range p {
		if !vmath.V2IsFinite(v) {
			return fmt.Errorf("polygon vertex %d (%v, %v): %w", i, v.X, v.Y, ErrInvalidInput)
		}
	}
	if math.Abs(vmath.PolygonArea(p)) <= vmath.AreaEpsilon {
		return fmt.Errorf("polygon has zero area: %w", ErrDegenerateShape)
	}
	return nil
}

// Validate checks finiteness and non-zero length
func (s Segment) Validate() error {
	if !vmath.V2IsFinite(s.A) || !vmath.V2IsFinite(s.B) {
		return fmt.Errorf("segment endpoint: %w", ErrInvalidInput)
	}
	if s.A == s.B {
		return fmt.Errorf("segment has zero length: %w", ErrDegenerateShape)
	}
	return nil
}

// Validate checks the active member
func (s Shape) Validate() error {
	switch s.Kind {
	case ShapePolygon:
		return s.Polygon.Validate()
	case ShapeSegment:
		return s.Segment.Validate()
	default:
		return fmt.Errorf("unknown shape kind %d: %w", s.Kind, ErrInvalidInput)
	}
}

// --- Geometry accessors ---

// Vertices returns the vertex list of the active member; segments yield [A, B]
func (s Shape) Vertices() []vmath.Vec2 {
	switch s.Kind {
	case ShapePolygon:
		return s.Polygon
	case ShapeSegment:
		return []vmath.Vec2{s.Segment.A, s.Segment.B}
	default:
		return nil
	}
}

// EdgeCount returns the number of boundary edges: n for polygons, 1 for segments
func (s Shape) EdgeCount() int {
	switch s.Kind {
	case ShapePolygon:
		return len(s.Polygon)
	case ShapeSegment:
		return 1
	default:
		return 0
	}
}

// Edge returns boundary edge i
func (s Shape) Edge(i int) (vmath.Vec2, vmath.Vec2) {
	switch s.Kind {
	case ShapePolygon:
		return s.Polygon.Edge(i)
	case ShapeSegment:
		return s.Segment.A, s.Segment.B
	default:
		return vmath.Vec2{}, vmath.Vec2{}
	}
}

// Edge returns edge i, joining vertex i to vertex (i+1) mod n
func (p Polygon) Edge(i int) (vmath.Vec2, vmath.Vec2) {
	return p[i], p[(i+1)%len(p)]
}

// Support returns the vertex farthest along dir (first on ties)
func (s Shape) Support(dir vmath.Vec2) vmath.Vec2 {
	switch s.Kind {
	case ShapePolygon:
		return s.Polygon.Support(dir)
	case ShapeSegment:
		if vmath.V2Dot(s.Segment.B, dir) > vmath.V2Dot(s.Segment.A, dir) {
			return s.Segment.B
		}
		return s.Segment.A
	default:
		return vmath.Vec2{}
	}
}

// Support returns the vertex farthest along dir (first on ties)
func (p Polygon) Support(dir vmath.Vec2) vmath.Vec2 {
	best := p[0]
	bestDot := vmath.V2Dot(best, dir)
	for _, v := range p[1:] {
		if d := vmath.V2Dot(v, dir); d > bestDot {
			best, bestDot = v, d
		}
	}
	return best
}

// Project returns the [min, max] interval of the shape projected on axis
func (s Shape) Project(axis vmath.Vec2) (float64, float64) {
	lo := math.Inf(1)
	hi := math.Inf(-1)
	for _, v := range s.Vertices() {
		d := vmath.V2Dot(v, axis)
		lo = math.Min(lo, d)
		hi = math.Max(hi, d)
	}
	return lo, hi
}

// Center returns the vertex average
func (s Shape) Center() vmath.Vec2 {
	verts := s.Vertices()
	if len(verts) == 0 {
		return vmath.Vec2{}
	}
	var sum vmath.Vec2
	for _, v := range verts {
		sum = vmath.V2Add(sum, v)
	}
	return vmath.V2Scale(sum, 1/float64(len(verts)))
}

// Bounds returns the axis-aligned bounding box
func (s Shape) Bounds() AABB {
	return BoundsOf(s.Vertices())
}

// Translate returns a copy offset by d
func (p Polygon) Translate(d vmath.Vec2) Polygon {
	out := make(Polygon, len(p))
	for i, v := range p {
		out[i] = vmath.V2Add(v, d)
	}
	return out
}

// Translate returns a copy offset by d
func (s Shape) Translate(d vmath.Vec2) Shape {
	switch s.Kind {
	case ShapePolygon:
		return PolygonShape(s.Polygon.Translate(d))
	case ShapeSegment:
		return SegmentShape(vmath.V2Add(s.Segment.A, d), vmath.V2Add(s.Segment.B, d))
	default:
		return s
	}
}

// Area returns the unsigned area
func (p Polygon) Area() float64 {
	return math.Abs(vmath.PolygonArea(p))
}

// ContainsPoint reports whether pt lies inside the polygon or within eps of its boundary
func (p Polygon) ContainsPoint(pt vmath.Vec2, eps float64) bool {
	n := len(p)
	winding := vmath.Sign(vmath.PolygonArea(p), 0)
	if winding == 0 {
		return false
	}
	for i := 0; i < n; i++ {
		a, b := p.Edge(i)
		edgeLen := vmath.V2Dist(a, b)
		if edgeLen == 0 {
			continue
		}
		// Signed distance to the edge line, positive on the inner side
		d := vmath.Orient(a, b, pt) / edgeLen * float64(winding)
		if d < -eps {
			return false
		}
	}
	return true
}

// ContainsPoint reports whether pt lies within eps of the shape
// Segments have no interior, so only points on the segment count
func (s Shape) ContainsPoint(pt vmath.Vec2, eps float64) bool {
	switch s.Kind {
	case ShapePolygon:
		return s.Polygon.ContainsPoint(pt, eps)
	case ShapeSegment:
		c, _ := vmath.ClosestPointOnSegment(pt, s.Segment.A, s.Segment.B)
		return vmath.V2Dist(c, pt) <= eps
	default:
		return false
	}
}

// --- AABB ---

// AABB is an axis-aligned bounding box
type AABB struct {
	Min, Max vmath.Vec2
}

// BoundsOf returns the bounding box of points; empty input yields the zero box
func BoundsOf(points []vmath.Vec2) AABB {
	if len(points) == 0 {
		return AABB{}
	}
	b := AABB{Min: points[0], Max: points[0]}
	for _, p := range points[1:] {
		b.Min.X = math.Min(b.Min.X, p.X)
		b.Min.Y = math.Min(b.Min.Y, p.Y)
		b.Max.X = math.Max(b.Max.X, p.X)
		b.Max.Y = math.Max(b.Max.Y, p.Y)
	}
	return b
}

// Overlaps reports whether the boxes intersect, touching included
func (b AABB) Overlaps(o AABB) bool {
	return b.Min.X <= o.Max.X && o.Min.X <= b.Max.X &&
		b.Min.Y <= o.Max.Y && o.Min.Y <= b.Max.Y
}

// Union returns the smallest box covering both
func (b AABB) Union(o AABB) AABB {
	return AABB{
		Min: vmath.Vec2{X: math.Min(b.Min.X, o.Min.X), Y: math.Min(b.Min.Y, o.Min.Y)},
		Max: vmath.Vec2{X: math.Max(b.Max.X, o.Max.X), Y: math.Max(b.Max.Y, o.Max.Y)},
	}
}

// Expand grows the box by margin on every side
func (b AABB) Expand(margin float64) AABB {
	return AABB{
		Min: vmath.Vec2{X: b.Min.X - margin, Y: b.Min.Y - margin},
		Max: vmath.Vec2{X: b.Max.X + margin, Y: b.Max.Y + margin},
	}
}

// Center returns the box midpoint
func (b AABB) Center() vmath.Vec2 {
	return vmath.V2Lerp(b.Min, b.Max, 0.5)
}

// DistanceTo returns the distance from p to the box, zero inside
func (b AABB) DistanceTo(p vmath.Vec2) float64 {
	dx := math.Max(math.Max(b.Min.X-p.X, 0), p.X-b.Max.X)
	dy := math.Max(math.Max(b.Min.Y-p.Y, 0), p.Y-b.Max.Y)
	return math.Hypot(dx, dy)
}
