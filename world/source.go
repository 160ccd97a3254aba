package world

import (
	"encoding/binary"
	"math"
	"slices"
	"sync"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"

	"github.com/elle-trudgett/luna/collision"
)

// Source returns candidate obstacles near a query region
// Implementations stand in for the broad-phase spatial index; results may include
// obstacles that end up not touching the region
type Source interface {
	Query(bounds collision.AABB) []Obstacle
}

// StaticSet is a linear Source over a fixed obstacle list
// Query is safe for concurrent use; Add takes a write lock
type StaticSet struct {
	mu        sync.RWMutex
	obstacles []Obstacle
}

var _ Source = (*StaticSet)(nil)

// NewStaticSet returns a set holding obstacles in the given order
func NewStaticSet(obstacles ...Obstacle) *StaticSet {
	return &StaticSet{obstacles: slices.Clone(obstacles)}
}

// Add appends obstacles
func (s *StaticSet) Add(obstacles ...Obstacle) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.obstacles = append(s.obstacles, obstacles...)
}

// Len returns the obstacle count
func (s *StaticSet) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.obstacles)
}

// All returns a copy of every obstacle in insertion order
func (s *StaticSet) All() []Obstacle {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.obstacles)
}

// Get looks an obstacle up by ID
func (s *StaticSet) Get(id uuid.UUID) (Obstacle, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, o := range s.obstacles {
		if o.ID == id {
			return o, true
		}
	}
	return Obstacle{}, false
}

// Query returns obstacles whose bounds touch bounds, nearest to its centre first
// Ties keep insertion order
func (s *StaticSet) Query(bounds collision.AABB) []Obstacle {
	s.mu.RLock()
	defer s.mu.RUnlock()

	center := bounds.Center()
	type candidate struct {
		obstacle Obstacle
		dist     float64
	}
	candidates := make([]candidate, 0, len(s.obstacles))
	for _, o := range s.obstacles {
		b := o.Bounds()
		if !b.Overlaps(bounds) {
			continue
		}
		candidates = append(candidates, candidate{obstacle: o, dist: b.DistanceTo(center)})
	}
	slices.SortStableFunc(candidates, func(a, b candidate) int {
		switch {
		case a.dist < b.dist:
			return -1
		case a.dist > b.dist:
			return 1
		default:
			return 0
		}
	})

	out := make([]Obstacle, len(candidates))
	for i, c := range candidates {
		out[i] = c.obstacle
	}
	return out
}

// Fingerprint hashes the geometry and designation of every obstacle, ignoring IDs
// Two sets built from the same scene share a fingerprint
func (s *StaticSet) Fingerprint() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	h := xxhash.New()
	var buf [8]byte
	writeFloat := func(f float64) {
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(f))
		_, _ = h.Write(buf[:])
	}
	for _, o := range s.obstacles {
		_, _ = h.Write([]byte{byte(o.Kind), byte(o.Shape.Kind)})
		writeFloat(o.Friction)
		verts := o.Shape.Vertices()
		binary.LittleEndian.PutUint64(buf[:], uint64(len(verts)))
		_, _ = h.Write(buf[:])
		for _, v := range verts {
			writeFloat(v.X)
			writeFloat(v.Y)
		}
	}
	return h.Sum64()
}
