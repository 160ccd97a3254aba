package physics

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"
)

// Digest hashes the simulation state of bodies in order
// Equal digests across two runs indicate a deterministic replay
func Digest(bodies ...*Body) uint64 {
	h := xxhash.New()
	var buf [8]byte
	put := func(f float64) {
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(f))
		_, _ = h.Write(buf[:])
	}
	for _, b := range bodies {
		put(b.Position.X)
		put(b.Position.Y)
		put(b.Velocity.X)
		put(b.Velocity.Y)
		put(b.Width)
		put(b.Height)
		put(b.GroundFriction)
		grounded := byte(0)
		if b.OnGround {
			grounded = 1
		}
		_, _ = h.Write([]byte{grounded})
	}
	return h.Sum64()
}
