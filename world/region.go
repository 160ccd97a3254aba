package world

import (
	"fmt"
	"strings"
)

// RegionKind designates how an obstacle behaves in the world
type RegionKind uint8

const (
	// RegionGround is static geometry the player stands on and collides with
	RegionGround RegionKind = iota
	// RegionDeathZone kills on contact and never blocks
	RegionDeathZone
	// RegionPlatform blocks only downward motion from above (one-way)
	RegionPlatform
	// RegionWall is blocking side geometry
	RegionWall
	// RegionCeiling is blocking overhead geometry
	RegionCeiling
)

var regionNames = [...]string{
	RegionGround:    "ground",
	RegionDeathZone: "death_zone",
	RegionPlatform:  "platform",
	RegionWall:      "wall",
	RegionCeiling:   "ceiling",
}

func (k RegionKind) String() string {
	if int(k) < len(regionNames) {
		return regionNames[k]
	}
	return fmt.Sprintf("RegionKind(%d)", uint8(k))
}

// ParseRegionKind accepts the names produced by String, case-insensitive
func ParseRegionKind(s string) (RegionKind, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range regionNames {
		if n == name {
			return RegionKind(i), nil
		}
	}
	return 0, fmt.Errorf("unknown region kind %q", s)
}

// MarshalText implements encoding.TextMarshaler
func (k RegionKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (k *RegionKind) UnmarshalText(text []byte) error {
	parsed, err := ParseRegionKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// Blocking reports whether the region stops movement at all
func (k RegionKind) Blocking() bool {
	return k != RegionDeathZone
}

// DefaultFriction is the ground friction used when a scene omits one
func (k RegionKind) DefaultFriction() float64 {
	switch k {
	case RegionGround, RegionPlatform:
		return 1.0
	case RegionWall, RegionCeiling:
		return 0.8
	default:
		return 0
	}
}
