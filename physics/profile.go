package physics

import (
	"fmt"

	"github.com/elle-trudgett/luna/vmath"
)

// MovementProfile holds per-step tuning for a kinematic body
// Units are world units and seconds; Y points up
type MovementProfile struct {
	Gravity          float64 `yaml:"gravity"`           // Vertical acceleration (negative pulls down)
	Acceleration     float64 `yaml:"acceleration"`      // Horizontal input acceleration before friction
	MaxSpeed         float64 `yaml:"max_speed"`         // Horizontal speed cap
	TerminalVelocity float64 `yaml:"terminal_velocity"` // Lowest vertical velocity (negative)
	JumpStrength     float64 `yaml:"jump_strength"`     // Vertical velocity added by a jump
	AirFriction      float64 `yaml:"air_friction"`      // Friction factor while airborne
}

// Movement profiles - pre-defined presets

// PlayerProfile matches the platformer's pixel-scale player tuning
var PlayerProfile = MovementProfile{
	Gravity:          -2000,
	Acceleration:     5000,
	MaxSpeed:         600,
	TerminalVelocity: -5000,
	JumpStrength:     800,
	AirFriction:      0.25,
}

// UnitProfile is PlayerProfile scaled for one-unit tiles, used by tests and small scenes
var UnitProfile = MovementProfile{
	Gravity:          -40,
	Acceleration:     100,
	MaxSpeed:         12,
	TerminalVelocity: -100,
	JumpStrength:     16,
	AirFriction:      0.25,
}

// Validate rejects profiles that cannot produce sane motion
func (p MovementProfile) Validate() error {
	for name, v := range map[string]float64{
		"gravity":           p.Gravity,
		"acceleration":      p.Acceleration,
		"max_speed":         p.MaxSpeed,
		"terminal_velocity": p.TerminalVelocity,
		"jump_strength":     p.JumpStrength,
		"air_friction":      p.AirFriction,
	} {
		if !vmath.IsFinite(v) {
			return fmt.Errorf("movement profile: %s is not finite", name)
		}
	}
	if p.MaxSpeed <= 0 {
		return fmt.Errorf("movement profile: max_speed %v must be positive", p.MaxSpeed)
	}
	if p.TerminalVelocity >= 0 {
		return fmt.Errorf("movement profile: terminal_velocity %v must be negative", p.TerminalVelocity)
	}
	if p.Acceleration < 0 || p.JumpStrength < 0 || p.AirFriction < 0 {
		return fmt.Errorf("movement profile: acceleration, jump_strength and air_friction must be non-negative")
	}
	return nil
}
