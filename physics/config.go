package physics

import (
	"fmt"

	"github.com/lixenwraith/beatfield/parameter"
)

// Config holds every tunable of the integrator. An explicit struct rather
// than package-level state so test instances are independent and a config
// file can override individual fields
type Config struct {
	// World extent; the spatial index covers exactly this rectangle
	Width, Height float64

	// Gravity is downward acceleration per unit mass at the 60 FPS reference
	Gravity float64

	// Drag is the per-frame velocity retention factor, in (0, 1]
	Drag float64

	// WallDamping and FloorDamping are velocity retention on reflection;
	// the floor absorbs more than the walls
	WallDamping  float64
	FloorDamping float64

	// Repulsion scales the inverse-distance impulse between overlapping pairs
	Repulsion float64

	// NeighborWindowFactor sizes each particle's query window as a
	// multiple of its radius
	NeighborWindowFactor float64

	// QuadTreeCapacity is max particles per leaf before subdivision
	QuadTreeCapacity int

	// BounceThreshold gates floor launches; BounceImpulse scales them
	BounceThreshold float64
	BounceImpulse   float64
}

// DefaultConfig returns the tuning from the parameter package for a world
// of the given extent
func DefaultConfig(width, height float64) Config {
	return Config{
		Width:                width,
		Height:               height,
		Gravity:              parameter.Gravity,
		Drag:                 parameter.Drag,
		WallDamping:          parameter.WallDamping,
		FloorDamping:         parameter.FloorDamping,
		Repulsion:            parameter.RepulsionStrength,
		NeighborWindowFactor: parameter.NeighborWindowFactor,
		QuadTreeCapacity:     parameter.QuadTreeCapacity,
		BounceThreshold:      parameter.BounceThreshold,
		BounceImpulse:        parameter.BounceImpulse,
	}
}

// Validate rejects out-of-range tuning at construction time
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("world extent must be positive, got %gx%g", c.Width, c.Height)
	}
	if c.Drag <= 0 || c.Drag > 1 {
		return fmt.Errorf("drag must be in (0, 1], got %g", c.Drag)
	}
	if c.WallDamping < 0 || c.WallDamping > 1 {
		return fmt.Errorf("wall damping must be in [0, 1], got %g", c.WallDamping)
	}
	if c.FloorDamping < 0 || c.FloorDamping > 1 {
		return fmt.Errorf("floor damping must be in [0, 1], got %g", c.FloorDamping)
	}
	if c.QuadTreeCapacity < 1 {
		return fmt.Errorf("quadtree capacity must be >= 1, got %d", c.QuadTreeCapacity)
	}
	if c.NeighborWindowFactor <= 0 {
		return fmt.Errorf("neighbor window factor must be positive, got %g", c.NeighborWindowFactor)
	}
	return nil
}
