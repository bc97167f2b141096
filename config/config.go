// Package config layers an optional ini-style file over the built-in
// simulation defaults. Only fields present in the file override anything;
// out-of-range values are rejected by physics.Config validation at startup
package config

import (
	"fmt"

	gcfg "gopkg.in/gcfg.v1"

	"github.com/lixenwraith/beatfield/parameter"
	"github.com/lixenwraith/beatfield/particle"
	"github.com/lixenwraith/beatfield/physics"
)

// File mirrors the config file layout:
//
//	[simulation]
//	bass-count = 30
//	seed = 7
//
//	[physics]
//	gravity = 0.3
//
//	[audio]
//	volume = -1.5
type File struct {
	Simulation struct {
		BassCount   int `gcfg:"bass-count"`
		MidCount    int `gcfg:"mid-count"`
		TrebleCount int `gcfg:"treble-count"`
		Seed        int64
	}
	Physics struct {
		Gravity          float64
		Drag             float64
		WallDamping      float64 `gcfg:"wall-damping"`
		FloorDamping     float64 `gcfg:"floor-damping"`
		Repulsion        float64
		QuadtreeCapacity int `gcfg:"quadtree-capacity"`
	}
	Audio struct {
		// Volume in doublings relative to source level (0 = unchanged)
		Volume float64
	}
}

// Defaults returns a File populated from the parameter package
func Defaults() File {
	var f File
	f.Simulation.BassCount = parameter.InitialBassCount
	f.Simulation.MidCount = parameter.InitialMidCount
	f.Simulation.TrebleCount = parameter.InitialTrebleCount

	f.Physics.Gravity = parameter.Gravity
	f.Physics.Drag = parameter.Drag
	f.Physics.WallDamping = parameter.WallDamping
	f.Physics.FloorDamping = parameter.FloorDamping
	f.Physics.Repulsion = parameter.RepulsionStrength
	f.Physics.QuadtreeCapacity = parameter.QuadTreeCapacity
	return f
}

// Load reads path over the defaults. An empty path returns the defaults;
// a missing or malformed file is a startup error
func Load(path string) (File, error) {
	f := Defaults()
	if path == "" {
		return f, nil
	}
	if err := gcfg.ReadFileInto(&f, path); err != nil {
		return File{}, fmt.Errorf("read config %s: %w", path, err)
	}
	return f, nil
}

// PhysicsConfig merges the file into an integrator config for the given
// world extent. Range validation happens in physics.NewStepper
func (f File) PhysicsConfig(width, height float64) physics.Config {
	cfg := physics.DefaultConfig(width, height)
	cfg.Gravity = f.Physics.Gravity
	cfg.Drag = f.Physics.Drag
	cfg.WallDamping = f.Physics.WallDamping
	cfg.FloorDamping = f.Physics.FloorDamping
	cfg.Repulsion = f.Physics.Repulsion
	cfg.QuadTreeCapacity = f.Physics.QuadtreeCapacity
	return cfg
}

// Counts returns the initial population per band
func (f File) Counts() particle.Counts {
	return particle.Counts{
		Bass:   f.Simulation.BassCount,
		Mid:    f.Simulation.MidCount,
		Treble: f.Simulation.TrebleCount,
	}
}
