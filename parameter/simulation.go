package parameter

import "time"

// Frame timing
const (
	// TargetFrameInterval drives the main loop ticker (~60 FPS)
	TargetFrameInterval = time.Second / 60

	// MaxFrameDt clamps elapsed time after a stall so one frame never
	// integrates more than 50ms of simulation
	MaxFrameDt = 0.05

	// TimeScale converts per-frame velocities to a 60-units-per-second reference
	TimeScale = 60.0
)

// Initial population per band
const (
	InitialBassCount   = 24
	InitialMidCount    = 40
	InitialTrebleCount = 56
)

// Spawn behavior
const (
	// SpawnBatchSize particles per keyboard spawn command
	SpawnBatchSize = 10

	// SpawnBurstSize particles per mouse click (mixed bands)
	SpawnBurstSize = 15

	// SpawnScatter is max offset (cells) from the spawn point
	SpawnScatter = 3.0
)

// Particle geometry per band, in cell units
const (
	BassRadiusMin   = 1.4
	BassRadiusMax   = 2.2
	MidRadiusMin    = 0.9
	MidRadiusMax    = 1.5
	TrebleRadiusMin = 0.5
	TrebleRadiusMax = 1.0

	// ParticleMassPerArea scales mass from radius² (mass floor is 1.0)
	ParticleMassPerArea = 0.6
)

// Floor placement
const (
	// FloorBandDepth is the vertical span (cells) above the bottom edge
	// within which per-particle floor levels are scattered
	FloorBandDepth = 4.0
)
