package parameter

// Integration
const (
	// Gravity is downward acceleration per unit mass (cells/sec² at TimeScale reference)
	Gravity = 0.22

	// Drag is the per-frame velocity retention factor
	Drag = 0.985
)

// Boundary reflection damping (velocity retention on bounce)
const (
	WallDamping  = 0.80
	FloorDamping = 0.55
)

// Pairwise repulsion
const (
	// RepulsionStrength scales the inverse-distance impulse between overlapping pairs
	RepulsionStrength = 0.6

	// NeighborWindowFactor sizes the quadtree query window as a multiple of particle radius
	NeighborWindowFactor = 4.0

	// MinSeparation guards the repulsion direction against coincident centers
	MinSeparation = 1e-6
)

// Quadtree
const (
	// QuadTreeCapacity is max particles per leaf before subdivision
	QuadTreeCapacity = 8
)

// Bounce impulse at floor contact
const (
	// BounceThreshold is minimum accumulated bounce energy before a floor launch
	BounceThreshold = 0.12

	// BounceImpulse scales launch velocity from bounce energy × mass
	BounceImpulse = 1.1
)

// GravityAdjustStep is the per-keypress gravity increment
const GravityAdjustStep = 0.02

// Bounce energy smoothing rates (1/sec); bass tracks its target faster
const (
	BassBounceSmoothing   = 10.0
	TrebleBounceSmoothing = 6.0
)

// Band weighting of audio energies into bounce targets.
// Cross weights are empirical tuning values carried from the visualizer
// they were tuned in; only the [0,1] energy bound is load-bearing.
const (
	BassEnergyWeight   = 1.0
	BassMidCrossWeight = 0.3

	MidEnergyWeight    = 0.9
	TrebleEnergyWeight = 0.85
)

// Additive bounce bonus on the frame a beat fires
const (
	BeatBonusBass   = 0.50
	BeatBonusMid    = 0.25
	BeatBonusTreble = 0.15
)
