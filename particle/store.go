package particle

import (
	"fmt"
	"math/rand"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/beatfield/parameter"
)

// Counts is the initial population per band, restored on Reset
type Counts struct {
	Bass, Mid, Treble int
}

// Store exclusively owns the particle records. Particles keep their slice
// position for their whole life: the population only grows on spawn or is
// wholesale reset, so indices are stable references within a frame
type Store struct {
	width, height float64
	initial       Counts
	rng           *rand.Rand
	particles     []Particle
}

// NewStore creates a store over a width×height world and spawns the
// initial population
func NewStore(width, height float64, initial Counts, seed int64) (*Store, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("store dimensions must be positive, got %gx%g", width, height)
	}
	s := &Store{
		width:   width,
		height:  height,
		initial: initial,
		rng:     rand.New(rand.NewSource(seed)),
	}
	s.spawnInitial()
	return s, nil
}

func (s *Store) spawnInitial() {
	// Initial particles rain in from the upper half of the world
	spawn := func(b Band, n int) {
		for i := 0; i < n; i++ {
			x := s.rng.Float64() * s.width
			y := s.rng.Float64() * s.height / 2
			s.spawnOne(b, x, y)
		}
	}
	spawn(Bass, s.initial.Bass)
	spawn(Mid, s.initial.Mid)
	spawn(Treble, s.initial.Treble)
}

// Spawn adds n particles of band b scattered around (x, y).
// Positions are clamped into the world so every spawn lands inside the
// spatial index bounds
func (s *Store) Spawn(b Band, x, y float64, n int) {
	for i := 0; i < n; i++ {
		px := x + (s.rng.Float64()*2-1)*parameter.SpawnScatter
		py := y + (s.rng.Float64()*2-1)*parameter.SpawnScatter
		s.spawnOne(b, px, py)
	}
}

// SpawnBurst adds a mixed-band burst at (x, y), cycling bands so every
// burst has the same composition
func (s *Store) SpawnBurst(x, y float64, n int) {
	for i := 0; i < n; i++ {
		s.Spawn(Band(i%int(BandCount)), x, y, 1)
	}
}

func (s *Store) spawnOne(b Band, x, y float64) {
	var rMin, rMax float64
	switch b {
	case Bass:
		rMin, rMax = parameter.BassRadiusMin, parameter.BassRadiusMax
	case Mid:
		rMin, rMax = parameter.MidRadiusMin, parameter.MidRadiusMax
	default:
		rMin, rMax = parameter.TrebleRadiusMin, parameter.TrebleRadiusMax
	}
	radius := rMin + s.rng.Float64()*(rMax-rMin)

	mass := parameter.ParticleMassPerArea * radius * radius
	if mass < 1 {
		mass = 1
	}

	floor := s.height - s.rng.Float64()*parameter.FloorBandDepth
	if floor < radius {
		floor = radius
	}

	s.particles = append(s.particles, Particle{
		Pos:    mgl64.Vec2{clamp(x, radius, s.width-radius), clamp(y, radius, floor-radius)},
		Radius: radius,
		Mass:   mass,
		Band:   b,
		FloorY: floor,
		Color:  spawnColor(b, s.rng),
	})
}

// Reset discards every particle and respawns the initial population
func (s *Store) Reset() {
	s.particles = s.particles[:0]
	s.spawnInitial()
}

// Len returns the current population
func (s *Store) Len() int {
	return len(s.particles)
}

// Particles returns the live backing slice. Physics mutates records in
// place through it; callers must not retain it across a spawn
func (s *Store) Particles() []Particle {
	return s.particles
}

// At returns the particle at index i
func (s *Store) At(i int) *Particle {
	return &s.particles[i]
}

// Bounds returns the world dimensions
func (s *Store) Bounds() (width, height float64) {
	return s.width, s.height
}

func clamp(v, lo, hi float64) float64 {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
