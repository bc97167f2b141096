package physics

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/beatfield/audio"
	"github.com/lixenwraith/beatfield/parameter"
	"github.com/lixenwraith/beatfield/particle"
	"github.com/lixenwraith/beatfield/spatial"
)

// FloorContactEpsilon is position tolerance (cells) for the resting check
const FloorContactEpsilon = 0.05

// Stepper advances the particle population one frame at a time. It owns
// the quadtree, which it rebuilds from scratch at the start of every step;
// the tree never outlives the step that built it
type Stepper struct {
	cfg  Config
	tree *spatial.QuadTree

	// neighbors is the reusable query scratch buffer
	neighbors []int

	insertFailures uint64
	log            *logrus.Entry
}

// NewStepper validates cfg and builds a stepper whose index covers the
// full world rectangle
func NewStepper(cfg Config, log *logrus.Logger) (*Stepper, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	tree, err := spatial.NewQuadTree(
		spatial.NewRegion(cfg.Width/2, cfg.Height/2, cfg.Width, cfg.Height),
		cfg.QuadTreeCapacity,
	)
	if err != nil {
		return nil, err
	}
	return &Stepper{
		cfg:       cfg,
		tree:      tree,
		neighbors: make([]int, 0, 64),
		log:       log.WithField("component", "physics"),
	}, nil
}

// Config returns the current tuning
func (s *Stepper) Config() Config {
	return s.cfg
}

// AdjustGravity shifts gravity by delta, floored at zero
func (s *Stepper) AdjustGravity(delta float64) {
	s.cfg.Gravity += delta
	if s.cfg.Gravity < 0 {
		s.cfg.Gravity = 0
	}
}

// Tree exposes the index for the debug overlay. Valid until the next Step
func (s *Stepper) Tree() *spatial.QuadTree {
	return s.tree
}

// InsertFailures returns how many particle inserts have been dropped from
// collision resolution since construction
func (s *Stepper) InsertFailures() uint64 {
	return s.insertFailures
}

// Step advances every particle by dt seconds, driven by this frame's
// audio energies. dt is clamped so a stalled frame never integrates more
// than MaxFrameDt of simulation
func (s *Stepper) Step(dt float64, ps []particle.Particle, frame audio.Frame) {
	if dt <= 0 {
		return
	}
	if dt > parameter.MaxFrameDt {
		dt = parameter.MaxFrameDt
	}
	scaled := dt * parameter.TimeScale

	// Rebuild the index from current positions. A failed insert drops the
	// particle from this frame's collision resolution only
	s.tree.Clear()
	for i := range ps {
		if !s.tree.Insert(i, ps[i].Pos) {
			s.insertFailures++
			s.log.WithFields(logrus.Fields{
				"index": i,
				"pos":   ps[i].Pos,
				"total": s.insertFailures,
			}).Debug("particle outside index bounds, skipped for this frame")
		}
	}

	for i := range ps {
		p := &ps[i]

		s.applyBounce(p, dt, frame)

		// Gravity, drag, integration
		p.Vel[1] += s.cfg.Gravity * p.Mass * scaled
		p.Vel[0] *= s.cfg.Drag
		p.Vel[1] *= s.cfg.Drag
		p.Pos = p.Pos.Add(p.Vel.Mul(scaled))

		s.resolveNeighbors(i, ps)
		s.resolveBounds(p)
	}
}

// applyBounce smooths the particle's bounce accumulator toward its
// band-weighted energy target and launches it off the floor when resting
// and sufficiently energized
func (s *Stepper) applyBounce(p *particle.Particle, dt float64, frame audio.Frame) {
	var target, rate float64
	switch p.Band {
	case particle.Bass:
		target = parameter.BassEnergyWeight*frame.Bass + parameter.BassMidCrossWeight*frame.Mid
		if frame.Beat {
			target += parameter.BeatBonusBass
		}
		rate = parameter.BassBounceSmoothing
	case particle.Mid:
		target = parameter.MidEnergyWeight * frame.Mid
		if frame.Beat {
			target += parameter.BeatBonusMid
		}
		rate = parameter.TrebleBounceSmoothing
	default:
		target = parameter.TrebleEnergyWeight * frame.Treble
		if frame.Beat {
			target += parameter.BeatBonusTreble
		}
		rate = parameter.TrebleBounceSmoothing
	}

	step := rate * dt
	if step > 1 {
		step = 1
	}
	p.Bounce += (target - p.Bounce) * step

	// The damped floor reflection leaves an upward jitter smaller than
	// one gravity step each frame; count that as stationary or a resting
	// particle could never launch
	gravityStep := s.cfg.Gravity * p.Mass * dt * parameter.TimeScale
	resting := p.Pos[1] >= p.FloorY-p.Radius-FloorContactEpsilon && p.Vel[1] >= -gravityStep
	if resting && p.Bounce > s.cfg.BounceThreshold {
		p.Vel[1] = -p.Bounce * p.Mass * s.cfg.BounceImpulse
	}
}

// resolveNeighbors separates particle i from every overlapping neighbor
// and applies equal-and-opposite repulsion impulses, scaled by each
// particle's own inverse mass
func (s *Stepper) resolveNeighbors(i int, ps []particle.Particle) {
	p := &ps[i]
	half := p.Radius * s.cfg.NeighborWindowFactor
	window := spatial.Region{Center: p.Pos, Half: mgl64.Vec2{half, half}}

	s.neighbors = s.tree.Query(window, s.neighbors[:0])
	for _, j := range s.neighbors {
		if j == i {
			continue
		}
		q := &ps[j]

		delta := p.Pos.Sub(q.Pos)
		dist := delta.Len()
		minDist := p.Radius + q.Radius
		if dist >= minDist {
			continue
		}
		// Coincident centers leave the separation angle undefined; skip
		// force application rather than divide by zero
		if dist < parameter.MinSeparation {
			continue
		}

		dir := delta.Mul(1 / dist)
		correction := dir.Mul((minDist - dist) / 2)
		p.Pos = p.Pos.Add(correction)
		q.Pos = q.Pos.Sub(correction)

		impulse := s.cfg.Repulsion / dist
		p.Vel = p.Vel.Add(dir.Mul(impulse / p.Mass))
		q.Vel = q.Vel.Sub(dir.Mul(impulse / q.Mass))
	}
}

// resolveBounds reflects velocity off the walls, ceiling and the
// particle's own floor level, clamping position onto the boundary so fast
// particles never tunnel out
func (s *Stepper) resolveBounds(p *particle.Particle) {
	if p.Pos[0]-p.Radius < 0 {
		p.Pos[0] = p.Radius
		p.Vel[0] = -p.Vel[0] * s.cfg.WallDamping
	} else if p.Pos[0]+p.Radius > s.cfg.Width {
		p.Pos[0] = s.cfg.Width - p.Radius
		p.Vel[0] = -p.Vel[0] * s.cfg.WallDamping
	}

	if p.Pos[1]+p.Radius > p.FloorY {
		p.Pos[1] = p.FloorY - p.Radius
		p.Vel[1] = -p.Vel[1] * s.cfg.FloorDamping
	} else if p.Pos[1]-p.Radius < 0 {
		p.Pos[1] = p.Radius
		p.Vel[1] = -p.Vel[1] * s.cfg.WallDamping
	}
}
