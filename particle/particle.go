package particle

import "github.com/go-gl/mathgl/mgl64"

// Band is the audio category a particle responds to
type Band uint8

const (
	Bass Band = iota
	Mid
	Treble
	BandCount
)

func (b Band) String() string {
	switch b {
	case Bass:
		return "bass"
	case Mid:
		return "mid"
	case Treble:
		return "treble"
	}
	return "unknown"
}

// RGB stores explicit 8-bit color channels, decoupled from the terminal layer
type RGB struct {
	R, G, B uint8
}

// Scale multiplies each channel by factor with clamping (glow brightening)
func (c RGB) Scale(factor float64) RGB {
	if factor <= 0 {
		return RGB{}
	}
	scale := func(v uint8) uint8 {
		s := float64(v) * factor
		if s > 255 {
			return 255
		}
		return uint8(s)
	}
	return RGB{R: scale(c.R), G: scale(c.G), B: scale(c.B)}
}

// Particle is one point mass. Identity is its index in the Store; physics
// mutates Pos, Vel and Bounce in place, everything else is fixed at spawn
type Particle struct {
	Pos mgl64.Vec2
	Vel mgl64.Vec2

	Radius float64
	Mass   float64 // >= 1
	Band   Band

	// FloorY is this particle's resting y-coordinate
	FloorY float64

	Color RGB

	// Bounce is the smoothed bounce-energy accumulator tracking an
	// audio-driven target each frame
	Bounce float64
}
