package particle

import (
	"math/rand"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/beatfield/parameter"
)

// bandHue maps a band to its palette base hue
func bandHue(b Band) float64 {
	switch b {
	case Bass:
		return parameter.BassHue
	case Mid:
		return parameter.MidHue
	default:
		return parameter.TrebleHue
	}
}

// spawnColor picks a per-particle base color: the band hue with a little
// jitter, constant saturation, value varied toward bright
func spawnColor(b Band, rng *rand.Rand) RGB {
	hue := bandHue(b) + (rng.Float64()*2-1)*parameter.HueJitter
	if hue < 0 {
		hue += 360
	} else if hue >= 360 {
		hue -= 360
	}
	val := parameter.PaletteValueMin + rng.Float64()*(1-parameter.PaletteValueMin)

	c := colorful.Hsv(hue, parameter.PaletteSaturation, val)
	r, g, bb := c.Clamped().RGB255()
	return RGB{R: r, G: g, B: bb}
}
