package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/beatfield/audio"
	"github.com/lixenwraith/beatfield/parameter"
	"github.com/lixenwraith/beatfield/particle"
	"github.com/lixenwraith/beatfield/spatial"
)

// HUD is the per-frame status the renderer displays on its top line
type HUD struct {
	Population int
	Energy     audio.Frame
	Gravity    float64
	FPS        float64
	Paused     bool
	Reactive   bool
	BeatFlash  bool
}

// View is everything the renderer reads for one frame. The core performs
// no drawing itself; this is its read-only surface
type View struct {
	Particles []particle.Particle

	// Tree enables the quadtree region overlay when non-nil
	Tree *spatial.QuadTree

	// Waveform supplies display samples when non-nil
	Waveform interface{ Waveform(dst []float64) int }

	HUD     HUD
	ShowHUD bool
}

// Renderer draws the simulation onto a tcell screen. World coordinates
// map 1:1 onto cells below the HUD row
type Renderer struct {
	screen  tcell.Screen
	offsetY int
	waveBuf []float64
}

// New creates a renderer; world row 0 lands just below the HUD line
func New(screen tcell.Screen) *Renderer {
	return &Renderer{
		screen:  screen,
		offsetY: parameter.HUDRow + 1,
		waveBuf: make([]float64, parameter.WaveformWindow),
	}
}

// Draw composites one frame: clear, overlay, particles, waveform, HUD, show
func (r *Renderer) Draw(v View) {
	r.screen.Clear()
	width, height := r.screen.Size()

	if v.Tree != nil {
		r.drawOverlay(v.Tree, width, height)
	}
	r.drawParticles(v.Particles, width, height)
	if v.Waveform != nil {
		r.drawWaveform(v.Waveform, width, height)
	}
	if v.ShowHUD {
		r.drawHUD(v.HUD, width)
	}

	r.screen.Show()
}

// particleRune picks a glyph by radius so heavier bands read larger
func particleRune(radius float64) rune {
	switch {
	case radius >= 1.6:
		return '●'
	case radius >= 1.0:
		return '•'
	default:
		return '·'
	}
}

func (r *Renderer) drawParticles(ps []particle.Particle, width, height int) {
	for i := range ps {
		p := &ps[i]
		x := int(p.Pos[0] + 0.5)
		y := int(p.Pos[1]+0.5) + r.offsetY
		if x < 0 || x >= width || y < r.offsetY || y >= height {
			continue
		}

		// Bounce energy brightens the base color
		c := p.Color.Scale(1 + parameter.GlowGain*p.Bounce)
		style := tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
		r.screen.SetContent(x, y, particleRune(p.Radius), nil, style)
	}
}
