package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/beatfield/parameter"
)

var (
	hudStyle  = tcell.StyleDefault.Foreground(tcell.NewRGBColor(180, 180, 190))
	beatStyle = tcell.StyleDefault.Foreground(tcell.NewRGBColor(255, 90, 60)).Bold(true)
)

// drawHUD writes the status line: population, band energies, gravity,
// frame rate and mode flags, with a flash marker on recent beats
func (r *Renderer) drawHUD(h HUD, width int) {
	status := fmt.Sprintf(" n=%d  bass %.2f  mid %.2f  treb %.2f  g=%.2f  %.0f fps",
		h.Population, h.Energy.Bass, h.Energy.Mid, h.Energy.Treble, h.Gravity, h.FPS)
	if !h.Reactive {
		status += "  [audio off]"
	}
	if h.Paused {
		status += "  [paused]"
	}

	r.emit(0, parameter.HUDRow, status, hudStyle, width)
	if h.BeatFlash {
		r.emit(len([]rune(status))+2, parameter.HUDRow, "● beat", beatStyle, width)
	}
}

func (r *Renderer) emit(x, y int, text string, style tcell.Style, width int) {
	for _, ch := range text {
		if x >= width {
			return
		}
		r.screen.SetContent(x, y, ch, nil, style)
		x++
	}
}
