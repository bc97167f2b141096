package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/beatfield/parameter"
)

var (
	waveStyle  = tcell.StyleDefault.Foreground(tcell.NewRGBColor(80, 180, 200))
	waveDimmed = tcell.StyleDefault.Foreground(tcell.NewRGBColor(40, 90, 100))
	waveCenter = tcell.StyleDefault.Foreground(tcell.NewRGBColor(50, 60, 70))
)

// drawWaveform renders the recent amplitude window as a mirrored bar strip
// across the bottom rows of the screen
func (r *Renderer) drawWaveform(src interface{ Waveform(dst []float64) int }, width, height int) {
	rows := parameter.WaveformHeight
	if height <= rows {
		return
	}
	top := height - rows
	center := top + rows/2

	n := src.Waveform(r.waveBuf)
	if n == 0 {
		return
	}
	window := r.waveBuf[:n]

	// Center reference line
	for x := 0; x < width; x++ {
		r.screen.SetContent(x, center, '╌', nil, waveCenter)
	}

	samplesPerCol := float64(n) / float64(width)
	halfSpan := float64(rows) / 2
	for x := 0; x < width; x++ {
		// Peak amplitude within this column's slice of the window
		lo := int(float64(x) * samplesPerCol)
		hi := int(float64(x+1) * samplesPerCol)
		if hi <= lo {
			hi = lo + 1
		}
		if hi > n {
			hi = n
		}
		peak := 0.0
		for _, s := range window[lo:hi] {
			if s < 0 {
				s = -s
			}
			if s > peak {
				peak = s
			}
		}
		if peak > 1 {
			peak = 1
		}

		span := int(peak * halfSpan)
		for dy := 1; dy <= span; dy++ {
			style := waveStyle
			if dy == span && span > 1 {
				style = waveDimmed
			}
			if center-dy >= top {
				r.screen.SetContent(x, center-dy, '│', nil, style)
			}
			if center+dy < height {
				r.screen.SetContent(x, center+dy, '│', nil, style)
			}
		}
		if span > 0 {
			r.screen.SetContent(x, center, '┼', nil, waveStyle)
		}
	}
}
