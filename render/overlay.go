package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/beatfield/spatial"
)

var overlayStyle = tcell.StyleDefault.Foreground(tcell.NewRGBColor(70, 70, 90))

// drawOverlay traces every quadtree node's region border so subdivision
// density is visible where particles cluster
func (r *Renderer) drawOverlay(tree *spatial.QuadTree, width, height int) {
	tree.Walk(func(reg spatial.Region, depth int) {
		x0 := int(reg.Center[0] - reg.Half[0] + 0.5)
		x1 := int(reg.Center[0] + reg.Half[0] - 0.5)
		y0 := int(reg.Center[1]-reg.Half[1]+0.5) + r.offsetY
		y1 := int(reg.Center[1]+reg.Half[1]-0.5) + r.offsetY
		r.traceRect(x0, y0, x1, y1, width, height)
	})
}

func (r *Renderer) traceRect(x0, y0, x1, y1, width, height int) {
	put := func(x, y int, ch rune) {
		if x < 0 || x >= width || y < r.offsetY || y >= height {
			return
		}
		// Never overdraw a particle glyph with grid lines
		if cur, _, _, _ := r.screen.GetContent(x, y); cur != ' ' && cur != 0 {
			return
		}
		r.screen.SetContent(x, y, ch, nil, overlayStyle)
	}

	for x := x0; x <= x1; x++ {
		put(x, y0, '─')
		put(x, y1, '─')
	}
	for y := y0; y <= y1; y++ {
		put(x0, y, '│')
		put(x1, y, '│')
	}
	put(x0, y0, '┌')
	put(x1, y0, '┐')
	put(x0, y1, '└')
	put(x1, y1, '┘')
}
