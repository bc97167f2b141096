package spatial

import "github.com/go-gl/mathgl/mgl64"

// Region is an axis-aligned rectangle described by center and half-extents
type Region struct {
	Center mgl64.Vec2
	Half   mgl64.Vec2
}

// NewRegion builds a region from center and full width/height
func NewRegion(cx, cy, w, h float64) Region {
	return Region{
		Center: mgl64.Vec2{cx, cy},
		Half:   mgl64.Vec2{w / 2, h / 2},
	}
}

// Contains reports whether p lies inside the region.
// Lower bound inclusive, upper bound exclusive on both axes, so that
// sibling regions sharing an edge never both claim a point
func (r Region) Contains(p mgl64.Vec2) bool {
	return p[0] >= r.Center[0]-r.Half[0] && p[0] < r.Center[0]+r.Half[0] &&
		p[1] >= r.Center[1]-r.Half[1] && p[1] < r.Center[1]+r.Half[1]
}

// Intersects reports whether two regions overlap (separating axis on the four edges)
func (r Region) Intersects(o Region) bool {
	if r.Center[0]-r.Half[0] >= o.Center[0]+o.Half[0] ||
		r.Center[0]+r.Half[0] <= o.Center[0]-o.Half[0] {
		return false
	}
	if r.Center[1]-r.Half[1] >= o.Center[1]+o.Half[1] ||
		r.Center[1]+r.Half[1] <= o.Center[1]-o.Half[1] {
		return false
	}
	return true
}

// Quadrant indices in child order
const (
	quadNW = iota
	quadNE
	quadSW
	quadSE
)

// quadrant returns the i-th quarter region of r (midpoint split).
// The four quadrants partition r exactly: half-open containment keeps
// points on the split lines in the east/south children only
func (r Region) quadrant(i int) Region {
	hw, hh := r.Half[0]/2, r.Half[1]/2
	switch i {
	case quadNW:
		return Region{Center: mgl64.Vec2{r.Center[0] - hw, r.Center[1] - hh}, Half: mgl64.Vec2{hw, hh}}
	case quadNE:
		return Region{Center: mgl64.Vec2{r.Center[0] + hw, r.Center[1] - hh}, Half: mgl64.Vec2{hw, hh}}
	case quadSW:
		return Region{Center: mgl64.Vec2{r.Center[0] - hw, r.Center[1] + hh}, Half: mgl64.Vec2{hw, hh}}
	default:
		return Region{Center: mgl64.Vec2{r.Center[0] + hw, r.Center[1] + hh}, Half: mgl64.Vec2{hw, hh}}
	}
}
