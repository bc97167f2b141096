package spatial

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

// item is a non-owning particle reference: store index plus the position
// it was inserted at. Positions are snapshotted so tree structure stays
// valid even if the caller mutates the store mid-frame
type item struct {
	id  int
	pos mgl64.Vec2
}

// QuadTree partitions 2D space for neighbor queries. A node is either a
// leaf holding up to capacity items directly, or internal with exactly
// four children covering its quadrants and no direct items.
// The tree is rebuilt from scratch every frame
type QuadTree struct {
	region   Region
	capacity int
	items    []item
	divided  bool
	children [4]*QuadTree // NW, NE, SW, SE
}

// NewQuadTree creates an empty leaf covering region.
// Capacity below 1 is a construction error, not a runtime one
func NewQuadTree(region Region, capacity int) (*QuadTree, error) {
	if capacity < 1 {
		return nil, fmt.Errorf("quadtree capacity must be >= 1, got %d", capacity)
	}
	if region.Half[0] <= 0 || region.Half[1] <= 0 {
		return nil, fmt.Errorf("quadtree region must have positive extent, got %gx%g", region.Half[0]*2, region.Half[1]*2)
	}
	return &QuadTree{
		region:   region,
		capacity: capacity,
		items:    make([]item, 0, capacity),
	}, nil
}

// Region returns the node's covering region
func (q *QuadTree) Region() Region {
	return q.region
}

// Insert adds a particle reference at pos.
// Returns false if pos lies outside this node's region
func (q *QuadTree) Insert(id int, pos mgl64.Vec2) bool {
	if !q.region.Contains(pos) {
		return false
	}

	if !q.divided {
		if len(q.items) < q.capacity {
			q.items = append(q.items, item{id: id, pos: pos})
			return true
		}
		q.subdivide()
	}

	// Quadrants partition the region with no gap, so a contained point
	// is accepted by exactly one child
	for _, child := range q.children {
		if child.Insert(id, pos) {
			return true
		}
	}
	return false
}

// subdivide splits a full leaf into four quadrant children and pushes the
// held items down. Irreversible for this node until Clear
func (q *QuadTree) subdivide() {
	for i := range q.children {
		q.children[i] = &QuadTree{
			region:   q.region.quadrant(i),
			capacity: q.capacity,
			items:    make([]item, 0, q.capacity),
		}
	}
	q.divided = true

	for _, it := range q.items {
		for _, child := range q.children {
			if child.Insert(it.id, it.pos) {
				break
			}
		}
	}
	q.items = q.items[:0]
}

// Query appends to out the ids of all held particles whose insertion
// position lies within window, pruning subtrees whose region does not
// intersect it. Result order is deterministic for a given insertion order
func (q *QuadTree) Query(window Region, out []int) []int {
	if !q.region.Intersects(window) {
		return out
	}

	if q.divided {
		for _, child := range q.children {
			out = child.Query(window, out)
		}
		return out
	}

	for _, it := range q.items {
		if window.Contains(it.pos) {
			out = append(out, it.id)
		}
	}
	return out
}

// Clear resets the node to an empty leaf, dropping all children.
// Child nodes are released rather than pooled; rebuild cost is dominated
// by insertion, not allocation
func (q *QuadTree) Clear() {
	q.items = q.items[:0]
	q.divided = false
	for i := range q.children {
		q.children[i] = nil
	}
}

// Len returns the total number of held items in the subtree
func (q *QuadTree) Len() int {
	if !q.divided {
		return len(q.items)
	}
	n := 0
	for _, child := range q.children {
		n += child.Len()
	}
	return n
}

// Walk visits every node's region depth-first, NW to SE, for the debug overlay
func (q *QuadTree) Walk(fn func(r Region, depth int)) {
	q.walk(fn, 0)
}

func (q *QuadTree) walk(fn func(r Region, depth int), depth int) {
	fn(q.region, depth)
	if !q.divided {
		return
	}
	for _, child := range q.children {
		child.walk(fn, depth+1)
	}
}
