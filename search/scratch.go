package search

import "github.com/katalvlaran/pathlab/grid"

// Scratch is the per-run search context: a parent link and an accumulated
// cost for every cell of one grid, indexed by Cell.Index(). It is owned by
// exactly one running search and never shared between runs.
type Scratch struct {
	g      *grid.Grid
	parent []*grid.Cell
	cost   []int
}

// NewScratch allocates a reset Scratch sized for g.
// Complexity: O(N²).
func NewScratch(g *grid.Grid) *Scratch {
	s := &Scratch{
		g:      g,
		parent: make([]*grid.Cell, g.Len()),
		cost:   make([]int, g.Len()),
	}
	s.Reset()
	return s
}

// Reset clears every parent link and sets every cost to Infinity.
func (s *Scratch) Reset() {
	for i := range s.parent {
		s.parent[i] = nil
		s.cost[i] = Infinity
	}
}

// Parent returns the predecessor recorded for c, or nil.
func (s *Scratch) Parent(c *grid.Cell) *grid.Cell { return s.parent[c.Index()] }

// SetParent records p as the predecessor of c.
func (s *Scratch) SetParent(c, p *grid.Cell) { s.parent[c.Index()] = p }

// Cost returns the accumulated cost recorded for c.
func (s *Scratch) Cost(c *grid.Cell) int { return s.cost[c.Index()] }

// SetCost records the accumulated cost of c.
func (s *Scratch) SetCost(c *grid.Cell, cost int) { s.cost[c.Index()] = cost }

// Trace follows parent links from node back to the root and returns the
// cells in root→node order.
// Complexity: O(path length).
func (s *Scratch) Trace(node *grid.Cell) []*grid.Cell {
	var path []*grid.Cell
	for cur := node; cur != nil; cur = s.parent[cur.Index()] {
		path = append(path, cur)
	}
	reverse(path)
	return path
}

// Parents maps a cell to its predecessor toward the root of one
// bidirectional half. The root maps to nil.
type Parents map[*grid.Cell]*grid.Cell

// Merge joins two parent chains at meeting: start→meeting is rebuilt from
// forward and reversed, then meeting's successors toward the target are
// appended from backward. meeting appears exactly once.
// meeting must be a key of both maps.
func Merge(meeting *grid.Cell, forward, backward Parents) []*grid.Cell {
	var path []*grid.Cell
	for cur := meeting; cur != nil; cur = forward[cur] {
		path = append(path, cur)
	}
	reverse(path)
	for cur := backward[meeting]; cur != nil; cur = backward[cur] {
		path = append(path, cur)
	}
	return path
}

func reverse(p []*grid.Cell) {
	for i, j := 0, len(p)-1; i < j; i, j = i+1, j-1 {
		p[i], p[j] = p[j], p[i]
	}
}
