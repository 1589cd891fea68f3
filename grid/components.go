package grid

// Distances runs an exhaustive breadth-first sweep from `from` over open cells
// and returns the hop count to every cell, indexed by Cell.Index().
// Walls and cells with no open route get Unreachable. A wall origin yields
// Unreachable everywhere.
//
// This is the reference oracle for shortest-path checks.
// Time:   O(N²·8).
// Memory: O(N²).
func (g *Grid) Distances(from *Cell) []int {
	dist := make([]int, len(g.cells))
	for i := range dist {
		dist[i] = Unreachable
	}
	if !g.Owns(from) || from.wall {
		return dist
	}

	dist[from.index] = 0
	queue := []*Cell{from}
	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		for _, v := range g.Neighbors(u) {
			if v.wall || dist[v.index] != Unreachable {
				continue
			}
			dist[v.index] = dist[u.index] + 1
			queue = append(queue, v)
		}
	}
	return dist
}

// Components finds all contiguous regions of open cells under
// 8-connectivity. Each component lists its cells in discovery order;
// components are ordered by their first cell in row-major order.
//
// Time:   O(N²·8).
// Memory: O(N²) for seen flags and output.
func (g *Grid) Components() [][]*Cell {
	seen := make([]bool, len(g.cells))
	var comps [][]*Cell

	for _, c0 := range g.cells {
		if c0.wall || seen[c0.index] {
			continue
		}
		// BFS to collect component
		seen[c0.index] = true
		comp := []*Cell{c0}
		for qi := 0; qi < len(comp); qi++ {
			for _, v := range g.Neighbors(comp[qi]) {
				if v.wall || seen[v.index] {
					continue
				}
				seen[v.index] = true
				comp = append(comp, v)
			}
		}
		comps = append(comps, comp)
	}
	return comps
}
