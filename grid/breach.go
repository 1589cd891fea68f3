package grid

import (
	"container/list"
)

// MinBreach finds the route from `from` to `to` that crosses the fewest walls.
// Stepping onto an open cell costs 0, onto a wall costs 1, so cost is the
// number of walls a user would have to remove to connect the two cells.
// The route includes both endpoints, in from→to order.
//
// Behavior:
//  1. Validate both cells belong to g (ErrForeignCell).
//  2. 0–1 BFS from `from`:
//     • open neighbour → cost 0, pushed to the front
//     • wall neighbour → cost 1, pushed to the back
//  3. Stop when `to` is popped.
//  4. Reconstruct the route from predecessors.
//
// The board is fully 8-connected when walls are ignored, so a route always exists.
// Complexity: O(N²·8) time, O(N²) memory.
func (g *Grid) MinBreach(from, to *Cell) (route []*Cell, cost int, err error) {
	if !g.Owns(from) || !g.Owns(to) {
		return nil, 0, ErrForeignCell
	}

	n := len(g.cells)
	const inf = int(^uint(0) >> 1)
	dist := make([]int, n)
	prev := make([]int, n)
	for i := range dist {
		dist[i] = inf
		prev[i] = -1
	}

	// 0–1 BFS: deque processes cost0 at front, cost1 at back
	dq := list.New()
	dist[from.index] = 0
	dq.PushFront(from)

	for dq.Len() > 0 {
		e := dq.Front()
		dq.Remove(e)
		u := e.Value.(*Cell)
		if u == to {
			break
		}
		for _, v := range g.Neighbors(u) {
			step := 0
			if v.wall {
				step = 1
			}
			nd := dist[u.index] + step
			if nd < dist[v.index] {
				dist[v.index] = nd
				prev[v.index] = u.index
				if step == 0 {
					dq.PushFront(v)
				} else {
					dq.PushBack(v)
				}
			}
		}
	}

	// Reconstruct route
	for at := to.index; at >= 0; at = prev[at] {
		route = append(route, g.cells[at])
	}
	for i, j := 0, len(route)-1; i < j; i, j = i+1, j-1 {
		route[i], route[j] = route[j], route[i]
	}
	return route, dist[to.index], nil
}
