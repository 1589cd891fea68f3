package ucs

import (
	"container/heap"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/pathlab/grid"
	"github.com/katalvlaran/pathlab/search"
)

// Name identifies this search in snapshots and logs.
const Name = "ucs"

// stepCost is the price of any single move.
const stepCost = 1

// Search runs uniform-cost search on g from start to target.
//
// Steps:
//  1. Prepare options and validate input.
//  2. Seed the heap with start at cost 0.
//  3. Pop the cheapest live entry; stop if it is the target.
//  4. Relax every open neighbour whose cost improves, pushing a new entry.
//  5. Emit a snapshot; repeat until the heap is empty.
//
// Returns the zero Result if target is unreachable.
func Search(g *grid.Grid, start, target *grid.Cell, opts ...search.Option) (search.Result, error) {
	// 1) Options and validation.
	o, err := search.Prepare(g, start, target, opts...)
	if err != nil {
		return search.Result{}, err
	}

	// 2) Runner with a fresh scratch and an empty heap.
	r := &runner{
		g:        g,
		options:  o,
		target:   target,
		scratch:  search.NewScratch(g),
		expanded: mapset.New[*grid.Cell](),
		pq:       make(nodePQ, 0, g.Len()),
	}
	r.init(start)

	// 3) Main loop.
	return r.process()
}

// runner holds the mutable state for a single UCS execution.
type runner struct {
	g        *grid.Grid             // board; read-only within the run
	options  search.Options         // observer, context
	target   *grid.Cell             // goal cell
	scratch  *search.Scratch        // best cost and parent per cell
	expanded mapset.Set[*grid.Cell] // cells whose cost is final
	pq       nodePQ                 // min-heap with lazy decrease-key
	seq      int                    // next insertion sequence number
	steps    int                    // expansions so far
}

// init sets the start cost to zero and pushes it.
func (r *runner) init(start *grid.Cell) {
	heap.Init(&r.pq)
	r.scratch.SetCost(start, 0)
	r.push(start, 0)
}

// push adds an entry stamped with the next sequence number.
func (r *runner) push(c *grid.Cell, cost int) {
	heap.Push(&r.pq, &nodeItem{cell: c, cost: cost, seq: r.seq})
	r.seq++
}

// process repeatedly extracts the cheapest live entry and relaxes its neighbours.
func (r *runner) process() (search.Result, error) {
	for r.pq.Len() > 0 {
		// 1) Pop the smallest (cost, seq) item.
		item := heap.Pop(&r.pq).(*nodeItem)
		u := item.cell

		// 2) Skip stale entries: the cell was relaxed again after this push.
		if item.cost != r.scratch.Cost(u) || r.expanded.Has(u) {
			continue
		}

		// 3) Target test on pop: its cost is final here.
		if u == r.target {
			return search.Result{Path: r.scratch.Trace(u), Expanded: r.steps}, nil
		}

		// 4) Finalize and relax.
		r.expanded.Put(u)
		r.relax(u, item.cost)
		r.steps++

		// 5) Snapshot of the live frontier.
		if err := r.options.Emit(search.Snapshot{
			Algorithm: Name,
			Step:      r.steps,
			Frontier:  r.frontier(),
			Explored:  r.expanded,
		}); err != nil {
			return search.Result{Expanded: r.steps}, err
		}
	}

	return search.Result{Expanded: r.steps}, nil
}

// relax improves the cost of every open neighbour of u reachable for less
// than its recorded cost. Equal costs are not pushed again.
func (r *runner) relax(u *grid.Cell, cost int) {
	newCost := cost + stepCost
	for _, v := range r.g.Neighbors(u) {
		if v.IsWall() || r.expanded.Has(v) {
			continue
		}
		if newCost >= r.scratch.Cost(v) {
			continue
		}
		r.scratch.SetCost(v, newCost)
		r.scratch.SetParent(v, u)
		r.push(v, newCost)
	}
}

// frontier lists the heap's live cells, skipping stale entries.
func (r *runner) frontier() []*grid.Cell {
	out := make([]*grid.Cell, 0, len(r.pq))
	for _, it := range r.pq {
		if it.cost == r.scratch.Cost(it.cell) && !r.expanded.Has(it.cell) {
			out = append(out, it.cell)
		}
	}
	return out
}

// nodeItem is a heap entry: a cell, the cost it was pushed with, and its
// insertion sequence number.
type nodeItem struct {
	cell *grid.Cell
	cost int
	seq  int
}

// nodePQ is a min-heap of *nodeItem ordered by cost, then by seq.
// Outdated entries stay in the heap and are ignored when popped.
type nodePQ []*nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less orders by cost; equal costs pop in insertion order.
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].cost != pq[j].cost {
		return pq[i].cost < pq[j].cost
	}
	return pq[i].seq < pq[j].seq
}

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
// Called by heap.Push; x must be of type *nodeItem.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the smallest element from the heap.
// Called by heap.Pop; returns interface{} that must be cast to *nodeItem.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
