// Package bfs provides breadth-first search over a grid.Grid,
// returning a start→target path with the fewest moves.
//
// BFS explores cells in increasing move count from the start,
// emitting a snapshot after every expansion.
package bfs

import (
	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/pathlab/grid"
	"github.com/katalvlaran/pathlab/search"
)

// Name identifies this search in snapshots and logs.
const Name = "bfs"

// walker encapsulates mutable BFS state.
type walker struct {
	grid    *grid.Grid
	opts    search.Options
	target  *grid.Cell
	queue   []*grid.Cell
	head    int
	visited mapset.Set[*grid.Cell]
	scratch *search.Scratch
	steps   int
}

// Search runs breadth-first search on g from start to target,
// applying any number of functional Options.
// Returns the zero Result when target is unreachable, search.ErrGridNil,
// search.ErrCellNil, search.ErrForeignCell or search.ErrWallEndpoint for
// invalid input, search.ErrOptionViolation for bad options, and
// search.ErrAborted or ctx.Err() when stopped at a snapshot.
func Search(g *grid.Grid, start, target *grid.Cell, opts ...search.Option) (search.Result, error) {
	o, err := search.Prepare(g, start, target, opts...)
	if err != nil {
		return search.Result{}, err
	}

	// Prepare walker
	w := &walker{
		grid:    g,
		opts:    o,
		target:  target,
		queue:   make([]*grid.Cell, 0, g.Len()),
		visited: mapset.New[*grid.Cell](),
		scratch: search.NewScratch(g),
	}

	// Seed queue with start (no parent)
	w.enqueue(start, nil)
	// Main loop
	return w.loop()
}

// enqueue marks c visited, records its parent, and appends it to the queue.
func (w *walker) enqueue(c, parent *grid.Cell) {
	w.visited.Put(c)
	w.scratch.SetParent(c, parent)
	w.queue = append(w.queue, c)
}

// loop processes the queue until the target is dequeued, the queue
// empties, or a snapshot stops the run.
func (w *walker) loop() (search.Result, error) {
	for w.head < len(w.queue) {
		curr := w.queue[w.head]
		w.head++

		if curr == w.target {
			return search.Result{Path: w.scratch.Trace(curr), Expanded: w.steps}, nil
		}

		for _, nbr := range w.grid.Neighbors(curr) {
			if nbr.IsWall() || w.visited.Has(nbr) {
				continue
			}
			w.enqueue(nbr, curr)
		}
		w.steps++

		if err := w.opts.Emit(search.Snapshot{
			Algorithm: Name,
			Step:      w.steps,
			Frontier:  w.queue[w.head:],
			Explored:  w.visited,
		}); err != nil {
			return search.Result{Expanded: w.steps}, err
		}
	}
	return search.Result{Expanded: w.steps}, nil
}
