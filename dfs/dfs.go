// Package dfs implements depth‑first search on a grid.Grid with an explicit
// LIFO stack. It accepts the first route it discovers; that route is valid
// but not necessarily the shortest.
//
// Key features:
//   - Search(g, start, target, opts...): single-source search to one target
//   - Visited-on-push: a cell enters the stack at most once
//   - Per-expansion snapshots through search.WithObserver
//   - Cancellation via search.WithContext
//
// Complexity:
//
//   - Time:   O(N²·8) for N×N boards.
//   - Memory: O(N²) for the stack, visited set and scratch.
//
// Errors:
//
//   - search.ErrGridNil, search.ErrCellNil, search.ErrForeignCell,
//     search.ErrWallEndpoint for invalid input.
//   - search.ErrAborted wrapping an Observer error, or ctx.Err().
package dfs

import (
	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/pathlab/grid"
	"github.com/katalvlaran/pathlab/search"
)

// Name identifies this search in snapshots and logs.
const Name = "dfs"

// dfsWalker encapsulates state during DFS.
type dfsWalker struct {
	grid    *grid.Grid             // board being searched
	opts    search.Options         // run options
	target  *grid.Cell             // goal cell
	stack   []*grid.Cell           // LIFO frontier
	visited mapset.Set[*grid.Cell] // cells ever pushed
	scratch *search.Scratch        // parent links
	steps   int                    // expansions so far
}

// Search performs depth‑first search on g from start to target.
// Returns the zero Result if target is unreachable.
func Search(g *grid.Grid, start, target *grid.Cell, opts ...search.Option) (search.Result, error) {
	// 1. Apply options and validate input
	o, err := search.Prepare(g, start, target, opts...)
	if err != nil {
		return search.Result{}, err
	}

	// 2. Initialize walker with a fresh scratch
	w := &dfsWalker{
		grid:    g,
		opts:    o,
		target:  target,
		stack:   make([]*grid.Cell, 0, g.Len()),
		visited: mapset.New[*grid.Cell](),
		scratch: search.NewScratch(g),
	}

	// 3. Seed and run
	w.push(start, nil)
	return w.run()
}

// push marks c visited, records its parent and places it on top of the stack.
func (w *dfsWalker) push(c, parent *grid.Cell) {
	w.visited.Put(c)
	w.scratch.SetParent(c, parent)
	w.stack = append(w.stack, c)
}

// run pops until the target surfaces or the stack empties.
func (w *dfsWalker) run() (search.Result, error) {
	for len(w.stack) > 0 {
		top := len(w.stack) - 1
		curr := w.stack[top]
		w.stack = w.stack[:top]

		if curr == w.target {
			return search.Result{Path: w.scratch.Trace(curr), Expanded: w.steps}, nil
		}

		for _, nbr := range w.grid.Neighbors(curr) {
			if nbr.IsWall() || w.visited.Has(nbr) {
				continue
			}
			w.push(nbr, curr)
		}
		w.steps++

		if err := w.opts.Emit(search.Snapshot{
			Algorithm: Name,
			Step:      w.steps,
			Frontier:  w.stack,
			Explored:  w.visited,
		}); err != nil {
			return search.Result{Expanded: w.steps}, err
		}
	}
	return search.Result{Expanded: w.steps}, nil
}
