// Package search is the contract shared by the six pathlab searches
// (bfs, dfs, ucs, dls/iddfs, bidir).
//
// What
//
//   - Options and functional Option constructors (context, observer,
//     depth limit, iterative-deepening cap).
//   - Snapshot: the per-step {frontier, explored} view handed to an Observer.
//   - Result: a start→target path, or the zero value for "not found".
//   - Scratch: the per-run parent/cost context, indexed by Cell.Index().
//     Grid cells carry no search state; two runs never share a Scratch.
//   - Trace and Merge: single-source and bidirectional path reconstruction.
//
// # Contract
//
// Every algorithm package exports
//
//	func Search(g *grid.Grid, start, target *grid.Cell, opts ...search.Option) (search.Result, error)
//
// and guarantees:
//
//   - Not-found is Result{} with a nil error, never an error value.
//   - Returned paths start at start, end at target, contain only open cells,
//     and every consecutive pair is adjacent in grid.Directions().
//   - The Observer is called once per expansion step, synchronously.
//   - Cancellation is checked only at snapshot emission; a done context
//     surfaces as ctx.Err(), an observer error as ErrAborted.
//
// Errors
//
//   - ErrGridNil, ErrCellNil, ErrForeignCell, ErrWallEndpoint for bad input.
//   - ErrOptionViolation for a negative depth limit or cap.
//   - ErrAborted wrapping the Observer's error.
package search
