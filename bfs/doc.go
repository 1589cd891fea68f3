// Package bfs provides breadth-first search over a grid.Grid,
// returning a start→target path with the fewest moves.
//
// What
//
//   - FIFO frontier seeded with start; visited set seeded with {start}.
//   - Target test on dequeue, so the returned path is shortest in edge count.
//   - Neighbours enumerated in grid.Directions() order; walls and visited
//     cells are skipped; a cell is enqueued at most once.
//   - After every expansion the Observer receives
//     Snapshot{Frontier: queue contents, Explored: visited set}.
//
// Determinism
//
//	Because grid.Neighbors follows the fixed clockwise table and the queue
//	is FIFO, two runs on the same board expand cells in the same order and
//	return the same path.
//
// Complexity (N = board edge)
//
//   - Time:   O(N²·8)   (each cell dequeued once, 8 neighbours each)
//   - Memory: O(N²)     (queue, visited set, scratch)
//
// Usage
//
//	res, err := bfs.Search(g, start, target,
//	    search.WithContext(ctx),
//	    search.WithObserver(func(s search.Snapshot) error { draw(s); return nil }),
//	)
//	if err != nil {
//	    // ErrGridNil, ErrCellNil, ErrForeignCell, ErrWallEndpoint, ErrAborted, ctx.Err()
//	}
//	if !res.Found() {
//	    // target unreachable
//	}
package bfs
