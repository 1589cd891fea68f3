// Package layout builds deterministic wall patterns on a grid.Grid.
//
// Patterns are Constructors composed by Apply:
//
//	err := layout.Apply(g,
//	    []layout.Option{layout.WithSeed(42), layout.WithKeep(start, target)},
//	    layout.Clear(),
//	    layout.Ring(7, 7, 2),
//	    layout.Random(0.2),
//	)
//
// Constructors:
//
//   - Clear()                    open every cell
//   - Ring(row, col, radius)     square wall ring at Chebyshev distance radius
//   - HLine(row, from, to)       horizontal wall segment, inclusive
//   - VLine(col, from, to)       vertical wall segment, inclusive
//   - Barrier(col, gaps...)      full-height wall at col, open at the gap rows
//   - Random(density)            each cell becomes a wall with probability density
//
// A gap-free Ring seals its centre: no search can reach a target placed
// there, which is the classic unreachable fixture.
package layout
