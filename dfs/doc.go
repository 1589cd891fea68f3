// Package dfs implements depth-first search over a grid.Grid.
//
// The frontier is a LIFO stack: the neighbour pushed last (the latest one
// in grid.Directions() order) is expanded first. The visited set is seeded
// with start and updated on push, so no cell is stacked twice. The target
// test happens on pop, and the first route found is returned as is.
//
// DFS does not guarantee the fewest moves; use bfs, ucs or dls.Deepening
// when that matters.
package dfs
