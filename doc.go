// Package pathlab is a grid pathfinding sandbox.
//
// An N×N board of open cells and walls (8-connected, unit move cost) is
// searched from a start cell to a target cell by six uninformed
// algorithms, each publishing a snapshot of its frontier and explored set
// after every step:
//
//	bfs/        breadth-first search (fewest moves)
//	dfs/        depth-first search (any path)
//	ucs/        uniform-cost search (cheapest path, FIFO tie-break)
//	dls/        depth-limited search and iterative deepening
//	bidir/      bidirectional breadth-first search
//
// Supporting packages:
//
//	grid/       the board: cells, walls, neighbours, parsing, distances
//	search/     shared options, snapshots, results and path scratch state
//	layout/     wall-pattern constructors (rings, lines, barriers, random)
//	pathfinder/ algorithm selection and the interactive Session
//
// Front ends live under internal/ (terminal UI, HTTP API, configuration)
// and cmd/pathlab.
package pathlab
