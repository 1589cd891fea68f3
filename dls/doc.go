// Package dls provides depth-limited search (Search) and iterative-deepening
// search (Deepening) over a grid.Grid.
//
// Depth-limited search
//
//	A recursive depth-first descent with a budget of remaining moves.
//	Base cases, in order: the cell is the target → single-cell tail found;
//	the budget is exhausted → not found. Otherwise the cell is expanded and
//	each open neighbour is tried in grid.Directions() order with budget-1;
//	the first success wins. The returned path never exceeds the limit but
//	is not necessarily the shortest.
//
//	The run remembers, per cell, the largest budget it was expanded with.
//	A neighbour is entered only if the new budget is strictly larger. This
//	bounds re-exploration and still finds a route whenever one fits in
//	the limit, which is what makes Deepening return shortest paths.
//
// Iterative deepening
//
//	Budgets 0, 1, …, N²-1 (or the search.WithMaxDepth cap), each with fresh
//	bookkeeping. The first budget that reaches the target gives a path with
//	the fewest moves. A budget that completes without cutting any branch
//	off proves the target unreachable, and the loop stops early. So does a
//	budget that expands no more distinct cells than the one before it.
//
// Snapshots
//
//	Emitted on the first expansion of each cell in a pass; re-expansions
//	with a larger budget are silent. Result.Expanded counts the same
//	first expansions. Frontier is the current recursion chain
//	(start first), Explored the cells expanded in this budget, and Depth
//	the budget of the running pass.
//
// Recursion depth is bounded by the budget, itself at most N²-1 cells.
package dls
