// Package ucs implements uniform-cost search over a grid.Grid.
//
// Every move costs 1, so UCS returns paths as short as BFS does, but it
// gets there through cost relaxation on a priority queue:
//
//   - Each heap entry carries (cost, seq). seq is a monotonically increasing
//     insertion counter, so equal-cost entries pop in the order they were
//     pushed, independent of memory layout.
//   - Lazy decrease-key: a relaxed cell gets a fresh entry. Entries whose
//     cost no longer matches the cell's recorded cost are discarded on pop.
//   - The target test happens on pop, when the popped cost is final.
//   - Snapshot.Frontier lists live heap entries; Snapshot.Explored holds
//     the cells whose cost is final.
//
// Complexity (C = N² cells):
//
//   - Time:   O(C·8·log C)
//   - Memory: O(C) for the heap, scratch and expanded set.
//
// Errors are the shared ones from package search.
package ucs
