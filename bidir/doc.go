// Package bidir implements bidirectional breadth-first search over a grid.Grid.
//
// Two FIFO frontiers grow at once, one from start and one from target, each
// with a parent map pointing back to its own root (roots map to nil).
// Rounds alternate strictly: one expansion from the start side, then one
// from the target side. After every newly visited neighbour the other
// side's parent map is consulted; the first hit is the meeting cell and
// the path is rebuilt with search.Merge, meeting cell exactly once.
//
// Strict alternation fixes which meeting cell is found first when several
// equal-length routes exist, so results are reproducible. The path is
// usually, but not always, as short as a BFS path.
//
// A combined snapshot is emitted once per full round: Frontier lists both
// queues (start side first), Explored is the union of both visited sets.
// When start == target the single-cell path is returned without expanding.
package bidir
