// Package grid models the square board that every search in pathlab runs on.
//
// What:
//
//   - Grid is an N×N row-major container of *Cell values; N comes from
//     Options.Size (default DefaultSize = 15) and is fixed for the grid's life.
//   - Cell identity is its pointer; Row, Col and Index never change. The only
//     mutable attribute is the wall flag, changed through Grid.SetWall.
//   - Neighbors enumerates up to eight in-bounds cells in the published
//     Directions() order (clockwise, starting from "up"). Walls are NOT filtered;
//     callers decide what is passable.
//   - Distances computes exhaustive hop counts over open cells, Components finds
//     open regions, and MinBreach finds the route crossing the fewest walls.
//
// Direction table:
//
//	index  offset (row,col)  name
//	0      (-1, 0)           up
//	1      (-1,+1)           up-right
//	2      ( 0,+1)           right
//	3      (+1,+1)           down-right
//	4      (+1, 0)           down
//	5      (+1,-1)           down-left
//	6      ( 0,-1)           left
//	7      (-1,-1)           up-left
//
// Tie-breaking in every search depends on this order, so it is part of the
// package contract and never changes.
//
// Complexity:
//
//   - Neighbors:    O(1) (at most 8 offsets).
//   - Distances:    O(N²·8), Memory O(N²).
//   - Components:   O(N²·8), Memory O(N²).
//   - MinBreach:    O(N²·8), Memory O(N²).
//
// Errors:
//
//   - ErrInvalidSize:    Options.Size outside [1, MaxSize].
//   - ErrOutOfBounds:    Cell/SetWall called with a coordinate outside the grid.
//   - ErrEmptyGrid:      Parse got no rows.
//   - ErrNonSquare:      Parse rows differ in length from the row count.
//   - ErrInvalidSymbol:  Parse met an unknown symbol or a repeated S/T marker.
//   - ErrForeignCell:    a *Cell that does not belong to this grid.
package grid
