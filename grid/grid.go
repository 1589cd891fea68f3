// Package grid provides the square board used by every pathlab search:
//
//   - fixed N×N shape, threaded through Options rather than a global constant
//   - pointer-identity cells with a mutable wall flag
//   - clockwise 8-neighbour enumeration in the Directions() order
//
// Cells with the wall flag set are obstacles; everything else is open.
package grid

import (
	"fmt"
	"strings"
)

// New constructs an open (wall-free) grid of opts.Size × opts.Size cells.
// Returns ErrInvalidSize if opts.Size is outside [1, MaxSize].
// Complexity: O(N²) time and memory.
func New(opts Options) (*Grid, error) {
	if opts.Size < 1 || opts.Size > MaxSize {
		return nil, fmt.Errorf("%w: %d (want 1..%d)", ErrInvalidSize, opts.Size, MaxSize)
	}
	n := opts.Size
	g := &Grid{
		size:  n,
		cells: make([]*Cell, n*n),
	}
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			i := g.index(r, c)
			g.cells[i] = &Cell{row: r, col: c, index: i}
		}
	}

	return g, nil
}

// Size returns the edge length N.
func (g *Grid) Size() int { return g.size }

// Len returns the number of cells, N².
func (g *Grid) Len() int { return len(g.cells) }

// InBounds reports whether (row, col) lies within the grid.
// Complexity: O(1).
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.size && col >= 0 && col < g.size
}

// Cell returns the cell at (row, col) or ErrOutOfBounds.
func (g *Grid) Cell(row, col int) (*Cell, error) {
	if !g.InBounds(row, col) {
		return nil, fmt.Errorf("%w: (%d,%d) on %dx%d", ErrOutOfBounds, row, col, g.size, g.size)
	}
	return g.cells[g.index(row, col)], nil
}

// At returns the cell at row-major index i, or nil when i is out of range.
func (g *Grid) At(i int) *Cell {
	if i < 0 || i >= len(g.cells) {
		return nil
	}
	return g.cells[i]
}

// Cells returns every cell in row-major order. The slice is shared; do not modify it.
func (g *Grid) Cells() []*Cell { return g.cells }

// Owns reports whether c is a cell of this grid.
func (g *Grid) Owns(c *Cell) bool {
	return c != nil && c.index >= 0 && c.index < len(g.cells) && g.cells[c.index] == c
}

// SetWall sets or clears the wall flag at (row, col).
// Must not be called while a search is running on this grid.
func (g *Grid) SetWall(row, col int, wall bool) error {
	c, err := g.Cell(row, col)
	if err != nil {
		return err
	}
	c.wall = wall
	return nil
}

// ClearWalls opens every cell.
func (g *Grid) ClearWalls() {
	for _, c := range g.cells {
		c.wall = false
	}
}

// Walls returns the wall cells in row-major order.
func (g *Grid) Walls() []*Cell {
	var out []*Cell
	for _, c := range g.cells {
		if c.wall {
			out = append(out, c)
		}
	}
	return out
}

// Neighbors returns the in-bounds cells around c in Directions() order.
// Walls are included; callers filter them.
// Complexity: O(1).
func (g *Grid) Neighbors(c *Cell) []*Cell {
	out := make([]*Cell, 0, len(directions))
	for _, d := range directions {
		r, col := c.row+d.DRow, c.col+d.DCol
		if !g.InBounds(r, col) {
			continue
		}
		out = append(out, g.cells[g.index(r, col)])
	}
	return out
}

// Adjacent reports whether a and b differ by exactly one Directions() offset.
func Adjacent(a, b *Cell) bool {
	for _, d := range directions {
		if a.row+d.DRow == b.row && a.col+d.DCol == b.col {
			return true
		}
	}
	return false
}

// Format renders the grid as text: '#' for walls, '.' for open cells,
// with marks overriding either. Rows are newline-terminated.
func (g *Grid) Format(marks map[*Cell]byte) string {
	var b strings.Builder
	b.Grow(g.size * (g.size + 1))
	for _, c := range g.cells {
		switch m, ok := marks[c]; {
		case ok:
			b.WriteByte(m)
		case c.wall:
			b.WriteByte(symWall)
		default:
			b.WriteByte(symOpen)
		}
		if c.col == g.size-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// index maps (row, col) to a row-major index: row*N + col.
// Complexity: O(1).
func (g *Grid) index(row, col int) int {
	return row*g.size + col
}
