// Package grid defines core types, options, and sentinel errors
// for the grid package of github.com/katalvlaran/pathlab.
package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid operations.
var (
	// ErrInvalidSize indicates Options.Size is outside [1, MaxSize].
	ErrInvalidSize = errors.New("grid: size out of range")
	// ErrOutOfBounds indicates a (row, col) pair outside [0,N)×[0,N).
	ErrOutOfBounds = errors.New("grid: coordinate out of bounds")
	// ErrEmptyGrid indicates Parse received no rows.
	ErrEmptyGrid = errors.New("grid: input must have at least one row")
	// ErrNonSquare indicates Parse received rows that do not form an N×N square.
	ErrNonSquare = errors.New("grid: rows must form an N×N square")
	// ErrInvalidSymbol indicates Parse met an unknown symbol or a duplicated marker.
	ErrInvalidSymbol = errors.New("grid: invalid symbol")
	// ErrForeignCell indicates a cell that is nil or owned by another grid.
	ErrForeignCell = errors.New("grid: cell does not belong to this grid")
)

const (
	// DefaultSize is the board edge length used by DefaultOptions.
	DefaultSize = 15
	// MaxSize caps the board edge length; pathlab targets small boards only.
	MaxSize = 64
	// Unreachable marks a cell with no open route in Distances.
	Unreachable = -1
)

// Offset is a (row, column) displacement between neighbouring cells.
type Offset struct {
	DRow, DCol int
	Name       string
}

// directions is the clockwise neighbour order, starting from "up".
// Every search enumerates neighbours in exactly this order.
var directions = [8]Offset{
	{-1, 0, "up"},
	{-1, 1, "up-right"},
	{0, 1, "right"},
	{1, 1, "down-right"},
	{1, 0, "down"},
	{1, -1, "down-left"},
	{0, -1, "left"},
	{-1, -1, "up-left"},
}

// Directions returns a copy of the neighbour order used by Neighbors.
func Directions() [8]Offset { return directions }

// Cell is one board position. Row, Col and Index are fixed at creation;
// the wall flag is changed only through Grid.SetWall.
type Cell struct {
	row, col int
	index    int
	wall     bool
}

// Row returns the cell's row index.
func (c *Cell) Row() int { return c.row }

// Col returns the cell's column index.
func (c *Cell) Col() int { return c.col }

// Index returns the row-major index row*N + col.
func (c *Cell) Index() int { return c.index }

// IsWall reports whether the cell is an obstacle.
func (c *Cell) IsWall() bool { return c.wall }

// String formats the cell as "(row,col)".
func (c *Cell) String() string {
	if c == nil {
		return "(nil)"
	}
	return fmt.Sprintf("(%d,%d)", c.row, c.col)
}

// Options contains tunable parameters for grid construction.
type Options struct {
	// Size is the edge length N of the square board.
	Size int
}

// DefaultOptions returns Options with Size = DefaultSize.
func DefaultOptions() Options {
	return Options{Size: DefaultSize}
}

// Grid is a square board of cells. Its shape never changes after New;
// only wall flags are mutable.
type Grid struct {
	size  int
	cells []*Cell // row-major
}
