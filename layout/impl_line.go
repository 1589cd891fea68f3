// SPDX-License-Identifier: MIT
// Package: pathlab/layout
//
// impl_line.go - HLine, VLine and Barrier constructors.
//
// Contract:
//   • Every cell of a segment must lie on the grid (else ErrOutOfBounds).
//   • from ≤ to (else ErrTooSmall); both ends inclusive.
//   • Barrier walls a whole column except the listed gap rows; gap rows
//     off the grid are ignored.
//
// Complexity: O(length) cells.

package layout

import "github.com/katalvlaran/pathlab/grid"

const (
	methodHLine   = "HLine"
	methodVLine   = "VLine"
	methodBarrier = "Barrier"
)

// HLine returns a Constructor that walls row from column from to column to.
func HLine(row, from, to int) Constructor {
	return func(g *grid.Grid, cfg config) error {
		if err := checkSegment(methodHLine, g, row, from, to); err != nil {
			return err
		}
		for c := from; c <= to; c++ {
			cfg.wall(g, row, c)
		}
		return nil
	}
}

// VLine returns a Constructor that walls column col from row from to row to.
func VLine(col, from, to int) Constructor {
	return func(g *grid.Grid, cfg config) error {
		if err := checkSegment(methodVLine, g, col, from, to); err != nil {
			return err
		}
		for r := from; r <= to; r++ {
			cfg.wall(g, r, col)
		}
		return nil
	}
}

// Barrier returns a Constructor that walls the full height of column col,
// leaving the rows in gaps open.
func Barrier(col int, gaps ...int) Constructor {
	return func(g *grid.Grid, cfg config) error {
		if col < 0 || col >= g.Size() {
			return layoutErrorf(methodBarrier, "col=%d on %dx%d: %w", col, g.Size(), g.Size(), ErrOutOfBounds)
		}
		open := make(map[int]bool, len(gaps))
		for _, r := range gaps {
			open[r] = true
		}
		for r := 0; r < g.Size(); r++ {
			if !open[r] {
				cfg.wall(g, r, col)
			}
		}
		return nil
	}
}

// checkSegment validates a line at fixed index `at` spanning [from, to].
func checkSegment(method string, g *grid.Grid, at, from, to int) error {
	if from > to {
		return layoutErrorf(method, "from=%d > to=%d: %w", from, to, ErrTooSmall)
	}
	n := g.Size()
	if at < 0 || at >= n || from < 0 || to >= n {
		return layoutErrorf(method, "segment %d:[%d..%d] on %dx%d: %w", at, from, to, n, n, ErrOutOfBounds)
	}
	return nil
}
