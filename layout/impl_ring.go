// SPDX-License-Identifier: MIT
// Package: pathlab/layout
//
// impl_ring.go - Ring(row, col, radius) and Clear() constructors.
//
// Contract:
//   • (row, col) must lie on the grid (else ErrOutOfBounds).
//   • radius ≥ 1 (else ErrTooSmall).
//   • Walls every cell at Chebyshev distance exactly radius from the centre.
//     Ring cells falling off the grid are skipped; the grid edge closes the ring.
//
// Complexity: O(radius) cells.

package layout

import "github.com/katalvlaran/pathlab/grid"

const (
	methodRing    = "Ring"
	minRingRadius = 1
)

// Ring returns a Constructor that walls a square ring around (row, col).
// A square ring has no diagonal gap, so it seals its inside.
func Ring(row, col, radius int) Constructor {
	return func(g *grid.Grid, cfg config) error {
		if !g.InBounds(row, col) {
			return layoutErrorf(methodRing, "centre (%d,%d): %w", row, col, ErrOutOfBounds)
		}
		if radius < minRingRadius {
			return layoutErrorf(methodRing, "radius=%d (must be ≥ %d): %w", radius, minRingRadius, ErrTooSmall)
		}

		// Top and bottom edges, corners included.
		for c := col - radius; c <= col+radius; c++ {
			cfg.wall(g, row-radius, c)
			cfg.wall(g, row+radius, c)
		}
		// Left and right edges, corners excluded.
		for r := row - radius + 1; r <= row+radius-1; r++ {
			cfg.wall(g, r, col-radius)
			cfg.wall(g, r, col+radius)
		}
		return nil
	}
}

// Clear returns a Constructor that opens every cell.
func Clear() Constructor {
	return func(g *grid.Grid, _ config) error {
		g.ClearWalls()
		return nil
	}
}
