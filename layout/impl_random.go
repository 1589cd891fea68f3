// SPDX-License-Identifier: MIT
// Package: pathlab/layout
//
// impl_random.go - Random(density) constructor.
//
// Contract:
//   • 0 ≤ density ≤ 1 (else ErrInvalidDensity).
//   • Draws one float per cell in row-major order from cfg.rng; the cell
//     becomes a wall when the draw is < density. Existing walls are kept.
//   • Deterministic for a fixed seed and grid size.
//
// Complexity: O(N²).

package layout

import "github.com/katalvlaran/pathlab/grid"

const methodRandom = "Random"

// Random returns a Constructor that scatters walls with the given density.
func Random(density float64) Constructor {
	return func(g *grid.Grid, cfg config) error {
		if density < 0 || density > 1 {
			return layoutErrorf(methodRandom, "density=%g (want 0..1): %w", density, ErrInvalidDensity)
		}
		for _, c := range g.Cells() {
			// one draw per cell, kept cells included
			if cfg.rng.Float64() < density {
				cfg.wall(g, c.Row(), c.Col())
			}
		}
		return nil
	}
}
