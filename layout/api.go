// SPDX-License-Identifier: MIT
// Package: pathlab/layout
//
// api.go - public entry point for the layout package.
//
// Design contract:
//   - One orchestrator: Apply(g, opts, cons...). Resolves cfg, runs cons in order.
//   - Constructors only ever set wall flags; kept cells (WithKeep) stay open.
//   - Determinism: same grid size, options, seed and constructor order ⇒ same walls.
//   - Safety: constructors never panic; they return sentinel errors.

package layout

import (
	"fmt"

	"github.com/katalvlaran/pathlab/grid"
)

// Constructor applies a deterministic wall pattern to g using the resolved
// config. Constructors validate their parameters first and return sentinel
// errors without touching g when they are invalid.
type Constructor func(g *grid.Grid, cfg config) error

// Apply resolves opts and runs every constructor on g in order.
// Walls already present are kept; use Clear() first for a fresh layout.
// Cells named by WithKeep are reopened after the last constructor.
//
// Errors:
//   - ErrConstructFailed for a nil grid or a nil constructor.
//   - Constructor errors wrapped as "Apply: %w".
//
// Complexity: Σ cost of each constructor, O(N²) at most per constructor.
func Apply(g *grid.Grid, opts []Option, cons ...Constructor) error {
	if g == nil {
		return fmt.Errorf("Apply: nil grid: %w", ErrConstructFailed)
	}
	cfg := newConfig(opts...)

	for i, fn := range cons {
		if fn == nil {
			return fmt.Errorf("Apply: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return fmt.Errorf("Apply: %w", err)
		}
	}

	// Kept cells win over any constructor.
	for _, c := range cfg.keep {
		if g.Owns(c) {
			_ = g.SetWall(c.Row(), c.Col(), false)
		}
	}
	return nil
}
