// SPDX-License-Identifier: MIT
// Package: pathlab/layout
//
// options.go - functional options for the layout package.
//
// Contract:
//   • Options are functional (type Option func(*config)).
//   • Option constructors PANIC on meaningless inputs (nil RNG).
//     Constructors themselves never panic.
//   • Seeding is explicit via WithSeed or WithRand.

package layout

import (
	"math/rand"

	"github.com/katalvlaran/pathlab/grid"
)

// Option customizes a layout run by mutating config before constructors run.
type Option func(*config)

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand provides an explicit RNG for Random.
// Panics on nil; prefer WithSeed for reproducible layouts.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("layout: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = r
	}
}

// WithKeep names cells that must stay open (typically start and target).
// nil cells are ignored.
func WithKeep(cells ...*grid.Cell) Option {
	return func(c *config) {
		for _, cell := range cells {
			if cell != nil {
				c.keep = append(c.keep, cell)
			}
		}
	}
}
