// SPDX-License-Identifier: MIT
// Package: pathlab/layout
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • rng  = rand.New(rand.NewSource(DefaultSeed))
//   • keep = none

package layout

import (
	"math/rand"

	"github.com/katalvlaran/pathlab/grid"
)

// DefaultSeed seeds Random when neither WithSeed nor WithRand is given.
const DefaultSeed int64 = 1

// config aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type config struct {
	rng  *rand.Rand   // source for Random
	keep []*grid.Cell // cells that must stay open
}

// newConfig applies options in order over the defaults; last wins.
func newConfig(opts ...Option) config {
	cfg := config{
		rng: rand.New(rand.NewSource(DefaultSeed)),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// kept reports whether c was named by WithKeep.
func (c config) kept(cell *grid.Cell) bool {
	for _, k := range c.keep {
		if k == cell {
			return true
		}
	}
	return false
}

// wall sets a wall at (r, c) unless it is out of bounds or kept.
func (c config) wall(g *grid.Grid, r, col int) {
	cell, err := g.Cell(r, col)
	if err != nil || c.kept(cell) {
		return
	}
	_ = g.SetWall(r, col, true)
}
