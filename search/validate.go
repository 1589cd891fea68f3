package search

import (
	"fmt"

	"github.com/katalvlaran/pathlab/grid"
)

// Prepare applies opts over DefaultOptions and validates the search input.
// Every algorithm calls it first.
//
// Returns ErrOptionViolation for bad options, ErrGridNil, ErrCellNil,
// ErrForeignCell or ErrWallEndpoint for bad input.
func Prepare(g *grid.Grid, start, target *grid.Cell, opts ...Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return o, o.err
	}

	return o, Validate(g, start, target)
}

// Validate checks that start and target are non-nil, open cells of g.
func Validate(g *grid.Grid, start, target *grid.Cell) error {
	if g == nil {
		return ErrGridNil
	}
	if start == nil || target == nil {
		return ErrCellNil
	}
	if !g.Owns(start) {
		return fmt.Errorf("%w: start %v", ErrForeignCell, start)
	}
	if !g.Owns(target) {
		return fmt.Errorf("%w: target %v", ErrForeignCell, target)
	}
	if start.IsWall() {
		return fmt.Errorf("%w: start %v", ErrWallEndpoint, start)
	}
	if target.IsWall() {
		return fmt.Errorf("%w: target %v", ErrWallEndpoint, target)
	}
	return nil
}

// Emit checks the context and hands s to the observer.
// A done context yields ctx.Err(); an observer error is wrapped in ErrAborted.
func (o Options) Emit(s Snapshot) error {
	select {
	case <-o.Ctx.Done():
		return o.Ctx.Err()
	default:
	}
	if err := o.Observer(s); err != nil {
		return fmt.Errorf("%w: %w", ErrAborted, err)
	}
	return nil
}
