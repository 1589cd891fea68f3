// Package search provides tunable options, snapshot/result types and
// error definitions shared by every pathlab search algorithm.
package search

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/pathlab/grid"
)

// Sentinel errors for search execution.
var (
	// ErrGridNil is returned if a nil grid pointer is passed.
	ErrGridNil = errors.New("search: grid is nil")

	// ErrCellNil is returned if start or target is nil.
	ErrCellNil = errors.New("search: start or target cell is nil")

	// ErrForeignCell is returned when start or target belongs to another grid.
	ErrForeignCell = errors.New("search: cell does not belong to the grid")

	// ErrWallEndpoint is returned when start or target is a wall.
	ErrWallEndpoint = errors.New("search: start or target is a wall")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("search: invalid option supplied")

	// ErrAborted wraps an error returned by the Observer.
	ErrAborted = errors.New("search: aborted by observer")
)

const (
	// Infinity is the scratch cost of a cell not yet reached.
	Infinity = math.MaxInt

	// DefaultDepthLimit is the depth budget of plain depth-limited search.
	DefaultDepthLimit = 20
)

// Snapshot is the transient progress view handed to an Observer after each
// expansion step. Frontier and Explored are owned by the running search and
// are only valid for the duration of the Observer call; copy what you keep.
type Snapshot struct {
	// Algorithm names the emitting search ("bfs", "dfs", ...).
	Algorithm string

	// Step counts emissions from 1 within one run.
	Step int

	// Depth is the current depth budget for dls and iddfs, 0 otherwise.
	Depth int

	// Frontier lists cells discovered but not yet expanded.
	Frontier []*grid.Cell

	// Explored holds cells already expanded (or, for bfs/dfs, discovered).
	Explored mapset.Set[*grid.Cell]
}

// InFrontier reports whether c is currently on the frontier.
// Complexity: O(len(Frontier)).
func (s Snapshot) InFrontier(c *grid.Cell) bool {
	for _, f := range s.Frontier {
		if f == c {
			return true
		}
	}
	return false
}

// Observer receives a Snapshot after each expansion. It runs synchronously;
// the search continues only after it returns. A non-nil error stops the
// search, which then returns it wrapped in ErrAborted.
type Observer func(Snapshot) error

// Result is the terminal outcome of a search.
// Not-found is the zero Result with a nil error.
type Result struct {
	// Path lists cells from start to target inclusive; nil when not found.
	Path []*grid.Cell

	// Expanded counts the expansion steps performed. dls and iddfs count a
	// cell once per pass.
	Expanded int
}

// Found reports whether a path was produced.
func (r Result) Found() bool { return len(r.Path) > 0 }

// Edges returns the number of moves in Path, or -1 when not found.
func (r Result) Edges() int { return len(r.Path) - 1 }

// Option configures a search via functional arguments.
// If an Option is invalid (e.g. negative depth), it will be recorded
// internally and surfaced as ErrOptionViolation when the search is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize a search run.
type Options struct {
	// Ctx allows cancellation; checked at every snapshot emission.
	Ctx context.Context

	// Observer receives per-step snapshots. Never nil after DefaultOptions.
	Observer Observer

	// DepthLimit is the budget of plain depth-limited search.
	DepthLimit int

	// MaxDepth, if > 0, caps iterative deepening. 0 means N²-1.
	MaxDepth int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - Context.Background()
//   - no-op Observer
//   - DepthLimit = DefaultDepthLimit
//   - MaxDepth = 0 (iterative deepening up to N²-1)
func DefaultOptions() Options {
	return Options{
		Ctx:        context.Background(),
		Observer:   func(Snapshot) error { return nil },
		DepthLimit: DefaultDepthLimit,
		MaxDepth:   0,
		err:        nil,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithObserver registers the per-step snapshot callback.
func WithObserver(fn Observer) Option {
	return func(o *Options) {
		if fn != nil {
			o.Observer = fn
		}
	}
}

// WithDepthLimit sets the budget of depth-limited search.
//
//	d >= 0: limit to d edges
//	d < 0:  invalid option → ErrOptionViolation
func WithDepthLimit(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: DepthLimit cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.DepthLimit = d
	}
}

// WithMaxDepth caps the iterative-deepening loop.
//
//	d > 0:  try depths 0..d
//	d == 0: default bound N²-1
//	d < 0:  invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}
