package dls

import (
	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/pathlab/grid"
	"github.com/katalvlaran/pathlab/search"
)

// Names identify the two searches in snapshots and logs.
const (
	Name          = "dls"
	DeepeningName = "iddfs"
)

// unexpanded marks a cell never expanded in this run.
const unexpanded = -1

// walker holds the state of one depth-limited descent.
type walker struct {
	g        *grid.Grid
	opts     search.Options
	name     string
	limit    int
	target   *grid.Cell
	scratch  *search.Scratch
	budget   []int                  // largest budget each cell was expanded with
	expanded mapset.Set[*grid.Cell] // cells expanded at least once
	chain    []*grid.Cell           // current recursion path, root first
	cutoff   bool                   // some branch stopped at budget 0
	steps    int                    // first expansions, one snapshot each
}

func newWalker(g *grid.Grid, o search.Options, name string, target *grid.Cell, limit int) *walker {
	w := &walker{
		g:        g,
		opts:     o,
		name:     name,
		limit:    limit,
		target:   target,
		scratch:  search.NewScratch(g),
		budget:   make([]int, g.Len()),
		expanded: mapset.New[*grid.Cell](),
		chain:    make([]*grid.Cell, 0, limit+1),
	}
	for i := range w.budget {
		w.budget[i] = unexpanded
	}
	return w
}

// Search runs depth-limited search with the budget set by
// search.WithDepthLimit (default search.DefaultDepthLimit). The returned
// path never has more edges than the limit, but need not be the shortest.
// Returns the zero Result if target is unreachable within the limit.
func Search(g *grid.Grid, start, target *grid.Cell, opts ...search.Option) (search.Result, error) {
	o, err := search.Prepare(g, start, target, opts...)
	if err != nil {
		return search.Result{}, err
	}

	w := newWalker(g, o, Name, target, o.DepthLimit)
	found, err := w.descend(start, o.DepthLimit)
	return w.result(found), err
}

// Deepening runs iterative-deepening search: depth-limited search with
// budgets 0, 1, 2, … until the target is reached. The first success is a
// path with the fewest moves.
//
// The budget runs up to N²-1, or to the cap set by search.WithMaxDepth.
// The loop stops early, with not-found, when a pass cuts no branch off or
// expands no more distinct cells than the previous pass: pass d expands
// exactly the cells within d-1 moves, so an unchanged count means the
// start's region is exhausted.
//
// Expanded sums the distinct cells expanded by each pass.
func Deepening(g *grid.Grid, start, target *grid.Cell, opts ...search.Option) (search.Result, error) {
	o, err := search.Prepare(g, start, target, opts...)
	if err != nil {
		return search.Result{}, err
	}

	maxDepth := g.Len() - 1
	if o.MaxDepth > 0 {
		maxDepth = o.MaxDepth
	}

	var steps int
	reached := -1
	for d := 0; d <= maxDepth; d++ {
		// fresh scratch and bookkeeping per depth
		w := newWalker(g, o, DeepeningName, target, d)
		w.steps = steps
		found, err := w.descend(start, d)
		steps = w.steps
		if err != nil {
			return search.Result{Expanded: steps}, err
		}
		if found {
			res := w.result(true)
			res.Expanded = steps
			return res, nil
		}
		if !w.cutoff || w.expanded.Size() == reached {
			break
		}
		reached = w.expanded.Size()
	}
	return search.Result{Expanded: steps}, nil
}

// descend is the recursive step. It reports whether target was reached
// from c with the given remaining budget.
//
// Base cases: c is the target → found; budget <= 0 → not found.
// A cell is expanded again only with a strictly larger budget than any
// earlier expansion in this run, which keeps re-exploration bounded while
// preserving every route that fits in the budget. Only the first
// expansion of a cell emits a snapshot; re-expansions check the context.
func (w *walker) descend(c *grid.Cell, budget int) (bool, error) {
	if c == w.target {
		return true, nil
	}
	if budget <= 0 {
		w.cutoff = true
		return false, nil
	}

	first := !w.expanded.Has(c)
	w.budget[c.Index()] = budget
	w.expanded.Put(c)
	w.chain = append(w.chain, c)
	defer func() { w.chain = w.chain[:len(w.chain)-1] }()

	if first {
		w.steps++
		if err := w.opts.Emit(search.Snapshot{
			Algorithm: w.name,
			Step:      w.steps,
			Depth:     w.limit,
			Frontier:  w.chain,
			Explored:  w.expanded,
		}); err != nil {
			return false, err
		}
	} else if err := w.opts.Ctx.Err(); err != nil {
		return false, err
	}

	for _, nbr := range w.g.Neighbors(c) {
		if nbr.IsWall() || w.budget[nbr.Index()] >= budget-1 {
			continue
		}
		w.scratch.SetParent(nbr, c)
		found, err := w.descend(nbr, budget-1)
		if err != nil || found {
			return found, err
		}
	}
	return false, nil
}

// result traces the path when found.
func (w *walker) result(found bool) search.Result {
	if !found {
		return search.Result{Expanded: w.steps}
	}
	return search.Result{Path: w.scratch.Trace(w.target), Expanded: w.steps}
}
