package bidir

import (
	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/pathlab/grid"
	"github.com/katalvlaran/pathlab/search"
)

// Name identifies this search in snapshots and logs.
const Name = "bidirectional"

// side is one half of the search: a FIFO queue and the parent map
// toward its root.
type side struct {
	queue   []*grid.Cell
	head    int
	parents search.Parents
}

func newSide(root *grid.Cell, capacity int) *side {
	s := &side{
		queue:   make([]*grid.Cell, 0, capacity),
		parents: make(search.Parents, capacity),
	}
	s.queue = append(s.queue, root)
	s.parents[root] = nil
	return s
}

func (s *side) empty() bool { return s.head >= len(s.queue) }

func (s *side) pop() *grid.Cell {
	c := s.queue[s.head]
	s.head++
	return c
}

func (s *side) pending() []*grid.Cell { return s.queue[s.head:] }

// walker holds both halves plus the union of their visited cells.
type walker struct {
	g        *grid.Grid
	opts     search.Options
	fwd, bwd *side
	explored mapset.Set[*grid.Cell]
	frontier []*grid.Cell
	steps    int
	rounds   int
}

// Search runs bidirectional breadth-first search: one FIFO frontier grows
// from start, another from target, strictly alternating one expansion each
// per round. The first cell discovered by one side that the other side has
// already visited is the meeting cell; the path is merged there.
//
// A combined snapshot (both queues, both visited sets) is emitted once per
// round. Returns the zero Result when either side exhausts first.
func Search(g *grid.Grid, start, target *grid.Cell, opts ...search.Option) (search.Result, error) {
	o, err := search.Prepare(g, start, target, opts...)
	if err != nil {
		return search.Result{}, err
	}
	if start == target {
		return search.Result{Path: []*grid.Cell{start}}, nil
	}

	w := &walker{
		g:        g,
		opts:     o,
		fwd:      newSide(start, g.Len()),
		bwd:      newSide(target, g.Len()),
		explored: mapset.New[*grid.Cell](),
	}
	w.explored.Put(start)
	w.explored.Put(target)

	return w.loop()
}

// loop alternates the two sides until they meet or one runs dry.
func (w *walker) loop() (search.Result, error) {
	for !w.fwd.empty() && !w.bwd.empty() {
		if meet := w.expand(w.fwd, w.bwd); meet != nil {
			return w.result(meet), nil
		}
		if meet := w.expand(w.bwd, w.fwd); meet != nil {
			return w.result(meet), nil
		}

		w.rounds++
		if err := w.opts.Emit(search.Snapshot{
			Algorithm: Name,
			Step:      w.rounds,
			Frontier:  w.pending(),
			Explored:  w.explored,
		}); err != nil {
			return search.Result{Expanded: w.steps}, err
		}
	}
	return search.Result{Expanded: w.steps}, nil
}

// expand pops one cell from s and visits its open neighbours unseen by s.
// It returns the first newly visited cell that other has already visited.
func (w *walker) expand(s, other *side) *grid.Cell {
	curr := s.pop()
	w.steps++
	for _, nbr := range w.g.Neighbors(curr) {
		if nbr.IsWall() {
			continue
		}
		if _, seen := s.parents[nbr]; seen {
			continue
		}
		s.parents[nbr] = curr
		s.queue = append(s.queue, nbr)
		w.explored.Put(nbr)
		if _, met := other.parents[nbr]; met {
			return nbr
		}
	}
	return nil
}

// pending returns both queues' unexpanded cells, forward side first.
// The backing slice is reused between rounds.
func (w *walker) pending() []*grid.Cell {
	w.frontier = append(w.frontier[:0], w.fwd.pending()...)
	w.frontier = append(w.frontier, w.bwd.pending()...)
	return w.frontier
}

func (w *walker) result(meet *grid.Cell) search.Result {
	return search.Result{
		Path:     search.Merge(meet, w.fwd.parents, w.bwd.parents),
		Expanded: w.steps,
	}
}
