package ucs

import (
	"container/heap"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/pathlab/grid"
	"github.com/katalvlaran/pathlab/search"
	"github.com/katalvlaran/pathlab/search/searchtest"
)

// TestNodePQ_TieBreak pops equal costs in insertion order.
func TestNodePQ_TieBreak(t *testing.T) {
	g, err := grid.New(grid.Options{Size: 3})
	require.NoError(t, err)

	pq := make(nodePQ, 0)
	heap.Init(&pq)
	// cost 2 first, then three cost-1 entries in seq order 1, 2, 3
	heap.Push(&pq, &nodeItem{cell: g.At(8), cost: 2, seq: 0})
	heap.Push(&pq, &nodeItem{cell: g.At(5), cost: 1, seq: 3})
	heap.Push(&pq, &nodeItem{cell: g.At(1), cost: 1, seq: 1})
	heap.Push(&pq, &nodeItem{cell: g.At(3), cost: 1, seq: 2})

	var order []int
	for pq.Len() > 0 {
		order = append(order, heap.Pop(&pq).(*nodeItem).cell.Index())
	}
	assert.Equal(t, []int{1, 3, 5, 8}, order)
}

// TestSearch_ShortestOnOpenBoards compares with the distance oracle.
func TestSearch_ShortestOnOpenBoards(t *testing.T) {
	for _, pair := range [][2][2]int{
		{{0, 0}, {14, 14}},
		{{14, 0}, {0, 3}},
		{{7, 7}, {7, 7}},
		{{2, 9}, {11, 4}},
	} {
		g, start, target := searchtest.Open(t, grid.DefaultSize, pair[0], pair[1])
		res, err := Search(g, start, target)
		require.NoError(t, err)
		searchtest.RequireValidPath(t, g, start, target, res.Path)
		assert.Equal(t, searchtest.Distance(g, start, target), res.Edges(), "pair %v", pair)
	}
}

// TestSearch_ScenarioA is 14 diagonal moves on the default board.
func TestSearch_ScenarioA(t *testing.T) {
	g, start, target := searchtest.Open(t, grid.DefaultSize, [2]int{0, 0}, [2]int{14, 14})
	res, err := Search(g, start, target)
	require.NoError(t, err)
	assert.Equal(t, 14, res.Edges())
}

// TestSearch_Scenarios covers enclosed, adjacent and two-route boards.
func TestSearch_Scenarios(t *testing.T) {
	g, start, target := searchtest.Board(t, searchtest.Enclosed)
	res, err := Search(g, start, target)
	require.NoError(t, err)
	assert.False(t, res.Found())
	assert.Equal(t, 40, res.Expanded)

	g, start, target = searchtest.Board(t, searchtest.Adjacent)
	res, err = Search(g, start, target)
	require.NoError(t, err)
	assert.Equal(t, []*grid.Cell{start, target}, res.Path)

	g, start, target = searchtest.Board(t, searchtest.TwoRoutes)
	res, err = Search(g, start, target)
	require.NoError(t, err)
	assert.Equal(t, 2, res.Edges())
}

// TestRunner_FinalCostsAreOptimal checks that no expanded cell was
// finalized at a cost above its true distance.
func TestRunner_FinalCostsAreOptimal(t *testing.T) {
	g, start, target := searchtest.Board(t, []string{
		"S..#.....",
		".#.#.###.",
		".#...#...",
		".####.#.#",
		"......#..",
		"#.###.##.",
		"..#...#..",
		".##.#.#.#",
		"....#...T",
	})
	o, err := search.Prepare(g, start, target)
	require.NoError(t, err)

	r := &runner{
		g:        g,
		options:  o,
		target:   target,
		scratch:  search.NewScratch(g),
		expanded: mapset.New[*grid.Cell](),
		pq:       make(nodePQ, 0),
	}
	r.init(start)
	res, err := r.process()
	require.NoError(t, err)

	dist := g.Distances(start)
	assert.Equal(t, dist[target.Index()], res.Edges())
	r.expanded.Each(func(c *grid.Cell) {
		assert.Equal(t, dist[c.Index()], r.scratch.Cost(c), "cell %v", c)
	})
}

// TestSearch_FrontierIsLive checks that snapshots never list finalized cells.
func TestSearch_FrontierIsLive(t *testing.T) {
	g, start, target := searchtest.Open(t, 9, [2]int{4, 4}, [2]int{0, 8})
	_, err := Search(g, start, target, search.WithObserver(func(s search.Snapshot) error {
		seen := map[*grid.Cell]bool{}
		for _, c := range s.Frontier {
			assert.False(t, s.Explored.Has(c), "frontier cell %v already expanded", c)
			assert.False(t, seen[c], "frontier cell %v listed twice", c)
			seen[c] = true
		}
		return nil
	}))
	require.NoError(t, err)
}
