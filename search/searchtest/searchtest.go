// Package searchtest holds fixtures and path checks shared by the
// tests of the algorithm packages.
package searchtest

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathlab/grid"
	"github.com/katalvlaran/pathlab/search"
)

// Func is the common algorithm signature.
type Func func(g *grid.Grid, start, target *grid.Cell, opts ...search.Option) (search.Result, error)

// Enclosed is a 7×7 board whose target sits inside a gap-free wall ring.
var Enclosed = []string{
	"S......",
	".......",
	"..###..",
	"..#T#..",
	"..###..",
	".......",
	".......",
}

// TwoRoutes offers a two-move route to the right of start and a long
// detour below it. DFS pops the last pushed neighbour ("down" before
// "right"), so it dives into the detour and reaches T from the far side.
//
//	S . T . .
//	. # # # .
//	. . . . .
//	. . . . .
//	. . . . .
var TwoRoutes = []string{
	"S.T..",
	".###.",
	".....",
	".....",
	".....",
}

// Adjacent places target directly above start, the first direction
// every search tries.
var Adjacent = []string{
	".T.",
	".S.",
	"...",
}

// Board parses rows and fails the test on error.
func Board(tb testing.TB, rows []string) (*grid.Grid, *grid.Cell, *grid.Cell) {
	tb.Helper()
	g, start, target, err := grid.Parse(rows)
	require.NoError(tb, err)
	require.NotNil(tb, start, "board has no S")
	require.NotNil(tb, target, "board has no T")
	return g, start, target
}

// Open builds a wall-free n×n board and returns the cells at from and to.
func Open(tb testing.TB, n int, from, to [2]int) (*grid.Grid, *grid.Cell, *grid.Cell) {
	tb.Helper()
	g, err := grid.New(grid.Options{Size: n})
	require.NoError(tb, err)
	start, err := g.Cell(from[0], from[1])
	require.NoError(tb, err)
	target, err := g.Cell(to[0], to[1])
	require.NoError(tb, err)
	return g, start, target
}

// RequireValidPath asserts the path properties every search guarantees:
// start first, target last, open cells only, adjacent steps, no repeats.
func RequireValidPath(tb testing.TB, g *grid.Grid, start, target *grid.Cell, path []*grid.Cell) {
	tb.Helper()
	require.NotEmpty(tb, path, "expected a path")
	require.Same(tb, start, path[0], "path must begin at start")
	require.Same(tb, target, path[len(path)-1], "path must end at target")

	seen := make(map[*grid.Cell]bool, len(path))
	for i, c := range path {
		require.True(tb, g.Owns(c), "cell %v is foreign", c)
		require.False(tb, c.IsWall(), "cell %v is a wall", c)
		require.False(tb, seen[c], "cell %v repeats", c)
		seen[c] = true
		if i > 0 {
			require.True(tb, grid.Adjacent(path[i-1], c), "%v→%v is not a move", path[i-1], c)
		}
	}
}

// Distance returns the true hop distance from start to target.
func Distance(g *grid.Grid, start, target *grid.Cell) int {
	return g.Distances(start)[target.Index()]
}

// Recorder collects per-step facts from an Observer.
type Recorder struct {
	Steps     int
	Pushed    map[*grid.Cell]int // times each cell first appeared on the frontier
	MaxDepth  int
	Algorithm string
	onFront   map[*grid.Cell]bool
}

// NewRecorder returns an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{Pushed: map[*grid.Cell]int{}, onFront: map[*grid.Cell]bool{}}
}

// Observe implements search.Observer.
func (r *Recorder) Observe(s search.Snapshot) error {
	r.Steps++
	r.Algorithm = s.Algorithm
	if s.Depth > r.MaxDepth {
		r.MaxDepth = s.Depth
	}
	now := make(map[*grid.Cell]bool, len(s.Frontier))
	for _, c := range s.Frontier {
		if !r.onFront[c] && !now[c] {
			r.Pushed[c]++
		}
		now[c] = true
	}
	r.onFront = now
	return nil
}
