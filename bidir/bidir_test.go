package bidir_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathlab/bfs"
	"github.com/katalvlaran/pathlab/bidir"
	"github.com/katalvlaran/pathlab/grid"
	"github.com/katalvlaran/pathlab/search"
	"github.com/katalvlaran/pathlab/search/searchtest"
)

// TestSearch_Scenarios covers the enclosed, adjacent and two-route boards.
func TestSearch_Scenarios(t *testing.T) {
	g, start, target := searchtest.Board(t, searchtest.Enclosed)
	rec := searchtest.NewRecorder()
	res, err := bidir.Search(g, start, target, search.WithObserver(rec.Observe))
	require.NoError(t, err)
	assert.False(t, res.Found())
	// the target side has no open neighbour: one round, then it runs dry
	assert.Equal(t, 1, rec.Steps)
	assert.Equal(t, 2, res.Expanded)

	g, start, target = searchtest.Board(t, searchtest.Adjacent)
	res, err = bidir.Search(g, start, target)
	require.NoError(t, err)
	assert.Equal(t, []*grid.Cell{start, target}, res.Path)

	g, start, target = searchtest.Board(t, searchtest.TwoRoutes)
	res, err = bidir.Search(g, start, target)
	require.NoError(t, err)
	assert.Equal(t, 2, res.Edges())
}

// TestSearch_StartSideDry walls in the start instead: the forward side
// empties on its first expansion, the round still completes, and the
// loop ends before a second round.
func TestSearch_StartSideDry(t *testing.T) {
	g, start, target := searchtest.Board(t, []string{
		"###....",
		"#S#....",
		"###....",
		".......",
		".......",
		".......",
		"......T",
	})
	rec := searchtest.NewRecorder()
	res, err := bidir.Search(g, start, target, search.WithObserver(rec.Observe))
	require.NoError(t, err)
	assert.False(t, res.Found())
	assert.Equal(t, 1, rec.Steps)
	assert.Equal(t, 2, res.Expanded)
}

// TestSearch_StartIsTarget returns one cell without expanding.
func TestSearch_StartIsTarget(t *testing.T) {
	g, start, _ := searchtest.Open(t, 5, [2]int{2, 2}, [2]int{2, 2})
	res, err := bidir.Search(g, start, start)
	require.NoError(t, err)
	assert.Equal(t, []*grid.Cell{start}, res.Path)
	assert.Zero(t, res.Expanded)
}

// TestSearch_MeetingConsistency runs random boards and checks that every
// merged path is contiguous, repeats no cell, and agrees with BFS on
// reachability.
func TestSearch_MeetingConsistency(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for trial := 0; trial < 200; trial++ {
		n := 2 + rng.Intn(8)
		g, err := grid.New(grid.Options{Size: n})
		require.NoError(t, err)
		for _, c := range g.Cells() {
			if rng.Float64() < 0.3 {
				require.NoError(t, g.SetWall(c.Row(), c.Col(), true))
			}
		}
		start, target := g.At(rng.Intn(g.Len())), g.At(rng.Intn(g.Len()))
		if start.IsWall() || target.IsWall() {
			continue
		}

		want, err := bfs.Search(g, start, target)
		require.NoError(t, err)
		got, err := bidir.Search(g, start, target)
		require.NoError(t, err)

		require.Equal(t, want.Found(), got.Found(), "trial %d", trial)
		if got.Found() {
			searchtest.RequireValidPath(t, g, start, target, got.Path)
			assert.GreaterOrEqual(t, got.Edges(), want.Edges())
		}
	}
}

// TestSearch_SnapshotPerRound checks the combined snapshot contents.
func TestSearch_SnapshotPerRound(t *testing.T) {
	g, start, target := searchtest.Open(t, 9, [2]int{0, 0}, [2]int{8, 8})
	var rounds int
	res, err := bidir.Search(g, start, target, search.WithObserver(func(s search.Snapshot) error {
		rounds++
		if s.Step != rounds || s.Algorithm != bidir.Name {
			return errors.New("bad snapshot header")
		}
		if !s.Explored.Has(start) || !s.Explored.Has(target) {
			return errors.New("both roots must be explored")
		}
		for _, c := range s.Frontier {
			if !s.Explored.Has(c) {
				return errors.New("frontier cell not in explored union")
			}
		}
		return nil
	}))
	require.NoError(t, err)
	searchtest.RequireValidPath(t, g, start, target, res.Path)
	// two pops per completed round, plus one or two in the meeting round
	assert.GreaterOrEqual(t, res.Expanded, 2*rounds+1)
	assert.LessOrEqual(t, res.Expanded, 2*rounds+2)
}

// TestSearch_ObserverAbort stops after the first round.
func TestSearch_ObserverAbort(t *testing.T) {
	g, start, target := searchtest.Open(t, 9, [2]int{0, 0}, [2]int{8, 8})
	stop := errors.New("stop")
	res, err := bidir.Search(g, start, target, search.WithObserver(func(search.Snapshot) error { return stop }))
	assert.ErrorIs(t, err, search.ErrAborted)
	assert.Equal(t, 2, res.Expanded)
}
