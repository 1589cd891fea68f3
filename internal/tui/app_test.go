package tui

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathlab/pathfinder"
)

type recordCue struct{ found, notFound int }

func (c *recordCue) Found()    { c.found++ }
func (c *recordCue) NotFound() { c.notFound++ }

func newApp(t *testing.T, size int, opts ...Option) (*App, tcell.SimulationScreen) {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, s.Init())
	s.SetSize(80, 24)
	t.Cleanup(s.Fini)

	sess, err := pathfinder.NewSession(pathfinder.WithSize(size))
	require.NoError(t, err)
	return New(s, sess, append([]Option{WithStepDelay(0), WithSeed(1)}, opts...)...), s
}

// press and release emulate a left click at board cell (row, col).
func press(row, col int, b tcell.ButtonMask) *tcell.EventMouse {
	return tcell.NewEventMouse(col*cellWidth, boardTop+row, b, tcell.ModNone)
}

func key(r rune) *tcell.EventKey { return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone) }

func clickAt(t *testing.T, a *App, row, col int) {
	t.Helper()
	require.True(t, a.handle(context.Background(), press(row, col, tcell.Button1)))
	require.True(t, a.handle(context.Background(), press(row, col, tcell.ButtonNone)))
}

func background(s tcell.SimulationScreen, row, col int) tcell.Color {
	cells, w, _ := s.GetContents()
	_, bg, _ := cells[(boardTop+row)*w+col*cellWidth].Style.Decompose()
	return bg
}

func line(s tcell.SimulationScreen, y int) string {
	cells, w, _ := s.GetContents()
	var b strings.Builder
	for x := 0; x < w; x++ {
		if r := cells[y*w+x].Runes; len(r) > 0 {
			b.WriteRune(r[0])
		} else {
			b.WriteByte(' ')
		}
	}
	return strings.TrimRight(b.String(), " ")
}

// TestMouse_Placement follows start, target, walls, drag and erase.
func TestMouse_Placement(t *testing.T) {
	a, _ := newApp(t, 5)
	ctx := context.Background()
	sess := a.session

	// dragging before the target exists places nothing
	require.True(t, a.handle(ctx, press(0, 0, tcell.Button1)))
	require.True(t, a.handle(ctx, press(0, 1, tcell.Button1)))
	require.True(t, a.handle(ctx, press(0, 1, tcell.ButtonNone)))
	require.NotNil(t, sess.Start())
	assert.Equal(t, "(0,0)", sess.Start().String())
	assert.Nil(t, sess.Target())

	clickAt(t, a, 4, 4)
	require.NotNil(t, sess.Target())
	assert.Equal(t, "(4,4)", sess.Target().String())

	// press then drag paints two walls
	require.True(t, a.handle(ctx, press(2, 2, tcell.Button1)))
	require.True(t, a.handle(ctx, press(2, 3, tcell.Button1)))
	require.True(t, a.handle(ctx, press(2, 3, tcell.ButtonNone)))
	g := sess.Grid()
	c22, _ := g.Cell(2, 2)
	c23, _ := g.Cell(2, 3)
	assert.True(t, c22.IsWall())
	assert.True(t, c23.IsWall())

	// right click erases
	require.True(t, a.handle(ctx, press(2, 2, tcell.Button2)))
	require.True(t, a.handle(ctx, press(2, 2, tcell.ButtonNone)))
	assert.False(t, c22.IsWall())

	// clicks outside the board are ignored
	require.True(t, a.handle(ctx, tcell.NewEventMouse(79, 0, tcell.Button1, tcell.ModNone)))
	assert.Len(t, g.Walls(), 1)
}

// TestDraw_Colors checks the board palette and the menu line.
func TestDraw_Colors(t *testing.T) {
	a, s := newApp(t, 5)
	clickAt(t, a, 0, 0)
	clickAt(t, a, 4, 4)
	clickAt(t, a, 1, 3)
	a.draw()

	assert.Equal(t, tcell.ColorGreen, background(s, 0, 0))
	assert.Equal(t, tcell.ColorRed, background(s, 4, 4))
	assert.Equal(t, tcell.ColorBlack, background(s, 1, 3))
	assert.Equal(t, tcell.ColorWhite, background(s, 2, 2))
	assert.True(t, strings.HasPrefix(line(s, 0), "1:bfs 2:dfs 3:ucs 4:dls 5:iddfs"))
	assert.Equal(t, help, line(s, boardTop+5+1))
}

// TestDraw_TooSmall shows a notice instead of a clipped board.
func TestDraw_TooSmall(t *testing.T) {
	a, s := newApp(t, 15)
	s.SetSize(40, 10)
	a.draw()
	assert.Equal(t, "terminal too small: need 30x18", line(s, 0))
}

// TestRun_Found draws the final path and plays the found cue.
func TestRun_Found(t *testing.T) {
	cue := &recordCue{}
	a, s := newApp(t, 5, WithCue(cue))
	clickAt(t, a, 0, 0)
	clickAt(t, a, 4, 4)

	require.True(t, a.handle(context.Background(), key('1')))
	assert.Equal(t, 1, cue.found)
	assert.Len(t, a.session.Path(), 5)
	assert.True(t, strings.HasPrefix(a.status, "Breadth-First Search: 4 moves"), a.status)

	a.draw()
	for i := 1; i < 4; i++ {
		assert.Equal(t, tcell.ColorBlue, background(s, i, i))
	}
	assert.Equal(t, a.status, line(s, boardTop+5))
}

// TestRun_NotFound reports the breach count when the target is walled in.
func TestRun_NotFound(t *testing.T) {
	cue := &recordCue{}
	a, _ := newApp(t, 5, WithCue(cue))
	clickAt(t, a, 0, 0)
	clickAt(t, a, 4, 4)
	clickAt(t, a, 3, 3)
	clickAt(t, a, 3, 4)
	clickAt(t, a, 4, 3)

	require.True(t, a.handle(context.Background(), key('3')))
	assert.Equal(t, 1, cue.notFound)
	assert.Nil(t, a.session.Path())
	assert.Contains(t, a.status, "remove 1 wall(s)")
}

// TestRun_NotReady refuses to search without both endpoints.
func TestRun_NotReady(t *testing.T) {
	a, _ := newApp(t, 5)
	clickAt(t, a, 0, 0)
	require.True(t, a.handle(context.Background(), key('4')))
	assert.Equal(t, "place start and target first", a.status)
}

// TestRun_StopAndQuit reads Esc and q between snapshots.
func TestRun_StopAndQuit(t *testing.T) {
	a, _ := newApp(t, 9, WithStepDelay(time.Hour))
	clickAt(t, a, 0, 0)
	clickAt(t, a, 8, 8)

	a.events <- tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)
	require.True(t, a.handle(context.Background(), key('2')))
	assert.Equal(t, "Depth-First Search: stopped", a.status)
	assert.Nil(t, a.session.Path())

	a.events <- key('q')
	assert.False(t, a.handle(context.Background(), key('6')))
}

// TestHandle_Keys covers quit keys, clear and random layout.
func TestHandle_Keys(t *testing.T) {
	a, _ := newApp(t, 7)
	ctx := context.Background()
	clickAt(t, a, 0, 0)
	clickAt(t, a, 6, 6)

	require.True(t, a.handle(ctx, key('r')))
	g := a.session.Grid()
	assert.NotEmpty(t, g.Walls())
	assert.False(t, a.session.Start().IsWall())
	assert.False(t, a.session.Target().IsWall())

	require.True(t, a.handle(ctx, key('c')))
	assert.Empty(t, g.Walls())
	assert.Nil(t, a.session.Start())
	assert.Equal(t, "board cleared", a.status)

	require.True(t, a.handle(ctx, key('x')))
	assert.False(t, a.handle(ctx, key('q')))
	assert.False(t, a.handle(ctx, tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)))
	assert.False(t, a.handle(ctx, tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl)))
}

// TestRun_Loop drives the event loop through the simulated screen.
func TestRun_Loop(t *testing.T) {
	a, s := newApp(t, 5)
	s.InjectMouse(0, boardTop, tcell.Button1, tcell.ModNone)
	s.InjectMouse(0, boardTop, tcell.ButtonNone, tcell.ModNone)
	s.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	done := make(chan error, 1)
	go func() { done <- a.Run(context.Background()) }()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after q")
	}
	require.NotNil(t, a.session.Start())
	assert.Equal(t, "(0,0)", a.session.Start().String())
}

// TestRun_ContextCancel returns the context error.
func TestRun_ContextCancel(t *testing.T) {
	a, _ := newApp(t, 5)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.True(t, errors.Is(a.Run(ctx), context.Canceled))
}

func TestSummary_DepthLimit(t *testing.T) {
	rep := pathfinder.Report{Algorithm: pathfinder.DLS, Shortest: 8}
	rep.Result.Expanded = 12
	assert.Equal(t, "Depth-Limited Search: no path within the depth limit, 12 expanded; shortest is 8", summary(rep))
}
