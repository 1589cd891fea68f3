package tui

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/pathlab/grid"
	"github.com/katalvlaran/pathlab/pathfinder"
)

const help = "L: place  R: erase  r: random  c: clear  Esc: stop  q: quit"

// menu lists the algorithm keys, e.g. "1:bfs 2:dfs ...".
func menu() string {
	var b strings.Builder
	for i, alg := range pathfinder.Algorithms() {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%c:%s", alg.Key(), alg)
	}
	return b.String()
}

// draw renders the menu, the board and the footer, then shows the screen.
func (a *App) draw() {
	a.screen.Clear()
	g := a.session.Grid()
	n := g.Size()

	w, h := a.screen.Size()
	if w < n*cellWidth || h < boardTop+n+footerRows {
		a.text(0, 0, fmt.Sprintf("terminal too small: need %dx%d", n*cellWidth, boardTop+n+footerRows))
		a.screen.Show()
		return
	}

	a.text(0, 0, menu())

	path := mapset.New[*grid.Cell]()
	if a.snap == nil {
		for _, c := range a.session.Path() {
			path.Put(c)
		}
	}
	start, target := a.session.Start(), a.session.Target()
	for _, c := range g.Cells() {
		style := a.style(c, start, target, path)
		x, y := c.Col()*cellWidth, boardTop+c.Row()
		for dx := 0; dx < cellWidth; dx++ {
			a.screen.SetContent(x+dx, y, ' ', nil, style)
		}
	}

	a.text(0, boardTop+n, a.status)
	a.text(0, boardTop+n+1, help)
	a.screen.Show()
}

// style picks the cell colour; later rules win.
func (a *App) style(c, start, target *grid.Cell, path mapset.Set[*grid.Cell]) tcell.Style {
	style := styleOpen
	if c.IsWall() {
		style = styleWall
	}
	if a.snap != nil {
		if a.snap.Explored.Has(c) {
			style = styleExplored
		}
		if a.snap.InFrontier(c) {
			style = styleFrontier
		}
	}
	if path.Has(c) {
		style = stylePath
	}
	switch c {
	case start:
		style = styleStart
	case target:
		style = styleTarget
	}
	return style
}

// text writes s from (x, y), clipped at the screen edge.
func (a *App) text(x, y int, s string) {
	w, _ := a.screen.Size()
	for _, r := range s {
		if x >= w {
			return
		}
		a.screen.SetContent(x, y, r, nil, styleText)
		x++
	}
}
