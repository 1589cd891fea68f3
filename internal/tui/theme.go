package tui

import "github.com/gdamore/tcell/v2"

// cellWidth is the number of terminal columns per board cell.
const cellWidth = 2

// Board placement: one menu line above, two lines below.
const (
	boardTop   = 1
	footerRows = 2
)

var (
	styleText     = tcell.StyleDefault
	styleOpen     = tcell.StyleDefault.Background(tcell.ColorWhite)
	styleWall     = tcell.StyleDefault.Background(tcell.ColorBlack)
	styleExplored = tcell.StyleDefault.Background(tcell.ColorSilver)
	styleFrontier = tcell.StyleDefault.Background(tcell.ColorYellow)
	stylePath     = tcell.StyleDefault.Background(tcell.ColorBlue)
	styleStart    = tcell.StyleDefault.Background(tcell.ColorGreen)
	styleTarget   = tcell.StyleDefault.Background(tcell.ColorRed)
)
