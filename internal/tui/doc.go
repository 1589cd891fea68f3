// Package tui is the interactive terminal front end: a tcell screen
// showing one pathfinder.Session board, two columns per cell.
//
// Controls:
//
//	left click   start, then target, then walls (drag paints walls)
//	right click  erase a wall, start or target
//	1..6         run BFS, DFS, UCS, DLS, IDDFS or bidirectional BFS
//	r            scatter random walls
//	c            clear the board
//	q, Ctrl-C    quit (also aborts a running search)
//	Esc          stop a running search; quit when idle
//
// While a search runs, every snapshot is drawn (frontier yellow,
// explored gray) and followed by the configured step delay. The final
// path is drawn blue. When no path exists the status line shows how many
// walls would have to be removed.
package tui
