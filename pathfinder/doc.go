// Package pathfinder ties the six searches to a caller-facing surface.
//
// Algorithm is the selection interface: six identifiers in menu order
// (BFS=1 … Bidirectional=6) with names, titles and dispatch. Session is
// the caller the searches expect: it owns one grid, applies the click
// placement rule (start, then target, then walls), refuses edits while a
// search runs, and serializes runs so that at most one search touches the
// grid at a time. Each run gets a UUID and is logged through logrus.
package pathfinder
