// File: grid/breach_test.go
package grid_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/pathlab/grid"
)

// TestMinBreach_OpenRoute has a wall-free route available: cost 0.
func TestMinBreach_OpenRoute(t *testing.T) {
	g, start, target, err := grid.Parse([]string{
		"S.#",
		"..#",
		"..T",
	})
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	route, cost, err := g.MinBreach(start, target)
	if err != nil {
		t.Fatalf("MinBreach error: %v", err)
	}
	if cost != 0 {
		t.Errorf("cost = %d; want 0", cost)
	}
	if route[0] != start || route[len(route)-1] != target {
		t.Errorf("route endpoints = %v..%v; want %v..%v", route[0], route[len(route)-1], start, target)
	}
	for i := 1; i < len(route); i++ {
		if !grid.Adjacent(route[i-1], route[i]) {
			t.Errorf("route step %v→%v is not adjacent", route[i-1], route[i])
		}
	}
}

// TestMinBreach_Ring encloses the target in a single wall ring: exactly one wall to cross.
//
// Grid:
//
//	S . . . .
//	. # # # .
//	. # T # .
//	. # # # .
//	. . . . .
func TestMinBreach_Ring(t *testing.T) {
	g, start, target, err := grid.Parse([]string{
		"S....",
		".###.",
		".#T#.",
		".###.",
		".....",
	})
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	route, cost, err := g.MinBreach(start, target)
	if err != nil {
		t.Fatalf("MinBreach error: %v", err)
	}
	if cost != 1 {
		t.Errorf("cost = %d; want 1", cost)
	}
	walls := 0
	for _, c := range route {
		if c.IsWall() {
			walls++
		}
	}
	if walls != cost {
		t.Errorf("route crosses %d walls; cost says %d", walls, cost)
	}
}

// TestMinBreach_Foreign ensures foreign cells yield ErrForeignCell.
func TestMinBreach_Foreign(t *testing.T) {
	a, _ := grid.New(grid.Options{Size: 2})
	b, _ := grid.New(grid.Options{Size: 2})
	ca, _ := a.Cell(0, 0)
	cb, _ := b.Cell(1, 1)
	if _, _, err := a.MinBreach(ca, cb); !errors.Is(err, grid.ErrForeignCell) {
		t.Errorf("error = %v; want ErrForeignCell", err)
	}
}
