package grid_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/pathlab/grid"
)

//----------------------------------------------------------------------------//
// New, Parse and InBounds Tests
//----------------------------------------------------------------------------//

// TestNew_Errors verifies that New rejects sizes outside [1, MaxSize].
func TestNew_Errors(t *testing.T) {
	for _, size := range []int{0, -3, grid.MaxSize + 1} {
		if _, err := grid.New(grid.Options{Size: size}); !errors.Is(err, grid.ErrInvalidSize) {
			t.Errorf("New(size=%d) error = %v; want ErrInvalidSize", size, err)
		}
	}
}

// TestNew_DefaultShape checks the default 15×15 board and row-major identity.
func TestNew_DefaultShape(t *testing.T) {
	g, err := grid.New(grid.DefaultOptions())
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	if g.Size() != grid.DefaultSize || g.Len() != grid.DefaultSize*grid.DefaultSize {
		t.Fatalf("Size=%d Len=%d; want %d and %d", g.Size(), g.Len(), grid.DefaultSize, grid.DefaultSize*grid.DefaultSize)
	}
	for i, c := range g.Cells() {
		if c.Index() != i || c.Row()*g.Size()+c.Col() != i {
			t.Fatalf("cell %v has index %d at position %d", c, c.Index(), i)
		}
		if c.IsWall() {
			t.Fatalf("cell %v is a wall on a fresh grid", c)
		}
	}
}

// TestParse_Errors verifies that Parse rejects empty, ragged and unknown input.
func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name string
		rows []string
		err  error
	}{
		{"Empty", nil, grid.ErrEmptyGrid},
		{"Ragged", []string{"..", "."}, grid.ErrNonSquare},
		{"NotSquare", []string{"...", "..."}, grid.ErrNonSquare},
		{"UnknownSymbol", []string{".x", ".."}, grid.ErrInvalidSymbol},
		{"TwoStarts", []string{"S.", ".S"}, grid.ErrInvalidSymbol},
		{"TwoTargets", []string{"TT", ".."}, grid.ErrInvalidSymbol},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, _, _, err := grid.Parse(tc.rows); !errors.Is(err, tc.err) {
				t.Errorf("Parse(%q) error = %v; want %v", tc.rows, err, tc.err)
			}
		})
	}
}

// TestParse_Markers checks wall flags and start/target extraction.
func TestParse_Markers(t *testing.T) {
	g, start, target, err := grid.Parse([]string{
		"S.#",
		".#.",
		"..T",
	})
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if start.Row() != 0 || start.Col() != 0 {
		t.Errorf("start = %v; want (0,0)", start)
	}
	if target.Row() != 2 || target.Col() != 2 {
		t.Errorf("target = %v; want (2,2)", target)
	}
	if got := len(g.Walls()); got != 2 {
		t.Errorf("walls = %d; want 2", got)
	}
	if got := g.Format(nil); got != "..#\n.#.\n...\n" {
		t.Errorf("Format = %q", got)
	}
}

// TestInBoundsAndCell checks bounds handling on a 3×3 grid.
func TestInBoundsAndCell(t *testing.T) {
	g, _ := grid.New(grid.Options{Size: 3})
	for _, rc := range [][2]int{{0, 0}, {2, 2}, {1, 2}} {
		if !g.InBounds(rc[0], rc[1]) {
			t.Errorf("InBounds(%d,%d)=false; want true", rc[0], rc[1])
		}
	}
	for _, rc := range [][2]int{{-1, 0}, {3, 0}, {0, 3}, {2, -1}} {
		if g.InBounds(rc[0], rc[1]) {
			t.Errorf("InBounds(%d,%d)=true; want false", rc[0], rc[1])
		}
		if _, err := g.Cell(rc[0], rc[1]); !errors.Is(err, grid.ErrOutOfBounds) {
			t.Errorf("Cell(%d,%d) error = %v; want ErrOutOfBounds", rc[0], rc[1], err)
		}
		if err := g.SetWall(rc[0], rc[1], true); !errors.Is(err, grid.ErrOutOfBounds) {
			t.Errorf("SetWall(%d,%d) error = %v; want ErrOutOfBounds", rc[0], rc[1], err)
		}
	}
}

// TestOwns distinguishes cells of two grids of the same size.
func TestOwns(t *testing.T) {
	a, _ := grid.New(grid.Options{Size: 2})
	b, _ := grid.New(grid.Options{Size: 2})
	ca, _ := a.Cell(1, 1)
	if !a.Owns(ca) {
		t.Error("a.Owns(own cell) = false")
	}
	if b.Owns(ca) {
		t.Error("b.Owns(foreign cell) = true")
	}
	if a.Owns(nil) {
		t.Error("Owns(nil) = true")
	}
}

//----------------------------------------------------------------------------//
// Neighbors Tests
//----------------------------------------------------------------------------//

// TestNeighbors_ClockwiseOrder checks the published order from the centre of a 3×3 grid.
func TestNeighbors_ClockwiseOrder(t *testing.T) {
	g, _ := grid.New(grid.Options{Size: 3})
	centre, _ := g.Cell(1, 1)
	want := [][2]int{{0, 1}, {0, 2}, {1, 2}, {2, 2}, {2, 1}, {2, 0}, {1, 0}, {0, 0}}

	got := g.Neighbors(centre)
	if len(got) != len(want) {
		t.Fatalf("got %d neighbours; want %d", len(got), len(want))
	}
	for i, c := range got {
		if c.Row() != want[i][0] || c.Col() != want[i][1] {
			t.Errorf("neighbour %d = %v; want (%d,%d)", i, c, want[i][0], want[i][1])
		}
	}
}

// TestDirections_Copy checks that editing the returned table leaves the
// neighbour order untouched.
func TestDirections_Copy(t *testing.T) {
	dirs := grid.Directions()
	if dirs[0].Name != "up" || dirs[7].Name != "up-left" {
		t.Fatalf("order starts %q, ends %q; want up … up-left", dirs[0].Name, dirs[7].Name)
	}
	dirs[0] = grid.Offset{DRow: 1, DCol: 1, Name: "down-right"}

	if got := grid.Directions()[0]; got.Name != "up" || got.DRow != -1 || got.DCol != 0 {
		t.Errorf("Directions()[0] = %+v after caller edit; want up", got)
	}
	g, _ := grid.New(grid.Options{Size: 3})
	centre, _ := g.Cell(1, 1)
	if first := g.Neighbors(centre)[0]; first.Row() != 0 || first.Col() != 1 {
		t.Errorf("first neighbour = %v; want (0,1)", first)
	}
}

// TestNeighbors_CornerAndWalls checks bounds clipping and that walls are not filtered.
func TestNeighbors_CornerAndWalls(t *testing.T) {
	g, _ := grid.New(grid.Options{Size: 3})
	_ = g.SetWall(0, 1, true)
	corner, _ := g.Cell(0, 0)

	got := g.Neighbors(corner)
	want := [][2]int{{0, 1}, {1, 1}, {1, 0}} // right, down-right, down
	if len(got) != len(want) {
		t.Fatalf("got %d neighbours; want %d", len(got), len(want))
	}
	for i, c := range got {
		if c.Row() != want[i][0] || c.Col() != want[i][1] {
			t.Errorf("neighbour %d = %v; want (%d,%d)", i, c, want[i][0], want[i][1])
		}
	}
	if !got[0].IsWall() {
		t.Error("wall neighbour should still be enumerated")
	}
}

// TestAdjacent covers orthogonal, diagonal and distant pairs.
func TestAdjacent(t *testing.T) {
	g, _ := grid.New(grid.Options{Size: 4})
	a, _ := g.Cell(1, 1)
	for _, rc := range [][2]int{{0, 0}, {0, 1}, {2, 2}, {1, 0}} {
		b, _ := g.Cell(rc[0], rc[1])
		if !grid.Adjacent(a, b) {
			t.Errorf("Adjacent(%v,%v) = false", a, b)
		}
	}
	for _, rc := range [][2]int{{1, 1}, {3, 3}, {1, 3}} {
		b, _ := g.Cell(rc[0], rc[1])
		if grid.Adjacent(a, b) {
			t.Errorf("Adjacent(%v,%v) = true", a, b)
		}
	}
}

// TestClearWalls resets every wall flag.
func TestClearWalls(t *testing.T) {
	g, _, _, _ := grid.Parse([]string{"##", "#."})
	g.ClearWalls()
	if n := len(g.Walls()); n != 0 {
		t.Errorf("walls after ClearWalls = %d; want 0", n)
	}
}
