package grid

import "fmt"

// Symbols understood by Parse and produced by Format.
const (
	symOpen   = '.'
	symWall   = '#'
	symStart  = 'S'
	symTarget = 'T'
)

// Parse builds a grid from text rows: '.' open, '#' wall, 'S' start, 'T' target.
// The rows must form an N×N square. start and target are nil when their marker
// is absent; each marker may appear at most once.
//
// Returns ErrEmptyGrid, ErrNonSquare, ErrInvalidSize or ErrInvalidSymbol.
// Complexity: O(N²).
func Parse(rows []string) (g *Grid, start, target *Cell, err error) {
	if len(rows) == 0 {
		return nil, nil, nil, ErrEmptyGrid
	}
	n := len(rows)
	for i, row := range rows {
		if len(row) != n {
			return nil, nil, nil, fmt.Errorf("%w: row %d has %d symbols, want %d", ErrNonSquare, i, len(row), n)
		}
	}
	if g, err = New(Options{Size: n}); err != nil {
		return nil, nil, nil, err
	}

	for r, row := range rows {
		for c := 0; c < n; c++ {
			cell := g.cells[g.index(r, c)]
			switch sym := row[c]; sym {
			case symOpen:
			case symWall:
				cell.wall = true
			case symStart:
				if start != nil {
					return nil, nil, nil, fmt.Errorf("%w: second %q at (%d,%d)", ErrInvalidSymbol, sym, r, c)
				}
				start = cell
			case symTarget:
				if target != nil {
					return nil, nil, nil, fmt.Errorf("%w: second %q at (%d,%d)", ErrInvalidSymbol, sym, r, c)
				}
				target = cell
			default:
				return nil, nil, nil, fmt.Errorf("%w: %q at (%d,%d)", ErrInvalidSymbol, sym, r, c)
			}
		}
	}

	return g, start, target, nil
}
