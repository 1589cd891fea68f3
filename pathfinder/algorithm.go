package pathfinder

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/pathlab/bfs"
	"github.com/katalvlaran/pathlab/bidir"
	"github.com/katalvlaran/pathlab/dfs"
	"github.com/katalvlaran/pathlab/dls"
	"github.com/katalvlaran/pathlab/grid"
	"github.com/katalvlaran/pathlab/search"
	"github.com/katalvlaran/pathlab/ucs"
)

// ErrUnknownAlgorithm is returned for an identifier outside the six searches.
var ErrUnknownAlgorithm = errors.New("pathfinder: unknown algorithm")

// Algorithm selects one of the six searches. The numeric values double as
// the menu keys 1..6.
type Algorithm int

// Supported algorithms, in menu order.
const (
	BFS Algorithm = iota + 1
	DFS
	UCS
	DLS
	IDDFS
	Bidirectional
)

// SearchFunc is the signature shared by every search package.
type SearchFunc func(g *grid.Grid, start, target *grid.Cell, opts ...search.Option) (search.Result, error)

type descriptor struct {
	name  string
	title string
	fn    SearchFunc
}

var registry = map[Algorithm]descriptor{
	BFS:           {bfs.Name, "Breadth-First Search", bfs.Search},
	DFS:           {dfs.Name, "Depth-First Search", dfs.Search},
	UCS:           {ucs.Name, "Uniform-Cost Search", ucs.Search},
	DLS:           {dls.Name, "Depth-Limited Search", dls.Search},
	IDDFS:         {dls.DeepeningName, "Iterative-Deepening DFS", dls.Deepening},
	Bidirectional: {bidir.Name, "Bidirectional BFS", bidir.Search},
}

// aliases accepted by ParseAlgorithm besides the canonical names.
var aliases = map[string]Algorithm{
	"bidir":   Bidirectional,
	"bibfs":   Bidirectional,
	"ids":     IDDFS,
	"uniform": UCS,
}

// Algorithms returns all six identifiers in menu order.
func Algorithms() []Algorithm {
	return []Algorithm{BFS, DFS, UCS, DLS, IDDFS, Bidirectional}
}

// Valid reports whether a is one of the six searches.
func (a Algorithm) Valid() bool {
	_, ok := registry[a]
	return ok
}

// String returns the canonical lower-case name ("bfs", "iddfs", ...).
func (a Algorithm) String() string {
	if d, ok := registry[a]; ok {
		return d.name
	}
	return "Algorithm(" + strconv.Itoa(int(a)) + ")"
}

// Title returns a human-readable name for menus.
func (a Algorithm) Title() string {
	if d, ok := registry[a]; ok {
		return d.title
	}
	return a.String()
}

// Key returns the menu key '1'..'6', or 0 for an invalid value.
func (a Algorithm) Key() rune {
	if !a.Valid() {
		return 0
	}
	return rune('0' + int(a))
}

// SearchFunc returns the search implementing a, or nil.
func (a Algorithm) SearchFunc() SearchFunc {
	return registry[a].fn
}

// Run dispatches to the search implementing a.
func (a Algorithm) Run(g *grid.Grid, start, target *grid.Cell, opts ...search.Option) (search.Result, error) {
	fn := a.SearchFunc()
	if fn == nil {
		return search.Result{}, fmt.Errorf("%w: %d", ErrUnknownAlgorithm, int(a))
	}
	return fn(g, start, target, opts...)
}

// ParseAlgorithm accepts a canonical name, a known alias, or a menu digit.
// Matching is case-insensitive and ignores surrounding space.
func ParseAlgorithm(s string) (Algorithm, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	if len(key) == 1 && key[0] >= '1' && key[0] <= '6' {
		return Algorithm(key[0] - '0'), nil
	}
	for _, a := range Algorithms() {
		if registry[a].name == key {
			return a, nil
		}
	}
	if a, ok := aliases[key]; ok {
		return a, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, s)
}

// MarshalText implements encoding.TextMarshaler.
func (a Algorithm) MarshalText() ([]byte, error) {
	if !a.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownAlgorithm, int(a))
	}
	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler via ParseAlgorithm.
func (a *Algorithm) UnmarshalText(text []byte) error {
	v, err := ParseAlgorithm(string(text))
	if err != nil {
		return err
	}
	*a = v
	return nil
}
