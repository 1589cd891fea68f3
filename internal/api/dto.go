package api

import (
	"github.com/katalvlaran/pathlab/grid"
	"github.com/katalvlaran/pathlab/pathfinder"
	"github.com/katalvlaran/pathlab/search"
)

// Coord is a [row, col] pair on the wire.
type Coord [2]int

// SearchRequest describes one board and the search to run on it.
// Walls on the start or target cell are ignored.
type SearchRequest struct {
	Algorithm  pathfinder.Algorithm `json:"algorithm" binding:"required"`
	Size       int                  `json:"size" binding:"required,min=1,max=64"`
	Start      Coord                `json:"start"`
	Target     Coord                `json:"target"`
	Walls      []Coord              `json:"walls"`
	DepthLimit *int                 `json:"depthLimit" binding:"omitempty,min=0"`
}

// SearchResponse is the outcome of one run.
type SearchResponse struct {
	RunID     string  `json:"runId"`
	Algorithm string  `json:"algorithm"`
	Found     bool    `json:"found"`
	Path      []Coord `json:"path"`
	Edges     int     `json:"edges"`
	Expanded  int     `json:"expanded"`
	Shortest  int     `json:"shortest"`
	Breach    int     `json:"breach"`
	ElapsedUS int64   `json:"elapsedUs"`
}

// SnapshotEvent is streamed once per snapshot.
type SnapshotEvent struct {
	Algorithm string  `json:"algorithm"`
	Step      int     `json:"step"`
	Depth     int     `json:"depth"`
	Frontier  []Coord `json:"frontier"`
	Explored  int     `json:"explored"`
}

// AlgorithmInfo lists one selectable search.
type AlgorithmInfo struct {
	Key   string `json:"key"`
	Name  string `json:"name"`
	Title string `json:"title"`
}

func coords(cells []*grid.Cell) []Coord {
	out := make([]Coord, len(cells))
	for i, c := range cells {
		out[i] = Coord{c.Row(), c.Col()}
	}
	return out
}

func newSearchResponse(rep pathfinder.Report) SearchResponse {
	res := rep.Result
	return SearchResponse{
		RunID:     rep.RunID.String(),
		Algorithm: rep.Algorithm.String(),
		Found:     res.Found(),
		Path:      coords(res.Path),
		Edges:     res.Edges(),
		Expanded:  res.Expanded,
		Shortest:  rep.Shortest,
		Breach:    rep.Breach,
		ElapsedUS: rep.Elapsed.Microseconds(),
	}
}

func newSnapshotEvent(s search.Snapshot) SnapshotEvent {
	return SnapshotEvent{
		Algorithm: s.Algorithm,
		Step:      s.Step,
		Depth:     s.Depth,
		Frontier:  coords(s.Frontier),
		Explored:  s.Explored.Size(),
	}
}
