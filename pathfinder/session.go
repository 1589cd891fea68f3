package pathfinder

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/pathlab/grid"
	"github.com/katalvlaran/pathlab/layout"
	"github.com/katalvlaran/pathlab/search"
)

// Session errors.
var (
	// ErrNotReady is returned by Run before both start and target are placed.
	ErrNotReady = errors.New("pathfinder: start and target must be set")

	// ErrBusy is returned when the board is modified or searched while a run is in progress.
	ErrBusy = errors.New("pathfinder: a search is already running")

	// ErrOptionViolation is returned when an invalid SessionOption is supplied.
	ErrOptionViolation = errors.New("pathfinder: invalid option supplied")
)

// Mark reports what a Click did to a cell.
type Mark int

// Click outcomes.
const (
	MarkNone Mark = iota
	MarkStart
	MarkTarget
	MarkWall
)

// String returns the mark name.
func (m Mark) String() string {
	switch m {
	case MarkStart:
		return "start"
	case MarkTarget:
		return "target"
	case MarkWall:
		return "wall"
	default:
		return "none"
	}
}

// Report describes one finished run.
type Report struct {
	RunID     uuid.UUID
	Algorithm Algorithm
	Result    search.Result
	Elapsed   time.Duration

	// Shortest is the true move distance from start to target,
	// or grid.Unreachable.
	Shortest int

	// Breach is the number of walls separating start from target when no
	// path exists, and 0 otherwise.
	Breach int
}

// SessionOption configures a Session via functional arguments.
type SessionOption func(*sessionConfig)

type sessionConfig struct {
	size       int
	depthLimit int
	log        logrus.FieldLogger
	err        error
}

// WithSize sets the board edge length (default grid.DefaultSize).
func WithSize(n int) SessionOption {
	return func(c *sessionConfig) {
		if n < 1 || n > grid.MaxSize {
			c.err = fmt.Errorf("%w: size %d (want 1..%d)", ErrOptionViolation, n, grid.MaxSize)
			return
		}
		c.size = n
	}
}

// WithDepthLimit sets the budget used for DLS runs (default search.DefaultDepthLimit).
func WithDepthLimit(d int) SessionOption {
	return func(c *sessionConfig) {
		if d < 0 {
			c.err = fmt.Errorf("%w: depth limit %d", ErrOptionViolation, d)
			return
		}
		c.depthLimit = d
	}
}

// WithLogger routes run logs to l. nil is ignored.
func WithLogger(l logrus.FieldLogger) SessionOption {
	return func(c *sessionConfig) {
		if l != nil {
			c.log = l
		}
	}
}

// Session owns one grid plus its start and target, and serializes
// searches on it. All methods are safe for concurrent use; board edits
// are refused with ErrBusy while a run is in progress.
type Session struct {
	mu         sync.Mutex
	g          *grid.Grid
	start      *grid.Cell
	target     *grid.Cell
	path       []*grid.Cell
	running    bool
	depthLimit int
	log        logrus.FieldLogger
}

// NewSession builds a Session on an open grid.
func NewSession(opts ...SessionOption) (*Session, error) {
	discard := logrus.New()
	discard.SetOutput(io.Discard)
	cfg := sessionConfig{
		size:       grid.DefaultSize,
		depthLimit: search.DefaultDepthLimit,
		log:        discard,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	g, err := grid.New(grid.Options{Size: cfg.size})
	if err != nil {
		return nil, err
	}
	return &Session{g: g, depthLimit: cfg.depthLimit, log: cfg.log}, nil
}

// Grid returns the session's board. The pointer never changes; read wall
// flags only from the goroutine that calls Run or between runs.
func (s *Session) Grid() *grid.Grid { return s.g }

// Start returns the start cell, or nil.
func (s *Session) Start() *grid.Cell {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.start
}

// Target returns the target cell, or nil.
func (s *Session) Target() *grid.Cell {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.target
}

// Path returns the path of the last successful run, or nil.
func (s *Session) Path() []*grid.Cell {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.path
}

// Ready reports whether both start and target are placed.
func (s *Session) Ready() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.start != nil && s.target != nil
}

// Click applies the placement rule at (row, col): the first click sets the
// start, the next one on another cell sets the target, and later clicks
// raise walls. Start and target never become walls; clicking them is a
// no-op. Placing start or target on a wall opens it.
func (s *Session) Click(row, col int) (Mark, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running {
		return MarkNone, ErrBusy
	}
	c, err := s.g.Cell(row, col)
	if err != nil {
		return MarkNone, err
	}

	s.path = nil
	switch {
	case s.start == nil && c != s.target:
		s.start = c
		_ = s.g.SetWall(row, col, false)
		return MarkStart, nil
	case s.target == nil && c != s.start:
		s.target = c
		_ = s.g.SetWall(row, col, false)
		return MarkTarget, nil
	case c == s.start || c == s.target:
		return MarkNone, nil
	default:
		_ = s.g.SetWall(row, col, true)
		return MarkWall, nil
	}
}

// Erase undoes a placement at (row, col): it removes a wall, or unsets
// the start or target there.
func (s *Session) Erase(row, col int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running {
		return ErrBusy
	}
	c, err := s.g.Cell(row, col)
	if err != nil {
		return err
	}

	s.path = nil
	switch c {
	case s.start:
		s.start = nil
	case s.target:
		s.target = nil
	default:
		_ = s.g.SetWall(row, col, false)
	}
	return nil
}

// Clear opens every cell and forgets start, target and the last path.
func (s *Session) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running {
		return ErrBusy
	}
	s.g.ClearWalls()
	s.start, s.target, s.path = nil, nil, nil
	return nil
}

// ApplyLayout runs layout constructors on the board, keeping start and
// target open.
func (s *Session) ApplyLayout(opts []layout.Option, cons ...layout.Constructor) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running {
		return ErrBusy
	}
	s.path = nil
	opts = append(opts[:len(opts):len(opts)], layout.WithKeep(s.start, s.target))
	return layout.Apply(s.g, opts, cons...)
}

// Run executes alg from start to target. obs may be nil; it runs on the
// caller's goroutine after every expansion, and ctx is checked there too.
//
// Returns ErrNotReady, ErrBusy, ErrUnknownAlgorithm, or the search's
// error. Not-found is a Report whose Result has no path.
func (s *Session) Run(ctx context.Context, alg Algorithm, obs search.Observer) (Report, error) {
	if !alg.Valid() {
		return Report{}, fmt.Errorf("%w: %d", ErrUnknownAlgorithm, int(alg))
	}

	s.mu.Lock()
	switch {
	case s.running:
		s.mu.Unlock()
		return Report{}, ErrBusy
	case s.start == nil || s.target == nil:
		s.mu.Unlock()
		return Report{}, ErrNotReady
	}
	s.running = true
	s.path = nil
	start, target := s.start, s.target
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.running = false
		s.mu.Unlock()
	}()

	rep := Report{RunID: uuid.New(), Algorithm: alg}
	log := s.log.WithFields(logrus.Fields{
		"run_id":    rep.RunID.String(),
		"algorithm": alg.String(),
		"start":     start.String(),
		"target":    target.String(),
	})
	log.Debug("search started")

	begin := time.Now()
	res, err := alg.Run(s.g, start, target,
		search.WithContext(ctx),
		search.WithObserver(obs),
		search.WithDepthLimit(s.depthLimit),
	)
	rep.Elapsed = time.Since(begin)
	rep.Result = res
	if err != nil {
		log.WithError(err).WithField("expanded", res.Expanded).Warn("search stopped")
		return rep, err
	}

	rep.Shortest = s.g.Distances(start)[target.Index()]
	if !res.Found() {
		_, rep.Breach, _ = s.g.MinBreach(start, target)
	}

	s.mu.Lock()
	s.path = res.Path
	s.mu.Unlock()

	log.WithFields(logrus.Fields{
		"found":    res.Found(),
		"edges":    res.Edges(),
		"expanded": res.Expanded,
		"shortest": rep.Shortest,
		"elapsed":  rep.Elapsed,
	}).Info("search finished")
	return rep, nil
}
